package model

import "time"

// ResourceCategory is one of the three resource kinds the engine tracks.
type ResourceCategory string

const (
	CategoryVM       ResourceCategory = "vm"
	CategoryDatabase ResourceCategory = "database"
	CategoryStorage  ResourceCategory = "storage"
)

// CPUUnknown marks a VM whose provider exposes no utilization metric.
const CPUUnknown = -1

// Resource is one discovered cloud object normalized to the common schema.
// Category-specific fields are zero-valued when they do not apply.
type Resource struct {
	ID       string
	Name     string
	Category ResourceCategory
	Provider Provider
	Region   string

	// Size is the instance type, database tier or storage class.
	Size string

	// State applies to VMs (running, stopped, deallocated, terminated)
	// and to volumes folded into the storage category (available, in-use).
	State string

	// CPUPercent is the reported VM utilization, CPUUnknown when absent.
	CPUPercent float64

	Engine    string
	StorageGB float64
	MultiAZ   *bool
	Encrypted *bool
	Versioned *bool

	// Metadata preserves salient provider-specific fields.
	Metadata map[string]string
}

// CategoryResult is the final outcome of one category call: a resource list
// and, when the call terminally failed, a human-readable error string.
// A failed category still carries a (possibly empty) list.
type CategoryResult struct {
	Resources []Resource
	Error     string
}

// Failed reports whether the category call ended in a terminal error.
func (r CategoryResult) Failed() bool {
	return r.Error != ""
}

// InventorySummary holds per-category resource counts.
type InventorySummary struct {
	TotalVMs            int
	TotalDatabases      int
	TotalStorageBuckets int
}

// ResourceInventory is the aggregated point-in-time snapshot for one client.
// Error is set only when all three categories failed; a single working
// category makes the inventory a partial success.
type ResourceInventory struct {
	ClientID   string
	ClientName string
	Provider   Provider
	VMs        CategoryResult
	Databases  CategoryResult
	Storage    CategoryResult
	Summary    InventorySummary
	Error      string
	FetchedAt  time.Time
}

// AllResources returns the resources of every category in a single slice.
func (inv *ResourceInventory) AllResources() []Resource {
	out := make([]Resource, 0, len(inv.VMs.Resources)+len(inv.Databases.Resources)+len(inv.Storage.Resources))
	out = append(out, inv.VMs.Resources...)
	out = append(out, inv.Databases.Resources...)
	out = append(out, inv.Storage.Resources...)
	return out
}

// Recount rebuilds the summary from the category lists.
func (inv *ResourceInventory) Recount() {
	inv.Summary = InventorySummary{
		TotalVMs:            len(inv.VMs.Resources),
		TotalDatabases:      len(inv.Databases.Resources),
		TotalStorageBuckets: len(inv.Storage.Resources),
	}
}
