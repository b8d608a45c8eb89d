package cost

import (
	"math"

	"github.com/elC0mpa/cloud-optimizer/model"
)

// DefaultPeriodDays is used when the caller asks for a non-positive period.
const DefaultPeriodDays = 30

func NewService(pricing *PricingTable) *service {
	if pricing == nil {
		pricing = DefaultPricingTable()
	}
	return &service{pricing: pricing}
}

// Estimate implements EstimatorService
// Failed categories contribute nothing, so a partial inventory yields a
// partial but internally consistent breakdown.
func (s *service) Estimate(inventory *model.ResourceInventory, periodDays int) *model.CostBreakdown {
	if periodDays <= 0 {
		periodDays = DefaultPeriodDays
	}
	days := float64(periodDays)

	breakdown := &model.CostBreakdown{
		ClientID:   inventory.ClientID,
		Provider:   inventory.Provider,
		PeriodDays: periodDays,
	}

	var compute, network float64
	for _, vm := range inventory.VMs.Resources {
		if !chargeableVMState(vm.State) {
			continue
		}
		compute += s.pricing.VMDailyRate(vm.Provider, vm.Size) * days
		network += s.pricing.NetworkDailyPerVM * days
	}

	var database float64
	for _, db := range inventory.Databases.Resources {
		database += s.pricing.DatabaseDailyRate(db.Provider, db.Size) * days
		if db.StorageGB > 0 {
			database += s.pricing.StorageMonthly(db.Provider, db.StorageGB) * days / DefaultPeriodDays
		}
	}

	// Buckets with no reported size cost zero rather than a guessed amount.
	var storage float64
	for _, bucket := range inventory.Storage.Resources {
		if bucket.StorageGB <= 0 {
			continue
		}
		storage += s.pricing.StorageMonthly(bucket.Provider, bucket.StorageGB) * days / DefaultPeriodDays
	}

	breakdown.Compute = roundCents(compute)
	breakdown.Network = roundCents(network)
	breakdown.Database = roundCents(database)
	breakdown.Storage = roundCents(storage)
	breakdown.Total = roundCents(breakdown.Compute + breakdown.Network + breakdown.Database + breakdown.Storage)
	breakdown.ProjectedMonthly = roundCents(breakdown.Total / days * DefaultPeriodDays)

	return breakdown
}

// chargeableVMState reports whether a VM accrues compute charges. Unknown
// states are charged to avoid underestimating.
func chargeableVMState(state string) bool {
	switch state {
	case "stopped", "deallocated", "terminated", "stopping", "deallocating":
		return false
	}
	return true
}

func roundCents(x float64) float64 {
	return math.Round(x*100) / 100
}
