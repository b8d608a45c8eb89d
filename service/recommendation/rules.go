package recommendation

import (
	"fmt"
	"math"
	"sort"

	"github.com/elC0mpa/cloud-optimizer/model"
)

type rule func(s *service, inventory *model.ResourceInventory) *model.Recommendation

// rules run in a fixed order so recommendation IDs are stable across runs.
var rules = []rule{
	idleVMs,
	stoppedVMs,
	unattachedVolumes,
	oversizedStorage,
	singleAZDatabases,
	unencryptedStorage,
	unversionedStorage,
}

// idleVMs flags running VMs whose average CPU sits below the idle threshold.
func idleVMs(s *service, inventory *model.ResourceInventory) *model.Recommendation {
	var ids []string
	var savings float64
	for _, vm := range inventory.VMs.Resources {
		if vm.State != "running" {
			continue
		}
		if vm.CPUPercent < 0 || vm.CPUPercent >= s.thresholds.IdleCPUPercent {
			continue
		}
		ids = append(ids, vm.ID)
		savings += s.pricing.VMDailyRate(vm.Provider, vm.Size) * 30
	}
	if len(ids) == 0 {
		return nil
	}
	savings = roundCents(savings)
	return &model.Recommendation{
		Category:    model.RecCategoryCost,
		Severity:    s.savingsSeverity(savings),
		Title:       fmt.Sprintf("%d idle virtual machine(s)", len(ids)),
		Description: fmt.Sprintf("Running VMs with average CPU below %.0f%% over the observed period.", s.thresholds.IdleCPUPercent),
		Action:      "Downsize or stop these instances, or schedule them to run only when needed.",
		ResourceIDs: ids,
		EstimatedSavingsMonthly: savings,
	}
}

// stoppedVMs flags stopped VMs still accruing disk charges.
func stoppedVMs(s *service, inventory *model.ResourceInventory) *model.Recommendation {
	var ids []string
	var savings float64
	for _, vm := range inventory.VMs.Resources {
		switch vm.State {
		case "stopped", "deallocated":
		default:
			continue
		}
		ids = append(ids, vm.ID)
		savings += s.thresholds.StoppedVMDiskMonthly[vm.Provider]
	}
	if len(ids) == 0 {
		return nil
	}
	savings = roundCents(savings)
	return &model.Recommendation{
		Category:    model.RecCategoryCost,
		Severity:    s.savingsSeverity(savings),
		Title:       fmt.Sprintf("%d stopped virtual machine(s)", len(ids)),
		Description: "Stopped VMs keep their attached disks, which are billed even while the instance is off.",
		Action:      "Deallocate the disks or terminate the instances if they are no longer needed.",
		ResourceIDs: ids,
		EstimatedSavingsMonthly: savings,
	}
}

// unattachedVolumes flags block volumes that are not attached to any VM.
func unattachedVolumes(s *service, inventory *model.ResourceInventory) *model.Recommendation {
	var ids []string
	var savings float64
	for _, res := range inventory.Storage.Resources {
		if res.State != "available" {
			continue
		}
		ids = append(ids, res.ID)
		savings += s.pricing.StorageMonthly(res.Provider, res.StorageGB)
	}
	if len(ids) == 0 {
		return nil
	}
	savings = roundCents(savings)
	return &model.Recommendation{
		Category:    model.RecCategoryCost,
		Severity:    s.savingsSeverity(savings),
		Title:       fmt.Sprintf("%d unattached volume(s)", len(ids)),
		Description: "Block volumes not attached to any instance are billed at full storage rates.",
		Action:      "Snapshot and delete volumes that are no longer needed.",
		ResourceIDs: ids,
		EstimatedSavingsMonthly: savings,
	}
}

// oversizedStorage compares each bucket against the 90th percentile of its
// provider and storage-class cohort. Small cohorts are skipped because the
// percentile is meaningless there.
func oversizedStorage(s *service, inventory *model.ResourceInventory) *model.Recommendation {
	type cohortKey struct {
		provider model.Provider
		size     string
	}

	cohorts := make(map[cohortKey][]float64)
	for _, res := range inventory.Storage.Resources {
		if res.StorageGB <= 0 {
			continue
		}
		key := cohortKey{provider: res.Provider, size: res.Size}
		cohorts[key] = append(cohorts[key], res.StorageGB)
	}

	p90 := make(map[cohortKey]float64)
	for key, sizes := range cohorts {
		if len(sizes) < s.thresholds.MinStorageCohort {
			continue
		}
		p90[key] = percentile(sizes, s.thresholds.StoragePercentile)
	}

	var ids []string
	var savings float64
	for _, res := range inventory.Storage.Resources {
		threshold, ok := p90[cohortKey{provider: res.Provider, size: res.Size}]
		if !ok || res.StorageGB <= threshold {
			continue
		}
		ids = append(ids, res.ID)
		savings += s.pricing.StorageMonthly(res.Provider, res.StorageGB-threshold)
	}
	if len(ids) == 0 {
		return nil
	}
	savings = roundCents(savings)
	return &model.Recommendation{
		Category:    model.RecCategoryCost,
		Severity:    s.savingsSeverity(savings),
		Title:       fmt.Sprintf("%d unusually large storage bucket(s)", len(ids)),
		Description: "These buckets are far larger than comparable buckets of the same class.",
		Action:      "Review lifecycle policies and move cold data to a cheaper storage tier.",
		ResourceIDs: ids,
		EstimatedSavingsMonthly: savings,
	}
}

// singleAZDatabases flags databases without zone redundancy.
func singleAZDatabases(s *service, inventory *model.ResourceInventory) *model.Recommendation {
	var ids []string
	for _, db := range inventory.Databases.Resources {
		if db.MultiAZ == nil || *db.MultiAZ {
			continue
		}
		ids = append(ids, db.ID)
	}
	if len(ids) == 0 {
		return nil
	}
	return &model.Recommendation{
		Category:    model.RecCategoryReliability,
		Severity:    model.SeverityHigh,
		Title:       fmt.Sprintf("%d database(s) without high availability", len(ids)),
		Description: "These databases run in a single availability zone and will be unavailable during a zone outage.",
		Action:      "Enable multi-AZ or regional availability for production databases.",
		ResourceIDs: ids,
	}
}

// unencryptedStorage flags buckets without encryption at rest.
func unencryptedStorage(s *service, inventory *model.ResourceInventory) *model.Recommendation {
	var ids []string
	for _, res := range inventory.Storage.Resources {
		if res.Encrypted == nil || *res.Encrypted {
			continue
		}
		ids = append(ids, res.ID)
	}
	if len(ids) == 0 {
		return nil
	}
	return &model.Recommendation{
		Category:    model.RecCategorySecurity,
		Severity:    model.SeverityHigh,
		Title:       fmt.Sprintf("%d storage bucket(s) without encryption", len(ids)),
		Description: "These buckets do not have server-side encryption configured.",
		Action:      "Enable default encryption on every bucket.",
		ResourceIDs: ids,
	}
}

// unversionedStorage flags buckets without object versioning.
func unversionedStorage(s *service, inventory *model.ResourceInventory) *model.Recommendation {
	var ids []string
	for _, res := range inventory.Storage.Resources {
		if res.Versioned == nil || *res.Versioned {
			continue
		}
		ids = append(ids, res.ID)
	}
	if len(ids) == 0 {
		return nil
	}
	return &model.Recommendation{
		Category:    model.RecCategoryReliability,
		Severity:    model.SeverityMedium,
		Title:       fmt.Sprintf("%d storage bucket(s) without versioning", len(ids)),
		Description: "Without versioning, overwritten or deleted objects cannot be recovered.",
		Action:      "Enable object versioning on buckets holding important data.",
		ResourceIDs: ids,
	}
}

// savingsSeverity ranks a cost recommendation by its monthly savings.
func (s *service) savingsSeverity(monthly float64) model.Severity {
	switch {
	case monthly > s.thresholds.HighSavingsMonthly:
		return model.SeverityHigh
	case monthly >= s.thresholds.MediumSavingsMonthly:
		return model.SeverityMedium
	default:
		return model.SeverityLow
	}
}

// percentile returns the interpolated percentile of the values. Interpolation
// keeps the threshold below the maximum on small cohorts, so a single outlier
// can still be flagged.
func percentile(values []float64, p float64) float64 {
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := p * float64(len(sorted)-1)
	lower := int(math.Floor(rank))
	if lower >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}
	frac := rank - float64(lower)
	return sorted[lower] + frac*(sorted[lower+1]-sorted[lower])
}

func roundCents(x float64) float64 {
	return math.Round(x*100) / 100
}
