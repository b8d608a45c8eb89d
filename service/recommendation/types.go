package recommendation

import (
	"github.com/elC0mpa/cloud-optimizer/model"
	"github.com/elC0mpa/cloud-optimizer/service/cost"
)

// Thresholds are the tunables behind the rule set.
type Thresholds struct {
	// IdleCPUPercent marks a running VM idle when its average CPU sits
	// below this value. VMs with unknown CPU are never flagged.
	IdleCPUPercent float64

	// Severity cutoffs for cost rules, in monthly USD savings.
	HighSavingsMonthly   float64
	MediumSavingsMonthly float64

	// StoragePercentile and MinStorageCohort govern the oversized storage
	// rule. Cohorts smaller than the minimum are skipped.
	StoragePercentile float64
	MinStorageCohort  int

	// StoppedVMDiskMonthly is the per-provider monthly disk cost still
	// accruing for a stopped VM.
	StoppedVMDiskMonthly map[model.Provider]float64
}

// DefaultThresholds returns the built-in rule tunables.
func DefaultThresholds() Thresholds {
	return Thresholds{
		IdleCPUPercent:       5,
		HighSavingsMonthly:   50,
		MediumSavingsMonthly: 5,
		StoragePercentile:    0.90,
		MinStorageCohort:     4,
		StoppedVMDiskMonthly: map[model.Provider]float64{
			model.ProviderAWS:   3,
			model.ProviderAzure: 25,
			model.ProviderGCP:   2,
		},
	}
}

type service struct {
	pricing    *cost.PricingTable
	thresholds Thresholds
}

// EngineService evaluates the rule set against an inventory.
type EngineService interface {
	Evaluate(inventory *model.ResourceInventory) *model.RecommendationSet
}
