package cost

import (
	"testing"

	"github.com/elC0mpa/cloud-optimizer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeVM(id, size, state string) model.Resource {
	return model.Resource{
		ID:         id,
		Category:   model.CategoryVM,
		Provider:   model.ProviderAWS,
		Size:       size,
		State:      state,
		CPUPercent: model.CPUUnknown,
	}
}

func makeInventory(vms, databases, storage []model.Resource) *model.ResourceInventory {
	inv := &model.ResourceInventory{
		ClientID:  "client-1",
		Provider:  model.ProviderAWS,
		VMs:       model.CategoryResult{Resources: vms},
		Databases: model.CategoryResult{Resources: databases},
		Storage:   model.CategoryResult{Resources: storage},
	}
	inv.Recount()
	return inv
}

func TestEstimateChargesOnlyRunningVMs(t *testing.T) {
	inv := makeInventory([]model.Resource{
		makeVM("i-1", "m5.large", "running"),
		makeVM("i-2", "m5.large", "stopped"),
	}, nil, nil)

	breakdown := NewService(nil).Estimate(inv, 30)

	// One m5.large at 2.304/day for 30 days.
	assert.InDelta(t, 69.12, breakdown.Compute, 0.01)
	assert.InDelta(t, 15.0, breakdown.Network, 0.01, "flat network allowance per running VM")
}

func TestEstimateDatabaseIncludesStorage(t *testing.T) {
	inv := makeInventory(nil, []model.Resource{
		{
			ID:        "db-1",
			Category:  model.CategoryDatabase,
			Provider:  model.ProviderAWS,
			Size:      "db.t3.micro",
			StorageGB: 100,
		},
	}, nil)

	breakdown := NewService(nil).Estimate(inv, 30)

	// 0.408/day over 30 days plus 100 GB at 0.023/GB-month.
	assert.InDelta(t, 12.24+2.30, breakdown.Database, 0.01)
}

func TestEstimateSkipsUnsizedBuckets(t *testing.T) {
	inv := makeInventory(nil, nil, []model.Resource{
		{ID: "bucket-1", Category: model.CategoryStorage, Provider: model.ProviderAWS, StorageGB: 0},
		{ID: "bucket-2", Category: model.CategoryStorage, Provider: model.ProviderAWS, StorageGB: 500},
	})

	breakdown := NewService(nil).Estimate(inv, 30)

	assert.InDelta(t, 11.50, breakdown.Storage, 0.01)
}

func TestEstimateTotalIsSumOfSubtotals(t *testing.T) {
	inv := makeInventory(
		[]model.Resource{makeVM("i-1", "t3.micro", "running")},
		[]model.Resource{{ID: "db-1", Category: model.CategoryDatabase, Provider: model.ProviderAWS, Size: "db.t3.small", StorageGB: 20}},
		[]model.Resource{{ID: "bucket-1", Category: model.CategoryStorage, Provider: model.ProviderAWS, StorageGB: 100}},
	)

	breakdown := NewService(nil).Estimate(inv, 14)

	sum := breakdown.Compute + breakdown.Network + breakdown.Database + breakdown.Storage
	assert.InDelta(t, sum, breakdown.Total, 0.001)
}

func TestEstimateProjectedMonthlyScalesPeriod(t *testing.T) {
	inv := makeInventory([]model.Resource{makeVM("i-1", "m5.large", "running")}, nil, nil)

	breakdown := NewService(nil).Estimate(inv, 15)

	assert.Equal(t, 15, breakdown.PeriodDays)
	assert.InDelta(t, breakdown.Total*2, breakdown.ProjectedMonthly, 0.01)
}

func TestEstimateIsIdempotent(t *testing.T) {
	inv := makeInventory(
		[]model.Resource{makeVM("i-1", "m5.large", "running")},
		[]model.Resource{{ID: "db-1", Category: model.CategoryDatabase, Provider: model.ProviderAWS, Size: "db.t3.micro", StorageGB: 50}},
		nil,
	)
	estimator := NewService(nil)

	first := estimator.Estimate(inv, 30)
	second := estimator.Estimate(inv, 30)

	assert.Equal(t, first, second)
}

func TestEstimateDefaultsPeriodDays(t *testing.T) {
	inv := makeInventory(nil, nil, nil)

	breakdown := NewService(nil).Estimate(inv, 0)

	assert.Equal(t, DefaultPeriodDays, breakdown.PeriodDays)
	assert.Zero(t, breakdown.Total)
}

func TestEstimateUnknownSizeUsesFallbackRate(t *testing.T) {
	inv := makeInventory([]model.Resource{makeVM("i-1", "x9.mega", "running")}, nil, nil)

	breakdown := NewService(nil).Estimate(inv, 30)

	pricing := DefaultPricingTable()
	require.Equal(t, pricing.FallbackComputeDaily, pricing.VMDailyRate(model.ProviderAWS, "x9.mega"))
	assert.InDelta(t, pricing.FallbackComputeDaily*30, breakdown.Compute, 0.01)
}

func TestEstimateUnknownVMStateIsCharged(t *testing.T) {
	inv := makeInventory([]model.Resource{makeVM("i-1", "t3.micro", "")}, nil, nil)

	breakdown := NewService(nil).Estimate(inv, 30)

	assert.Greater(t, breakdown.Compute, 0.0)
}
