package recommendation

import (
	"testing"

	"github.com/elC0mpa/cloud-optimizer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(v bool) *bool { return &v }

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

func evaluate(t *testing.T, inv *model.ResourceInventory) *model.RecommendationSet {
	t.Helper()
	return NewService(nil, DefaultThresholds()).Evaluate(inv)
}

func findRec(set *model.RecommendationSet, title string) *model.Recommendation {
	for i := range set.Recommendations {
		if set.Recommendations[i].Title == title {
			return &set.Recommendations[i]
		}
	}
	return nil
}

func TestEvaluateEmptyInventory(t *testing.T) {
	set := evaluate(t, makeInventory(nil, nil, nil))

	assert.Empty(t, set.Recommendations)
	assert.Zero(t, set.Summary.Total)
	assert.Zero(t, set.Summary.TotalPotentialSavingsMonthly)
}

func TestIdleVMRule(t *testing.T) {
	set := evaluate(t, makeInventory([]model.Resource{
		{ID: "i-idle", Category: model.CategoryVM, Provider: model.ProviderAWS, Size: "m5.large", State: "running", CPUPercent: 2},
		{ID: "i-busy", Category: model.CategoryVM, Provider: model.ProviderAWS, Size: "m5.large", State: "running", CPUPercent: 80},
		{ID: "i-unknown", Category: model.CategoryVM, Provider: model.ProviderAWS, Size: "m5.large", State: "running", CPUPercent: model.CPUUnknown},
	}, nil, nil))

	rec := findRec(set, "1 idle virtual machine(s)")
	require.NotNil(t, rec)
	assert.Equal(t, []string{"i-idle"}, rec.ResourceIDs)
	// One m5.large at 2.304/day, 30 days: savings above the high cutoff.
	assert.InDelta(t, 69.12, rec.EstimatedSavingsMonthly, 0.01)
	assert.Equal(t, model.SeverityHigh, rec.Severity)
	assert.Equal(t, model.RecCategoryCost, rec.Category)
}

func TestStoppedVMRuleUsesProviderDiskRate(t *testing.T) {
	set := evaluate(t, makeInventory([]model.Resource{
		{ID: "vm-1", Category: model.CategoryVM, Provider: model.ProviderAzure, Size: "Standard_B2s", State: "deallocated", CPUPercent: model.CPUUnknown},
	}, nil, nil))

	rec := findRec(set, "1 stopped virtual machine(s)")
	require.NotNil(t, rec)
	assert.InDelta(t, 25, rec.EstimatedSavingsMonthly, 0.01)
	assert.Equal(t, model.SeverityMedium, rec.Severity)
}

func TestUnattachedVolumeRule(t *testing.T) {
	set := evaluate(t, makeInventory(nil, nil, []model.Resource{
		{ID: "vol-1", Category: model.CategoryStorage, Provider: model.ProviderAWS, State: "available", StorageGB: 200},
	}))

	rec := findRec(set, "1 unattached volume(s)")
	require.NotNil(t, rec)
	// 200 GB at 0.023/GB-month.
	assert.InDelta(t, 4.60, rec.EstimatedSavingsMonthly, 0.01)
	assert.Equal(t, model.SeverityLow, rec.Severity)
}

func TestOversizedStorageRuleNeedsCohort(t *testing.T) {
	small := []model.Resource{
		{ID: "b-1", Category: model.CategoryStorage, Provider: model.ProviderAWS, Size: "standard", StorageGB: 10},
		{ID: "b-2", Category: model.CategoryStorage, Provider: model.ProviderAWS, Size: "standard", StorageGB: 5000},
	}
	set := evaluate(t, makeInventory(nil, nil, small))
	assert.Nil(t, findRec(set, "1 unusually large storage bucket(s)"), "cohorts below the minimum are skipped")

	cohort := []model.Resource{
		{ID: "b-1", Category: model.CategoryStorage, Provider: model.ProviderAWS, Size: "standard", StorageGB: 10},
		{ID: "b-2", Category: model.CategoryStorage, Provider: model.ProviderAWS, Size: "standard", StorageGB: 12},
		{ID: "b-3", Category: model.CategoryStorage, Provider: model.ProviderAWS, Size: "standard", StorageGB: 15},
		{ID: "b-4", Category: model.CategoryStorage, Provider: model.ProviderAWS, Size: "standard", StorageGB: 20},
		{ID: "b-5", Category: model.CategoryStorage, Provider: model.ProviderAWS, Size: "standard", StorageGB: 5000},
	}
	set = evaluate(t, makeInventory(nil, nil, cohort))

	rec := findRec(set, "1 unusually large storage bucket(s)")
	require.NotNil(t, rec)
	assert.Equal(t, []string{"b-5"}, rec.ResourceIDs)
	assert.Greater(t, rec.EstimatedSavingsMonthly, 0.0)
}

func TestSingleAZDatabaseRule(t *testing.T) {
	set := evaluate(t, makeInventory(nil, []model.Resource{
		{ID: "db-single", Category: model.CategoryDatabase, Provider: model.ProviderAWS, MultiAZ: boolPtr(false)},
		{ID: "db-multi", Category: model.CategoryDatabase, Provider: model.ProviderAWS, MultiAZ: boolPtr(true)},
		{ID: "db-unknown", Category: model.CategoryDatabase, Provider: model.ProviderAWS},
	}, nil))

	rec := findRec(set, "1 database(s) without high availability")
	require.NotNil(t, rec)
	assert.Equal(t, []string{"db-single"}, rec.ResourceIDs)
	assert.Equal(t, model.SeverityHigh, rec.Severity)
	assert.Equal(t, model.RecCategoryReliability, rec.Category)
	assert.Zero(t, rec.EstimatedSavingsMonthly)
}

func TestStorageHygieneRules(t *testing.T) {
	set := evaluate(t, makeInventory(nil, nil, []model.Resource{
		{ID: "b-1", Category: model.CategoryStorage, Provider: model.ProviderAWS, Encrypted: boolPtr(false), Versioned: boolPtr(false)},
		{ID: "b-2", Category: model.CategoryStorage, Provider: model.ProviderAWS, Encrypted: boolPtr(true), Versioned: boolPtr(true)},
	}))

	encryption := findRec(set, "1 storage bucket(s) without encryption")
	require.NotNil(t, encryption)
	assert.Equal(t, model.RecCategorySecurity, encryption.Category)
	assert.Equal(t, model.SeverityHigh, encryption.Severity)

	versioning := findRec(set, "1 storage bucket(s) without versioning")
	require.NotNil(t, versioning)
	assert.Equal(t, model.SeverityMedium, versioning.Severity)
}

func TestEvaluateSummaryIdentities(t *testing.T) {
	set := evaluate(t, makeInventory(
		[]model.Resource{
			{ID: "i-idle", Category: model.CategoryVM, Provider: model.ProviderAWS, Size: "m5.large", State: "running", CPUPercent: 1},
			{ID: "i-stopped", Category: model.CategoryVM, Provider: model.ProviderAWS, Size: "t3.micro", State: "stopped", CPUPercent: model.CPUUnknown},
		},
		[]model.Resource{{ID: "db-1", Category: model.CategoryDatabase, Provider: model.ProviderAWS, MultiAZ: boolPtr(false)}},
		nil,
	))

	assert.Equal(t, len(set.Recommendations), set.Summary.Total)

	var savings float64
	var high int
	for _, rec := range set.Recommendations {
		savings += rec.EstimatedSavingsMonthly
		if rec.Severity == model.SeverityHigh {
			high++
		}
	}
	assert.InDelta(t, savings, set.Summary.TotalPotentialSavingsMonthly, 0.001)
	assert.Equal(t, high, set.Summary.HighSeverity)
}

func TestEvaluateAssignsSequentialIDs(t *testing.T) {
	set := evaluate(t, makeInventory(nil, nil, []model.Resource{
		{ID: "b-1", Category: model.CategoryStorage, Provider: model.ProviderAWS, Encrypted: boolPtr(false), Versioned: boolPtr(false)},
	}))

	require.Len(t, set.Recommendations, 2)
	assert.Equal(t, "rec_1", set.Recommendations[0].ID)
	assert.Equal(t, "rec_2", set.Recommendations[1].ID)
}

func TestPercentileInterpolates(t *testing.T) {
	values := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	assert.InDelta(t, 91.0, percentile(values, 0.90), 0.001)
	assert.Equal(t, 100.0, percentile([]float64{100}, 0.90))
}
