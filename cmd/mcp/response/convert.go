package response

import (
	"time"

	"github.com/elC0mpa/cloud-optimizer/model"
)

// ConvertInventory converts model.ResourceInventory to response.Inventory
func ConvertInventory(inv *model.ResourceInventory) *Inventory {
	if inv == nil {
		return nil
	}
	return &Inventory{
		ClientID:   inv.ClientID,
		ClientName: inv.ClientName,
		Provider:   string(inv.Provider),
		VMs:        convertCategoryResult(inv.VMs),
		Databases:  convertCategoryResult(inv.Databases),
		Storage:    convertCategoryResult(inv.Storage),
		Summary: InventorySummary{
			TotalVMs:            inv.Summary.TotalVMs,
			TotalDatabases:      inv.Summary.TotalDatabases,
			TotalStorageBuckets: inv.Summary.TotalStorageBuckets,
		},
		Error:     inv.Error,
		FetchedAt: inv.FetchedAt.Format(time.RFC3339),
	}
}

func convertCategoryResult(result model.CategoryResult) CategoryResult {
	resources := make([]Resource, 0, len(result.Resources))
	for _, res := range result.Resources {
		resources = append(resources, convertResource(res))
	}
	return CategoryResult{Resources: resources, Error: result.Error}
}

func convertResource(res model.Resource) Resource {
	out := Resource{
		ID:        res.ID,
		Name:      res.Name,
		Category:  string(res.Category),
		Provider:  string(res.Provider),
		Region:    res.Region,
		Size:      res.Size,
		State:     res.State,
		Engine:    res.Engine,
		StorageGB: res.StorageGB,
		MultiAZ:   res.MultiAZ,
		Encrypted: res.Encrypted,
		Versioned: res.Versioned,
		Metadata:  res.Metadata,
	}
	// Unknown CPU is omitted rather than serialized as a sentinel.
	if res.CPUPercent >= 0 {
		cpu := res.CPUPercent
		out.CPUPercent = &cpu
	}
	return out
}

// ConvertCostBreakdown converts model.CostBreakdown to response.CostBreakdown
func ConvertCostBreakdown(breakdown *model.CostBreakdown) *CostBreakdown {
	if breakdown == nil {
		return nil
	}
	return &CostBreakdown{
		ClientID:         breakdown.ClientID,
		Provider:         string(breakdown.Provider),
		PeriodDays:       breakdown.PeriodDays,
		Compute:          breakdown.Compute,
		Storage:          breakdown.Storage,
		Network:          breakdown.Network,
		Database:         breakdown.Database,
		Total:            breakdown.Total,
		ProjectedMonthly: breakdown.ProjectedMonthly,
	}
}

// ConvertRecommendationSet converts model.RecommendationSet to response.RecommendationSet
func ConvertRecommendationSet(set *model.RecommendationSet) *RecommendationSet {
	if set == nil {
		return nil
	}

	recommendations := make([]Recommendation, 0, len(set.Recommendations))
	for _, rec := range set.Recommendations {
		recommendations = append(recommendations, Recommendation{
			ID:                      rec.ID,
			Category:                string(rec.Category),
			Severity:                string(rec.Severity),
			Title:                   rec.Title,
			Description:             rec.Description,
			Action:                  rec.Action,
			ResourceIDs:             rec.ResourceIDs,
			EstimatedSavingsMonthly: rec.EstimatedSavingsMonthly,
		})
	}

	return &RecommendationSet{
		ClientID:        set.ClientID,
		Provider:        string(set.Provider),
		Recommendations: recommendations,
		Summary: RecommendationSummary{
			Total:                        set.Summary.Total,
			HighSeverity:                 set.Summary.HighSeverity,
			TotalPotentialSavingsMonthly: set.Summary.TotalPotentialSavingsMonthly,
		},
	}
}

// ConvertConnectionTestResult converts model.ConnectionTestResult to response.ConnectionTestResult
func ConvertConnectionTestResult(result *model.ConnectionTestResult) *ConnectionTestResult {
	if result == nil {
		return nil
	}
	return &ConnectionTestResult{
		OK:       result.OK,
		Provider: string(result.Provider),
		Details:  result.Details,
	}
}
