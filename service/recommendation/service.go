package recommendation

import (
	"fmt"

	"github.com/elC0mpa/cloud-optimizer/model"
	"github.com/elC0mpa/cloud-optimizer/service/cost"
)

func NewService(pricing *cost.PricingTable, thresholds Thresholds) *service {
	if pricing == nil {
		pricing = cost.DefaultPricingTable()
	}
	if thresholds.StoppedVMDiskMonthly == nil {
		thresholds = DefaultThresholds()
	}
	return &service{pricing: pricing, thresholds: thresholds}
}

// Evaluate implements EngineService
// Rules only see the categories that succeeded, so a partial inventory
// yields fewer recommendations rather than wrong ones.
func (s *service) Evaluate(inventory *model.ResourceInventory) *model.RecommendationSet {
	set := &model.RecommendationSet{
		ClientID:        inventory.ClientID,
		Provider:        inventory.Provider,
		Recommendations: []model.Recommendation{},
	}

	for _, evaluate := range rules {
		rec := evaluate(s, inventory)
		if rec == nil {
			continue
		}
		rec.ID = fmt.Sprintf("rec_%d", len(set.Recommendations)+1)
		set.Recommendations = append(set.Recommendations, *rec)
	}

	set.Summarize()
	return set
}
