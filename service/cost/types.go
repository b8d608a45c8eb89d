package cost

import (
	"github.com/elC0mpa/cloud-optimizer/model"
)

type service struct {
	pricing *PricingTable
}

// EstimatorService turns an inventory into a cost breakdown using the
// static pricing table.
type EstimatorService interface {
	Estimate(inventory *model.ResourceInventory, periodDays int) *model.CostBreakdown
}
