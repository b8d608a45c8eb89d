package orchestrator

import (
	"context"

	"github.com/elC0mpa/cloud-optimizer/model"
	svc "github.com/elC0mpa/cloud-optimizer/service"
	"github.com/elC0mpa/cloud-optimizer/utils"
)

func NewService(engine svc.AggregationService) *service {
	return &service{engine: engine}
}

func (s *service) Orchestrate(flags model.Flags) error {
	if flags.Test {
		return s.testWorkflow(flags)
	}

	if flags.Cost {
		return s.costWorkflow(flags)
	}

	if flags.Recommend {
		return s.recommendWorkflow(flags)
	}

	return s.inventoryWorkflow(flags)
}

func (s *service) inventoryWorkflow(flags model.Flags) error {
	inv, err := s.engine.GetInventory(context.Background(), flags.ClientID)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawInventoryTable(inv)
	return nil
}

func (s *service) costWorkflow(flags model.Flags) error {
	breakdown, err := s.engine.GetCostBreakdown(context.Background(), flags.ClientID, flags.PeriodDays)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawCostTable(breakdown)
	return nil
}

func (s *service) recommendWorkflow(flags model.Flags) error {
	set, err := s.engine.GetRecommendations(context.Background(), flags.ClientID)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawRecommendationTable(set)
	return nil
}

func (s *service) testWorkflow(flags model.Flags) error {
	result, err := s.engine.TestConnection(context.Background(), flags.ClientID)
	if err != nil {
		return err
	}

	utils.StopSpinner()

	utils.DrawConnectionResult(result)
	return nil
}
