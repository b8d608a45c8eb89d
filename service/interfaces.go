package service

import (
	"context"

	"github.com/elC0mpa/cloud-optimizer/model"
)

// ProviderAdapter implements the common capability set against one
// provider's SDK. Each call is independent, side-effect free, respects the
// caller's deadline, and returns either normalized resources or an error
// classified by the clouderr taxonomy.
type ProviderAdapter interface {
	Provider() model.Provider
	ListVMs(ctx context.Context) ([]model.Resource, error)
	ListDatabases(ctx context.Context) ([]model.Resource, error)
	ListStorage(ctx context.Context) ([]model.Resource, error)

	// TestConnection performs one minimal authenticated call and describes
	// the outcome. An auth failure is returned as an error for the facade to
	// fold into a negative ConnectionTestResult.
	TestConnection(ctx context.Context) (string, error)
}

// ClientStore is the inbound boundary to the external account layer.
// Authorization is checked by the caller before the engine is invoked.
type ClientStore interface {
	GetClientByID(ctx context.Context, id string) (*model.Client, error)
}

// AggregationService is the engine's public contract.
type AggregationService interface {
	GetInventory(ctx context.Context, clientID string) (*model.ResourceInventory, error)
	GetCostBreakdown(ctx context.Context, clientID string, periodDays int) (*model.CostBreakdown, error)
	GetRecommendations(ctx context.Context, clientID string) (*model.RecommendationSet, error)
	TestConnection(ctx context.Context, clientID string) (*model.ConnectionTestResult, error)
}
