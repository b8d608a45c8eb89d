package aggregator

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/elC0mpa/cloud-optimizer/model"
	"github.com/elC0mpa/cloud-optimizer/service"
	awsadapter "github.com/elC0mpa/cloud-optimizer/service/aws"
	azureadapter "github.com/elC0mpa/cloud-optimizer/service/azure"
	"github.com/elC0mpa/cloud-optimizer/service/clouderr"
	"github.com/elC0mpa/cloud-optimizer/service/cost"
	"github.com/elC0mpa/cloud-optimizer/service/credential"
	"github.com/elC0mpa/cloud-optimizer/service/fanout"
	gcpadapter "github.com/elC0mpa/cloud-optimizer/service/gcp"
	"github.com/elC0mpa/cloud-optimizer/service/recommendation"
	"golang.org/x/sync/semaphore"
)

// DefaultOverallTimeout caps one aggregation request end to end.
const DefaultOverallTimeout = 30 * time.Second

func NewService(store service.ClientStore, cfg Config, opts ...Option) *aggregationService {
	if cfg.OverallTimeout <= 0 {
		cfg.OverallTimeout = DefaultOverallTimeout
	}
	if cfg.PeriodDays <= 0 {
		cfg.PeriodDays = cost.DefaultPeriodDays
	}
	if cfg.Pricing == nil {
		cfg.Pricing = cost.DefaultPricingTable()
	}
	if cfg.Thresholds.StoppedVMDiskMonthly == nil {
		cfg.Thresholds = recommendation.DefaultThresholds()
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	s := &aggregationService{
		store: store,
		creds: credential.NewCache(credential.NewService(), cfg.CredentialTTL),
		controller: fanout.NewService(fanout.Config{
			CategoryTimeout: cfg.CategoryTimeout,
			Retry:           cfg.Retry,
			Logger:          logger,
		}),
		estimator:  cost.NewService(cfg.Pricing),
		engine:     recommendation.NewService(cfg.Pricing, cfg.Thresholds),
		newAdapter: defaultAdapterFactory,
		logger:     logger,
		cfg:        cfg,
		semaphores: make(map[string]*semaphore.Weighted),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// defaultAdapterFactory dispatches on the resolved credential type.
func defaultAdapterFactory(ctx context.Context, cred model.Credential) (service.ProviderAdapter, error) {
	switch c := cred.(type) {
	case model.AWSCredential:
		return awsadapter.NewService(ctx, c)
	case model.AzureCredential:
		return azureadapter.NewService(c)
	case model.GCPCredential:
		return gcpadapter.NewService(ctx, c)
	default:
		return nil, fmt.Errorf("no adapter for provider %s", cred.Provider())
	}
}

// GetInventory implements service.AggregationService
// Credential shape problems surface as errors. Provider-side failures do
// not: they are folded into the inventory's per-category error strings.
func (s *aggregationService) GetInventory(ctx context.Context, clientID string) (*model.ResourceInventory, error) {
	client, err := s.store.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("aggregation state", "client", clientID, "state", stateResolvingCredential)
	cred, err := s.creds.Resolve(client)
	if err != nil {
		s.logger.Debug("aggregation state", "client", clientID, "state", stateFailed, "error", err)
		return nil, err
	}

	sem := s.clientSemaphore(clientID)
	if err := sem.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	defer sem.Release(1)

	ctx, cancel := context.WithTimeout(ctx, s.cfg.OverallTimeout)
	defer cancel()

	adapter, err := s.newAdapter(ctx, cred)
	if err != nil {
		s.logger.Debug("aggregation state", "client", clientID, "state", stateFailed, "error", err)
		return failedInventory(client, err), nil
	}

	s.logger.Debug("aggregation state", "client", clientID, "state", stateFanningOut)
	inv := s.controller.BuildInventory(ctx, client, adapter)
	s.logger.Debug("aggregation state", "client", clientID, "state", stateDone,
		"vms", inv.Summary.TotalVMs,
		"databases", inv.Summary.TotalDatabases,
		"storage", inv.Summary.TotalStorageBuckets)
	return inv, nil
}

// GetCostBreakdown implements service.AggregationService
func (s *aggregationService) GetCostBreakdown(ctx context.Context, clientID string, periodDays int) (*model.CostBreakdown, error) {
	if periodDays <= 0 {
		periodDays = s.cfg.PeriodDays
	}
	inv, err := s.GetInventory(ctx, clientID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("aggregation state", "client", clientID, "state", stateComputing, "period_days", periodDays)
	return s.estimator.Estimate(inv, periodDays), nil
}

// GetRecommendations implements service.AggregationService
func (s *aggregationService) GetRecommendations(ctx context.Context, clientID string) (*model.RecommendationSet, error) {
	inv, err := s.GetInventory(ctx, clientID)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("aggregation state", "client", clientID, "state", stateComputing)
	return s.engine.Evaluate(inv), nil
}

// TestConnection implements service.AggregationService
// Credential and auth failures are part of the result, not errors: callers
// only get an error when the client itself cannot be looked up.
func (s *aggregationService) TestConnection(ctx context.Context, clientID string) (*model.ConnectionTestResult, error) {
	client, err := s.store.GetClientByID(ctx, clientID)
	if err != nil {
		return nil, err
	}

	result := &model.ConnectionTestResult{Provider: client.Provider}

	cred, err := s.creds.Resolve(client)
	if err != nil {
		result.Details = err.Error()
		return result, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.cfg.OverallTimeout)
	defer cancel()

	adapter, err := s.newAdapter(ctx, cred)
	if err != nil {
		result.Details = err.Error()
		return result, nil
	}

	details, err := adapter.TestConnection(ctx)
	if err != nil {
		result.Details = err.Error()
		return result, nil
	}

	result.OK = true
	result.Details = details
	return result, nil
}

func (s *aggregationService) clientSemaphore(clientID string) *semaphore.Weighted {
	s.mu.Lock()
	defer s.mu.Unlock()

	sem, ok := s.semaphores[clientID]
	if !ok {
		sem = semaphore.NewWeighted(1)
		s.semaphores[clientID] = sem
	}
	return sem
}

// failedInventory marks every category failed when the provider adapter
// could not even be constructed.
func failedInventory(client *model.Client, err error) *model.ResourceInventory {
	kind := string(clouderr.KindOf(err))
	failed := model.CategoryResult{Resources: []model.Resource{}, Error: kind}

	inv := &model.ResourceInventory{
		ClientID:   client.ID,
		ClientName: client.Name,
		Provider:   client.Provider,
		VMs:        failed,
		Databases:  failed,
		Storage:    failed,
		Error:      "all resource categories failed",
		FetchedAt:  time.Now().UTC(),
	}
	inv.Recount()
	return inv
}
