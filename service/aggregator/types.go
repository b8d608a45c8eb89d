package aggregator

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/elC0mpa/cloud-optimizer/model"
	"github.com/elC0mpa/cloud-optimizer/service"
	"github.com/elC0mpa/cloud-optimizer/service/cost"
	"github.com/elC0mpa/cloud-optimizer/service/credential"
	"github.com/elC0mpa/cloud-optimizer/service/fanout"
	"github.com/elC0mpa/cloud-optimizer/service/recommendation"
	"github.com/elC0mpa/cloud-optimizer/service/retry"
	"golang.org/x/sync/semaphore"
)

// Aggregation states, logged as each request moves through the pipeline.
const (
	stateResolvingCredential = "resolving_credential"
	stateFanningOut          = "fanning_out"
	stateComputing           = "computing"
	stateDone                = "done"
	stateFailed              = "failed"
)

// AdapterFactory builds a provider adapter from a resolved credential.
type AdapterFactory func(ctx context.Context, cred model.Credential) (service.ProviderAdapter, error)

// Config bounds the whole aggregation pipeline. Zero values fall back to
// the package defaults.
type Config struct {
	// OverallTimeout caps a full aggregation request end to end.
	OverallTimeout time.Duration

	// PeriodDays is the default analysis window for cost estimates.
	PeriodDays int

	CategoryTimeout time.Duration
	Retry           retry.Config
	CredentialTTL   time.Duration

	Pricing    *cost.PricingTable
	Thresholds recommendation.Thresholds

	Logger *slog.Logger
}

type aggregationService struct {
	store      service.ClientStore
	creds      *credential.Cache
	controller fanout.ControllerService
	estimator  cost.EstimatorService
	engine     recommendation.EngineService
	newAdapter AdapterFactory
	logger     *slog.Logger

	cfg Config

	// One in-flight aggregation per client. Concurrent requests for the
	// same client queue instead of hammering the provider APIs.
	mu         sync.Mutex
	semaphores map[string]*semaphore.Weighted
}

// Option overrides a collaborator, mainly for tests.
type Option func(*aggregationService)

// WithAdapterFactory replaces the SDK-backed adapter constructors.
func WithAdapterFactory(factory AdapterFactory) Option {
	return func(s *aggregationService) {
		s.newAdapter = factory
	}
}
