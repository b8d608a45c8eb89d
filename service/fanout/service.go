package fanout

import (
	"context"
	"log/slog"
	"time"

	"github.com/elC0mpa/cloud-optimizer/model"
	"github.com/elC0mpa/cloud-optimizer/service"
	"github.com/elC0mpa/cloud-optimizer/service/clouderr"
	"github.com/elC0mpa/cloud-optimizer/service/retry"
	"golang.org/x/sync/errgroup"
)

// DefaultCategoryTimeout is the per-category call budget.
const DefaultCategoryTimeout = 10 * time.Second

func NewService(cfg Config) *controller {
	if cfg.CategoryTimeout <= 0 {
		cfg.CategoryTimeout = DefaultCategoryTimeout
	}
	if cfg.Retry.MaxAttempts == 0 {
		cfg.Retry = retry.DefaultConfig
	}
	if cfg.Retry.ShouldRetry == nil {
		cfg.Retry.ShouldRetry = clouderr.Retryable
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &controller{cfg: cfg, logger: logger}
}

// BuildInventory implements ControllerService
// Launches the three category calls concurrently, each under its own
// timeout and retry policy, and joins them under the caller's deadline.
// Terminal category errors are recorded as strings, never propagated.
func (c *controller) BuildInventory(ctx context.Context, client *model.Client, adapter service.ProviderAdapter) *model.ResourceInventory {
	inv := &model.ResourceInventory{
		Provider:  adapter.Provider(),
		FetchedAt: time.Now().UTC(),
	}
	if client != nil {
		inv.ClientID = client.ID
		inv.ClientName = client.Name
	}

	var g errgroup.Group
	g.Go(func() error {
		inv.VMs = c.collect(ctx, inv.ClientID, model.CategoryVM, adapter.ListVMs)
		return nil
	})
	g.Go(func() error {
		inv.Databases = c.collect(ctx, inv.ClientID, model.CategoryDatabase, adapter.ListDatabases)
		return nil
	})
	g.Go(func() error {
		inv.Storage = c.collect(ctx, inv.ClientID, model.CategoryStorage, adapter.ListStorage)
		return nil
	})
	g.Wait()

	inv.Recount()
	if inv.VMs.Failed() && inv.Databases.Failed() && inv.Storage.Failed() {
		inv.Error = "all resource categories failed"
	}
	return inv
}

// collect runs one category call to its final outcome. The adapter call is
// raced against the category deadline so a misbehaving adapter that ignores
// its context cannot hold the join past the budget.
func (c *controller) collect(ctx context.Context, clientID string, category model.ResourceCategory, list func(context.Context) ([]model.Resource, error)) model.CategoryResult {
	cctx, cancel := context.WithTimeout(ctx, c.cfg.CategoryTimeout)
	defer cancel()

	type outcome struct {
		resources []model.Resource
		err       error
	}

	ch := make(chan outcome, 1)
	go func() {
		resources, err := retry.Do(cctx, c.cfg.Retry, list)
		ch <- outcome{resources: resources, err: err}
	}()

	select {
	case o := <-ch:
		if o.err != nil {
			kind := clouderr.KindOf(o.err)
			c.logger.Debug("category call failed",
				"client", clientID,
				"category", category,
				"kind", kind,
				"error", o.err)
			return model.CategoryResult{Resources: []model.Resource{}, Error: string(kind)}
		}
		if o.resources == nil {
			o.resources = []model.Resource{}
		}
		c.logger.Debug("category call finished",
			"client", clientID,
			"category", category,
			"count", len(o.resources))
		return model.CategoryResult{Resources: o.resources}
	case <-cctx.Done():
		c.logger.Debug("category call abandoned at deadline",
			"client", clientID,
			"category", category)
		return model.CategoryResult{Resources: []model.Resource{}, Error: string(clouderr.KindTimeout)}
	}
}
