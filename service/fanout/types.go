package fanout

import (
	"context"
	"log/slog"
	"time"

	"github.com/elC0mpa/cloud-optimizer/model"
	"github.com/elC0mpa/cloud-optimizer/service"
	"github.com/elC0mpa/cloud-optimizer/service/retry"
)

// Config bounds one aggregation fan-out. Zero values fall back to the
// package defaults.
type Config struct {
	// CategoryTimeout is the independent budget of each category call,
	// retries included.
	CategoryTimeout time.Duration

	// Retry governs transient-error retries within a category call.
	Retry retry.Config

	Logger *slog.Logger
}

type controller struct {
	cfg    Config
	logger *slog.Logger
}

// ControllerService builds one ResourceInventory per client. It never
// returns an error: worst case every category carries an error string.
type ControllerService interface {
	BuildInventory(ctx context.Context, client *model.Client, adapter service.ProviderAdapter) *model.ResourceInventory
}
