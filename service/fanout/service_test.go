package fanout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/elC0mpa/cloud-optimizer/model"
	"github.com/elC0mpa/cloud-optimizer/service/clouderr"
	"github.com/elC0mpa/cloud-optimizer/service/retry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdapter struct {
	provider  model.Provider
	vms       func(ctx context.Context) ([]model.Resource, error)
	databases func(ctx context.Context) ([]model.Resource, error)
	storage   func(ctx context.Context) ([]model.Resource, error)
}

func (f *fakeAdapter) Provider() model.Provider { return f.provider }

func (f *fakeAdapter) ListVMs(ctx context.Context) ([]model.Resource, error) {
	if f.vms == nil {
		return nil, nil
	}
	return f.vms(ctx)
}

func (f *fakeAdapter) ListDatabases(ctx context.Context) ([]model.Resource, error) {
	if f.databases == nil {
		return nil, nil
	}
	return f.databases(ctx)
}

func (f *fakeAdapter) ListStorage(ctx context.Context) ([]model.Resource, error) {
	if f.storage == nil {
		return nil, nil
	}
	return f.storage(ctx)
}

func (f *fakeAdapter) TestConnection(ctx context.Context) (string, error) {
	return "ok", nil
}

func fastRetry() retry.Config {
	return retry.Config{
		MaxAttempts:  3,
		InitialDelay: time.Millisecond,
		MaxDelay:     2 * time.Millisecond,
		Multiplier:   2.0,
		ShouldRetry:  clouderr.Retryable,
	}
}

func testClient() *model.Client {
	return &model.Client{ID: "client-1", Name: "Acme", Provider: model.ProviderAWS}
}

func fixedResources(resources ...model.Resource) func(ctx context.Context) ([]model.Resource, error) {
	return func(ctx context.Context) ([]model.Resource, error) {
		return resources, nil
	}
}

func TestBuildInventoryAllCategoriesSucceed(t *testing.T) {
	adapter := &fakeAdapter{
		provider:  model.ProviderAWS,
		vms:       fixedResources(model.Resource{ID: "i-1", Category: model.CategoryVM}),
		databases: fixedResources(model.Resource{ID: "db-1", Category: model.CategoryDatabase}),
		storage: fixedResources(
			model.Resource{ID: "b-1", Category: model.CategoryStorage},
			model.Resource{ID: "b-2", Category: model.CategoryStorage},
		),
	}

	inv := NewService(Config{Retry: fastRetry()}).BuildInventory(context.Background(), testClient(), adapter)

	assert.Equal(t, "client-1", inv.ClientID)
	assert.Equal(t, model.ProviderAWS, inv.Provider)
	assert.Empty(t, inv.Error)
	assert.Equal(t, 1, inv.Summary.TotalVMs)
	assert.Equal(t, 1, inv.Summary.TotalDatabases)
	assert.Equal(t, 2, inv.Summary.TotalStorageBuckets)
	assert.False(t, inv.FetchedAt.IsZero())
}

func TestBuildInventoryPartialFailure(t *testing.T) {
	adapter := &fakeAdapter{
		provider: model.ProviderAWS,
		vms:      fixedResources(model.Resource{ID: "i-1", Category: model.CategoryVM}),
		databases: func(ctx context.Context) ([]model.Resource, error) {
			return nil, clouderr.NewCallError("aws", "DescribeDBInstances", clouderr.KindAuth, errors.New("denied"))
		},
		storage: fixedResources(model.Resource{ID: "b-1", Category: model.CategoryStorage}),
	}

	inv := NewService(Config{Retry: fastRetry()}).BuildInventory(context.Background(), testClient(), adapter)

	assert.Empty(t, inv.VMs.Error)
	assert.Equal(t, "AuthError", inv.Databases.Error)
	assert.Empty(t, inv.Storage.Error)
	assert.Empty(t, inv.Error, "one healthy category keeps the inventory usable")
	assert.Equal(t, 0, inv.Summary.TotalDatabases)
	assert.NotNil(t, inv.Databases.Resources)
}

func TestBuildInventoryRetriesTransientFailure(t *testing.T) {
	attempts := 0
	adapter := &fakeAdapter{
		provider: model.ProviderAWS,
		vms: func(ctx context.Context) ([]model.Resource, error) {
			attempts++
			if attempts < 3 {
				return nil, clouderr.NewCallError("aws", "DescribeInstances", clouderr.KindRateLimited, errors.New("throttled"))
			}
			return []model.Resource{{ID: "i-1", Category: model.CategoryVM}}, nil
		},
	}

	inv := NewService(Config{Retry: fastRetry()}).BuildInventory(context.Background(), testClient(), adapter)

	assert.Equal(t, 3, attempts)
	assert.Empty(t, inv.VMs.Error)
	assert.Equal(t, 1, inv.Summary.TotalVMs)
}

func TestBuildInventoryDoesNotRetryAuthFailure(t *testing.T) {
	attempts := 0
	adapter := &fakeAdapter{
		provider: model.ProviderAWS,
		vms: func(ctx context.Context) ([]model.Resource, error) {
			attempts++
			return nil, clouderr.NewCallError("aws", "DescribeInstances", clouderr.KindAuth, errors.New("denied"))
		},
	}

	inv := NewService(Config{Retry: fastRetry()}).BuildInventory(context.Background(), testClient(), adapter)

	assert.Equal(t, 1, attempts)
	assert.Equal(t, "AuthError", inv.VMs.Error)
}

func TestBuildInventoryHangingAdapterHitsCategoryTimeout(t *testing.T) {
	adapter := &fakeAdapter{
		provider: model.ProviderAzure,
		vms: func(ctx context.Context) ([]model.Resource, error) {
			// Ignores its context on purpose.
			time.Sleep(5 * time.Second)
			return nil, nil
		},
		databases: fixedResources(model.Resource{ID: "db-1", Category: model.CategoryDatabase}),
		storage:   fixedResources(model.Resource{ID: "b-1", Category: model.CategoryStorage}),
	}

	controller := NewService(Config{CategoryTimeout: 50 * time.Millisecond, Retry: fastRetry()})

	start := time.Now()
	inv := controller.BuildInventory(context.Background(), testClient(), adapter)

	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, "Timeout", inv.VMs.Error)
	assert.Equal(t, 1, inv.Summary.TotalDatabases)
	assert.Equal(t, 1, inv.Summary.TotalStorageBuckets)
}

func TestBuildInventoryAllCategoriesFailed(t *testing.T) {
	fail := func(ctx context.Context) ([]model.Resource, error) {
		return nil, clouderr.NewCallError("aws", "op", clouderr.KindAuth, errors.New("denied"))
	}
	adapter := &fakeAdapter{provider: model.ProviderAWS, vms: fail, databases: fail, storage: fail}

	inv := NewService(Config{Retry: fastRetry()}).BuildInventory(context.Background(), testClient(), adapter)

	assert.Equal(t, "all resource categories failed", inv.Error)
	assert.Zero(t, inv.Summary.TotalVMs)
}

func TestBuildInventoryNilResourcesNormalized(t *testing.T) {
	adapter := &fakeAdapter{provider: model.ProviderGCP}

	inv := NewService(Config{Retry: fastRetry()}).BuildInventory(context.Background(), testClient(), adapter)

	require.NotNil(t, inv.VMs.Resources)
	require.NotNil(t, inv.Databases.Resources)
	require.NotNil(t, inv.Storage.Resources)
	assert.Empty(t, inv.Error)
}
