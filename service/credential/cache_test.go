package credential

import (
	"testing"
	"time"

	"github.com/elC0mpa/cloud-optimizer/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingResolver struct {
	inner ResolverService
	calls int
}

func (r *countingResolver) Resolve(client *model.Client) (model.Credential, error) {
	r.calls++
	return r.inner.Resolve(client)
}

func TestCacheReusesResolvedCredential(t *testing.T) {
	resolver := &countingResolver{inner: NewService()}
	cache := NewCache(resolver, time.Minute)

	client := makeClient(model.ProviderGCP, map[string]string{
		"project_id":   "my-project",
		"private_key":  "key",
		"client_email": "svc@my-project.iam.gserviceaccount.com",
	})

	for i := 0; i < 3; i++ {
		_, err := cache.Resolve(client)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, resolver.calls)
}

func TestCacheExpiresAfterTTL(t *testing.T) {
	resolver := &countingResolver{inner: NewService()}
	cache := NewCache(resolver, time.Minute)

	current := time.Now()
	cache.now = func() time.Time { return current }

	client := makeClient(model.ProviderGCP, map[string]string{
		"project_id":   "my-project",
		"private_key":  "key",
		"client_email": "svc@my-project.iam.gserviceaccount.com",
	})

	_, err := cache.Resolve(client)
	require.NoError(t, err)

	current = current.Add(2 * time.Minute)

	_, err = cache.Resolve(client)
	require.NoError(t, err)
	assert.Equal(t, 2, resolver.calls)
}

func TestCacheInvalidatesOnCredentialChange(t *testing.T) {
	resolver := &countingResolver{inner: NewService()}
	cache := NewCache(resolver, time.Minute)

	client := makeClient(model.ProviderAWS, map[string]string{
		"access_key_id":     "AKIA1234",
		"secret_access_key": "old-secret",
	})

	_, err := cache.Resolve(client)
	require.NoError(t, err)

	client.Credentials["secret_access_key"] = "new-secret"

	cred, err := cache.Resolve(client)
	require.NoError(t, err)
	assert.Equal(t, 2, resolver.calls)
	assert.Equal(t, "new-secret", cred.(model.AWSCredential).SecretAccessKey)
}

func TestCacheDoesNotCacheFailures(t *testing.T) {
	resolver := &countingResolver{inner: NewService()}
	cache := NewCache(resolver, time.Minute)

	client := makeClient(model.ProviderAWS, map[string]string{
		"access_key_id": "AKIA1234",
	})

	_, err := cache.Resolve(client)
	require.Error(t, err)

	_, err = cache.Resolve(client)
	require.Error(t, err)
	assert.Equal(t, 2, resolver.calls)
}
