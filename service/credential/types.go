package credential

import (
	"sync"
	"time"

	"github.com/elC0mpa/cloud-optimizer/model"
)

type service struct{}

// ResolverService turns a client's opaque credential blob into typed
// credential material. Resolution validates shape only and performs no I/O.
type ResolverService interface {
	Resolve(client *model.Client) (model.Credential, error)
}

type cacheEntry struct {
	credential  model.Credential
	fingerprint string
	expiresAt   time.Time
}

// Cache is a TTL-bounded credential cache keyed by client ID. Entries are
// refreshed lazily on expiry or when the client's blob changes.
type Cache struct {
	resolver ResolverService
	ttl      time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry

	now func() time.Time
}
