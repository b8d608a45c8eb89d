package credential

import (
	"fmt"
	"hash/fnv"
	"sort"
	"time"

	"github.com/elC0mpa/cloud-optimizer/model"
)

// DefaultTTL bounds how long a resolved credential is reused before it is
// re-derived. Azure AD client-credential material benefits the most.
const DefaultTTL = 10 * time.Minute

func NewCache(resolver ResolverService, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{
		resolver: resolver,
		ttl:      ttl,
		entries:  make(map[string]cacheEntry),
		now:      time.Now,
	}
}

// Resolve returns the cached credential for the client, re-resolving when
// the entry expired or the client's blob changed since it was cached.
func (c *Cache) Resolve(client *model.Client) (model.Credential, error) {
	if client == nil {
		return c.resolver.Resolve(client)
	}

	print := fingerprint(client)

	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[client.ID]; ok {
		if entry.fingerprint == print && c.now().Before(entry.expiresAt) {
			return entry.credential, nil
		}
		delete(c.entries, client.ID)
	}

	cred, err := c.resolver.Resolve(client)
	if err != nil {
		return nil, err
	}

	c.entries[client.ID] = cacheEntry{
		credential:  cred,
		fingerprint: print,
		expiresAt:   c.now().Add(c.ttl),
	}
	return cred, nil
}

// fingerprint hashes the credential blob so edits to a client's credentials
// invalidate its cache entry before the TTL fires.
func fingerprint(client *model.Client) string {
	keys := make([]string, 0, len(client.Credentials))
	for k := range client.Credentials {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := fnv.New64a()
	fmt.Fprint(h, client.Provider)
	for _, k := range keys {
		fmt.Fprintf(h, "|%s=%s", k, client.Credentials[k])
	}
	return fmt.Sprintf("%x", h.Sum64())
}
