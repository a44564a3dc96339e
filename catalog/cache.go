package catalog

import (
	"sync"
	"time"

	"github.com/bobinette/pdfroulette"
)

// Cache wraps a provider and reuses its last catalog for ttl. A ttl of 0
// or less caches forever, which fits the catalog's update pace: it only
// changes when the offline toolchain runs.
type Cache struct {
	provider pdfroulette.CatalogProvider
	ttl      time.Duration

	mu        sync.Mutex
	catalog   pdfroulette.Catalog
	fetchedAt time.Time

	now func() time.Time
}

func NewCache(provider pdfroulette.CatalogProvider, ttl time.Duration) *Cache {
	return &Cache{
		provider: provider,
		ttl:      ttl,
		now:      time.Now,
	}
}

// Catalog returns the cached catalog, fetching it from the underlying
// provider when the cache is empty or expired. Fetch errors are returned
// as is and leave the cache untouched.
func (c *Cache) Catalog() (pdfroulette.Catalog, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.fetchedAt.IsZero() && (c.ttl <= 0 || c.now().Sub(c.fetchedAt) < c.ttl) {
		return c.catalog, nil
	}

	catalog, err := c.provider.Catalog()
	if err != nil {
		return pdfroulette.Catalog{}, err
	}

	c.catalog = catalog
	c.fetchedAt = c.now()
	return catalog, nil
}
