package catalog

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bobinette/pdfroulette"
)

type countingProvider struct {
	calls int
	err   error
}

func (p *countingProvider) Catalog() (pdfroulette.Catalog, error) {
	p.calls++
	if p.err != nil {
		return pdfroulette.Catalog{}, p.err
	}
	return pdfroulette.Catalog{Pdfs: []pdfroulette.Pdf{{ID: "pdf1", Available: true}}}, nil
}

func TestCache_FetchesOnce(t *testing.T) {
	provider := &countingProvider{}
	cache := NewCache(provider, 0)

	for i := 0; i < 5; i++ {
		catalog, err := cache.Catalog()
		require.NoError(t, err)
		assert.Len(t, catalog.Pdfs, 1)
	}

	assert.Equal(t, 1, provider.calls, "a ttl of 0 should cache forever")
}

func TestCache_Expires(t *testing.T) {
	provider := &countingProvider{}
	cache := NewCache(provider, time.Minute)

	now := time.Date(2024, 5, 12, 8, 30, 0, 0, time.UTC)
	cache.now = func() time.Time { return now }

	_, err := cache.Catalog()
	require.NoError(t, err)
	_, err = cache.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 1, provider.calls)

	now = now.Add(2 * time.Minute)
	_, err = cache.Catalog()
	require.NoError(t, err)
	assert.Equal(t, 2, provider.calls)
}

func TestCache_ErrorsAreNotCached(t *testing.T) {
	provider := &countingProvider{err: errors.New("boom")}
	cache := NewCache(provider, 0)

	_, err := cache.Catalog()
	assert.Error(t, err)

	provider.err = nil
	catalog, err := cache.Catalog()
	require.NoError(t, err, "the cache should retry after a failed fetch")
	assert.Len(t, catalog.Pdfs, 1)
	assert.Equal(t, 2, provider.calls)
}
