package quote

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

const cacheTTL = 30 * time.Second

type cacheEntry struct {
	price     decimal.Decimal
	expiresAt time.Time
}

// priceCache keeps resolved prices stable within a refresh pass so the same
// identifier does not jitter twice in one valuation.
type priceCache struct {
	mu      sync.RWMutex
	entries map[string]cacheEntry
}

func newPriceCache() *priceCache {
	return &priceCache{
		entries: make(map[string]cacheEntry),
	}
}

func (c *priceCache) get(key string) (decimal.Decimal, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, ok := c.entries[key]
	if !ok || time.Now().After(entry.expiresAt) {
		return decimal.Zero, false
	}
	return entry.price, true
}

func (c *priceCache) set(key string, price decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		price:     price,
		expiresAt: time.Now().Add(cacheTTL),
	}
}
