package reconcile

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

// CachedPrice is the last market price observed for a symbol.
type CachedPrice struct {
	Symbol    string          `json:"symbol"`
	Price     decimal.Decimal `json:"price"`
	Set       bool            `json:"set"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
}

// PriceCache maps asset symbols to the last market price fetched by the engine.
// It is written by the engine only and shared by handle with the read views.
// Entries are never deleted and live only as long as the process.
type PriceCache struct {
	mu     sync.RWMutex
	prices map[string]CachedPrice
	now    func() time.Time
}

// NewPriceCache creates a cache with every symbol registered as unset.
func NewPriceCache(symbols ...string) *PriceCache {
	c := &PriceCache{
		prices: make(map[string]CachedPrice, len(symbols)),
		now:    time.Now,
	}
	for _, s := range symbols {
		key := normalizeSymbol(s)
		c.prices[key] = CachedPrice{Symbol: key}
	}
	return c
}

// Get returns the last price for the symbol. ok is false when the symbol is
// unknown or no price has been observed yet.
func (c *PriceCache) Get(symbol string) (price decimal.Decimal, ok bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.prices[normalizeSymbol(symbol)]
	if !exists || !entry.Set {
		return decimal.Zero, false
	}
	return entry.Price, true
}

// Lookup returns the full entry for a symbol, including unset entries.
// exists is false only for symbols the cache was never told about.
func (c *PriceCache) Lookup(symbol string) (entry CachedPrice, exists bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists = c.prices[normalizeSymbol(symbol)]
	return entry, exists
}

// Set records the latest market price for a symbol.
func (c *PriceCache) Set(symbol string, price decimal.Decimal) {
	key := normalizeSymbol(symbol)

	c.mu.Lock()
	c.prices[key] = CachedPrice{
		Symbol:    key,
		Price:     price,
		Set:       true,
		UpdatedAt: c.now(),
	}
	c.mu.Unlock()
}

// Snapshot returns a copy of every entry sorted by symbol.
func (c *PriceCache) Snapshot() []CachedPrice {
	c.mu.RLock()
	out := make([]CachedPrice, 0, len(c.prices))
	for _, entry := range c.prices {
		out = append(out, entry)
	}
	c.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		return out[i].Symbol < out[j].Symbol
	})
	return out
}

// Symbols returns the registered symbols in sorted order.
func (c *PriceCache) Symbols() []string {
	snap := c.Snapshot()
	out := make([]string, len(snap))
	for i, entry := range snap {
		out[i] = entry.Symbol
	}
	return out
}

func normalizeSymbol(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
