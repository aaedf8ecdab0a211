package reconcile

import (
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriceCache_StartsUnset(t *testing.T) {
	c := NewPriceCache("BTC", "eth")

	_, ok := c.Get("BTC")
	assert.False(t, ok)

	entry, exists := c.Lookup("ETH")
	assert.True(t, exists)
	assert.False(t, entry.Set)

	_, exists = c.Lookup("DOGE")
	assert.False(t, exists)

	assert.Equal(t, []string{"BTC", "ETH"}, c.Symbols())
}

func TestPriceCache_SetAndGet(t *testing.T) {
	c := NewPriceCache("BTC")
	fixed := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	c.now = func() time.Time { return fixed }

	c.Set("btc", decimal.RequireFromString("50000.12"))

	price, ok := c.Get("BTC")
	require.True(t, ok)
	assert.Equal(t, "50000.12", price.String())

	entry, _ := c.Lookup("BTC")
	assert.Equal(t, fixed, entry.UpdatedAt)

	c.Set("BTC", decimal.RequireFromString("51000"))
	price, _ = c.Get("BTC")
	assert.Equal(t, "51000", price.String())
}

func TestPriceCache_Snapshot(t *testing.T) {
	c := NewPriceCache("XRP", "BTC")
	c.Set("BTC", decimal.NewFromInt(1))

	snap := c.Snapshot()
	require.Len(t, snap, 2)
	assert.Equal(t, "BTC", snap[0].Symbol)
	assert.True(t, snap[0].Set)
	assert.Equal(t, "XRP", snap[1].Symbol)
	assert.False(t, snap[1].Set)
}

func TestPriceCache_ConcurrentAccess(t *testing.T) {
	c := NewPriceCache("BTC")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func(n int) {
			defer wg.Done()
			c.Set("BTC", decimal.NewFromInt(int64(n)))
		}(i)
		go func() {
			defer wg.Done()
			_, _ = c.Get("BTC")
			_ = c.Snapshot()
		}()
	}
	wg.Wait()

	_, ok := c.Get("BTC")
	assert.True(t, ok)
}
