package market

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"price-sync/core/httpx"
	"price-sync/core/reconcile"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tickerSnapshot = `[
	{"id": "bitcoin", "name": "Bitcoin", "symbol": "BTC", "rank": "1", "price_usd": "40000.0", "price_cad": "51000.00"},
	{"id": "ethereum", "name": "Ethereum", "symbol": "ETH", "rank": "2", "price_usd": "2000.0", "price_cad": 2600.5}
]`

// newTickerServer serves the ticker API and records the last request URI.
func newTickerServer(t *testing.T, lastURI *atomic.Value) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if lastURI != nil {
			lastURI.Store(r.URL.RequestURI())
		}
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v1/ticker/":
			_, _ = w.Write([]byte(tickerSnapshot))
		case "/v1/ticker/bitcoin/":
			_, _ = w.Write([]byte(`[{"id": "bitcoin", "name": "Bitcoin", "symbol": "BTC", "rank": "1", "price_cad": "51000.00"}]`))
		case "/v1/ticker/empty/":
			_, _ = w.Write([]byte(`[]`))
		case "/v1/ticker/noprice/":
			_, _ = w.Write([]byte(`[{"id": "noprice", "symbol": "NOP", "price_usd": "1.0"}]`))
		case "/v1/ticker/zero/":
			_, _ = w.Write([]byte(`[{"id": "zero", "symbol": "ZRO", "price_cad": "0"}]`))
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"error": "id not found"}`))
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newTestClient(baseURL string) *Client {
	c := NewClient(Config{BaseURL: baseURL, Currency: "cad", TimeoutSeconds: 2, UserAgent: "price-sync/test"})
	c.now = func() time.Time { return time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC) }
	return c
}

func TestClient_Fetch(t *testing.T) {
	var uri atomic.Value
	srv := newTickerServer(t, &uri)
	c := newTestClient(srv.URL)

	price, err := c.Fetch(context.Background(), "bitcoin")
	require.NoError(t, err)

	assert.Equal(t, "/v1/ticker/bitcoin/?convert=CAD", uri.Load())
	assert.Equal(t, "BTC", price.Symbol)
	assert.Equal(t, "bitcoin", price.LookupKey)
	assert.Equal(t, "CAD", price.Currency)
	assert.True(t, price.UnitPrice.Equal(decimal.NewFromInt(51000)))
	assert.Equal(t, 2024, price.FetchedAt.Year())
}

func TestClient_Fetch_Errors(t *testing.T) {
	srv := newTickerServer(t, nil)
	c := newTestClient(srv.URL)

	t.Run("Unknown asset", func(t *testing.T) {
		_, err := c.Fetch(context.Background(), "nocoin")
		var se *httpx.StatusError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, http.StatusNotFound, se.Code)
	})

	t.Run("Empty array", func(t *testing.T) {
		_, err := c.Fetch(context.Background(), "empty")
		assert.ErrorContains(t, err, "no ticker")
	})

	t.Run("Missing price field", func(t *testing.T) {
		_, err := c.Fetch(context.Background(), "noprice")
		assert.ErrorContains(t, err, "price_cad")
	})

	t.Run("Non-positive price", func(t *testing.T) {
		_, err := c.Fetch(context.Background(), "zero")
		assert.ErrorIs(t, err, reconcile.ErrInvalidPrice)
	})

	t.Run("Unreachable", func(t *testing.T) {
		dead := newTestClient("http://127.0.0.1:1")
		_, err := dead.Fetch(context.Background(), "bitcoin")
		assert.Error(t, err)
	})
}

func TestClient_FetchAll(t *testing.T) {
	var uri atomic.Value
	srv := newTickerServer(t, &uri)
	c := newTestClient(srv.URL)

	tickers, err := c.FetchAll(context.Background(), 20)
	require.NoError(t, err)

	assert.Equal(t, "/v1/ticker/?convert=CAD&limit=20", uri.Load())
	require.Len(t, tickers, 2)
	assert.Equal(t, "ETH", tickers[1].Symbol)
	assert.Equal(t, 2, tickers[1].Rank)
	assert.True(t, tickers[1].Price.Equal(decimal.RequireFromString("2600.5")))
}
