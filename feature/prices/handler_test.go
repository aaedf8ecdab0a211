package prices

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"price-sync/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticReports struct {
	report *reconcile.TickReport
}

func (s staticReports) LastReport() *reconcile.TickReport { return s.report }

func setupTestApp(t *testing.T, reports ReportSource) (*fiber.App, *reconcile.PriceCache) {
	cache := reconcile.NewPriceCache("BTC", "ETH")
	app := fiber.New()
	require.NoError(t, NewFeature(cache, reports, zap.NewNop()).Load(app))
	return app, cache
}

func TestHandleList(t *testing.T) {
	app, cache := setupTestApp(t, nil)
	cache.Set("BTC", decimal.NewFromInt(51000))

	resp, err := app.Test(httptest.NewRequest("GET", "/prices", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body []reconcile.CachedPrice
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 2)
	assert.Equal(t, "BTC", body[0].Symbol)
	assert.True(t, body[0].Set)
	assert.True(t, body[0].Price.Equal(decimal.NewFromInt(51000)))
	assert.Equal(t, "ETH", body[1].Symbol)
	assert.False(t, body[1].Set)
}

func TestHandleGet(t *testing.T) {
	app, cache := setupTestApp(t, nil)
	cache.Set("BTC", decimal.NewFromInt(51000))

	tests := []struct {
		name       string
		path       string
		wantStatus int
		wantSet    bool
	}{
		{"Set, lower-case symbol", "/prices/btc", 200, true},
		{"Unset", "/prices/ETH", 200, false},
		{"Untracked", "/prices/DOGE", 404, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", tt.path, nil))
			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, resp.StatusCode)
			if tt.wantStatus != 200 {
				return
			}
			var body reconcile.CachedPrice
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			assert.Equal(t, tt.wantSet, body.Set)
		})
	}
}

func TestHandleHealth(t *testing.T) {
	t.Run("Before first tick", func(t *testing.T) {
		app, _ := setupTestApp(t, staticReports{})

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)
		assert.Equal(t, 200, resp.StatusCode)

		var body Health
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "ok", body.Status)
		assert.Nil(t, body.LastTick)
	})

	t.Run("After a tick", func(t *testing.T) {
		report := &reconcile.TickReport{
			StartedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
			Duration:  1500 * time.Millisecond,
			Summary:   reconcile.TickSummary{TotalItems: 5, Matched: 4, Updated: 1, WritesIssued: 2},
		}
		app, _ := setupTestApp(t, staticReports{report: report})

		resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
		require.NoError(t, err)

		var body Health
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		require.NotNil(t, body.LastTick)
		assert.Equal(t, "1.5s", body.LastTick.Duration)
		assert.Equal(t, 4, body.LastTick.Summary.Matched)
		assert.Equal(t, 2, body.LastTick.Summary.WritesIssued)
		assert.True(t, report.StartedAt.Equal(body.LastTick.StartedAt))
	})
}
