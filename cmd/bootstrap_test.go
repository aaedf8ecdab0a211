package cmd

import (
	"context"
	"path/filepath"
	"testing"

	"price-sync/core/config"
	"price-sync/core/database"
	"price-sync/core/reconcile"
	"price-sync/core/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func sqliteConfig(t *testing.T, migrate bool) *config.Config {
	return &config.Config{
		Database: database.Config{
			Enabled: true,
			Migrate: migrate,
			Driver:  database.DriverSQLite,
			Name:    filepath.Join(t.TempDir(), "tracked.db"),
		},
	}
}

func TestLoadTrackedItems_FromString(t *testing.T) {
	cfg := &config.Config{Reconcile: reconcile.Config{Tracked: "btc:bitcoin:1"}}

	items, err := loadTrackedItems(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)
	assert.Equal(t, []reconcile.TrackedItem{{Symbol: "BTC", LookupKey: "bitcoin", CatalogItemID: "1"}}, items)
}

func TestLoadTrackedItems_Migrate(t *testing.T) {
	t.Run("Without migrate the table is missing", func(t *testing.T) {
		_, err := loadTrackedItems(context.Background(), sqliteConfig(t, false), zap.NewNop())
		assert.ErrorContains(t, err, "does not exist")
	})

	t.Run("With migrate the table exists but is empty", func(t *testing.T) {
		_, err := loadTrackedItems(context.Background(), sqliteConfig(t, true), zap.NewNop())
		assert.ErrorContains(t, err, "no tracked items")
	})
}

func TestRunSingleTick(t *testing.T) {
	cfg := scheduler.Config{Schedule: "@every 1h", TickTimeoutSeconds: 5}

	t.Run("Returns the report with the tick deadline applied", func(t *testing.T) {
		var hasDeadline bool
		report, err := runSingleTick(cfg, func(ctx context.Context) *reconcile.TickReport {
			_, hasDeadline = ctx.Deadline()
			return &reconcile.TickReport{Summary: reconcile.TickSummary{TotalItems: 1, Matched: 1}}
		}, zap.NewNop())

		require.NoError(t, err)
		assert.True(t, hasDeadline)
		assert.Equal(t, 1, report.Summary.Matched)
	})

	t.Run("Recovers a panicking tick", func(t *testing.T) {
		_, err := runSingleTick(cfg, func(ctx context.Context) *reconcile.TickReport {
			panic("boom")
		}, zap.NewNop())
		assert.ErrorContains(t, err, "did not complete")
	})

	t.Run("Rejects an invalid schedule", func(t *testing.T) {
		_, err := runSingleTick(scheduler.Config{Schedule: "whenever"}, func(ctx context.Context) *reconcile.TickReport {
			return nil
		}, zap.NewNop())
		assert.Error(t, err)
	})
}
