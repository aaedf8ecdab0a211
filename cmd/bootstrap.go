package cmd

import (
	"context"
	"fmt"

	"price-sync/core/config"
	"price-sync/core/database"
	"price-sync/core/reconcile"
	"price-sync/core/tracking"
	"price-sync/feature/catalog"
	"price-sync/feature/market"

	"go.uber.org/zap"
)

// app bundles the components shared by the start and reconcile commands.
type app struct {
	items   []reconcile.TrackedItem
	market  *market.Client
	catalog *catalog.Client
	cache   *reconcile.PriceCache
	engine  *reconcile.Engine
}

// loadConfig loads and validates configuration from the working directory.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// loadTrackedItems reads tracked items from the database when enabled,
// otherwise from reconcile.tracked.
func loadTrackedItems(ctx context.Context, cfg *config.Config, logg *zap.Logger) ([]reconcile.TrackedItem, error) {
	if !cfg.Database.Enabled {
		return tracking.Parse(cfg.Reconcile.Tracked)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	if sqlDB, err := db.DB(); err == nil {
		// Items are read once at startup.
		defer sqlDB.Close()
	}

	repo := tracking.NewRepository(db)
	if cfg.Database.Migrate {
		if err := repo.Migrate(); err != nil {
			return nil, err
		}
		logg.Info("Migrated tracked_items table")
	}

	items, err := repo.Load(ctx)
	if err != nil {
		return nil, err
	}
	logg.Info("Loaded tracked items from database",
		zap.String("driver", cfg.Database.Driver),
		zap.Int("items", len(items)),
	)
	return items, nil
}

// buildApp wires the market and catalog clients, the price cache and the engine.
func buildApp(ctx context.Context, cfg *config.Config, logg *zap.Logger, dryRun bool) (*app, error) {
	items, err := loadTrackedItems(ctx, cfg, logg)
	if err != nil {
		return nil, fmt.Errorf("failed to load tracked items: %w", err)
	}

	rc := cfg.Reconcile
	rc.DryRun = rc.DryRun || dryRun
	spec, err := rc.Build(items)
	if err != nil {
		return nil, err
	}

	a := &app{
		items:   items,
		market:  market.NewClient(cfg.Market),
		catalog: catalog.NewClient(cfg.Catalog),
		cache:   reconcile.NewPriceCache(tracking.Symbols(items)...),
	}
	a.engine = reconcile.NewEngine(spec, a.market, a.catalog, a.catalog, a.cache, logg.Named("engine"))

	logg.Info("Reconciliation configured",
		zap.Strings("symbols", tracking.Symbols(items)),
		zap.String("currency", a.market.Currency()),
		zap.String("markup", spec.Markup.String()),
		zap.String("tolerance", spec.Tolerance.String()),
		zap.Bool("dry_run", spec.DryRun),
	)
	return a, nil
}
