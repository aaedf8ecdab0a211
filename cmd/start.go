package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"price-sync/core/loader"
	"price-sync/core/logger"
	"price-sync/core/middleware/auth"
	"price-sync/core/middleware/rayid"
	"price-sync/core/scheduler"

	"price-sync/feature/catalog"
	"price-sync/feature/market"
	"price-sync/feature/prices"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "price-sync/docs/swagger"
)

// @title Price Sync API
// @version 1.0
// @description Read-only views over market prices, catalog items and the reconciliation price cache.
// @host localhost:3000
// @BasePath /

const shutdownTimeout = 30 * time.Second

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the scheduler and the read-only HTTP views",
	Long:  `Starts the reconciliation scheduler and, unless disabled, the HTTP server with all read views.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Load Configuration
		cfg, err := loadConfig()
		if err != nil {
			log.Fatalf("%v", err)
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			log.Fatalf("Failed to initialize logger: %v", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Build engine and clients
		a, err := buildApp(context.Background(), cfg, logg, false)
		if err != nil {
			logg.Fatal("Failed to initialize reconciliation", zap.Error(err))
		}

		// 4. Start Scheduler
		sched, err := scheduler.New(cfg.Scheduler, func(ctx context.Context) {
			a.engine.RunOnce(ctx)
		}, logg.Named("scheduler"))
		if err != nil {
			logg.Fatal("Failed to create scheduler", zap.Error(err))
		}
		sched.Start()

		// 5. Start read views
		var app *fiber.App
		if cfg.Server.Enabled {
			app = newServer(cfg.Server.ApiKey, logg)

			mgr := loader.NewManager(logg)
			mgr.Register(market.NewFeature(a.market, cfg.Market.SnapshotLimit, logg))
			mgr.Register(catalog.NewFeature(a.catalog, a.items, logg))
			mgr.Register(prices.NewFeature(a.cache, a.engine, logg))

			if err := mgr.LoadAll(app); err != nil {
				logg.Fatal("Failed to load features", zap.Error(err))
			}

			go func() {
				logg.Info("Starting server", zap.String("port", cfg.Server.Port))
				if err := app.Listen(cfg.Server.Address()); err != nil {
					logg.Fatal("Server failed to start", zap.Error(err))
				}
			}()
		}

		// 6. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down...")

		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if app != nil {
			if err := app.ShutdownWithContext(ctx); err != nil {
				logg.Warn("Server shutdown failed", zap.Error(err))
			}
		}
		if err := sched.Stop(ctx); err != nil {
			logg.Warn("Running tick did not finish before shutdown", zap.Error(err))
		}
	},
}

// newServer creates the fiber app with ray id, request logging, swagger and auth.
func newServer(apiKey string, logg *zap.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
	})

	// RayID first so every later log line carries it.
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: apiKey}))

	return app
}

func init() {
	RootCmd.AddCommand(startCmd)
}
