package cmd

import (
	"context"
	"fmt"

	"price-sync/core/logger"
	"price-sync/core/reconcile"
	"price-sync/core/scheduler"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for the reconcile command
	dryRunReconcile bool
	strictReconcile bool
)

// reconcileCmd runs a single reconciliation tick and exits.
var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run one reconciliation tick and print the report",
	Long: `Run one reconciliation tick over every tracked item.

Reads each catalog item and the market price of its asset, and rewrites every
variant price when the catalog has drifted from the market.

Examples:
  # Report and apply
  reconcile

  # Report only, no catalog writes
  reconcile --dry-run

  # Exit non-zero when any item failed
  reconcile --strict`,
	RunE: runReconcile,
}

func init() {
	reconcileCmd.Flags().BoolVar(&dryRunReconcile, "dry-run", false, "Plan price updates without writing to the catalog")
	reconcileCmd.Flags().BoolVar(&strictReconcile, "strict", false, "Return an error when any item failed to fetch, parse or write")

	RootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer l.Sync()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := buildApp(ctx, cfg, l, dryRunReconcile)
	if err != nil {
		return err
	}

	report, err := runSingleTick(cfg.Scheduler, a.engine.RunOnce, l)
	if err != nil {
		return err
	}
	printTickReport(l, report)

	s := report.Summary
	if strictReconcile && s.FetchFailed+s.ParseFailed+s.Partial > 0 {
		return fmt.Errorf("%d of %d items did not reconcile cleanly", s.FetchFailed+s.ParseFailed+s.Partial, s.TotalItems)
	}
	return nil
}

// runSingleTick runs one tick through the scheduler's guarded path, so the
// command gets the same tick timeout and panic recovery as scheduled ticks.
func runSingleTick(cfg scheduler.Config, run func(ctx context.Context) *reconcile.TickReport, l *zap.Logger) (*reconcile.TickReport, error) {
	var report *reconcile.TickReport
	sched, err := scheduler.New(cfg, func(ctx context.Context) {
		report = run(ctx)
	}, l.Named("scheduler"))
	if err != nil {
		return nil, err
	}

	sched.Trigger()
	if report == nil {
		return nil, fmt.Errorf("reconciliation tick did not complete")
	}
	return report, nil
}

// printTickReport logs a per-item breakdown of a tick.
func printTickReport(l *zap.Logger, report *reconcile.TickReport) {
	for _, item := range report.Items {
		fields := []zap.Field{
			zap.String("symbol", item.Symbol),
			zap.String("status", string(item.Status)),
		}
		if !item.MarketPrice.IsZero() {
			fields = append(fields, zap.String("market_price", item.MarketPrice.String()))
		}
		if len(item.Errors) > 0 {
			fields = append(fields, zap.Strings("errors", item.Errors))
		}
		l.Info("Item result", fields...)

		for _, action := range item.Actions {
			l.Info("Price action",
				zap.String("symbol", item.Symbol),
				zap.String("variant_id", action.VariantID),
				zap.String("label", action.Label),
				zap.String("old_price", action.OldPrice.String()),
				zap.String("new_price", action.NewPrice.String()),
				zap.Bool("applied", action.Applied),
			)
		}
	}

	s := report.Summary
	l.Info("Reconciliation report",
		zap.Int("total_items", s.TotalItems),
		zap.Int("matched", s.Matched),
		zap.Int("updated", s.Updated),
		zap.Int("partial", s.Partial),
		zap.Int("planned", s.Planned),
		zap.Int("fetch_failed", s.FetchFailed),
		zap.Int("parse_failed", s.ParseFailed),
		zap.Int("writes_issued", s.WritesIssued),
		zap.Int("writes_failed", s.WritesFailed),
	)
}
