// Package scheduler runs the reconciliation tick on a fixed cadence.
//
// It wraps robfig/cron. Every tick goes through cron.SkipIfStillRunning, so a tick
// that fires while the previous one is still waiting on the network is dropped
// (and logged) instead of starting a second, overlapping pass over the catalog.
// Panics inside a tick are recovered and logged by cron.Recover.
//
// # Usage
//
//	s, err := scheduler.New(cfg.Scheduler, func(ctx context.Context) {
//	    engine.RunOnce(ctx)
//	}, logger)
//	s.Start()
//	defer s.Stop(ctx)
package scheduler
