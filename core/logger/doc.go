// Package logger builds the application's zap logger.
//
// Level "debug" selects zap's development config (ISO8601 timestamps, debug
// enabled). Any other level selects the production config and is parsed with
// zapcore.ParseLevel, so an unknown level such as "loud" is rejected by New.
// Format "console" switches to colored console output; anything else is JSON
// with the keys level, time and message.
//
// WithRayID attaches the ray id the rayid middleware stored on a Fiber request,
// so every line logged while serving a read view can be correlated.
//
// # Usage
//
//	l, err := logger.New(&cfg.Log)
//	if err != nil {
//	    log.Fatalf("Failed to initialize logger: %v", err)
//	}
//	l.Info("Scheduler started")
//
//	// In a request handler:
//	logger.WithRayID(l, c).Error("Catalog lookup failed", zap.Error(err))
package logger
