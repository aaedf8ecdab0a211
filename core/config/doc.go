// Package config provides configuration management for price-sync.
//
// It loads an optional .env file with godotenv, then uses Viper to read
// environment variables, with defaults taken from the `default` struct tags.
//
// # Configuration Structure
//
// The Config struct is the central repository for all application settings, divided into subsections:
//   - Server: read view port and API key (SERVER_PORT, SERVER_API_KEY)
//   - Log: logging level and format (LOG_LEVEL, LOG_FORMAT)
//   - Database: optional tracked_items table (DATABASE_ENABLED, DATABASE_DRIVER, ...)
//   - Market: ticker API and reference currency (MARKET_BASE_URL, MARKET_CURRENCY)
//   - Catalog: store admin API credentials (CATALOG_BASE_URL, CATALOG_API_KEY, CATALOG_PASSWORD)
//   - Reconcile: markup, tolerance, rounding and tracked items (RECONCILE_MARKUP, RECONCILE_TRACKED)
//   - Scheduler: tick cadence (SCHEDULER_SCHEDULE)
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := cfg.Validate(); err != nil {
//	    log.Fatal(err)
//	}
package config
