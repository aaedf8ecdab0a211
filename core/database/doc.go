// Package database handles the optional database connection and schema inspection.
//
// It provides a wrapper around GORM to configure MySQL (or sqlite, for local runs
// and tests) connections based on the application's configuration. The database
// only holds the tracked item table; prices are never persisted.
//
// # Schema Inspection
//
// GetTableColumns reads a table's column definitions so callers can verify a table
// has the columns they expect before querying it.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	columns, err := database.GetTableColumns(db, "tracked_items")
package database
