// Package server holds the HTTP server configuration.
//
// The read views (market snapshot, catalog snapshot, cached prices, health) are
// served by Fiber from cmd/start. This package only defines the listen port, the
// API key that protects the views and the switch that turns them off entirely.
//
// # Usage
//
// This package is primarily used by the core/config package to embed server settings.
package server
