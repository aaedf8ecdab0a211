package market

import (
	"fmt"
	"strings"
)

// Config holds configuration for the market price source.
type Config struct {
	// BaseURL is the ticker API root.
	BaseURL string `mapstructure:"base_url" default:"https://api.coinmarketcap.com"`
	// Currency is the reference currency prices are quoted in (e.g., CAD, USD).
	Currency string `mapstructure:"currency" default:"CAD"`
	// TimeoutSeconds bounds a single request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// SnapshotLimit is the default number of assets returned by the snapshot view.
	SnapshotLimit int `mapstructure:"snapshot_limit" default:"20"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"price-sync/1.0"`
}

// Validate checks the market configuration.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("market.base_url is required")
	}
	if strings.TrimSpace(c.Currency) == "" {
		return fmt.Errorf("market.currency is required")
	}
	if c.SnapshotLimit < 0 {
		return fmt.Errorf("market.snapshot_limit must not be negative")
	}
	return nil
}
