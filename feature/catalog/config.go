package catalog

import "fmt"

// Config holds configuration for the catalog (store admin API).
type Config struct {
	// BaseURL is the store admin root (e.g., https://shop.myshopify.com).
	BaseURL string `mapstructure:"base_url" default:"https://cryptofiat.myshopify.com"`
	// ApiKey is the private app API key, sent as the basic auth user.
	ApiKey string `mapstructure:"api_key" default:""`
	// Password is the private app password, sent as the basic auth password.
	Password string `mapstructure:"password" default:""`
	// TimeoutSeconds bounds a single request.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"10"`
	// UserAgent is sent with every request.
	UserAgent string `mapstructure:"user_agent" default:"price-sync/1.0"`
}

// Validate checks the catalog configuration.
func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("catalog.base_url is required")
	}
	if c.ApiKey == "" || c.Password == "" {
		return fmt.Errorf("catalog.api_key and catalog.password are required")
	}
	return nil
}
