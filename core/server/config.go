package server

import "fmt"

// Config holds configuration for the HTTP server.
type Config struct {
	// Port is the port where the server will listen.
	Port string `mapstructure:"port" default:"3000"`
	// ApiKey is the secret key required to access the read views.
	// An empty key leaves the views open.
	ApiKey string `mapstructure:"api_key" default:""`
	// Enabled toggles the read views. The scheduler runs either way.
	Enabled bool `mapstructure:"enabled" default:"true"`
}

// Address returns the listen address for the configured port.
func (c Config) Address() string {
	return ":" + c.Port
}

// Validate checks that the port is usable when the server is enabled.
func (c Config) Validate() error {
	if !c.Enabled {
		return nil
	}
	if c.Port == "" {
		return fmt.Errorf("server.port is required")
	}
	return nil
}
