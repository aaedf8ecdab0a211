package config

import (
	"fmt"
	"reflect"
	"strings"

	"price-sync/core/database"
	"price-sync/core/logger"
	"price-sync/core/reconcile"
	"price-sync/core/scheduler"
	"price-sync/core/server"
	"price-sync/feature/catalog"
	"price-sync/feature/market"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Server holds configuration for the read-only HTTP views.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
	// Database holds configuration for the optional tracked item table.
	Database database.Config `mapstructure:"database"`
	// Market holds configuration for the market price source.
	Market market.Config `mapstructure:"market"`
	// Catalog holds configuration for the store admin API.
	Catalog catalog.Config `mapstructure:"catalog"`
	// Reconcile holds the pricing parameters and tracked items.
	Reconcile reconcile.Config `mapstructure:"reconcile"`
	// Scheduler holds the tick cadence.
	Scheduler scheduler.Config `mapstructure:"scheduler"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// A missing .env is expected in production.
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Register every key with its default so AutomaticEnv can resolve it.
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. CATALOG_API_KEY -> catalog.api_key)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// Validate checks every section that the reconciliation job depends on.
// Decimal settings are parsed here so a bad value fails at startup.
func (c *Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return err
	}
	if err := c.Market.Validate(); err != nil {
		return err
	}
	if err := c.Catalog.Validate(); err != nil {
		return err
	}
	if _, err := c.Reconcile.Build(nil); err != nil {
		return err
	}
	if c.Scheduler.Schedule == "" {
		return fmt.Errorf("scheduler.schedule is required")
	}
	return nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		if tag == "" {
			continue
		}

		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, field.Tag.Get("default"))
	}
}
