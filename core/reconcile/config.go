package reconcile

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Config holds the pricing parameters of the reconciliation engine.
// Decimal values are kept as strings and parsed by Build.
type Config struct {
	// Markup is the multiplier applied on top of the market price.
	Markup string `mapstructure:"markup" default:"1.10"`
	// Tolerance is the accepted absolute drift of the reference variant.
	Tolerance string `mapstructure:"tolerance" default:"0.01"`
	// PriceScale is the number of decimal places prices are rounded to.
	PriceScale int32 `mapstructure:"price_scale" default:"2"`
	// MaxConcurrency bounds how many items are reconciled at once.
	MaxConcurrency int `mapstructure:"max_concurrency" default:"4"`
	// Tracked lists SYMBOL:lookup_key:catalog_item_id entries, comma separated.
	Tracked string `mapstructure:"tracked" default:"BTC:bitcoin:24432181250,ETH:ethereum:24432148482,DASH:dash:24432050178,LTC:litecoin:24432115714,XRP:ripple:24432017410"`
	// DryRun plans updates without writing to the catalog.
	DryRun bool `mapstructure:"dry_run" default:"false"`
}

// Build parses the configuration into a Spec for the given items.
func (c Config) Build(items []TrackedItem) (*Spec, error) {
	markup, err := decimal.NewFromString(c.Markup)
	if err != nil {
		return nil, fmt.Errorf("reconcile.markup %q: %w", c.Markup, err)
	}
	if !markup.IsPositive() {
		return nil, fmt.Errorf("reconcile.markup must be positive, got %s", markup)
	}

	tolerance, err := decimal.NewFromString(c.Tolerance)
	if err != nil {
		return nil, fmt.Errorf("reconcile.tolerance %q: %w", c.Tolerance, err)
	}
	if tolerance.IsNegative() {
		return nil, fmt.Errorf("reconcile.tolerance must not be negative, got %s", tolerance)
	}

	if c.PriceScale < 0 {
		return nil, fmt.Errorf("reconcile.price_scale must not be negative, got %d", c.PriceScale)
	}

	if min := MinTolerance(markup, c.PriceScale); tolerance.LessThan(min) {
		return nil, fmt.Errorf("reconcile.tolerance %s is below the rounding error %s of price_scale %d, prices would never converge",
			tolerance, min.StringFixed(c.PriceScale+3), c.PriceScale)
	}

	return &Spec{
		Items:          items,
		Markup:         markup,
		Tolerance:      tolerance,
		PriceScale:     c.PriceScale,
		MaxConcurrency: c.MaxConcurrency,
		DryRun:         c.DryRun,
	}, nil
}
