package reconcile

import (
	"time"

	"github.com/shopspring/decimal"
)

// TrackedItem binds a tradable asset to the catalog item whose variants are priced from it.
type TrackedItem struct {
	// Symbol is the asset code used in variant labels (e.g., "BTC").
	Symbol string `json:"symbol"`

	// CatalogItemID identifies the catalog item (product) holding the variants.
	CatalogItemID string `json:"catalog_item_id"`

	// LookupKey is the asset's name in the market source (e.g., "bitcoin").
	LookupKey string `json:"lookup_key"`
}

// CatalogVariant is one purchasable quantity of a catalog item.
type CatalogVariant struct {
	// ID identifies the variant in the catalog.
	ID string `json:"id"`

	// Label is the display title, encoded as "<qty> <symbol>" (e.g., "0.5 BTC").
	Label string `json:"label"`

	// Price is the current price of the whole variant in the reference currency.
	Price decimal.Decimal `json:"price"`
}

// CatalogItem is a catalog product with its ordered variants.
// The first variant is the reference variant used for the staleness check.
type CatalogItem struct {
	ID       string           `json:"id"`
	Title    string           `json:"title,omitempty"`
	Variants []CatalogVariant `json:"variants"`
}

// MarketPrice is the spot price of one unit of an asset.
type MarketPrice struct {
	Symbol    string          `json:"symbol"`
	LookupKey string          `json:"lookup_key"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Currency  string          `json:"currency"`
	FetchedAt time.Time       `json:"fetched_at"`
}

// Spec defines the configuration for the reconciliation engine.
// It bundles the tracked items and the pricing parameters.
type Spec struct {
	// Items is the static set of tracked items.
	Items []TrackedItem

	// Markup is the multiplier applied on top of the market price (e.g., 1.10).
	Markup decimal.Decimal

	// Tolerance is the absolute difference, in reference currency, under which
	// the reference variant is considered correctly priced.
	Tolerance decimal.Decimal

	// PriceScale is the number of decimal places catalog prices are rounded to.
	PriceScale int32

	// MaxConcurrency bounds how many items are reconciled at the same time.
	// Zero or negative means no limit.
	MaxConcurrency int

	// DryRun plans price updates without pushing them to the catalog.
	DryRun bool
}

// ItemStatus describes how a tracked item ended up after a tick.
type ItemStatus string

const (
	// StatusMatched means the reference variant was within tolerance; nothing was written.
	StatusMatched ItemStatus = "matched"
	// StatusUpdated means every variant was written successfully.
	StatusUpdated ItemStatus = "updated"
	// StatusPartial means at least one variant write failed.
	StatusPartial ItemStatus = "partial"
	// StatusPlanned means updates were required but the engine runs in dry-run mode.
	StatusPlanned ItemStatus = "planned"
	// StatusFetchFailed means the catalog or market source could not be read.
	StatusFetchFailed ItemStatus = "fetch_failed"
	// StatusParseFailed means a variant label could not be parsed.
	StatusParseFailed ItemStatus = "parse_failed"
)

// PriceAction is a planned (or executed) price update for a single variant.
type PriceAction struct {
	// VariantID is the catalog variant to update.
	VariantID string `json:"variant_id"`

	// Label is the variant label the quantity was parsed from.
	Label string `json:"label"`

	// Quantity is the asset amount the variant represents.
	Quantity decimal.Decimal `json:"quantity"`

	// OldPrice is the price read from the catalog.
	OldPrice decimal.Decimal `json:"old_price"`

	// NewPrice is market price × quantity × markup, rounded to the price scale.
	NewPrice decimal.Decimal `json:"new_price"`

	// Applied reports whether the sink accepted the update.
	Applied bool `json:"applied"`

	// Error holds the write failure, if any.
	Error string `json:"error,omitempty"`
}

// ItemPlan is the decision for one tracked item, computed from catalog and market state.
type ItemPlan struct {
	Item TrackedItem

	// Reference is the parsed label of the reference variant.
	Reference VariantLabel

	// Expected is market price × reference quantity.
	Expected decimal.Decimal

	// Observed is reference variant price / markup.
	Observed decimal.Decimal

	// Stale reports whether the observed price differs from the expected one beyond tolerance.
	Stale bool

	// Actions holds one update per variant when Stale is true.
	Actions []PriceAction
}

// ItemResult is the reconciliation outcome for a single tracked item.
type ItemResult struct {
	Symbol        string          `json:"symbol"`
	CatalogItemID string          `json:"catalog_item_id"`
	Status        ItemStatus      `json:"status"`
	MarketPrice   decimal.Decimal `json:"market_price"`
	Actions       []PriceAction   `json:"actions,omitempty"`
	Errors        []string        `json:"errors,omitempty"`
}

// TickReport is the output of one RunOnce call.
type TickReport struct {
	StartedAt time.Time     `json:"started_at"`
	Duration  time.Duration `json:"duration"`
	Items     []ItemResult  `json:"items"`
	Summary   TickSummary   `json:"summary"`
}

// TickSummary provides aggregate counts for a tick.
type TickSummary struct {
	// TotalItems is the number of tracked items processed.
	TotalItems int `json:"total_items"`

	// Matched counts items whose prices already matched the market.
	Matched int `json:"matched"`

	// Updated counts items whose variants were all rewritten.
	Updated int `json:"updated"`

	// Partial counts items with at least one failed variant write.
	Partial int `json:"partial"`

	// Planned counts items that needed updates in dry-run mode.
	Planned int `json:"planned"`

	// FetchFailed counts items skipped due to catalog or market fetch failures.
	FetchFailed int `json:"fetch_failed"`

	// ParseFailed counts items skipped due to label parse failures.
	ParseFailed int `json:"parse_failed"`

	// WritesIssued counts SetPrice calls made.
	WritesIssued int `json:"writes_issued"`

	// WritesFailed counts SetPrice calls that returned an error.
	WritesFailed int `json:"writes_failed"`
}
