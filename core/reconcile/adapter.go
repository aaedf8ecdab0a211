package reconcile

import (
	"context"

	"github.com/shopspring/decimal"
)

// MarketPriceSource fetches the current unit price of an asset in the reference currency.
type MarketPriceSource interface {
	// Fetch returns the spot price for the asset known to the market as lookupKey
	// (e.g., "bitcoin"). A transport, status or decoding problem is returned as an error.
	Fetch(ctx context.Context, lookupKey string) (MarketPrice, error)
}

// CatalogItemSource reads the current state of a catalog item and its variants.
type CatalogItemSource interface {
	// FetchItem returns the catalog item with its variants in catalog order.
	FetchItem(ctx context.Context, catalogItemID string) (CatalogItem, error)
}

// CatalogItemSink applies a new price to a single catalog variant.
type CatalogItemSink interface {
	// SetPrice replaces the variant price. No response body is required.
	SetPrice(ctx context.Context, variantID string, price decimal.Decimal) error
}

// Catalog is implemented by clients that can both read and write the catalog.
type Catalog interface {
	CatalogItemSource
	CatalogItemSink
}
