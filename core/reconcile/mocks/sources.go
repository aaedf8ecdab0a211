package mocks

import (
	"context"

	"price-sync/core/reconcile"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MarketSource is a mock implementation of reconcile.MarketPriceSource
type MarketSource struct {
	mock.Mock
}

func (m *MarketSource) Fetch(ctx context.Context, lookupKey string) (reconcile.MarketPrice, error) {
	args := m.Called(ctx, lookupKey)
	if p, ok := args.Get(0).(reconcile.MarketPrice); ok {
		return p, args.Error(1)
	}
	return reconcile.MarketPrice{}, args.Error(1)
}

// Catalog is a mock implementation of reconcile.CatalogItemSource and reconcile.CatalogItemSink
type Catalog struct {
	mock.Mock
}

func (m *Catalog) FetchItem(ctx context.Context, catalogItemID string) (reconcile.CatalogItem, error) {
	args := m.Called(ctx, catalogItemID)
	if item, ok := args.Get(0).(reconcile.CatalogItem); ok {
		return item, args.Error(1)
	}
	return reconcile.CatalogItem{}, args.Error(1)
}

func (m *Catalog) SetPrice(ctx context.Context, variantID string, price decimal.Decimal) error {
	args := m.Called(ctx, variantID, price)
	return args.Error(0)
}
