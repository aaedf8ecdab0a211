package catalog

import (
	"context"
	"errors"
	"fmt"

	"price-sync/core/reconcile"
	"price-sync/core/tracking"

	"go.uber.org/zap"
)

// ErrNotTracked is returned for symbols outside the tracked set.
var ErrNotTracked = errors.New("symbol is not tracked")

// Service serves catalog reads for the HTTP views.
type Service struct {
	source reconcile.CatalogItemSource
	items  []reconcile.TrackedItem
	logger *zap.Logger
}

// NewService creates a catalog service over the tracked items.
func NewService(source reconcile.CatalogItemSource, items []reconcile.TrackedItem, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, items: items, logger: logger}
}

// ItemForSymbol returns the current catalog item tracked under symbol.
func (s *Service) ItemForSymbol(ctx context.Context, symbol string) (reconcile.CatalogItem, error) {
	item, ok := tracking.Find(s.items, symbol)
	if !ok {
		return reconcile.CatalogItem{}, fmt.Errorf("%w: %s", ErrNotTracked, symbol)
	}
	return s.source.FetchItem(ctx, item.CatalogItemID)
}
