package market

import (
	"context"
	"fmt"

	"price-sync/core/reconcile"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Source is the subset of Client used by the read views.
type Source interface {
	Fetch(ctx context.Context, lookupKey string) (reconcile.MarketPrice, error)
	FetchAll(ctx context.Context, limit int) ([]Ticker, error)
}

// Service serves market reads for the HTTP views. Identical concurrent requests
// share one upstream call.
type Service struct {
	source       Source
	defaultLimit int
	logger       *zap.Logger
	group        singleflight.Group
}

// NewService creates a market service.
func NewService(source Source, defaultLimit int, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{source: source, defaultLimit: defaultLimit, logger: logger}
}

// Snapshot returns the top assets. A non-positive limit uses the configured default.
func (s *Service) Snapshot(ctx context.Context, limit int) ([]Ticker, error) {
	if limit <= 0 {
		limit = s.defaultLimit
	}
	v, shared, err := s.do(ctx, fmt.Sprintf("all:%d", limit), func(ctx context.Context) (any, error) {
		return s.source.FetchAll(ctx, limit)
	})
	if err != nil {
		return nil, err
	}
	if shared {
		s.logger.Debug("Market snapshot request coalesced", zap.Int("limit", limit))
	}
	return v.([]Ticker), nil
}

// Price returns the spot price of a single asset.
func (s *Service) Price(ctx context.Context, lookupKey string) (reconcile.MarketPrice, error) {
	v, _, err := s.do(ctx, "one:"+lookupKey, func(ctx context.Context) (any, error) {
		return s.source.Fetch(ctx, lookupKey)
	})
	if err != nil {
		return reconcile.MarketPrice{}, err
	}
	return v.(reconcile.MarketPrice), nil
}

// do runs fn once per key for all concurrent callers. The shared call runs on a
// context detached from whichever caller started it (the client's own timeout
// still bounds it), and each caller stops waiting when its own ctx ends.
func (s *Service) do(ctx context.Context, key string, fn func(ctx context.Context) (any, error)) (any, bool, error) {
	detached := context.WithoutCancel(ctx)
	ch := s.group.DoChan(key, func() (any, error) {
		return fn(detached)
	})

	select {
	case res := <-ch:
		return res.Val, res.Shared, res.Err
	case <-ctx.Done():
		return nil, false, ctx.Err()
	}
}
