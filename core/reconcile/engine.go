package reconcile

import (
	"context"
	"errors"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Engine reconciles catalog prices against market prices for a static set of tracked items.
type Engine struct {
	spec    *Spec
	market  MarketPriceSource
	catalog CatalogItemSource
	sink    CatalogItemSink
	cache   *PriceCache
	logger  *zap.Logger

	mu   sync.RWMutex
	last *TickReport
}

// NewEngine creates an engine. The cache is shared with the read views and is
// only ever written by the engine.
func NewEngine(spec *Spec, market MarketPriceSource, catalog CatalogItemSource, sink CatalogItemSink, cache *PriceCache, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		spec:    spec,
		market:  market,
		catalog: catalog,
		sink:    sink,
		cache:   cache,
		logger:  logger,
	}
}

// Cache returns the price cache handle written by this engine.
func (e *Engine) Cache() *PriceCache { return e.cache }

// LastReport returns the report of the most recently completed tick, or nil.
func (e *Engine) LastReport() *TickReport {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.last
}

// RunOnce performs one reconciliation pass over every tracked item.
// Items are processed concurrently; failures are confined to the item (or variant)
// they happened on and never abort the pass.
func (e *Engine) RunOnce(ctx context.Context) *TickReport {
	started := time.Now()
	e.logger.Info("Reconciliation tick started", zap.Int("items", len(e.spec.Items)))

	results := make([]ItemResult, len(e.spec.Items))

	var g errgroup.Group
	if e.spec.MaxConcurrency > 0 {
		g.SetLimit(e.spec.MaxConcurrency)
	}
	for i, item := range e.spec.Items {
		i, item := i, item
		g.Go(func() error {
			results[i] = e.reconcileItem(ctx, item)
			return nil
		})
	}
	_ = g.Wait()

	report := &TickReport{
		StartedAt: started,
		Duration:  time.Since(started),
		Items:     results,
		Summary:   summarize(results),
	}

	e.mu.Lock()
	e.last = report
	e.mu.Unlock()

	s := report.Summary
	e.logger.Info("Reconciliation tick finished",
		zap.Duration("duration", report.Duration),
		zap.Int("matched", s.Matched),
		zap.Int("updated", s.Updated),
		zap.Int("partial", s.Partial),
		zap.Int("planned", s.Planned),
		zap.Int("fetch_failed", s.FetchFailed),
		zap.Int("parse_failed", s.ParseFailed),
		zap.Int("writes_issued", s.WritesIssued),
		zap.Int("writes_failed", s.WritesFailed),
	)
	return report
}

// reconcileItem runs the ordered steps for a single item:
// catalog fetch, reference label parse, market fetch, cache update, plan, apply.
func (e *Engine) reconcileItem(ctx context.Context, item TrackedItem) ItemResult {
	l := e.logger.With(
		zap.String("symbol", item.Symbol),
		zap.String("catalog_item_id", item.CatalogItemID),
	)
	result := ItemResult{
		Symbol:        item.Symbol,
		CatalogItemID: item.CatalogItemID,
	}

	catalogItem, err := e.catalog.FetchItem(ctx, item.CatalogItemID)
	if err != nil {
		return e.fail(l, result, StatusFetchFailed, &FetchError{Source: SourceCatalog, Key: item.CatalogItemID, Err: err})
	}

	if _, err := ReferenceLabel(item, catalogItem); err != nil {
		return e.fail(l, result, StatusParseFailed, err)
	}

	market, err := e.market.Fetch(ctx, item.LookupKey)
	if err != nil {
		return e.fail(l, result, StatusFetchFailed, &FetchError{Source: SourceMarket, Key: item.LookupKey, Err: err})
	}
	result.MarketPrice = market.UnitPrice
	e.cache.Set(item.Symbol, market.UnitPrice)

	plan, err := PlanItem(e.spec, item, catalogItem, market)
	if err != nil {
		return e.fail(l, result, StatusParseFailed, err)
	}

	if !plan.Stale {
		result.Status = StatusMatched
		l.Debug("Prices match",
			zap.String("market_price", market.UnitPrice.String()),
			zap.String("observed", plan.Observed.String()),
		)
		return result
	}

	l.Info("Catalog prices are stale",
		zap.String("market_price", market.UnitPrice.String()),
		zap.String("expected", plan.Expected.String()),
		zap.String("observed", plan.Observed.String()),
		zap.Int("variants", len(plan.Actions)),
	)

	if e.spec.DryRun {
		result.Status = StatusPlanned
		result.Actions = plan.Actions
		return result
	}

	_, failed := ApplyItemPlan(ctx, e.sink, plan, l)
	result.Actions = plan.Actions
	if failed > 0 {
		result.Status = StatusPartial
		for _, a := range plan.Actions {
			if a.Error != "" {
				result.Errors = append(result.Errors, a.Error)
			}
		}
		return result
	}
	result.Status = StatusUpdated
	return result
}

func (e *Engine) fail(l *zap.Logger, result ItemResult, status ItemStatus, err error) ItemResult {
	result.Status = status
	result.Errors = append(result.Errors, err.Error())

	var perr *ParseError
	if errors.As(err, &perr) {
		l.Warn("Variant label could not be parsed, skipping item", zap.Error(err))
	} else {
		l.Warn("Fetch failed, skipping item", zap.Error(err))
	}
	return result
}

// summarize builds aggregate counts from item results.
func summarize(results []ItemResult) TickSummary {
	s := TickSummary{TotalItems: len(results)}
	for _, r := range results {
		switch r.Status {
		case StatusMatched:
			s.Matched++
		case StatusUpdated:
			s.Updated++
		case StatusPartial:
			s.Partial++
		case StatusPlanned:
			s.Planned++
		case StatusFetchFailed:
			s.FetchFailed++
		case StatusParseFailed:
			s.ParseFailed++
		}
		if r.Status == StatusUpdated || r.Status == StatusPartial {
			for _, a := range r.Actions {
				s.WritesIssued++
				if !a.Applied {
					s.WritesFailed++
				}
			}
		}
	}
	return s
}
