package prices

import (
	"time"

	"price-sync/core/reconcile"

	"go.uber.org/zap"
)

// ReportSource exposes the outcome of the last reconciliation tick.
type ReportSource interface {
	LastReport() *reconcile.TickReport
}

// Health is the liveness payload.
type Health struct {
	Status   string     `json:"status"`
	Uptime   string     `json:"uptime"`
	LastTick *TickState `json:"last_tick"`
}

// TickState summarizes the last completed tick.
type TickState struct {
	StartedAt time.Time             `json:"started_at"`
	Duration  string                `json:"duration"`
	Summary   reconcile.TickSummary `json:"summary"`
}

// Service serves cached prices and tick state for the HTTP views.
type Service struct {
	cache   *reconcile.PriceCache
	reports ReportSource
	logger  *zap.Logger
	started time.Time
}

// NewService creates a prices service.
func NewService(cache *reconcile.PriceCache, reports ReportSource, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{cache: cache, reports: reports, logger: logger, started: time.Now()}
}

// All returns every cached price, set or not.
func (s *Service) All() []reconcile.CachedPrice {
	return s.cache.Snapshot()
}

// One returns the cached price of a symbol. ok is false for untracked symbols.
func (s *Service) One(symbol string) (reconcile.CachedPrice, bool) {
	return s.cache.Lookup(symbol)
}

// Health reports liveness and the last tick summary.
func (s *Service) Health() Health {
	h := Health{
		Status: "ok",
		Uptime: time.Since(s.started).Truncate(time.Second).String(),
	}
	if s.reports == nil {
		return h
	}
	if r := s.reports.LastReport(); r != nil {
		h.LastTick = &TickState{
			StartedAt: r.StartedAt,
			Duration:  r.Duration.String(),
			Summary:   r.Summary,
		}
	}
	return h
}
