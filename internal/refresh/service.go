// Package refresh coordinates periodic portfolio revaluation. Each pass
// rebuilds the enriched holdings, summary, and dividend calendar from
// scratch; the latest successful result is kept for readers so a failed
// pass degrades to stale data instead of an empty display.
package refresh

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/hisakawa/shisan/internal/dividend"
	"github.com/hisakawa/shisan/internal/domain"
	"github.com/hisakawa/shisan/internal/portfolio"
)

// ErrRefreshInFlight indicates a refresh pass is already running. Passes
// never overlap; callers either wait for the running one or skip.
var ErrRefreshInFlight = errors.New("refresh already in flight")

// lastRefreshFlag is the flag-store key recording the last successful pass.
const lastRefreshFlag = "last_refresh_at"

// Hydrator converts stored holdings into enriched holdings.
type Hydrator interface {
	HydrateAll(ctx context.Context, stored []domain.StoredHolding) ([]domain.EnrichedHolding, error)
}

// FlagStore is a small external key-value collaborator for operational
// flags. It is the only persistence the refresh path touches.
type FlagStore interface {
	SetFlag(ctx context.Context, key, value string) error
	GetFlag(ctx context.Context, key string) (string, error)
}

// Exporter is an optional post-refresh hook.
type Exporter interface {
	Export(ctx context.Context, p domain.Portfolio, months []domain.DividendMonth) error
}

// Result is one complete valuation pass.
type Result struct {
	Portfolio   domain.Portfolio       `json:"portfolio"`
	Dividends   []domain.DividendMonth `json:"dividends"`
	RefreshedAt time.Time              `json:"refreshedAt"`
}

// Service runs valuation passes and holds the latest successful result.
type Service struct {
	stored   []domain.StoredHolding
	hydrator Hydrator
	table    dividend.YieldTable
	flags    FlagStore // optional
	hook     Exporter  // optional
	now      func() time.Time

	inFlight atomic.Bool
	mu       sync.RWMutex
	latest   *Result
}

// Option configures optional Service collaborators.
type Option func(*Service)

// WithFlagStore records the last successful refresh time in the store.
func WithFlagStore(flags FlagStore) Option {
	return func(s *Service) { s.flags = flags }
}

// WithExportHook runs the exporter after each successful refresh.
func WithExportHook(hook Exporter) Option {
	return func(s *Service) { s.hook = hook }
}

// WithClock overrides the time source.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService creates a refresh service over a fixed stored-holdings set.
func NewService(stored []domain.StoredHolding, hydrator Hydrator, table dividend.YieldTable, opts ...Option) *Service {
	if hydrator == nil {
		panic("refresh.NewService: hydrator is nil")
	}
	s := &Service{
		stored:   stored,
		hydrator: hydrator,
		table:    table,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Refresh runs one valuation pass. Only one pass runs at a time: a call made
// while another is in flight returns ErrRefreshInFlight without doing any
// work. A failed pass leaves the previous result in place.
func (s *Service) Refresh(ctx context.Context) error {
	if !s.inFlight.CompareAndSwap(false, true) {
		return ErrRefreshInFlight
	}
	defer s.inFlight.Store(false)

	enriched, err := s.hydrator.HydrateAll(ctx, s.stored)
	if err != nil {
		return fmt.Errorf("hydrating holdings: %w", err)
	}

	now := s.now()
	result := Result{
		Portfolio:   portfolio.Build(enriched, now),
		Dividends:   dividend.Project(enriched, s.table, now),
		RefreshedAt: now,
	}

	s.mu.Lock()
	s.latest = &result
	s.mu.Unlock()

	if s.flags != nil {
		if err := s.flags.SetFlag(ctx, lastRefreshFlag, now.UTC().Format(time.RFC3339)); err != nil {
			slog.Warn("failed to record refresh flag", "error", err)
		}
	}

	if s.hook != nil {
		if err := s.hook.Export(ctx, result.Portfolio, result.Dividends); err != nil {
			slog.Error("post-refresh export failed", "error", err)
		}
	}

	return nil
}

// Latest returns the most recent successful result. The second return is
// false until the first pass completes.
func (s *Service) Latest() (Result, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.latest == nil {
		return Result{}, false
	}
	return *s.latest, true
}
