// Package fx provides the USD/JPY exchange rate used when valuing foreign
// holdings. Foreign acquisition costs use a per-holding historical rate
// recorded at purchase time; only the live rate comes from here.
package fx

import (
	"context"
	"log/slog"

	"github.com/shopspring/decimal"
)

// PairUSDJPY is the only pair this service tracks.
const PairUSDJPY = "USD/JPY"

// RateFetcher fetches a live USD/JPY rate.
type RateFetcher interface {
	FetchRate(ctx context.Context) (decimal.Decimal, error)
}

// Service resolves the current USD/JPY rate with graceful degradation:
// live fetch first, then the last persisted rate, then a static fallback.
// CurrentRate never fails, so a rate-source outage degrades the valuation
// instead of breaking the refresh.
type Service struct {
	fetcher  RateFetcher
	repo     RateRepository // optional; nil disables persistence
	fallback decimal.Decimal
}

// NewService creates an FX service. repo may be nil when no database is
// configured; the service then degrades straight to the static fallback.
func NewService(fetcher RateFetcher, repo RateRepository, fallback decimal.Decimal) *Service {
	if fetcher == nil {
		panic("fx.NewService: fetcher is nil")
	}
	if fallback.LessThanOrEqual(decimal.Zero) {
		panic("fx.NewService: fallback rate must be positive")
	}
	return &Service{fetcher: fetcher, repo: repo, fallback: fallback}
}

// CurrentRate returns the USD/JPY rate to use for the current valuation.
func (s *Service) CurrentRate(ctx context.Context) decimal.Decimal {
	rate, err := s.fetcher.FetchRate(ctx)
	if err == nil {
		if s.repo != nil {
			if saveErr := s.repo.SaveRate(ctx, PairUSDJPY, rate); saveErr != nil {
				slog.Warn("failed to persist fx rate", "pair", PairUSDJPY, "error", saveErr)
			}
		}
		return rate
	}
	slog.Warn("live fx fetch failed, falling back", "pair", PairUSDJPY, "error", err)

	if s.repo != nil {
		stored, repoErr := s.repo.LatestRate(ctx, PairUSDJPY)
		if repoErr == nil {
			slog.Info("using last-known fx rate", "pair", PairUSDJPY, "rate", stored.Rate, "fetchedAt", stored.FetchedAt)
			return stored.Rate
		}
		slog.Warn("no stored fx rate available", "pair", PairUSDJPY, "error", repoErr)
	}

	return s.fallback
}
