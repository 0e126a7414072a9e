// Package quote resolves asset identifiers to current unit prices.
//
// This is a simulation boundary: prices come from a built-in reference table
// with jitter, standing in for a real quote feed. A production replacement
// swaps the implementation wholesale but keeps the Resolve contract, so
// valuation callers are unaffected.
package quote

import (
	"github.com/shopspring/decimal"

	"github.com/hisakawa/shisan/internal/domain"
)

var (
	genericMultiplier = decimal.NewFromFloat(1.05)
	trustMultiplier   = decimal.NewFromFloat(1.25)
)

// Service resolves current unit prices for held assets.
type Service struct {
	noise Noise
	cache *priceCache
}

// NewService creates a price resolver using the given jitter source.
func NewService(noise Noise) *Service {
	if noise == nil {
		panic("quote.NewService: noise is nil")
	}
	return &Service{
		noise: noise,
		cache: newPriceCache(),
	}
}

// Resolve returns the current unit price for an identifier. The function is
// total: identifiers absent from the reference table fall back to
// avgCost times a typical-gain multiplier (1.25 for investment trusts, 1.05
// otherwise) instead of failing. Resolved prices carry jitter from the noise
// source and are cached briefly so repeated lookups within one refresh pass
// agree.
func (s *Service) Resolve(identifier string, avgCost decimal.Decimal, kind domain.AssetKind) decimal.Decimal {
	if cached, ok := s.cache.get(identifier); ok {
		return cached
	}

	base, ok := referenceTable[identifier]
	if !ok {
		multiplier := genericMultiplier
		if kind == domain.KindInvestmentTrust {
			multiplier = trustMultiplier
		}
		base = avgCost.Mul(multiplier)
	}

	price := base.Mul(s.noise())
	s.cache.set(identifier, price)
	return price
}
