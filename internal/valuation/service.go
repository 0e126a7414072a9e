// Package valuation converts stored holdings into enriched holdings with
// current market values and profit/loss figures.
package valuation

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/hisakawa/shisan/internal/domain"
	"github.com/hisakawa/shisan/internal/quote"
)

// ErrUnknownAssetKind indicates a stored holding whose concrete type is not
// one of the five known kinds. This is a programming error, not bad user
// data, and it aborts the whole hydration batch.
var ErrUnknownAssetKind = errors.New("unknown asset kind")

// bondDiscount is the simulated market discount applied to bond acquisition
// cost in place of a price feed.
var bondDiscount = decimal.NewFromFloat(0.98)

// PriceResolver resolves an identifier to a current unit price. It is total:
// unknown identifiers fall back internally and never error.
type PriceResolver interface {
	Resolve(identifier string, avgCost decimal.Decimal, kind domain.AssetKind) decimal.Decimal
}

// RateSource provides the live USD/JPY rate.
type RateSource interface {
	CurrentRate(ctx context.Context) decimal.Decimal
}

// Service hydrates stored holdings.
type Service struct {
	prices PriceResolver
	rates  RateSource
	noise  quote.Noise
}

// NewService creates a hydration service. The noise source drives the
// simulated bond discount jitter and should match the resolver's.
func NewService(prices PriceResolver, rates RateSource, noise quote.Noise) *Service {
	if prices == nil {
		panic("valuation.NewService: prices is nil")
	}
	if rates == nil {
		panic("valuation.NewService: rates is nil")
	}
	if noise == nil {
		panic("valuation.NewService: noise is nil")
	}
	return &Service{prices: prices, rates: rates, noise: noise}
}

// HydrateAll converts a batch of stored holdings. The batch is
// all-or-nothing: any unknown kind fails the whole pass so a partially
// valued portfolio is never returned.
func (s *Service) HydrateAll(ctx context.Context, stored []domain.StoredHolding) ([]domain.EnrichedHolding, error) {
	liveRate := s.rates.CurrentRate(ctx)

	enriched := make([]domain.EnrichedHolding, 0, len(stored))
	for i, h := range stored {
		e, err := s.hydrate(h, liveRate)
		if err != nil {
			return nil, fmt.Errorf("hydrating holding %d (%s): %w", i, h.DisplayName(), err)
		}
		enriched = append(enriched, e)
	}
	return enriched, nil
}

// Hydrate converts a single stored holding using the current live FX rate.
func (s *Service) Hydrate(ctx context.Context, h domain.StoredHolding) (domain.EnrichedHolding, error) {
	return s.hydrate(h, s.rates.CurrentRate(ctx))
}

func (s *Service) hydrate(h domain.StoredHolding, liveRate decimal.Decimal) (domain.EnrichedHolding, error) {
	switch a := h.(type) {
	case domain.StoredDomesticStock:
		return s.hydrateDomesticStock(a), nil
	case domain.StoredForeignStock:
		return s.hydrateForeignStock(a, liveRate), nil
	case domain.StoredInvestmentTrust:
		return s.hydrateInvestmentTrust(a), nil
	case domain.StoredCrypto:
		return s.hydrateCrypto(a), nil
	case domain.StoredBond:
		return s.hydrateBond(a), nil
	default:
		return domain.EnrichedHolding{}, fmt.Errorf("%w: %T", ErrUnknownAssetKind, h)
	}
}

func (s *Service) hydrateDomesticStock(a domain.StoredDomesticStock) domain.EnrichedHolding {
	currentPrice := s.prices.Resolve(a.Code, a.AvgPrice, a.Kind())
	acquisitionCost := a.AvgPrice.Mul(a.Quantity)
	marketValue := currentPrice.Mul(a.Quantity)
	profitLoss := marketValue.Sub(acquisitionCost)

	return domain.EnrichedHolding{
		Kind:              a.Kind(),
		Broker:            a.Broker,
		Account:           a.Account,
		Name:              a.Name,
		Code:              a.Code,
		Quantity:          ptr(a.Quantity),
		AvgPrice:          ptr(a.AvgPrice),
		CurrentPrice:      ptr(currentPrice),
		MarketValue:       marketValue,
		AcquisitionCost:   acquisitionCost,
		ProfitLoss:        profitLoss,
		ProfitLossPercent: domain.PercentOfCost(profitLoss, acquisitionCost),
	}
}

func (s *Service) hydrateForeignStock(a domain.StoredForeignStock, liveRate decimal.Decimal) domain.EnrichedHolding {
	currentPriceUSD := s.prices.Resolve(a.Ticker, a.AvgPriceUSD, a.Kind())
	marketValueUSD := currentPriceUSD.Mul(a.Quantity)
	marketValueJPY := marketValueUSD.Mul(liveRate)

	// JPY cost basis is locked at the acquisition-time rate; valuation uses
	// the live rate. The mismatch is intentional and carries the currency
	// gain/loss into the JPY figure.
	acquisitionCostJPY := a.Quantity.Mul(a.AvgPriceUSD).Mul(a.HistoricalRate)
	profitLossUSD := currentPriceUSD.Sub(a.AvgPriceUSD).Mul(a.Quantity)
	profitLossJPY := marketValueJPY.Sub(acquisitionCostJPY)

	return domain.EnrichedHolding{
		Kind:              a.Kind(),
		Broker:            a.Broker,
		Account:           a.Account,
		Name:              a.Name,
		Ticker:            a.Ticker,
		Quantity:          ptr(a.Quantity),
		AvgPriceUSD:       ptr(a.AvgPriceUSD),
		CurrentPriceUSD:   ptr(currentPriceUSD),
		MarketValue:       marketValueJPY,
		MarketValueUSD:    ptr(marketValueUSD),
		AcquisitionCost:   acquisitionCostJPY,
		ProfitLoss:        profitLossJPY,
		ProfitLossUSD:     ptr(profitLossUSD),
		ProfitLossPercent: domain.PercentOfCost(profitLossJPY, acquisitionCostJPY),
	}
}

func (s *Service) hydrateInvestmentTrust(a domain.StoredInvestmentTrust) domain.EnrichedHolding {
	currentNAV := s.prices.Resolve(a.Name, a.AvgNAVPrice, a.Kind())
	// Units count 10,000-unit blocks, the same basis NAV is quoted in, so
	// market value is a plain product.
	marketValue := currentNAV.Mul(a.Units)
	acquisitionCost := domain.RoundJPY(a.Units.Mul(a.AvgNAVPrice))
	profitLoss := marketValue.Sub(acquisitionCost)

	return domain.EnrichedHolding{
		Kind:              a.Kind(),
		Broker:            a.Broker,
		Account:           a.Account,
		Name:              a.Name,
		Units:             ptr(a.Units),
		AvgNAVPrice:       ptr(a.AvgNAVPrice),
		DividendMethod:    a.DividendMethod,
		CurrentNAVPrice:   ptr(currentNAV),
		MarketValue:       marketValue,
		AcquisitionCost:   acquisitionCost,
		ProfitLoss:        profitLoss,
		ProfitLossPercent: domain.PercentOfCost(profitLoss, acquisitionCost),
	}
}

func (s *Service) hydrateCrypto(a domain.StoredCrypto) domain.EnrichedHolding {
	currentPrice := s.prices.Resolve(a.Symbol, a.AvgPrice, a.Kind())
	acquisitionCost := a.AvgPrice.Mul(a.Quantity)
	marketValue := currentPrice.Mul(a.Quantity)
	profitLoss := marketValue.Sub(acquisitionCost)

	return domain.EnrichedHolding{
		Kind:              a.Kind(),
		Broker:            a.Broker,
		Name:              a.Name,
		Symbol:            a.Symbol,
		Quantity:          ptr(a.Quantity),
		AvgPrice:          ptr(a.AvgPrice),
		CurrentPrice:      ptr(currentPrice),
		MarketValue:       marketValue,
		AcquisitionCost:   acquisitionCost,
		ProfitLoss:        profitLoss,
		ProfitLossPercent: domain.PercentOfCost(profitLoss, acquisitionCost),
	}
}

func (s *Service) hydrateBond(a domain.StoredBond) domain.EnrichedHolding {
	// Bonds store value, not price times quantity: market value is the
	// acquisition cost under a simulated discount with jitter.
	marketValue := a.AcquisitionCost.Mul(bondDiscount).Mul(s.noise())
	profitLoss := marketValue.Sub(a.AcquisitionCost)

	return domain.EnrichedHolding{
		Kind:              a.Kind(),
		Broker:            a.Broker,
		Account:           a.Account,
		Name:              a.Name,
		FaceValue:         ptr(a.FaceValue),
		MaturityDate:      a.MaturityDate,
		MarketValue:       marketValue,
		AcquisitionCost:   a.AcquisitionCost,
		ProfitLoss:        profitLoss,
		ProfitLossPercent: domain.PercentOfCost(profitLoss, a.AcquisitionCost),
	}
}

func ptr(d decimal.Decimal) *decimal.Decimal { return &d }
