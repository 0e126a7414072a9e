// Package portfolio aggregates enriched holdings into portfolio totals.
package portfolio

import (
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/hisakawa/shisan/internal/domain"
)

// Summarize reduces enriched holdings to JPY totals. Foreign holdings
// contribute their JPY-denominated market value and profit/loss; the USD
// figures never enter the totals. An empty list yields an all-zero summary.
func Summarize(holdings []domain.EnrichedHolding) domain.PortfolioSummary {
	totalMarketValue := lo.Reduce(holdings, func(acc decimal.Decimal, h domain.EnrichedHolding, _ int) decimal.Decimal {
		return acc.Add(h.MarketValue)
	}, decimal.Zero)

	totalProfitLoss := lo.Reduce(holdings, func(acc decimal.Decimal, h domain.EnrichedHolding, _ int) decimal.Decimal {
		return acc.Add(h.ProfitLoss)
	}, decimal.Zero)

	costBasis := totalMarketValue.Sub(totalProfitLoss)

	return domain.PortfolioSummary{
		TotalMarketValue:       totalMarketValue,
		TotalProfitLoss:        totalProfitLoss,
		TotalProfitLossPercent: domain.PercentOfCost(totalProfitLoss, costBasis),
	}
}

// Build assembles the full portfolio output for one refresh pass.
func Build(holdings []domain.EnrichedHolding, now time.Time) domain.Portfolio {
	return domain.Portfolio{
		UpdatedAt: now,
		Holdings:  holdings,
		Summary:   Summarize(holdings),
	}
}
