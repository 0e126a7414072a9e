package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnrichedHolding is a StoredHolding plus the valuation fields derived from
// current market prices. MarketValue, AcquisitionCost and ProfitLoss are
// always JPY regardless of the asset's origin currency; foreign stock
// additionally keeps the USD-side figures. Kind-specific fields are pointers
// and omitted from JSON when they do not apply.
type EnrichedHolding struct {
	Kind    AssetKind   `json:"kind"`
	Broker  Broker      `json:"broker"`
	Account AccountType `json:"account,omitempty"`
	Name    string      `json:"name"`

	Code   string `json:"code,omitempty"`
	Ticker string `json:"ticker,omitempty"`
	Symbol string `json:"symbol,omitempty"`

	Quantity *decimal.Decimal `json:"quantity,omitempty"`
	Units    *decimal.Decimal `json:"units,omitempty"`

	AvgPrice       *decimal.Decimal `json:"avgPrice,omitempty"`
	AvgPriceUSD    *decimal.Decimal `json:"avgPriceUsd,omitempty"`
	AvgNAVPrice    *decimal.Decimal `json:"avgNavPrice,omitempty"`
	DividendMethod DividendMethod   `json:"dividendMethod,omitempty"`
	FaceValue      *decimal.Decimal `json:"faceValue,omitempty"`
	MaturityDate   string           `json:"maturityDate,omitempty"`

	CurrentPrice    *decimal.Decimal `json:"currentPrice,omitempty"`
	CurrentPriceUSD *decimal.Decimal `json:"currentPriceUsd,omitempty"`
	CurrentNAVPrice *decimal.Decimal `json:"currentNavPrice,omitempty"`

	MarketValue    decimal.Decimal  `json:"marketValue"`
	MarketValueUSD *decimal.Decimal `json:"marketValueUsd,omitempty"`

	AcquisitionCost   decimal.Decimal  `json:"acquisitionCost"`
	ProfitLoss        decimal.Decimal  `json:"profitLoss"`
	ProfitLossUSD     *decimal.Decimal `json:"profitLossUsd,omitempty"`
	ProfitLossPercent decimal.Decimal  `json:"profitLossPercent"`
}

// Identifier returns the price/dividend lookup key for the holding.
func (h EnrichedHolding) Identifier() string {
	switch h.Kind {
	case KindDomesticStock:
		return h.Code
	case KindForeignStock:
		return h.Ticker
	case KindCrypto:
		return h.Symbol
	default:
		return h.Name
	}
}

// PortfolioSummary aggregates enriched holdings into JPY totals.
type PortfolioSummary struct {
	TotalMarketValue       decimal.Decimal `json:"totalMarketValue"`
	TotalProfitLoss        decimal.Decimal `json:"totalProfitLoss"`
	TotalProfitLossPercent decimal.Decimal `json:"totalProfitLossPercent"`
}

// Portfolio is the full valuation output for one refresh pass. It is rebuilt
// from scratch on every refresh; nothing in it is ever mutated in place.
type Portfolio struct {
	UpdatedAt time.Time         `json:"updatedAt"`
	Holdings  []EnrichedHolding `json:"holdings"`
	Summary   PortfolioSummary  `json:"summary"`
}
