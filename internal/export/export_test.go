package export

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hisakawa/shisan/internal/domain"
)

func testPortfolio() domain.Portfolio {
	return domain.Portfolio{
		UpdatedAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
		Holdings: []domain.EnrichedHolding{
			{
				Kind:              domain.KindDomesticStock,
				Broker:            domain.BrokerRakuten,
				Account:           domain.AccountSpecific,
				Name:              "NTT",
				Code:              "9432",
				MarketValue:       decimal.NewFromInt(32000),
				AcquisitionCost:   decimal.NewFromInt(31000),
				ProfitLoss:        decimal.NewFromInt(1000),
				ProfitLossPercent: decimal.NewFromFloat(3.2258),
			},
		},
		Summary: domain.PortfolioSummary{
			TotalMarketValue:       decimal.NewFromInt(32000),
			TotalProfitLoss:        decimal.NewFromInt(1000),
			TotalProfitLossPercent: decimal.NewFromFloat(3.2258),
		},
	}
}

func TestBuildHoldingRows(t *testing.T) {
	rows := buildHoldingRows(testPortfolio())

	// Header + one holding + totals.
	if len(rows) != 3 {
		t.Fatalf("len(rows) = %d, want 3", len(rows))
	}
	if rows[1][4] != "9432" {
		t.Errorf("identifier cell = %v, want 9432", rows[1][4])
	}
	if rows[1][5] != float64(32000) {
		t.Errorf("market value cell = %v, want 32000", rows[1][5])
	}
	if rows[2][0] != "TOTAL" {
		t.Errorf("last row = %v, want totals row", rows[2])
	}
	if rows[2][7] != float64(1000) {
		t.Errorf("total profit/loss cell = %v, want 1000", rows[2][7])
	}
}

func TestBuildDividendRows(t *testing.T) {
	months := []domain.DividendMonth{
		{Month: 3, Label: "3月", Stock: decimal.NewFromInt(16000), Staking: decimal.NewFromInt(500), Total: decimal.NewFromInt(16500)},
	}

	rows := buildDividendRows(months)

	if len(rows) != 2 {
		t.Fatalf("len(rows) = %d, want 2", len(rows))
	}
	if rows[1][0] != "3月" {
		t.Errorf("label cell = %v, want 3月", rows[1][0])
	}
	if rows[1][3] != float64(16500) {
		t.Errorf("total cell = %v, want 16500", rows[1][3])
	}
}

func TestExcelWriterExport(t *testing.T) {
	path := t.TempDir() + "/report.xlsx"
	w := NewExcelWriter(path)

	months := []domain.DividendMonth{
		{Month: 3, Label: "3月", Stock: decimal.NewFromInt(16000), Staking: decimal.Zero, Total: decimal.NewFromInt(16000)},
	}
	if err := w.Export(t.Context(), testPortfolio(), months); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
