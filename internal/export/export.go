// Package export writes valuation reports to spreadsheet destinations.
package export

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/hisakawa/shisan/internal/domain"
)

// ReportWriter writes one valuation report. Implementations exist for local
// xlsx files and Google Sheets; both satisfy the refresh export hook.
type ReportWriter interface {
	Export(ctx context.Context, p domain.Portfolio, months []domain.DividendMonth) error
}

var holdingsHeader = []any{
	"Kind", "Broker", "Account", "Name", "Identifier",
	"Market Value (JPY)", "Acquisition Cost (JPY)", "Profit/Loss (JPY)", "Profit/Loss %",
}

var dividendsHeader = []any{"Month", "Stock Income", "Staking Income", "Total"}

// buildHoldingRows flattens portfolio holdings into spreadsheet rows, header
// first, with a trailing totals row.
func buildHoldingRows(p domain.Portfolio) [][]any {
	rows := make([][]any, 0, len(p.Holdings)+2)
	rows = append(rows, holdingsHeader)

	for _, h := range p.Holdings {
		rows = append(rows, []any{
			string(h.Kind),
			string(h.Broker),
			string(h.Account),
			h.Name,
			h.Identifier(),
			numCell(h.MarketValue),
			numCell(h.AcquisitionCost),
			numCell(h.ProfitLoss),
			numCell(h.ProfitLossPercent.Round(2)),
		})
	}

	rows = append(rows, []any{
		"TOTAL", "", "", "", "",
		numCell(p.Summary.TotalMarketValue),
		numCell(p.Summary.TotalMarketValue.Sub(p.Summary.TotalProfitLoss)),
		numCell(p.Summary.TotalProfitLoss),
		numCell(p.Summary.TotalProfitLossPercent.Round(2)),
	})
	return rows
}

// buildDividendRows flattens the 12-month calendar into spreadsheet rows.
func buildDividendRows(months []domain.DividendMonth) [][]any {
	rows := make([][]any, 0, len(months)+1)
	rows = append(rows, dividendsHeader)
	for _, m := range months {
		rows = append(rows, []any{
			m.Label,
			numCell(m.Stock.Round(0)),
			numCell(m.Staking.Round(0)),
			numCell(m.Total.Round(0)),
		})
	}
	return rows
}

// numCell converts a decimal to a float cell value. Spreadsheet precision is
// sufficient for JPY report amounts.
func numCell(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}
