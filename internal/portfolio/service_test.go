package portfolio

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hisakawa/shisan/internal/domain"
)

func holding(name string, marketValue, profitLoss int64) domain.EnrichedHolding {
	return domain.EnrichedHolding{
		Name:        name,
		MarketValue: decimal.NewFromInt(marketValue),
		ProfitLoss:  decimal.NewFromInt(profitLoss),
	}
}

func TestSummarize(t *testing.T) {
	holdings := []domain.EnrichedHolding{
		holding("A", 280000, 30000),
		holding("B", 169400, 38900),
		holding("C", 588000, -12000),
	}

	got := Summarize(holdings)

	if !got.TotalMarketValue.Equal(decimal.NewFromInt(1037400)) {
		t.Errorf("TotalMarketValue = %s, want 1037400", got.TotalMarketValue)
	}
	if !got.TotalProfitLoss.Equal(decimal.NewFromInt(56900)) {
		t.Errorf("TotalProfitLoss = %s, want 56900", got.TotalProfitLoss)
	}

	costBasis := decimal.NewFromInt(980500) // 1037400 - 56900
	wantPct := decimal.NewFromInt(56900).Div(costBasis).Mul(decimal.NewFromInt(100))
	if !got.TotalProfitLossPercent.Equal(wantPct) {
		t.Errorf("TotalProfitLossPercent = %s, want %s", got.TotalProfitLossPercent, wantPct)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	got := Summarize(nil)

	if !got.TotalMarketValue.IsZero() || !got.TotalProfitLoss.IsZero() || !got.TotalProfitLossPercent.IsZero() {
		t.Errorf("empty summary = %+v, want all zero", got)
	}
}

func TestSummarizeOrderInvariant(t *testing.T) {
	a := []domain.EnrichedHolding{
		holding("A", 100, 10),
		holding("B", 200, -5),
		holding("C", 300, 42),
	}
	b := []domain.EnrichedHolding{a[2], a[0], a[1]}

	sa := Summarize(a)
	sb := Summarize(b)

	if !sa.TotalMarketValue.Equal(sb.TotalMarketValue) || !sa.TotalProfitLoss.Equal(sb.TotalProfitLoss) {
		t.Errorf("permutation changed totals: %+v vs %+v", sa, sb)
	}
}

func TestSummarizeZeroCostBasis(t *testing.T) {
	// Market value equals profit: cost basis is zero, percent must not divide.
	got := Summarize([]domain.EnrichedHolding{holding("gift", 1000, 1000)})
	if !got.TotalProfitLossPercent.IsZero() {
		t.Errorf("TotalProfitLossPercent = %s, want 0 for zero cost basis", got.TotalProfitLossPercent)
	}
}

func TestBuild(t *testing.T) {
	now := time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)
	holdings := []domain.EnrichedHolding{holding("A", 100, 10)}

	p := Build(holdings, now)

	if !p.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %s, want %s", p.UpdatedAt, now)
	}
	if len(p.Holdings) != 1 {
		t.Fatalf("len(Holdings) = %d, want 1", len(p.Holdings))
	}
	if !p.Summary.TotalMarketValue.Equal(decimal.NewFromInt(100)) {
		t.Errorf("Summary.TotalMarketValue = %s, want 100", p.Summary.TotalMarketValue)
	}
}
