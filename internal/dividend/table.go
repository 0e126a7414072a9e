package dividend

import "github.com/shopspring/decimal"

// YieldInfo is one entry of the dividend reference table: the holding's
// annual yield and the calendar months it historically pays out in.
type YieldInfo struct {
	YieldPercent decimal.Decimal
	PayoutMonths []int
}

// YieldTable maps a holding identifier (code, ticker, or symbol) to its
// dividend profile. Identifiers absent from the table simply contribute
// nothing to the projection.
type YieldTable map[string]YieldInfo

// DefaultTable is the built-in dividend reference data. Reinvesting trusts
// are not listed: they distribute nothing externally. ETH models a monthly
// staking reward rather than a dividend.
var DefaultTable = YieldTable{
	// Domestic stocks
	"3769": {YieldPercent: decimal.NewFromFloat(0.8), PayoutMonths: []int{6, 12}},
	"2730": {YieldPercent: decimal.NewFromFloat(2.8), PayoutMonths: []int{3, 9}},
	"4661": {YieldPercent: decimal.NewFromFloat(0.5), PayoutMonths: []int{3, 9}},
	"4755": {YieldPercent: decimal.Zero},
	"9432": {YieldPercent: decimal.NewFromFloat(3.2), PayoutMonths: []int{6, 12}},
	"7203": {YieldPercent: decimal.NewFromFloat(3.5), PayoutMonths: []int{5, 11}},

	// Foreign stocks
	"AAPL":  {YieldPercent: decimal.NewFromFloat(0.5), PayoutMonths: []int{2, 5, 8, 11}},
	"ASML":  {YieldPercent: decimal.NewFromFloat(0.7), PayoutMonths: []int{5, 11}},
	"GOOGL": {YieldPercent: decimal.Zero},
	"MSFT":  {YieldPercent: decimal.NewFromFloat(0.7), PayoutMonths: []int{3, 6, 9, 12}},
	"NVDA":  {YieldPercent: decimal.NewFromFloat(0.03), PayoutMonths: []int{3, 6, 9, 12}},
	"TSLA":  {YieldPercent: decimal.Zero},
	"EDV":   {YieldPercent: decimal.NewFromFloat(4.2), PayoutMonths: []int{3, 6, 9, 12}},
	"EC":    {YieldPercent: decimal.NewFromFloat(8.5), PayoutMonths: []int{4, 12}},

	// Crypto staking
	"BTC": {YieldPercent: decimal.Zero},
	"ETH": {YieldPercent: decimal.NewFromFloat(3.5), PayoutMonths: []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12}},
}
