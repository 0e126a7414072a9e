package domain

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// SafeParse parses a string into a decimal, returning zero for invalid or
// empty input.
func SafeParse(value string) decimal.Decimal {
	if value == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// PercentOfCost returns profitLoss / cost * 100. The result is defined as
// zero whenever cost is zero or negative, so a degenerate cost basis never
// produces a division by zero or a nonsense percentage.
func PercentOfCost(profitLoss, cost decimal.Decimal) decimal.Decimal {
	if cost.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return profitLoss.Div(cost).Mul(hundred)
}

// RoundJPY rounds a JPY amount to whole yen.
func RoundJPY(d decimal.Decimal) decimal.Decimal {
	return d.Round(0)
}
