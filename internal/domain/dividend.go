package domain

import "github.com/shopspring/decimal"

// DividendCategory separates equity/fund payouts from crypto staking rewards.
type DividendCategory string

const (
	CategoryStock   DividendCategory = "stock"
	CategoryStaking DividendCategory = "staking"
)

// DividendBreakdown is one holding's contribution to a calendar month.
type DividendBreakdown struct {
	Name     string           `json:"name"`
	Amount   decimal.Decimal  `json:"amount"`
	Category DividendCategory `json:"category"`
}

// DividendMonth is one bucket of the rolling 12-month income calendar.
// Month is the calendar month number (1-12); Label is its display form.
type DividendMonth struct {
	Month     int                 `json:"month"`
	Label     string              `json:"label"`
	Stock     decimal.Decimal     `json:"stockIncome"`
	Staking   decimal.Decimal     `json:"stakingIncome"`
	Total     decimal.Decimal     `json:"total"`
	Breakdown []DividendBreakdown `json:"breakdown"`
}
