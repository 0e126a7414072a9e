// Package dividend projects annual holding yields onto a rolling 12-month
// income calendar.
package dividend

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/hisakawa/shisan/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// Project distributes each holding's annual yield across its payout months.
// The result is 12 buckets starting at the month after now — a rolling
// window, not a fixed January-December year. Holdings without a table entry,
// with zero yield, or with no payout months contribute nothing. The
// projection is a pure function of (holdings, table, now); it is rebuilt
// from scratch on every call and holds no state.
func Project(holdings []domain.EnrichedHolding, table YieldTable, now time.Time) []domain.DividendMonth {
	byMonth := make(map[int]*domain.DividendMonth, 12)
	for m := 1; m <= 12; m++ {
		byMonth[m] = &domain.DividendMonth{
			Month:     m,
			Label:     fmt.Sprintf("%d月", m),
			Stock:     decimal.Zero,
			Staking:   decimal.Zero,
			Total:     decimal.Zero,
			Breakdown: []domain.DividendBreakdown{},
		}
	}

	for _, h := range holdings {
		info, ok := table[h.Identifier()]
		if !ok || !info.YieldPercent.IsPositive() {
			continue
		}
		// Payout months outside 1-12 are bad table data; drop them rather
		// than panic on the missing bucket.
		payoutMonths := validMonths(info.PayoutMonths)
		if len(payoutMonths) == 0 {
			continue
		}

		category := domain.CategoryStock
		if h.Kind == domain.KindCrypto {
			category = domain.CategoryStaking
		}

		annual := h.MarketValue.Mul(info.YieldPercent).Div(hundred)
		// Div truncates, so the per-payment amount can lose a remainder.
		// The final payout month absorbs it, keeping the months summing
		// exactly to the annual amount.
		n := int64(len(payoutMonths))
		perPayment := annual.Div(decimal.NewFromInt(n))
		lastPayment := annual.Sub(perPayment.Mul(decimal.NewFromInt(n - 1)))

		for i, m := range payoutMonths {
			payment := perPayment
			if i == len(payoutMonths)-1 {
				payment = lastPayment
			}
			bucket := byMonth[m]
			if category == domain.CategoryStaking {
				bucket.Staking = bucket.Staking.Add(payment)
			} else {
				bucket.Stock = bucket.Stock.Add(payment)
			}
			bucket.Total = bucket.Total.Add(payment)
			bucket.Breakdown = append(bucket.Breakdown, domain.DividendBreakdown{
				Name:     h.Name,
				Amount:   payment,
				Category: category,
			})
		}
	}

	// Rotate so the window opens at next month.
	start := int(now.Month())%12 + 1
	months := make([]domain.DividendMonth, 0, 12)
	for i := range 12 {
		m := (start-1+i)%12 + 1
		months = append(months, *byMonth[m])
	}
	return months
}

func validMonths(months []int) []int {
	valid := make([]int, 0, len(months))
	for _, m := range months {
		if m >= 1 && m <= 12 {
			valid = append(valid, m)
		}
	}
	return valid
}
