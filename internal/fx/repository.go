package fx

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// ErrNoRate indicates that no stored rate exists for the pair.
var ErrNoRate = errors.New("no stored rate")

// Rate is a persisted exchange rate observation.
type Rate struct {
	Pair      string          `json:"pair"`
	Rate      decimal.Decimal `json:"rate"`
	FetchedAt time.Time       `json:"fetchedAt"`
}

// RateRepository defines persistent storage for last-known exchange rates.
type RateRepository interface {
	SaveRate(ctx context.Context, pair string, rate decimal.Decimal) error
	LatestRate(ctx context.Context, pair string) (Rate, error)
}

// PgRateRepository implements RateRepository with PostgreSQL.
type PgRateRepository struct {
	pool *pgxpool.Pool
}

// NewPgRateRepository creates a new PostgreSQL rate repository.
func NewPgRateRepository(pool *pgxpool.Pool) *PgRateRepository {
	return &PgRateRepository{pool: pool}
}

func (r *PgRateRepository) SaveRate(ctx context.Context, pair string, rate decimal.Decimal) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO fx_rates (pair, rate, fetched_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (pair) DO UPDATE SET rate = $2, fetched_at = NOW()`,
		pair, rate)
	if err != nil {
		return fmt.Errorf("saving rate for %s: %w", pair, err)
	}
	return nil
}

func (r *PgRateRepository) LatestRate(ctx context.Context, pair string) (Rate, error) {
	var rt Rate
	err := r.pool.QueryRow(ctx,
		`SELECT pair, rate, fetched_at FROM fx_rates WHERE pair = $1`,
		pair).Scan(&rt.Pair, &rt.Rate, &rt.FetchedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Rate{}, ErrNoRate
		}
		return Rate{}, fmt.Errorf("getting rate for %s: %w", pair, err)
	}
	return rt, nil
}
