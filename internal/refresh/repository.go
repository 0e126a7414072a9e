package refresh

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrFlagNotFound indicates the requested flag has never been set.
var ErrFlagNotFound = errors.New("flag not found")

// PgFlagStore implements FlagStore with PostgreSQL.
type PgFlagStore struct {
	pool *pgxpool.Pool
}

// NewPgFlagStore creates a new PostgreSQL flag store.
func NewPgFlagStore(pool *pgxpool.Pool) *PgFlagStore {
	return &PgFlagStore{pool: pool}
}

func (s *PgFlagStore) SetFlag(ctx context.Context, key, value string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO app_flags (key, value, updated_at)
		 VALUES ($1, $2, NOW())
		 ON CONFLICT (key) DO UPDATE SET value = $2, updated_at = NOW()`,
		key, value)
	if err != nil {
		return fmt.Errorf("setting flag %s: %w", key, err)
	}
	return nil
}

func (s *PgFlagStore) GetFlag(ctx context.Context, key string) (string, error) {
	var value string
	err := s.pool.QueryRow(ctx,
		`SELECT value FROM app_flags WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", ErrFlagNotFound
		}
		return "", fmt.Errorf("getting flag %s: %w", key, err)
	}
	return value, nil
}
