package config

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// Store is the slice of the connection pool the bring-up sequence needs:
// a liveness probe and the ability to run schema statements.
type Store interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

const schema = `
CREATE TABLE IF NOT EXISTS users (
	id SERIAL PRIMARY KEY,
	name TEXT NOT NULL,
	email TEXT NOT NULL UNIQUE,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
CREATE TABLE IF NOT EXISTS orders (
	id SERIAL PRIMARY KEY,
	user_id INTEGER NOT NULL REFERENCES users (id),
	total DOUBLE PRECISION NOT NULL,
	status TEXT NOT NULL DEFAULT 'created',
	external_id BIGINT NOT NULL,
	created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);
`

func Connect(ctx context.Context, cfg *Config) (*pgxpool.Pool, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DBHost,
		cfg.DBPort,
		cfg.DBUser,
		cfg.DBPassword,
		cfg.DBName,
		cfg.DBSSLMode,
	)

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create connection pool: %w", err)
	}

	return pool, nil
}

// BringUp blocks until the store answers a liveness probe, then ensures the
// schema exists. The probe retries at a fixed interval up to maxAttempts;
// exhausting the budget is fatal to the caller. This is the only layer that
// retries anything.
func BringUp(ctx context.Context, db Store, logger zerolog.Logger, maxAttempts int, interval time.Duration) error {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		logger.Info().
			Int("attempt", attempt).
			Int("max_attempts", maxAttempts).
			Msg("probing database")

		if lastErr = db.Ping(ctx); lastErr == nil {
			if err := EnsureSchema(ctx, db); err != nil {
				return fmt.Errorf("ensure schema: %w", err)
			}
			logger.Info().Msg("database initialized")
			return nil
		}

		logger.Error().Err(lastErr).Msg("database probe failed")

		if attempt < maxAttempts {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-time.After(interval):
			}
		}
	}

	return fmt.Errorf("database not reachable after %d attempts: %w", maxAttempts, lastErr)
}

// EnsureSchema creates the required tables if they are missing. Safe to run
// on every start.
func EnsureSchema(ctx context.Context, db Store) error {
	_, err := db.Exec(ctx, schema)
	return err
}
