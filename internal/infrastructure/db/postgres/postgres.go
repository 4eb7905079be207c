package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/artistpay/payout-portal/internal/infrastructure/db/postgres/migrations"
)

const defaultTimeout = 10 * time.Second

// Config captures the minimal settings required to establish a PostgreSQL
// connection.
type Config struct {
	DSN     string
	Timeout time.Duration
}

// Connect establishes a pgx connection pool and verifies connectivity with a
// ping. A default timeout is applied when none is provided.
func Connect(ctx context.Context, cfg Config) (*pgxpool.Pool, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	connectCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	pool, err := pgxpool.New(connectCtx, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("postgres connect: %w", err)
	}

	if err := pool.Ping(connectCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("postgres ping: %w", err)
	}

	return pool, nil
}

// RunMigrations applies the embedded goose migrations. Goose drives a
// database/sql handle, so a short-lived stdlib connection is opened next to
// the pgx pool.
func RunMigrations(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("migrations: open: %w", err)
	}
	defer db.Close()

	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("migrations: dialect: %w", err)
	}
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migrations: up: %w", err)
	}
	return nil
}
