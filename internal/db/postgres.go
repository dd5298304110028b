package db

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ConnectPostgres opens a pgx pool against DATABASE_URL and ensures
// the schema exists.
func ConnectPostgres(ctx context.Context) (*pgxpool.Pool, error) {
	url := os.Getenv("DATABASE_URL")
	if url == "" {
		return nil, fmt.Errorf("DATABASE_URL not set")
	}

	cfg, err := pgxpool.ParseConfig(url)
	if err != nil {
		return nil, fmt.Errorf("parse DATABASE_URL: %w", err)
	}

	cfg.MaxConns = 10
	cfg.MinConns = 2
	cfg.MaxConnLifetime = time.Hour

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect postgres: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}

	if err := initSchema(ctx, pool); err != nil {
		pool.Close()
		return nil, fmt.Errorf("init schema: %w", err)
	}

	return pool, nil
}

func initSchema(ctx context.Context, pool *pgxpool.Pool) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id       TEXT PRIMARY KEY,
			name     TEXT NOT NULL,
			email    TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role     TEXT NOT NULL DEFAULT 'STUDENT'
		)`,
		`CREATE TABLE IF NOT EXISTS favorites (
			user_id    TEXT NOT NULL,
			item       TEXT NOT NULL,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			PRIMARY KEY (user_id, item)
		)`,
		`CREATE TABLE IF NOT EXISTS ratings (
			mess         TEXT NOT NULL,
			day          TEXT NOT NULL,
			meal         TEXT NOT NULL,
			item         TEXT NOT NULL,
			rating       DOUBLE PRECISION NOT NULL,
			count        INTEGER NOT NULL,
			last_updated TIMESTAMPTZ NOT NULL,
			PRIMARY KEY (mess, day, meal, item)
		)`,
		`CREATE TABLE IF NOT EXISTS push_subscriptions (
			id             TEXT PRIMARY KEY,
			platform       TEXT NOT NULL,
			endpoint       TEXT NOT NULL UNIQUE,
			meal_reminders BOOLEAN NOT NULL DEFAULT TRUE,
			menu_updates   BOOLEAN NOT NULL DEFAULT TRUE,
			special_meals  BOOLEAN NOT NULL DEFAULT TRUE,
			created_at     TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
	}

	for _, stmt := range statements {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
