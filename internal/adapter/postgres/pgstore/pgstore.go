// Package pgstore assembles the PostgreSQL storage variant.
package pgstore

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	postgres "github.com/heartmarshall/brandvoice-backend/internal/adapter/postgres"
	"github.com/heartmarshall/brandvoice-backend/internal/adapter/postgres/analytics"
	"github.com/heartmarshall/brandvoice-backend/internal/adapter/postgres/transformation"
	"github.com/heartmarshall/brandvoice-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/brandvoice-backend/internal/config"
	"github.com/heartmarshall/brandvoice-backend/internal/storage"
	"github.com/heartmarshall/brandvoice-backend/migrations"
)

// Open connects to PostgreSQL, optionally applies migrations, and returns the
// backend. Closing the backend closes the pool.
func Open(ctx context.Context, cfg config.DatabaseConfig, autoMigrate bool, log *slog.Logger) (*storage.Backend, error) {
	pool, err := postgres.NewPool(ctx, cfg, log)
	if err != nil {
		return nil, err
	}

	if autoMigrate {
		if err := Migrate(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}

	b := NewBackend(pool)
	b.OnClose(func() error {
		pool.Close()
		return nil
	})
	return b, nil
}

// Migrate applies pending goose migrations through a database/sql view of pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	db := stdlib.OpenDBFromPool(pool)
	defer db.Close()

	if _, err := migrations.Up(ctx, db, goose.DialectPostgres); err != nil {
		return fmt.Errorf("migrate postgres: %w", err)
	}
	return nil
}

// NewBackend wires the PostgreSQL repositories around db. The caller owns db.
func NewBackend(db postgres.DB) *storage.Backend {
	return &storage.Backend{
		Name:            config.DriverPostgres,
		Users:           user.New(db),
		Transformations: transformation.New(db),
		Analytics:       analytics.New(db),
		Tx:              postgres.NewTxManager(db),
		Health:          db,
	}
}
