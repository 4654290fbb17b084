// Package sqlite implements every storage capability on an embedded SQLite
// database (modernc.org/sqlite, no cgo).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/heartmarshall/brandvoice-backend/internal/config"
	"github.com/heartmarshall/brandvoice-backend/internal/storage"
	"github.com/heartmarshall/brandvoice-backend/migrations"
)

// Open opens (creating if needed) the database file at cfg.Path, optionally
// applies migrations, and returns the backend. Closing the backend closes db.
func Open(ctx context.Context, cfg config.SQLiteConfig, autoMigrate bool) (*storage.Backend, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("create sqlite directory: %w", err)
		}
	}

	// Pragmas in the DSN apply to every connection in the pool.
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)&_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)",
		cfg.Path, cfg.BusyTimeout/time.Millisecond)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	// SQLite allows one writer; a single connection serializes statements
	// instead of surfacing SQLITE_BUSY under concurrent upserts.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	if autoMigrate {
		if _, err := migrations.Up(ctx, db, goose.DialectSQLite3); err != nil {
			db.Close()
			return nil, fmt.Errorf("migrate sqlite: %w", err)
		}
	}

	b := NewBackend(db)
	b.OnClose(db.Close)
	return b, nil
}

// NewBackend wires the SQLite repositories around db. The caller owns db.
func NewBackend(db *sql.DB) *storage.Backend {
	return &storage.Backend{
		Name:            config.DriverSQLite,
		Users:           &UserRepo{db: db},
		Transformations: &TransformationRepo{db: db},
		Analytics:       &AnalyticsRepo{db: db},
		Tx:              &TxManager{db: db},
		Health:          pinger{db: db},
	}
}

type pinger struct{ db *sql.DB }

func (p pinger) Ping(ctx context.Context) error { return p.db.PingContext(ctx) }

// querier is the subset of *sql.DB and *sql.Tx the repositories use.
// It satisfies sqlscan.Querier.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txCtxKey struct{}

func querierFromCtx(ctx context.Context, db *sql.DB) querier {
	if tx, ok := ctx.Value(txCtxKey{}).(*sql.Tx); ok {
		return tx
	}
	return db
}

func builder() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Question)
}

// TxManager runs callbacks inside a *sql.Tx carried in the context.
type TxManager struct {
	db *sql.DB
}

// RunInTx commits when fn succeeds, rolls back on error or panic.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txCtxKey{}, tx)); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %v)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
