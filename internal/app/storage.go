package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/brandvoice-backend/internal/adapter/memory"
	"github.com/heartmarshall/brandvoice-backend/internal/adapter/postgres/pgstore"
	"github.com/heartmarshall/brandvoice-backend/internal/adapter/redis"
	"github.com/heartmarshall/brandvoice-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/brandvoice-backend/internal/config"
	"github.com/heartmarshall/brandvoice-backend/internal/storage"
)

// OpenStorage opens the backend selected by cfg.Storage.Driver. With the
// redis analytics driver, counters move to redis while history and users stay
// in the main backend; readiness then depends on both.
func OpenStorage(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*storage.Backend, error) {
	var (
		b   *storage.Backend
		err error
	)

	switch cfg.Storage.Driver {
	case config.DriverMemory:
		b = memory.NewStore().Backend()
	case config.DriverPostgres:
		b, err = pgstore.Open(ctx, cfg.Database, cfg.Storage.AutoMigrate, logger)
	case config.DriverSQLite:
		b, err = sqlite.Open(ctx, cfg.SQLite, cfg.Storage.AutoMigrate)
	default:
		return nil, fmt.Errorf("app: unknown storage driver %q", cfg.Storage.Driver)
	}
	if err != nil {
		return nil, fmt.Errorf("app: open %s storage: %w", cfg.Storage.Driver, err)
	}

	if cfg.Storage.AnalyticsDriver == config.AnalyticsDriverRedis {
		counters, err := redis.Open(ctx, cfg.Redis)
		if err != nil {
			_ = b.Close()
			return nil, fmt.Errorf("app: open redis analytics: %w", err)
		}
		b.Analytics = counters
		b.Health = storage.Pingers{b.Health, counters}
		b.OnClose(counters.Close)
	}

	logger.Info("storage opened",
		slog.String("driver", b.Name),
		slog.String("analytics_driver", cfg.Storage.AnalyticsDriver),
	)

	return b, nil
}
