package transform

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type generator interface {
	Generate(ctx context.Context, req domain.GenerationRequest) (string, error)
}

type historyRepo interface {
	Create(ctx context.Context, t *domain.Transformation) (*domain.Transformation, error)
	List(ctx context.Context, limit int) ([]domain.Transformation, error)
}

type analyticsRecorder interface {
	Increment(ctx context.Context, brand domain.BrandVoice, ct domain.ContentType) (*domain.AnalyticsCounter, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

const (
	defaultHistoryLimit = 50
	maxHistoryLimit     = 200
)

// Config holds the generation parameters shared by every request, plus the
// history listing bounds.
type Config struct {
	Model       string
	Temperature float64
	MaxTokens   int

	DefaultHistoryLimit int
	MaxHistoryLimit     int
}

// Service rewrites text in a brand voice and records every successful
// rewrite in history and analytics.
type Service struct {
	log      *slog.Logger
	gen      generator
	history  historyRepo
	counters analyticsRecorder
	tx       txManager
	cfg      Config
}

// NewService creates a new transformation service.
func NewService(
	logger *slog.Logger,
	gen generator,
	history historyRepo,
	counters analyticsRecorder,
	tx txManager,
	cfg Config,
) *Service {
	if cfg.DefaultHistoryLimit <= 0 {
		cfg.DefaultHistoryLimit = defaultHistoryLimit
	}
	if cfg.MaxHistoryLimit <= 0 {
		cfg.MaxHistoryLimit = maxHistoryLimit
	}
	return &Service{
		log:      logger.With("service", "transform"),
		gen:      gen,
		history:  history,
		counters: counters,
		tx:       tx,
		cfg:      cfg,
	}
}
