package app

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/heartmarshall/brandvoice-backend/internal/config"
)

// NewLogger builds the process logger from cfg and installs it as the slog
// default. "json" is the production format; anything else is text with
// source locations. Output goes to stderr so the CLI can keep stdout for
// results.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg)
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{
		Level:     parseLevel(cfg.Level),
		AddSource: !strings.EqualFold(cfg.Format, "json"),
	}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// startupAttrs are the fields of the "starting application" record. They
// name the selected storage and generation backends; credentials and DSNs
// never appear.
func startupAttrs(cfg *config.Config) []any {
	return []any{
		buildAttr(),
		slog.String("log_level", cfg.Log.Level),
		slog.String("storage", cfg.Storage.Driver),
		slog.String("analytics_driver", cfg.Storage.AnalyticsDriver),
		slog.Group("llm",
			slog.String("provider", cfg.LLM.Provider),
			slog.String("model", cfg.LLM.Model),
			slog.Duration("timeout", cfg.LLM.Timeout),
		),
	}
}
