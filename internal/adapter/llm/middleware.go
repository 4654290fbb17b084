package llm

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// Middleware decorates a Generator with a cross-cutting concern.
type Middleware func(Generator) Generator

// Wrap applies middlewares in left-to-right order.
// Example: Wrap(inner, A, B) => A(B(inner))
func Wrap(inner Generator, mws ...Middleware) Generator {
	out := inner
	for i := len(mws) - 1; i >= 0; i-- {
		out = mws[i](out)
	}
	return out
}

// WithTimeout bounds every call by d. d <= 0 disables it.
func WithTimeout(d time.Duration) Middleware {
	return func(next Generator) Generator {
		if d <= 0 {
			return next
		}
		return &timeoutGenerator{next: next, d: d}
	}
}

type timeoutGenerator struct {
	next Generator
	d    time.Duration
}

func (g *timeoutGenerator) Name() string { return g.next.Name() }
func (g *timeoutGenerator) Close() error { return g.next.Close() }
func (g *timeoutGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, g.d)
	defer cancel()
	return g.next.Generate(ctx, req)
}

// WithLogging logs each call's duration and outcome.
func WithLogging(log *slog.Logger) Middleware {
	return func(next Generator) Generator {
		if log == nil {
			return next
		}
		return &loggingGenerator{next: next, log: log.With("generator", next.Name())}
	}
}

type loggingGenerator struct {
	next Generator
	log  *slog.Logger
}

func (g *loggingGenerator) Name() string { return g.next.Name() }
func (g *loggingGenerator) Close() error { return g.next.Close() }
func (g *loggingGenerator) Generate(ctx context.Context, req domain.GenerationRequest) (string, error) {
	start := time.Now()
	out, err := g.next.Generate(ctx, req)

	attrs := []any{
		slog.String("model", req.Model),
		slog.Int("prompt_bytes", len(req.Prompt)),
		slog.Duration("duration", time.Since(start)),
	}
	if err != nil {
		g.log.WarnContext(ctx, "llm.generate failed", append(attrs, slog.String("error", err.Error()))...)
		return "", err
	}
	g.log.DebugContext(ctx, "llm.generate", append(attrs, slog.Int("completion_bytes", len(out)))...)
	return out, nil
}
