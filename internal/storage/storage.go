// Package storage declares the persistence capabilities the services depend
// on. Each storage variant (memory, postgres, sqlite) provides a Backend that
// fills every capability; the variant is selected once at startup.
package storage

import (
	"context"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// UserRepository persists user records.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// TransformationRepository persists the append-only transformation history.
type TransformationRepository interface {
	Create(ctx context.Context, t *domain.Transformation) (*domain.Transformation, error)
	// List returns at most limit rows, newest first.
	List(ctx context.Context, limit int) ([]domain.Transformation, error)
}

// AnalyticsRepository stores usage counters keyed by (brand voice, content type).
type AnalyticsRepository interface {
	// Increment atomically creates the counter with Count=1 or adds one to it.
	Increment(ctx context.Context, brand domain.BrandVoice, ct domain.ContentType) (*domain.AnalyticsCounter, error)
	List(ctx context.Context) ([]domain.AnalyticsCounter, error)
}

// TxManager runs fn inside a unit of work when the variant supports one.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Pinger reports whether the backing store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Backend bundles the capabilities of one storage variant.
type Backend struct {
	Name            string
	Users           UserRepository
	Transformations TransformationRepository
	Analytics       AnalyticsRepository
	Tx              TxManager
	Health          Pinger

	closers []func() error
}

// OnClose registers a release function; Close calls them in reverse order.
func (b *Backend) OnClose(fn func() error) {
	b.closers = append(b.closers, fn)
}

// Close releases every resource registered with OnClose and returns the
// first error encountered.
func (b *Backend) Close() error {
	var first error
	for i := len(b.closers) - 1; i >= 0; i-- {
		if err := b.closers[i](); err != nil && first == nil {
			first = err
		}
	}
	b.closers = nil
	return first
}

// Pingers pings every member and returns the first failure.
type Pingers []Pinger

func (ps Pingers) Ping(ctx context.Context) error {
	for _, p := range ps {
		if err := p.Ping(ctx); err != nil {
			return err
		}
	}
	return nil
}
