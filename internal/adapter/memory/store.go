// Package memory implements every storage capability in process memory.
// Data is lost on restart; it backs local development and tests.
package memory

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
	"github.com/heartmarshall/brandvoice-backend/internal/storage"
)

type counterKey struct {
	brand domain.BrandVoice
	ct    domain.ContentType
}

// Store holds all entities behind a single mutex. Every method is safe for
// concurrent use; Increment is atomic per key.
//
// Writes are serialized against RunInTx through txMu, so a rolled-back unit
// of work never discards another caller's write. Reads do not wait for an
// open unit of work and may observe its uncommitted rows.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	users           map[int64]domain.User
	transformations []domain.Transformation
	counters        map[counterKey]*domain.AnalyticsCounter

	nextUserID           int64
	nextTransformationID int64
	nextCounterID        int64

	now func() time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		users:    make(map[int64]domain.User),
		counters: make(map[counterKey]*domain.AnalyticsCounter),
		now:      time.Now,
	}
}

// Backend exposes the store as a storage.Backend.
func (s *Store) Backend() *storage.Backend {
	return &storage.Backend{
		Name:            "memory",
		Users:           &UserRepo{s: s},
		Transformations: &TransformationRepo{s: s},
		Analytics:       &AnalyticsRepo{s: s},
		Tx:              &TxManager{s: s},
		Health:          s,
	}
}

// Ping always succeeds.
func (s *Store) Ping(context.Context) error { return nil }

// ---------------------------------------------------------------------------
// Units of work
// ---------------------------------------------------------------------------

type txKey struct{}

// TxManager gives the memory store all-or-nothing units of work: a callback
// that returns an error or panics leaves users, history and counters exactly
// as they were before RunInTx.
type TxManager struct{ s *Store }

// RunInTx runs fn with every other writer of the store excluded. Nested calls
// join the outer unit of work.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if m.s.inTx(ctx) {
		return fn(ctx)
	}

	m.s.txMu.Lock()
	defer m.s.txMu.Unlock()

	snap := m.s.snapshot()
	defer func() {
		if r := recover(); r != nil {
			m.s.restore(snap)
			panic(r)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, m.s)); err != nil {
		m.s.restore(snap)
		return err
	}
	return nil
}

func (s *Store) inTx(ctx context.Context) bool {
	owner, _ := ctx.Value(txKey{}).(*Store)
	return owner == s
}

// lockWrite takes the locks a single write needs and returns their release.
// Inside RunInTx the unit of work already holds txMu.
func (s *Store) lockWrite(ctx context.Context) func() {
	if s.inTx(ctx) {
		s.mu.Lock()
		return s.mu.Unlock
	}
	s.txMu.Lock()
	s.mu.Lock()
	return func() {
		s.mu.Unlock()
		s.txMu.Unlock()
	}
}

type snapshot struct {
	users                map[int64]domain.User
	transformations      int
	counters             map[counterKey]domain.AnalyticsCounter
	nextUserID           int64
	nextTransformationID int64
	nextCounterID        int64
}

func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		users:                make(map[int64]domain.User, len(s.users)),
		transformations:      len(s.transformations),
		counters:             make(map[counterKey]domain.AnalyticsCounter, len(s.counters)),
		nextUserID:           s.nextUserID,
		nextTransformationID: s.nextTransformationID,
		nextCounterID:        s.nextCounterID,
	}
	for id, u := range s.users {
		snap.users[id] = u
	}
	for k, c := range s.counters {
		snap.counters[k] = *c
	}
	return snap
}

// restore rolls the store back to snap. History is append-only, so
// truncating to the recorded length drops exactly the rows written since.
func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.users = snap.users
	s.transformations = s.transformations[:snap.transformations]
	s.counters = make(map[counterKey]*domain.AnalyticsCounter, len(snap.counters))
	for k, c := range snap.counters {
		s.counters[k] = &c
	}
	s.nextUserID = snap.nextUserID
	s.nextTransformationID = snap.nextTransformationID
	s.nextCounterID = snap.nextCounterID
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

// UserRepo is the in-memory user repository.
type UserRepo struct{ s *Store }

// Create stores a user. Returns domain.ErrAlreadyExists if the username is taken
// (case-insensitive).
func (r *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	defer r.s.lockWrite(ctx)()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Username, user.Username) {
			return nil, fmt.Errorf("user %q: %w", user.Username, domain.ErrAlreadyExists)
		}
	}

	r.s.nextUserID++
	created := *user
	created.ID = r.s.nextUserID
	if created.CreatedAt.IsZero() {
		created.CreatedAt = r.s.now().UTC()
	}
	r.s.users[created.ID] = created

	return &created, nil
}

// GetByID returns a user by ID or domain.ErrNotFound.
func (r *UserRepo) GetByID(_ context.Context, id int64) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, fmt.Errorf("user %d: %w", id, domain.ErrNotFound)
	}
	return &u, nil
}

// GetByUsername returns a user by username (case-insensitive) or domain.ErrNotFound.
func (r *UserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Username, username) {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("user %q: %w", username, domain.ErrNotFound)
}

// ---------------------------------------------------------------------------
// Transformations
// ---------------------------------------------------------------------------

// TransformationRepo is the in-memory history repository.
type TransformationRepo struct{ s *Store }

// Create appends a history row and assigns its ID.
func (r *TransformationRepo) Create(ctx context.Context, t *domain.Transformation) (*domain.Transformation, error) {
	defer r.s.lockWrite(ctx)()

	r.s.nextTransformationID++
	created := *t
	created.ID = r.s.nextTransformationID
	if created.CreatedAt.IsZero() {
		created.CreatedAt = r.s.now().UTC()
	}
	r.s.transformations = append(r.s.transformations, created)

	return &created, nil
}

// List returns at most limit rows, newest first.
func (r *TransformationRepo) List(_ context.Context, limit int) ([]domain.Transformation, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	n := len(r.s.transformations)
	if limit <= 0 || limit > n {
		limit = n
	}

	out := make([]domain.Transformation, 0, limit)
	for i := n - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, r.s.transformations[i])
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Analytics
// ---------------------------------------------------------------------------

// AnalyticsRepo is the in-memory counter repository.
type AnalyticsRepo struct{ s *Store }

// Increment creates the counter with Count=1 or adds one to it, under the
// store lock so concurrent increments of the same key never lose updates.
func (r *AnalyticsRepo) Increment(ctx context.Context, brand domain.BrandVoice, ct domain.ContentType) (*domain.AnalyticsCounter, error) {
	defer r.s.lockWrite(ctx)()

	key := counterKey{brand: brand, ct: ct}
	c, ok := r.s.counters[key]
	if !ok {
		r.s.nextCounterID++
		c = &domain.AnalyticsCounter{
			ID:          r.s.nextCounterID,
			BrandVoice:  brand,
			ContentType: ct,
		}
		r.s.counters[key] = c
	}
	c.Count++

	out := *c
	return &out, nil
}

// List returns every counter ordered by ID.
func (r *AnalyticsRepo) List(_ context.Context) ([]domain.AnalyticsCounter, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]domain.AnalyticsCounter, 0, len(r.s.counters))
	for _, c := range r.s.counters {
		out = append(out, *c)
	}
	slices.SortFunc(out, func(a, b domain.AnalyticsCounter) int {
		return int(a.ID - b.ID)
	})
	return out, nil
}
