// Package storagetest is a conformance suite every storage.Backend variant
// runs from its own tests.
package storagetest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
	"github.com/heartmarshall/brandvoice-backend/internal/storage"
)

// Factory returns a fresh, empty backend. Cleanup is registered on t.
type Factory func(t *testing.T) *storage.Backend

// Run executes every conformance check against backends produced by newBackend.
func Run(t *testing.T, newBackend Factory) {
	t.Run("Users", func(t *testing.T) { testUsers(t, newBackend(t)) })
	t.Run("Transformations", func(t *testing.T) { testTransformations(t, newBackend(t)) })
	t.Run("AnalyticsIncrement", func(t *testing.T) { RunAnalytics(t, newBackend(t).Analytics) })
	t.Run("TxCommit", func(t *testing.T) { testTxCommit(t, newBackend(t)) })
	t.Run("TxRollback", func(t *testing.T) { testTxRollback(t, newBackend(t)) })
	t.Run("Ping", func(t *testing.T) {
		require.NoError(t, newBackend(t).Health.Ping(context.Background()))
	})
}

func testUsers(t *testing.T, b *storage.Backend) {
	ctx := context.Background()

	created, err := b.Users.Create(ctx, &domain.User{Username: "alice", PasswordHash: "hash"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "alice", created.Username)
	assert.False(t, created.CreatedAt.IsZero())

	byID, err := b.Users.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Username, byID.Username)
	assert.Equal(t, "hash", byID.PasswordHash)

	byName, err := b.Users.GetByUsername(ctx, "ALICE")
	require.NoError(t, err)
	assert.Equal(t, created.ID, byName.ID)

	_, err = b.Users.Create(ctx, &domain.User{Username: "Alice", PasswordHash: "other"})
	assert.ErrorIs(t, err, domain.ErrAlreadyExists)

	_, err = b.Users.GetByID(ctx, created.ID+1000)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = b.Users.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func testTransformations(t *testing.T, b *storage.Backend) {
	ctx := context.Background()

	list, err := b.Transformations.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, list)

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	ids := make(map[int64]bool)
	for i := range 5 {
		tr, err := b.Transformations.Create(ctx, &domain.Transformation{
			OriginalText:    fmt.Sprintf("original %d", i),
			BrandVoice:      domain.AllBrandVoices()[i%4],
			ContentType:     domain.ContentTypeEmail,
			TransformedText: fmt.Sprintf("transformed %d", i),
			CreatedAt:       base.Add(time.Duration(i) * time.Minute),
		})
		require.NoError(t, err)
		assert.False(t, ids[tr.ID], "ids must be unique")
		ids[tr.ID] = true
	}

	list, err = b.Transformations.List(ctx, 3)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "original 4", list[0].OriginalText)
	assert.Equal(t, "original 3", list[1].OriginalText)
	assert.Equal(t, "original 2", list[2].OriginalText)
	assert.True(t, list[0].CreatedAt.Equal(base.Add(4*time.Minute)), "created_at round-trips: %v", list[0].CreatedAt)
	assert.Equal(t, domain.BrandVoiceNike, list[0].BrandVoice)

	all, err := b.Transformations.List(ctx, 100)
	require.NoError(t, err)
	assert.Len(t, all, 5)
}

// RunAnalytics checks counter semantics on a bare AnalyticsRepository. The
// redis variant, which only provides analytics, calls it directly.
func RunAnalytics(t *testing.T, repo storage.AnalyticsRepository) {
	ctx := context.Background()

	first, err := repo.Increment(ctx, domain.BrandVoiceNike, domain.ContentTypeEmail)
	require.NoError(t, err)
	assert.Equal(t, int64(1), first.Count)
	assert.NotZero(t, first.ID)

	second, err := repo.Increment(ctx, domain.BrandVoiceNike, domain.ContentTypeEmail)
	require.NoError(t, err)
	assert.Equal(t, int64(2), second.Count)
	assert.Equal(t, first.ID, second.ID, "same key keeps its id")

	other, err := repo.Increment(ctx, domain.BrandVoiceApple, domain.ContentTypeEmail)
	require.NoError(t, err)
	assert.Equal(t, int64(1), other.Count)
	assert.NotEqual(t, first.ID, other.ID)

	const workers = 40
	var wg sync.WaitGroup
	errs := make(chan error, workers)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Increment(ctx, domain.BrandVoiceSouthwest, domain.ContentTypeBlogPost); err != nil {
				errs <- err
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	counters, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, counters, 3, "one counter per (brand, content type)")

	got := make(map[string]int64)
	for _, c := range counters {
		got[string(c.BrandVoice)+"/"+string(c.ContentType)] = c.Count
	}
	assert.Equal(t, int64(2), got["nike/email"])
	assert.Equal(t, int64(1), got["apple/email"])
	assert.Equal(t, int64(workers), got["southwest/blog_post"])
}

func testTxCommit(t *testing.T, b *storage.Backend) {
	ctx := context.Background()

	err := b.Tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := b.Transformations.Create(ctx, &domain.Transformation{
			OriginalText: "tx", BrandVoice: domain.BrandVoiceWendys,
			ContentType: domain.ContentTypeProduct, TransformedText: "TX",
		}); err != nil {
			return err
		}
		_, err := b.Analytics.Increment(ctx, domain.BrandVoiceWendys, domain.ContentTypeProduct)
		return err
	})
	require.NoError(t, err)

	list, err := b.Transformations.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)

	counters, err := b.Analytics.List(ctx)
	require.NoError(t, err)
	require.Len(t, counters, 1)
	assert.Equal(t, int64(1), counters[0].Count)

	sentinel := errors.New("abort")
	err = b.Tx.RunInTx(ctx, func(context.Context) error { return sentinel })
	assert.ErrorIs(t, err, sentinel)
}

// testTxRollback checks that a history row written before a failed counter
// update does not survive the unit of work.
func testTxRollback(t *testing.T, b *storage.Backend) {
	ctx := context.Background()

	_, err := b.Analytics.Increment(ctx, domain.BrandVoiceNike, domain.ContentTypeEmail)
	require.NoError(t, err)

	incrementFailed := errors.New("increment failed")
	err = b.Tx.RunInTx(ctx, func(ctx context.Context) error {
		if _, err := b.Transformations.Create(ctx, &domain.Transformation{
			OriginalText: "lost", BrandVoice: domain.BrandVoiceNike,
			ContentType: domain.ContentTypeEmail, TransformedText: "LOST",
		}); err != nil {
			return err
		}
		if _, err := b.Analytics.Increment(ctx, domain.BrandVoiceNike, domain.ContentTypeEmail); err != nil {
			return err
		}
		return incrementFailed
	})
	require.ErrorIs(t, err, incrementFailed)

	list, err := b.Transformations.List(ctx, 10)
	require.NoError(t, err)
	assert.Empty(t, list, "history row must be rolled back")

	counters, err := b.Analytics.List(ctx)
	require.NoError(t, err)
	require.Len(t, counters, 1)
	assert.Equal(t, int64(1), counters[0].Count, "counter must keep its pre-transaction value")

	created, err := b.Transformations.Create(ctx, &domain.Transformation{
		OriginalText: "kept", BrandVoice: domain.BrandVoiceApple,
		ContentType: domain.ContentTypeBlogPost, TransformedText: "KEPT",
	})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
}
