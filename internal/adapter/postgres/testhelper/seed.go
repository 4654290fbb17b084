package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// TruncateAll empties every application table and resets identity sequences.
// Tests sharing the container call it when they need a clean slate.
func TruncateAll(t *testing.T, pool *pgxpool.Pool) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`TRUNCATE TABLE analytics, transformations, users RESTART IDENTITY`)
	if err != nil {
		t.Fatalf("testhelper: TruncateAll: %v", err)
	}
}

// SeedUser inserts a user with a unique username and a placeholder hash.
func SeedUser(t *testing.T, pool *pgxpool.Pool) domain.User {
	t.Helper()

	u := domain.User{
		Username:     "user-" + uniqueSuffix(),
		PasswordHash: "$2a$10$placeholderplaceholderplaceholderplaceholderplaceho",
		CreatedAt:    time.Now().UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO users (username, password_hash, created_at) VALUES ($1, $2, $3) RETURNING id`,
		u.Username, u.PasswordHash, u.CreatedAt,
	).Scan(&u.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedUser: %v", err)
	}

	return u
}

// SeedTransformation inserts one history row for brand/ct created at createdAt.
func SeedTransformation(t *testing.T, pool *pgxpool.Pool, brand domain.BrandVoice, ct domain.ContentType, createdAt time.Time) domain.Transformation {
	t.Helper()

	tr := domain.Transformation{
		OriginalText:    "Original " + uniqueSuffix(),
		BrandVoice:      brand,
		ContentType:     ct,
		TransformedText: "Transformed " + uniqueSuffix(),
		CreatedAt:       createdAt.UTC().Truncate(time.Microsecond),
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO transformations (original_text, brand_voice, content_type, transformed_text, created_at)
		 VALUES ($1, $2, $3, $4, $5) RETURNING id`,
		tr.OriginalText, string(tr.BrandVoice), string(tr.ContentType), tr.TransformedText, tr.CreatedAt,
	).Scan(&tr.ID)
	if err != nil {
		t.Fatalf("testhelper: SeedTransformation: %v", err)
	}

	return tr
}
