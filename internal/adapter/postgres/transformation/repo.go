// Package transformation implements the append-only transformation history
// using PostgreSQL.
package transformation

import (
	"context"
	"time"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/brandvoice-backend/internal/adapter/postgres"
	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

const table = "transformations"

var columns = []string{"id", "original_text", "brand_voice", "content_type", "transformed_text", "created_at"}

type row struct {
	ID              int64     `db:"id"`
	OriginalText    string    `db:"original_text"`
	BrandVoice      string    `db:"brand_voice"`
	ContentType     string    `db:"content_type"`
	TransformedText string    `db:"transformed_text"`
	CreatedAt       time.Time `db:"created_at"`
}

func (r row) toDomain() domain.Transformation {
	return domain.Transformation{
		ID:              r.ID,
		OriginalText:    r.OriginalText,
		BrandVoice:      domain.BrandVoice(r.BrandVoice),
		ContentType:     domain.ContentType(r.ContentType),
		TransformedText: r.TransformedText,
		CreatedAt:       r.CreatedAt.UTC(),
	}
}

// Repo provides transformation history persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new transformation repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Create appends a history row and returns it with its assigned ID.
func (r *Repo) Create(ctx context.Context, t *domain.Transformation) (*domain.Transformation, error) {
	createdAt := t.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("original_text", "brand_voice", "content_type", "transformed_text", "created_at").
		Values(t.OriginalText, string(t.BrandVoice), string(t.ContentType), t.TransformedText, createdAt).
		Suffix("RETURNING id, original_text, brand_voice, content_type, transformed_text, created_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "transformation", t.BrandVoice)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "transformation", t.BrandVoice)
	}

	result := out.toDomain()
	return &result, nil
}

// List returns at most limit rows, newest first. limit <= 0 returns all rows.
func (r *Repo) List(ctx context.Context, limit int) ([]domain.Transformation, error) {
	builder := postgres.Builder().
		Select(columns...).
		From(table).
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		builder = builder.Limit(uint64(limit))
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "transformations", limit)
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "transformations", limit)
	}

	out := make([]domain.Transformation, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
