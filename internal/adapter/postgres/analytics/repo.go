// Package analytics implements usage counters using PostgreSQL.
package analytics

import (
	"context"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/brandvoice-backend/internal/adapter/postgres"
	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

const table = "analytics"

type row struct {
	ID          int64  `db:"id"`
	BrandVoice  string `db:"brand_voice"`
	ContentType string `db:"content_type"`
	Count       int64  `db:"count"`
}

func (r row) toDomain() domain.AnalyticsCounter {
	return domain.AnalyticsCounter{
		ID:          r.ID,
		BrandVoice:  domain.BrandVoice(r.BrandVoice),
		ContentType: domain.ContentType(r.ContentType),
		Count:       r.Count,
	}
}

// Repo provides counter persistence backed by PostgreSQL.
type Repo struct {
	db postgres.DB
}

// New creates a new analytics repository.
func New(db postgres.DB) *Repo {
	return &Repo{db: db}
}

// Increment creates the counter with count=1 or adds one to it in a single
// upsert, so concurrent increments of the same key never lose updates.
func (r *Repo) Increment(ctx context.Context, brand domain.BrandVoice, ct domain.ContentType) (*domain.AnalyticsCounter, error) {
	key := fmt.Sprintf("%s/%s", brand, ct)

	query, args, err := postgres.Builder().
		Insert(table).
		Columns("brand_voice", "content_type", "count").
		Values(string(brand), string(ct), 1).
		Suffix("ON CONFLICT (brand_voice, content_type) DO UPDATE SET count = analytics.count + 1").
		Suffix("RETURNING id, brand_voice, content_type, count").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "analytics_counter", key)
	}

	var out row
	if err := pgxscan.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &out, query, args...); err != nil {
		return nil, postgres.MapError(err, "analytics_counter", key)
	}

	result := out.toDomain()
	return &result, nil
}

// List returns every counter ordered by ID.
func (r *Repo) List(ctx context.Context) ([]domain.AnalyticsCounter, error) {
	query, args, err := postgres.Builder().
		Select("id", "brand_voice", "content_type", "count").
		From(table).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "analytics_counters", "all")
	}

	var rows []row
	if err := pgxscan.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, "analytics_counters", "all")
	}

	out := make([]domain.AnalyticsCounter, len(rows))
	for i, rw := range rows {
		out[i] = rw.toDomain()
	}
	return out, nil
}
