package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/sqlscan"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// Timestamps are stored as RFC 3339 text with nanoseconds so they sort
// lexically in chronological order.
const timeLayout = "2006-01-02T15:04:05.000000000Z07:00"

func formatTime(t time.Time) string {
	if t.IsZero() {
		t = time.Now()
	}
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return t.UTC(), nil
}

// ---------------------------------------------------------------------------
// Users
// ---------------------------------------------------------------------------

type userRow struct {
	ID           int64  `db:"id"`
	Username     string `db:"username"`
	PasswordHash string `db:"password_hash"`
	CreatedAt    string `db:"created_at"`
}

func (r userRow) toDomain() (*domain.User, error) {
	createdAt, err := parseTime(r.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &domain.User{ID: r.ID, Username: r.Username, PasswordHash: r.PasswordHash, CreatedAt: createdAt}, nil
}

// UserRepo stores users in SQLite. Usernames are unique without regard to case
// (COLLATE NOCASE).
type UserRepo struct{ db *sql.DB }

// Create inserts a user; a taken username maps to domain.ErrAlreadyExists.
func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	query, args, err := builder().
		Insert("users").
		Columns("username", "password_hash", "created_at").
		Values(u.Username, u.PasswordHash, formatTime(u.CreatedAt)).
		Suffix("RETURNING id, username, password_hash, created_at").
		ToSql()
	if err != nil {
		return nil, mapError(err, "user", u.Username)
	}

	var row userRow
	if err := sqlscan.Get(ctx, querierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapError(err, "user", u.Username)
	}
	return row.toDomain()
}

// GetByID returns a user or domain.ErrNotFound.
func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"id": id}, id)
}

// GetByUsername returns a user or domain.ErrNotFound.
func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return r.getOne(ctx, sq.Eq{"username": username}, username)
}

func (r *UserRepo) getOne(ctx context.Context, where sq.Sqlizer, key any) (*domain.User, error) {
	query, args, err := builder().
		Select("id", "username", "password_hash", "created_at").
		From("users").
		Where(where).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, mapError(err, "user", key)
	}

	var row userRow
	if err := sqlscan.Get(ctx, querierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapError(err, "user", key)
	}
	return row.toDomain()
}

// ---------------------------------------------------------------------------
// Transformations
// ---------------------------------------------------------------------------

type transformationRow struct {
	ID              int64  `db:"id"`
	OriginalText    string `db:"original_text"`
	BrandVoice      string `db:"brand_voice"`
	ContentType     string `db:"content_type"`
	TransformedText string `db:"transformed_text"`
	CreatedAt       string `db:"created_at"`
}

func (r transformationRow) toDomain() (domain.Transformation, error) {
	createdAt, err := parseTime(r.CreatedAt)
	if err != nil {
		return domain.Transformation{}, err
	}
	return domain.Transformation{
		ID:              r.ID,
		OriginalText:    r.OriginalText,
		BrandVoice:      domain.BrandVoice(r.BrandVoice),
		ContentType:     domain.ContentType(r.ContentType),
		TransformedText: r.TransformedText,
		CreatedAt:       createdAt,
	}, nil
}

// TransformationRepo stores the history in SQLite.
type TransformationRepo struct{ db *sql.DB }

// Create appends a history row and returns it with its assigned ID.
func (r *TransformationRepo) Create(ctx context.Context, t *domain.Transformation) (*domain.Transformation, error) {
	query, args, err := builder().
		Insert("transformations").
		Columns("original_text", "brand_voice", "content_type", "transformed_text", "created_at").
		Values(t.OriginalText, string(t.BrandVoice), string(t.ContentType), t.TransformedText, formatTime(t.CreatedAt)).
		Suffix("RETURNING id, original_text, brand_voice, content_type, transformed_text, created_at").
		ToSql()
	if err != nil {
		return nil, mapError(err, "transformation", t.BrandVoice)
	}

	var row transformationRow
	if err := sqlscan.Get(ctx, querierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapError(err, "transformation", t.BrandVoice)
	}

	out, err := row.toDomain()
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// List returns at most limit rows, newest first. limit <= 0 returns all rows.
func (r *TransformationRepo) List(ctx context.Context, limit int) ([]domain.Transformation, error) {
	b := builder().
		Select("id", "original_text", "brand_voice", "content_type", "transformed_text", "created_at").
		From("transformations").
		OrderBy("created_at DESC", "id DESC")
	if limit > 0 {
		b = b.Limit(uint64(limit))
	}

	query, args, err := b.ToSql()
	if err != nil {
		return nil, mapError(err, "transformations", limit)
	}

	var rows []transformationRow
	if err := sqlscan.Select(ctx, querierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, mapError(err, "transformations", limit)
	}

	out := make([]domain.Transformation, 0, len(rows))
	for _, row := range rows {
		t, err := row.toDomain()
		if err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, nil
}

// ---------------------------------------------------------------------------
// Analytics
// ---------------------------------------------------------------------------

type counterRow struct {
	ID          int64  `db:"id"`
	BrandVoice  string `db:"brand_voice"`
	ContentType string `db:"content_type"`
	Count       int64  `db:"count"`
}

func (r counterRow) toDomain() domain.AnalyticsCounter {
	return domain.AnalyticsCounter{
		ID:          r.ID,
		BrandVoice:  domain.BrandVoice(r.BrandVoice),
		ContentType: domain.ContentType(r.ContentType),
		Count:       r.Count,
	}
}

// AnalyticsRepo stores usage counters in SQLite.
type AnalyticsRepo struct{ db *sql.DB }

// Increment upserts the counter for (brand, ct) in one statement.
func (r *AnalyticsRepo) Increment(ctx context.Context, brand domain.BrandVoice, ct domain.ContentType) (*domain.AnalyticsCounter, error) {
	key := fmt.Sprintf("%s/%s", brand, ct)

	query, args, err := builder().
		Insert("analytics").
		Columns("brand_voice", "content_type", "count").
		Values(string(brand), string(ct), 1).
		Suffix("ON CONFLICT (brand_voice, content_type) DO UPDATE SET count = analytics.count + 1").
		Suffix("RETURNING id, brand_voice, content_type, count").
		ToSql()
	if err != nil {
		return nil, mapError(err, "analytics_counter", key)
	}

	var row counterRow
	if err := sqlscan.Get(ctx, querierFromCtx(ctx, r.db), &row, query, args...); err != nil {
		return nil, mapError(err, "analytics_counter", key)
	}

	out := row.toDomain()
	return &out, nil
}

// List returns every counter ordered by ID.
func (r *AnalyticsRepo) List(ctx context.Context) ([]domain.AnalyticsCounter, error) {
	query, args, err := builder().
		Select("id", "brand_voice", "content_type", "count").
		From("analytics").
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, mapError(err, "analytics_counters", "all")
	}

	var rows []counterRow
	if err := sqlscan.Select(ctx, querierFromCtx(ctx, r.db), &rows, query, args...); err != nil {
		return nil, mapError(err, "analytics_counters", "all")
	}

	out := make([]domain.AnalyticsCounter, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}
