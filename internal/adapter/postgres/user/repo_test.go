package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmock "github.com/pashagolub/pgxmock/v2"

	"github.com/heartmarshall/brandvoice-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

var userColumns = []string{"id", "username", "password_hash", "created_at"}

func TestRepo_Create(t *testing.T) {
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		setup   func(mock pgxmock.PgxPoolIface)
		wantErr error
	}{
		{
			name: "success",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users \(username,password_hash,created_at\)`).
					WithArgs("alice", "hash", now).
					WillReturnRows(pgxmock.NewRows(userColumns).AddRow(int64(1), "alice", "hash", now))
			},
		},
		{
			name: "duplicate username",
			setup: func(mock pgxmock.PgxPoolIface) {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice", "hash", now).
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			wantErr: domain.ErrAlreadyExists,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := testhelper.NewMockPool(t)
			tt.setup(mock)
			repo := New(mock)

			got, err := repo.Create(context.Background(), &domain.User{
				Username:     "alice",
				PasswordHash: "hash",
				CreatedAt:    now,
			})

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Create() error = %v, want %v", err, tt.wantErr)
				}
			} else {
				if err != nil {
					t.Fatalf("Create() unexpected error: %v", err)
				}
				if got.ID != 1 || got.Username != "alice" || !got.CreatedAt.Equal(now) {
					t.Errorf("Create() = %+v", got)
				}
			}

			testhelper.ExpectationsWereMet(t, mock)
		})
	}
}

func TestRepo_GetByID(t *testing.T) {
	now := time.Now().UTC()

	t.Run("found", func(t *testing.T) {
		mock := testhelper.NewMockPool(t)
		mock.ExpectQuery(`SELECT id, username, password_hash, created_at FROM users WHERE id = \$1 LIMIT 1`).
			WithArgs(int64(7)).
			WillReturnRows(pgxmock.NewRows(userColumns).AddRow(int64(7), "bob", "h", now))

		got, err := New(mock).GetByID(context.Background(), 7)
		if err != nil {
			t.Fatalf("GetByID() unexpected error: %v", err)
		}
		if got.ID != 7 || got.Username != "bob" {
			t.Errorf("GetByID() = %+v", got)
		}
		testhelper.ExpectationsWereMet(t, mock)
	})

	t.Run("not found", func(t *testing.T) {
		mock := testhelper.NewMockPool(t)
		mock.ExpectQuery(`SELECT`).
			WithArgs(int64(7)).
			WillReturnError(pgx.ErrNoRows)

		_, err := New(mock).GetByID(context.Background(), 7)
		if !errors.Is(err, domain.ErrNotFound) {
			t.Fatalf("GetByID() error = %v, want ErrNotFound", err)
		}
		testhelper.ExpectationsWereMet(t, mock)
	})
}

func TestRepo_GetByUsername_CaseInsensitive(t *testing.T) {
	mock := testhelper.NewMockPool(t)
	mock.ExpectQuery(`WHERE lower\(username\) = lower\(\$1\)`).
		WithArgs("ALICE").
		WillReturnRows(pgxmock.NewRows(userColumns).AddRow(int64(3), "alice", "h", time.Now()))

	got, err := New(mock).GetByUsername(context.Background(), "ALICE")
	if err != nil {
		t.Fatalf("GetByUsername() unexpected error: %v", err)
	}
	if got.Username != "alice" {
		t.Errorf("GetByUsername().Username = %q, want alice", got.Username)
	}
	testhelper.ExpectationsWereMet(t, mock)
}

func TestRepo_Integration(t *testing.T) {
	pool := testhelper.SetupTestDB(t)
	repo := New(pool)
	ctx := context.Background()

	seeded := testhelper.SeedUser(t, pool)

	got, err := repo.GetByUsername(ctx, seeded.Username)
	if err != nil {
		t.Fatalf("GetByUsername() unexpected error: %v", err)
	}
	if got.ID != seeded.ID {
		t.Errorf("GetByUsername().ID = %d, want %d", got.ID, seeded.ID)
	}

	_, err = repo.Create(ctx, &domain.User{Username: seeded.Username, PasswordHash: "x"})
	if !errors.Is(err, domain.ErrAlreadyExists) {
		t.Fatalf("Create(duplicate) error = %v, want ErrAlreadyExists", err)
	}
}
