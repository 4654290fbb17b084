package user

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/brandvoice-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Service implements user record operations.
type Service struct {
	log      *slog.Logger
	users    userRepo
	hashCost int
}

// NewService creates a new user service instance. hashCost is the bcrypt
// cost used for new passwords.
func NewService(logger *slog.Logger, users userRepo, hashCost int) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		users:    users,
		hashCost: hashCost,
	}
}
