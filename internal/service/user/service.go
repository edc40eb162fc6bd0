package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/config"
	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

// userRepo defines the user repository interface needed by user service.
type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	Update(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error)
}

// Service implements user profile operations.
type Service struct {
	log   *slog.Logger
	users userRepo
	cfg   config.CycleConfig
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, users userRepo, cfg config.CycleConfig) *Service {
	return &Service{
		log:   logger.With("service", "user"),
		users: users,
		cfg:   cfg,
	}
}
