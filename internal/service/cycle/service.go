// Package cycle implements period logging and the cycle predictions
// derived from it.
package cycle

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/config"
	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/pkg/ctxutil"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type periodRepo interface {
	Create(ctx context.Context, p *domain.Period) (*domain.Period, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Period, error)
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Period, error)
	FindOverlapping(ctx context.Context, userID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]domain.Period, error)
	Update(ctx context.Context, p *domain.Period) (*domain.Period, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	UpdateCycleLength(ctx context.Context, id uuid.UUID, length int) error
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements period CRUD and cycle predictions.
type Service struct {
	log     *slog.Logger
	periods periodRepo
	users   userRepo
	tx      txManager
	cfg     config.CycleConfig
	now     func() time.Time
}

// NewService creates a new cycle service.
func NewService(
	logger *slog.Logger,
	periods periodRepo,
	users userRepo,
	tx txManager,
	cfg config.CycleConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "cycle"),
		periods: periods,
		users:   users,
		tx:      tx,
		cfg:     cfg,
		now:     time.Now,
	}
}

// today is the current calendar day in the caller's timezone.
func (s *Service) today(ctx context.Context) time.Time {
	return domain.Today(s.now(), ctxutil.LocationFromCtx(ctx))
}
