// Package reminder generates cycle notifications on a daily schedule and
// serves the user's notification inbox.
package reminder

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/config"
	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

// ListLimit caps how many notifications a listing returns.
const ListLimit = 100

type periodScanner interface {
	LatestPerUser(ctx context.Context) ([]domain.Period, error)
}

type userRepo interface {
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error)
}

type notificationRepo interface {
	Create(ctx context.Context, n *domain.Notification) (bool, error)
	List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error)
	MarkRead(ctx context.Context, userID, id uuid.UUID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error)
	DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error)
}

// Service implements reminder generation and the notification inbox.
type Service struct {
	log           *slog.Logger
	periods       periodScanner
	users         userRepo
	notifications notificationRepo
	cfg           config.ReminderConfig
	defaultLength int
	now           func() time.Time
}

// NewService creates a new reminder service. defaultLength is the cycle
// length assumed for users who have none stored.
func NewService(
	logger *slog.Logger,
	periods periodScanner,
	users userRepo,
	notifications notificationRepo,
	cfg config.ReminderConfig,
	defaultLength int,
) *Service {
	if cfg.Location == nil {
		cfg.Location = time.UTC
	}
	return &Service{
		log:           logger.With("service", "reminder"),
		periods:       periods,
		users:         users,
		notifications: notifications,
		cfg:           cfg,
		defaultLength: defaultLength,
		now:           time.Now,
	}
}
