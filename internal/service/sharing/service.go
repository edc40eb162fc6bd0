// Package sharing implements partner data sharing: one grant per sharer,
// addressed to a partner account and redeemable through an opaque token.
package sharing

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/config"
	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

type grantRepo interface {
	Create(ctx context.Context, g *domain.SharingGrant) (*domain.SharingGrant, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.SharingGrant, error)
	GetActiveByTokenHash(ctx context.Context, hash string) (*domain.SharingGrant, error)
	UpdateOptions(ctx context.Context, id uuid.UUID, opts domain.SharedOptions) (*domain.SharingGrant, error)
	Delete(ctx context.Context, id uuid.UUID) error
	ListBySharer(ctx context.Context, sharerID uuid.UUID) ([]domain.GrantView, error)
	ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]domain.GrantView, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

type periodReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Period, error)
}

type symptomReader interface {
	List(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.Symptom, error)
}

type activityReader interface {
	List(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.Activity, error)
}

type metricReader interface {
	List(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.HealthMetric, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Readers groups the repositories a shared payload is assembled from.
type Readers struct {
	Periods    periodReader
	Symptoms   symptomReader
	Activities activityReader
	Metrics    metricReader
}

// Service implements the sharing grant lifecycle.
type Service struct {
	log     *slog.Logger
	grants  grantRepo
	users   userRepo
	readers Readers
	tx      txManager
	cfg     config.SharingConfig
}

// NewService creates a new sharing service.
func NewService(
	logger *slog.Logger,
	grants grantRepo,
	users userRepo,
	readers Readers,
	tx txManager,
	cfg config.SharingConfig,
) *Service {
	return &Service{
		log:     logger.With("service", "sharing"),
		grants:  grants,
		users:   users,
		readers: readers,
		tx:      tx,
		cfg:     cfg,
	}
}
