// Package tracking implements logging of symptoms, activities and health
// metrics, and the monthly filtered reports over them.
package tracking

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/pkg/ctxutil"
)

type symptomRepo interface {
	Create(ctx context.Context, s *domain.Symptom) (*domain.Symptom, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Symptom, error)
	List(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.Symptom, error)
	Update(ctx context.Context, s *domain.Symptom) (*domain.Symptom, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type activityRepo interface {
	Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Activity, error)
	List(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.Activity, error)
	Update(ctx context.Context, a *domain.Activity) (*domain.Activity, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type metricRepo interface {
	Create(ctx context.Context, m *domain.HealthMetric) (*domain.HealthMetric, error)
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.HealthMetric, error)
	List(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.HealthMetric, error)
	Update(ctx context.Context, m *domain.HealthMetric) (*domain.HealthMetric, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

// Service implements symptom, activity and health metric tracking.
type Service struct {
	log        *slog.Logger
	symptoms   symptomRepo
	activities activityRepo
	metrics    metricRepo
	now        func() time.Time
}

// NewService creates a new tracking service.
func NewService(logger *slog.Logger, symptoms symptomRepo, activities activityRepo, metrics metricRepo) *Service {
	return &Service{
		log:        logger.With("service", "tracking"),
		symptoms:   symptoms,
		activities: activities,
		metrics:    metrics,
		now:        time.Now,
	}
}

// today is the current calendar day in the caller's timezone.
func (s *Service) today(ctx context.Context) time.Time {
	return domain.Today(s.now(), ctxutil.LocationFromCtx(ctx))
}

func validateDate(date, today time.Time) []domain.FieldError {
	if date.IsZero() {
		return []domain.FieldError{{Field: "date", Message: "required"}}
	}
	if domain.DateOf(date).After(today) {
		return []domain.FieldError{{Field: "date", Message: "must not be in the future"}}
	}
	return nil
}
