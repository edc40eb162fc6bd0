package tracking

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/pkg/ctxutil"
)

// CreateMetric logs a health metric for the authenticated user.
func (s *Service) CreateMetric(ctx context.Context, input CreateMetricInput) (*domain.HealthMetric, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(s.today(ctx)); err != nil {
		return nil, err
	}

	now := time.Now()
	created, err := s.metrics.Create(ctx, &domain.HealthMetric{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      domain.DateOf(input.Date),
		Type:      input.Type,
		Value:     input.Value,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("tracking.CreateMetric: %w", err)
	}

	s.log.InfoContext(ctx, "health metric logged",
		slog.String("user_id", userID.String()),
		slog.String("type", string(created.Type)))

	return created, nil
}

// GetMetric returns one of the authenticated user's health metrics.
func (s *Service) GetMetric(ctx context.Context, id uuid.UUID) (*domain.HealthMetric, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	m, err := s.metrics.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("tracking.GetMetric: %w", err)
	}
	return m, nil
}

// ListMetrics returns the authenticated user's health metrics matching f.
func (s *Service) ListMetrics(ctx context.Context, f domain.TrackingFilter) ([]domain.HealthMetric, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	list, err := s.metrics.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("tracking.ListMetrics: %w", err)
	}
	return list, nil
}

// UpdateMetric applies the present fields and revalidates the value
// against the resulting type.
func (s *Service) UpdateMetric(ctx context.Context, id uuid.UUID, input UpdateMetricInput) (*domain.HealthMetric, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	m, err := s.metrics.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("tracking.UpdateMetric: %w", err)
	}

	input.apply(m)
	merged := CreateMetricInput{Date: m.Date, Type: m.Type, Value: m.Value, Notes: m.Notes}
	if err := merged.Validate(s.today(ctx)); err != nil {
		return nil, err
	}

	updated, err := s.metrics.Update(ctx, m)
	if err != nil {
		return nil, fmt.Errorf("tracking.UpdateMetric: %w", err)
	}
	return updated, nil
}

// DeleteMetric removes one of the authenticated user's health metrics.
func (s *Service) DeleteMetric(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.metrics.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("tracking.DeleteMetric: %w", err)
	}
	return nil
}

// MetricReport lists the health metrics of one month, optionally by type.
func (s *Service) MetricReport(ctx context.Context, input ReportInput) ([]domain.HealthMetric, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Type != "" && !domain.MetricType(input.Type).IsValid() {
		return nil, domain.NewValidationError("type", "unknown metric type")
	}
	f := input.Filter()
	f.Severity, f.Mood = "", ""
	return s.ListMetrics(ctx, f)
}
