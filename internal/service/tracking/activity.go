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

// CreateActivity logs an activity for the authenticated user.
func (s *Service) CreateActivity(ctx context.Context, input CreateActivityInput) (*domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(s.today(ctx)); err != nil {
		return nil, err
	}

	now := time.Now()
	created, err := s.activities.Create(ctx, &domain.Activity{
		ID:              uuid.New(),
		UserID:          userID,
		Date:            domain.DateOf(input.Date),
		Type:            input.Type,
		DurationMinutes: input.DurationMinutes,
		ProtectionUsed:  input.ProtectionUsed,
		Notes:           input.Notes,
		CreatedAt:       now,
		UpdatedAt:       now,
	})
	if err != nil {
		return nil, fmt.Errorf("tracking.CreateActivity: %w", err)
	}

	s.log.InfoContext(ctx, "activity logged",
		slog.String("user_id", userID.String()),
		slog.String("type", string(created.Type)))

	return created, nil
}

// GetActivity returns one of the authenticated user's activities.
func (s *Service) GetActivity(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	a, err := s.activities.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("tracking.GetActivity: %w", err)
	}
	return a, nil
}

// ListActivities returns the authenticated user's activities matching f.
func (s *Service) ListActivities(ctx context.Context, f domain.TrackingFilter) ([]domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	list, err := s.activities.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("tracking.ListActivities: %w", err)
	}
	return list, nil
}

// UpdateActivity applies the present fields and revalidates the result.
// Switching away from sexual_activity clears ProtectionUsed.
func (s *Service) UpdateActivity(ctx context.Context, id uuid.UUID, input UpdateActivityInput) (*domain.Activity, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	a, err := s.activities.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("tracking.UpdateActivity: %w", err)
	}

	input.apply(a)
	merged := CreateActivityInput{
		Date: a.Date, Type: a.Type, DurationMinutes: a.DurationMinutes,
		ProtectionUsed: a.ProtectionUsed, Notes: a.Notes,
	}
	if err := merged.Validate(s.today(ctx)); err != nil {
		return nil, err
	}

	updated, err := s.activities.Update(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("tracking.UpdateActivity: %w", err)
	}
	return updated, nil
}

// DeleteActivity removes one of the authenticated user's activities.
func (s *Service) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.activities.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("tracking.DeleteActivity: %w", err)
	}
	return nil
}

// ActivityReport lists the activities of one month, optionally by type.
func (s *Service) ActivityReport(ctx context.Context, input ReportInput) ([]domain.Activity, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Type != "" && !domain.ActivityType(input.Type).IsValid() {
		return nil, domain.NewValidationError("type", "unknown activity type")
	}
	f := input.Filter()
	f.Severity, f.Mood = "", ""
	return s.ListActivities(ctx, f)
}
