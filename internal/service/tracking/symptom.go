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

// CreateSymptom logs a symptom for the authenticated user.
func (s *Service) CreateSymptom(ctx context.Context, input CreateSymptomInput) (*domain.Symptom, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	if err := input.Validate(s.today(ctx)); err != nil {
		return nil, err
	}

	now := time.Now()
	created, err := s.symptoms.Create(ctx, &domain.Symptom{
		ID:        uuid.New(),
		UserID:    userID,
		Date:      domain.DateOf(input.Date),
		Type:      input.Type,
		Severity:  input.Severity,
		Mood:      input.Mood,
		Notes:     input.Notes,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, fmt.Errorf("tracking.CreateSymptom: %w", err)
	}

	s.log.InfoContext(ctx, "symptom logged",
		slog.String("user_id", userID.String()),
		slog.String("type", string(created.Type)))

	return created, nil
}

// GetSymptom returns one of the authenticated user's symptoms.
func (s *Service) GetSymptom(ctx context.Context, id uuid.UUID) (*domain.Symptom, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	sym, err := s.symptoms.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("tracking.GetSymptom: %w", err)
	}
	return sym, nil
}

// ListSymptoms returns the authenticated user's symptoms matching f.
func (s *Service) ListSymptoms(ctx context.Context, f domain.TrackingFilter) ([]domain.Symptom, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	list, err := s.symptoms.List(ctx, userID, f)
	if err != nil {
		return nil, fmt.Errorf("tracking.ListSymptoms: %w", err)
	}
	return list, nil
}

// UpdateSymptom applies the present fields and revalidates the result.
func (s *Service) UpdateSymptom(ctx context.Context, id uuid.UUID, input UpdateSymptomInput) (*domain.Symptom, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	sym, err := s.symptoms.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("tracking.UpdateSymptom: %w", err)
	}

	input.apply(sym)
	merged := CreateSymptomInput{Date: sym.Date, Type: sym.Type, Severity: sym.Severity, Mood: sym.Mood, Notes: sym.Notes}
	if err := merged.Validate(s.today(ctx)); err != nil {
		return nil, err
	}

	updated, err := s.symptoms.Update(ctx, sym)
	if err != nil {
		return nil, fmt.Errorf("tracking.UpdateSymptom: %w", err)
	}
	return updated, nil
}

// DeleteSymptom removes one of the authenticated user's symptoms.
func (s *Service) DeleteSymptom(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if err := s.symptoms.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("tracking.DeleteSymptom: %w", err)
	}
	return nil
}

// SymptomReport lists the symptoms of one month, optionally narrowed by
// type, severity or mood.
func (s *Service) SymptomReport(ctx context.Context, input ReportInput) ([]domain.Symptom, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}
	if input.Type != "" && !domain.SymptomType(input.Type).IsValid() {
		return nil, domain.NewValidationError("type", "unknown symptom type")
	}
	return s.ListSymptoms(ctx, input.Filter())
}
