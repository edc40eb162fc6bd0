package cycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/pkg/ctxutil"
)

// CreatePeriod logs a period for the authenticated user.
// Returns ErrOverlap if it intersects an existing period.
func (s *Service) CreatePeriod(ctx context.Context, input CreatePeriodInput) (*domain.Period, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	if err := input.Validate(s.today(ctx)); err != nil {
		return nil, err
	}

	start, end := domain.DateOf(input.StartDate), domain.DateOf(input.EndDate)
	var created *domain.Period

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.ensureNoOverlap(txCtx, userID, start, end, uuid.Nil); err != nil {
			return err
		}

		now := time.Now()
		p, err := s.periods.Create(txCtx, &domain.Period{
			ID:        uuid.New(),
			UserID:    userID,
			StartDate: start,
			EndDate:   end,
			Length:    domain.PeriodLength(start, end),
			CreatedAt: now,
			UpdatedAt: now,
		})
		if err != nil {
			return fmt.Errorf("create period: %w", err)
		}
		created = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cycle.CreatePeriod: %w", err)
	}

	s.log.InfoContext(ctx, "period logged",
		slog.String("user_id", userID.String()),
		slog.String("period_id", created.ID.String()),
		slog.Int("length", created.Length))

	return created, nil
}

// ListPeriods returns the authenticated user's periods, newest first.
func (s *Service) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	periods, err := s.periods.ListByUser(ctx, userID, s.cfg.PeriodPageSize)
	if err != nil {
		return nil, fmt.Errorf("cycle.ListPeriods: %w", err)
	}
	return periods, nil
}

// GetPeriod returns one of the authenticated user's periods.
func (s *Service) GetPeriod(ctx context.Context, id uuid.UUID) (*domain.Period, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	p, err := s.periods.GetByID(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("cycle.GetPeriod: %w", err)
	}
	return p, nil
}

// UpdatePeriod applies the present dates to a period and recomputes its
// length. The period itself is excluded from the overlap check.
func (s *Service) UpdatePeriod(ctx context.Context, id uuid.UUID, input UpdatePeriodInput) (*domain.Period, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var updated *domain.Period

	err := s.tx.RunInTx(ctx, func(txCtx context.Context) error {
		current, err := s.periods.GetByID(txCtx, userID, id)
		if err != nil {
			return fmt.Errorf("get period: %w", err)
		}
		if input.IsEmpty() {
			updated = current
			return nil
		}

		start, end := input.apply(*current)
		if errs := domain.ValidatePeriodDates(start, end, s.today(ctx)); len(errs) > 0 {
			return &domain.ValidationError{Errors: errs}
		}
		if err := s.ensureNoOverlap(txCtx, userID, start, end, id); err != nil {
			return err
		}

		current.StartDate = start
		current.EndDate = end
		current.Length = domain.PeriodLength(start, end)

		p, err := s.periods.Update(txCtx, current)
		if err != nil {
			return fmt.Errorf("update period: %w", err)
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("cycle.UpdatePeriod: %w", err)
	}

	s.log.InfoContext(ctx, "period updated",
		slog.String("user_id", userID.String()),
		slog.String("period_id", id.String()))

	return updated, nil
}

// DeletePeriod removes one of the authenticated user's periods.
func (s *Service) DeletePeriod(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	if err := s.periods.Delete(ctx, userID, id); err != nil {
		return fmt.Errorf("cycle.DeletePeriod: %w", err)
	}

	s.log.InfoContext(ctx, "period deleted",
		slog.String("user_id", userID.String()),
		slog.String("period_id", id.String()))

	return nil
}

func (s *Service) ensureNoOverlap(ctx context.Context, userID uuid.UUID, start, end time.Time, excludeID uuid.UUID) error {
	overlapping, err := s.periods.FindOverlapping(ctx, userID, start, end, excludeID)
	if err != nil {
		return fmt.Errorf("find overlapping: %w", err)
	}
	if len(overlapping) > 0 {
		return fmt.Errorf("period %s..%s overlaps %s: %w",
			domain.FormatDate(start), domain.FormatDate(end), overlapping[0].ID, domain.ErrOverlap)
	}
	return nil
}
