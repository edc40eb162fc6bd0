package cycle

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/internal/service/cycle/predict"
	"github.com/heartmarshall/cyclecare-backend/pkg/ctxutil"
)

// GetPrediction averages the most recent periods, stores the average as the
// user's cycle length and returns the forecast.
// Returns ErrInsufficientData with fewer than two periods.
func (s *Service) GetPrediction(ctx context.Context) (*Prediction, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	periods, err := s.periods.ListByUser(ctx, userID, s.cfg.HistoryLimit)
	if err != nil {
		return nil, fmt.Errorf("cycle.GetPrediction list: %w", err)
	}

	p, err := predict.Cycle(periods)
	if err != nil {
		return nil, fmt.Errorf("cycle.GetPrediction: %w", err)
	}

	if err := s.users.UpdateCycleLength(ctx, userID, p.AvgCycleLength); err != nil {
		return nil, fmt.Errorf("cycle.GetPrediction write back: %w", err)
	}

	window, err := predict.FertileWindow(p.NextPeriodStartDate, p.AvgCycleLength)
	if err != nil {
		return nil, fmt.Errorf("cycle.GetPrediction window: %w", err)
	}

	s.log.InfoContext(ctx, "cycle predicted",
		slog.String("user_id", userID.String()),
		slog.Int("avg_cycle_length", p.AvgCycleLength),
		slog.String("insight", string(p.Insight)))

	return &Prediction{CyclePrediction: p, Window: window}, nil
}

// GetFertileWindow returns the fertile window of the cycle that started with
// the latest logged period, using the stored cycle length (default 28).
func (s *Service) GetFertileWindow(ctx context.Context) (*FertileWindowResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	last, cycleLength, err := s.latest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cycle.GetFertileWindow: %w", err)
	}

	window, err := predict.FertileWindow(last.StartDate, cycleLength)
	if err != nil {
		return nil, fmt.Errorf("cycle.GetFertileWindow: %w", err)
	}

	return &FertileWindowResult{
		FertileWindow:   window,
		LastPeriodStart: last.StartDate,
		CycleLength:     cycleLength,
	}, nil
}

// GetCurrentPhase classifies today (or the given day) within the current
// cycle. A nil today means the current date in the caller's timezone.
func (s *Service) GetCurrentPhase(ctx context.Context, today *time.Time) (*PhaseResult, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	day := s.today(ctx)
	if today != nil {
		day = domain.DateOf(*today)
	}

	last, cycleLength, err := s.latest(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("cycle.GetCurrentPhase: %w", err)
	}

	phase, err := predict.Phase(*last, cycleLength, day)
	if err != nil {
		return nil, fmt.Errorf("cycle.GetCurrentPhase: %w", err)
	}
	window, err := predict.FertileWindow(last.StartDate, cycleLength)
	if err != nil {
		return nil, fmt.Errorf("cycle.GetCurrentPhase: %w", err)
	}

	next := predict.NextPeriod(last.StartDate, cycleLength)
	return &PhaseResult{
		Phase:         phase,
		Today:         day,
		CycleDay:      domain.DaysBetween(last.StartDate, day) + 1,
		CycleLength:   cycleLength,
		NextPeriod:    next,
		DaysUntilNext: domain.DaysBetween(day, next),
		Window:        window,
	}, nil
}

// latest returns the newest period and the user's effective cycle length.
func (s *Service) latest(ctx context.Context, userID uuid.UUID) (*domain.Period, int, error) {
	periods, err := s.periods.ListByUser(ctx, userID, 1)
	if err != nil {
		return nil, 0, fmt.Errorf("list periods: %w", err)
	}
	if len(periods) == 0 {
		return nil, 0, fmt.Errorf("no periods logged: %w", domain.ErrInsufficientData)
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("get user: %w", err)
	}

	return &periods[0], user.EffectiveCycleLength(s.cfg.DefaultLength), nil
}
