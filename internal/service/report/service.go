// Package report builds the per-user health summary.
package report

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/cyclecare-backend/internal/config"
	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/internal/service/cycle/predict"
	"github.com/heartmarshall/cyclecare-backend/pkg/ctxutil"
)

type periodReader interface {
	ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Period, error)
}

type symptomReader interface {
	List(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.Symptom, error)
}

type activityReader interface {
	List(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.Activity, error)
}

type userRepo interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Service builds health summaries.
type Service struct {
	log        *slog.Logger
	periods    periodReader
	symptoms   symptomReader
	activities activityReader
	users      userRepo
	cfg        config.CycleConfig
	now        func() time.Time
}

// NewService creates a new report service.
func NewService(
	logger *slog.Logger,
	periods periodReader,
	symptoms symptomReader,
	activities activityReader,
	users userRepo,
	cfg config.CycleConfig,
) *Service {
	return &Service{
		log:        logger.With("service", "report"),
		periods:    periods,
		symptoms:   symptoms,
		activities: activities,
		users:      users,
		cfg:        cfg,
		now:        time.Now,
	}
}

// Summary is the health report of one user.
type Summary struct {
	LastPeriodStart time.Time
	// AvgCycleLength is nil when fewer than two periods are logged.
	AvgCycleLength      *int
	NextPredictedPeriod time.Time
	SymptomTrends       []string
	ActivityTrends      []string
	Insight             domain.CycleInsight
	Phase               domain.Phase
	Window              domain.FertileWindow
}

// Summary reports cycle statistics, symptom and activity trends and the
// current phase. Returns ErrInsufficientData when no period is logged.
func (s *Service) Summary(ctx context.Context) (*Summary, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	var (
		periods    []domain.Period
		symptoms   []domain.Symptom
		activities []domain.Activity
		user       *domain.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		periods, err = s.periods.ListByUser(gctx, userID, s.cfg.HistoryLimit)
		return err
	})
	g.Go(func() (err error) {
		symptoms, err = s.symptoms.List(gctx, userID, domain.TrackingFilter{})
		return err
	})
	g.Go(func() (err error) {
		activities, err = s.activities.List(gctx, userID, domain.TrackingFilter{})
		return err
	})
	g.Go(func() (err error) {
		user, err = s.users.GetByID(gctx, userID)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("report.Summary: %w", err)
	}

	if len(periods) == 0 {
		return nil, fmt.Errorf("report.Summary: no period data: %w", domain.ErrInsufficientData)
	}

	last := predict.Recent(periods)[0]
	summary := &Summary{
		LastPeriodStart: last.StartDate,
		SymptomTrends:   predict.FormatTrends(predict.Trends(symptomLabels(symptoms))),
		ActivityTrends:  predict.FormatTrends(predict.Trends(activityLabels(activities))),
	}

	cycleLength := s.cfg.DefaultLength
	p, err := predict.Cycle(periods)
	switch {
	case err == nil:
		summary.AvgCycleLength = &p.AvgCycleLength
		summary.NextPredictedPeriod = p.NextPeriodStartDate
		summary.Insight = p.Insight
		cycleLength = p.AvgCycleLength
	case errors.Is(err, domain.ErrInsufficientData):
		cycleLength = user.EffectiveCycleLength(s.cfg.DefaultLength)
		summary.NextPredictedPeriod = predict.NextPeriod(last.StartDate, cycleLength)
		summary.Insight = predict.Insight(cycleLength)
	default:
		return nil, fmt.Errorf("report.Summary: %w", err)
	}

	today := domain.Today(s.now(), ctxutil.LocationFromCtx(ctx))
	if summary.Phase, err = predict.Phase(last, cycleLength, today); err != nil {
		return nil, fmt.Errorf("report.Summary phase: %w", err)
	}
	if summary.Window, err = predict.FertileWindow(last.StartDate, cycleLength); err != nil {
		return nil, fmt.Errorf("report.Summary window: %w", err)
	}

	s.log.InfoContext(ctx, "report generated",
		slog.String("user_id", userID.String()),
		slog.Int("periods", len(periods)),
		slog.Int("symptoms", len(symptoms)))

	return summary, nil
}

func symptomLabels(list []domain.Symptom) []string {
	labels := make([]string, len(list))
	for i, s := range list {
		labels[i] = string(s.Type)
	}
	return labels
}

func activityLabels(list []domain.Activity) []string {
	labels := make([]string, len(list))
	for i, a := range list {
		labels[i] = string(a.Type)
	}
	return labels
}
