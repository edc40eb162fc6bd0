package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/heartmarshall/cyclecare-backend/internal/config"
)

// jobTimeout bounds a single scheduled run.
const jobTimeout = 5 * time.Minute

// Scheduler runs the daily reminder job on a cron clock.
type Scheduler struct {
	cron *cron.Cron
	svc  *Service
	log  *slog.Logger
}

// NewScheduler creates a scheduler in the configured timezone.
func NewScheduler(logger *slog.Logger, svc *Service, cfg config.ReminderConfig) *Scheduler {
	loc := cfg.Location
	if loc == nil {
		loc = time.UTC
	}
	return &Scheduler{
		cron: cron.New(cron.WithLocation(loc), cron.WithSeconds()),
		svc:  svc,
		log:  logger.With("component", "reminder_scheduler"),
	}
}

// ScheduleDaily registers the reminder job at clock (HH:MM).
func (s *Scheduler) ScheduleDaily(clock string) (cron.EntryID, error) {
	spec, err := dailySpec(clock)
	if err != nil {
		return 0, err
	}
	return s.cron.AddFunc(spec, s.run)
}

// Start begins running scheduled jobs in the background.
func (s *Scheduler) Start() {
	s.cron.Start()
}

// Stop prevents new runs and waits for a running job to finish or ctx to end.
func (s *Scheduler) Stop(ctx context.Context) {
	done := s.cron.Stop()
	select {
	case <-done.Done():
	case <-ctx.Done():
	}
}

func (s *Scheduler) run() {
	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	if _, err := s.svc.RunDaily(ctx); err != nil {
		s.log.ErrorContext(ctx, "daily reminders failed", slog.String("error", err.Error()))
	}
}

// dailySpec converts HH:MM into a seconds-enabled cron expression.
func dailySpec(clock string) (string, error) {
	hour, minute, err := config.ParseClock(clock)
	if err != nil {
		return "", fmt.Errorf("reminder schedule: %w", err)
	}
	return fmt.Sprintf("0 %d %d * * *", minute, hour), nil
}
