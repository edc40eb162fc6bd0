package reminder

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/internal/service/cycle/predict"
)

// RunDaily scans every user with period history and creates the reminders
// due today. It returns how many notifications were written; reminders
// already sent for the same user, type and day are skipped.
func (s *Service) RunDaily(ctx context.Context) (int, error) {
	return s.RunFor(ctx, domain.Today(s.now(), s.cfg.Location))
}

// RunFor generates the reminders due on the calendar day today. It is used
// by RunDaily and to backfill a missed day.
func (s *Service) RunFor(ctx context.Context, today time.Time) (int, error) {
	today = domain.DateOf(today)

	latest, err := s.periods.LatestPerUser(ctx)
	if err != nil {
		return 0, fmt.Errorf("reminder.RunDaily periods: %w", err)
	}
	if len(latest) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, len(latest))
	for i, p := range latest {
		ids[i] = p.UserID
	}
	users, err := s.users.GetByIDs(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("reminder.RunDaily users: %w", err)
	}
	lengths := make(map[uuid.UUID]int, len(users))
	for _, u := range users {
		lengths[u.ID] = u.EffectiveCycleLength(s.defaultLength)
	}

	created := 0
	for _, p := range latest {
		cycleLength, ok := lengths[p.UserID]
		if !ok {
			continue
		}
		for _, n := range s.due(p, cycleLength, today) {
			written, err := s.notifications.Create(ctx, &n)
			if err != nil {
				return created, fmt.Errorf("reminder.RunDaily create: %w", err)
			}
			if written {
				created++
			}
		}
	}

	s.log.InfoContext(ctx, "daily reminders generated",
		slog.String("date", domain.FormatDate(today)),
		slog.Int("users", len(latest)),
		slog.Int("created", created))

	return created, nil
}

// due returns the notifications for one user on today. When no period has
// been logged for a while, the cycle is projected forward from the latest one.
func (s *Service) due(last domain.Period, cycleLength int, today time.Time) []domain.Notification {
	if cycleLength <= 0 {
		return nil
	}
	start := cycleStart(last.StartDate, cycleLength, today)

	window, err := predict.FertileWindow(start, cycleLength)
	if err != nil {
		return nil
	}
	next := predict.NextPeriod(start, cycleLength)
	// A projected start falling on today is the period being reminded about.
	if today.Equal(start) && start.After(domain.DateOf(last.StartDate)) {
		next = start
	}

	var out []domain.Notification
	add := func(t domain.NotificationType, msg string) {
		out = append(out, domain.Notification{
			ID:      uuid.New(),
			UserID:  last.UserID,
			Type:    t,
			Message: msg,
			ForDate: today,
			SentAt:  s.now(),
		})
	}

	if domain.DaysBetween(today, next) == s.cfg.LeadDays {
		add(domain.NotificationPeriodReminder, periodMessage(s.cfg.LeadDays, next))
	}
	if today.Equal(window.FertileStart) {
		add(domain.NotificationFertileWindow, fmt.Sprintf(
			"Your fertile window starts today and lasts until %s.", domain.FormatDate(window.FertileEnd)))
	}
	// Ovulation shares the fertile_window type and never falls on FertileStart.
	if today.Equal(window.OvulationDate) {
		add(domain.NotificationFertileWindow, "Today is your estimated ovulation day.")
	}
	return out
}

// cycleStart advances lastStart by whole cycles until today falls inside
// the cycle.
func cycleStart(lastStart time.Time, cycleLength int, today time.Time) time.Time {
	elapsed := domain.DaysBetween(lastStart, today)
	if elapsed < cycleLength {
		return domain.DateOf(lastStart)
	}
	return domain.AddDays(lastStart, (elapsed/cycleLength)*cycleLength)
}

func periodMessage(lead int, next time.Time) string {
	switch lead {
	case 0:
		return "Your period is expected to start today."
	case 1:
		return fmt.Sprintf("Your period is expected tomorrow (%s).", domain.FormatDate(next))
	default:
		return fmt.Sprintf("Your period is expected in %d days (%s).", lead, domain.FormatDate(next))
	}
}
