package predict

import (
	"time"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

// ongoingMenstruationDays is how long a period without an end date is
// assumed to last.
const ongoingMenstruationDays = 5

// Phase classifies today within the cycle that began with last.
// Ranges are checked in precedence order and the first match wins:
// menstruation, fertile window, ovulation day, follicular, luteal.
//
// A zero last.EndDate means the period is still ongoing.
func Phase(last domain.Period, cycleLength int, today time.Time) (domain.Phase, error) {
	window, err := FertileWindow(last.StartDate, cycleLength)
	if err != nil {
		return "", err
	}
	today = domain.DateOf(today)

	if isMenstruation(last, cycleLength, today) {
		return domain.PhaseMenstruation, nil
	}
	if window.Contains(today) {
		return domain.PhaseFertileWindow, nil
	}
	// Unreachable while the fertile window contains the ovulation day.
	if today.Equal(window.OvulationDate) {
		return domain.PhaseOvulationDay, nil
	}
	if afterPeriod(last, today) && today.Before(window.FertileStart) {
		return domain.PhaseFollicular, nil
	}
	return domain.PhaseLuteal, nil
}

func isMenstruation(last domain.Period, cycleLength int, today time.Time) bool {
	if last.EndDate.IsZero() {
		if today.Before(domain.DateOf(last.StartDate)) {
			return false
		}
		daysUntilNext := domain.DaysBetween(today, NextPeriod(last.StartDate, cycleLength))
		return daysUntilNext > cycleLength-ongoingMenstruationDays
	}
	return last.Contains(today)
}

func afterPeriod(last domain.Period, today time.Time) bool {
	end := last.EndDate
	if end.IsZero() {
		end = domain.AddDays(last.StartDate, ongoingMenstruationDays-1)
	}
	return today.After(domain.DateOf(end))
}
