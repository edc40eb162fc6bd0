package domain

import (
	"time"

	"github.com/google/uuid"
)

// Period is one logged menstruation, both ends inclusive.
type Period struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	StartDate time.Time
	EndDate   time.Time
	// Length is EndDate - StartDate + 1, in days.
	Length    int
	CreatedAt time.Time
	UpdatedAt time.Time
}

// PeriodLength returns the inclusive number of days between start and end.
func PeriodLength(start, end time.Time) int {
	return DaysBetween(start, end) + 1
}

// Overlaps reports whether [start, end] intersects this period.
func (p Period) Overlaps(start, end time.Time) bool {
	return !DateOf(p.StartDate).After(DateOf(end)) && !DateOf(p.EndDate).Before(DateOf(start))
}

// Contains reports whether day falls within the period.
func (p Period) Contains(day time.Time) bool {
	return p.Overlaps(day, day)
}

// ValidatePeriodDates checks ordering and the no-future rule against today.
func ValidatePeriodDates(start, end, today time.Time) []FieldError {
	var errs []FieldError
	if start.IsZero() {
		errs = append(errs, FieldError{Field: "start_date", Message: "required"})
	} else if DateOf(start).After(DateOf(today)) {
		errs = append(errs, FieldError{Field: "start_date", Message: "must not be in the future"})
	}
	if end.IsZero() {
		errs = append(errs, FieldError{Field: "end_date", Message: "required"})
	} else if DateOf(end).After(DateOf(today)) {
		errs = append(errs, FieldError{Field: "end_date", Message: "must not be in the future"})
	}
	if !start.IsZero() && !end.IsZero() && DateOf(start).After(DateOf(end)) {
		errs = append(errs, FieldError{Field: "end_date", Message: "must be on or after start_date"})
	}
	return errs
}
