package cycle

import (
	"time"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

// CreatePeriodInput holds parameters for logging a period.
type CreatePeriodInput struct {
	StartDate time.Time
	EndDate   time.Time
}

// Validate checks date ordering and that neither date is after today.
func (i CreatePeriodInput) Validate(today time.Time) error {
	if errs := domain.ValidatePeriodDates(i.StartDate, i.EndDate, today); len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdatePeriodInput holds a partial period update (nil = don't change).
type UpdatePeriodInput struct {
	StartDate *time.Time
	EndDate   *time.Time
}

// IsEmpty reports whether no field is present.
func (i UpdatePeriodInput) IsEmpty() bool {
	return i.StartDate == nil && i.EndDate == nil
}

// apply merges the present fields onto p and returns the resulting dates.
func (i UpdatePeriodInput) apply(p domain.Period) (start, end time.Time) {
	start, end = p.StartDate, p.EndDate
	if i.StartDate != nil {
		start = domain.DateOf(*i.StartDate)
	}
	if i.EndDate != nil {
		end = domain.DateOf(*i.EndDate)
	}
	return start, end
}
