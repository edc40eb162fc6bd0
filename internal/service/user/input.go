package user

import (
	"fmt"
	"strings"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

// UpdateProfileInput holds parameters for profile update operation.
// All fields are optional (nil = don't change).
type UpdateProfileInput struct {
	Name        *string
	Age         *int
	CycleLength *int
}

// Validate validates the update profile input. The cycle length override
// must lie within [minCycle, maxCycle].
func (i UpdateProfileInput) Validate(minCycle, maxCycle int) error {
	var errs []domain.FieldError

	if i.Name != nil {
		name := strings.TrimSpace(*i.Name)
		if name == "" {
			errs = append(errs, domain.FieldError{Field: "name", Message: "cannot be empty"})
		} else if len(name) > 100 {
			errs = append(errs, domain.FieldError{Field: "name", Message: "too long"})
		}
	}

	if i.Age != nil && (*i.Age < domain.MinAge || *i.Age > domain.MaxAge) {
		errs = append(errs, domain.FieldError{
			Field:   "age",
			Message: fmt.Sprintf("must be between %d and %d", domain.MinAge, domain.MaxAge),
		})
	}

	if i.CycleLength != nil && (*i.CycleLength < minCycle || *i.CycleLength > maxCycle) {
		errs = append(errs, domain.FieldError{
			Field:   "cycle_length",
			Message: fmt.Sprintf("must be between %d and %d", minCycle, maxCycle),
		})
	}

	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}
