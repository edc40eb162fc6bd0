package tracking

import (
	"time"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Symptoms
// ---------------------------------------------------------------------------

// CreateSymptomInput holds parameters for logging a symptom.
type CreateSymptomInput struct {
	Date     time.Time
	Type     domain.SymptomType
	Severity domain.Severity
	Mood     *domain.Mood
	Notes    *string
}

func (i CreateSymptomInput) Validate(today time.Time) error {
	errs := validateDate(i.Date, today)
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown symptom type"})
	}
	if !i.Severity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "must be mild, moderate or severe"})
	}
	if i.Mood != nil && !i.Mood.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "unknown mood"})
	}
	errs = append(errs, domain.ValidateNotes(i.Notes)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateSymptomInput is a partial symptom update (nil = don't change).
type UpdateSymptomInput struct {
	Date     *time.Time
	Type     *domain.SymptomType
	Severity *domain.Severity
	Mood     *domain.Mood
	Notes    *string
}

func (i UpdateSymptomInput) apply(s *domain.Symptom) {
	if i.Date != nil {
		s.Date = domain.DateOf(*i.Date)
	}
	if i.Type != nil {
		s.Type = *i.Type
	}
	if i.Severity != nil {
		s.Severity = *i.Severity
	}
	if i.Mood != nil {
		s.Mood = i.Mood
	}
	if i.Notes != nil {
		s.Notes = i.Notes
	}
}

// ---------------------------------------------------------------------------
// Activities
// ---------------------------------------------------------------------------

// CreateActivityInput holds parameters for logging an activity.
type CreateActivityInput struct {
	Date            time.Time
	Type            domain.ActivityType
	DurationMinutes *int
	ProtectionUsed  *bool
	Notes           *string
}

func (i CreateActivityInput) Validate(today time.Time) error {
	errs := validateDate(i.Date, today)
	if !i.Type.IsValid() {
		errs = append(errs, domain.FieldError{Field: "type", Message: "unknown activity type"})
	} else {
		errs = append(errs, domain.ValidateActivityShape(i.Type, i.DurationMinutes, i.ProtectionUsed)...)
	}
	errs = append(errs, domain.ValidateNotes(i.Notes)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateActivityInput is a partial activity update (nil = don't change).
type UpdateActivityInput struct {
	Date            *time.Time
	Type            *domain.ActivityType
	DurationMinutes *int
	ProtectionUsed  *bool
	Notes           *string
}

func (i UpdateActivityInput) apply(a *domain.Activity) {
	if i.Date != nil {
		a.Date = domain.DateOf(*i.Date)
	}
	if i.Type != nil {
		a.Type = *i.Type
		if a.Type != domain.ActivitySexualActivity && i.ProtectionUsed == nil {
			a.ProtectionUsed = nil
		}
	}
	if i.DurationMinutes != nil {
		a.DurationMinutes = i.DurationMinutes
	}
	if i.ProtectionUsed != nil {
		a.ProtectionUsed = i.ProtectionUsed
	}
	if i.Notes != nil {
		a.Notes = i.Notes
	}
}

// ---------------------------------------------------------------------------
// Health metrics
// ---------------------------------------------------------------------------

// CreateMetricInput holds parameters for logging a health metric.
type CreateMetricInput struct {
	Date  time.Time
	Type  domain.MetricType
	Value domain.MetricValue
	Notes *string
}

func (i CreateMetricInput) Validate(today time.Time) error {
	errs := validateDate(i.Date, today)
	errs = append(errs, domain.ValidateMetric(i.Type, i.Value)...)
	errs = append(errs, domain.ValidateNotes(i.Notes)...)
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// UpdateMetricInput is a partial metric update (nil = don't change).
// Changing Type requires a Value of the matching shape.
type UpdateMetricInput struct {
	Date  *time.Time
	Type  *domain.MetricType
	Value domain.MetricValue
	Notes *string
}

func (i UpdateMetricInput) apply(m *domain.HealthMetric) {
	if i.Date != nil {
		m.Date = domain.DateOf(*i.Date)
	}
	if i.Type != nil {
		m.Type = *i.Type
	}
	if i.Value != nil {
		m.Value = i.Value
	}
	if i.Notes != nil {
		m.Notes = i.Notes
	}
}

// ---------------------------------------------------------------------------
// Reports
// ---------------------------------------------------------------------------

// ReportInput selects one calendar month and optional narrowing filters.
type ReportInput struct {
	Month    int
	Year     int
	Type     string
	Severity domain.Severity
	Mood     domain.Mood
}

func (i ReportInput) Validate() error {
	var errs []domain.FieldError
	if i.Month < 1 || i.Month > 12 {
		errs = append(errs, domain.FieldError{Field: "month", Message: "must be within 1..12"})
	}
	if i.Year < 1900 || i.Year > 9999 {
		errs = append(errs, domain.FieldError{Field: "year", Message: "must be a four-digit year"})
	}
	if i.Severity != "" && !i.Severity.IsValid() {
		errs = append(errs, domain.FieldError{Field: "severity", Message: "must be mild, moderate or severe"})
	}
	if i.Mood != "" && !i.Mood.IsValid() {
		errs = append(errs, domain.FieldError{Field: "mood", Message: "unknown mood"})
	}
	if len(errs) > 0 {
		return &domain.ValidationError{Errors: errs}
	}
	return nil
}

// Filter converts the report selection into a repository filter.
func (i ReportInput) Filter() domain.TrackingFilter {
	from, to := domain.MonthRange(i.Year, time.Month(i.Month))
	return domain.TrackingFilter{
		From:     from,
		To:       to,
		Type:     i.Type,
		Severity: i.Severity,
		Mood:     i.Mood,
	}
}
