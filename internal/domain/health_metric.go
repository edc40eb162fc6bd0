package domain

import (
	"time"

	"github.com/google/uuid"
)

// HealthMetric is a measurement logged on a given day.
type HealthMetric struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	Type      MetricType
	Value     MetricValue
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MetricValue is either a Numeric or a BloodPressure, selected by MetricType.
type MetricValue interface {
	metricValue()
}

// Numeric holds water (litres), sleep (hours) or weight (kg).
type Numeric float64

// BloodPressure holds a systolic/diastolic pair in mmHg.
type BloodPressure struct {
	Systolic  int
	Diastolic int
}

func (Numeric) metricValue()       {}
func (BloodPressure) metricValue() {}

// ValidateMetric checks that value has the shape and range required by t.
func ValidateMetric(t MetricType, value MetricValue) []FieldError {
	if !t.IsValid() {
		return []FieldError{{Field: "type", Message: "unknown metric type"}}
	}
	if value == nil {
		return []FieldError{{Field: "value", Message: "required"}}
	}

	if t == MetricBloodPressure {
		bp, ok := value.(BloodPressure)
		if !ok {
			return []FieldError{{Field: "value", Message: "blood_pressure requires systolic and diastolic"}}
		}
		var errs []FieldError
		if bp.Systolic <= 0 {
			errs = append(errs, FieldError{Field: "value.systolic", Message: "must be positive"})
		}
		if bp.Diastolic <= 0 {
			errs = append(errs, FieldError{Field: "value.diastolic", Message: "must be positive"})
		}
		if len(errs) == 0 && bp.Systolic <= bp.Diastolic {
			errs = append(errs, FieldError{Field: "value", Message: "systolic must be greater than diastolic"})
		}
		return errs
	}

	n, ok := value.(Numeric)
	if !ok {
		return []FieldError{{Field: "value", Message: t.String() + " requires a number"}}
	}
	switch t {
	case MetricWaterIntake:
		if n < 0 {
			return []FieldError{{Field: "value", Message: "must be non-negative"}}
		}
	case MetricSleepHours:
		if n < 0 || n > 24 {
			return []FieldError{{Field: "value", Message: "must be between 0 and 24"}}
		}
	case MetricWeight:
		if n <= 0 {
			return []FieldError{{Field: "value", Message: "must be positive"}}
		}
	}
	return nil
}
