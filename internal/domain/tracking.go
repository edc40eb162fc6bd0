package domain

import (
	"time"

	"github.com/google/uuid"
)

// MaxNotesLength bounds free-text notes on tracking entries.
const MaxNotesLength = 500

// Symptom is a symptom logged on a given day.
type Symptom struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Date      time.Time
	Type      SymptomType
	Severity  Severity
	Mood      *Mood
	Notes     *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Activity is an activity logged on a given day.
type Activity struct {
	ID     uuid.UUID
	UserID uuid.UUID
	Date   time.Time
	Type   ActivityType
	// DurationMinutes is required for exercise.
	DurationMinutes *int
	// ProtectionUsed only applies to sexual activity.
	ProtectionUsed *bool
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// ValidateActivityShape checks the per-type field rules of an activity.
func ValidateActivityShape(t ActivityType, duration *int, protection *bool) []FieldError {
	var errs []FieldError
	if t == ActivityExercise && duration == nil {
		errs = append(errs, FieldError{Field: "duration", Message: "required for exercise"})
	}
	if duration != nil && *duration <= 0 {
		errs = append(errs, FieldError{Field: "duration", Message: "must be positive"})
	}
	if protection != nil && t != ActivitySexualActivity {
		errs = append(errs, FieldError{Field: "protection_used", Message: "only applies to sexual_activity"})
	}
	return errs
}

// ValidateNotes checks the optional notes field.
func ValidateNotes(notes *string) []FieldError {
	if notes != nil && len([]rune(*notes)) > MaxNotesLength {
		return []FieldError{{Field: "notes", Message: "max 500 characters"}}
	}
	return nil
}
