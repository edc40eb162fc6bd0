package domain

import "time"

// TrackingFilter narrows symptom, activity and metric listings.
// Zero values mean "no constraint".
type TrackingFilter struct {
	// From is inclusive, To is exclusive.
	From     time.Time
	To       time.Time
	Type     string
	Severity Severity
	Mood     Mood
}

// MonthRange returns [first day of month, first day of next month).
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}
