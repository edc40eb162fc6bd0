package domain

// SymptomType is the kind of logged symptom.
type SymptomType string

const (
	SymptomCramps     SymptomType = "cramps"
	SymptomBloating   SymptomType = "bloating"
	SymptomHeadache   SymptomType = "headache"
	SymptomFatigue    SymptomType = "fatigue"
	SymptomNausea     SymptomType = "nausea"
	SymptomMoodSwings SymptomType = "mood_swings"
	SymptomOther      SymptomType = "other"
)

func (s SymptomType) String() string { return string(s) }

func (s SymptomType) IsValid() bool {
	switch s {
	case SymptomCramps, SymptomBloating, SymptomHeadache, SymptomFatigue,
		SymptomNausea, SymptomMoodSwings, SymptomOther:
		return true
	}
	return false
}

// Severity grades a symptom.
type Severity string

const (
	SeverityMild     Severity = "mild"
	SeverityModerate Severity = "moderate"
	SeveritySevere   Severity = "severe"
)

func (s Severity) String() string { return string(s) }

func (s Severity) IsValid() bool {
	switch s {
	case SeverityMild, SeverityModerate, SeveritySevere:
		return true
	}
	return false
}

// Mood is an optional mood attached to a symptom entry.
type Mood string

const (
	MoodHappy     Mood = "happy"
	MoodIrritable Mood = "irritable"
	MoodAnxious   Mood = "anxious"
	MoodSad       Mood = "sad"
	MoodNeutral   Mood = "neutral"
)

func (m Mood) String() string { return string(m) }

func (m Mood) IsValid() bool {
	switch m {
	case MoodHappy, MoodIrritable, MoodAnxious, MoodSad, MoodNeutral:
		return true
	}
	return false
}

// ActivityType is the kind of logged activity.
type ActivityType string

const (
	ActivityExercise       ActivityType = "exercise"
	ActivitySexualActivity ActivityType = "sexual_activity"
	ActivitySelfPleasuring ActivityType = "self_pleasuring"
)

func (a ActivityType) String() string { return string(a) }

func (a ActivityType) IsValid() bool {
	switch a {
	case ActivityExercise, ActivitySexualActivity, ActivitySelfPleasuring:
		return true
	}
	return false
}

// MetricType selects the shape of a HealthMetric value.
type MetricType string

const (
	MetricWaterIntake   MetricType = "water_intake"
	MetricSleepHours    MetricType = "sleep_hours"
	MetricWeight        MetricType = "weight"
	MetricBloodPressure MetricType = "blood_pressure"
)

func (m MetricType) String() string { return string(m) }

func (m MetricType) IsValid() bool {
	switch m {
	case MetricWaterIntake, MetricSleepHours, MetricWeight, MetricBloodPressure:
		return true
	}
	return false
}

// NotificationType classifies user notifications.
type NotificationType string

const (
	NotificationPeriodReminder NotificationType = "period_reminder"
	NotificationFertileWindow  NotificationType = "fertile_window"
	NotificationCustom         NotificationType = "custom"
	NotificationSystem         NotificationType = "system"
)

func (n NotificationType) String() string { return string(n) }

func (n NotificationType) IsValid() bool {
	switch n {
	case NotificationPeriodReminder, NotificationFertileWindow, NotificationCustom, NotificationSystem:
		return true
	}
	return false
}

// Phase labels a day within the menstrual cycle.
type Phase string

const (
	PhaseMenstruation  Phase = "menstruation"
	PhaseFertileWindow Phase = "fertile_window"
	PhaseOvulationDay  Phase = "ovulation_day"
	PhaseFollicular    Phase = "follicular"
	PhaseLuteal        Phase = "luteal"
)

func (p Phase) String() string { return string(p) }

// Label is the human-readable name of the phase.
func (p Phase) Label() string {
	switch p {
	case PhaseMenstruation:
		return "Menstruation"
	case PhaseFertileWindow:
		return "Fertile Window"
	case PhaseOvulationDay:
		return "Ovulation Day"
	case PhaseFollicular:
		return "Follicular Phase"
	default:
		return "Luteal Phase"
	}
}
