package domain

import "time"

// CycleInsight classifies an average cycle length.
type CycleInsight string

const (
	InsightNormal    CycleInsight = "normal"
	InsightIrregular CycleInsight = "irregular"
)

// Message is the user-facing insight text.
func (i CycleInsight) Message() string {
	if i == InsightIrregular {
		return "Possible irregular cycles detected."
	}
	return "Cycle length is normal."
}

// CyclePrediction is derived from period history on demand.
type CyclePrediction struct {
	AvgCycleLength      int
	NextPeriodStartDate time.Time
	Insight             CycleInsight
	// SampleSize is the number of records the average was computed from.
	SampleSize int
}

// FertileWindow is anchored on the estimated ovulation day.
type FertileWindow struct {
	OvulationDate time.Time
	FertileStart  time.Time
	FertileEnd    time.Time
}

// Contains reports whether day lies within [FertileStart, FertileEnd].
func (w FertileWindow) Contains(day time.Time) bool {
	d := DateOf(day)
	return !d.Before(DateOf(w.FertileStart)) && !d.After(DateOf(w.FertileEnd))
}

// Trend is one label's occurrence count.
type Trend struct {
	Label string
	Count int
}
