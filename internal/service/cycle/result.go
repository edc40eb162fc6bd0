package cycle

import (
	"time"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

// Prediction is the next-period forecast together with the fertile window
// of the upcoming cycle.
type Prediction struct {
	domain.CyclePrediction
	Window domain.FertileWindow
}

// FertileWindowResult is the fertile window of the current cycle.
type FertileWindowResult struct {
	domain.FertileWindow
	LastPeriodStart time.Time
	CycleLength     int
}

// PhaseResult describes where today falls in the current cycle.
type PhaseResult struct {
	Phase         domain.Phase
	Today         time.Time
	CycleDay      int
	CycleLength   int
	NextPeriod    time.Time
	DaysUntilNext int
	Window        domain.FertileWindow
}
