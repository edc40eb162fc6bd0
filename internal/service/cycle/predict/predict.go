// Package predict implements the cycle arithmetic: average cycle length,
// next period, ovulation, fertile window, phase and trend counting.
// It has no I/O and is shared by the API services and the offline CLI.
package predict

import (
	"fmt"
	"math"
	"slices"
	"time"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

const (
	// MaxHistory is how many of the most recent periods feed the average.
	MaxHistory = 6
	// MinHistory is the fewest periods that yield one start-to-start interval.
	MinHistory = 2

	// LutealDays is the fixed luteal phase length.
	LutealDays = 14
	// FertileDaysBefore and FertileDaysAfter bound the window around ovulation.
	FertileDaysBefore = 5
	FertileDaysAfter  = 1

	// Averages outside [IrregularBelow, IrregularAbove] are flagged irregular.
	IrregularBelow = 21
	IrregularAbove = 35
)

// Recent returns a newest-first copy of periods limited to MaxHistory.
func Recent(periods []domain.Period) []domain.Period {
	sorted := slices.Clone(periods)
	slices.SortStableFunc(sorted, func(a, b domain.Period) int {
		return b.StartDate.Compare(a.StartDate)
	})
	if len(sorted) > MaxHistory {
		sorted = sorted[:MaxHistory]
	}
	return sorted
}

// Cycle computes the average start-to-start interval over the most recent
// periods and projects the next period start.
//
//	avg = round( Σ (start[i] - start[i+1]) / (n-1) ),  newest first
//
// Returns domain.ErrInsufficientData when fewer than MinHistory periods exist.
func Cycle(periods []domain.Period) (domain.CyclePrediction, error) {
	recent := Recent(periods)
	if len(recent) < MinHistory {
		return domain.CyclePrediction{}, fmt.Errorf("predict.Cycle: %d period(s): %w", len(recent), domain.ErrInsufficientData)
	}

	sum := 0
	for i := 0; i < len(recent)-1; i++ {
		sum += domain.DaysBetween(recent[i+1].StartDate, recent[i].StartDate)
	}
	avg := int(math.Round(float64(sum) / float64(len(recent)-1)))

	return domain.CyclePrediction{
		AvgCycleLength:      avg,
		NextPeriodStartDate: domain.AddDays(recent[0].StartDate, avg),
		Insight:             Insight(avg),
		SampleSize:          len(recent),
	}, nil
}

// Insight flags averages outside the typical range.
func Insight(avgCycleLength int) domain.CycleInsight {
	if avgCycleLength < IrregularBelow || avgCycleLength > IrregularAbove {
		return domain.InsightIrregular
	}
	return domain.InsightNormal
}

// FertileWindow estimates ovulation and the fertile window for a cycle
// starting on lastStart.
//
//	ovulation = lastStart + (cycleLength - 14)
//	window    = [ovulation - 5, ovulation + 1]
func FertileWindow(lastStart time.Time, cycleLength int) (domain.FertileWindow, error) {
	if lastStart.IsZero() {
		return domain.FertileWindow{}, fmt.Errorf("predict.FertileWindow: missing period start: %w", domain.ErrInvalidInput)
	}
	if cycleLength <= 0 {
		return domain.FertileWindow{}, fmt.Errorf("predict.FertileWindow: cycle length %d: %w", cycleLength, domain.ErrInvalidInput)
	}

	ovulation := domain.AddDays(lastStart, cycleLength-LutealDays)
	return domain.FertileWindow{
		OvulationDate: ovulation,
		FertileStart:  domain.AddDays(ovulation, -FertileDaysBefore),
		FertileEnd:    domain.AddDays(ovulation, FertileDaysAfter),
	}, nil
}

// NextPeriod returns lastStart shifted by cycleLength days.
func NextPeriod(lastStart time.Time, cycleLength int) time.Time {
	return domain.AddDays(lastStart, cycleLength)
}
