package main

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/internal/service/cycle/predict"
)

type inputFile struct {
	CycleLength int `yaml:"cycle_length"`
	Periods     []struct {
		Start string `yaml:"start"`
		End   string `yaml:"end"`
	} `yaml:"periods"`
}

type input struct {
	cycleLength int
	periods     []domain.Period
}

func loadInput(r io.Reader) (input, error) {
	var raw inputFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return input{}, fmt.Errorf("decode yaml: %w", err)
	}

	if raw.CycleLength != 0 && (raw.CycleLength < domain.MinCycleLength || raw.CycleLength > domain.MaxCycleLength) {
		return input{}, fmt.Errorf("cycle_length %d outside %d..%d", raw.CycleLength, domain.MinCycleLength, domain.MaxCycleLength)
	}

	in := input{cycleLength: raw.CycleLength}
	for i, p := range raw.Periods {
		start, err := domain.ParseDate(p.Start)
		if err != nil {
			return input{}, fmt.Errorf("periods[%d].start: %w", i, err)
		}
		period := domain.Period{StartDate: start}
		if p.End != "" {
			end, err := domain.ParseDate(p.End)
			if err != nil {
				return input{}, fmt.Errorf("periods[%d].end: %w", i, err)
			}
			if end.Before(start) {
				return input{}, fmt.Errorf("periods[%d]: end before start", i)
			}
			period.EndDate = end
			period.Length = domain.PeriodLength(start, end)
		}
		in.periods = append(in.periods, period)
	}
	if len(in.periods) == 0 {
		return input{}, fmt.Errorf("no periods: %w", domain.ErrInsufficientData)
	}
	return in, nil
}

// forecast is everything the CLI prints.
type forecast struct {
	Today          time.Time
	LastStart      time.Time
	SampleSize     int
	AvgCycleLength int // 0 when fewer than two periods
	CycleLength    int
	Insight        domain.CycleInsight
	NextPeriod     time.Time
	DaysUntilNext  int
	Window         domain.FertileWindow
	Phase          domain.Phase
	CycleDay       int
}

// buildForecast uses the explicit cycle length when given, otherwise the
// average of recent cycles, otherwise the default.
func buildForecast(in input, today time.Time) (forecast, error) {
	recent := predict.Recent(in.periods)
	last := recent[0]

	fc := forecast{
		Today:       domain.DateOf(today),
		LastStart:   last.StartDate,
		SampleSize:  len(recent),
		CycleLength: domain.DefaultCycleLength,
	}

	pred, err := predict.Cycle(in.periods)
	switch {
	case err == nil:
		fc.AvgCycleLength = pred.AvgCycleLength
		fc.CycleLength = pred.AvgCycleLength
	case !errors.Is(err, domain.ErrInsufficientData):
		return forecast{}, err
	}
	if in.cycleLength != 0 {
		fc.CycleLength = in.cycleLength
	}
	fc.Insight = predict.Insight(fc.CycleLength)

	fc.NextPeriod = predict.NextPeriod(last.StartDate, fc.CycleLength)
	fc.DaysUntilNext = domain.DaysBetween(fc.Today, fc.NextPeriod)
	fc.CycleDay = domain.DaysBetween(last.StartDate, fc.Today) + 1

	if fc.Window, err = predict.FertileWindow(last.StartDate, fc.CycleLength); err != nil {
		return forecast{}, err
	}
	if fc.Phase, err = predict.Phase(last, fc.CycleLength, fc.Today); err != nil {
		return forecast{}, err
	}
	return fc, nil
}
