package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#E0607E")).
			MarginBottom(1)
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Width(18)
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#EEEEEE"))
	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFB347"))
	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444444")).
			Padding(0, 1)
)

func render(fc forecast) string {
	avg := "not enough data"
	if fc.AvgCycleLength > 0 {
		avg = fmt.Sprintf("%d days (%d periods)", fc.AvgCycleLength, fc.SampleSize)
	}

	insight := valueStyle.Render(fc.Insight.Message())
	if fc.Insight == domain.InsightIrregular {
		insight = warnStyle.Render(fc.Insight.Message())
	}

	next := fmt.Sprintf("%s (in %d days)", domain.FormatDate(fc.NextPeriod), fc.DaysUntilNext)
	if fc.DaysUntilNext < 0 {
		next = fmt.Sprintf("%s (%d days late)", domain.FormatDate(fc.NextPeriod), -fc.DaysUntilNext)
	}

	rows := [][2]string{
		{"Today", domain.FormatDate(fc.Today)},
		{"Last period", domain.FormatDate(fc.LastStart)},
		{"Average cycle", avg},
		{"Cycle length used", fmt.Sprintf("%d days", fc.CycleLength)},
		{"Next period", next},
		{"Ovulation", domain.FormatDate(fc.Window.OvulationDate)},
		{"Fertile window", domain.FormatDate(fc.Window.FertileStart) + " to " + domain.FormatDate(fc.Window.FertileEnd)},
		{"Phase", fmt.Sprintf("%s (day %d)", fc.Phase.Label(), fc.CycleDay)},
	}

	lines := make([]string, 0, len(rows)+1)
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(r[0]), valueStyle.Render(r[1])))
	}
	lines = append(lines, "", insight)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("CycleCare forecast"),
		boxStyle.Render(strings.Join(lines, "\n")),
	)
}
