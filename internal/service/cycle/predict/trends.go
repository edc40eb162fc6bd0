package predict

import (
	"fmt"
	"slices"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

// Trends counts occurrences per label, most frequent first. Labels with
// equal counts keep the order in which they were first seen.
func Trends(labels []string) []domain.Trend {
	index := make(map[string]int, len(labels))
	var trends []domain.Trend

	for _, l := range labels {
		if i, ok := index[l]; ok {
			trends[i].Count++
			continue
		}
		index[l] = len(trends)
		trends = append(trends, domain.Trend{Label: l, Count: 1})
	}

	slices.SortStableFunc(trends, func(a, b domain.Trend) int {
		return b.Count - a.Count
	})
	return trends
}

// FormatTrends renders trends as "label: N times".
func FormatTrends(trends []domain.Trend) []string {
	out := make([]string, 0, len(trends))
	for _, t := range trends {
		out = append(out, fmt.Sprintf("%s: %d times", t.Label, t.Count))
	}
	return out
}
