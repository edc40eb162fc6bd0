package postgres

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

// ApplyTrackingFilter adds the present constraints of f to query. The
// severity and mood columns exist on symptoms only.
func ApplyTrackingFilter(query sq.SelectBuilder, f domain.TrackingFilter) sq.SelectBuilder {
	if !f.From.IsZero() {
		query = query.Where(sq.GtOrEq{"date": f.From})
	}
	if !f.To.IsZero() {
		query = query.Where(sq.Lt{"date": f.To})
	}
	if f.Type != "" {
		query = query.Where(sq.Eq{"type": f.Type})
	}
	if f.Severity != "" {
		query = query.Where(sq.Eq{"severity": string(f.Severity)})
	}
	if f.Mood != "" {
		query = query.Where(sq.Eq{"mood": string(f.Mood)})
	}
	return query
}
