// Package healthmetric implements the health metric repository using PostgreSQL.
package healthmetric

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

const table = "health_metrics"

var columns = []string{
	"id", "user_id", "date", "type", "numeric_value", "systolic", "diastolic", "notes", "created_at", "updated_at",
}

// Repo provides health metric persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new health metric repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type metricRow struct {
	ID           uuid.UUID `db:"id"`
	UserID       uuid.UUID `db:"user_id"`
	Date         time.Time `db:"date"`
	Type         string    `db:"type"`
	NumericValue *float64  `db:"numeric_value"`
	Systolic     *int      `db:"systolic"`
	Diastolic    *int      `db:"diastolic"`
	Notes        *string   `db:"notes"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r metricRow) toDomain() domain.HealthMetric {
	m := domain.HealthMetric{
		ID:        r.ID,
		UserID:    r.UserID,
		Date:      domain.DateOf(r.Date),
		Type:      domain.MetricType(r.Type),
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	switch {
	case r.Systolic != nil && r.Diastolic != nil:
		m.Value = domain.BloodPressure{Systolic: *r.Systolic, Diastolic: *r.Diastolic}
	case r.NumericValue != nil:
		m.Value = domain.Numeric(*r.NumericValue)
	}
	return m
}

// valueColumns splits a metric value into its numeric_value, systolic and
// diastolic columns.
func valueColumns(v domain.MetricValue) (*float64, *int, *int) {
	switch val := v.(type) {
	case domain.Numeric:
		f := float64(val)
		return &f, nil, nil
	case domain.BloodPressure:
		s, d := val.Systolic, val.Diastolic
		return nil, &s, &d
	}
	return nil, nil, nil
}

// Create inserts a health metric.
func (r *Repo) Create(ctx context.Context, m *domain.HealthMetric) (*domain.HealthMetric, error) {
	num, sys, dia := valueColumns(m.Value)

	var row metricRow
	query := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(m.ID, m.UserID, m.Date, string(m.Type), num, sys, dia, m.Notes, m.CreatedAt, m.UpdatedAt).
		Suffix(postgres.Returning(columns))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "health_metric", m.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// GetByID returns the user's metric with the given id.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.HealthMetric, error) {
	var row metricRow
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id, "user_id": userID})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "health_metric", id)
	}
	out := row.toDomain()
	return &out, nil
}

// List returns the user's metrics matching f, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.HealthMetric, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"user_id": userID})
	query = postgres.ApplyTrackingFilter(query, f).OrderBy("date DESC", "created_at DESC")

	var rows []metricRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "health_metric", userID)
	}
	out := make([]domain.HealthMetric, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Update overwrites the mutable fields of m.
func (r *Repo) Update(ctx context.Context, m *domain.HealthMetric) (*domain.HealthMetric, error) {
	num, sys, dia := valueColumns(m.Value)

	var row metricRow
	query := postgres.Builder().Update(table).
		Set("date", m.Date).
		Set("type", string(m.Type)).
		Set("numeric_value", num).
		Set("systolic", sys).
		Set("diastolic", dia).
		Set("notes", m.Notes).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": m.ID, "user_id": m.UserID}).
		Suffix(postgres.Returning(columns))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "health_metric", m.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// Delete removes the user's metric.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := postgres.Builder().Delete(table).Where(sq.Eq{"id": id, "user_id": userID})
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return postgres.MapError(err, "health_metric", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "health_metric", id)
	}
	return nil
}
