// Package activity implements the activity repository using PostgreSQL.
package activity

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

const table = "activities"

var columns = []string{
	"id", "user_id", "date", "type", "duration_minutes", "protection_used", "notes", "created_at", "updated_at",
}

// Repo provides activity persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new activity repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type activityRow struct {
	ID              uuid.UUID `db:"id"`
	UserID          uuid.UUID `db:"user_id"`
	Date            time.Time `db:"date"`
	Type            string    `db:"type"`
	DurationMinutes *int      `db:"duration_minutes"`
	ProtectionUsed  *bool     `db:"protection_used"`
	Notes           *string   `db:"notes"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

func (r activityRow) toDomain() domain.Activity {
	return domain.Activity{
		ID:              r.ID,
		UserID:          r.UserID,
		Date:            domain.DateOf(r.Date),
		Type:            domain.ActivityType(r.Type),
		DurationMinutes: r.DurationMinutes,
		ProtectionUsed:  r.ProtectionUsed,
		Notes:           r.Notes,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

// Create inserts an activity.
func (r *Repo) Create(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	var row activityRow
	query := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(a.ID, a.UserID, a.Date, string(a.Type), a.DurationMinutes, a.ProtectionUsed, a.Notes, a.CreatedAt, a.UpdatedAt).
		Suffix(postgres.Returning(columns))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "activity", a.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// GetByID returns the user's activity with the given id.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Activity, error) {
	var row activityRow
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id, "user_id": userID})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "activity", id)
	}
	out := row.toDomain()
	return &out, nil
}

// List returns the user's activities matching f, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.Activity, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"user_id": userID})
	query = postgres.ApplyTrackingFilter(query, f).OrderBy("date DESC", "created_at DESC")

	var rows []activityRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "activity", userID)
	}
	out := make([]domain.Activity, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Update overwrites the mutable fields of a.
func (r *Repo) Update(ctx context.Context, a *domain.Activity) (*domain.Activity, error) {
	var row activityRow
	query := postgres.Builder().Update(table).
		Set("date", a.Date).
		Set("type", string(a.Type)).
		Set("duration_minutes", a.DurationMinutes).
		Set("protection_used", a.ProtectionUsed).
		Set("notes", a.Notes).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": a.ID, "user_id": a.UserID}).
		Suffix(postgres.Returning(columns))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "activity", a.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// Delete removes the user's activity.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := postgres.Builder().Delete(table).Where(sq.Eq{"id": id, "user_id": userID})
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return postgres.MapError(err, "activity", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "activity", id)
	}
	return nil
}
