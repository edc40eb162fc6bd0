// Package period implements the period repository using PostgreSQL.
package period

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

const table = "periods"

var columns = []string{"id", "user_id", "start_date", "end_date", "length", "created_at", "updated_at"}

// Repo provides period persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new period repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type periodRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	StartDate time.Time `db:"start_date"`
	EndDate   time.Time `db:"end_date"`
	Length    int       `db:"length"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r periodRow) toDomain() domain.Period {
	return domain.Period{
		ID:        r.ID,
		UserID:    r.UserID,
		StartDate: domain.DateOf(r.StartDate),
		EndDate:   domain.DateOf(r.EndDate),
		Length:    r.Length,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toDomainList(rows []periodRow) []domain.Period {
	out := make([]domain.Period, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.toDomain())
	}
	return out
}

// Create inserts a period.
func (r *Repo) Create(ctx context.Context, p *domain.Period) (*domain.Period, error) {
	var row periodRow
	query := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(p.ID, p.UserID, p.StartDate, p.EndDate, p.Length, p.CreatedAt, p.UpdatedAt).
		Suffix(postgres.Returning(columns))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "period", p.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// GetByID returns the user's period with the given id.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Period, error) {
	var row periodRow
	query := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"id": id, "user_id": userID})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "period", id)
	}
	out := row.toDomain()
	return &out, nil
}

// ListByUser returns the user's periods, newest start first. limit <= 0 means all.
func (r *Repo) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Period, error) {
	query := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("start_date DESC")
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	var rows []periodRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "period", userID)
	}
	return toDomainList(rows), nil
}

// ListStartingBetween returns periods whose start falls in [from, to).
func (r *Repo) ListStartingBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]domain.Period, error) {
	query := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"start_date": from}).
		Where(sq.Lt{"start_date": to}).
		OrderBy("start_date DESC")

	var rows []periodRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "period", userID)
	}
	return toDomainList(rows), nil
}

// FindOverlapping returns the user's periods intersecting [start, end],
// ignoring excludeID (uuid.Nil excludes nothing).
func (r *Repo) FindOverlapping(ctx context.Context, userID uuid.UUID, start, end time.Time, excludeID uuid.UUID) ([]domain.Period, error) {
	query := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.LtOrEq{"start_date": end}).
		Where(sq.GtOrEq{"end_date": start})
	if excludeID != uuid.Nil {
		query = query.Where(sq.NotEq{"id": excludeID})
	}
	// Concurrent inserts are caught by the periods_no_overlap constraint.
	query = query.Suffix("FOR UPDATE")

	var rows []periodRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "period", userID)
	}
	return toDomainList(rows), nil
}

// Update stores new dates for an existing period.
func (r *Repo) Update(ctx context.Context, p *domain.Period) (*domain.Period, error) {
	var row periodRow
	query := postgres.Builder().Update(table).
		Set("start_date", p.StartDate).
		Set("end_date", p.EndDate).
		Set("length", p.Length).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": p.ID, "user_id": p.UserID}).
		Suffix(postgres.Returning(columns))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "period", p.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// Delete removes the user's period.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := postgres.Builder().Delete(table).Where(sq.Eq{"id": id, "user_id": userID})
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return postgres.MapError(err, "period", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "period", id)
	}
	return nil
}

// LatestPerUser returns the most recent period of every user that has one.
func (r *Repo) LatestPerUser(ctx context.Context) ([]domain.Period, error) {
	query := postgres.Builder().Select(columns...).Options("DISTINCT ON (user_id)").From(table).
		OrderBy("user_id", "start_date DESC")

	var rows []periodRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "period", uuid.Nil)
	}
	return toDomainList(rows), nil
}
