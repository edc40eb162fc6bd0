// Package user implements the User repository using PostgreSQL.
package user

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

const table = "users"

var columns = []string{
	"id", "email", "password_hash", "name", "age", "cycle_length", "created_at", "updated_at",
}

// Repo provides user persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new user repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type userRow struct {
	ID           uuid.UUID `db:"id"`
	Email        string    `db:"email"`
	PasswordHash string    `db:"password_hash"`
	Name         string    `db:"name"`
	Age          *int      `db:"age"`
	CycleLength  *int      `db:"cycle_length"`
	CreatedAt    time.Time `db:"created_at"`
	UpdatedAt    time.Time `db:"updated_at"`
}

func (r userRow) toDomain() *domain.User {
	return &domain.User{
		ID:           r.ID,
		Email:        r.Email,
		PasswordHash: r.PasswordHash,
		Name:         r.Name,
		Age:          r.Age,
		CycleLength:  r.CycleLength,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// GetByID returns a user by primary key.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	var row userRow
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// GetByEmail returns a user by email address. Email is matched as stored (lowercase).
func (r *Repo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var row userRow
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"email": email})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	return row.toDomain(), nil
}

// GetByIDs returns the users with the given ids, in no particular order.
func (r *Repo) GetByIDs(ctx context.Context, ids []uuid.UUID) ([]domain.User, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var rows []userRow
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": ids})
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "user", uuid.Nil)
	}
	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, *row.toDomain())
	}
	return users, nil
}

// Create inserts a new user and returns the persisted domain.User.
func (r *Repo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	var row userRow
	query := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(u.ID, u.Email, u.PasswordHash, u.Name, u.Age, u.CycleLength, u.CreatedAt, u.UpdatedAt).
		Suffix(postgres.Returning(columns))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "user", u.ID)
	}
	return row.toDomain(), nil
}

// Update applies the present fields of upd and returns the updated user.
func (r *Repo) Update(ctx context.Context, id uuid.UUID, upd domain.ProfileUpdate) (*domain.User, error) {
	query := postgres.Builder().Update(table).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(postgres.Returning(columns))
	if upd.Name != nil {
		query = query.Set("name", *upd.Name)
	}
	if upd.Age != nil {
		query = query.Set("age", *upd.Age)
	}
	if upd.CycleLength != nil {
		query = query.Set("cycle_length", *upd.CycleLength)
	}

	var row userRow
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "user", id)
	}
	return row.toDomain(), nil
}

// UpdateCycleLength stores a computed average cycle length.
func (r *Repo) UpdateCycleLength(ctx context.Context, id uuid.UUID, length int) error {
	query := postgres.Builder().Update(table).
		Set("cycle_length", length).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id})
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return postgres.MapError(err, "user", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "user", id)
	}
	return nil
}
