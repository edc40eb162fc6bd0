// Package symptom implements the symptom repository using PostgreSQL.
package symptom

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

const table = "symptoms"

var columns = []string{"id", "user_id", "date", "type", "severity", "mood", "notes", "created_at", "updated_at"}

// Repo provides symptom persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new symptom repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type symptomRow struct {
	ID        uuid.UUID `db:"id"`
	UserID    uuid.UUID `db:"user_id"`
	Date      time.Time `db:"date"`
	Type      string    `db:"type"`
	Severity  string    `db:"severity"`
	Mood      *string   `db:"mood"`
	Notes     *string   `db:"notes"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

func (r symptomRow) toDomain() domain.Symptom {
	s := domain.Symptom{
		ID:        r.ID,
		UserID:    r.UserID,
		Date:      domain.DateOf(r.Date),
		Type:      domain.SymptomType(r.Type),
		Severity:  domain.Severity(r.Severity),
		Notes:     r.Notes,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
	if r.Mood != nil {
		m := domain.Mood(*r.Mood)
		s.Mood = &m
	}
	return s
}

func moodValue(m *domain.Mood) *string {
	if m == nil {
		return nil
	}
	s := string(*m)
	return &s
}

// Create inserts a symptom.
func (r *Repo) Create(ctx context.Context, s *domain.Symptom) (*domain.Symptom, error) {
	var row symptomRow
	query := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(s.ID, s.UserID, s.Date, string(s.Type), string(s.Severity), moodValue(s.Mood), s.Notes, s.CreatedAt, s.UpdatedAt).
		Suffix(postgres.Returning(columns))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "symptom", s.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// GetByID returns the user's symptom with the given id.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Symptom, error) {
	var row symptomRow
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id, "user_id": userID})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "symptom", id)
	}
	out := row.toDomain()
	return &out, nil
}

// List returns the user's symptoms matching f, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.Symptom, error) {
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"user_id": userID})
	query = postgres.ApplyTrackingFilter(query, f).OrderBy("date DESC", "created_at DESC")

	var rows []symptomRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "symptom", userID)
	}
	out := make([]domain.Symptom, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// Update overwrites the mutable fields of s.
func (r *Repo) Update(ctx context.Context, s *domain.Symptom) (*domain.Symptom, error) {
	var row symptomRow
	query := postgres.Builder().Update(table).
		Set("date", s.Date).
		Set("type", string(s.Type)).
		Set("severity", string(s.Severity)).
		Set("mood", moodValue(s.Mood)).
		Set("notes", s.Notes).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": s.ID, "user_id": s.UserID}).
		Suffix(postgres.Returning(columns))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "symptom", s.ID)
	}
	out := row.toDomain()
	return &out, nil
}

// Delete removes the user's symptom.
func (r *Repo) Delete(ctx context.Context, userID, id uuid.UUID) error {
	query := postgres.Builder().Delete(table).Where(sq.Eq{"id": id, "user_id": userID})
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return postgres.MapError(err, "symptom", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "symptom", id)
	}
	return nil
}
