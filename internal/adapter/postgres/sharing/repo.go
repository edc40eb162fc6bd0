// Package sharing implements the sharing grant repository using PostgreSQL.
package sharing

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

const table = "sharing_grants"

var columns = []string{
	"id", "sharer_id", "partner_id",
	"share_period_dates", "share_symptoms", "share_activities", "share_health_metrics",
	"token_hash", "access_granted", "created_at", "updated_at",
}

// viewColumns selects a grant together with both participants' public profiles.
var viewColumns = []string{
	"g.id", "g.access_granted",
	"g.share_period_dates", "g.share_symptoms", "g.share_activities", "g.share_health_metrics",
	"s.id AS sharer_id", "s.name AS sharer_name", "s.email AS sharer_email",
	"p.id AS partner_id", "p.name AS partner_name", "p.email AS partner_email",
}

// Repo provides sharing grant persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new sharing grant repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type grantRow struct {
	ID                 uuid.UUID `db:"id"`
	SharerID           uuid.UUID `db:"sharer_id"`
	PartnerID          uuid.UUID `db:"partner_id"`
	SharePeriodDates   bool      `db:"share_period_dates"`
	ShareSymptoms      bool      `db:"share_symptoms"`
	ShareActivities    bool      `db:"share_activities"`
	ShareHealthMetrics bool      `db:"share_health_metrics"`
	TokenHash          string    `db:"token_hash"`
	AccessGranted      bool      `db:"access_granted"`
	CreatedAt          time.Time `db:"created_at"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func (r grantRow) toDomain() *domain.SharingGrant {
	return &domain.SharingGrant{
		ID:        r.ID,
		SharerID:  r.SharerID,
		PartnerID: r.PartnerID,
		Options: domain.SharedOptions{
			PeriodDates:   r.SharePeriodDates,
			Symptoms:      r.ShareSymptoms,
			Activities:    r.ShareActivities,
			HealthMetrics: r.ShareHealthMetrics,
		},
		TokenHash:     r.TokenHash,
		AccessGranted: r.AccessGranted,
		CreatedAt:     r.CreatedAt,
		UpdatedAt:     r.UpdatedAt,
	}
}

type viewRow struct {
	ID                 uuid.UUID `db:"id"`
	AccessGranted      bool      `db:"access_granted"`
	SharePeriodDates   bool      `db:"share_period_dates"`
	ShareSymptoms      bool      `db:"share_symptoms"`
	ShareActivities    bool      `db:"share_activities"`
	ShareHealthMetrics bool      `db:"share_health_metrics"`
	SharerID           uuid.UUID `db:"sharer_id"`
	SharerName         string    `db:"sharer_name"`
	SharerEmail        string    `db:"sharer_email"`
	PartnerID          uuid.UUID `db:"partner_id"`
	PartnerName        string    `db:"partner_name"`
	PartnerEmail       string    `db:"partner_email"`
}

func (r viewRow) toDomain() domain.GrantView {
	return domain.GrantView{
		ID:      r.ID,
		Sharer:  domain.PublicProfile{ID: r.SharerID, Name: r.SharerName, Email: r.SharerEmail},
		Partner: domain.PublicProfile{ID: r.PartnerID, Name: r.PartnerName, Email: r.PartnerEmail},
		Options: domain.SharedOptions{
			PeriodDates:   r.SharePeriodDates,
			Symptoms:      r.ShareSymptoms,
			Activities:    r.ShareActivities,
			HealthMetrics: r.ShareHealthMetrics,
		},
		AccessGranted: r.AccessGranted,
	}
}

// Create inserts a grant. A second grant for the same sharer fails with
// domain.ErrAlreadyExists (sharing_grants_one_per_sharer).
func (r *Repo) Create(ctx context.Context, g *domain.SharingGrant) (*domain.SharingGrant, error) {
	var row grantRow
	query := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(
			g.ID, g.SharerID, g.PartnerID,
			g.Options.PeriodDates, g.Options.Symptoms, g.Options.Activities, g.Options.HealthMetrics,
			g.TokenHash, g.AccessGranted, g.CreatedAt, g.UpdatedAt,
		).
		Suffix(postgres.Returning(columns))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "sharing_grant", g.ID)
	}
	return row.toDomain(), nil
}

// GetByID returns a grant regardless of owner; callers check ownership.
func (r *Repo) GetByID(ctx context.Context, id uuid.UUID) (*domain.SharingGrant, error) {
	var row grantRow
	query := postgres.Builder().Select(columns...).From(table).Where(sq.Eq{"id": id})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "sharing_grant", id)
	}
	return row.toDomain(), nil
}

// GetActiveByTokenHash returns the granted share whose token hashes to hash.
func (r *Repo) GetActiveByTokenHash(ctx context.Context, hash string) (*domain.SharingGrant, error) {
	var row grantRow
	query := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"token_hash": hash, "access_granted": true})
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "sharing_grant", uuid.Nil)
	}
	return row.toDomain(), nil
}

// UpdateOptions replaces the shared categories of a grant.
func (r *Repo) UpdateOptions(ctx context.Context, id uuid.UUID, opts domain.SharedOptions) (*domain.SharingGrant, error) {
	var row grantRow
	query := postgres.Builder().Update(table).
		Set("share_period_dates", opts.PeriodDates).
		Set("share_symptoms", opts.Symptoms).
		Set("share_activities", opts.Activities).
		Set("share_health_metrics", opts.HealthMetrics).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"id": id}).
		Suffix(postgres.Returning(columns))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "sharing_grant", id)
	}
	return row.toDomain(), nil
}

// Delete removes a grant; its token stops resolving immediately.
func (r *Repo) Delete(ctx context.Context, id uuid.UUID) error {
	query := postgres.Builder().Delete(table).Where(sq.Eq{"id": id})
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return postgres.MapError(err, "sharing_grant", id)
	}
	if n == 0 {
		return postgres.MapError(domain.ErrNotFound, "sharing_grant", id)
	}
	return nil
}

// ListBySharer returns the grants created by sharerID.
func (r *Repo) ListBySharer(ctx context.Context, sharerID uuid.UUID) ([]domain.GrantView, error) {
	return r.listViews(ctx, sq.Eq{"g.sharer_id": sharerID}, sharerID)
}

// ListByPartner returns the grants whose target is partnerID.
func (r *Repo) ListByPartner(ctx context.Context, partnerID uuid.UUID) ([]domain.GrantView, error) {
	return r.listViews(ctx, sq.Eq{"g.partner_id": partnerID}, partnerID)
}

func (r *Repo) listViews(ctx context.Context, where sq.Eq, userID uuid.UUID) ([]domain.GrantView, error) {
	query := postgres.Builder().Select(viewColumns...).
		From(table + " g").
		Join("users s ON s.id = g.sharer_id").
		Join("users p ON p.id = g.partner_id").
		Where(where).
		OrderBy("g.created_at DESC")

	var rows []viewRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "sharing_grant", userID)
	}
	out := make([]domain.GrantView, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
