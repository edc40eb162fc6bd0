// Package notification implements the notification repository using PostgreSQL.
package notification

import (
	"context"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/adapter/postgres"
	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

const table = "notifications"

var columns = []string{"id", "user_id", "type", "message", "for_date", "is_read", "sent_at", "read_at"}

// Repo provides notification persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new notification repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

type notificationRow struct {
	ID      uuid.UUID  `db:"id"`
	UserID  uuid.UUID  `db:"user_id"`
	Type    string     `db:"type"`
	Message string     `db:"message"`
	ForDate time.Time  `db:"for_date"`
	IsRead  bool       `db:"is_read"`
	SentAt  time.Time  `db:"sent_at"`
	ReadAt  *time.Time `db:"read_at"`
}

func (r notificationRow) toDomain() domain.Notification {
	return domain.Notification{
		ID:      r.ID,
		UserID:  r.UserID,
		Type:    domain.NotificationType(r.Type),
		Message: r.Message,
		ForDate: domain.DateOf(r.ForDate),
		IsRead:  r.IsRead,
		SentAt:  r.SentAt,
		ReadAt:  r.ReadAt,
	}
}

// Create inserts n unless a reminder of the same type already exists for
// the user and day. It reports whether a row was written.
func (r *Repo) Create(ctx context.Context, n *domain.Notification) (bool, error) {
	query := postgres.Builder().Insert(table).
		Columns(columns...).
		Values(n.ID, n.UserID, string(n.Type), n.Message, n.ForDate, n.IsRead, n.SentAt, n.ReadAt).
		Suffix("ON CONFLICT DO NOTHING")
	affected, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return false, postgres.MapError(err, "notification", n.ID)
	}
	return affected > 0, nil
}

// List returns the user's notifications, newest first.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, unreadOnly bool, limit int) ([]domain.Notification, error) {
	query := postgres.Builder().Select(columns...).From(table).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("sent_at DESC")
	if unreadOnly {
		query = query.Where(sq.Eq{"is_read": false})
	}
	if limit > 0 {
		query = query.Limit(uint64(limit))
	}

	var rows []notificationRow
	if err := postgres.Select(ctx, postgres.QuerierFromCtx(ctx, r.db), &rows, query); err != nil {
		return nil, postgres.MapError(err, "notification", userID)
	}
	out := make([]domain.Notification, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}

// MarkRead marks one of the user's notifications as read.
func (r *Repo) MarkRead(ctx context.Context, userID, id uuid.UUID) (*domain.Notification, error) {
	var row notificationRow
	query := postgres.Builder().Update(table).
		Set("is_read", true).
		Set("read_at", sq.Expr("COALESCE(read_at, now())")).
		Where(sq.Eq{"id": id, "user_id": userID}).
		Suffix(postgres.Returning(columns))
	if err := postgres.Get(ctx, postgres.QuerierFromCtx(ctx, r.db), &row, query); err != nil {
		return nil, postgres.MapError(err, "notification", id)
	}
	out := row.toDomain()
	return &out, nil
}

// MarkAllRead marks every unread notification of the user as read and
// returns how many changed.
func (r *Repo) MarkAllRead(ctx context.Context, userID uuid.UUID) (int64, error) {
	query := postgres.Builder().Update(table).
		Set("is_read", true).
		Set("read_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID, "is_read": false})
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return 0, postgres.MapError(err, "notification", userID)
	}
	return n, nil
}

// DeleteReadBefore removes read notifications sent before cutoff.
func (r *Repo) DeleteReadBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	query := postgres.Builder().Delete(table).
		Where(sq.Eq{"is_read": true}).
		Where(sq.Lt{"sent_at": cutoff})
	n, err := postgres.Exec(ctx, postgres.QuerierFromCtx(ctx, r.db), query)
	if err != nil {
		return 0, postgres.MapError(err, "notification", uuid.Nil)
	}
	return n, nil
}
