package reminder

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/pkg/ctxutil"
)

// ListNotifications returns the caller's notifications, newest first.
func (s *Service) ListNotifications(ctx context.Context, unreadOnly bool) ([]domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	list, err := s.notifications.List(ctx, userID, unreadOnly, ListLimit)
	if err != nil {
		return nil, fmt.Errorf("reminder.ListNotifications: %w", err)
	}
	return list, nil
}

// MarkRead marks one of the caller's notifications as read. Marking an
// already read notification keeps its original read time.
func (s *Service) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}
	n, err := s.notifications.MarkRead(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("reminder.MarkRead: %w", err)
	}
	return n, nil
}

// MarkAllRead marks every unread notification of the caller as read.
func (s *Service) MarkAllRead(ctx context.Context) (int64, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}
	n, err := s.notifications.MarkAllRead(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("reminder.MarkAllRead: %w", err)
	}
	s.log.InfoContext(ctx, "notifications marked read",
		slog.String("user_id", userID.String()),
		slog.Int64("count", n))
	return n, nil
}

// Cleanup deletes read notifications older than the retention period.
func (s *Service) Cleanup(ctx context.Context) (int64, error) {
	cutoff := s.now().Add(-s.cfg.Retention())
	n, err := s.notifications.DeleteReadBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("reminder.Cleanup: %w", err)
	}
	s.log.InfoContext(ctx, "read notifications deleted",
		slog.Int64("count", n),
		slog.Time("cutoff", cutoff))
	return n, nil
}
