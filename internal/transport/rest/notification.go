package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

type notificationService interface {
	ListNotifications(ctx context.Context, unreadOnly bool) ([]domain.Notification, error)
	MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error)
	MarkAllRead(ctx context.Context) (int64, error)
}

// NotificationHandler serves the notification inbox.
type NotificationHandler struct {
	svc notificationService
	log *slog.Logger
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(svc notificationService, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{svc: svc, log: logger.With("handler", "notification")}
}

type notificationResponse struct {
	ID      string     `json:"id"`
	Type    string     `json:"type"`
	Message string     `json:"message"`
	ForDate date       `json:"forDate"`
	IsRead  bool       `json:"isRead"`
	SentAt  time.Time  `json:"sentAt"`
	ReadAt  *time.Time `json:"readAt,omitempty"`
}

// List handles GET /notifications?unread=true.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	unreadOnly := false
	if v := r.URL.Query().Get("unread"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("unread", "must be a boolean"))
			return
		}
		unreadOnly = b
	}

	list, err := h.svc.ListNotifications(r.Context(), unreadOnly)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toNotificationResponse))
}

// MarkRead handles POST /notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	n, err := h.svc.MarkRead(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toNotificationResponse(*n))
}

// MarkAllRead handles POST /notifications/read-all.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.MarkAllRead(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]int64{"updated": n})
}

func toNotificationResponse(n domain.Notification) notificationResponse {
	return notificationResponse{
		ID:      n.ID.String(),
		Type:    n.Type.String(),
		Message: n.Message,
		ForDate: date(n.ForDate),
		IsRead:  n.IsRead,
		SentAt:  n.SentAt,
		ReadAt:  n.ReadAt,
	}
}
