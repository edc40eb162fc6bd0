package domain

import (
	"time"

	"github.com/google/uuid"
)

// Notification is a message addressed to a user.
type Notification struct {
	ID      uuid.UUID
	UserID  uuid.UUID
	Type    NotificationType
	Message string
	// ForDate is the calendar day the notification refers to; reminders
	// are unique per (user, type, day).
	ForDate time.Time
	IsRead  bool
	SentAt  time.Time
	ReadAt  *time.Time
}
