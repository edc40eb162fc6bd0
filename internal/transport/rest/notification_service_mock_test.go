package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

var _ notificationService = &notificationServiceMock{}

type notificationServiceMock struct {
	ListNotificationsFunc func(ctx context.Context, unreadOnly bool) ([]domain.Notification, error)
	MarkAllReadFunc       func(ctx context.Context) (int64, error)
	MarkReadFunc          func(ctx context.Context, id uuid.UUID) (*domain.Notification, error)

	calls struct {
		ListNotifications []struct {
			Ctx        context.Context
			UnreadOnly bool
		}
		MarkAllRead []struct {
			Ctx context.Context
		}
		MarkRead []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
	}
	lockListNotifications sync.RWMutex
	lockMarkAllRead       sync.RWMutex
	lockMarkRead          sync.RWMutex
}

func (mock *notificationServiceMock) ListNotifications(ctx context.Context, unreadOnly bool) ([]domain.Notification, error) {
	if mock.ListNotificationsFunc == nil {
		panic("notificationServiceMock.ListNotificationsFunc: method is nil but notificationService.ListNotifications was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		UnreadOnly bool
	}{Ctx: ctx, UnreadOnly: unreadOnly}
	mock.lockListNotifications.Lock()
	mock.calls.ListNotifications = append(mock.calls.ListNotifications, callInfo)
	mock.lockListNotifications.Unlock()
	return mock.ListNotificationsFunc(ctx, unreadOnly)
}

func (mock *notificationServiceMock) ListNotificationsCalls() []struct {
	Ctx        context.Context
	UnreadOnly bool
} {
	mock.lockListNotifications.RLock()
	calls := mock.calls.ListNotifications
	mock.lockListNotifications.RUnlock()
	return calls
}

func (mock *notificationServiceMock) MarkAllRead(ctx context.Context) (int64, error) {
	if mock.MarkAllReadFunc == nil {
		panic("notificationServiceMock.MarkAllReadFunc: method is nil but notificationService.MarkAllRead was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockMarkAllRead.Lock()
	mock.calls.MarkAllRead = append(mock.calls.MarkAllRead, callInfo)
	mock.lockMarkAllRead.Unlock()
	return mock.MarkAllReadFunc(ctx)
}

func (mock *notificationServiceMock) MarkAllReadCalls() []struct {
	Ctx context.Context
} {
	mock.lockMarkAllRead.RLock()
	calls := mock.calls.MarkAllRead
	mock.lockMarkAllRead.RUnlock()
	return calls
}

func (mock *notificationServiceMock) MarkRead(ctx context.Context, id uuid.UUID) (*domain.Notification, error) {
	if mock.MarkReadFunc == nil {
		panic("notificationServiceMock.MarkReadFunc: method is nil but notificationService.MarkRead was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockMarkRead.Lock()
	mock.calls.MarkRead = append(mock.calls.MarkRead, callInfo)
	mock.lockMarkRead.Unlock()
	return mock.MarkReadFunc(ctx, id)
}

func (mock *notificationServiceMock) MarkReadCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockMarkRead.RLock()
	calls := mock.calls.MarkRead
	mock.lockMarkRead.RUnlock()
	return calls
}
