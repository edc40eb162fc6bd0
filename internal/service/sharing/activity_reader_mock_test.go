package sharing

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

var _ activityReader = &activityReaderMock{}

type activityReaderMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.Activity, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.TrackingFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *activityReaderMock) List(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.Activity, error) {
	if mock.ListFunc == nil {
		panic("activityReaderMock.ListFunc: method is nil but activityReader.List was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		F      domain.TrackingFilter
	}{Ctx: ctx, UserID: userID, F: f}
	mock.lockList.Lock()
	mock.calls.List = append(mock.calls.List, callInfo)
	mock.lockList.Unlock()
	return mock.ListFunc(ctx, userID, f)
}

func (mock *activityReaderMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.TrackingFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
