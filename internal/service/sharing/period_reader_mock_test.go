package sharing

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

var _ periodReader = &periodReaderMock{}

type periodReaderMock struct {
	ListByUserFunc func(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Period, error)

	calls struct {
		ListByUser []struct {
			Ctx    context.Context
			UserID uuid.UUID
			Limit  int
		}
	}
	lockListByUser sync.RWMutex
}

func (mock *periodReaderMock) ListByUser(ctx context.Context, userID uuid.UUID, limit int) ([]domain.Period, error) {
	if mock.ListByUserFunc == nil {
		panic("periodReaderMock.ListByUserFunc: method is nil but periodReader.ListByUser was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		Limit  int
	}{Ctx: ctx, UserID: userID, Limit: limit}
	mock.lockListByUser.Lock()
	mock.calls.ListByUser = append(mock.calls.ListByUser, callInfo)
	mock.lockListByUser.Unlock()
	return mock.ListByUserFunc(ctx, userID, limit)
}

func (mock *periodReaderMock) ListByUserCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	Limit  int
} {
	mock.lockListByUser.RLock()
	calls := mock.calls.ListByUser
	mock.lockListByUser.RUnlock()
	return calls
}
