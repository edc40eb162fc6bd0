package sharing

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

var _ symptomReader = &symptomReaderMock{}

type symptomReaderMock struct {
	ListFunc func(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.Symptom, error)

	calls struct {
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.TrackingFilter
		}
	}
	lockList sync.RWMutex
}

func (mock *symptomReaderMock) List(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.Symptom, error) {
	if mock.ListFunc == nil {
		panic("symptomReaderMock.ListFunc: method is nil but symptomReader.List was just called")
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

func (mock *symptomReaderMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.TrackingFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}
