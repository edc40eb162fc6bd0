package tracking

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

var _ symptomRepo = &symptomRepoMock{}

type symptomRepoMock struct {
	CreateFunc  func(ctx context.Context, v *domain.Symptom) (*domain.Symptom, error)
	DeleteFunc  func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Symptom, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.Symptom, error)
	UpdateFunc  func(ctx context.Context, v *domain.Symptom) (*domain.Symptom, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			V   *domain.Symptom
		}
		Delete []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		GetByID []struct {
			Ctx    context.Context
			UserID uuid.UUID
			ID     uuid.UUID
		}
		List []struct {
			Ctx    context.Context
			UserID uuid.UUID
			F      domain.TrackingFilter
		}
		Update []struct {
			Ctx context.Context
			V   *domain.Symptom
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *symptomRepoMock) Create(ctx context.Context, v *domain.Symptom) (*domain.Symptom, error) {
	if mock.CreateFunc == nil {
		panic("symptomRepoMock.CreateFunc: method is nil but symptomRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.Symptom
	}{Ctx: ctx, V: v}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *symptomRepoMock) CreateCalls() []struct {
	Ctx context.Context
	V   *domain.Symptom
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *symptomRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("symptomRepoMock.DeleteFunc: method is nil but symptomRepo.Delete was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockDelete.Lock()
	mock.calls.Delete = append(mock.calls.Delete, callInfo)
	mock.lockDelete.Unlock()
	return mock.DeleteFunc(ctx, userID, id)
}

func (mock *symptomRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *symptomRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.Symptom, error) {
	if mock.GetByIDFunc == nil {
		panic("symptomRepoMock.GetByIDFunc: method is nil but symptomRepo.GetByID was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		UserID uuid.UUID
		ID     uuid.UUID
	}{Ctx: ctx, UserID: userID, ID: id}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, callInfo)
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, userID, id)
}

func (mock *symptomRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *symptomRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.Symptom, error) {
	if mock.ListFunc == nil {
		panic("symptomRepoMock.ListFunc: method is nil but symptomRepo.List was just called")
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

func (mock *symptomRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.TrackingFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *symptomRepoMock) Update(ctx context.Context, v *domain.Symptom) (*domain.Symptom, error) {
	if mock.UpdateFunc == nil {
		panic("symptomRepoMock.UpdateFunc: method is nil but symptomRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.Symptom
	}{Ctx: ctx, V: v}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, v)
}

func (mock *symptomRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	V   *domain.Symptom
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
