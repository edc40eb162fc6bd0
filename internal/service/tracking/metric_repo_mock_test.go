package tracking

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
)

var _ metricRepo = &metricRepoMock{}

type metricRepoMock struct {
	CreateFunc  func(ctx context.Context, v *domain.HealthMetric) (*domain.HealthMetric, error)
	DeleteFunc  func(ctx context.Context, userID uuid.UUID, id uuid.UUID) error
	GetByIDFunc func(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.HealthMetric, error)
	ListFunc    func(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.HealthMetric, error)
	UpdateFunc  func(ctx context.Context, v *domain.HealthMetric) (*domain.HealthMetric, error)

	calls struct {
		Create []struct {
			Ctx context.Context
			V   *domain.HealthMetric
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
			V   *domain.HealthMetric
		}
	}
	lockCreate  sync.RWMutex
	lockDelete  sync.RWMutex
	lockGetByID sync.RWMutex
	lockList    sync.RWMutex
	lockUpdate  sync.RWMutex
}

func (mock *metricRepoMock) Create(ctx context.Context, v *domain.HealthMetric) (*domain.HealthMetric, error) {
	if mock.CreateFunc == nil {
		panic("metricRepoMock.CreateFunc: method is nil but metricRepo.Create was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.HealthMetric
	}{Ctx: ctx, V: v}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, v)
}

func (mock *metricRepoMock) CreateCalls() []struct {
	Ctx context.Context
	V   *domain.HealthMetric
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}

func (mock *metricRepoMock) Delete(ctx context.Context, userID uuid.UUID, id uuid.UUID) error {
	if mock.DeleteFunc == nil {
		panic("metricRepoMock.DeleteFunc: method is nil but metricRepo.Delete was just called")
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

func (mock *metricRepoMock) DeleteCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockDelete.RLock()
	calls := mock.calls.Delete
	mock.lockDelete.RUnlock()
	return calls
}

func (mock *metricRepoMock) GetByID(ctx context.Context, userID uuid.UUID, id uuid.UUID) (*domain.HealthMetric, error) {
	if mock.GetByIDFunc == nil {
		panic("metricRepoMock.GetByIDFunc: method is nil but metricRepo.GetByID was just called")
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

func (mock *metricRepoMock) GetByIDCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	ID     uuid.UUID
} {
	mock.lockGetByID.RLock()
	calls := mock.calls.GetByID
	mock.lockGetByID.RUnlock()
	return calls
}

func (mock *metricRepoMock) List(ctx context.Context, userID uuid.UUID, f domain.TrackingFilter) ([]domain.HealthMetric, error) {
	if mock.ListFunc == nil {
		panic("metricRepoMock.ListFunc: method is nil but metricRepo.List was just called")
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

func (mock *metricRepoMock) ListCalls() []struct {
	Ctx    context.Context
	UserID uuid.UUID
	F      domain.TrackingFilter
} {
	mock.lockList.RLock()
	calls := mock.calls.List
	mock.lockList.RUnlock()
	return calls
}

func (mock *metricRepoMock) Update(ctx context.Context, v *domain.HealthMetric) (*domain.HealthMetric, error) {
	if mock.UpdateFunc == nil {
		panic("metricRepoMock.UpdateFunc: method is nil but metricRepo.Update was just called")
	}
	callInfo := struct {
		Ctx context.Context
		V   *domain.HealthMetric
	}{Ctx: ctx, V: v}
	mock.lockUpdate.Lock()
	mock.calls.Update = append(mock.calls.Update, callInfo)
	mock.lockUpdate.Unlock()
	return mock.UpdateFunc(ctx, v)
}

func (mock *metricRepoMock) UpdateCalls() []struct {
	Ctx context.Context
	V   *domain.HealthMetric
} {
	mock.lockUpdate.RLock()
	calls := mock.calls.Update
	mock.lockUpdate.RUnlock()
	return calls
}
