package rest

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/internal/service/cycle"
)

var _ cycleService = &cycleServiceMock{}

type cycleServiceMock struct {
	CreatePeriodFunc     func(ctx context.Context, input cycle.CreatePeriodInput) (*domain.Period, error)
	DeletePeriodFunc     func(ctx context.Context, id uuid.UUID) error
	GetCurrentPhaseFunc  func(ctx context.Context, today *time.Time) (*cycle.PhaseResult, error)
	GetFertileWindowFunc func(ctx context.Context) (*cycle.FertileWindowResult, error)
	GetPeriodFunc        func(ctx context.Context, id uuid.UUID) (*domain.Period, error)
	GetPredictionFunc    func(ctx context.Context) (*cycle.Prediction, error)
	ListPeriodsFunc      func(ctx context.Context) ([]domain.Period, error)
	UpdatePeriodFunc     func(ctx context.Context, id uuid.UUID, input cycle.UpdatePeriodInput) (*domain.Period, error)

	calls struct {
		CreatePeriod []struct {
			Ctx   context.Context
			Input cycle.CreatePeriodInput
		}
		DeletePeriod []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetCurrentPhase []struct {
			Ctx   context.Context
			Today *time.Time
		}
		GetFertileWindow []struct {
			Ctx context.Context
		}
		GetPeriod []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetPrediction []struct {
			Ctx context.Context
		}
		ListPeriods []struct {
			Ctx context.Context
		}
		UpdatePeriod []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input cycle.UpdatePeriodInput
		}
	}
	lockCreatePeriod     sync.RWMutex
	lockDeletePeriod     sync.RWMutex
	lockGetCurrentPhase  sync.RWMutex
	lockGetFertileWindow sync.RWMutex
	lockGetPeriod        sync.RWMutex
	lockGetPrediction    sync.RWMutex
	lockListPeriods      sync.RWMutex
	lockUpdatePeriod     sync.RWMutex
}

func (mock *cycleServiceMock) CreatePeriod(ctx context.Context, input cycle.CreatePeriodInput) (*domain.Period, error) {
	if mock.CreatePeriodFunc == nil {
		panic("cycleServiceMock.CreatePeriodFunc: method is nil but cycleService.CreatePeriod was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input cycle.CreatePeriodInput
	}{Ctx: ctx, Input: input}
	mock.lockCreatePeriod.Lock()
	mock.calls.CreatePeriod = append(mock.calls.CreatePeriod, callInfo)
	mock.lockCreatePeriod.Unlock()
	return mock.CreatePeriodFunc(ctx, input)
}

func (mock *cycleServiceMock) CreatePeriodCalls() []struct {
	Ctx   context.Context
	Input cycle.CreatePeriodInput
} {
	mock.lockCreatePeriod.RLock()
	calls := mock.calls.CreatePeriod
	mock.lockCreatePeriod.RUnlock()
	return calls
}

func (mock *cycleServiceMock) DeletePeriod(ctx context.Context, id uuid.UUID) error {
	if mock.DeletePeriodFunc == nil {
		panic("cycleServiceMock.DeletePeriodFunc: method is nil but cycleService.DeletePeriod was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeletePeriod.Lock()
	mock.calls.DeletePeriod = append(mock.calls.DeletePeriod, callInfo)
	mock.lockDeletePeriod.Unlock()
	return mock.DeletePeriodFunc(ctx, id)
}

func (mock *cycleServiceMock) DeletePeriodCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeletePeriod.RLock()
	calls := mock.calls.DeletePeriod
	mock.lockDeletePeriod.RUnlock()
	return calls
}

func (mock *cycleServiceMock) GetCurrentPhase(ctx context.Context, today *time.Time) (*cycle.PhaseResult, error) {
	if mock.GetCurrentPhaseFunc == nil {
		panic("cycleServiceMock.GetCurrentPhaseFunc: method is nil but cycleService.GetCurrentPhase was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Today *time.Time
	}{Ctx: ctx, Today: today}
	mock.lockGetCurrentPhase.Lock()
	mock.calls.GetCurrentPhase = append(mock.calls.GetCurrentPhase, callInfo)
	mock.lockGetCurrentPhase.Unlock()
	return mock.GetCurrentPhaseFunc(ctx, today)
}

func (mock *cycleServiceMock) GetCurrentPhaseCalls() []struct {
	Ctx   context.Context
	Today *time.Time
} {
	mock.lockGetCurrentPhase.RLock()
	calls := mock.calls.GetCurrentPhase
	mock.lockGetCurrentPhase.RUnlock()
	return calls
}

func (mock *cycleServiceMock) GetFertileWindow(ctx context.Context) (*cycle.FertileWindowResult, error) {
	if mock.GetFertileWindowFunc == nil {
		panic("cycleServiceMock.GetFertileWindowFunc: method is nil but cycleService.GetFertileWindow was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetFertileWindow.Lock()
	mock.calls.GetFertileWindow = append(mock.calls.GetFertileWindow, callInfo)
	mock.lockGetFertileWindow.Unlock()
	return mock.GetFertileWindowFunc(ctx)
}

func (mock *cycleServiceMock) GetFertileWindowCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetFertileWindow.RLock()
	calls := mock.calls.GetFertileWindow
	mock.lockGetFertileWindow.RUnlock()
	return calls
}

func (mock *cycleServiceMock) GetPeriod(ctx context.Context, id uuid.UUID) (*domain.Period, error) {
	if mock.GetPeriodFunc == nil {
		panic("cycleServiceMock.GetPeriodFunc: method is nil but cycleService.GetPeriod was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetPeriod.Lock()
	mock.calls.GetPeriod = append(mock.calls.GetPeriod, callInfo)
	mock.lockGetPeriod.Unlock()
	return mock.GetPeriodFunc(ctx, id)
}

func (mock *cycleServiceMock) GetPeriodCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetPeriod.RLock()
	calls := mock.calls.GetPeriod
	mock.lockGetPeriod.RUnlock()
	return calls
}

func (mock *cycleServiceMock) GetPrediction(ctx context.Context) (*cycle.Prediction, error) {
	if mock.GetPredictionFunc == nil {
		panic("cycleServiceMock.GetPredictionFunc: method is nil but cycleService.GetPrediction was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockGetPrediction.Lock()
	mock.calls.GetPrediction = append(mock.calls.GetPrediction, callInfo)
	mock.lockGetPrediction.Unlock()
	return mock.GetPredictionFunc(ctx)
}

func (mock *cycleServiceMock) GetPredictionCalls() []struct {
	Ctx context.Context
} {
	mock.lockGetPrediction.RLock()
	calls := mock.calls.GetPrediction
	mock.lockGetPrediction.RUnlock()
	return calls
}

func (mock *cycleServiceMock) ListPeriods(ctx context.Context) ([]domain.Period, error) {
	if mock.ListPeriodsFunc == nil {
		panic("cycleServiceMock.ListPeriodsFunc: method is nil but cycleService.ListPeriods was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockListPeriods.Lock()
	mock.calls.ListPeriods = append(mock.calls.ListPeriods, callInfo)
	mock.lockListPeriods.Unlock()
	return mock.ListPeriodsFunc(ctx)
}

func (mock *cycleServiceMock) ListPeriodsCalls() []struct {
	Ctx context.Context
} {
	mock.lockListPeriods.RLock()
	calls := mock.calls.ListPeriods
	mock.lockListPeriods.RUnlock()
	return calls
}

func (mock *cycleServiceMock) UpdatePeriod(ctx context.Context, id uuid.UUID, input cycle.UpdatePeriodInput) (*domain.Period, error) {
	if mock.UpdatePeriodFunc == nil {
		panic("cycleServiceMock.UpdatePeriodFunc: method is nil but cycleService.UpdatePeriod was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input cycle.UpdatePeriodInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdatePeriod.Lock()
	mock.calls.UpdatePeriod = append(mock.calls.UpdatePeriod, callInfo)
	mock.lockUpdatePeriod.Unlock()
	return mock.UpdatePeriodFunc(ctx, id, input)
}

func (mock *cycleServiceMock) UpdatePeriodCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input cycle.UpdatePeriodInput
} {
	mock.lockUpdatePeriod.RLock()
	calls := mock.calls.UpdatePeriod
	mock.lockUpdatePeriod.RUnlock()
	return calls
}
