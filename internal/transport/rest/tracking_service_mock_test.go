package rest

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/internal/service/tracking"
)

var _ trackingService = &trackingServiceMock{}

type trackingServiceMock struct {
	ActivityReportFunc func(ctx context.Context, input tracking.ReportInput) ([]domain.Activity, error)
	CreateActivityFunc func(ctx context.Context, input tracking.CreateActivityInput) (*domain.Activity, error)
	CreateMetricFunc   func(ctx context.Context, input tracking.CreateMetricInput) (*domain.HealthMetric, error)
	CreateSymptomFunc  func(ctx context.Context, input tracking.CreateSymptomInput) (*domain.Symptom, error)
	DeleteActivityFunc func(ctx context.Context, id uuid.UUID) error
	DeleteMetricFunc   func(ctx context.Context, id uuid.UUID) error
	DeleteSymptomFunc  func(ctx context.Context, id uuid.UUID) error
	GetActivityFunc    func(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	GetMetricFunc      func(ctx context.Context, id uuid.UUID) (*domain.HealthMetric, error)
	GetSymptomFunc     func(ctx context.Context, id uuid.UUID) (*domain.Symptom, error)
	ListActivitiesFunc func(ctx context.Context, f domain.TrackingFilter) ([]domain.Activity, error)
	ListMetricsFunc    func(ctx context.Context, f domain.TrackingFilter) ([]domain.HealthMetric, error)
	ListSymptomsFunc   func(ctx context.Context, f domain.TrackingFilter) ([]domain.Symptom, error)
	MetricReportFunc   func(ctx context.Context, input tracking.ReportInput) ([]domain.HealthMetric, error)
	SymptomReportFunc  func(ctx context.Context, input tracking.ReportInput) ([]domain.Symptom, error)
	UpdateActivityFunc func(ctx context.Context, id uuid.UUID, input tracking.UpdateActivityInput) (*domain.Activity, error)
	UpdateMetricFunc   func(ctx context.Context, id uuid.UUID, input tracking.UpdateMetricInput) (*domain.HealthMetric, error)
	UpdateSymptomFunc  func(ctx context.Context, id uuid.UUID, input tracking.UpdateSymptomInput) (*domain.Symptom, error)

	calls struct {
		ActivityReport []struct {
			Ctx   context.Context
			Input tracking.ReportInput
		}
		CreateActivity []struct {
			Ctx   context.Context
			Input tracking.CreateActivityInput
		}
		CreateMetric []struct {
			Ctx   context.Context
			Input tracking.CreateMetricInput
		}
		CreateSymptom []struct {
			Ctx   context.Context
			Input tracking.CreateSymptomInput
		}
		DeleteActivity []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteMetric []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		DeleteSymptom []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetActivity []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetMetric []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		GetSymptom []struct {
			Ctx context.Context
			ID  uuid.UUID
		}
		ListActivities []struct {
			Ctx context.Context
			F   domain.TrackingFilter
		}
		ListMetrics []struct {
			Ctx context.Context
			F   domain.TrackingFilter
		}
		ListSymptoms []struct {
			Ctx context.Context
			F   domain.TrackingFilter
		}
		MetricReport []struct {
			Ctx   context.Context
			Input tracking.ReportInput
		}
		SymptomReport []struct {
			Ctx   context.Context
			Input tracking.ReportInput
		}
		UpdateActivity []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input tracking.UpdateActivityInput
		}
		UpdateMetric []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input tracking.UpdateMetricInput
		}
		UpdateSymptom []struct {
			Ctx   context.Context
			ID    uuid.UUID
			Input tracking.UpdateSymptomInput
		}
	}
	lockActivityReport sync.RWMutex
	lockCreateActivity sync.RWMutex
	lockCreateMetric   sync.RWMutex
	lockCreateSymptom  sync.RWMutex
	lockDeleteActivity sync.RWMutex
	lockDeleteMetric   sync.RWMutex
	lockDeleteSymptom  sync.RWMutex
	lockGetActivity    sync.RWMutex
	lockGetMetric      sync.RWMutex
	lockGetSymptom     sync.RWMutex
	lockListActivities sync.RWMutex
	lockListMetrics    sync.RWMutex
	lockListSymptoms   sync.RWMutex
	lockMetricReport   sync.RWMutex
	lockSymptomReport  sync.RWMutex
	lockUpdateActivity sync.RWMutex
	lockUpdateMetric   sync.RWMutex
	lockUpdateSymptom  sync.RWMutex
}

func (mock *trackingServiceMock) ActivityReport(ctx context.Context, input tracking.ReportInput) ([]domain.Activity, error) {
	if mock.ActivityReportFunc == nil {
		panic("trackingServiceMock.ActivityReportFunc: method is nil but trackingService.ActivityReport was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tracking.ReportInput
	}{Ctx: ctx, Input: input}
	mock.lockActivityReport.Lock()
	mock.calls.ActivityReport = append(mock.calls.ActivityReport, callInfo)
	mock.lockActivityReport.Unlock()
	return mock.ActivityReportFunc(ctx, input)
}

func (mock *trackingServiceMock) ActivityReportCalls() []struct {
	Ctx   context.Context
	Input tracking.ReportInput
} {
	mock.lockActivityReport.RLock()
	calls := mock.calls.ActivityReport
	mock.lockActivityReport.RUnlock()
	return calls
}

func (mock *trackingServiceMock) CreateActivity(ctx context.Context, input tracking.CreateActivityInput) (*domain.Activity, error) {
	if mock.CreateActivityFunc == nil {
		panic("trackingServiceMock.CreateActivityFunc: method is nil but trackingService.CreateActivity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tracking.CreateActivityInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateActivity.Lock()
	mock.calls.CreateActivity = append(mock.calls.CreateActivity, callInfo)
	mock.lockCreateActivity.Unlock()
	return mock.CreateActivityFunc(ctx, input)
}

func (mock *trackingServiceMock) CreateActivityCalls() []struct {
	Ctx   context.Context
	Input tracking.CreateActivityInput
} {
	mock.lockCreateActivity.RLock()
	calls := mock.calls.CreateActivity
	mock.lockCreateActivity.RUnlock()
	return calls
}

func (mock *trackingServiceMock) CreateMetric(ctx context.Context, input tracking.CreateMetricInput) (*domain.HealthMetric, error) {
	if mock.CreateMetricFunc == nil {
		panic("trackingServiceMock.CreateMetricFunc: method is nil but trackingService.CreateMetric was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tracking.CreateMetricInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateMetric.Lock()
	mock.calls.CreateMetric = append(mock.calls.CreateMetric, callInfo)
	mock.lockCreateMetric.Unlock()
	return mock.CreateMetricFunc(ctx, input)
}

func (mock *trackingServiceMock) CreateMetricCalls() []struct {
	Ctx   context.Context
	Input tracking.CreateMetricInput
} {
	mock.lockCreateMetric.RLock()
	calls := mock.calls.CreateMetric
	mock.lockCreateMetric.RUnlock()
	return calls
}

func (mock *trackingServiceMock) CreateSymptom(ctx context.Context, input tracking.CreateSymptomInput) (*domain.Symptom, error) {
	if mock.CreateSymptomFunc == nil {
		panic("trackingServiceMock.CreateSymptomFunc: method is nil but trackingService.CreateSymptom was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tracking.CreateSymptomInput
	}{Ctx: ctx, Input: input}
	mock.lockCreateSymptom.Lock()
	mock.calls.CreateSymptom = append(mock.calls.CreateSymptom, callInfo)
	mock.lockCreateSymptom.Unlock()
	return mock.CreateSymptomFunc(ctx, input)
}

func (mock *trackingServiceMock) CreateSymptomCalls() []struct {
	Ctx   context.Context
	Input tracking.CreateSymptomInput
} {
	mock.lockCreateSymptom.RLock()
	calls := mock.calls.CreateSymptom
	mock.lockCreateSymptom.RUnlock()
	return calls
}

func (mock *trackingServiceMock) DeleteActivity(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteActivityFunc == nil {
		panic("trackingServiceMock.DeleteActivityFunc: method is nil but trackingService.DeleteActivity was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteActivity.Lock()
	mock.calls.DeleteActivity = append(mock.calls.DeleteActivity, callInfo)
	mock.lockDeleteActivity.Unlock()
	return mock.DeleteActivityFunc(ctx, id)
}

func (mock *trackingServiceMock) DeleteActivityCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteActivity.RLock()
	calls := mock.calls.DeleteActivity
	mock.lockDeleteActivity.RUnlock()
	return calls
}

func (mock *trackingServiceMock) DeleteMetric(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteMetricFunc == nil {
		panic("trackingServiceMock.DeleteMetricFunc: method is nil but trackingService.DeleteMetric was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteMetric.Lock()
	mock.calls.DeleteMetric = append(mock.calls.DeleteMetric, callInfo)
	mock.lockDeleteMetric.Unlock()
	return mock.DeleteMetricFunc(ctx, id)
}

func (mock *trackingServiceMock) DeleteMetricCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteMetric.RLock()
	calls := mock.calls.DeleteMetric
	mock.lockDeleteMetric.RUnlock()
	return calls
}

func (mock *trackingServiceMock) DeleteSymptom(ctx context.Context, id uuid.UUID) error {
	if mock.DeleteSymptomFunc == nil {
		panic("trackingServiceMock.DeleteSymptomFunc: method is nil but trackingService.DeleteSymptom was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockDeleteSymptom.Lock()
	mock.calls.DeleteSymptom = append(mock.calls.DeleteSymptom, callInfo)
	mock.lockDeleteSymptom.Unlock()
	return mock.DeleteSymptomFunc(ctx, id)
}

func (mock *trackingServiceMock) DeleteSymptomCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockDeleteSymptom.RLock()
	calls := mock.calls.DeleteSymptom
	mock.lockDeleteSymptom.RUnlock()
	return calls
}

func (mock *trackingServiceMock) GetActivity(ctx context.Context, id uuid.UUID) (*domain.Activity, error) {
	if mock.GetActivityFunc == nil {
		panic("trackingServiceMock.GetActivityFunc: method is nil but trackingService.GetActivity was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetActivity.Lock()
	mock.calls.GetActivity = append(mock.calls.GetActivity, callInfo)
	mock.lockGetActivity.Unlock()
	return mock.GetActivityFunc(ctx, id)
}

func (mock *trackingServiceMock) GetActivityCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetActivity.RLock()
	calls := mock.calls.GetActivity
	mock.lockGetActivity.RUnlock()
	return calls
}

func (mock *trackingServiceMock) GetMetric(ctx context.Context, id uuid.UUID) (*domain.HealthMetric, error) {
	if mock.GetMetricFunc == nil {
		panic("trackingServiceMock.GetMetricFunc: method is nil but trackingService.GetMetric was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetMetric.Lock()
	mock.calls.GetMetric = append(mock.calls.GetMetric, callInfo)
	mock.lockGetMetric.Unlock()
	return mock.GetMetricFunc(ctx, id)
}

func (mock *trackingServiceMock) GetMetricCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetMetric.RLock()
	calls := mock.calls.GetMetric
	mock.lockGetMetric.RUnlock()
	return calls
}

func (mock *trackingServiceMock) GetSymptom(ctx context.Context, id uuid.UUID) (*domain.Symptom, error) {
	if mock.GetSymptomFunc == nil {
		panic("trackingServiceMock.GetSymptomFunc: method is nil but trackingService.GetSymptom was just called")
	}
	callInfo := struct {
		Ctx context.Context
		ID  uuid.UUID
	}{Ctx: ctx, ID: id}
	mock.lockGetSymptom.Lock()
	mock.calls.GetSymptom = append(mock.calls.GetSymptom, callInfo)
	mock.lockGetSymptom.Unlock()
	return mock.GetSymptomFunc(ctx, id)
}

func (mock *trackingServiceMock) GetSymptomCalls() []struct {
	Ctx context.Context
	ID  uuid.UUID
} {
	mock.lockGetSymptom.RLock()
	calls := mock.calls.GetSymptom
	mock.lockGetSymptom.RUnlock()
	return calls
}

func (mock *trackingServiceMock) ListActivities(ctx context.Context, f domain.TrackingFilter) ([]domain.Activity, error) {
	if mock.ListActivitiesFunc == nil {
		panic("trackingServiceMock.ListActivitiesFunc: method is nil but trackingService.ListActivities was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.TrackingFilter
	}{Ctx: ctx, F: f}
	mock.lockListActivities.Lock()
	mock.calls.ListActivities = append(mock.calls.ListActivities, callInfo)
	mock.lockListActivities.Unlock()
	return mock.ListActivitiesFunc(ctx, f)
}

func (mock *trackingServiceMock) ListActivitiesCalls() []struct {
	Ctx context.Context
	F   domain.TrackingFilter
} {
	mock.lockListActivities.RLock()
	calls := mock.calls.ListActivities
	mock.lockListActivities.RUnlock()
	return calls
}

func (mock *trackingServiceMock) ListMetrics(ctx context.Context, f domain.TrackingFilter) ([]domain.HealthMetric, error) {
	if mock.ListMetricsFunc == nil {
		panic("trackingServiceMock.ListMetricsFunc: method is nil but trackingService.ListMetrics was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.TrackingFilter
	}{Ctx: ctx, F: f}
	mock.lockListMetrics.Lock()
	mock.calls.ListMetrics = append(mock.calls.ListMetrics, callInfo)
	mock.lockListMetrics.Unlock()
	return mock.ListMetricsFunc(ctx, f)
}

func (mock *trackingServiceMock) ListMetricsCalls() []struct {
	Ctx context.Context
	F   domain.TrackingFilter
} {
	mock.lockListMetrics.RLock()
	calls := mock.calls.ListMetrics
	mock.lockListMetrics.RUnlock()
	return calls
}

func (mock *trackingServiceMock) ListSymptoms(ctx context.Context, f domain.TrackingFilter) ([]domain.Symptom, error) {
	if mock.ListSymptomsFunc == nil {
		panic("trackingServiceMock.ListSymptomsFunc: method is nil but trackingService.ListSymptoms was just called")
	}
	callInfo := struct {
		Ctx context.Context
		F   domain.TrackingFilter
	}{Ctx: ctx, F: f}
	mock.lockListSymptoms.Lock()
	mock.calls.ListSymptoms = append(mock.calls.ListSymptoms, callInfo)
	mock.lockListSymptoms.Unlock()
	return mock.ListSymptomsFunc(ctx, f)
}

func (mock *trackingServiceMock) ListSymptomsCalls() []struct {
	Ctx context.Context
	F   domain.TrackingFilter
} {
	mock.lockListSymptoms.RLock()
	calls := mock.calls.ListSymptoms
	mock.lockListSymptoms.RUnlock()
	return calls
}

func (mock *trackingServiceMock) MetricReport(ctx context.Context, input tracking.ReportInput) ([]domain.HealthMetric, error) {
	if mock.MetricReportFunc == nil {
		panic("trackingServiceMock.MetricReportFunc: method is nil but trackingService.MetricReport was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tracking.ReportInput
	}{Ctx: ctx, Input: input}
	mock.lockMetricReport.Lock()
	mock.calls.MetricReport = append(mock.calls.MetricReport, callInfo)
	mock.lockMetricReport.Unlock()
	return mock.MetricReportFunc(ctx, input)
}

func (mock *trackingServiceMock) MetricReportCalls() []struct {
	Ctx   context.Context
	Input tracking.ReportInput
} {
	mock.lockMetricReport.RLock()
	calls := mock.calls.MetricReport
	mock.lockMetricReport.RUnlock()
	return calls
}

func (mock *trackingServiceMock) SymptomReport(ctx context.Context, input tracking.ReportInput) ([]domain.Symptom, error) {
	if mock.SymptomReportFunc == nil {
		panic("trackingServiceMock.SymptomReportFunc: method is nil but trackingService.SymptomReport was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Input tracking.ReportInput
	}{Ctx: ctx, Input: input}
	mock.lockSymptomReport.Lock()
	mock.calls.SymptomReport = append(mock.calls.SymptomReport, callInfo)
	mock.lockSymptomReport.Unlock()
	return mock.SymptomReportFunc(ctx, input)
}

func (mock *trackingServiceMock) SymptomReportCalls() []struct {
	Ctx   context.Context
	Input tracking.ReportInput
} {
	mock.lockSymptomReport.RLock()
	calls := mock.calls.SymptomReport
	mock.lockSymptomReport.RUnlock()
	return calls
}

func (mock *trackingServiceMock) UpdateActivity(ctx context.Context, id uuid.UUID, input tracking.UpdateActivityInput) (*domain.Activity, error) {
	if mock.UpdateActivityFunc == nil {
		panic("trackingServiceMock.UpdateActivityFunc: method is nil but trackingService.UpdateActivity was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input tracking.UpdateActivityInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdateActivity.Lock()
	mock.calls.UpdateActivity = append(mock.calls.UpdateActivity, callInfo)
	mock.lockUpdateActivity.Unlock()
	return mock.UpdateActivityFunc(ctx, id, input)
}

func (mock *trackingServiceMock) UpdateActivityCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input tracking.UpdateActivityInput
} {
	mock.lockUpdateActivity.RLock()
	calls := mock.calls.UpdateActivity
	mock.lockUpdateActivity.RUnlock()
	return calls
}

func (mock *trackingServiceMock) UpdateMetric(ctx context.Context, id uuid.UUID, input tracking.UpdateMetricInput) (*domain.HealthMetric, error) {
	if mock.UpdateMetricFunc == nil {
		panic("trackingServiceMock.UpdateMetricFunc: method is nil but trackingService.UpdateMetric was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input tracking.UpdateMetricInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdateMetric.Lock()
	mock.calls.UpdateMetric = append(mock.calls.UpdateMetric, callInfo)
	mock.lockUpdateMetric.Unlock()
	return mock.UpdateMetricFunc(ctx, id, input)
}

func (mock *trackingServiceMock) UpdateMetricCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input tracking.UpdateMetricInput
} {
	mock.lockUpdateMetric.RLock()
	calls := mock.calls.UpdateMetric
	mock.lockUpdateMetric.RUnlock()
	return calls
}

func (mock *trackingServiceMock) UpdateSymptom(ctx context.Context, id uuid.UUID, input tracking.UpdateSymptomInput) (*domain.Symptom, error) {
	if mock.UpdateSymptomFunc == nil {
		panic("trackingServiceMock.UpdateSymptomFunc: method is nil but trackingService.UpdateSymptom was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		ID    uuid.UUID
		Input tracking.UpdateSymptomInput
	}{Ctx: ctx, ID: id, Input: input}
	mock.lockUpdateSymptom.Lock()
	mock.calls.UpdateSymptom = append(mock.calls.UpdateSymptom, callInfo)
	mock.lockUpdateSymptom.Unlock()
	return mock.UpdateSymptomFunc(ctx, id, input)
}

func (mock *trackingServiceMock) UpdateSymptomCalls() []struct {
	Ctx   context.Context
	ID    uuid.UUID
	Input tracking.UpdateSymptomInput
} {
	mock.lockUpdateSymptom.RLock()
	calls := mock.calls.UpdateSymptom
	mock.lockUpdateSymptom.RUnlock()
	return calls
}
