package rest

import (
	"context"
	"sync"

	"github.com/heartmarshall/cyclecare-backend/internal/service/report"
)

var _ reportService = &reportServiceMock{}

type reportServiceMock struct {
	SummaryFunc func(ctx context.Context) (*report.Summary, error)

	calls struct {
		Summary []struct {
			Ctx context.Context
		}
	}
	lockSummary sync.RWMutex
}

func (mock *reportServiceMock) Summary(ctx context.Context) (*report.Summary, error) {
	if mock.SummaryFunc == nil {
		panic("reportServiceMock.SummaryFunc: method is nil but reportService.Summary was just called")
	}
	callInfo := struct {
		Ctx context.Context
	}{Ctx: ctx}
	mock.lockSummary.Lock()
	mock.calls.Summary = append(mock.calls.Summary, callInfo)
	mock.lockSummary.Unlock()
	return mock.SummaryFunc(ctx)
}

func (mock *reportServiceMock) SummaryCalls() []struct {
	Ctx context.Context
} {
	mock.lockSummary.RLock()
	calls := mock.calls.Summary
	mock.lockSummary.RUnlock()
	return calls
}
