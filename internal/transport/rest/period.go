package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/internal/service/cycle"
)

type cycleService interface {
	CreatePeriod(ctx context.Context, input cycle.CreatePeriodInput) (*domain.Period, error)
	ListPeriods(ctx context.Context) ([]domain.Period, error)
	GetPeriod(ctx context.Context, id uuid.UUID) (*domain.Period, error)
	UpdatePeriod(ctx context.Context, id uuid.UUID, input cycle.UpdatePeriodInput) (*domain.Period, error)
	DeletePeriod(ctx context.Context, id uuid.UUID) error
	GetPrediction(ctx context.Context) (*cycle.Prediction, error)
	GetFertileWindow(ctx context.Context) (*cycle.FertileWindowResult, error)
	GetCurrentPhase(ctx context.Context, today *time.Time) (*cycle.PhaseResult, error)
}

// CycleHandler serves period records and cycle predictions.
type CycleHandler struct {
	svc cycleService
	log *slog.Logger
}

// NewCycleHandler creates a CycleHandler.
func NewCycleHandler(svc cycleService, logger *slog.Logger) *CycleHandler {
	return &CycleHandler{svc: svc, log: logger.With("handler", "cycle")}
}

type createPeriodRequest struct {
	StartDate date `json:"startDate"`
	EndDate   date `json:"endDate"`
}

type updatePeriodRequest struct {
	StartDate *date `json:"startDate"`
	EndDate   *date `json:"endDate"`
}

type periodResponse struct {
	ID        string    `json:"id"`
	StartDate date      `json:"startDate"`
	EndDate   *date     `json:"endDate"`
	Length    int       `json:"length"`
	CreatedAt time.Time `json:"createdAt"`
}

type fertileWindowResponse struct {
	OvulationDate date `json:"ovulationDate"`
	FertileStart  date `json:"fertileStart"`
	FertileEnd    date `json:"fertileEnd"`
}

type predictionResponse struct {
	AvgCycleLength      int                   `json:"avgCycleLength"`
	NextPeriodStartDate date                  `json:"nextPeriodStartDate"`
	Insight             string                `json:"insight"`
	SampleSize          int                   `json:"sampleSize"`
	FertileWindow       fertileWindowResponse `json:"fertileWindow"`
}

type fertileResultResponse struct {
	fertileWindowResponse
	LastPeriodStart date `json:"lastPeriodStart"`
	CycleLength     int  `json:"cycleLength"`
}

type phaseResponse struct {
	Phase         string                `json:"phase"`
	Label         string                `json:"label"`
	Today         date                  `json:"today"`
	CycleDay      int                   `json:"cycleDay"`
	CycleLength   int                   `json:"cycleLength"`
	NextPeriod    date                  `json:"nextPeriod"`
	DaysUntilNext int                   `json:"daysUntilNext"`
	FertileWindow fertileWindowResponse `json:"fertileWindow"`
}

// CreatePeriod handles POST /periods.
func (h *CycleHandler) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	var req createPeriodRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.CreatePeriod(r.Context(), cycle.CreatePeriodInput{
		StartDate: req.StartDate.Time(),
		EndDate:   req.EndDate.Time(),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toPeriodResponse(*p))
}

// ListPeriods handles GET /periods.
func (h *CycleHandler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	periods, err := h.svc.ListPeriods(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPeriodResponses(periods))
}

// GetPeriod handles GET /periods/{id}.
func (h *CycleHandler) GetPeriod(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	p, err := h.svc.GetPeriod(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPeriodResponse(*p))
}

// UpdatePeriod handles PATCH /periods/{id}.
func (h *CycleHandler) UpdatePeriod(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updatePeriodRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	p, err := h.svc.UpdatePeriod(r.Context(), id, cycle.UpdatePeriodInput{
		StartDate: datePtr(req.StartDate),
		EndDate:   datePtr(req.EndDate),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toPeriodResponse(*p))
}

// DeletePeriod handles DELETE /periods/{id}.
func (h *CycleHandler) DeletePeriod(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeletePeriod(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Prediction handles GET /cycle/prediction.
func (h *CycleHandler) Prediction(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetPrediction(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, predictionResponse{
		AvgCycleLength:      p.AvgCycleLength,
		NextPeriodStartDate: date(p.NextPeriodStartDate),
		Insight:             p.Insight.Message(),
		SampleSize:          p.SampleSize,
		FertileWindow:       toFertileWindowResponse(p.Window),
	})
}

// FertileWindow handles GET /cycle/fertile-window.
func (h *CycleHandler) FertileWindow(w http.ResponseWriter, r *http.Request) {
	res, err := h.svc.GetFertileWindow(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, fertileResultResponse{
		fertileWindowResponse: toFertileWindowResponse(res.FertileWindow),
		LastPeriodStart:       date(res.LastPeriodStart),
		CycleLength:           res.CycleLength,
	})
}

// Phase handles GET /cycle/phase?today=YYYY-MM-DD.
func (h *CycleHandler) Phase(w http.ResponseWriter, r *http.Request) {
	var today *time.Time
	if v := r.URL.Query().Get("today"); v != "" {
		t, err := domain.ParseDate(v)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("today", "must be YYYY-MM-DD"))
			return
		}
		today = &t
	}

	res, err := h.svc.GetCurrentPhase(r.Context(), today)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, phaseResponse{
		Phase:         res.Phase.String(),
		Label:         res.Phase.Label(),
		Today:         date(res.Today),
		CycleDay:      res.CycleDay,
		CycleLength:   res.CycleLength,
		NextPeriod:    date(res.NextPeriod),
		DaysUntilNext: res.DaysUntilNext,
		FertileWindow: toFertileWindowResponse(res.Window),
	})
}

func toPeriodResponse(p domain.Period) periodResponse {
	return periodResponse{
		ID:        p.ID.String(),
		StartDate: date(p.StartDate),
		EndDate:   optionalDate(p.EndDate),
		Length:    p.Length,
		CreatedAt: p.CreatedAt,
	}
}

func toPeriodResponses(periods []domain.Period) []periodResponse {
	out := make([]periodResponse, 0, len(periods))
	for _, p := range periods {
		out = append(out, toPeriodResponse(p))
	}
	return out
}

func toFertileWindowResponse(fw domain.FertileWindow) fertileWindowResponse {
	return fertileWindowResponse{
		OvulationDate: date(fw.OvulationDate),
		FertileStart:  date(fw.FertileStart),
		FertileEnd:    date(fw.FertileEnd),
	}
}
