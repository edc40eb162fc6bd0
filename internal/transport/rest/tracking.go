package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/internal/service/tracking"
)

type trackingService interface {
	CreateSymptom(ctx context.Context, input tracking.CreateSymptomInput) (*domain.Symptom, error)
	GetSymptom(ctx context.Context, id uuid.UUID) (*domain.Symptom, error)
	ListSymptoms(ctx context.Context, f domain.TrackingFilter) ([]domain.Symptom, error)
	UpdateSymptom(ctx context.Context, id uuid.UUID, input tracking.UpdateSymptomInput) (*domain.Symptom, error)
	DeleteSymptom(ctx context.Context, id uuid.UUID) error
	SymptomReport(ctx context.Context, input tracking.ReportInput) ([]domain.Symptom, error)

	CreateActivity(ctx context.Context, input tracking.CreateActivityInput) (*domain.Activity, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*domain.Activity, error)
	ListActivities(ctx context.Context, f domain.TrackingFilter) ([]domain.Activity, error)
	UpdateActivity(ctx context.Context, id uuid.UUID, input tracking.UpdateActivityInput) (*domain.Activity, error)
	DeleteActivity(ctx context.Context, id uuid.UUID) error
	ActivityReport(ctx context.Context, input tracking.ReportInput) ([]domain.Activity, error)

	CreateMetric(ctx context.Context, input tracking.CreateMetricInput) (*domain.HealthMetric, error)
	GetMetric(ctx context.Context, id uuid.UUID) (*domain.HealthMetric, error)
	ListMetrics(ctx context.Context, f domain.TrackingFilter) ([]domain.HealthMetric, error)
	UpdateMetric(ctx context.Context, id uuid.UUID, input tracking.UpdateMetricInput) (*domain.HealthMetric, error)
	DeleteMetric(ctx context.Context, id uuid.UUID) error
	MetricReport(ctx context.Context, input tracking.ReportInput) ([]domain.HealthMetric, error)
}

// TrackingHandler serves symptoms, activities and health metrics.
type TrackingHandler struct {
	svc trackingService
	log *slog.Logger
}

// NewTrackingHandler creates a TrackingHandler.
func NewTrackingHandler(svc trackingService, logger *slog.Logger) *TrackingHandler {
	return &TrackingHandler{svc: svc, log: logger.With("handler", "tracking")}
}

// listFilter reads ?from=&to=&type= with an inclusive to.
func listFilter(r *http.Request) (domain.TrackingFilter, error) {
	q := r.URL.Query()
	f := domain.TrackingFilter{Type: q.Get("type")}
	if v := q.Get("from"); v != "" {
		t, err := domain.ParseDate(v)
		if err != nil {
			return f, domain.NewValidationError("from", "must be YYYY-MM-DD")
		}
		f.From = t
	}
	if v := q.Get("to"); v != "" {
		t, err := domain.ParseDate(v)
		if err != nil {
			return f, domain.NewValidationError("to", "must be YYYY-MM-DD")
		}
		f.To = domain.AddDays(t, 1)
	}
	return f, nil
}

// reportInput reads ?month=&year=&type=&severity=&mood=.
func reportInput(r *http.Request) (tracking.ReportInput, error) {
	q := r.URL.Query()
	in := tracking.ReportInput{
		Type:     q.Get("type"),
		Severity: domain.Severity(q.Get("severity")),
		Mood:     domain.Mood(q.Get("mood")),
	}
	var err error
	var ok bool
	if in.Month, ok, err = queryInt(r, "month"); err != nil {
		return in, err
	} else if !ok {
		return in, domain.NewValidationError("month", "required")
	}
	if in.Year, ok, err = queryInt(r, "year"); err != nil {
		return in, err
	} else if !ok {
		return in, domain.NewValidationError("year", "required")
	}
	return in, nil
}

// ---------------------------------------------------------------------------
// Symptoms
// ---------------------------------------------------------------------------

type symptomRequest struct {
	Date     date    `json:"date"`
	Type     string  `json:"type"`
	Severity string  `json:"severity"`
	Mood     *string `json:"mood"`
	Notes    *string `json:"notes"`
}

type symptomPatchRequest struct {
	Date     *date   `json:"date"`
	Type     *string `json:"type"`
	Severity *string `json:"severity"`
	Mood     *string `json:"mood"`
	Notes    *string `json:"notes"`
}

type symptomResponse struct {
	ID        string    `json:"id"`
	Date      date      `json:"date"`
	Type      string    `json:"type"`
	Severity  string    `json:"severity"`
	Mood      *string   `json:"mood,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CreateSymptom handles POST /symptoms.
func (h *TrackingHandler) CreateSymptom(w http.ResponseWriter, r *http.Request) {
	var req symptomRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.svc.CreateSymptom(r.Context(), tracking.CreateSymptomInput{
		Date:     req.Date.Time(),
		Type:     domain.SymptomType(req.Type),
		Severity: domain.Severity(req.Severity),
		Mood:     convertPtr[domain.Mood](req.Mood),
		Notes:    req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toSymptomResponse(*s))
}

// ListSymptoms handles GET /symptoms.
func (h *TrackingHandler) ListSymptoms(w http.ResponseWriter, r *http.Request) {
	f, err := listFilter(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	list, err := h.svc.ListSymptoms(r.Context(), f)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toSymptomResponse))
}

// GetSymptom handles GET /symptoms/{id}.
func (h *TrackingHandler) GetSymptom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	s, err := h.svc.GetSymptom(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSymptomResponse(*s))
}

// UpdateSymptom handles PATCH /symptoms/{id}.
func (h *TrackingHandler) UpdateSymptom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req symptomPatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	s, err := h.svc.UpdateSymptom(r.Context(), id, tracking.UpdateSymptomInput{
		Date:     datePtr(req.Date),
		Type:     convertPtr[domain.SymptomType](req.Type),
		Severity: convertPtr[domain.Severity](req.Severity),
		Mood:     convertPtr[domain.Mood](req.Mood),
		Notes:    req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSymptomResponse(*s))
}

// DeleteSymptom handles DELETE /symptoms/{id}.
func (h *TrackingHandler) DeleteSymptom(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteSymptom(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// SymptomReport handles GET /symptoms/report.
func (h *TrackingHandler) SymptomReport(w http.ResponseWriter, r *http.Request) {
	in, err := reportInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	list, err := h.svc.SymptomReport(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toSymptomResponse))
}

func toSymptomResponse(s domain.Symptom) symptomResponse {
	return symptomResponse{
		ID:        s.ID.String(),
		Date:      date(s.Date),
		Type:      s.Type.String(),
		Severity:  s.Severity.String(),
		Mood:      convertPtr[string](s.Mood),
		Notes:     s.Notes,
		CreatedAt: s.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Activities
// ---------------------------------------------------------------------------

type activityRequest struct {
	Date           date    `json:"date"`
	Type           string  `json:"type"`
	Duration       *int    `json:"duration"`
	ProtectionUsed *bool   `json:"protectionUsed"`
	Notes          *string `json:"notes"`
}

type activityPatchRequest struct {
	Date           *date   `json:"date"`
	Type           *string `json:"type"`
	Duration       *int    `json:"duration"`
	ProtectionUsed *bool   `json:"protectionUsed"`
	Notes          *string `json:"notes"`
}

type activityResponse struct {
	ID             string    `json:"id"`
	Date           date      `json:"date"`
	Type           string    `json:"type"`
	Duration       *int      `json:"duration,omitempty"`
	ProtectionUsed *bool     `json:"protectionUsed,omitempty"`
	Notes          *string   `json:"notes,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// CreateActivity handles POST /activities.
func (h *TrackingHandler) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req activityRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a, err := h.svc.CreateActivity(r.Context(), tracking.CreateActivityInput{
		Date:            req.Date.Time(),
		Type:            domain.ActivityType(req.Type),
		DurationMinutes: req.Duration,
		ProtectionUsed:  req.ProtectionUsed,
		Notes:           req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toActivityResponse(*a))
}

// ListActivities handles GET /activities.
func (h *TrackingHandler) ListActivities(w http.ResponseWriter, r *http.Request) {
	f, err := listFilter(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	list, err := h.svc.ListActivities(r.Context(), f)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toActivityResponse))
}

// GetActivity handles GET /activities/{id}.
func (h *TrackingHandler) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	a, err := h.svc.GetActivity(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponse(*a))
}

// UpdateActivity handles PATCH /activities/{id}.
func (h *TrackingHandler) UpdateActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req activityPatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	a, err := h.svc.UpdateActivity(r.Context(), id, tracking.UpdateActivityInput{
		Date:            datePtr(req.Date),
		Type:            convertPtr[domain.ActivityType](req.Type),
		DurationMinutes: req.Duration,
		ProtectionUsed:  req.ProtectionUsed,
		Notes:           req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toActivityResponse(*a))
}

// DeleteActivity handles DELETE /activities/{id}.
func (h *TrackingHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteActivity(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ActivityReport handles GET /activities/report.
func (h *TrackingHandler) ActivityReport(w http.ResponseWriter, r *http.Request) {
	in, err := reportInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	list, err := h.svc.ActivityReport(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toActivityResponse))
}

func toActivityResponse(a domain.Activity) activityResponse {
	return activityResponse{
		ID:             a.ID.String(),
		Date:           date(a.Date),
		Type:           a.Type.String(),
		Duration:       a.DurationMinutes,
		ProtectionUsed: a.ProtectionUsed,
		Notes:          a.Notes,
		CreatedAt:      a.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Health metrics
// ---------------------------------------------------------------------------

// metricValue is either a JSON number or {"systolic":N,"diastolic":N}.
type metricValue struct {
	domain.MetricValue
}

type bloodPressureJSON struct {
	Systolic  int `json:"systolic"`
	Diastolic int `json:"diastolic"`
}

func (v *metricValue) UnmarshalJSON(b []byte) error {
	var n float64
	if err := json.Unmarshal(b, &n); err == nil {
		v.MetricValue = domain.Numeric(n)
		return nil
	}
	var bp bloodPressureJSON
	if err := json.Unmarshal(b, &bp); err != nil {
		return err
	}
	v.MetricValue = domain.BloodPressure{Systolic: bp.Systolic, Diastolic: bp.Diastolic}
	return nil
}

func (v metricValue) MarshalJSON() ([]byte, error) {
	switch mv := v.MetricValue.(type) {
	case domain.Numeric:
		return json.Marshal(float64(mv))
	case domain.BloodPressure:
		return json.Marshal(bloodPressureJSON{Systolic: mv.Systolic, Diastolic: mv.Diastolic})
	default:
		return []byte("null"), nil
	}
}

func (v *metricValue) value() domain.MetricValue {
	if v == nil {
		return nil
	}
	return v.MetricValue
}

type metricRequest struct {
	Date  date         `json:"date"`
	Type  string       `json:"type"`
	Value *metricValue `json:"value"`
	Notes *string      `json:"notes"`
}

type metricPatchRequest struct {
	Date  *date        `json:"date"`
	Type  *string      `json:"type"`
	Value *metricValue `json:"value"`
	Notes *string      `json:"notes"`
}

type metricResponse struct {
	ID        string      `json:"id"`
	Date      date        `json:"date"`
	Type      string      `json:"type"`
	Value     metricValue `json:"value"`
	Notes     *string     `json:"notes,omitempty"`
	CreatedAt time.Time   `json:"createdAt"`
}

// CreateMetric handles POST /metrics.
func (h *TrackingHandler) CreateMetric(w http.ResponseWriter, r *http.Request) {
	var req metricRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	m, err := h.svc.CreateMetric(r.Context(), tracking.CreateMetricInput{
		Date:  req.Date.Time(),
		Type:  domain.MetricType(req.Type),
		Value: req.Value.value(),
		Notes: req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toMetricResponse(*m))
}

// ListMetrics handles GET /metrics.
func (h *TrackingHandler) ListMetrics(w http.ResponseWriter, r *http.Request) {
	f, err := listFilter(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	list, err := h.svc.ListMetrics(r.Context(), f)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toMetricResponse))
}

// GetMetric handles GET /metrics/{id}.
func (h *TrackingHandler) GetMetric(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	m, err := h.svc.GetMetric(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMetricResponse(*m))
}

// UpdateMetric handles PATCH /metrics/{id}.
func (h *TrackingHandler) UpdateMetric(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req metricPatchRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	m, err := h.svc.UpdateMetric(r.Context(), id, tracking.UpdateMetricInput{
		Date:  datePtr(req.Date),
		Type:  convertPtr[domain.MetricType](req.Type),
		Value: req.Value.value(),
		Notes: req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toMetricResponse(*m))
}

// DeleteMetric handles DELETE /metrics/{id}.
func (h *TrackingHandler) DeleteMetric(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.DeleteMetric(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// MetricReport handles GET /metrics/report.
func (h *TrackingHandler) MetricReport(w http.ResponseWriter, r *http.Request) {
	in, err := reportInput(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	list, err := h.svc.MetricReport(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(list, toMetricResponse))
}

func toMetricResponse(m domain.HealthMetric) metricResponse {
	return metricResponse{
		ID:        m.ID.String(),
		Date:      date(m.Date),
		Type:      m.Type.String(),
		Value:     metricValue{m.Value},
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt,
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// convertPtr converts between pointer-to-string-kinds, keeping nil.
func convertPtr[To, From ~string](v *From) *To {
	if v == nil {
		return nil
	}
	out := To(*v)
	return &out
}

func mapSlice[T, R any](in []T, fn func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, fn(v))
	}
	return out
}
