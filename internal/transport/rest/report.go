package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/heartmarshall/cyclecare-backend/internal/service/report"
)

type reportService interface {
	Summary(ctx context.Context) (*report.Summary, error)
}

// ReportHandler serves the health summary.
type ReportHandler struct {
	svc reportService
	log *slog.Logger
}

// NewReportHandler creates a ReportHandler.
func NewReportHandler(svc reportService, logger *slog.Logger) *ReportHandler {
	return &ReportHandler{svc: svc, log: logger.With("handler", "report")}
}

type summaryResponse struct {
	LastPeriodStart     date                  `json:"lastPeriodStart"`
	AvgCycleLength      any                   `json:"avgCycleLength"`
	NextPredictedPeriod date                  `json:"nextPredictedPeriod"`
	SymptomTrends       []string              `json:"symptomTrends"`
	ActivityTrends      []string              `json:"activityTrends"`
	Insight             string                `json:"insight"`
	Phase               string                `json:"phase"`
	FertileWindow       fertileWindowResponse `json:"fertileWindow"`
}

// notEnoughData is reported in place of an average built from a single period.
const notEnoughData = "Not enough data"

// Summary handles GET /reports/summary.
func (h *ReportHandler) Summary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.Summary(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	var avg any = notEnoughData
	if s.AvgCycleLength != nil {
		avg = *s.AvgCycleLength
	}

	writeJSON(w, http.StatusOK, summaryResponse{
		LastPeriodStart:     date(s.LastPeriodStart),
		AvgCycleLength:      avg,
		NextPredictedPeriod: date(s.NextPredictedPeriod),
		SymptomTrends:       s.SymptomTrends,
		ActivityTrends:      s.ActivityTrends,
		Insight:             s.Insight.Message(),
		Phase:               s.Phase.Label(),
		FertileWindow:       toFertileWindowResponse(s.Window),
	})
}
