package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/cyclecare-backend/internal/domain"
	"github.com/heartmarshall/cyclecare-backend/internal/service/sharing"
)

type sharingService interface {
	CreateGrant(ctx context.Context, input sharing.CreateGrantInput) (*sharing.CreateGrantResult, error)
	UpdateOptions(ctx context.Context, grantID uuid.UUID, opts domain.SharedOptions) (*domain.SharingGrant, error)
	Revoke(ctx context.Context, grantID uuid.UUID) error
	ListForSharer(ctx context.Context) ([]domain.GrantView, error)
	ListForPartner(ctx context.Context) ([]domain.GrantView, error)
	ResolveByToken(ctx context.Context, token string) (*domain.SharedPayload, error)
}

// SharingHandler serves partner sharing grants and the public shared view.
type SharingHandler struct {
	svc sharingService
	log *slog.Logger
}

// NewSharingHandler creates a SharingHandler.
func NewSharingHandler(svc sharingService, logger *slog.Logger) *SharingHandler {
	return &SharingHandler{svc: svc, log: logger.With("handler", "sharing")}
}

type sharedOptionsJSON struct {
	PeriodDates   bool `json:"periodDates"`
	Symptoms      bool `json:"symptoms"`
	Activities    bool `json:"activities"`
	HealthMetrics bool `json:"healthMetrics"`
}

func (o sharedOptionsJSON) toDomain() domain.SharedOptions {
	return domain.SharedOptions{
		PeriodDates:   o.PeriodDates,
		Symptoms:      o.Symptoms,
		Activities:    o.Activities,
		HealthMetrics: o.HealthMetrics,
	}
}

func toSharedOptionsJSON(o domain.SharedOptions) sharedOptionsJSON {
	return sharedOptionsJSON{
		PeriodDates:   o.PeriodDates,
		Symptoms:      o.Symptoms,
		Activities:    o.Activities,
		HealthMetrics: o.HealthMetrics,
	}
}

type createGrantRequest struct {
	PartnerEmail string            `json:"partnerEmail"`
	Options      sharedOptionsJSON `json:"sharedOptions"`
}

type updateGrantRequest struct {
	Options sharedOptionsJSON `json:"sharedOptions"`
}

type grantResponse struct {
	ID            string            `json:"id"`
	PartnerEmail  string            `json:"partnerEmail"`
	Options       sharedOptionsJSON `json:"sharedOptions"`
	AccessGranted bool              `json:"accessGranted"`
}

type createGrantResponse struct {
	grantResponse
	// Token is returned once; only its hash is stored.
	Token string `json:"token"`
}

type profileResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type grantViewResponse struct {
	ID            string            `json:"id"`
	Sharer        profileResponse   `json:"sharer"`
	Partner       profileResponse   `json:"partner"`
	Options       sharedOptionsJSON `json:"sharedOptions"`
	AccessGranted bool              `json:"accessGranted"`
}

type sharedPayloadResponse struct {
	Sharer        profileResponse    `json:"sharer"`
	Options       sharedOptionsJSON  `json:"sharedOptions"`
	// A category is present, possibly as [], exactly when it is shared.
	Periods       []periodResponse   `json:"periods,omitzero"`
	Symptoms      []symptomResponse  `json:"symptoms,omitzero"`
	Activities    []activityResponse `json:"activities,omitzero"`
	HealthMetrics []metricResponse   `json:"healthMetrics,omitzero"`
}

// Create handles POST /shares.
func (h *SharingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createGrantRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	res, err := h.svc.CreateGrant(r.Context(), sharing.CreateGrantInput{
		PartnerEmail: req.PartnerEmail,
		Options:      req.Options.toDomain(),
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, createGrantResponse{
		grantResponse: toGrantResponse(*res.Grant),
		Token:         res.Token,
	})
}

// ListGiven handles GET /shares.
func (h *SharingHandler) ListGiven(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListForSharer(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(views, toGrantViewResponse))
}

// ListReceived handles GET /shares/received.
func (h *SharingHandler) ListReceived(w http.ResponseWriter, r *http.Request) {
	views, err := h.svc.ListForPartner(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSlice(views, toGrantViewResponse))
}

// Update handles PATCH /shares/{id}.
func (h *SharingHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	var req updateGrantRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	g, err := h.svc.UpdateOptions(r.Context(), id, req.Options.toDomain())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGrantResponse(*g))
}

// Revoke handles DELETE /shares/{id}.
func (h *SharingHandler) Revoke(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}
	if err := h.svc.Revoke(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Shared handles GET /shared/{token}. No authentication; the token is the
// credential.
func (h *SharingHandler) Shared(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.ResolveByToken(r.Context(), chi.URLParam(r, "token"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, sharedPayloadResponse{
		Sharer:        toProfileResponse(p.Sharer),
		Options:       toSharedOptionsJSON(p.Options),
		Periods:       mapShared(p.Periods, toPeriodResponse),
		Symptoms:      mapShared(p.Symptoms, toSymptomResponse),
		Activities:    mapShared(p.Activities, toActivityResponse),
		HealthMetrics: mapShared(p.HealthMetrics, toMetricResponse),
	})
}

// mapShared is mapSlice that keeps a nil (not shared) category nil.
func mapShared[T, R any](in []T, fn func(T) R) []R {
	if in == nil {
		return nil
	}
	return mapSlice(in, fn)
}

func toGrantResponse(g domain.SharingGrant) grantResponse {
	return grantResponse{
		ID:            g.ID.String(),
		PartnerEmail:  g.PartnerEmail,
		Options:       toSharedOptionsJSON(g.Options),
		AccessGranted: g.AccessGranted,
	}
}

func toGrantViewResponse(v domain.GrantView) grantViewResponse {
	return grantViewResponse{
		ID:            v.ID.String(),
		Sharer:        toProfileResponse(v.Sharer),
		Partner:       toProfileResponse(v.Partner),
		Options:       toSharedOptionsJSON(v.Options),
		AccessGranted: v.AccessGranted,
	}
}

func toProfileResponse(p domain.PublicProfile) profileResponse {
	return profileResponse{ID: p.ID.String(), Name: p.Name, Email: p.Email}
}
