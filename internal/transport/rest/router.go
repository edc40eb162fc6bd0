package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/cyclecare-backend/internal/transport/middleware"
)

// RouterConfig collects the handlers and middleware served by NewRouter.
type RouterConfig struct {
	Auth          *AuthHandler
	Cycle         *CycleHandler
	Tracking      *TrackingHandler
	Report        *ReportHandler
	Sharing       *SharingHandler
	Notifications *NotificationHandler
	Health        *HealthHandler

	// Global middleware, outermost first.
	Middleware []middleware.Middleware
	// Authenticate resolves the bearer token; required routes are then
	// guarded by middleware.RequireUser.
	Authenticate middleware.Middleware
	// AuthLimit and SharedLimit throttle login/registration and the public
	// shared link.
	AuthLimit   middleware.Middleware
	SharedLimit middleware.Middleware
}

// NewRouter builds the HTTP routing tree: probes at the root and the JSON
// API under /api/v1.
func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(cfg.Middleware...)

	r.Get("/live", cfg.Health.Live)
	r.Get("/ready", cfg.Health.Ready)
	r.Get("/health", cfg.Health.Health)

	r.Route("/api/v1", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			if cfg.AuthLimit != nil {
				r.Use(cfg.AuthLimit)
			}
			r.Post("/auth/register", cfg.Auth.Register)
			r.Post("/auth/login", cfg.Auth.Login)
		})

		r.Group(func(r chi.Router) {
			if cfg.SharedLimit != nil {
				r.Use(cfg.SharedLimit)
			}
			r.Get("/shared/{token}", cfg.Sharing.Shared)
		})

		r.Group(func(r chi.Router) {
			r.Use(cfg.Authenticate, middleware.RequireUser)

			r.Get("/me", cfg.Auth.Me)
			r.Patch("/me", cfg.Auth.UpdateMe)

			r.Route("/periods", func(r chi.Router) {
				r.Post("/", cfg.Cycle.CreatePeriod)
				r.Get("/", cfg.Cycle.ListPeriods)
				r.Get("/{id}", cfg.Cycle.GetPeriod)
				r.Patch("/{id}", cfg.Cycle.UpdatePeriod)
				r.Delete("/{id}", cfg.Cycle.DeletePeriod)
			})

			r.Route("/cycle", func(r chi.Router) {
				r.Get("/prediction", cfg.Cycle.Prediction)
				r.Get("/fertile-window", cfg.Cycle.FertileWindow)
				r.Get("/phase", cfg.Cycle.Phase)
			})

			t := cfg.Tracking
			r.Route("/symptoms", func(r chi.Router) {
				r.Post("/", t.CreateSymptom)
				r.Get("/", t.ListSymptoms)
				r.Get("/report", t.SymptomReport)
				r.Get("/{id}", t.GetSymptom)
				r.Patch("/{id}", t.UpdateSymptom)
				r.Delete("/{id}", t.DeleteSymptom)
			})
			r.Route("/activities", func(r chi.Router) {
				r.Post("/", t.CreateActivity)
				r.Get("/", t.ListActivities)
				r.Get("/report", t.ActivityReport)
				r.Get("/{id}", t.GetActivity)
				r.Patch("/{id}", t.UpdateActivity)
				r.Delete("/{id}", t.DeleteActivity)
			})
			r.Route("/metrics", func(r chi.Router) {
				r.Post("/", t.CreateMetric)
				r.Get("/", t.ListMetrics)
				r.Get("/report", t.MetricReport)
				r.Get("/{id}", t.GetMetric)
				r.Patch("/{id}", t.UpdateMetric)
				r.Delete("/{id}", t.DeleteMetric)
			})

			r.Get("/reports/summary", cfg.Report.Summary)

			r.Route("/shares", func(r chi.Router) {
				r.Post("/", cfg.Sharing.Create)
				r.Get("/", cfg.Sharing.ListGiven)
				r.Get("/received", cfg.Sharing.ListReceived)
				r.Patch("/{id}", cfg.Sharing.Update)
				r.Delete("/{id}", cfg.Sharing.Revoke)
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", cfg.Notifications.List)
				r.Post("/read-all", cfg.Notifications.MarkAllRead)
				r.Post("/{id}/read", cfg.Notifications.MarkRead)
			})
		})
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found", "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method_not_allowed", "method not allowed")
	})

	return r
}
