// Package httpserver wires the chi router: health probes, the optional
// metrics endpoint, rate-limited sign-in, and the session-guarded JSON API.
package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"gitea.jw6.us/james/pocketcal/internal/api"
	"gitea.jw6.us/james/pocketcal/internal/auth"
	"gitea.jw6.us/james/pocketcal/internal/clock"
	"gitea.jw6.us/james/pocketcal/internal/config"
	"gitea.jw6.us/james/pocketcal/internal/http/csrf"
	"gitea.jw6.us/james/pocketcal/internal/http/ratelimit"
	"gitea.jw6.us/james/pocketcal/internal/metrics"
	"gitea.jw6.us/james/pocketcal/internal/store"
)

// NewRouter wires all HTTP routes.
func NewRouter(cfg *config.Config, store *store.Store, authService *auth.Service, clk clock.Clock) http.Handler {
	r := chi.NewRouter()

	// Auth endpoints: 5 requests per second, burst of 10
	authRateLimiter := ratelimit.NewIPRateLimiter(rate.Limit(5), 10, 5*time.Minute, cfg.TrustedProxies)

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware())

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Get("/readyz", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := store.HealthCheck(ctx); err != nil {
			http.Error(w, "unready", http.StatusServiceUnavailable)
			return
		}

		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	if cfg.PrometheusEnabled {
		r.Get("/metrics", func(w http.ResponseWriter, r *http.Request) {
			metrics.Handler().ServeHTTP(w, r)
		})
	}

	apiHandler := api.NewHandler(cfg, store, authService, clk)

	r.Route("/auth", func(r chi.Router) {
		r.Use(authRateLimiter.Middleware())
		r.Post("/signin", apiHandler.SignIn)
		r.Post("/signout", apiHandler.SignOut)
	})

	r.Route("/api", func(r chi.Router) {
		r.Use(authService.RequireSession)
		r.Use(csrf.Middleware(cfg))

		r.Get("/grid/month", apiHandler.MonthGrid)
		r.Get("/grid/year", apiHandler.YearGrid)

		r.Get("/events", apiHandler.ListEvents)
		r.Post("/events", apiHandler.CreateEvent)
		r.Get("/events/next", apiHandler.NextEvent)
		r.Post("/events/{id}/pin", apiHandler.TogglePin)
		r.Delete("/events/{id}", apiHandler.DeleteEvent)

		r.Get("/view", apiHandler.GetView)
		r.Put("/view", apiHandler.PutView)
	})

	return r
}
