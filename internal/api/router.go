package api

import (
	"context"
	"net/http"

	_ "currencymon/docs"
	"currencymon/internal/handler"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	swagger "github.com/swaggo/http-swagger"
)

// Freshness is the staleness policy surface the router needs: it is consulted
// once per API request, before the handler runs, so stale rates are
// reconciled before being served.
type Freshness interface {
	EnsureFresh(ctx context.Context)
}

func NewRouter(h *handler.Handler, freshness Freshness) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(middleware.Heartbeat("/healthz"))

	// Swagger UI
	router.Get("/swagger/*", swagger.WrapHandler)

	router.Route("/api/v1", func(r chi.Router) {
		r.Use(ensureFresh(freshness))

		r.Get("/currencies", h.ListCurrencies)
		r.Post("/currencies", h.CreateCurrency)
		r.Get("/currencies/{id:[0-9]+}", h.GetCurrency)
		r.Put("/currencies/rates", h.UpdateRates)
		r.Delete("/currencies/{id:[0-9]+}", h.DeleteCurrency)

		r.Get("/users", h.ListUsers)
		r.Get("/users/{id:[0-9]+}", h.GetUserProfile)

		r.Get("/subscriptions", h.ListSubscriptions)
		r.Post("/subscriptions/toggle", h.ToggleSubscription)

		r.Post("/rates/refresh", h.RefreshRates)

		r.Get("/stats", h.GetStats)
	})
	return router
}

func ensureFresh(freshness Freshness) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			freshness.EnsureFresh(r.Context())
			next.ServeHTTP(w, r)
		})
	}
}
