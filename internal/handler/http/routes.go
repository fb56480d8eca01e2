package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Init wires every route. gatherer backs GET /metrics; a nil gatherer leaves
// the route out.
func (h *Handler) Init(gatherer prometheus.Gatherer) *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Get("/healthz", h.healthz)
	if gatherer != nil {
		router.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)
		r.Use(withBodyLimit(maxBodyBytes))

		r.Get("/version", h.getServerVersion)
		r.Get("/countries", h.countries)

		r.Group(func(r chi.Router) {
			r.Use(requireJSON)
			r.Post("/tin/validate", h.validateTIN)
			r.Post("/tin/validate/batch", h.validateBatch)
			r.Post("/admin/login", h.adminLogin)
		})

		// routes with authorization
		r.Group(func(r chi.Router) {
			r.Use(h.adminAuth)
			r.Get("/admin/locale-codes", h.listLocaleCodes)
			r.With(requireJSON).Put("/admin/locale-codes", h.replaceLocaleCodes)
		})
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
