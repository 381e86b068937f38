package http

import (
	"net/http"

	"github.com/MKhiriev/go-career-guide/internal/app"
	"github.com/MKhiriev/go-career-guide/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(h.withMetrics)
	if h.cfg.RequestTimeout > 0 {
		router.Use(middleware.Timeout(h.cfg.RequestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/register", h.register)
		r.Post("/session", h.createSession)
		r.Get("/session/federated", h.startFederatedSession)
		r.Get("/session/federated/callback", h.finishFederatedSession)

		if !h.cfg.ProfileOwnershipCheck {
			r.Get("/profile", h.getProfile)
		}

		r.Get("/version", h.getServerVersion)
		r.Method(http.MethodGet, "/metrics", promhttp.Handler())
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		if h.cfg.ProfileOwnershipCheck {
			r.Get("/profile", h.getProfile)
		}
		r.Post("/profile", h.updateProfile)

		r.Get("/jobs", h.recommendJobs)
		r.Get("/resources", h.recommendResources)
		r.Get("/skills", h.analyzeSkills)
		r.Get("/resume", h.buildResume)
	})

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		utils.WriteError(w, app.MsgNotFound, http.StatusNotFound)
	})
	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
