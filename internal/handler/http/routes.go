package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/api/version/", h.getServerVersion)
		if h.metrics != nil {
			r.Handle("/metrics", h.metrics)
		}
	})

	router.Route("/api/wallet", func(r chi.Router) {
		r.Use(h.auth)
		if h.requestTimeout > 0 {
			r.Use(middleware.Timeout(h.requestTimeout))
		}

		r.Post("/create", h.create)
		r.Post("/open", h.open)
		r.Post("/restore", h.restore)
		r.Post("/close", h.close)
		r.Post("/destroy", h.destroy)
		r.Post("/send", h.send)
		r.Get("/status", h.status)
		r.Get("/accounts", h.accounts)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
