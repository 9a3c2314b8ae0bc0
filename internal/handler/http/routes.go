package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)
	if h.requestTimeout > 0 {
		router.Use(middleware.Timeout(h.requestTimeout))
	}

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/users", h.register)
		r.Post("/users/auth", h.login)
		r.Get("/version", h.getServerVersion)
	})

	// routes with bearer token
	router.Group(func(r chi.Router) {
		r.Use(h.auth)
		r.Get("/protected", h.protected)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
