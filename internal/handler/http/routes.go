package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(h.withTraceID)
	router.Use(h.withLogging)
	router.Use(middleware.Recoverer)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/login", h.login)
	})

	// routes behind the auth gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Get("/dashboard", h.dashboard)
		r.Post("/marketplace", h.addItem)
		r.Get("/marketplace", h.listItems)
		r.Delete("/marketplace/{id}", h.deleteItem)
		r.Get("/users/{id}", h.profile)
	})

	return router
}
