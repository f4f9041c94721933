package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/register", h.register)
		r.Post("/api/auth/login", h.login)
	})

	// routes behind the bearer-token gate
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Put("/api/auth/change-password", h.changePassword)

		r.Get("/api/processos", h.listProcessos)
		r.Post("/api/processos", h.createProcesso)
		r.Put("/api/processos/{id}", h.updateProcesso)
		r.Post("/api/processos/{id}/historico", h.appendHistorico)
		r.Delete("/api/processos/{id}", h.deleteProcesso)
	})

	// the calendar surface is not token-gated
	router.Group(func(r chi.Router) {
		r.Get("/api/eventos", h.listEventos)
		r.Get("/api/eventos/periodo", h.listEventosByPeriodo)
		r.Get("/api/eventos/processo/{processoId}", h.listEventosByProcesso)
		r.Get("/api/eventos/{id}", h.getEvento)
		r.Post("/api/eventos", h.createEvento)
		r.Put("/api/eventos/{id}", h.updateEvento)
		r.Delete("/api/eventos/{id}", h.deleteEvento)
	})

	return router
}
