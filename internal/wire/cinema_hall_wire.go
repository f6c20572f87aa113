package wire

import (
	"cinema-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireCinemaHall(r chi.Router, h *adaptor.CinemaHallHandler) {
	r.Route("/api/cinema-halls", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
