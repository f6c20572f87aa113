package wire

import (
	"cinema-api/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireMovieSession(r chi.Router, h *adaptor.MovieSessionHandler) {
	r.Route("/api/movie-sessions", func(r chi.Router) {
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}
