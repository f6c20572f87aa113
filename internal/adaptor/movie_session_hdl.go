package adaptor

import (
	"net/http"
	"strings"

	"cinema-api/internal/dto/request"
	"cinema-api/internal/usecase"
	"cinema-api/pkg/utils"

	"go.uber.org/zap"
)

type MovieSessionHandler struct {
	service usecase.MovieSessionService
	log     *zap.Logger
}

func NewMovieSessionHandler(service usecase.MovieSessionService, log *zap.Logger) *MovieSessionHandler {
	return &MovieSessionHandler{
		service: service,
		log:     log.With(zap.String("handler", "movie_session")),
	}
}

// List handles GET /api/movie-sessions?date=YYYY-MM-DD&movie={id}
func (h *MovieSessionHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	filter := request.MovieSessionFilter{
		Date: strings.TrimSpace(query.Get("date")),
	}

	if raw := strings.TrimSpace(query.Get("movie")); raw != "" {
		movieID, err := utils.ParseID(raw)
		if err != nil {
			utils.ResponseBadRequest(w, "Invalid movie filter", map[string]string{"movie": err.Error()})
			return
		}
		filter.MovieID = &movieID
	}

	if validationErrors := utils.ValidateStruct(filter); len(validationErrors) > 0 {
		utils.ResponseBadRequest(w, "Invalid date filter", validationErrors)
		return
	}

	sessions, err := h.service.List(r.Context(), filter)
	if err != nil {
		handleServiceError(w, h.log, err, "list movie sessions")
		return
	}

	utils.ResponseSuccess(w, "Movie sessions retrieved successfully", sessions)
}

// Get handles GET /api/movie-sessions/{id}
func (h *MovieSessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	session, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get movie session")
		return
	}

	utils.ResponseSuccess(w, "Movie session retrieved successfully", session)
}

// Create handles POST /api/movie-sessions
func (h *MovieSessionHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.MovieSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create movie session")
		return
	}

	utils.ResponseCreated(w, "Movie session created successfully", session)
}

// Update handles PUT /api/movie-sessions/{id}
func (h *MovieSessionHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req request.MovieSessionRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	session, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update movie session")
		return
	}

	utils.ResponseSuccess(w, "Movie session updated successfully", session)
}

// Delete handles DELETE /api/movie-sessions/{id}
func (h *MovieSessionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete movie session")
		return
	}

	utils.ResponseSuccess(w, "Movie session deleted successfully", nil)
}
