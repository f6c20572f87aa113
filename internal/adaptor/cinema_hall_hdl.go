package adaptor

import (
	"net/http"

	"cinema-api/internal/dto/request"
	"cinema-api/internal/usecase"
	"cinema-api/pkg/utils"

	"go.uber.org/zap"
)

type CinemaHallHandler struct {
	service usecase.CinemaHallService
	log     *zap.Logger
}

func NewCinemaHallHandler(service usecase.CinemaHallService, log *zap.Logger) *CinemaHallHandler {
	return &CinemaHallHandler{
		service: service,
		log:     log.With(zap.String("handler", "cinema_hall")),
	}
}

// List handles GET /api/cinema-halls
func (h *CinemaHallHandler) List(w http.ResponseWriter, r *http.Request) {
	halls, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list cinema halls")
		return
	}

	utils.ResponseSuccess(w, "Cinema halls retrieved successfully", halls)
}

// Get handles GET /api/cinema-halls/{id}
func (h *CinemaHallHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	hall, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get cinema hall")
		return
	}

	utils.ResponseSuccess(w, "Cinema hall retrieved successfully", hall)
}

// Create handles POST /api/cinema-halls
func (h *CinemaHallHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CinemaHallRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	hall, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create cinema hall")
		return
	}

	utils.ResponseCreated(w, "Cinema hall created successfully", hall)
}

// Update handles PUT /api/cinema-halls/{id}
func (h *CinemaHallHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req request.CinemaHallRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	hall, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update cinema hall")
		return
	}

	utils.ResponseSuccess(w, "Cinema hall updated successfully", hall)
}

// Delete handles DELETE /api/cinema-halls/{id}
func (h *CinemaHallHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete cinema hall")
		return
	}

	utils.ResponseSuccess(w, "Cinema hall deleted successfully", nil)
}
