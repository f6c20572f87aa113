package adaptor

import (
	"net/http"

	"cinema-api/internal/dto/request"
	"cinema-api/internal/usecase"
	"cinema-api/pkg/utils"

	"go.uber.org/zap"
)

type ActorHandler struct {
	service usecase.ActorService
	log     *zap.Logger
}

func NewActorHandler(service usecase.ActorService, log *zap.Logger) *ActorHandler {
	return &ActorHandler{
		service: service,
		log:     log.With(zap.String("handler", "actor")),
	}
}

// List handles GET /api/actors
func (h *ActorHandler) List(w http.ResponseWriter, r *http.Request) {
	actors, err := h.service.List(r.Context())
	if err != nil {
		handleServiceError(w, h.log, err, "list actors")
		return
	}

	utils.ResponseSuccess(w, "Actors retrieved successfully", actors)
}

// Get handles GET /api/actors/{id}
func (h *ActorHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	actor, err := h.service.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, h.log, err, "get actor")
		return
	}

	utils.ResponseSuccess(w, "Actor retrieved successfully", actor)
}

// Create handles POST /api/actors
func (h *ActorHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.ActorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	actor, err := h.service.Create(r.Context(), &req)
	if err != nil {
		handleServiceError(w, h.log, err, "create actor")
		return
	}

	utils.ResponseCreated(w, "Actor created successfully", actor)
}

// Update handles PUT /api/actors/{id}
func (h *ActorHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	var req request.ActorRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	actor, err := h.service.Update(r.Context(), id, &req)
	if err != nil {
		handleServiceError(w, h.log, err, "update actor")
		return
	}

	utils.ResponseSuccess(w, "Actor updated successfully", actor)
}

// Delete handles DELETE /api/actors/{id}
func (h *ActorHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := urlID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		handleServiceError(w, h.log, err, "delete actor")
		return
	}

	utils.ResponseSuccess(w, "Actor deleted successfully", nil)
}
