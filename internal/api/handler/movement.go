// internal/api/handler/movement.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"pocketbook/internal/command"
	"pocketbook/internal/service"
	"pocketbook/internal/util"
)

// MovementHandler handles HTTP requests for inter-wallet movements.
type MovementHandler struct {
	service service.MovementService
	logger  *slog.Logger
}

// NewMovementHandler creates a new MovementHandler.
func NewMovementHandler(svc service.MovementService, logger *slog.Logger) *MovementHandler {
	return &MovementHandler{service: svc, logger: logger}
}

// Create handles POST /movements.
func (h *MovementHandler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateMovement
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	movement, err := h.service.Create(r.Context(), UserIDFromContext(r.Context()), cmd)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusCreated, movement)
}

// Update handles PUT /movements/{movementID}.
func (h *MovementHandler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd command.UpdateMovement
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	cmd.ID = chi.URLParam(r, "movementID")

	movement, err := h.service.Update(r.Context(), UserIDFromContext(r.Context()), cmd)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, movement)
}

// Delete handles DELETE /movements/{movementID}.
func (h *MovementHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "movementID")
	if err := h.service.Delete(r.Context(), UserIDFromContext(r.Context()), id); err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /movements/{movementID}.
func (h *MovementHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "movementID")
	movement, err := h.service.Get(r.Context(), UserIDFromContext(r.Context()), id)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, movement)
}

// List handles GET /movements.
func (h *MovementHandler) List(w http.ResponseWriter, r *http.Request) {
	movements, err := h.service.List(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{"data": movements})
}
