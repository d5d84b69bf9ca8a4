// internal/api/handler/earning.go
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

// EarningHandler handles HTTP requests for earnings and their allocations.
type EarningHandler struct {
	service service.EarningService
	logger  *slog.Logger
}

// NewEarningHandler creates a new EarningHandler.
func NewEarningHandler(svc service.EarningService, logger *slog.Logger) *EarningHandler {
	return &EarningHandler{service: svc, logger: logger}
}

// Create handles POST /earnings.
func (h *EarningHandler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateEarning
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	earning, err := h.service.Create(r.Context(), UserIDFromContext(r.Context()), cmd)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusCreated, earning)
}

// Update handles PUT /earnings/{earningID}.
func (h *EarningHandler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd command.UpdateEarning
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	cmd.ID = chi.URLParam(r, "earningID")

	earning, err := h.service.Update(r.Context(), UserIDFromContext(r.Context()), cmd)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, earning)
}

// Delete handles DELETE /earnings/{earningID}.
func (h *EarningHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "earningID")
	if err := h.service.Delete(r.Context(), UserIDFromContext(r.Context()), id); err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /earnings/{earningID}.
func (h *EarningHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "earningID")
	earning, err := h.service.Get(r.Context(), UserIDFromContext(r.Context()), id)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, earning)
}

// List handles GET /earnings.
func (h *EarningHandler) List(w http.ResponseWriter, r *http.Request) {
	earnings, err := h.service.List(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{"data": earnings})
}

// ListAllocations handles GET /earnings/{earningID}/allocations.
func (h *EarningHandler) ListAllocations(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "earningID")
	allocations, err := h.service.ListAllocations(r.Context(), UserIDFromContext(r.Context()), id)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{"data": allocations})
}
