// internal/api/handler/category.go
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

// CategoryHandler handles HTTP requests for expense categories.
type CategoryHandler struct {
	service service.CategoryService
	logger  *slog.Logger
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(svc service.CategoryService, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{service: svc, logger: logger}
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateCategory
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	category, err := h.service.Create(r.Context(), UserIDFromContext(r.Context()), cmd)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusCreated, category)
}

// Update handles PUT /categories/{categoryID}.
func (h *CategoryHandler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd command.UpdateCategory
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	cmd.ID = chi.URLParam(r, "categoryID")

	category, err := h.service.Update(r.Context(), UserIDFromContext(r.Context()), cmd)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, category)
}

// Delete handles DELETE /categories/{categoryID}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "categoryID")
	if err := h.service.Delete(r.Context(), UserIDFromContext(r.Context()), id); err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /categories/{categoryID}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "categoryID")
	category, err := h.service.Get(r.Context(), UserIDFromContext(r.Context()), id)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, category)
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.service.List(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{"data": categories})
}
