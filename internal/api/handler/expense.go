// internal/api/handler/expense.go
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

// ExpenseHandler handles HTTP requests for expenses.
type ExpenseHandler struct {
	service service.ExpenseService
	logger  *slog.Logger
}

// NewExpenseHandler creates a new ExpenseHandler.
func NewExpenseHandler(svc service.ExpenseService, logger *slog.Logger) *ExpenseHandler {
	return &ExpenseHandler{service: svc, logger: logger}
}

// Create handles POST /expenses.
func (h *ExpenseHandler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateExpense
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	expense, err := h.service.Create(r.Context(), UserIDFromContext(r.Context()), cmd)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusCreated, expense)
}

// Update handles PUT /expenses/{expenseID}.
func (h *ExpenseHandler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd command.UpdateExpense
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	cmd.ID = chi.URLParam(r, "expenseID")

	expense, err := h.service.Update(r.Context(), UserIDFromContext(r.Context()), cmd)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, expense)
}

// Delete handles DELETE /expenses/{expenseID}.
func (h *ExpenseHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "expenseID")
	if err := h.service.Delete(r.Context(), UserIDFromContext(r.Context()), id); err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /expenses/{expenseID}.
func (h *ExpenseHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "expenseID")
	expense, err := h.service.Get(r.Context(), UserIDFromContext(r.Context()), id)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, expense)
}

// List handles GET /expenses.
func (h *ExpenseHandler) List(w http.ResponseWriter, r *http.Request) {
	expenses, err := h.service.List(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{"data": expenses})
}
