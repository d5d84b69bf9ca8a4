// internal/api/handler/bucket.go
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

// BucketHandler handles HTTP requests for buckets.
type BucketHandler struct {
	service service.BucketService
	logger  *slog.Logger
}

// NewBucketHandler creates a new BucketHandler.
func NewBucketHandler(svc service.BucketService, logger *slog.Logger) *BucketHandler {
	return &BucketHandler{service: svc, logger: logger}
}

// Create handles POST /buckets.
func (h *BucketHandler) Create(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateBucket
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	bucket, err := h.service.Create(r.Context(), UserIDFromContext(r.Context()), cmd)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusCreated, bucket)
}

// Update handles PUT /buckets/{bucketID}.
func (h *BucketHandler) Update(w http.ResponseWriter, r *http.Request) {
	var cmd command.UpdateBucket
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	cmd.ID = chi.URLParam(r, "bucketID")

	bucket, err := h.service.Update(r.Context(), UserIDFromContext(r.Context()), cmd)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, bucket)
}

// Delete handles DELETE /buckets/{bucketID}.
func (h *BucketHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "bucketID")
	if err := h.service.Delete(r.Context(), UserIDFromContext(r.Context()), id); err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Get handles GET /buckets/{bucketID}.
func (h *BucketHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "bucketID")
	bucket, err := h.service.Get(r.Context(), UserIDFromContext(r.Context()), id)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, bucket)
}

// List handles GET /buckets.
func (h *BucketHandler) List(w http.ResponseWriter, r *http.Request) {
	buckets, err := h.service.List(r.Context(), UserIDFromContext(r.Context()))
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	respondWithJSON(h.logger, w, http.StatusOK, map[string]interface{}{"data": buckets})
}
