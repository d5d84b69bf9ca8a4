// internal/api/handler/middleware.go
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"pocketbook/internal/util"
)

type contextKey string

const userIDKey contextKey = "userID"

// UserID extracts the authenticated user from the X-User-ID header and puts
// it on the request context. Requests without a valid user id get 401.
// Authentication proper (sessions, tokens) lives in front of this service.
func UserID(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := r.Header.Get("X-User-ID")
			if _, err := uuid.Parse(userID); err != nil {
				respondWithError(logger, w, util.ErrUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), userIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserIDFromContext returns the authenticated user id set by the UserID
// middleware.
func UserIDFromContext(ctx context.Context) string {
	userID, _ := ctx.Value(userIDKey).(string)
	return userID
}
