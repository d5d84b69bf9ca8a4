// internal/api/router.go
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"pocketbook/internal/api/handler"
)

// Handlers bundles the per-resource HTTP handlers the router mounts.
type Handlers struct {
	Wallet   *handler.WalletHandler
	Bucket   *handler.BucketHandler
	Category *handler.CategoryHandler
	Earning  *handler.EarningHandler
	Expense  *handler.ExpenseHandler
	Movement *handler.MovementHandler
}

// NewRouter sets up and returns a new HTTP router.
func NewRouter(h Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	// Global middlewares
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(handler.DefaultTimeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-User-ID"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// All resource routes require an authenticated user.
	r.Group(func(r chi.Router) {
		r.Use(handler.UserID(logger))

		r.Route("/wallets", func(r chi.Router) {
			r.Post("/", h.Wallet.Create)
			r.Get("/", h.Wallet.List)
			r.Get("/{walletID}", h.Wallet.Get)
			r.Put("/{walletID}", h.Wallet.Update)
			r.Delete("/{walletID}", h.Wallet.Delete)
		})

		r.Route("/buckets", func(r chi.Router) {
			r.Post("/", h.Bucket.Create)
			r.Get("/", h.Bucket.List)
			r.Get("/{bucketID}", h.Bucket.Get)
			r.Put("/{bucketID}", h.Bucket.Update)
			r.Delete("/{bucketID}", h.Bucket.Delete)
		})

		r.Route("/categories", func(r chi.Router) {
			r.Post("/", h.Category.Create)
			r.Get("/", h.Category.List)
			r.Get("/{categoryID}", h.Category.Get)
			r.Put("/{categoryID}", h.Category.Update)
			r.Delete("/{categoryID}", h.Category.Delete)
		})

		r.Route("/earnings", func(r chi.Router) {
			r.Post("/", h.Earning.Create)
			r.Get("/", h.Earning.List)
			r.Get("/{earningID}", h.Earning.Get)
			r.Get("/{earningID}/allocations", h.Earning.ListAllocations)
			r.Put("/{earningID}", h.Earning.Update)
			r.Delete("/{earningID}", h.Earning.Delete)
		})

		r.Route("/expenses", func(r chi.Router) {
			r.Post("/", h.Expense.Create)
			r.Get("/", h.Expense.List)
			r.Get("/{expenseID}", h.Expense.Get)
			r.Put("/{expenseID}", h.Expense.Update)
			r.Delete("/{expenseID}", h.Expense.Delete)
		})

		r.Route("/movements", func(r chi.Router) {
			r.Post("/", h.Movement.Create)
			r.Get("/", h.Movement.List)
			r.Get("/{movementID}", h.Movement.Get)
			r.Put("/{movementID}", h.Movement.Update)
			r.Delete("/{movementID}", h.Movement.Delete)
		})
	})

	return r
}
