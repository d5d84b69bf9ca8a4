// internal/repository/category_repo.go
package repository

import (
	"context"

	"pocketbook/internal/domain"
)

// CategoryRepository defines the interface for expense category data operations.
type CategoryRepository interface {
	Create(ctx context.Context, q DBExecutor, category *domain.Category) error
	GetByID(ctx context.Context, q DBExecutor, id, userID string) (*domain.Category, error)
	ListByUser(ctx context.Context, q DBExecutor, userID string) ([]domain.Category, error)
	UpdateName(ctx context.Context, q DBExecutor, id, userID, name string) error
	Delete(ctx context.Context, q DBExecutor, id, userID string) error
}
