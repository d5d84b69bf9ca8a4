// internal/repository/expense_repo.go
package repository

import (
	"context"

	"pocketbook/internal/domain"
)

// ExpenseRepository defines the interface for expense data operations.
type ExpenseRepository interface {
	Create(ctx context.Context, q DBExecutor, expense *domain.Expense) error
	GetByID(ctx context.Context, q DBExecutor, id, userID string) (*domain.Expense, error)
	ListByUser(ctx context.Context, q DBExecutor, userID string) ([]domain.Expense, error)
	Update(ctx context.Context, q DBExecutor, expense *domain.Expense) error
	Delete(ctx context.Context, q DBExecutor, id, userID string) error
}
