// internal/repository/movement_repo.go
package repository

import (
	"context"

	"pocketbook/internal/domain"
)

// MovementRepository defines the interface for inter-wallet movement data operations.
type MovementRepository interface {
	Create(ctx context.Context, q DBExecutor, movement *domain.Movement) error
	GetByID(ctx context.Context, q DBExecutor, id, userID string) (*domain.Movement, error)
	ListByUser(ctx context.Context, q DBExecutor, userID string) ([]domain.Movement, error)
	Update(ctx context.Context, q DBExecutor, movement *domain.Movement) error
	Delete(ctx context.Context, q DBExecutor, id, userID string) error
}
