// internal/repository/postgres/movement_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"pocketbook/internal/domain"
	"pocketbook/internal/repository"
	"pocketbook/internal/util"
)

// MovementRepository implements repository.MovementRepository for PostgreSQL.
type MovementRepository struct{}

// NewMovementRepository creates a new MovementRepository.
func NewMovementRepository(db *sqlx.DB) repository.MovementRepository {
	return &MovementRepository{}
}

func (r *MovementRepository) Create(ctx context.Context, q repository.DBExecutor, movement *domain.Movement) error {
	query := `INSERT INTO movements (id, user_id, wallet_id_source, wallet_id_target, value, date, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := q.ExecContext(ctx, query,
		movement.ID, movement.UserID, movement.WalletIDSource, movement.WalletIDTarget,
		movement.Value, movement.Date, movement.CreatedAt, movement.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create movement: %w", err)
	}
	return nil
}

func (r *MovementRepository) GetByID(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Movement, error) {
	var movement domain.Movement
	query := `SELECT id, user_id, wallet_id_source, wallet_id_target, value, date, created_at, updated_at
              FROM movements WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &movement, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get movement %s: %w", id, err)
	}
	return &movement, nil
}

func (r *MovementRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Movement, error) {
	movements := []domain.Movement{}
	query := `SELECT id, user_id, wallet_id_source, wallet_id_target, value, date, created_at, updated_at
              FROM movements WHERE user_id = $1 ORDER BY date DESC`
	if err := q.SelectContext(ctx, &movements, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list movements for user %s: %w", userID, err)
	}
	return movements, nil
}

func (r *MovementRepository) Update(ctx context.Context, q repository.DBExecutor, movement *domain.Movement) error {
	query := `UPDATE movements SET wallet_id_source = $1, wallet_id_target = $2, value = $3, date = $4, updated_at = $5
              WHERE id = $6 AND user_id = $7`
	result, err := q.ExecContext(ctx, query,
		movement.WalletIDSource, movement.WalletIDTarget, movement.Value, movement.Date,
		time.Now().UTC(), movement.ID, movement.UserID)
	if err != nil {
		return fmt.Errorf("failed to update movement %s: %w", movement.ID, err)
	}
	return requireRowsAffected(result, "movement", movement.ID)
}

func (r *MovementRepository) Delete(ctx context.Context, q repository.DBExecutor, id, userID string) error {
	query := `DELETE FROM movements WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete movement %s: %w", id, err)
	}
	return requireRowsAffected(result, "movement", id)
}
