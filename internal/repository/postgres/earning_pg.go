// internal/repository/postgres/earning_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"pocketbook/internal/domain"
	"pocketbook/internal/repository"
	"pocketbook/internal/util"
)

// EarningRepository implements repository.EarningRepository for PostgreSQL.
type EarningRepository struct{}

// NewEarningRepository creates a new EarningRepository.
func NewEarningRepository(db *sqlx.DB) repository.EarningRepository {
	return &EarningRepository{}
}

// Create inserts a new earning using the provided DBExecutor.
func (r *EarningRepository) Create(ctx context.Context, q repository.DBExecutor, earning *domain.Earning) error {
	query := `INSERT INTO earnings (id, user_id, wallet_id, title, description, value, source, date, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err := q.ExecContext(ctx, query,
		earning.ID, earning.UserID, earning.WalletID, earning.Title, earning.Description,
		earning.Value, earning.Source, earning.Date, earning.CreatedAt, earning.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create earning: %w", err)
	}
	return nil
}

// GetByID retrieves an earning owned by the user.
func (r *EarningRepository) GetByID(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Earning, error) {
	var earning domain.Earning
	query := `SELECT id, user_id, wallet_id, title, description, value, source, date, created_at, updated_at
              FROM earnings WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &earning, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get earning %s: %w", id, err)
	}
	return &earning, nil
}

// ListByUser retrieves a user's earnings, most recent date first.
func (r *EarningRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Earning, error) {
	earnings := []domain.Earning{}
	query := `SELECT id, user_id, wallet_id, title, description, value, source, date, created_at, updated_at
              FROM earnings WHERE user_id = $1 ORDER BY date DESC`
	if err := q.SelectContext(ctx, &earnings, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list earnings for user %s: %w", userID, err)
	}
	return earnings, nil
}

// Update rewrites an earning's mutable fields.
func (r *EarningRepository) Update(ctx context.Context, q repository.DBExecutor, earning *domain.Earning) error {
	query := `UPDATE earnings SET wallet_id = $1, title = $2, description = $3, value = $4, source = $5, date = $6, updated_at = $7
              WHERE id = $8 AND user_id = $9`
	result, err := q.ExecContext(ctx, query,
		earning.WalletID, earning.Title, earning.Description, earning.Value,
		earning.Source, earning.Date, time.Now().UTC(), earning.ID, earning.UserID)
	if err != nil {
		return fmt.Errorf("failed to update earning %s: %w", earning.ID, err)
	}
	return requireRowsAffected(result, "earning", earning.ID)
}

// Delete removes an earning owned by the user.
func (r *EarningRepository) Delete(ctx context.Context, q repository.DBExecutor, id, userID string) error {
	query := `DELETE FROM earnings WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete earning %s: %w", id, err)
	}
	return requireRowsAffected(result, "earning", id)
}

// CreateAllocation inserts one allocation row under an earning.
func (r *EarningRepository) CreateAllocation(ctx context.Context, q repository.DBExecutor, allocation *domain.EarningAllocation) error {
	query := `INSERT INTO earning_allocations (id, earning_id, bucket_id, value, bucket_percentage, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q.ExecContext(ctx, query,
		allocation.ID, allocation.EarningID, allocation.BucketID,
		allocation.Value, allocation.BucketPercentage, allocation.CreatedAt, allocation.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create earning allocation: %w", err)
	}
	return nil
}

// ListAllocations retrieves all allocation rows of one earning.
func (r *EarningRepository) ListAllocations(ctx context.Context, q repository.DBExecutor, earningID string) ([]domain.EarningAllocation, error) {
	allocations := []domain.EarningAllocation{}
	query := `SELECT id, earning_id, bucket_id, value, bucket_percentage, created_at, updated_at
              FROM earning_allocations WHERE earning_id = $1 ORDER BY created_at ASC`
	if err := q.SelectContext(ctx, &allocations, query, earningID); err != nil {
		return nil, fmt.Errorf("failed to list allocations for earning %s: %w", earningID, err)
	}
	return allocations, nil
}

// UpdateAllocationValue rescales one allocation's stored value. The bucket
// percentage snapshot is deliberately not part of the statement.
func (r *EarningRepository) UpdateAllocationValue(ctx context.Context, q repository.DBExecutor, id string, value decimal.Decimal) error {
	query := `UPDATE earning_allocations SET value = $1, updated_at = $2 WHERE id = $3`
	result, err := q.ExecContext(ctx, query, value, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to update allocation %s: %w", id, err)
	}
	return requireRowsAffected(result, "earning allocation", id)
}

// ClearAllocationBucket nulls an allocation's bucket reference.
func (r *EarningRepository) ClearAllocationBucket(ctx context.Context, q repository.DBExecutor, id string) error {
	query := `UPDATE earning_allocations SET bucket_id = NULL, updated_at = $1 WHERE id = $2`
	result, err := q.ExecContext(ctx, query, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to clear bucket reference on allocation %s: %w", id, err)
	}
	return requireRowsAffected(result, "earning allocation", id)
}

// DeleteAllocationsByEarning removes every allocation under an earning.
// Zero rows is fine: an earning may legitimately have no allocations left.
func (r *EarningRepository) DeleteAllocationsByEarning(ctx context.Context, q repository.DBExecutor, earningID string) error {
	query := `DELETE FROM earning_allocations WHERE earning_id = $1`
	if _, err := q.ExecContext(ctx, query, earningID); err != nil {
		return fmt.Errorf("failed to delete allocations for earning %s: %w", earningID, err)
	}
	return nil
}
