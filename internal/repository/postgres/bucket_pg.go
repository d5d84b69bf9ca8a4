// internal/repository/postgres/bucket_pg.go
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

// BucketRepository implements repository.BucketRepository for PostgreSQL.
type BucketRepository struct{}

// NewBucketRepository creates a new BucketRepository.
func NewBucketRepository(db *sqlx.DB) repository.BucketRepository {
	return &BucketRepository{}
}

// Create inserts a new bucket using the provided DBExecutor.
func (r *BucketRepository) Create(ctx context.Context, q repository.DBExecutor, bucket *domain.Bucket) error {
	query := `INSERT INTO buckets (id, user_id, name, budget, balance, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := q.ExecContext(ctx, query,
		bucket.ID, bucket.UserID, bucket.Name, bucket.Budget, bucket.Balance, bucket.CreatedAt, bucket.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create bucket: %w", err)
	}
	return nil
}

// GetByID retrieves a bucket owned by the user.
func (r *BucketRepository) GetByID(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Bucket, error) {
	var bucket domain.Bucket
	query := `SELECT id, user_id, name, budget, balance, created_at, updated_at
              FROM buckets WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &bucket, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get bucket %s: %w", id, err)
	}
	return &bucket, nil
}

// GetForUpdate retrieves a bucket owned by the user and locks its row.
func (r *BucketRepository) GetForUpdate(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Bucket, error) {
	var bucket domain.Bucket
	query := `SELECT id, user_id, name, budget, balance, created_at, updated_at
              FROM buckets WHERE id = $1 AND user_id = $2 FOR UPDATE`
	err := q.GetContext(ctx, &bucket, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock bucket %s: %w", id, err)
	}
	return &bucket, nil
}

// ListByUser retrieves all of a user's buckets ordered by name.
func (r *BucketRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Bucket, error) {
	buckets := []domain.Bucket{}
	query := `SELECT id, user_id, name, budget, balance, created_at, updated_at
              FROM buckets WHERE user_id = $1 ORDER BY LOWER(name) ASC`
	if err := q.SelectContext(ctx, &buckets, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list buckets for user %s: %w", userID, err)
	}
	return buckets, nil
}

// Update rewrites a bucket's name, budget percentage and balance.
func (r *BucketRepository) Update(ctx context.Context, q repository.DBExecutor, bucket *domain.Bucket) error {
	query := `UPDATE buckets SET name = $1, budget = $2, balance = $3, updated_at = $4
              WHERE id = $5 AND user_id = $6`
	result, err := q.ExecContext(ctx, query,
		bucket.Name, bucket.Budget, bucket.Balance, time.Now().UTC(), bucket.ID, bucket.UserID)
	if err != nil {
		return fmt.Errorf("failed to update bucket %s: %w", bucket.ID, err)
	}
	return requireRowsAffected(result, "bucket", bucket.ID)
}

// AdjustBalance applies a signed delta to the bucket's running balance.
func (r *BucketRepository) AdjustBalance(ctx context.Context, q repository.DBExecutor, id string, delta decimal.Decimal) error {
	query := `UPDATE buckets SET balance = balance + $1, updated_at = $2 WHERE id = $3`
	result, err := q.ExecContext(ctx, query, delta, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to adjust balance of bucket %s: %w", id, err)
	}
	return requireRowsAffected(result, "bucket", id)
}

// Delete removes a bucket owned by the user. The earning_allocations FK is
// declared ON DELETE SET NULL, so allocation history survives with a nulled
// bucket reference.
func (r *BucketRepository) Delete(ctx context.Context, q repository.DBExecutor, id, userID string) error {
	query := `DELETE FROM buckets WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete bucket %s: %w", id, err)
	}
	return requireRowsAffected(result, "bucket", id)
}
