// internal/repository/bucket_repo.go
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"pocketbook/internal/domain"
)

// BucketRepository defines the interface for bucket data operations.
type BucketRepository interface {
	// Create adds a new bucket.
	Create(ctx context.Context, q DBExecutor, bucket *domain.Bucket) error
	// GetByID retrieves a bucket by (id, userID); a miss is util.ErrNotFound.
	GetByID(ctx context.Context, q DBExecutor, id, userID string) (*domain.Bucket, error)
	// GetForUpdate retrieves a bucket by (id, userID) with a row lock.
	GetForUpdate(ctx context.Context, q DBExecutor, id, userID string) (*domain.Bucket, error)
	// ListByUser retrieves all of a user's buckets ordered by name. The
	// earning reconciler depends on this ordering for deterministic
	// allocation rows.
	ListByUser(ctx context.Context, q DBExecutor, userID string) ([]domain.Bucket, error)
	// Update rewrites a bucket's name, budget percentage and balance seed.
	Update(ctx context.Context, q DBExecutor, bucket *domain.Bucket) error
	// AdjustBalance applies a signed delta to the bucket's running balance.
	AdjustBalance(ctx context.Context, q DBExecutor, id string, delta decimal.Decimal) error
	// Delete removes a bucket owned by the user. Allocations referencing it
	// survive with their bucket reference nulled (ON DELETE SET NULL).
	Delete(ctx context.Context, q DBExecutor, id, userID string) error
}
