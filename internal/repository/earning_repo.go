// internal/repository/earning_repo.go
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"pocketbook/internal/domain"
)

// EarningRepository defines the interface for earning data operations.
// Allocation rows are owned by their parent earning, so they are managed
// through the same repository.
type EarningRepository interface {
	// Create adds a new earning.
	Create(ctx context.Context, q DBExecutor, earning *domain.Earning) error
	// GetByID retrieves an earning by (id, userID); a miss is util.ErrNotFound.
	GetByID(ctx context.Context, q DBExecutor, id, userID string) (*domain.Earning, error)
	// ListByUser retrieves a user's earnings, most recent date first.
	ListByUser(ctx context.Context, q DBExecutor, userID string) ([]domain.Earning, error)
	// Update rewrites an earning's mutable fields.
	Update(ctx context.Context, q DBExecutor, earning *domain.Earning) error
	// Delete removes an earning owned by the user.
	Delete(ctx context.Context, q DBExecutor, id, userID string) error

	// CreateAllocation adds one allocation row under an earning.
	CreateAllocation(ctx context.Context, q DBExecutor, allocation *domain.EarningAllocation) error
	// ListAllocations retrieves all allocation rows of one earning.
	ListAllocations(ctx context.Context, q DBExecutor, earningID string) ([]domain.EarningAllocation, error)
	// UpdateAllocationValue rescales one allocation's stored value. The
	// percentage snapshot is immutable and never rewritten.
	UpdateAllocationValue(ctx context.Context, q DBExecutor, id string, value decimal.Decimal) error
	// ClearAllocationBucket nulls an allocation's bucket reference after the
	// bucket was found to be gone (lazy tombstoning).
	ClearAllocationBucket(ctx context.Context, q DBExecutor, id string) error
	// DeleteAllocationsByEarning removes every allocation under an earning.
	DeleteAllocationsByEarning(ctx context.Context, q DBExecutor, earningID string) error
}
