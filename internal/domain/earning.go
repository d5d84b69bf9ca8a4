// internal/domain/earning.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Earning is income credited to one wallet and distributed across the
// user's buckets at creation time. It owns zero or more EarningAllocation
// children recording that distribution.
type Earning struct {
	ID          string          `db:"id" json:"id"`
	UserID      string          `db:"user_id" json:"user_id"`
	WalletID    string          `db:"wallet_id" json:"wallet_id"`
	Title       string          `db:"title" json:"title"`
	Description string          `db:"description" json:"description"`
	Value       decimal.Decimal `db:"value" json:"value"` // Strictly positive
	Source      string          `db:"source" json:"source"`
	Date        time.Time       `db:"date" json:"date"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// NewEarning creates a new Earning instance.
func NewEarning(userID, walletID, title, description, source string, value decimal.Decimal, date time.Time) *Earning {
	now := time.Now().UTC()
	return &Earning{
		ID:          uuid.NewString(),
		UserID:      userID,
		WalletID:    walletID,
		Title:       title,
		Description: description,
		Value:       value,
		Source:      source,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

// EarningAllocation is the historical record of how much of a specific
// earning was routed to a specific bucket. BucketPercentage is frozen at
// creation time and is used for all future rescaling of this allocation,
// regardless of later edits to the bucket's current budget. BucketID is a
// weak reference: it becomes nil when the bucket is deleted, and the
// allocation is then skipped in reversal/recompute steps.
type EarningAllocation struct {
	ID               string          `db:"id" json:"id"`
	EarningID        string          `db:"earning_id" json:"earning_id"`
	BucketID         *string         `db:"bucket_id" json:"bucket_id"` // nil once the bucket is deleted
	Value            decimal.Decimal `db:"value" json:"value"`
	BucketPercentage decimal.Decimal `db:"bucket_percentage" json:"bucket_percentage"` // Snapshot, 0..100
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at" json:"updated_at"`
}

// NewEarningAllocation creates a new EarningAllocation instance.
func NewEarningAllocation(earningID, bucketID string, value, bucketPercentage decimal.Decimal) *EarningAllocation {
	now := time.Now().UTC()
	return &EarningAllocation{
		ID:               uuid.NewString(),
		EarningID:        earningID,
		BucketID:         &bucketID,
		Value:            value,
		BucketPercentage: bucketPercentage,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}
