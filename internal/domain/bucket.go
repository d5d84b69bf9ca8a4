// internal/domain/bucket.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Bucket is a budget envelope with a proportional claim on future earnings
// and its own running balance. Budget is a percentage in [0, 100]; the sum
// over a user's buckets must be exactly 100 before an earning can be
// recorded or edited (checked at earning time, not continuously).
type Bucket struct {
	ID        string          `db:"id" json:"id"`
	UserID    string          `db:"user_id" json:"user_id"`
	Name      string          `db:"name" json:"name"`
	Budget    decimal.Decimal `db:"budget" json:"budget"`   // Percentage claim, 0..100
	Balance   decimal.Decimal `db:"balance" json:"balance"` // Running envelope balance
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// NewBucket creates a new Bucket instance.
func NewBucket(userID, name string, budget, balance decimal.Decimal) *Bucket {
	now := time.Now().UTC()
	return &Bucket{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Budget:    budget,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
