// internal/domain/wallet.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Wallet represents an account holding a cash balance. The balance is a
// denormalized running total mutated only inside reconciliation transactions.
type Wallet struct {
	ID        string          `db:"id" json:"id"`                 // Primary key, UUID in DB
	UserID    string          `db:"user_id" json:"user_id"`       // Owning user
	Name      string          `db:"name" json:"name"`             // Display name
	Balance   decimal.Decimal `db:"balance" json:"balance"`       // Current balance, NUMERIC(12, 2) in DB
	CreatedAt time.Time       `db:"created_at" json:"created_at"` // Timestamp of creation
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"` // Timestamp of last update
}

// NewWallet creates a new Wallet instance.
func NewWallet(userID, name string, balance decimal.Decimal) *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
