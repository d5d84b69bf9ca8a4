// internal/domain/movement.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Movement is a transfer between two wallets of the same user: it debits
// the source and credits the target.
type Movement struct {
	ID             string          `db:"id" json:"id"`
	UserID         string          `db:"user_id" json:"user_id"`
	WalletIDSource string          `db:"wallet_id_source" json:"wallet_id_source"`
	WalletIDTarget string          `db:"wallet_id_target" json:"wallet_id_target"`
	Value          decimal.Decimal `db:"value" json:"value"` // Strictly positive
	Date           time.Time       `db:"date" json:"date"`
	CreatedAt      time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time       `db:"updated_at" json:"updated_at"`
}

// NewMovement creates a new Movement instance.
func NewMovement(userID, walletIDSource, walletIDTarget string, value decimal.Decimal, date time.Time) *Movement {
	now := time.Now().UTC()
	return &Movement{
		ID:             uuid.NewString(),
		UserID:         userID,
		WalletIDSource: walletIDSource,
		WalletIDTarget: walletIDTarget,
		Value:          value,
		Date:           date,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}
