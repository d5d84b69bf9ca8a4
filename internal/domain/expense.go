// internal/domain/expense.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense is a single-wallet, single-bucket debit. Value may be negative
// (a refund), in which case applying it increases both balances.
type Expense struct {
	ID          string          `db:"id" json:"id"`
	UserID      string          `db:"user_id" json:"user_id"`
	WalletID    string          `db:"wallet_id" json:"wallet_id"`
	BucketID    string          `db:"bucket_id" json:"bucket_id"`
	CategoryID  string          `db:"category_id" json:"category_id"`
	Title       string          `db:"title" json:"title"`
	Description string          `db:"description" json:"description"`
	Value       decimal.Decimal `db:"value" json:"value"`
	Source      string          `db:"source" json:"source"`
	Date        time.Time       `db:"date" json:"date"`
	CreatedAt   time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at" json:"updated_at"`
}

// NewExpense creates a new Expense instance.
func NewExpense(userID, walletID, bucketID, categoryID, title, description, source string, value decimal.Decimal, date time.Time) *Expense {
	now := time.Now().UTC()
	return &Expense{
		ID:          uuid.NewString(),
		UserID:      userID,
		WalletID:    walletID,
		BucketID:    bucketID,
		CategoryID:  categoryID,
		Title:       title,
		Description: description,
		Value:       value,
		Source:      source,
		Date:        date,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
