// internal/repository/wallet_repo.go
package repository

import (
	"context"

	"github.com/shopspring/decimal"

	"pocketbook/internal/domain"
)

// WalletRepository defines the interface for wallet data operations. Every
// method receives a DBExecutor so it can run either on the pool or inside a
// reconciliation transaction.
type WalletRepository interface {
	// Create adds a new wallet.
	Create(ctx context.Context, q DBExecutor, wallet *domain.Wallet) error
	// GetByID retrieves a wallet by (id, userID); a miss is util.ErrNotFound.
	GetByID(ctx context.Context, q DBExecutor, id, userID string) (*domain.Wallet, error)
	// GetForUpdate retrieves a wallet by (id, userID) with a row lock, so
	// concurrent reconciliations against the same wallet serialize.
	GetForUpdate(ctx context.Context, q DBExecutor, id, userID string) (*domain.Wallet, error)
	// ListByUser retrieves all of a user's wallets.
	ListByUser(ctx context.Context, q DBExecutor, userID string) ([]domain.Wallet, error)
	// UpdateName renames a wallet; balances are never written through here.
	UpdateName(ctx context.Context, q DBExecutor, id, userID, name string) error
	// AdjustBalance applies a signed delta to the wallet's running balance.
	AdjustBalance(ctx context.Context, q DBExecutor, id string, delta decimal.Decimal) error
	// Delete removes a wallet owned by the user.
	Delete(ctx context.Context, q DBExecutor, id, userID string) error
}
