// internal/repository/postgres/wallet_pg.go
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

// WalletRepository implements repository.WalletRepository for PostgreSQL.
type WalletRepository struct {
	// Methods receive a DBExecutor directly, so no connection is held here.
}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository(db *sqlx.DB) repository.WalletRepository {
	return &WalletRepository{}
}

// Create inserts a new wallet using the provided DBExecutor.
func (r *WalletRepository) Create(ctx context.Context, q repository.DBExecutor, wallet *domain.Wallet) error {
	query := `INSERT INTO wallets (id, user_id, name, balance, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := q.ExecContext(ctx, query,
		wallet.ID, wallet.UserID, wallet.Name, wallet.Balance, wallet.CreatedAt, wallet.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

// GetByID retrieves a wallet owned by the user.
func (r *WalletRepository) GetByID(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Wallet, error) {
	var wallet domain.Wallet
	query := `SELECT id, user_id, name, balance, created_at, updated_at
              FROM wallets WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &wallet, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get wallet %s: %w", id, err)
	}
	return &wallet, nil
}

// GetForUpdate retrieves a wallet owned by the user and locks its row for
// the remainder of the surrounding transaction.
func (r *WalletRepository) GetForUpdate(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Wallet, error) {
	var wallet domain.Wallet
	query := `SELECT id, user_id, name, balance, created_at, updated_at
              FROM wallets WHERE id = $1 AND user_id = $2 FOR UPDATE`
	err := q.GetContext(ctx, &wallet, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock wallet %s: %w", id, err)
	}
	return &wallet, nil
}

// ListByUser retrieves all of a user's wallets.
func (r *WalletRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Wallet, error) {
	wallets := []domain.Wallet{}
	query := `SELECT id, user_id, name, balance, created_at, updated_at
              FROM wallets WHERE user_id = $1 ORDER BY LOWER(name) ASC`
	if err := q.SelectContext(ctx, &wallets, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list wallets for user %s: %w", userID, err)
	}
	return wallets, nil
}

// UpdateName renames a wallet owned by the user.
func (r *WalletRepository) UpdateName(ctx context.Context, q repository.DBExecutor, id, userID, name string) error {
	query := `UPDATE wallets SET name = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`
	result, err := q.ExecContext(ctx, query, name, time.Now().UTC(), id, userID)
	if err != nil {
		return fmt.Errorf("failed to rename wallet %s: %w", id, err)
	}
	return requireRowsAffected(result, "wallet", id)
}

// AdjustBalance applies a signed delta to the wallet's running balance.
func (r *WalletRepository) AdjustBalance(ctx context.Context, q repository.DBExecutor, id string, delta decimal.Decimal) error {
	query := `UPDATE wallets SET balance = balance + $1, updated_at = $2 WHERE id = $3`
	result, err := q.ExecContext(ctx, query, delta, time.Now().UTC(), id)
	if err != nil {
		return fmt.Errorf("failed to adjust balance of wallet %s: %w", id, err)
	}
	return requireRowsAffected(result, "wallet", id)
}

// Delete removes a wallet owned by the user.
func (r *WalletRepository) Delete(ctx context.Context, q repository.DBExecutor, id, userID string) error {
	query := `DELETE FROM wallets WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete wallet %s: %w", id, err)
	}
	return requireRowsAffected(result, "wallet", id)
}

// requireRowsAffected turns a zero-row write into util.ErrNotFound so
// services can treat a vanished row uniformly.
func requireRowsAffected(result sql.Result, kind, id string) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected for %s %s: %w", kind, id, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("%s %s: %w", kind, id, util.ErrNotFound)
	}
	return nil
}
