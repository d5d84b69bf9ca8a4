// internal/service/wallet_service.go
package service

import (
	"context"
	"fmt"

	"pocketbook/internal/command"
	"pocketbook/internal/domain"
	"pocketbook/internal/repository"
)

// WalletService manages wallets. Balances are owned by the reconcilers;
// the only balance a user sets directly is a wallet's opening balance.
type WalletService interface {
	Create(ctx context.Context, userID string, cmd command.CreateWallet) (*domain.Wallet, error)
	Update(ctx context.Context, userID string, cmd command.UpdateWallet) (*domain.Wallet, error)
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*domain.Wallet, error)
	List(ctx context.Context, userID string) ([]domain.Wallet, error)
}

type walletService struct {
	dbExecutor repository.DBExecutor
	walletRepo repository.WalletRepository
}

// NewWalletService creates a new instance of WalletService.
func NewWalletService(dbExecutor repository.DBExecutor, walletRepo repository.WalletRepository) WalletService {
	return &walletService{dbExecutor: dbExecutor, walletRepo: walletRepo}
}

func (s *walletService) Create(ctx context.Context, userID string, cmd command.CreateWallet) (*domain.Wallet, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	wallet := domain.NewWallet(userID, cmd.Name, cmd.Balance)
	if err := s.walletRepo.Create(ctx, s.dbExecutor, wallet); err != nil {
		return nil, fmt.Errorf("create wallet: %w", err)
	}
	return wallet, nil
}

// Update renames a wallet. The balance is deliberately not updatable: it
// only moves through earnings, expenses and movements.
func (s *walletService) Update(ctx context.Context, userID string, cmd command.UpdateWallet) (*domain.Wallet, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := s.walletRepo.UpdateName(ctx, s.dbExecutor, cmd.ID, userID, cmd.Name); err != nil {
		return nil, fmt.Errorf("update wallet %s: %w", cmd.ID, err)
	}
	wallet, err := s.walletRepo.GetByID(ctx, s.dbExecutor, cmd.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("update wallet %s: %w", cmd.ID, err)
	}
	return wallet, nil
}

// Delete removes a wallet. Earnings, expenses and movements referencing it
// are kept; the reconcilers tolerate the dangling reference.
func (s *walletService) Delete(ctx context.Context, userID, id string) error {
	if err := s.walletRepo.Delete(ctx, s.dbExecutor, id, userID); err != nil {
		return fmt.Errorf("delete wallet %s: %w", id, err)
	}
	return nil
}

func (s *walletService) Get(ctx context.Context, userID, id string) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetByID(ctx, s.dbExecutor, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get wallet %s: %w", id, err)
	}
	return wallet, nil
}

func (s *walletService) List(ctx context.Context, userID string) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListByUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	return wallets, nil
}
