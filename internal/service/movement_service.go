// internal/service/movement_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"pocketbook/internal/command"
	"pocketbook/internal/domain"
	"pocketbook/internal/repository"
	"pocketbook/internal/util"
	"pocketbook/pkg/db"
)

// MovementService reconciles inter-wallet transfers. A movement debits the
// source wallet and credits the target wallet by the same value; buckets are
// never involved.
type MovementService interface {
	Create(ctx context.Context, userID string, cmd command.CreateMovement) (*domain.Movement, error)
	Update(ctx context.Context, userID string, cmd command.UpdateMovement) (*domain.Movement, error)
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*domain.Movement, error)
	List(ctx context.Context, userID string) ([]domain.Movement, error)
}

type movementService struct {
	dbBeginner   db.DBTxBeginner
	dbExecutor   repository.DBExecutor
	walletRepo   repository.WalletRepository
	movementRepo repository.MovementRepository
	beginTx      db.BeginTxFunc
	commitTx     db.CommitTxFunc
	rollbackTx   db.RollbackTxFunc
}

// NewMovementService creates a new instance of MovementService.
func NewMovementService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	walletRepo repository.WalletRepository,
	movementRepo repository.MovementRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) MovementService {
	return &movementService{
		dbBeginner:   dbBeginner,
		dbExecutor:   dbExecutor,
		walletRepo:   walletRepo,
		movementRepo: movementRepo,
		beginTx:      beginTx,
		commitTx:     commitTx,
		rollbackTx:   rollbackTx,
	}
}

// Create records a transfer between two distinct wallets, both of which
// must exist and belong to the user.
func (s *movementService) Create(ctx context.Context, userID string, cmd command.CreateMovement) (*domain.Movement, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	txController, txExecutor, err := beginTxExecutor(ctx, s.beginTx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create movement: %w", err)
	}
	defer s.rollbackTx(txController)

	source, err := s.walletRepo.GetForUpdate(ctx, txExecutor, cmd.WalletIDSource, userID)
	if err != nil {
		return nil, fmt.Errorf("create movement: source wallet %s: %w", cmd.WalletIDSource, err)
	}
	target, err := s.walletRepo.GetForUpdate(ctx, txExecutor, cmd.WalletIDTarget, userID)
	if err != nil {
		return nil, fmt.Errorf("create movement: target wallet %s: %w", cmd.WalletIDTarget, err)
	}

	movement := domain.NewMovement(userID, source.ID, target.ID, cmd.Value, cmd.Date)
	if err := s.movementRepo.Create(ctx, txExecutor, movement); err != nil {
		return nil, fmt.Errorf("create movement: %w", err)
	}

	if err := s.walletRepo.AdjustBalance(ctx, txExecutor, source.ID, cmd.Value.Neg()); err != nil {
		return nil, fmt.Errorf("create movement: %w", err)
	}
	if err := s.walletRepo.AdjustBalance(ctx, txExecutor, target.ID, cmd.Value); err != nil {
		return nil, fmt.Errorf("create movement: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create movement: failed to commit transaction: %w", err)
	}
	return movement, nil
}

// Update edits a movement by unconditionally reversing the old transfer and
// applying the new one. The old pair is reversed even when neither the pair
// nor the value changed; the two halves cancel, so the result is still
// correct, and the reconciliation stays a single code path. Old wallets that
// no longer exist are skipped; the new pair must exist.
func (s *movementService) Update(ctx context.Context, userID string, cmd command.UpdateMovement) (*domain.Movement, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	txController, txExecutor, err := beginTxExecutor(ctx, s.beginTx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("update movement: %w", err)
	}
	defer s.rollbackTx(txController)

	existing, err := s.movementRepo.GetByID(ctx, txExecutor, cmd.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("update movement: movement %s: %w", cmd.ID, err)
	}

	source, err := s.walletRepo.GetForUpdate(ctx, txExecutor, cmd.WalletIDSource, userID)
	if err != nil {
		return nil, fmt.Errorf("update movement: source wallet %s: %w", cmd.WalletIDSource, err)
	}
	target, err := s.walletRepo.GetForUpdate(ctx, txExecutor, cmd.WalletIDTarget, userID)
	if err != nil {
		return nil, fmt.Errorf("update movement: target wallet %s: %w", cmd.WalletIDTarget, err)
	}

	// Reverse the old transfer.
	if err := s.adjustIfPresent(ctx, txExecutor, userID, existing.WalletIDSource, existing.Value); err != nil {
		return nil, fmt.Errorf("update movement: %w", err)
	}
	if err := s.adjustIfPresent(ctx, txExecutor, userID, existing.WalletIDTarget, existing.Value.Neg()); err != nil {
		return nil, fmt.Errorf("update movement: %w", err)
	}

	// Apply the new one.
	if err := s.walletRepo.AdjustBalance(ctx, txExecutor, source.ID, cmd.Value.Neg()); err != nil {
		return nil, fmt.Errorf("update movement: %w", err)
	}
	if err := s.walletRepo.AdjustBalance(ctx, txExecutor, target.ID, cmd.Value); err != nil {
		return nil, fmt.Errorf("update movement: %w", err)
	}

	existing.WalletIDSource = source.ID
	existing.WalletIDTarget = target.ID
	existing.Value = cmd.Value
	existing.Date = cmd.Date
	if err := s.movementRepo.Update(ctx, txExecutor, existing); err != nil {
		return nil, fmt.Errorf("update movement: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("update movement: failed to commit transaction: %w", err)
	}
	return existing, nil
}

// Delete reverses the transfer (skipping wallets that have since been
// deleted) and removes the movement.
func (s *movementService) Delete(ctx context.Context, userID, id string) error {
	txController, txExecutor, err := beginTxExecutor(ctx, s.beginTx, s.dbBeginner)
	if err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	defer s.rollbackTx(txController)

	existing, err := s.movementRepo.GetByID(ctx, txExecutor, id, userID)
	if err != nil {
		return fmt.Errorf("delete movement: movement %s: %w", id, err)
	}

	if err := s.adjustIfPresent(ctx, txExecutor, userID, existing.WalletIDSource, existing.Value); err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}
	if err := s.adjustIfPresent(ctx, txExecutor, userID, existing.WalletIDTarget, existing.Value.Neg()); err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}

	if err := s.movementRepo.Delete(ctx, txExecutor, existing.ID, userID); err != nil {
		return fmt.Errorf("delete movement: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return fmt.Errorf("delete movement: failed to commit transaction: %w", err)
	}
	return nil
}

// adjustIfPresent applies a balance delta to a wallet if it still exists.
func (s *movementService) adjustIfPresent(ctx context.Context, q repository.DBExecutor, userID, walletID string, delta decimal.Decimal) error {
	wallet, err := s.walletRepo.GetForUpdate(ctx, q, walletID, userID)
	if errors.Is(err, util.ErrNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	return s.walletRepo.AdjustBalance(ctx, q, wallet.ID, delta)
}

// Get retrieves one movement owned by the user.
func (s *movementService) Get(ctx context.Context, userID, id string) (*domain.Movement, error) {
	movement, err := s.movementRepo.GetByID(ctx, s.dbExecutor, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get movement %s: %w", id, err)
	}
	return movement, nil
}

// List retrieves the user's movements, most recent date first.
func (s *movementService) List(ctx context.Context, userID string) ([]domain.Movement, error) {
	movements, err := s.movementRepo.ListByUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list movements: %w", err)
	}
	return movements, nil
}
