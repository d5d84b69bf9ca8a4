// internal/service/expense_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"pocketbook/internal/command"
	"pocketbook/internal/domain"
	"pocketbook/internal/repository"
	"pocketbook/internal/util"
	"pocketbook/pkg/db"
)

// ExpenseService reconciles expenses against wallet and bucket balances.
// An expense debits one wallet and one bucket by its value; a negative
// value is a refund and credits both.
type ExpenseService interface {
	Create(ctx context.Context, userID string, cmd command.CreateExpense) (*domain.Expense, error)
	Update(ctx context.Context, userID string, cmd command.UpdateExpense) (*domain.Expense, error)
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*domain.Expense, error)
	List(ctx context.Context, userID string) ([]domain.Expense, error)
}

type expenseService struct {
	dbBeginner   db.DBTxBeginner
	dbExecutor   repository.DBExecutor
	walletRepo   repository.WalletRepository
	bucketRepo   repository.BucketRepository
	categoryRepo repository.CategoryRepository
	expenseRepo  repository.ExpenseRepository
	beginTx      db.BeginTxFunc
	commitTx     db.CommitTxFunc
	rollbackTx   db.RollbackTxFunc
}

// NewExpenseService creates a new instance of ExpenseService.
func NewExpenseService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	walletRepo repository.WalletRepository,
	bucketRepo repository.BucketRepository,
	categoryRepo repository.CategoryRepository,
	expenseRepo repository.ExpenseRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) ExpenseService {
	return &expenseService{
		dbBeginner:   dbBeginner,
		dbExecutor:   dbExecutor,
		walletRepo:   walletRepo,
		bucketRepo:   bucketRepo,
		categoryRepo: categoryRepo,
		expenseRepo:  expenseRepo,
		beginTx:      beginTx,
		commitTx:     commitTx,
		rollbackTx:   rollbackTx,
	}
}

// Create records an expense against an existing wallet, bucket and category
// and debits wallet and bucket by the expense value. The category carries no
// balance, so it is checked for ownership but not locked.
func (s *expenseService) Create(ctx context.Context, userID string, cmd command.CreateExpense) (*domain.Expense, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	txController, txExecutor, err := beginTxExecutor(ctx, s.beginTx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	defer s.rollbackTx(txController)

	wallet, err := s.walletRepo.GetForUpdate(ctx, txExecutor, cmd.WalletID, userID)
	if err != nil {
		return nil, fmt.Errorf("create expense: wallet %s: %w", cmd.WalletID, err)
	}
	bucket, err := s.bucketRepo.GetForUpdate(ctx, txExecutor, cmd.BucketID, userID)
	if err != nil {
		return nil, fmt.Errorf("create expense: bucket %s: %w", cmd.BucketID, err)
	}
	if _, err := s.categoryRepo.GetByID(ctx, txExecutor, cmd.CategoryID, userID); err != nil {
		return nil, fmt.Errorf("create expense: category %s: %w", cmd.CategoryID, err)
	}

	expense := domain.NewExpense(userID, wallet.ID, bucket.ID, cmd.CategoryID,
		cmd.Title, cmd.Description, cmd.Source, cmd.Value, cmd.Date)
	if err := s.expenseRepo.Create(ctx, txExecutor, expense); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	if err := s.walletRepo.AdjustBalance(ctx, txExecutor, wallet.ID, cmd.Value.Neg()); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}
	if err := s.bucketRepo.AdjustBalance(ctx, txExecutor, bucket.ID, cmd.Value.Neg()); err != nil {
		return nil, fmt.Errorf("create expense: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create expense: failed to commit transaction: %w", err)
	}
	return expense, nil
}

// Update edits an expense: the old value is credited back to the old wallet
// and bucket (skipped when they no longer exist) and the new value is debited
// from the new ones. The new wallet, bucket and category must all exist and
// belong to the user.
func (s *expenseService) Update(ctx context.Context, userID string, cmd command.UpdateExpense) (*domain.Expense, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	txController, txExecutor, err := beginTxExecutor(ctx, s.beginTx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}
	defer s.rollbackTx(txController)

	existing, err := s.expenseRepo.GetByID(ctx, txExecutor, cmd.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("update expense: expense %s: %w", cmd.ID, err)
	}

	wallet, err := s.walletRepo.GetForUpdate(ctx, txExecutor, cmd.WalletID, userID)
	if err != nil {
		return nil, fmt.Errorf("update expense: wallet %s: %w", cmd.WalletID, err)
	}
	bucket, err := s.bucketRepo.GetForUpdate(ctx, txExecutor, cmd.BucketID, userID)
	if err != nil {
		return nil, fmt.Errorf("update expense: bucket %s: %w", cmd.BucketID, err)
	}
	if _, err := s.categoryRepo.GetByID(ctx, txExecutor, cmd.CategoryID, userID); err != nil {
		return nil, fmt.Errorf("update expense: category %s: %w", cmd.CategoryID, err)
	}

	if err := s.reconcileWallet(ctx, txExecutor, userID, existing, wallet.ID, cmd); err != nil {
		return nil, err
	}
	if err := s.reconcileBucket(ctx, txExecutor, userID, existing, bucket.ID, cmd); err != nil {
		return nil, err
	}

	existing.WalletID = wallet.ID
	existing.BucketID = bucket.ID
	existing.CategoryID = cmd.CategoryID
	existing.Title = cmd.Title
	existing.Description = cmd.Description
	existing.Value = cmd.Value
	existing.Source = cmd.Source
	existing.Date = cmd.Date
	if err := s.expenseRepo.Update(ctx, txExecutor, existing); err != nil {
		return nil, fmt.Errorf("update expense: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("update expense: failed to commit transaction: %w", err)
	}
	return existing, nil
}

func (s *expenseService) reconcileWallet(ctx context.Context, q repository.DBExecutor, userID string, existing *domain.Expense, newWalletID string, cmd command.UpdateExpense) error {
	if existing.WalletID == newWalletID {
		// Single wallet: undo the old debit and apply the new one at once.
		if err := s.walletRepo.AdjustBalance(ctx, q, newWalletID, existing.Value.Sub(cmd.Value)); err != nil {
			return fmt.Errorf("update expense: %w", err)
		}
		return nil
	}
	oldWallet, err := s.walletRepo.GetForUpdate(ctx, q, existing.WalletID, userID)
	if err != nil && !errors.Is(err, util.ErrNotFound) {
		return fmt.Errorf("update expense: %w", err)
	}
	if oldWallet != nil {
		if err := s.walletRepo.AdjustBalance(ctx, q, oldWallet.ID, existing.Value); err != nil {
			return fmt.Errorf("update expense: %w", err)
		}
	}
	if err := s.walletRepo.AdjustBalance(ctx, q, newWalletID, cmd.Value.Neg()); err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

func (s *expenseService) reconcileBucket(ctx context.Context, q repository.DBExecutor, userID string, existing *domain.Expense, newBucketID string, cmd command.UpdateExpense) error {
	if existing.BucketID == newBucketID {
		if err := s.bucketRepo.AdjustBalance(ctx, q, newBucketID, existing.Value.Sub(cmd.Value)); err != nil {
			return fmt.Errorf("update expense: %w", err)
		}
		return nil
	}
	oldBucket, err := s.bucketRepo.GetForUpdate(ctx, q, existing.BucketID, userID)
	if err != nil && !errors.Is(err, util.ErrNotFound) {
		return fmt.Errorf("update expense: %w", err)
	}
	if oldBucket != nil {
		if err := s.bucketRepo.AdjustBalance(ctx, q, oldBucket.ID, existing.Value); err != nil {
			return fmt.Errorf("update expense: %w", err)
		}
	}
	if err := s.bucketRepo.AdjustBalance(ctx, q, newBucketID, cmd.Value.Neg()); err != nil {
		return fmt.Errorf("update expense: %w", err)
	}
	return nil
}

// Delete credits the expense value back to its wallet and bucket, skipping
// either if it has since been deleted, then removes the expense.
func (s *expenseService) Delete(ctx context.Context, userID, id string) error {
	txController, txExecutor, err := beginTxExecutor(ctx, s.beginTx, s.dbBeginner)
	if err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}
	defer s.rollbackTx(txController)

	existing, err := s.expenseRepo.GetByID(ctx, txExecutor, id, userID)
	if err != nil {
		return fmt.Errorf("delete expense: expense %s: %w", id, err)
	}

	wallet, err := s.walletRepo.GetForUpdate(ctx, txExecutor, existing.WalletID, userID)
	if err != nil && !errors.Is(err, util.ErrNotFound) {
		return fmt.Errorf("delete expense: %w", err)
	}
	if wallet != nil {
		if err := s.walletRepo.AdjustBalance(ctx, txExecutor, wallet.ID, existing.Value); err != nil {
			return fmt.Errorf("delete expense: %w", err)
		}
	}

	bucket, err := s.bucketRepo.GetForUpdate(ctx, txExecutor, existing.BucketID, userID)
	if err != nil && !errors.Is(err, util.ErrNotFound) {
		return fmt.Errorf("delete expense: %w", err)
	}
	if bucket != nil {
		if err := s.bucketRepo.AdjustBalance(ctx, txExecutor, bucket.ID, existing.Value); err != nil {
			return fmt.Errorf("delete expense: %w", err)
		}
	}

	if err := s.expenseRepo.Delete(ctx, txExecutor, existing.ID, userID); err != nil {
		return fmt.Errorf("delete expense: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return fmt.Errorf("delete expense: failed to commit transaction: %w", err)
	}
	return nil
}

// Get retrieves one expense owned by the user.
func (s *expenseService) Get(ctx context.Context, userID, id string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, s.dbExecutor, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get expense %s: %w", id, err)
	}
	return expense, nil
}

// List retrieves the user's expenses, most recent date first.
func (s *expenseService) List(ctx context.Context, userID string) ([]domain.Expense, error) {
	expenses, err := s.expenseRepo.ListByUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list expenses: %w", err)
	}
	return expenses, nil
}
