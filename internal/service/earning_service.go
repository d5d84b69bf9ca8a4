// internal/service/earning_service.go
package service

import (
	"context"
	"errors"
	"fmt"

	"pocketbook/internal/allocation"
	"pocketbook/internal/command"
	"pocketbook/internal/domain"
	"pocketbook/internal/repository"
	"pocketbook/internal/util"
	"pocketbook/pkg/db"
)

// EarningService reconciles earnings against wallet and bucket balances.
// Every mutation runs inside a single transaction: a precondition failure
// aborts with zero observable side effects.
type EarningService interface {
	Create(ctx context.Context, userID string, cmd command.CreateEarning) (*domain.Earning, error)
	Update(ctx context.Context, userID string, cmd command.UpdateEarning) (*domain.Earning, error)
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*domain.Earning, error)
	List(ctx context.Context, userID string) ([]domain.Earning, error)
	ListAllocations(ctx context.Context, userID, id string) ([]domain.EarningAllocation, error)
}

type earningService struct {
	dbBeginner  db.DBTxBeginner
	dbExecutor  repository.DBExecutor
	walletRepo  repository.WalletRepository
	bucketRepo  repository.BucketRepository
	earningRepo repository.EarningRepository
	beginTx     db.BeginTxFunc
	commitTx    db.CommitTxFunc
	rollbackTx  db.RollbackTxFunc
}

// NewEarningService creates a new instance of EarningService.
func NewEarningService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	walletRepo repository.WalletRepository,
	bucketRepo repository.BucketRepository,
	earningRepo repository.EarningRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) EarningService {
	return &earningService{
		dbBeginner:  dbBeginner,
		dbExecutor:  dbExecutor,
		walletRepo:  walletRepo,
		bucketRepo:  bucketRepo,
		earningRepo: earningRepo,
		beginTx:     beginTx,
		commitTx:    commitTx,
		rollbackTx:  rollbackTx,
	}
}

func bucketShares(buckets []domain.Bucket) []allocation.BucketShare {
	shares := make([]allocation.BucketShare, 0, len(buckets))
	for _, b := range buckets {
		shares = append(shares, allocation.BucketShare{BucketID: b.ID, Budget: b.Budget})
	}
	return shares
}

// Create records an earning: the wallet is credited with the full value and
// every bucket receives its budget share, snapshotted on an allocation row.
func (s *earningService) Create(ctx context.Context, userID string, cmd command.CreateEarning) (*domain.Earning, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	txController, txExecutor, err := beginTxExecutor(ctx, s.beginTx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create earning: %w", err)
	}
	defer s.rollbackTx(txController)

	wallet, err := s.walletRepo.GetForUpdate(ctx, txExecutor, cmd.WalletID, userID)
	if err != nil {
		return nil, fmt.Errorf("create earning: wallet %s: %w", cmd.WalletID, err)
	}

	buckets, err := s.bucketRepo.ListByUser(ctx, txExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("create earning: %w", err)
	}

	allocations, err := allocation.Split(cmd.Value, bucketShares(buckets))
	if err != nil {
		return nil, fmt.Errorf("create earning: %w", err)
	}

	earning := domain.NewEarning(userID, wallet.ID, cmd.Title, cmd.Description, cmd.Source, cmd.Value, cmd.Date)
	if err := s.earningRepo.Create(ctx, txExecutor, earning); err != nil {
		return nil, fmt.Errorf("create earning: %w", err)
	}

	if err := s.walletRepo.AdjustBalance(ctx, txExecutor, wallet.ID, cmd.Value); err != nil {
		return nil, fmt.Errorf("create earning: %w", err)
	}

	for _, a := range allocations {
		earningAllocation := domain.NewEarningAllocation(earning.ID, a.BucketID, a.Value, a.BucketPercentage)
		if err := s.earningRepo.CreateAllocation(ctx, txExecutor, earningAllocation); err != nil {
			return nil, fmt.Errorf("create earning: %w", err)
		}
		if err := s.bucketRepo.AdjustBalance(ctx, txExecutor, a.BucketID, a.Value); err != nil {
			return nil, fmt.Errorf("create earning: %w", err)
		}
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create earning: failed to commit transaction: %w", err)
	}
	return earning, nil
}

// Update edits an earning and reconciles every balance it touched.
//
// The 100%-budget invariant is re-validated against the buckets' *current*
// percentages, while allocation recomputation uses each allocation's
// *snapshotted* percentage. The asymmetry is deliberate: an earning's split
// must stay historically accurate even after the buckets' budgets change,
// but an edit is only accepted while the user's budget is coherent.
func (s *earningService) Update(ctx context.Context, userID string, cmd command.UpdateEarning) (*domain.Earning, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	txController, txExecutor, err := beginTxExecutor(ctx, s.beginTx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("update earning: %w", err)
	}
	defer s.rollbackTx(txController)

	existing, err := s.earningRepo.GetByID(ctx, txExecutor, cmd.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("update earning: earning %s: %w", cmd.ID, err)
	}

	wallet, err := s.walletRepo.GetForUpdate(ctx, txExecutor, cmd.WalletID, userID)
	if err != nil {
		return nil, fmt.Errorf("update earning: wallet %s: %w", cmd.WalletID, err)
	}

	buckets, err := s.bucketRepo.ListByUser(ctx, txExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("update earning: %w", err)
	}
	if err := allocation.ValidateBudgets(bucketShares(buckets)); err != nil {
		return nil, fmt.Errorf("update earning: %w", err)
	}

	// Wallet reconciliation: move the whole value when the wallet changed,
	// otherwise adjust the single wallet by the delta.
	if existing.WalletID != wallet.ID {
		oldWallet, err := s.walletRepo.GetForUpdate(ctx, txExecutor, existing.WalletID, userID)
		if err != nil && !errors.Is(err, util.ErrNotFound) {
			return nil, fmt.Errorf("update earning: %w", err)
		}
		if oldWallet != nil {
			if err := s.walletRepo.AdjustBalance(ctx, txExecutor, oldWallet.ID, existing.Value.Neg()); err != nil {
				return nil, fmt.Errorf("update earning: %w", err)
			}
		}
		if err := s.walletRepo.AdjustBalance(ctx, txExecutor, wallet.ID, cmd.Value); err != nil {
			return nil, fmt.Errorf("update earning: %w", err)
		}
	} else {
		if err := s.walletRepo.AdjustBalance(ctx, txExecutor, wallet.ID, cmd.Value.Sub(existing.Value)); err != nil {
			return nil, fmt.Errorf("update earning: %w", err)
		}
	}

	// Reverse every live allocation, lazily tombstoning any whose bucket
	// has been deleted since the last edit.
	existingAllocations, err := s.earningRepo.ListAllocations(ctx, txExecutor, existing.ID)
	if err != nil {
		return nil, fmt.Errorf("update earning: %w", err)
	}

	live := make([]domain.EarningAllocation, 0, len(existingAllocations))
	for _, a := range existingAllocations {
		if a.BucketID == nil {
			continue
		}
		bucket, err := s.bucketRepo.GetForUpdate(ctx, txExecutor, *a.BucketID, userID)
		if errors.Is(err, util.ErrNotFound) {
			if err := s.earningRepo.ClearAllocationBucket(ctx, txExecutor, a.ID); err != nil {
				return nil, fmt.Errorf("update earning: %w", err)
			}
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("update earning: %w", err)
		}
		if err := s.bucketRepo.AdjustBalance(ctx, txExecutor, bucket.ID, a.Value.Neg()); err != nil {
			return nil, fmt.Errorf("update earning: %w", err)
		}
		live = append(live, a)
	}

	// Rescale from each allocation's original percentage snapshot. The
	// allocation set is fixed at creation time: no new buckets join, no
	// allocations are dropped, only values change.
	for _, a := range live {
		newValue := allocation.Rescale(cmd.Value, a.BucketPercentage)
		if err := s.earningRepo.UpdateAllocationValue(ctx, txExecutor, a.ID, newValue); err != nil {
			return nil, fmt.Errorf("update earning: %w", err)
		}
		if err := s.bucketRepo.AdjustBalance(ctx, txExecutor, *a.BucketID, newValue); err != nil {
			return nil, fmt.Errorf("update earning: %w", err)
		}
	}

	existing.WalletID = wallet.ID
	existing.Title = cmd.Title
	existing.Description = cmd.Description
	existing.Value = cmd.Value
	existing.Source = cmd.Source
	existing.Date = cmd.Date
	if err := s.earningRepo.Update(ctx, txExecutor, existing); err != nil {
		return nil, fmt.Errorf("update earning: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("update earning: failed to commit transaction: %w", err)
	}
	return existing, nil
}

// Delete reverses the earning's wallet credit and every live allocation's
// bucket credit, then removes the earning and its allocations. Wallets and
// buckets that have since been deleted are skipped, mirroring expense delete.
func (s *earningService) Delete(ctx context.Context, userID, id string) error {
	txController, txExecutor, err := beginTxExecutor(ctx, s.beginTx, s.dbBeginner)
	if err != nil {
		return fmt.Errorf("delete earning: %w", err)
	}
	defer s.rollbackTx(txController)

	existing, err := s.earningRepo.GetByID(ctx, txExecutor, id, userID)
	if err != nil {
		return fmt.Errorf("delete earning: earning %s: %w", id, err)
	}

	wallet, err := s.walletRepo.GetForUpdate(ctx, txExecutor, existing.WalletID, userID)
	if err != nil && !errors.Is(err, util.ErrNotFound) {
		return fmt.Errorf("delete earning: %w", err)
	}
	if wallet != nil {
		if err := s.walletRepo.AdjustBalance(ctx, txExecutor, wallet.ID, existing.Value.Neg()); err != nil {
			return fmt.Errorf("delete earning: %w", err)
		}
	}

	allocations, err := s.earningRepo.ListAllocations(ctx, txExecutor, existing.ID)
	if err != nil {
		return fmt.Errorf("delete earning: %w", err)
	}
	for _, a := range allocations {
		if a.BucketID == nil {
			continue
		}
		bucket, err := s.bucketRepo.GetForUpdate(ctx, txExecutor, *a.BucketID, userID)
		if errors.Is(err, util.ErrNotFound) {
			continue
		}
		if err != nil {
			return fmt.Errorf("delete earning: %w", err)
		}
		if err := s.bucketRepo.AdjustBalance(ctx, txExecutor, bucket.ID, a.Value.Neg()); err != nil {
			return fmt.Errorf("delete earning: %w", err)
		}
	}

	if err := s.earningRepo.DeleteAllocationsByEarning(ctx, txExecutor, existing.ID); err != nil {
		return fmt.Errorf("delete earning: %w", err)
	}
	if err := s.earningRepo.Delete(ctx, txExecutor, existing.ID, userID); err != nil {
		return fmt.Errorf("delete earning: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return fmt.Errorf("delete earning: failed to commit transaction: %w", err)
	}
	return nil
}

// Get retrieves one earning owned by the user.
func (s *earningService) Get(ctx context.Context, userID, id string) (*domain.Earning, error) {
	earning, err := s.earningRepo.GetByID(ctx, s.dbExecutor, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get earning %s: %w", id, err)
	}
	return earning, nil
}

// List retrieves the user's earnings, most recent date first.
func (s *earningService) List(ctx context.Context, userID string) ([]domain.Earning, error) {
	earnings, err := s.earningRepo.ListByUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list earnings: %w", err)
	}
	return earnings, nil
}

// ListAllocations retrieves the allocation history of one earning.
func (s *earningService) ListAllocations(ctx context.Context, userID, id string) ([]domain.EarningAllocation, error) {
	if _, err := s.earningRepo.GetByID(ctx, s.dbExecutor, id, userID); err != nil {
		return nil, fmt.Errorf("list allocations: earning %s: %w", id, err)
	}
	allocations, err := s.earningRepo.ListAllocations(ctx, s.dbExecutor, id)
	if err != nil {
		return nil, fmt.Errorf("list allocations: %w", err)
	}
	return allocations, nil
}
