// internal/service/movement_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"pocketbook/internal/command"
	"pocketbook/internal/domain"
	"pocketbook/internal/util"
	"pocketbook/pkg/db"
)

const (
	testWallet3    = "4a9c2e7b-6d1f-4c8a-b3e5-9f2d7c4a1b11"
	testMovementID = "8f1e6b4a-3d9c-4a7e-c2b5-1a8d6f3e9b12"
)

type movementMocks struct {
	walletRepo   *MockWalletRepository
	movementRepo *MockMovementRepository
	dbBeginner   *MockDBBeginner
	dbExecutor   *MockDBExecutor
	txController *MockTxController
}

func newMovementService(t *testing.T) (MovementService, *movementMocks) {
	t.Helper()
	m := &movementMocks{
		walletRepo:   new(MockWalletRepository),
		movementRepo: new(MockMovementRepository),
		dbBeginner:   new(MockDBBeginner),
		dbExecutor:   new(MockDBExecutor),
		txController: new(MockTxController),
	}
	svc := NewMovementService(
		m.dbBeginner,
		m.dbExecutor,
		m.walletRepo,
		m.movementRepo,
		func(ctx context.Context, dbConn db.DBTxBeginner) (db.TxController, error) {
			return m.txController, nil
		},
		func(tx db.TxController) error {
			return m.txController.Commit()
		},
		func(tx db.TxController) {
			_ = m.txController.Rollback()
		},
	)
	return svc, m
}

func (m *movementMocks) assertAll(t *testing.T) {
	t.Helper()
	mock.AssertExpectationsForObjects(t, m.walletRepo, m.movementRepo, m.dbBeginner, m.txController)
}

func TestMovementCreate(t *testing.T) {
	baseCmd := command.CreateMovement{
		WalletIDSource: testWalletID,
		WalletIDTarget: testWallet2,
		Value:          decimal.RequireFromString("150"),
		Date:           time.Now().Add(-time.Hour),
	}

	t.Run("DebitsSourceCreditsTarget", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newMovementService(t)

		source := &domain.Wallet{ID: testWalletID, UserID: testUserID}
		target := &domain.Wallet{ID: testWallet2, UserID: testUserID}
		m.walletRepo.On("GetForUpdate", ctx, mock.Anything, testWalletID, testUserID).Return(source, nil).Once()
		m.walletRepo.On("GetForUpdate", ctx, mock.Anything, testWallet2, testUserID).Return(target, nil).Once()
		m.movementRepo.On("Create", ctx, mock.Anything, mock.AnythingOfType("*domain.Movement")).Return(nil).Once()
		m.walletRepo.On("AdjustBalance", ctx, mock.Anything, testWalletID, decEq("-150")).Return(nil).Once()
		m.walletRepo.On("AdjustBalance", ctx, mock.Anything, testWallet2, decEq("150")).Return(nil).Once()
		m.txController.On("Commit").Return(nil).Once()
		m.txController.On("Rollback").Return(nil).Maybe()

		movement, err := svc.Create(ctx, testUserID, baseCmd)

		assert.NoError(t, err)
		assert.NotNil(t, movement)
		assert.Equal(t, testWalletID, movement.WalletIDSource)
		assert.Equal(t, testWallet2, movement.WalletIDTarget)
		m.assertAll(t)
	})

	t.Run("SameSourceAndTarget", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newMovementService(t)

		cmd := baseCmd
		cmd.WalletIDTarget = testWalletID
		movement, err := svc.Create(ctx, testUserID, cmd)

		assert.ErrorIs(t, err, util.ErrBadRequest)
		assert.Nil(t, movement)
		m.txController.AssertNotCalled(t, "Rollback")
		m.txController.AssertNotCalled(t, "Commit")
		m.assertAll(t)
	})

	t.Run("TargetNotFound", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newMovementService(t)

		source := &domain.Wallet{ID: testWalletID, UserID: testUserID}
		m.walletRepo.On("GetForUpdate", ctx, mock.Anything, testWalletID, testUserID).Return(source, nil).Once()
		m.walletRepo.On("GetForUpdate", ctx, mock.Anything, testWallet2, testUserID).Return(nil, util.ErrNotFound).Once()
		m.txController.On("Rollback").Return(nil).Once()

		movement, err := svc.Create(ctx, testUserID, baseCmd)

		assert.ErrorIs(t, err, util.ErrNotFound)
		assert.Nil(t, movement)
		m.walletRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		m.txController.AssertNotCalled(t, "Commit")
		m.assertAll(t)
	})
}

func TestMovementUpdate(t *testing.T) {
	existing := func() *domain.Movement {
		return &domain.Movement{
			ID:             testMovementID,
			UserID:         testUserID,
			WalletIDSource: testWalletID,
			WalletIDTarget: testWallet2,
			Value:          decimal.RequireFromString("150"),
		}
	}

	t.Run("ReversesOldPairAppliesNewPair", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newMovementService(t)

		// The transfer is redirected to a third wallet with a new value:
		// the old pair is fully reversed, then the new pair is applied.
		cmd := command.UpdateMovement{
			ID:             testMovementID,
			WalletIDSource: testWalletID,
			WalletIDTarget: testWallet3,
			Value:          decimal.RequireFromString("200"),
			Date:           time.Now().Add(-time.Hour),
		}

		source := &domain.Wallet{ID: testWalletID, UserID: testUserID}
		oldTarget := &domain.Wallet{ID: testWallet2, UserID: testUserID}
		newTarget := &domain.Wallet{ID: testWallet3, UserID: testUserID}

		m.movementRepo.On("GetByID", ctx, mock.Anything, testMovementID, testUserID).Return(existing(), nil).Once()
		m.walletRepo.On("GetForUpdate", ctx, mock.Anything, testWalletID, testUserID).Return(source, nil).Twice()
		m.walletRepo.On("GetForUpdate", ctx, mock.Anything, testWallet3, testUserID).Return(newTarget, nil).Once()
		m.walletRepo.On("GetForUpdate", ctx, mock.Anything, testWallet2, testUserID).Return(oldTarget, nil).Once()
		m.walletRepo.On("AdjustBalance", ctx, mock.Anything, testWalletID, decEq("150")).Return(nil).Once()
		m.walletRepo.On("AdjustBalance", ctx, mock.Anything, testWallet2, decEq("-150")).Return(nil).Once()
		m.walletRepo.On("AdjustBalance", ctx, mock.Anything, testWalletID, decEq("-200")).Return(nil).Once()
		m.walletRepo.On("AdjustBalance", ctx, mock.Anything, testWallet3, decEq("200")).Return(nil).Once()
		m.movementRepo.On("Update", ctx, mock.Anything, mock.AnythingOfType("*domain.Movement")).Return(nil).Once()
		m.txController.On("Commit").Return(nil).Once()
		m.txController.On("Rollback").Return(nil).Maybe()

		movement, err := svc.Update(ctx, testUserID, cmd)

		assert.NoError(t, err)
		assert.Equal(t, testWallet3, movement.WalletIDTarget)
		assert.True(t, movement.Value.Equal(decimal.RequireFromString("200")))
		m.assertAll(t)
	})

	t.Run("OldWalletGoneIsTolerated", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newMovementService(t)

		cmd := command.UpdateMovement{
			ID:             testMovementID,
			WalletIDSource: testWallet3,
			WalletIDTarget: testWallet2,
			Value:          decimal.RequireFromString("150"),
			Date:           time.Now().Add(-time.Hour),
		}

		oldTarget := &domain.Wallet{ID: testWallet2, UserID: testUserID}
		newSource := &domain.Wallet{ID: testWallet3, UserID: testUserID}

		m.movementRepo.On("GetByID", ctx, mock.Anything, testMovementID, testUserID).Return(existing(), nil).Once()
		m.walletRepo.On("GetForUpdate", ctx, mock.Anything, testWallet3, testUserID).Return(newSource, nil).Once()
		m.walletRepo.On("GetForUpdate", ctx, mock.Anything, testWallet2, testUserID).Return(oldTarget, nil).Twice()
		// The old source wallet has been deleted: its half of the reversal
		// is skipped.
		m.walletRepo.On("GetForUpdate", ctx, mock.Anything, testWalletID, testUserID).Return(nil, util.ErrNotFound).Once()
		m.walletRepo.On("AdjustBalance", ctx, mock.Anything, testWallet2, decEq("-150")).Return(nil).Once()
		m.walletRepo.On("AdjustBalance", ctx, mock.Anything, testWallet3, decEq("-150")).Return(nil).Once()
		m.walletRepo.On("AdjustBalance", ctx, mock.Anything, testWallet2, decEq("150")).Return(nil).Once()
		m.movementRepo.On("Update", ctx, mock.Anything, mock.AnythingOfType("*domain.Movement")).Return(nil).Once()
		m.txController.On("Commit").Return(nil).Once()
		m.txController.On("Rollback").Return(nil).Maybe()

		movement, err := svc.Update(ctx, testUserID, cmd)

		assert.NoError(t, err)
		assert.NotNil(t, movement)
		m.walletRepo.AssertNotCalled(t, "AdjustBalance", ctx, mock.Anything, testWalletID, mock.Anything)
		m.assertAll(t)
	})
}

func TestMovementDelete(t *testing.T) {
	existing := func() *domain.Movement {
		return &domain.Movement{
			ID:             testMovementID,
			UserID:         testUserID,
			WalletIDSource: testWalletID,
			WalletIDTarget: testWallet2,
			Value:          decimal.RequireFromString("150"),
		}
	}

	t.Run("ReversesTransfer", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newMovementService(t)

		source := &domain.Wallet{ID: testWalletID, UserID: testUserID}
		target := &domain.Wallet{ID: testWallet2, UserID: testUserID}
		m.movementRepo.On("GetByID", ctx, mock.Anything, testMovementID, testUserID).Return(existing(), nil).Once()
		m.walletRepo.On("GetForUpdate", ctx, mock.Anything, testWalletID, testUserID).Return(source, nil).Once()
		m.walletRepo.On("GetForUpdate", ctx, mock.Anything, testWallet2, testUserID).Return(target, nil).Once()
		m.walletRepo.On("AdjustBalance", ctx, mock.Anything, testWalletID, decEq("150")).Return(nil).Once()
		m.walletRepo.On("AdjustBalance", ctx, mock.Anything, testWallet2, decEq("-150")).Return(nil).Once()
		m.movementRepo.On("Delete", ctx, mock.Anything, testMovementID, testUserID).Return(nil).Once()
		m.txController.On("Commit").Return(nil).Once()
		m.txController.On("Rollback").Return(nil).Maybe()

		err := svc.Delete(ctx, testUserID, testMovementID)

		assert.NoError(t, err)
		m.assertAll(t)
	})

	t.Run("BothWalletsGone", func(t *testing.T) {
		ctx := context.Background()
		svc, m := newMovementService(t)

		m.movementRepo.On("GetByID", ctx, mock.Anything, testMovementID, testUserID).Return(existing(), nil).Once()
		m.walletRepo.On("GetForUpdate", ctx, mock.Anything, testWalletID, testUserID).Return(nil, util.ErrNotFound).Once()
		m.walletRepo.On("GetForUpdate", ctx, mock.Anything, testWallet2, testUserID).Return(nil, util.ErrNotFound).Once()
		m.movementRepo.On("Delete", ctx, mock.Anything, testMovementID, testUserID).Return(nil).Once()
		m.txController.On("Commit").Return(nil).Once()
		m.txController.On("Rollback").Return(nil).Maybe()

		err := svc.Delete(ctx, testUserID, testMovementID)

		assert.NoError(t, err)
		m.walletRepo.AssertNotCalled(t, "AdjustBalance", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		m.assertAll(t)
	})
}
