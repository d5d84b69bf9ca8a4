// internal/command/command_test.go
package command

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"pocketbook/internal/util"
)

const (
	walletID = "2b7e4d9a-1c3f-4a8b-9e6d-5f2a8c4b7e02"
	wallet2  = "3c8f1a6d-7b2e-4d9c-a1f5-6e3b8d2a7c08"
	bucketID = "6c1d8f3b-5a2e-4b9c-8d7f-3e1a6b9c2d03"
	catID    = "5d2a7c3f-8e1b-4a6d-9c4e-2f7b5a8d1c09"
)

func validCreateEarning() CreateEarning {
	return CreateEarning{
		WalletID:    walletID,
		Title:       "salary",
		Description: "july paycheck",
		Value:       decimal.RequireFromString("1000"),
		Date:        time.Now().Add(-time.Hour),
	}
}

func TestCreateEarningValidate(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, validCreateEarning().Validate())
	})

	t.Run("MalformedWalletID", func(t *testing.T) {
		cmd := validCreateEarning()
		cmd.WalletID = "not-a-uuid"
		assert.ErrorIs(t, cmd.Validate(), util.ErrInvalidInput)
	})

	t.Run("ZeroValue", func(t *testing.T) {
		cmd := validCreateEarning()
		cmd.Value = decimal.Zero
		assert.ErrorIs(t, cmd.Validate(), util.ErrInvalidInput)
	})

	t.Run("NegativeValue", func(t *testing.T) {
		cmd := validCreateEarning()
		cmd.Value = decimal.RequireFromString("-5")
		assert.ErrorIs(t, cmd.Validate(), util.ErrInvalidInput)
	})

	t.Run("ValueAboveBound", func(t *testing.T) {
		cmd := validCreateEarning()
		cmd.Value = decimal.RequireFromString("1000000")
		assert.ErrorIs(t, cmd.Validate(), util.ErrInvalidInput)
	})

	t.Run("TooManyDecimalPlaces", func(t *testing.T) {
		cmd := validCreateEarning()
		cmd.Value = decimal.RequireFromString("10.005")
		assert.ErrorIs(t, cmd.Validate(), util.ErrInvalidInput)
	})

	t.Run("FutureDate", func(t *testing.T) {
		cmd := validCreateEarning()
		cmd.Date = time.Now().Add(24 * time.Hour)
		assert.ErrorIs(t, cmd.Validate(), util.ErrInvalidInput)
	})
}

func TestCreateExpenseValidate(t *testing.T) {
	valid := func() CreateExpense {
		return CreateExpense{
			WalletID:   walletID,
			BucketID:   bucketID,
			CategoryID: catID,
			Title:      "groceries",
			Value:      decimal.RequireFromString("75.50"),
			Date:       time.Now().Add(-time.Hour),
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("NegativeValueIsAllowed", func(t *testing.T) {
		cmd := valid()
		cmd.Value = decimal.RequireFromString("-20")
		assert.NoError(t, cmd.Validate())
	})

	t.Run("MagnitudeAboveBound", func(t *testing.T) {
		cmd := valid()
		cmd.Value = decimal.RequireFromString("-1000000")
		assert.ErrorIs(t, cmd.Validate(), util.ErrInvalidInput)
	})

	t.Run("MissingBucket", func(t *testing.T) {
		cmd := valid()
		cmd.BucketID = ""
		assert.ErrorIs(t, cmd.Validate(), util.ErrInvalidInput)
	})
}

func TestCreateMovementValidate(t *testing.T) {
	valid := func() CreateMovement {
		return CreateMovement{
			WalletIDSource: walletID,
			WalletIDTarget: wallet2,
			Value:          decimal.RequireFromString("150"),
			Date:           time.Now().Add(-time.Hour),
		}
	}

	t.Run("Valid", func(t *testing.T) {
		assert.NoError(t, valid().Validate())
	})

	t.Run("SameSourceAndTarget", func(t *testing.T) {
		cmd := valid()
		cmd.WalletIDTarget = walletID
		assert.ErrorIs(t, cmd.Validate(), util.ErrBadRequest)
	})

	t.Run("NonPositiveValue", func(t *testing.T) {
		cmd := valid()
		cmd.Value = decimal.Zero
		assert.ErrorIs(t, cmd.Validate(), util.ErrInvalidInput)
	})
}

func TestCreateBucketValidate(t *testing.T) {
	t.Run("BudgetAboveHundred", func(t *testing.T) {
		cmd := CreateBucket{Name: "savings", Budget: decimal.RequireFromString("101")}
		assert.ErrorIs(t, cmd.Validate(), util.ErrInvalidInput)
	})

	t.Run("NegativeBalance", func(t *testing.T) {
		cmd := CreateBucket{Name: "savings", Budget: decimal.RequireFromString("40"), Balance: decimal.RequireFromString("-1")}
		assert.ErrorIs(t, cmd.Validate(), util.ErrInvalidInput)
	})

	t.Run("Valid", func(t *testing.T) {
		cmd := CreateBucket{Name: "savings", Budget: decimal.RequireFromString("40")}
		assert.NoError(t, cmd.Validate())
	})
}
