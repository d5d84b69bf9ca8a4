// internal/command/command.go

// Package command defines the typed mutation payloads the reconciliation
// services consume. Commands arrive already scoped to an authenticated user;
// Validate enforces the field-level contract (string lengths, value bounds,
// date not in the future) before any transaction is opened.
package command

import (
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"pocketbook/internal/util"
)

var validate = validator.New()

// Value bounds shared by all monetary commands: NUMERIC(12,2), two
// fractional digits, magnitude below one million.
var (
	maxValue = decimal.RequireFromString("999999.99")
	minValue = maxValue.Neg()
)

func validateStruct(c interface{}) error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%v: %w", err, util.ErrInvalidInput)
	}
	return nil
}

func validatePositiveValue(value decimal.Decimal) error {
	if value.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("value must be greater than 0: %w", util.ErrInvalidInput)
	}
	if value.GreaterThan(maxValue) {
		return fmt.Errorf("value must be less than 1,000,000: %w", util.ErrInvalidInput)
	}
	if value.Exponent() < -2 {
		return fmt.Errorf("value must have at most 2 decimal places: %w", util.ErrInvalidInput)
	}
	return nil
}

// validateSignedValue allows negative values: a negative expense is a
// refund that credits the wallet and bucket.
func validateSignedValue(value decimal.Decimal) error {
	if value.GreaterThan(maxValue) || value.LessThan(minValue) {
		return fmt.Errorf("value magnitude must be less than 1,000,000: %w", util.ErrInvalidInput)
	}
	if value.Exponent() < -2 {
		return fmt.Errorf("value must have at most 2 decimal places: %w", util.ErrInvalidInput)
	}
	return nil
}

func validateDateNotFuture(date time.Time) error {
	if date.After(time.Now()) {
		return fmt.Errorf("date must not be in the future: %w", util.ErrInvalidInput)
	}
	return nil
}

// CreateEarning records new income against a wallet.
type CreateEarning struct {
	WalletID    string          `json:"wallet_id" validate:"required,uuid"`
	Title       string          `json:"title" validate:"required,max=100"`
	Description string          `json:"description" validate:"required,max=255"`
	Value       decimal.Decimal `json:"value"`
	Source      string          `json:"source" validate:"max=100"`
	Date        time.Time       `json:"date"`
}

func (c CreateEarning) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if err := validatePositiveValue(c.Value); err != nil {
		return err
	}
	return validateDateNotFuture(c.Date)
}

// UpdateEarning edits an existing earning, possibly moving it to another
// wallet and/or changing its value.
type UpdateEarning struct {
	ID          string          `json:"id" validate:"required,uuid"`
	WalletID    string          `json:"wallet_id" validate:"required,uuid"`
	Title       string          `json:"title" validate:"required,max=100"`
	Description string          `json:"description" validate:"required,max=255"`
	Value       decimal.Decimal `json:"value"`
	Source      string          `json:"source" validate:"max=100"`
	Date        time.Time       `json:"date"`
}

func (c UpdateEarning) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if err := validatePositiveValue(c.Value); err != nil {
		return err
	}
	return validateDateNotFuture(c.Date)
}

// CreateExpense debits one wallet and one bucket.
type CreateExpense struct {
	WalletID    string          `json:"wallet_id" validate:"required,uuid"`
	BucketID    string          `json:"bucket_id" validate:"required,uuid"`
	CategoryID  string          `json:"category_id" validate:"required,uuid"`
	Title       string          `json:"title" validate:"required,max=100"`
	Description string          `json:"description" validate:"max=255"`
	Value       decimal.Decimal `json:"value"`
	Source      string          `json:"source" validate:"max=100"`
	Date        time.Time       `json:"date"`
}

func (c CreateExpense) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if err := validateSignedValue(c.Value); err != nil {
		return err
	}
	return validateDateNotFuture(c.Date)
}

// UpdateExpense edits an existing expense, possibly reassigning its wallet,
// bucket or category.
type UpdateExpense struct {
	ID          string          `json:"id" validate:"required,uuid"`
	WalletID    string          `json:"wallet_id" validate:"required,uuid"`
	BucketID    string          `json:"bucket_id" validate:"required,uuid"`
	CategoryID  string          `json:"category_id" validate:"required,uuid"`
	Title       string          `json:"title" validate:"required,max=100"`
	Description string          `json:"description" validate:"max=255"`
	Value       decimal.Decimal `json:"value"`
	Source      string          `json:"source" validate:"max=100"`
	Date        time.Time       `json:"date"`
}

func (c UpdateExpense) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if err := validateSignedValue(c.Value); err != nil {
		return err
	}
	return validateDateNotFuture(c.Date)
}

// CreateMovement transfers value between two wallets of the same user.
type CreateMovement struct {
	WalletIDSource string          `json:"wallet_id_source" validate:"required,uuid"`
	WalletIDTarget string          `json:"wallet_id_target" validate:"required,uuid"`
	Value          decimal.Decimal `json:"value"`
	Date           time.Time       `json:"date"`
}

func (c CreateMovement) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if c.WalletIDSource == c.WalletIDTarget {
		return fmt.Errorf("source and target wallets must be different: %w", util.ErrBadRequest)
	}
	return validatePositiveValue(c.Value)
}

// UpdateMovement edits an existing movement, possibly against a different
// wallet pair.
type UpdateMovement struct {
	ID             string          `json:"id" validate:"required,uuid"`
	WalletIDSource string          `json:"wallet_id_source" validate:"required,uuid"`
	WalletIDTarget string          `json:"wallet_id_target" validate:"required,uuid"`
	Value          decimal.Decimal `json:"value"`
	Date           time.Time       `json:"date"`
}

func (c UpdateMovement) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if c.WalletIDSource == c.WalletIDTarget {
		return fmt.Errorf("source and target wallets must be different: %w", util.ErrBadRequest)
	}
	return validatePositiveValue(c.Value)
}

// CreateWallet opens a wallet with an optional non-negative starting balance.
type CreateWallet struct {
	Name    string          `json:"name" validate:"required,max=255"`
	Balance decimal.Decimal `json:"balance"`
}

func (c CreateWallet) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	if c.Balance.IsNegative() {
		return fmt.Errorf("balance must be 0 or greater: %w", util.ErrInvalidInput)
	}
	return nil
}

// UpdateWallet renames a wallet. Balances are never edited directly.
type UpdateWallet struct {
	ID   string `json:"id" validate:"required,uuid"`
	Name string `json:"name" validate:"required,max=255"`
}

func (c UpdateWallet) Validate() error {
	return validateStruct(c)
}

// CreateBucket opens a budget envelope with a percentage claim in [0, 100].
type CreateBucket struct {
	Name    string          `json:"name" validate:"required,max=255"`
	Budget  decimal.Decimal `json:"budget"`
	Balance decimal.Decimal `json:"balance"`
}

func (c CreateBucket) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	return validateBucketFields(c.Budget, c.Balance)
}

// UpdateBucket edits a bucket's name and budget percentage. Editing the
// budget never touches allocations already recorded against the bucket.
type UpdateBucket struct {
	ID      string          `json:"id" validate:"required,uuid"`
	Name    string          `json:"name" validate:"required,max=255"`
	Budget  decimal.Decimal `json:"budget"`
	Balance decimal.Decimal `json:"balance"`
}

func (c UpdateBucket) Validate() error {
	if err := validateStruct(c); err != nil {
		return err
	}
	return validateBucketFields(c.Budget, c.Balance)
}

func validateBucketFields(budget, balance decimal.Decimal) error {
	if budget.IsNegative() || budget.GreaterThan(decimal.NewFromInt(100)) {
		return fmt.Errorf("budget must be between 0 and 100: %w", util.ErrInvalidInput)
	}
	if balance.IsNegative() {
		return fmt.Errorf("balance must be 0 or greater: %w", util.ErrInvalidInput)
	}
	return nil
}

// CreateCategory adds an expense label.
type CreateCategory struct {
	Name string `json:"name" validate:"required,max=255"`
}

func (c CreateCategory) Validate() error {
	return validateStruct(c)
}

// UpdateCategory renames an expense label.
type UpdateCategory struct {
	ID   string `json:"id" validate:"required,uuid"`
	Name string `json:"name" validate:"required,max=255"`
}

func (c UpdateCategory) Validate() error {
	return validateStruct(c)
}
