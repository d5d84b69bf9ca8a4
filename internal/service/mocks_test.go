// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"pocketbook/internal/domain"
	"pocketbook/internal/repository"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockDBBeginner is a mock implementation of db.DBTxBeginner.
type MockDBBeginner struct {
	mock.Mock
}

func (m *MockDBBeginner) BeginTxx(ctx context.Context, opts *sql.TxOptions) (*sqlx.Tx, error) {
	args := m.Called(ctx, opts)
	return &sqlx.Tx{}, args.Error(1)
}

// MockTxController is a mock implementation of db.TxController. Embedding
// MockDBExecutor makes it satisfy repository.DBExecutor too, mirroring how
// *sqlx.Tx plays both roles in production.
type MockTxController struct {
	mock.Mock
	MockDBExecutor
}

func (m *MockTxController) Commit() error {
	args := m.Called()
	return args.Error(0)
}

func (m *MockTxController) Rollback() error {
	args := m.Called()
	return args.Error(0)
}

// MockWalletRepository is a mock implementation of repository.WalletRepository.
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) Create(ctx context.Context, q repository.DBExecutor, wallet *domain.Wallet) error {
	args := m.Called(ctx, q, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) GetByID(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, q, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetForUpdate(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Wallet, error) {
	args := m.Called(ctx, q, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Wallet, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) UpdateName(ctx context.Context, q repository.DBExecutor, id, userID, name string) error {
	args := m.Called(ctx, q, id, userID, name)
	return args.Error(0)
}

func (m *MockWalletRepository) AdjustBalance(ctx context.Context, q repository.DBExecutor, id string, delta decimal.Decimal) error {
	args := m.Called(ctx, q, id, delta)
	return args.Error(0)
}

func (m *MockWalletRepository) Delete(ctx context.Context, q repository.DBExecutor, id, userID string) error {
	args := m.Called(ctx, q, id, userID)
	return args.Error(0)
}

// MockBucketRepository is a mock implementation of repository.BucketRepository.
type MockBucketRepository struct {
	mock.Mock
}

func (m *MockBucketRepository) Create(ctx context.Context, q repository.DBExecutor, bucket *domain.Bucket) error {
	args := m.Called(ctx, q, bucket)
	return args.Error(0)
}

func (m *MockBucketRepository) GetByID(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Bucket, error) {
	args := m.Called(ctx, q, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bucket), args.Error(1)
}

func (m *MockBucketRepository) GetForUpdate(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Bucket, error) {
	args := m.Called(ctx, q, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bucket), args.Error(1)
}

func (m *MockBucketRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Bucket, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Bucket), args.Error(1)
}

func (m *MockBucketRepository) Update(ctx context.Context, q repository.DBExecutor, bucket *domain.Bucket) error {
	args := m.Called(ctx, q, bucket)
	return args.Error(0)
}

func (m *MockBucketRepository) AdjustBalance(ctx context.Context, q repository.DBExecutor, id string, delta decimal.Decimal) error {
	args := m.Called(ctx, q, id, delta)
	return args.Error(0)
}

func (m *MockBucketRepository) Delete(ctx context.Context, q repository.DBExecutor, id, userID string) error {
	args := m.Called(ctx, q, id, userID)
	return args.Error(0)
}

// MockEarningRepository is a mock implementation of repository.EarningRepository.
type MockEarningRepository struct {
	mock.Mock
}

func (m *MockEarningRepository) Create(ctx context.Context, q repository.DBExecutor, earning *domain.Earning) error {
	args := m.Called(ctx, q, earning)
	return args.Error(0)
}

func (m *MockEarningRepository) GetByID(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Earning, error) {
	args := m.Called(ctx, q, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Earning), args.Error(1)
}

func (m *MockEarningRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Earning, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Earning), args.Error(1)
}

func (m *MockEarningRepository) Update(ctx context.Context, q repository.DBExecutor, earning *domain.Earning) error {
	args := m.Called(ctx, q, earning)
	return args.Error(0)
}

func (m *MockEarningRepository) Delete(ctx context.Context, q repository.DBExecutor, id, userID string) error {
	args := m.Called(ctx, q, id, userID)
	return args.Error(0)
}

func (m *MockEarningRepository) CreateAllocation(ctx context.Context, q repository.DBExecutor, allocation *domain.EarningAllocation) error {
	args := m.Called(ctx, q, allocation)
	return args.Error(0)
}

func (m *MockEarningRepository) ListAllocations(ctx context.Context, q repository.DBExecutor, earningID string) ([]domain.EarningAllocation, error) {
	args := m.Called(ctx, q, earningID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.EarningAllocation), args.Error(1)
}

func (m *MockEarningRepository) UpdateAllocationValue(ctx context.Context, q repository.DBExecutor, id string, value decimal.Decimal) error {
	args := m.Called(ctx, q, id, value)
	return args.Error(0)
}

func (m *MockEarningRepository) ClearAllocationBucket(ctx context.Context, q repository.DBExecutor, id string) error {
	args := m.Called(ctx, q, id)
	return args.Error(0)
}

func (m *MockEarningRepository) DeleteAllocationsByEarning(ctx context.Context, q repository.DBExecutor, earningID string) error {
	args := m.Called(ctx, q, earningID)
	return args.Error(0)
}

// MockExpenseRepository is a mock implementation of repository.ExpenseRepository.
type MockExpenseRepository struct {
	mock.Mock
}

func (m *MockExpenseRepository) Create(ctx context.Context, q repository.DBExecutor, expense *domain.Expense) error {
	args := m.Called(ctx, q, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) GetByID(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Expense, error) {
	args := m.Called(ctx, q, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Expense, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Expense), args.Error(1)
}

func (m *MockExpenseRepository) Update(ctx context.Context, q repository.DBExecutor, expense *domain.Expense) error {
	args := m.Called(ctx, q, expense)
	return args.Error(0)
}

func (m *MockExpenseRepository) Delete(ctx context.Context, q repository.DBExecutor, id, userID string) error {
	args := m.Called(ctx, q, id, userID)
	return args.Error(0)
}

// MockMovementRepository is a mock implementation of repository.MovementRepository.
type MockMovementRepository struct {
	mock.Mock
}

func (m *MockMovementRepository) Create(ctx context.Context, q repository.DBExecutor, movement *domain.Movement) error {
	args := m.Called(ctx, q, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) GetByID(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Movement, error) {
	args := m.Called(ctx, q, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Movement, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Movement), args.Error(1)
}

func (m *MockMovementRepository) Update(ctx context.Context, q repository.DBExecutor, movement *domain.Movement) error {
	args := m.Called(ctx, q, movement)
	return args.Error(0)
}

func (m *MockMovementRepository) Delete(ctx context.Context, q repository.DBExecutor, id, userID string) error {
	args := m.Called(ctx, q, id, userID)
	return args.Error(0)
}

// MockCategoryRepository is a mock implementation of repository.CategoryRepository.
type MockCategoryRepository struct {
	mock.Mock
}

func (m *MockCategoryRepository) Create(ctx context.Context, q repository.DBExecutor, category *domain.Category) error {
	args := m.Called(ctx, q, category)
	return args.Error(0)
}

func (m *MockCategoryRepository) GetByID(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Category, error) {
	args := m.Called(ctx, q, id, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Category, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Category), args.Error(1)
}

func (m *MockCategoryRepository) UpdateName(ctx context.Context, q repository.DBExecutor, id, userID, name string) error {
	args := m.Called(ctx, q, id, userID, name)
	return args.Error(0)
}

func (m *MockCategoryRepository) Delete(ctx context.Context, q repository.DBExecutor, id, userID string) error {
	args := m.Called(ctx, q, id, userID)
	return args.Error(0)
}

// decEq matches a decimal argument by numeric value, ignoring exponent
// representation.
func decEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}
