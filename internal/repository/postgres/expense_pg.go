// internal/repository/postgres/expense_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"pocketbook/internal/domain"
	"pocketbook/internal/repository"
	"pocketbook/internal/util"
)

// ExpenseRepository implements repository.ExpenseRepository for PostgreSQL.
type ExpenseRepository struct{}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db *sqlx.DB) repository.ExpenseRepository {
	return &ExpenseRepository{}
}

func (r *ExpenseRepository) Create(ctx context.Context, q repository.DBExecutor, expense *domain.Expense) error {
	query := `INSERT INTO expenses (id, user_id, wallet_id, bucket_id, category_id, title, description, value, source, date, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`
	_, err := q.ExecContext(ctx, query,
		expense.ID, expense.UserID, expense.WalletID, expense.BucketID, expense.CategoryID,
		expense.Title, expense.Description, expense.Value, expense.Source, expense.Date,
		expense.CreatedAt, expense.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create expense: %w", err)
	}
	return nil
}

func (r *ExpenseRepository) GetByID(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Expense, error) {
	var expense domain.Expense
	query := `SELECT id, user_id, wallet_id, bucket_id, category_id, title, description, value, source, date, created_at, updated_at
              FROM expenses WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &expense, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get expense %s: %w", id, err)
	}
	return &expense, nil
}

func (r *ExpenseRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Expense, error) {
	expenses := []domain.Expense{}
	query := `SELECT id, user_id, wallet_id, bucket_id, category_id, title, description, value, source, date, created_at, updated_at
              FROM expenses WHERE user_id = $1 ORDER BY date DESC, created_at DESC`
	if err := q.SelectContext(ctx, &expenses, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list expenses for user %s: %w", userID, err)
	}
	return expenses, nil
}

func (r *ExpenseRepository) Update(ctx context.Context, q repository.DBExecutor, expense *domain.Expense) error {
	query := `UPDATE expenses SET wallet_id = $1, bucket_id = $2, category_id = $3, title = $4, description = $5, value = $6, source = $7, date = $8, updated_at = $9
              WHERE id = $10 AND user_id = $11`
	result, err := q.ExecContext(ctx, query,
		expense.WalletID, expense.BucketID, expense.CategoryID, expense.Title, expense.Description,
		expense.Value, expense.Source, expense.Date, time.Now().UTC(), expense.ID, expense.UserID)
	if err != nil {
		return fmt.Errorf("failed to update expense %s: %w", expense.ID, err)
	}
	return requireRowsAffected(result, "expense", expense.ID)
}

func (r *ExpenseRepository) Delete(ctx context.Context, q repository.DBExecutor, id, userID string) error {
	query := `DELETE FROM expenses WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete expense %s: %w", id, err)
	}
	return requireRowsAffected(result, "expense", id)
}
