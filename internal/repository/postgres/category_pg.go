// internal/repository/postgres/category_pg.go
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

// CategoryRepository implements repository.CategoryRepository for PostgreSQL.
type CategoryRepository struct{}

// NewCategoryRepository creates a new CategoryRepository.
func NewCategoryRepository(db *sqlx.DB) repository.CategoryRepository {
	return &CategoryRepository{}
}

func (r *CategoryRepository) Create(ctx context.Context, q repository.DBExecutor, category *domain.Category) error {
	query := `INSERT INTO categories (id, user_id, name, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5)`
	_, err := q.ExecContext(ctx, query,
		category.ID, category.UserID, category.Name, category.CreatedAt, category.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create category: %w", err)
	}
	return nil
}

func (r *CategoryRepository) GetByID(ctx context.Context, q repository.DBExecutor, id, userID string) (*domain.Category, error) {
	var category domain.Category
	query := `SELECT id, user_id, name, created_at, updated_at
              FROM categories WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &category, query, id, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get category %s: %w", id, err)
	}
	return &category, nil
}

func (r *CategoryRepository) ListByUser(ctx context.Context, q repository.DBExecutor, userID string) ([]domain.Category, error) {
	categories := []domain.Category{}
	query := `SELECT id, user_id, name, created_at, updated_at
              FROM categories WHERE user_id = $1 ORDER BY LOWER(name) ASC`
	if err := q.SelectContext(ctx, &categories, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list categories for user %s: %w", userID, err)
	}
	return categories, nil
}

func (r *CategoryRepository) UpdateName(ctx context.Context, q repository.DBExecutor, id, userID, name string) error {
	query := `UPDATE categories SET name = $1, updated_at = $2 WHERE id = $3 AND user_id = $4`
	result, err := q.ExecContext(ctx, query, name, time.Now().UTC(), id, userID)
	if err != nil {
		return fmt.Errorf("failed to rename category %s: %w", id, err)
	}
	return requireRowsAffected(result, "category", id)
}

func (r *CategoryRepository) Delete(ctx context.Context, q repository.DBExecutor, id, userID string) error {
	query := `DELETE FROM categories WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete category %s: %w", id, err)
	}
	return requireRowsAffected(result, "category", id)
}
