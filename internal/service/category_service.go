// internal/service/category_service.go
package service

import (
	"context"
	"fmt"

	"pocketbook/internal/command"
	"pocketbook/internal/domain"
	"pocketbook/internal/repository"
)

// CategoryService manages expense labels.
type CategoryService interface {
	Create(ctx context.Context, userID string, cmd command.CreateCategory) (*domain.Category, error)
	Update(ctx context.Context, userID string, cmd command.UpdateCategory) (*domain.Category, error)
	Delete(ctx context.Context, userID, id string) error
	Get(ctx context.Context, userID, id string) (*domain.Category, error)
	List(ctx context.Context, userID string) ([]domain.Category, error)
}

type categoryService struct {
	dbExecutor   repository.DBExecutor
	categoryRepo repository.CategoryRepository
}

// NewCategoryService creates a new instance of CategoryService.
func NewCategoryService(dbExecutor repository.DBExecutor, categoryRepo repository.CategoryRepository) CategoryService {
	return &categoryService{dbExecutor: dbExecutor, categoryRepo: categoryRepo}
}

func (s *categoryService) Create(ctx context.Context, userID string, cmd command.CreateCategory) (*domain.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	category := domain.NewCategory(userID, cmd.Name)
	if err := s.categoryRepo.Create(ctx, s.dbExecutor, category); err != nil {
		return nil, fmt.Errorf("create category: %w", err)
	}
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, userID string, cmd command.UpdateCategory) (*domain.Category, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}
	if err := s.categoryRepo.UpdateName(ctx, s.dbExecutor, cmd.ID, userID, cmd.Name); err != nil {
		return nil, fmt.Errorf("update category %s: %w", cmd.ID, err)
	}
	category, err := s.categoryRepo.GetByID(ctx, s.dbExecutor, cmd.ID, userID)
	if err != nil {
		return nil, fmt.Errorf("update category %s: %w", cmd.ID, err)
	}
	return category, nil
}

// Delete removes a category. Expenses keep their category reference; a
// dangling label is harmless and simply renders as unknown.
func (s *categoryService) Delete(ctx context.Context, userID, id string) error {
	if err := s.categoryRepo.Delete(ctx, s.dbExecutor, id, userID); err != nil {
		return fmt.Errorf("delete category %s: %w", id, err)
	}
	return nil
}

func (s *categoryService) Get(ctx context.Context, userID, id string) (*domain.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, s.dbExecutor, id, userID)
	if err != nil {
		return nil, fmt.Errorf("get category %s: %w", id, err)
	}
	return category, nil
}

func (s *categoryService) List(ctx context.Context, userID string) ([]domain.Category, error) {
	categories, err := s.categoryRepo.ListByUser(ctx, s.dbExecutor, userID)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return categories, nil
}
