// internal/domain/category.go
package domain

import (
	"time"

	"github.com/google/uuid"
)

// Category labels expenses. It carries no balance.
type Category struct {
	ID        string    `db:"id" json:"id"`
	UserID    string    `db:"user_id" json:"user_id"`
	Name      string    `db:"name" json:"name"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

// NewCategory creates a new Category instance.
func NewCategory(userID, name string) *Category {
	now := time.Now().UTC()
	return &Category{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
