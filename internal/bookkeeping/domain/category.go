package domain

import (
	"context"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
)

// Category is a user-owned label with an optional parent, allowing a shallow
// hierarchy. Parent and child always belong to the same owner.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID *int64 `json:"parent"`
	UserID   string `json:"-"`
}

func (c *Category) Validate() error {
	if c.Name == "" {
		return errors.NewValidationError("Name must not be empty")
	}
	if len(c.Name) > 255 {
		return errors.NewValidationError("Name must be at most 255 characters")
	}
	if c.ParentID != nil && c.ID != 0 && *c.ParentID == c.ID {
		return errors.NewValidationError("Category cannot be its own parent")
	}
	return nil
}

type CategoryRepository interface {
	Save(ctx context.Context, category *Category) error
	FindByID(ctx context.Context, categoryID int64) (*Category, error)
	FindByUser(ctx context.Context, userID string) ([]Category, error)
	Update(ctx context.Context, category *Category) (int64, error)
	Delete(ctx context.Context, categoryID int64) error
}
