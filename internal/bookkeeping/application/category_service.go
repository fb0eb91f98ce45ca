package application

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
	bkErrors "github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
)

var ErrCategoryNotFound = errors.New("category not found")

type CategoryUpdate struct {
	Name     *string
	ParentID *int64
	// ClearParent detaches the category from its parent when true.
	ClearParent bool
}

type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// validateParent checks that the referenced parent exists and belongs to the
// same user. A foreign parent is reported as a plain validation problem so
// the response does not reveal whether the category exists at all.
func (s *CategoryService) validateParent(ctx context.Context, identity domain.Identity, parentID int64) error {
	parent, err := s.categoryRepo.FindByID(ctx, parentID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return bkErrors.NewValidationError("Unknown parent category")
		}
		return err
	}
	if parent.UserID != identity.UserID {
		return bkErrors.NewValidationError("Unknown parent category")
	}
	return nil
}

func (s *CategoryService) CreateCategory(ctx context.Context, identity domain.Identity, category *domain.Category) error {
	category.UserID = identity.UserID
	if err := category.Validate(); err != nil {
		return err
	}
	if category.ParentID != nil {
		if err := s.validateParent(ctx, identity, *category.ParentID); err != nil {
			return err
		}
	}
	return s.categoryRepo.Save(ctx, category)
}

func (s *CategoryService) GetCategory(ctx context.Context, identity domain.Identity, categoryID int64) (*domain.Category, error) {
	category, err := s.categoryRepo.FindByID(ctx, categoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrCategoryNotFound
		}
		return nil, err
	}
	if category.UserID != identity.UserID {
		return nil, ErrForbidden
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, identity domain.Identity) ([]domain.Category, error) {
	return s.categoryRepo.FindByUser(ctx, identity.UserID)
}

func (s *CategoryService) UpdateCategory(ctx context.Context, identity domain.Identity, categoryID int64, update CategoryUpdate) (*domain.Category, error) {
	category, err := s.GetCategory(ctx, identity, categoryID)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		category.Name = *update.Name
	}
	if update.ClearParent {
		category.ParentID = nil
	} else if update.ParentID != nil {
		category.ParentID = update.ParentID
	}
	if err := category.Validate(); err != nil {
		return nil, err
	}
	if category.ParentID != nil {
		if err := s.validateParent(ctx, identity, *category.ParentID); err != nil {
			return nil, err
		}
	}
	affected, err := s.categoryRepo.Update(ctx, category)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrCategoryNotFound
	}
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, identity domain.Identity, categoryID int64) error {
	if _, err := s.GetCategory(ctx, identity, categoryID); err != nil {
		return err
	}
	return s.categoryRepo.Delete(ctx, categoryID)
}
