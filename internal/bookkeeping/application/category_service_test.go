package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
	bkErrors "github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/infrastructure"
)

func TestCreateCategory_WithOwnedParent(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)
	owner := domain.Identity{UserID: "user-a"}

	parent := domain.Category{Name: "Food"}
	assert.NoError(t, service.CreateCategory(context.Background(), owner, &parent))

	child := domain.Category{Name: "Groceries", ParentID: &parent.ID}
	assert.NoError(t, service.CreateCategory(context.Background(), owner, &child))

	got, err := service.GetCategory(context.Background(), owner, child.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got.ParentID)
	assert.Equal(t, parent.ID, *got.ParentID)
}

func TestCreateCategory_ForeignParentRejected(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)
	userA := domain.Identity{UserID: "user-a"}
	userB := domain.Identity{UserID: "user-b"}

	parent := domain.Category{Name: "Food"}
	assert.NoError(t, service.CreateCategory(context.Background(), userA, &parent))

	child := domain.Category{Name: "Groceries", ParentID: &parent.ID}
	err := service.CreateCategory(context.Background(), userB, &child)
	assert.True(t, bkErrors.IsValidationError(err))
}

func TestCreateCategory_UnknownParentRejected(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)

	missing := int64(404)
	category := domain.Category{Name: "Groceries", ParentID: &missing}
	err := service.CreateCategory(context.Background(), domain.Identity{UserID: "user-a"}, &category)
	assert.True(t, bkErrors.IsValidationError(err))
}

func TestUpdateCategory_SelfParentRejected(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)
	owner := domain.Identity{UserID: "user-a"}

	category := domain.Category{Name: "Food"}
	assert.NoError(t, service.CreateCategory(context.Background(), owner, &category))

	_, err := service.UpdateCategory(context.Background(), owner, category.ID, CategoryUpdate{ParentID: &category.ID})
	assert.True(t, bkErrors.IsValidationError(err))
}

func TestUpdateCategory_DetachParent(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)
	owner := domain.Identity{UserID: "user-a"}

	parent := domain.Category{Name: "Food"}
	assert.NoError(t, service.CreateCategory(context.Background(), owner, &parent))
	child := domain.Category{Name: "Groceries", ParentID: &parent.ID}
	assert.NoError(t, service.CreateCategory(context.Background(), owner, &child))

	updated, err := service.UpdateCategory(context.Background(), owner, child.ID, CategoryUpdate{ClearParent: true})
	assert.NoError(t, err)
	assert.Nil(t, updated.ParentID)
}

func TestDeleteCategory_OtherOwnerForbidden(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)
	owner := domain.Identity{UserID: "user-a"}
	intruder := domain.Identity{UserID: "user-b"}

	category := domain.Category{Name: "Food"}
	assert.NoError(t, service.CreateCategory(context.Background(), owner, &category))

	assert.ErrorIs(t, service.DeleteCategory(context.Background(), intruder, category.ID), ErrForbidden)
	assert.Len(t, repo.Categories, 1)

	assert.NoError(t, service.DeleteCategory(context.Background(), owner, category.ID))
	_, err := service.GetCategory(context.Background(), owner, category.ID)
	assert.ErrorIs(t, err, ErrCategoryNotFound)
}

func TestListCategories_ScopedToOwner(t *testing.T) {
	repo := &infrastructure.MockCategoryRepository{}
	service := NewCategoryService(repo)
	userA := domain.Identity{UserID: "user-a"}
	userB := domain.Identity{UserID: "user-b"}

	for _, name := range []string{"Travel", "Food"} {
		category := domain.Category{Name: name}
		assert.NoError(t, service.CreateCategory(context.Background(), userA, &category))
	}
	foreign := domain.Category{Name: "Foreign"}
	assert.NoError(t, service.CreateCategory(context.Background(), userB, &foreign))

	categories, err := service.ListCategories(context.Background(), userA)
	assert.NoError(t, err)
	assert.Len(t, categories, 2)
	assert.Equal(t, "Food", categories[0].Name)
	assert.Equal(t, "Travel", categories[1].Name)
}
