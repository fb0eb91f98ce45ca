package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
	bkErrors "github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/infrastructure"
)

type linkFixture struct {
	service      *CategoryLinkService
	repo         *infrastructure.MockCategoryLinkRepository
	categoryRepo *infrastructure.MockCategoryRepository
	typeRepo     *infrastructure.MockTransactionTypeRepository
	category     domain.Category
}

func newLinkFixture(t *testing.T, ownerID string) *linkFixture {
	t.Helper()
	ctx := context.Background()

	f := &linkFixture{
		repo:         &infrastructure.MockCategoryLinkRepository{},
		categoryRepo: &infrastructure.MockCategoryRepository{},
		typeRepo:     &infrastructure.MockTransactionTypeRepository{},
	}
	f.service = NewCategoryLinkService(f.repo, f.categoryRepo, f.typeRepo)

	assert.NoError(t, f.typeRepo.Save(ctx, &domain.TransactionType{Name: "Expense"}))
	f.category = domain.Category{Name: "Groceries", UserID: ownerID}
	assert.NoError(t, f.categoryRepo.Save(ctx, &f.category))
	return f
}

func TestCreateLink_DuplicateTripleConflicts(t *testing.T) {
	f := newLinkFixture(t, "user-a")
	owner := domain.Identity{UserID: "user-a"}

	link := domain.CategoryLink{CategoryID: f.category.ID, TransactionTypeID: 1}
	assert.NoError(t, f.service.CreateLink(context.Background(), owner, &link))

	duplicate := domain.CategoryLink{CategoryID: f.category.ID, TransactionTypeID: 1}
	err := f.service.CreateLink(context.Background(), owner, &duplicate)
	assert.ErrorIs(t, err, domain.ErrLinkExists)
	assert.Len(t, f.repo.Links, 1)
}

func TestCreateLink_SameTripleDifferentUsers(t *testing.T) {
	f := newLinkFixture(t, "user-a")
	userA := domain.Identity{UserID: "user-a"}
	userB := domain.Identity{UserID: "user-b"}

	// user-b owns an equivalent category of their own
	categoryB := domain.Category{Name: "Groceries", UserID: "user-b"}
	assert.NoError(t, f.categoryRepo.Save(context.Background(), &categoryB))

	linkA := domain.CategoryLink{CategoryID: f.category.ID, TransactionTypeID: 1}
	assert.NoError(t, f.service.CreateLink(context.Background(), userA, &linkA))

	linkB := domain.CategoryLink{CategoryID: categoryB.ID, TransactionTypeID: 1}
	assert.NoError(t, f.service.CreateLink(context.Background(), userB, &linkB))
	assert.Len(t, f.repo.Links, 2)
}

func TestCreateLink_ForeignCategoryRejected(t *testing.T) {
	f := newLinkFixture(t, "user-a")
	intruder := domain.Identity{UserID: "user-b"}

	link := domain.CategoryLink{CategoryID: f.category.ID, TransactionTypeID: 1}
	err := f.service.CreateLink(context.Background(), intruder, &link)
	assert.True(t, bkErrors.IsValidationError(err))
	assert.Empty(t, f.repo.Links)
}

func TestCreateLink_UnknownTransactionType(t *testing.T) {
	f := newLinkFixture(t, "user-a")
	owner := domain.Identity{UserID: "user-a"}

	link := domain.CategoryLink{CategoryID: f.category.ID, TransactionTypeID: 999}
	err := f.service.CreateLink(context.Background(), owner, &link)
	assert.True(t, bkErrors.IsValidationError(err))
}

func TestGetLink_OtherOwnerForbidden(t *testing.T) {
	f := newLinkFixture(t, "user-a")
	owner := domain.Identity{UserID: "user-a"}
	intruder := domain.Identity{UserID: "user-b"}

	link := domain.CategoryLink{CategoryID: f.category.ID, TransactionTypeID: 1}
	assert.NoError(t, f.service.CreateLink(context.Background(), owner, &link))

	_, err := f.service.GetLink(context.Background(), intruder, link.ID)
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestDeleteLink_Lifecycle(t *testing.T) {
	f := newLinkFixture(t, "user-a")
	owner := domain.Identity{UserID: "user-a"}

	link := domain.CategoryLink{CategoryID: f.category.ID, TransactionTypeID: 1}
	assert.NoError(t, f.service.CreateLink(context.Background(), owner, &link))

	assert.NoError(t, f.service.DeleteLink(context.Background(), owner, link.ID))
	_, err := f.service.GetLink(context.Background(), owner, link.ID)
	assert.ErrorIs(t, err, ErrLinkNotFound)

	// the triple is free again after deletion
	again := domain.CategoryLink{CategoryID: f.category.ID, TransactionTypeID: 1}
	assert.NoError(t, f.service.CreateLink(context.Background(), owner, &again))
}
