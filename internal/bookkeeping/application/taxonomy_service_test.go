package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
	bkErrors "github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/infrastructure"
)

var (
	staff  = domain.Identity{UserID: "staff-user", Elevated: true}
	member = domain.Identity{UserID: "plain-user"}
)

func TestCreateAccountType_RequiresStaff(t *testing.T) {
	repo := &infrastructure.MockAccountTypeRepository{}
	service := NewAccountTypeService(repo)

	err := service.CreateAccountType(context.Background(), member, &domain.AccountType{Name: "Checking"})
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Empty(t, repo.AccountTypes)

	err = service.CreateAccountType(context.Background(), staff, &domain.AccountType{Name: "Checking"})
	assert.NoError(t, err)
	assert.Len(t, repo.AccountTypes, 1)
}

func TestAccountTypes_ReadsOpenToEveryone(t *testing.T) {
	repo := &infrastructure.MockAccountTypeRepository{}
	service := NewAccountTypeService(repo)

	accountType := domain.AccountType{Name: "Savings"}
	assert.NoError(t, service.CreateAccountType(context.Background(), staff, &accountType))

	accountTypes, err := service.ListAccountTypes(context.Background())
	assert.NoError(t, err)
	assert.Len(t, accountTypes, 1)

	got, err := service.GetAccountType(context.Background(), accountType.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Savings", got.Name)
}

func TestUpdateAccountType_RequiresStaff(t *testing.T) {
	repo := &infrastructure.MockAccountTypeRepository{}
	service := NewAccountTypeService(repo)

	accountType := domain.AccountType{Name: "Savings"}
	assert.NoError(t, service.CreateAccountType(context.Background(), staff, &accountType))

	_, err := service.UpdateAccountType(context.Background(), member, accountType.ID, "Renamed")
	assert.ErrorIs(t, err, ErrForbidden)

	updated, err := service.UpdateAccountType(context.Background(), staff, accountType.ID, "Renamed")
	assert.NoError(t, err)
	assert.Equal(t, "Renamed", updated.Name)
}

func TestDeleteAccountType_NotFound(t *testing.T) {
	service := NewAccountTypeService(&infrastructure.MockAccountTypeRepository{})
	err := service.DeleteAccountType(context.Background(), staff, 42)
	assert.ErrorIs(t, err, ErrAccountTypeNotFound)
}

func TestCreateTransactionType_RequiresStaffAndName(t *testing.T) {
	repo := &infrastructure.MockTransactionTypeRepository{}
	service := NewTransactionTypeService(repo)

	err := service.CreateTransactionType(context.Background(), member, &domain.TransactionType{Name: "Expense"})
	assert.ErrorIs(t, err, ErrForbidden)

	err = service.CreateTransactionType(context.Background(), staff, &domain.TransactionType{Name: ""})
	assert.True(t, bkErrors.IsValidationError(err))

	err = service.CreateTransactionType(context.Background(), staff, &domain.TransactionType{Name: "Expense"})
	assert.NoError(t, err)
	assert.Len(t, repo.TransactionTypes, 1)
}

func TestTransactionTypeLifecycle(t *testing.T) {
	repo := &infrastructure.MockTransactionTypeRepository{}
	service := NewTransactionTypeService(repo)

	transactionType := domain.TransactionType{Name: "Income"}
	assert.NoError(t, service.CreateTransactionType(context.Background(), staff, &transactionType))

	updated, err := service.UpdateTransactionType(context.Background(), staff, transactionType.ID, "Salary")
	assert.NoError(t, err)
	assert.Equal(t, "Salary", updated.Name)

	assert.ErrorIs(t, service.DeleteTransactionType(context.Background(), member, transactionType.ID), ErrForbidden)
	assert.NoError(t, service.DeleteTransactionType(context.Background(), staff, transactionType.ID))

	_, err = service.GetTransactionType(context.Background(), transactionType.ID)
	assert.ErrorIs(t, err, ErrTransactionTypeNotFound)
}
