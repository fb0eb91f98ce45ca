package application

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/infrastructure"
	bkErrors "github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
)

func newAccountFixture() (*AccountService, *infrastructure.MockAccountRepository, *infrastructure.MockAccountTypeRepository) {
	accountRepo := &infrastructure.MockAccountRepository{}
	typeRepo := &infrastructure.MockAccountTypeRepository{}
	typeRepo.Save(context.Background(), &domain.AccountType{Name: "Checking"})
	return NewAccountService(accountRepo, typeRepo), accountRepo, typeRepo
}

func TestCreateAccount_BindsOwnerFromIdentity(t *testing.T) {
	service, repo, _ := newAccountFixture()
	identity := domain.Identity{UserID: "user-a"}

	account := domain.Account{
		Name:          "Wallet",
		Balance:       decimal.RequireFromString("100.50"),
		AccountTypeID: 1,
		UserID:        "user-b", // must be ignored
	}
	err := service.CreateAccount(context.Background(), identity, &account)

	assert.NoError(t, err)
	assert.Equal(t, "user-a", account.UserID)
	assert.Equal(t, "user-a", repo.Accounts[0].UserID)
	assert.NotZero(t, account.ID)
}

func TestCreateAccount_UnknownAccountType(t *testing.T) {
	service, repo, _ := newAccountFixture()
	identity := domain.Identity{UserID: "user-a"}

	account := domain.Account{Name: "Wallet", AccountTypeID: 999}
	err := service.CreateAccount(context.Background(), identity, &account)

	assert.True(t, bkErrors.IsValidationError(err))
	assert.Empty(t, repo.Accounts)
}

func TestCreateAccount_TooManyDecimalPlaces(t *testing.T) {
	service, _, _ := newAccountFixture()
	identity := domain.Identity{UserID: "user-a"}

	account := domain.Account{
		Name:          "Wallet",
		Balance:       decimal.RequireFromString("10.123"),
		AccountTypeID: 1,
	}
	err := service.CreateAccount(context.Background(), identity, &account)

	assert.True(t, bkErrors.IsValidationError(err))
}

func TestGetAccount_OtherOwnerForbidden(t *testing.T) {
	service, _, _ := newAccountFixture()
	owner := domain.Identity{UserID: "user-a"}
	intruder := domain.Identity{UserID: "user-b"}

	account := domain.Account{Name: "Wallet", AccountTypeID: 1}
	assert.NoError(t, service.CreateAccount(context.Background(), owner, &account))

	_, err := service.GetAccount(context.Background(), intruder, account.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := service.GetAccount(context.Background(), owner, account.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Wallet", got.Name)
}

func TestGetAccount_NotFound(t *testing.T) {
	service, _, _ := newAccountFixture()
	_, err := service.GetAccount(context.Background(), domain.Identity{UserID: "user-a"}, 42)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestListAccounts_ScopedToOwnerAndSorted(t *testing.T) {
	service, _, _ := newAccountFixture()
	userA := domain.Identity{UserID: "user-a"}
	userB := domain.Identity{UserID: "user-b"}

	for _, name := range []string{"Savings", "Checking"} {
		account := domain.Account{Name: name, AccountTypeID: 1}
		assert.NoError(t, service.CreateAccount(context.Background(), userA, &account))
	}
	foreign := domain.Account{Name: "Foreign", AccountTypeID: 1}
	assert.NoError(t, service.CreateAccount(context.Background(), userB, &foreign))

	accounts, err := service.ListAccounts(context.Background(), userA)
	assert.NoError(t, err)
	assert.Len(t, accounts, 2)
	assert.Equal(t, "Checking", accounts[0].Name)
	assert.Equal(t, "Savings", accounts[1].Name)
}

func TestUpdateAccount_PartialUpdate(t *testing.T) {
	service, _, _ := newAccountFixture()
	owner := domain.Identity{UserID: "user-a"}

	account := domain.Account{
		Name:          "Wallet",
		Description:   "cash",
		Balance:       decimal.RequireFromString("10.00"),
		AccountTypeID: 1,
	}
	assert.NoError(t, service.CreateAccount(context.Background(), owner, &account))

	newBalance := decimal.RequireFromString("25.75")
	updated, err := service.UpdateAccount(context.Background(), owner, account.ID, AccountUpdate{Balance: &newBalance})

	assert.NoError(t, err)
	assert.Equal(t, "Wallet", updated.Name)
	assert.Equal(t, "cash", updated.Description)
	assert.True(t, updated.Balance.Equal(newBalance))
}

func TestUpdateAccount_OtherOwnerForbidden(t *testing.T) {
	service, _, _ := newAccountFixture()
	owner := domain.Identity{UserID: "user-a"}
	intruder := domain.Identity{UserID: "user-b"}

	account := domain.Account{Name: "Wallet", AccountTypeID: 1}
	assert.NoError(t, service.CreateAccount(context.Background(), owner, &account))

	name := "Stolen"
	_, err := service.UpdateAccount(context.Background(), intruder, account.ID, AccountUpdate{Name: &name})
	assert.ErrorIs(t, err, ErrForbidden)

	got, err := service.GetAccount(context.Background(), owner, account.ID)
	assert.NoError(t, err)
	assert.Equal(t, "Wallet", got.Name)
}

// A piggy bank account owned by one user must survive another user's delete
// attempt and disappear for good after its owner deletes it.
func TestDeleteAccount_OwnershipLifecycle(t *testing.T) {
	service, repo, _ := newAccountFixture()
	owner := domain.Identity{UserID: "user-a"}
	intruder := domain.Identity{UserID: "user-b"}

	account := domain.Account{
		Name:          "Piggy bank",
		Balance:       decimal.RequireFromString("12.30"),
		AccountTypeID: 1,
	}
	assert.NoError(t, service.CreateAccount(context.Background(), owner, &account))

	err := service.DeleteAccount(context.Background(), intruder, account.ID)
	assert.ErrorIs(t, err, ErrForbidden)
	assert.Len(t, repo.Accounts, 1)

	assert.NoError(t, service.DeleteAccount(context.Background(), owner, account.ID))

	_, err = service.GetAccount(context.Background(), owner, account.ID)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestCreateAccount_RepositoryError(t *testing.T) {
	service, repo, _ := newAccountFixture()
	repo.SaveErr = errors.New("connection lost")

	account := domain.Account{Name: "Wallet", AccountTypeID: 1}
	err := service.CreateAccount(context.Background(), domain.Identity{UserID: "user-a"}, &account)
	assert.EqualError(t, err, "connection lost")
}
