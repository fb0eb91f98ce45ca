package application

import (
	"context"
	"database/sql"
	"errors"

	"github.com/shopspring/decimal"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
	bkErrors "github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
)

var (
	// ErrForbidden is returned when an identity tries to touch a resource
	// owned by another user or perform an operation it is not allowed to.
	ErrForbidden = errors.New("operation not allowed for this user")

	ErrAccountNotFound = errors.New("account not found")
)

// AccountUpdate carries the mutable account fields. Nil pointers leave the
// stored value untouched.
type AccountUpdate struct {
	Name          *string
	Description   *string
	Balance       *decimal.Decimal
	AccountTypeID *int64
}

type AccountService struct {
	accountRepo domain.AccountRepository
	typeRepo    domain.AccountTypeRepository
}

func NewAccountService(accountRepo domain.AccountRepository, typeRepo domain.AccountTypeRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo, typeRepo: typeRepo}
}

// CreateAccount binds the account to the caller regardless of any owner the
// payload may have carried.
func (s *AccountService) CreateAccount(ctx context.Context, identity domain.Identity, account *domain.Account) error {
	account.UserID = identity.UserID
	if err := account.Validate(); err != nil {
		return err
	}
	exists, err := s.typeRepo.Exists(ctx, account.AccountTypeID)
	if err != nil {
		return err
	}
	if !exists {
		return bkErrors.NewValidationError("Unknown account type")
	}
	return s.accountRepo.Save(ctx, account)
}

func (s *AccountService) GetAccount(ctx context.Context, identity domain.Identity, accountID int64) (*domain.Account, error) {
	account, err := s.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountNotFound
		}
		return nil, err
	}
	if account.UserID != identity.UserID {
		return nil, ErrForbidden
	}
	return account, nil
}

func (s *AccountService) ListAccounts(ctx context.Context, identity domain.Identity) ([]domain.Account, error) {
	return s.accountRepo.FindByUser(ctx, identity.UserID)
}

func (s *AccountService) UpdateAccount(ctx context.Context, identity domain.Identity, accountID int64, update AccountUpdate) (*domain.Account, error) {
	account, err := s.GetAccount(ctx, identity, accountID)
	if err != nil {
		return nil, err
	}
	if update.Name != nil {
		account.Name = *update.Name
	}
	if update.Description != nil {
		account.Description = *update.Description
	}
	if update.Balance != nil {
		account.Balance = *update.Balance
	}
	if update.AccountTypeID != nil {
		account.AccountTypeID = *update.AccountTypeID
	}
	if err := account.Validate(); err != nil {
		return nil, err
	}
	exists, err := s.typeRepo.Exists(ctx, account.AccountTypeID)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, bkErrors.NewValidationError("Unknown account type")
	}
	affected, err := s.accountRepo.Update(ctx, account)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAccountNotFound
	}
	return account, nil
}

func (s *AccountService) DeleteAccount(ctx context.Context, identity domain.Identity, accountID int64) error {
	if _, err := s.GetAccount(ctx, identity, accountID); err != nil {
		return err
	}
	return s.accountRepo.Delete(ctx, accountID)
}
