package application

import (
	"context"
	"database/sql"
	"errors"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
)

var (
	ErrAccountTypeNotFound     = errors.New("account type not found")
	ErrTransactionTypeNotFound = errors.New("transaction type not found")
)

// AccountTypeService manages the shared catalogue of account types. Reads
// are open to every authenticated user, writes require a staff identity.
type AccountTypeService struct {
	typeRepo domain.AccountTypeRepository
}

func NewAccountTypeService(typeRepo domain.AccountTypeRepository) *AccountTypeService {
	return &AccountTypeService{typeRepo: typeRepo}
}

func (s *AccountTypeService) CreateAccountType(ctx context.Context, identity domain.Identity, accountType *domain.AccountType) error {
	if !identity.Elevated {
		return ErrForbidden
	}
	if err := accountType.Validate(); err != nil {
		return err
	}
	return s.typeRepo.Save(ctx, accountType)
}

func (s *AccountTypeService) GetAccountType(ctx context.Context, accountTypeID int64) (*domain.AccountType, error) {
	accountType, err := s.typeRepo.FindByID(ctx, accountTypeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrAccountTypeNotFound
		}
		return nil, err
	}
	return accountType, nil
}

func (s *AccountTypeService) ListAccountTypes(ctx context.Context) ([]domain.AccountType, error) {
	return s.typeRepo.FindAll(ctx)
}

func (s *AccountTypeService) UpdateAccountType(ctx context.Context, identity domain.Identity, accountTypeID int64, name string) (*domain.AccountType, error) {
	if !identity.Elevated {
		return nil, ErrForbidden
	}
	accountType, err := s.GetAccountType(ctx, accountTypeID)
	if err != nil {
		return nil, err
	}
	accountType.Name = name
	if err := accountType.Validate(); err != nil {
		return nil, err
	}
	affected, err := s.typeRepo.Update(ctx, accountType)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrAccountTypeNotFound
	}
	return accountType, nil
}

func (s *AccountTypeService) DeleteAccountType(ctx context.Context, identity domain.Identity, accountTypeID int64) error {
	if !identity.Elevated {
		return ErrForbidden
	}
	if _, err := s.GetAccountType(ctx, accountTypeID); err != nil {
		return err
	}
	return s.typeRepo.Delete(ctx, accountTypeID)
}

type TransactionTypeService struct {
	typeRepo domain.TransactionTypeRepository
}

func NewTransactionTypeService(typeRepo domain.TransactionTypeRepository) *TransactionTypeService {
	return &TransactionTypeService{typeRepo: typeRepo}
}

func (s *TransactionTypeService) CreateTransactionType(ctx context.Context, identity domain.Identity, transactionType *domain.TransactionType) error {
	if !identity.Elevated {
		return ErrForbidden
	}
	if err := transactionType.Validate(); err != nil {
		return err
	}
	return s.typeRepo.Save(ctx, transactionType)
}

func (s *TransactionTypeService) GetTransactionType(ctx context.Context, transactionTypeID int64) (*domain.TransactionType, error) {
	transactionType, err := s.typeRepo.FindByID(ctx, transactionTypeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionTypeNotFound
		}
		return nil, err
	}
	return transactionType, nil
}

func (s *TransactionTypeService) ListTransactionTypes(ctx context.Context) ([]domain.TransactionType, error) {
	return s.typeRepo.FindAll(ctx)
}

func (s *TransactionTypeService) UpdateTransactionType(ctx context.Context, identity domain.Identity, transactionTypeID int64, name string) (*domain.TransactionType, error) {
	if !identity.Elevated {
		return nil, ErrForbidden
	}
	transactionType, err := s.GetTransactionType(ctx, transactionTypeID)
	if err != nil {
		return nil, err
	}
	transactionType.Name = name
	if err := transactionType.Validate(); err != nil {
		return nil, err
	}
	affected, err := s.typeRepo.Update(ctx, transactionType)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrTransactionTypeNotFound
	}
	return transactionType, nil
}

func (s *TransactionTypeService) DeleteTransactionType(ctx context.Context, identity domain.Identity, transactionTypeID int64) error {
	if !identity.Elevated {
		return ErrForbidden
	}
	if _, err := s.GetTransactionType(ctx, transactionTypeID); err != nil {
		return err
	}
	return s.typeRepo.Delete(ctx, transactionTypeID)
}
