package domain

import (
	"context"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
)

// AccountType and TransactionType are global reference data shared across all
// owners. Only elevated identities may mutate them.

type AccountType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type TransactionType struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

func validateTaxonomyName(name string) error {
	if name == "" {
		return errors.NewValidationError("Name must not be empty")
	}
	if len(name) > 255 {
		return errors.NewValidationError("Name must be at most 255 characters")
	}
	return nil
}

func (t *AccountType) Validate() error { return validateTaxonomyName(t.Name) }

func (t *TransactionType) Validate() error { return validateTaxonomyName(t.Name) }

type AccountTypeRepository interface {
	Save(ctx context.Context, accountType *AccountType) error
	FindByID(ctx context.Context, accountTypeID int64) (*AccountType, error)
	FindAll(ctx context.Context) ([]AccountType, error)
	Exists(ctx context.Context, accountTypeID int64) (bool, error)
	Update(ctx context.Context, accountType *AccountType) (int64, error)
	Delete(ctx context.Context, accountTypeID int64) error
}

type TransactionTypeRepository interface {
	Save(ctx context.Context, transactionType *TransactionType) error
	FindByID(ctx context.Context, transactionTypeID int64) (*TransactionType, error)
	FindAll(ctx context.Context) ([]TransactionType, error)
	Exists(ctx context.Context, transactionTypeID int64) (bool, error)
	Update(ctx context.Context, transactionType *TransactionType) (int64, error)
	Delete(ctx context.Context, transactionTypeID int64) error
}
