package domain

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
)

// maxMoney bounds monetary values to NUMERIC(10, 2): up to 8 integer digits.
var maxMoney = decimal.New(1, 8)

func validateMoney(value decimal.Decimal, field string) error {
	if value.Exponent() < -2 {
		return errors.NewValidationError(field + " must have at most 2 decimal places")
	}
	if value.Abs().GreaterThanOrEqual(maxMoney) {
		return errors.NewValidationError(field + " is out of range")
	}
	return nil
}

type Account struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Balance       decimal.Decimal `json:"balance"`
	AccountTypeID int64           `json:"account_type_id"`
	UserID        string          `json:"-"`
}

// Validate checks the fields the store cannot express. The balance is stored
// as entered, never derived from transactions.
func (a *Account) Validate() error {
	if a.Name == "" {
		return errors.NewValidationError("Name must not be empty")
	}
	if len(a.Name) > 255 {
		return errors.NewValidationError("Name must be at most 255 characters")
	}
	if a.AccountTypeID == 0 {
		return errors.NewValidationError("Account type is required")
	}
	return validateMoney(a.Balance, "Balance")
}

type AccountRepository interface {
	Save(ctx context.Context, account *Account) error
	FindByID(ctx context.Context, accountID int64) (*Account, error)
	FindByUser(ctx context.Context, userID string) ([]Account, error)
	Update(ctx context.Context, account *Account) (int64, error)
	Delete(ctx context.Context, accountID int64) error
}
