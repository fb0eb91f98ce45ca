package domain

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
)

// Transaction records a dated movement on an account. The amount never feeds
// back into the account balance; no reconciliation exists anywhere.
type Transaction struct {
	ID                int64           `json:"id"`
	TransactionTypeID int64           `json:"transaction_type_id"`
	Description       string          `json:"description"`
	Amount            decimal.Decimal `json:"amount"`
	Date              time.Time       `json:"date"`
	CategoryID        int64           `json:"category_id"`
	AccountID         int64           `json:"account_id"`
	UserID            string          `json:"-"`
}

func (t *Transaction) Validate() error {
	if t.TransactionTypeID == 0 {
		return errors.NewValidationError("Transaction type is required")
	}
	if t.CategoryID == 0 {
		return errors.NewValidationError("Category is required")
	}
	if t.AccountID == 0 {
		return errors.NewValidationError("Account is required")
	}
	if t.Date.IsZero() {
		return errors.NewValidationError("Date is required")
	}
	if len(t.Description) > 200 {
		return errors.NewValidationError("Description must be of length less than 200")
	}
	return validateMoney(t.Amount, "Amount")
}

type TransactionRepository interface {
	Save(ctx context.Context, transaction *Transaction) error
	FindByID(ctx context.Context, transactionID int64) (*Transaction, error)
	FindByUser(ctx context.Context, userID string) ([]Transaction, error)
	Update(ctx context.Context, transaction *Transaction) (int64, error)
	Delete(ctx context.Context, transactionID int64) error
}
