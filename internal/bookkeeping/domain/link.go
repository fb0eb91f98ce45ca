package domain

import (
	"context"
	stderrors "errors"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
)

// ErrLinkExists is returned by the store when a link with the same
// (user, category, transaction type) triple already exists. The composite
// unique constraint decides, not a check-then-insert in application code.
var ErrLinkExists = stderrors.New("category link already exists")

// CategoryLink associates one of the owner's categories with a transaction
// type. Each triple may exist at most once.
type CategoryLink struct {
	ID                int64  `json:"id"`
	CategoryID        int64  `json:"category_id"`
	TransactionTypeID int64  `json:"transaction_type_id"`
	UserID            string `json:"-"`
}

func (l *CategoryLink) Validate() error {
	if l.CategoryID == 0 {
		return errors.NewValidationError("Category is required")
	}
	if l.TransactionTypeID == 0 {
		return errors.NewValidationError("Transaction type is required")
	}
	return nil
}

type CategoryLinkRepository interface {
	Save(ctx context.Context, link *CategoryLink) error
	FindByID(ctx context.Context, linkID int64) (*CategoryLink, error)
	FindByUser(ctx context.Context, userID string) ([]CategoryLink, error)
	Delete(ctx context.Context, linkID int64) error
}
