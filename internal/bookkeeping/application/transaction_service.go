package application

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
	bkErrors "github.com/mwolczyk/BudgetManager/internal/bookkeeping/errors"
)

var ErrTransactionNotFound = errors.New("transaction not found")

type TransactionUpdate struct {
	TransactionTypeID *int64
	Description       *string
	Amount            *decimal.Decimal
	Date              *time.Time
	CategoryID        *int64
	AccountID         *int64
}

type TransactionService struct {
	transactionRepo domain.TransactionRepository
	typeRepo        domain.TransactionTypeRepository
	categoryRepo    domain.CategoryRepository
	accountRepo     domain.AccountRepository
}

func NewTransactionService(
	transactionRepo domain.TransactionRepository,
	typeRepo domain.TransactionTypeRepository,
	categoryRepo domain.CategoryRepository,
	accountRepo domain.AccountRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		typeRepo:        typeRepo,
		categoryRepo:    categoryRepo,
		accountRepo:     accountRepo,
	}
}

// validateReferences checks the transaction's foreign keys. The transaction
// type is shared, but the category and account must belong to the caller.
func (s *TransactionService) validateReferences(ctx context.Context, identity domain.Identity, transaction *domain.Transaction) error {
	exists, err := s.typeRepo.Exists(ctx, transaction.TransactionTypeID)
	if err != nil {
		return err
	}
	if !exists {
		return bkErrors.NewValidationError("Unknown transaction type")
	}
	category, err := s.categoryRepo.FindByID(ctx, transaction.CategoryID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return bkErrors.NewValidationError("Unknown category")
		}
		return err
	}
	if category.UserID != identity.UserID {
		return bkErrors.NewValidationError("Unknown category")
	}
	account, err := s.accountRepo.FindByID(ctx, transaction.AccountID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return bkErrors.NewValidationError("Unknown account")
		}
		return err
	}
	if account.UserID != identity.UserID {
		return bkErrors.NewValidationError("Unknown account")
	}
	return nil
}

func (s *TransactionService) CreateTransaction(ctx context.Context, identity domain.Identity, transaction *domain.Transaction) error {
	transaction.UserID = identity.UserID
	if err := transaction.Validate(); err != nil {
		return err
	}
	if err := s.validateReferences(ctx, identity, transaction); err != nil {
		return err
	}
	return s.transactionRepo.Save(ctx, transaction)
}

func (s *TransactionService) GetTransaction(ctx context.Context, identity domain.Identity, transactionID int64) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.FindByID(ctx, transactionID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	if transaction.UserID != identity.UserID {
		return nil, ErrForbidden
	}
	return transaction, nil
}

func (s *TransactionService) ListTransactions(ctx context.Context, identity domain.Identity) ([]domain.Transaction, error) {
	return s.transactionRepo.FindByUser(ctx, identity.UserID)
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, identity domain.Identity, transactionID int64, update TransactionUpdate) (*domain.Transaction, error) {
	transaction, err := s.GetTransaction(ctx, identity, transactionID)
	if err != nil {
		return nil, err
	}
	if update.TransactionTypeID != nil {
		transaction.TransactionTypeID = *update.TransactionTypeID
	}
	if update.Description != nil {
		transaction.Description = *update.Description
	}
	if update.Amount != nil {
		transaction.Amount = *update.Amount
	}
	if update.Date != nil {
		transaction.Date = *update.Date
	}
	if update.CategoryID != nil {
		transaction.CategoryID = *update.CategoryID
	}
	if update.AccountID != nil {
		transaction.AccountID = *update.AccountID
	}
	if err := transaction.Validate(); err != nil {
		return nil, err
	}
	if err := s.validateReferences(ctx, identity, transaction); err != nil {
		return nil, err
	}
	affected, err := s.transactionRepo.Update(ctx, transaction)
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		return nil, ErrTransactionNotFound
	}
	return transaction, nil
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, identity domain.Identity, transactionID int64) error {
	if _, err := s.GetTransaction(ctx, identity, transactionID); err != nil {
		return err
	}
	return s.transactionRepo.Delete(ctx, transactionID)
}
