package infrastructure

import (
	"context"
	"database/sql"
	"sort"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
)

type MockAccountTypeRepository struct {
	AccountTypes []domain.AccountType
	nextID       int64
}

func (m *MockAccountTypeRepository) Save(ctx context.Context, accountType *domain.AccountType) error {
	m.nextID++
	accountType.ID = m.nextID
	m.AccountTypes = append(m.AccountTypes, *accountType)
	return nil
}

func (m *MockAccountTypeRepository) FindByID(ctx context.Context, accountTypeID int64) (*domain.AccountType, error) {
	for _, accountType := range m.AccountTypes {
		if accountType.ID == accountTypeID {
			found := accountType
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MockAccountTypeRepository) FindAll(ctx context.Context) ([]domain.AccountType, error) {
	accountTypes := make([]domain.AccountType, len(m.AccountTypes))
	copy(accountTypes, m.AccountTypes)
	sort.Slice(accountTypes, func(i, j int) bool { return accountTypes[i].Name < accountTypes[j].Name })
	return accountTypes, nil
}

func (m *MockAccountTypeRepository) Exists(ctx context.Context, accountTypeID int64) (bool, error) {
	for _, accountType := range m.AccountTypes {
		if accountType.ID == accountTypeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockAccountTypeRepository) Update(ctx context.Context, accountType *domain.AccountType) (int64, error) {
	for i, existing := range m.AccountTypes {
		if existing.ID == accountType.ID {
			m.AccountTypes[i] = *accountType
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MockAccountTypeRepository) Delete(ctx context.Context, accountTypeID int64) error {
	for i, existing := range m.AccountTypes {
		if existing.ID == accountTypeID {
			m.AccountTypes = append(m.AccountTypes[:i], m.AccountTypes[i+1:]...)
			return nil
		}
	}
	return nil
}

type MockTransactionTypeRepository struct {
	TransactionTypes []domain.TransactionType
	nextID           int64
}

func (m *MockTransactionTypeRepository) Save(ctx context.Context, transactionType *domain.TransactionType) error {
	m.nextID++
	transactionType.ID = m.nextID
	m.TransactionTypes = append(m.TransactionTypes, *transactionType)
	return nil
}

func (m *MockTransactionTypeRepository) FindByID(ctx context.Context, transactionTypeID int64) (*domain.TransactionType, error) {
	for _, transactionType := range m.TransactionTypes {
		if transactionType.ID == transactionTypeID {
			found := transactionType
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MockTransactionTypeRepository) FindAll(ctx context.Context) ([]domain.TransactionType, error) {
	transactionTypes := make([]domain.TransactionType, len(m.TransactionTypes))
	copy(transactionTypes, m.TransactionTypes)
	sort.Slice(transactionTypes, func(i, j int) bool { return transactionTypes[i].Name < transactionTypes[j].Name })
	return transactionTypes, nil
}

func (m *MockTransactionTypeRepository) Exists(ctx context.Context, transactionTypeID int64) (bool, error) {
	for _, transactionType := range m.TransactionTypes {
		if transactionType.ID == transactionTypeID {
			return true, nil
		}
	}
	return false, nil
}

func (m *MockTransactionTypeRepository) Update(ctx context.Context, transactionType *domain.TransactionType) (int64, error) {
	for i, existing := range m.TransactionTypes {
		if existing.ID == transactionType.ID {
			m.TransactionTypes[i] = *transactionType
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MockTransactionTypeRepository) Delete(ctx context.Context, transactionTypeID int64) error {
	for i, existing := range m.TransactionTypes {
		if existing.ID == transactionTypeID {
			m.TransactionTypes = append(m.TransactionTypes[:i], m.TransactionTypes[i+1:]...)
			return nil
		}
	}
	return nil
}
