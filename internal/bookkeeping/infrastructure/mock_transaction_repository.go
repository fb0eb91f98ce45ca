package infrastructure

import (
	"context"
	"database/sql"
	"sort"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
)

type MockTransactionRepository struct {
	Transactions []domain.Transaction
	SaveErr      error
	nextID       int64
}

func (m *MockTransactionRepository) Save(ctx context.Context, transaction *domain.Transaction) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.nextID++
	transaction.ID = m.nextID
	m.Transactions = append(m.Transactions, *transaction)
	return nil
}

func (m *MockTransactionRepository) FindByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	for _, transaction := range m.Transactions {
		if transaction.ID == transactionID {
			found := transaction
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MockTransactionRepository) FindByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	var transactions []domain.Transaction
	for _, transaction := range m.Transactions {
		if transaction.UserID == userID {
			transactions = append(transactions, transaction)
		}
	}
	sort.Slice(transactions, func(i, j int) bool {
		if !transactions[i].Date.Equal(transactions[j].Date) {
			return transactions[i].Date.Before(transactions[j].Date)
		}
		return transactions[i].ID < transactions[j].ID
	})
	return transactions, nil
}

func (m *MockTransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) (int64, error) {
	for i, existing := range m.Transactions {
		if existing.ID == transaction.ID && existing.UserID == transaction.UserID {
			m.Transactions[i] = *transaction
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MockTransactionRepository) Delete(ctx context.Context, transactionID int64) error {
	for i, existing := range m.Transactions {
		if existing.ID == transactionID {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return nil
}
