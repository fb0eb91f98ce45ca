package infrastructure

import (
	"context"
	"database/sql"
	"sort"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
)

type MockAccountRepository struct {
	Accounts []domain.Account
	SaveErr  error
	nextID   int64
}

func (m *MockAccountRepository) Save(ctx context.Context, account *domain.Account) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.nextID++
	account.ID = m.nextID
	m.Accounts = append(m.Accounts, *account)
	return nil
}

func (m *MockAccountRepository) FindByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	for _, account := range m.Accounts {
		if account.ID == accountID {
			found := account
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MockAccountRepository) FindByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	var accounts []domain.Account
	for _, account := range m.Accounts {
		if account.UserID == userID {
			accounts = append(accounts, account)
		}
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].Name < accounts[j].Name })
	return accounts, nil
}

func (m *MockAccountRepository) Update(ctx context.Context, account *domain.Account) (int64, error) {
	for i, existing := range m.Accounts {
		if existing.ID == account.ID && existing.UserID == account.UserID {
			m.Accounts[i] = *account
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MockAccountRepository) Delete(ctx context.Context, accountID int64) error {
	for i, existing := range m.Accounts {
		if existing.ID == accountID {
			m.Accounts = append(m.Accounts[:i], m.Accounts[i+1:]...)
			return nil
		}
	}
	return nil
}
