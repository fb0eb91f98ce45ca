package infrastructure

import (
	"context"
	"database/sql"
	"sort"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
)

type MockCategoryLinkRepository struct {
	Links   []domain.CategoryLink
	SaveErr error
	nextID  int64
}

func (m *MockCategoryLinkRepository) Save(ctx context.Context, link *domain.CategoryLink) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	for _, existing := range m.Links {
		if existing.UserID == link.UserID &&
			existing.CategoryID == link.CategoryID &&
			existing.TransactionTypeID == link.TransactionTypeID {
			return domain.ErrLinkExists
		}
	}
	m.nextID++
	link.ID = m.nextID
	m.Links = append(m.Links, *link)
	return nil
}

func (m *MockCategoryLinkRepository) FindByID(ctx context.Context, linkID int64) (*domain.CategoryLink, error) {
	for _, link := range m.Links {
		if link.ID == linkID {
			found := link
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MockCategoryLinkRepository) FindByUser(ctx context.Context, userID string) ([]domain.CategoryLink, error) {
	var links []domain.CategoryLink
	for _, link := range m.Links {
		if link.UserID == userID {
			links = append(links, link)
		}
	}
	sort.Slice(links, func(i, j int) bool { return links[i].ID < links[j].ID })
	return links, nil
}

func (m *MockCategoryLinkRepository) Delete(ctx context.Context, linkID int64) error {
	for i, existing := range m.Links {
		if existing.ID == linkID {
			m.Links = append(m.Links[:i], m.Links[i+1:]...)
			return nil
		}
	}
	return nil
}
