package infrastructure

import (
	"context"
	"database/sql"
	"sort"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
)

type MockCategoryRepository struct {
	Categories []domain.Category
	SaveErr    error
	nextID     int64
}

func (m *MockCategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.nextID++
	category.ID = m.nextID
	m.Categories = append(m.Categories, *category)
	return nil
}

func (m *MockCategoryRepository) FindByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	for _, category := range m.Categories {
		if category.ID == categoryID {
			found := category
			return &found, nil
		}
	}
	return nil, sql.ErrNoRows
}

func (m *MockCategoryRepository) FindByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	var categories []domain.Category
	for _, category := range m.Categories {
		if category.UserID == userID {
			categories = append(categories, category)
		}
	}
	sort.Slice(categories, func(i, j int) bool { return categories[i].Name < categories[j].Name })
	return categories, nil
}

func (m *MockCategoryRepository) Update(ctx context.Context, category *domain.Category) (int64, error) {
	for i, existing := range m.Categories {
		if existing.ID == category.ID && existing.UserID == category.UserID {
			m.Categories[i] = *category
			return 1, nil
		}
	}
	return 0, nil
}

func (m *MockCategoryRepository) Delete(ctx context.Context, categoryID int64) error {
	for i, existing := range m.Categories {
		if existing.ID == categoryID {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return nil
}
