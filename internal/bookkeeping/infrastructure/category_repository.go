package infrastructure

import (
	"context"
	"database/sql"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
)

type CategoryRepository struct {
	db *sql.DB
}

func NewCategoryRepository(db *sql.DB) *CategoryRepository {
	return &CategoryRepository{db: db}
}

func (r *CategoryRepository) Save(ctx context.Context, category *domain.Category) error {
	query := `INSERT INTO categories (name, parent_id, user_id)
              VALUES ($1, $2, $3)
              RETURNING id`
	return r.db.QueryRowContext(ctx, query, category.Name, category.ParentID, category.UserID).Scan(&category.ID)
}

func (r *CategoryRepository) FindByID(ctx context.Context, categoryID int64) (*domain.Category, error) {
	query := `SELECT id, name, parent_id, user_id FROM categories WHERE id = $1`

	var category domain.Category
	err := r.db.QueryRowContext(ctx, query, categoryID).Scan(
		&category.ID, &category.Name, &category.ParentID, &category.UserID)
	if err != nil {
		return nil, err
	}
	return &category, nil
}

func (r *CategoryRepository) FindByUser(ctx context.Context, userID string) ([]domain.Category, error) {
	query := `SELECT id, name, parent_id, user_id FROM categories WHERE user_id = $1 ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var categories []domain.Category
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.ParentID, &category.UserID); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

func (r *CategoryRepository) Update(ctx context.Context, category *domain.Category) (int64, error) {
	query := `UPDATE categories
              SET name = $1, parent_id = $2
              WHERE id = $3 AND user_id = $4`

	result, err := r.db.ExecContext(ctx, query, category.Name, category.ParentID, category.ID, category.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *CategoryRepository) Delete(ctx context.Context, categoryID int64) error {
	// Child categories, transactions, and links cascade in the store.
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, categoryID)
	return err
}
