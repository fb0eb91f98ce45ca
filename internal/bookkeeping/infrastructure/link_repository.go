package infrastructure

import (
	"context"
	"database/sql"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
)

type CategoryLinkRepository struct {
	db *sql.DB
}

func NewCategoryLinkRepository(db *sql.DB) *CategoryLinkRepository {
	return &CategoryLinkRepository{db: db}
}

// Save inserts the link and lets the composite unique constraint arbitrate
// between concurrent creators of the same triple.
func (r *CategoryLinkRepository) Save(ctx context.Context, link *domain.CategoryLink) error {
	query := `INSERT INTO category_links (category_id, transaction_type_id, user_id)
              VALUES ($1, $2, $3)
              RETURNING id`
	err := r.db.QueryRowContext(ctx, query, link.CategoryID, link.TransactionTypeID, link.UserID).Scan(&link.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrLinkExists
		}
		return err
	}
	return nil
}

func (r *CategoryLinkRepository) FindByID(ctx context.Context, linkID int64) (*domain.CategoryLink, error) {
	query := `SELECT id, category_id, transaction_type_id, user_id FROM category_links WHERE id = $1`

	var link domain.CategoryLink
	err := r.db.QueryRowContext(ctx, query, linkID).Scan(
		&link.ID, &link.CategoryID, &link.TransactionTypeID, &link.UserID)
	if err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *CategoryLinkRepository) FindByUser(ctx context.Context, userID string) ([]domain.CategoryLink, error) {
	query := `SELECT id, category_id, transaction_type_id, user_id FROM category_links WHERE user_id = $1 ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var links []domain.CategoryLink
	for rows.Next() {
		var link domain.CategoryLink
		if err := rows.Scan(&link.ID, &link.CategoryID, &link.TransactionTypeID, &link.UserID); err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func (r *CategoryLinkRepository) Delete(ctx context.Context, linkID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM category_links WHERE id = $1`, linkID)
	return err
}
