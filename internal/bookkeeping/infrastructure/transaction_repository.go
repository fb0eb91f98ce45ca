package infrastructure

import (
	"context"
	"database/sql"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
)

type TransactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

func (r *TransactionRepository) Save(ctx context.Context, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (transaction_type_id, description, amount, date, category_id, account_id, user_id)
              VALUES ($1, $2, $3, $4, $5, $6, $7)
              RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		transaction.TransactionTypeID, transaction.Description, transaction.Amount,
		transaction.Date, transaction.CategoryID, transaction.AccountID, transaction.UserID,
	).Scan(&transaction.ID)
}

func (r *TransactionRepository) FindByID(ctx context.Context, transactionID int64) (*domain.Transaction, error) {
	query := `SELECT id, transaction_type_id, description, amount, date, category_id, account_id, user_id
              FROM transactions WHERE id = $1`

	var transaction domain.Transaction
	err := r.db.QueryRowContext(ctx, query, transactionID).Scan(
		&transaction.ID, &transaction.TransactionTypeID, &transaction.Description,
		&transaction.Amount, &transaction.Date, &transaction.CategoryID, &transaction.AccountID, &transaction.UserID)
	if err != nil {
		return nil, err
	}
	return &transaction, nil
}

func (r *TransactionRepository) FindByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	query := `SELECT id, transaction_type_id, description, amount, date, category_id, account_id, user_id
              FROM transactions WHERE user_id = $1 ORDER BY date, id`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		var transaction domain.Transaction
		if err := rows.Scan(&transaction.ID, &transaction.TransactionTypeID, &transaction.Description,
			&transaction.Amount, &transaction.Date, &transaction.CategoryID, &transaction.AccountID, &transaction.UserID); err != nil {
			return nil, err
		}
		transactions = append(transactions, transaction)
	}
	return transactions, rows.Err()
}

func (r *TransactionRepository) Update(ctx context.Context, transaction *domain.Transaction) (int64, error) {
	query := `UPDATE transactions
              SET transaction_type_id = $1, description = $2, amount = $3, date = $4, category_id = $5, account_id = $6
              WHERE id = $7 AND user_id = $8`

	result, err := r.db.ExecContext(ctx, query,
		transaction.TransactionTypeID, transaction.Description, transaction.Amount,
		transaction.Date, transaction.CategoryID, transaction.AccountID, transaction.ID, transaction.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *TransactionRepository) Delete(ctx context.Context, transactionID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, transactionID)
	return err
}
