package infrastructure

import (
	"context"
	"database/sql"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
)

type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

func (r *AccountRepository) Save(ctx context.Context, account *domain.Account) error {
	query := `INSERT INTO accounts (name, description, balance, account_type_id, user_id)
              VALUES ($1, $2, $3, $4, $5)
              RETURNING id`
	return r.db.QueryRowContext(ctx, query,
		account.Name, account.Description, account.Balance, account.AccountTypeID, account.UserID,
	).Scan(&account.ID)
}

func (r *AccountRepository) FindByID(ctx context.Context, accountID int64) (*domain.Account, error) {
	query := `SELECT id, name, description, balance, account_type_id, user_id
              FROM accounts WHERE id = $1`

	var account domain.Account
	err := r.db.QueryRowContext(ctx, query, accountID).Scan(
		&account.ID, &account.Name, &account.Description, &account.Balance, &account.AccountTypeID, &account.UserID)
	if err != nil {
		return nil, err
	}
	return &account, nil
}

func (r *AccountRepository) FindByUser(ctx context.Context, userID string) ([]domain.Account, error) {
	query := `SELECT id, name, description, balance, account_type_id, user_id
              FROM accounts WHERE user_id = $1 ORDER BY name`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accounts []domain.Account
	for rows.Next() {
		var account domain.Account
		if err := rows.Scan(&account.ID, &account.Name, &account.Description, &account.Balance, &account.AccountTypeID, &account.UserID); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) (int64, error) {
	query := `UPDATE accounts
              SET name = $1, description = $2, balance = $3, account_type_id = $4
              WHERE id = $5 AND user_id = $6`

	result, err := r.db.ExecContext(ctx, query,
		account.Name, account.Description, account.Balance, account.AccountTypeID, account.ID, account.UserID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *AccountRepository) Delete(ctx context.Context, accountID int64) error {
	// Transactions referencing this account go with it (ON DELETE CASCADE).
	_, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE id = $1`, accountID)
	return err
}
