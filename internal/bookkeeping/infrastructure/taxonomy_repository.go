package infrastructure

import (
	"context"
	"database/sql"

	"github.com/mwolczyk/BudgetManager/internal/bookkeeping/domain"
)

type AccountTypeRepository struct {
	db *sql.DB
}

func NewAccountTypeRepository(db *sql.DB) *AccountTypeRepository {
	return &AccountTypeRepository{db: db}
}

func (r *AccountTypeRepository) Save(ctx context.Context, accountType *domain.AccountType) error {
	query := `INSERT INTO account_types (name) VALUES ($1) RETURNING id`
	return r.db.QueryRowContext(ctx, query, accountType.Name).Scan(&accountType.ID)
}

func (r *AccountTypeRepository) FindByID(ctx context.Context, accountTypeID int64) (*domain.AccountType, error) {
	var accountType domain.AccountType
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM account_types WHERE id = $1`, accountTypeID).
		Scan(&accountType.ID, &accountType.Name)
	if err != nil {
		return nil, err
	}
	return &accountType, nil
}

func (r *AccountTypeRepository) FindAll(ctx context.Context) ([]domain.AccountType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM account_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var accountTypes []domain.AccountType
	for rows.Next() {
		var accountType domain.AccountType
		if err := rows.Scan(&accountType.ID, &accountType.Name); err != nil {
			return nil, err
		}
		accountTypes = append(accountTypes, accountType)
	}
	return accountTypes, rows.Err()
}

func (r *AccountTypeRepository) Exists(ctx context.Context, accountTypeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM account_types WHERE id = $1)`, accountTypeID).Scan(&exists)
	return exists, err
}

func (r *AccountTypeRepository) Update(ctx context.Context, accountType *domain.AccountType) (int64, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE account_types SET name = $1 WHERE id = $2`, accountType.Name, accountType.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *AccountTypeRepository) Delete(ctx context.Context, accountTypeID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM account_types WHERE id = $1`, accountTypeID)
	return err
}

type TransactionTypeRepository struct {
	db *sql.DB
}

func NewTransactionTypeRepository(db *sql.DB) *TransactionTypeRepository {
	return &TransactionTypeRepository{db: db}
}

func (r *TransactionTypeRepository) Save(ctx context.Context, transactionType *domain.TransactionType) error {
	query := `INSERT INTO transaction_types (name) VALUES ($1) RETURNING id`
	return r.db.QueryRowContext(ctx, query, transactionType.Name).Scan(&transactionType.ID)
}

func (r *TransactionTypeRepository) FindByID(ctx context.Context, transactionTypeID int64) (*domain.TransactionType, error) {
	var transactionType domain.TransactionType
	err := r.db.QueryRowContext(ctx, `SELECT id, name FROM transaction_types WHERE id = $1`, transactionTypeID).
		Scan(&transactionType.ID, &transactionType.Name)
	if err != nil {
		return nil, err
	}
	return &transactionType, nil
}

func (r *TransactionTypeRepository) FindAll(ctx context.Context) ([]domain.TransactionType, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT id, name FROM transaction_types ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactionTypes []domain.TransactionType
	for rows.Next() {
		var transactionType domain.TransactionType
		if err := rows.Scan(&transactionType.ID, &transactionType.Name); err != nil {
			return nil, err
		}
		transactionTypes = append(transactionTypes, transactionType)
	}
	return transactionTypes, rows.Err()
}

func (r *TransactionTypeRepository) Exists(ctx context.Context, transactionTypeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM transaction_types WHERE id = $1)`, transactionTypeID).Scan(&exists)
	return exists, err
}

func (r *TransactionTypeRepository) Update(ctx context.Context, transactionType *domain.TransactionType) (int64, error) {
	result, err := r.db.ExecContext(ctx, `UPDATE transaction_types SET name = $1 WHERE id = $2`, transactionType.Name, transactionType.ID)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *TransactionTypeRepository) Delete(ctx context.Context, transactionTypeID int64) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM transaction_types WHERE id = $1`, transactionTypeID)
	return err
}
