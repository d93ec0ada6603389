package database

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func GetAllTransactions(pool *pgxpool.Pool) ([]models.Transaction, error) {
	query := `
		SELECT id, title, amount, date, category_id, transaction_type, user_id, account_id
		FROM transactions`
	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении транзакций: %w", err)
	}
	defer rows.Close()

	var transactions []models.Transaction
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.Title, &tx.Amount, &tx.Date, &tx.CategoryID, &tx.TransactionType, &tx.UserID, &tx.AccountID); err != nil {
			return nil, err
		}
		transactions = append(transactions, tx)
	}
	return transactions, rows.Err()
}

// GetTransactionByID читает transaction_type как текст и разбирает его
// заново (см. GetAccountByID). Возвращает (nil, nil), если транзакция
// не найдена.
func GetTransactionByID(pool *pgxpool.Pool, id uuid.UUID) (*models.Transaction, error) {
	query := `
		SELECT id, title, amount, date, category_id, transaction_type::TEXT, user_id, account_id
		FROM transactions
		WHERE id = $1`

	tx := &models.Transaction{}
	var txType string
	err := pool.QueryRow(context.Background(), query, id).Scan(
		&tx.ID,
		&tx.Title,
		&tx.Amount,
		&tx.Date,
		&tx.CategoryID,
		&txType,
		&tx.UserID,
		&tx.AccountID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении транзакции: %w", err)
	}

	if LenientEnumDecode {
		tx.TransactionType = models.TransactionTypeOrDefault(txType)
	} else {
		tx.TransactionType, err = models.ParseTransactionType(txType)
		if err != nil {
			return nil, fmt.Errorf("ошибка разбора типа транзакции: %w", err)
		}
	}
	return tx, nil
}

func CreateTransaction(pool *pgxpool.Pool, in *models.TransactionInput) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (title, amount, date, category_id, transaction_type, user_id, account_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, amount, date, category_id, transaction_type, user_id, account_id`

	tx := &models.Transaction{}
	err := pool.QueryRow(context.Background(), query,
		in.Title,
		in.Amount,
		in.Date,
		in.CategoryID,
		in.TransactionType,
		in.UserID,
		in.AccountID).Scan(
		&tx.ID,
		&tx.Title,
		&tx.Amount,
		&tx.Date,
		&tx.CategoryID,
		&tx.TransactionType,
		&tx.UserID,
		&tx.AccountID,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка при добавлении транзакции: %w", err)
	}
	return tx, nil
}

func UpdateTransaction(pool *pgxpool.Pool, id uuid.UUID, in *models.TransactionInput) (*models.Transaction, error) {
	query := `
		UPDATE transactions
		SET title = $1, amount = $2, date = $3, category_id = $4, transaction_type = $5, user_id = $6, account_id = $7
		WHERE id = $8
		RETURNING id, title, amount, date, category_id, transaction_type, user_id, account_id`

	tx := &models.Transaction{}
	err := pool.QueryRow(context.Background(), query,
		in.Title,
		in.Amount,
		in.Date,
		in.CategoryID,
		in.TransactionType,
		in.UserID,
		in.AccountID,
		id).Scan(
		&tx.ID,
		&tx.Title,
		&tx.Amount,
		&tx.Date,
		&tx.CategoryID,
		&tx.TransactionType,
		&tx.UserID,
		&tx.AccountID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка обновления транзакции: %w", err)
	}
	return tx, nil
}

// DeleteTransaction возвращает число удаленных строк; ноль — не ошибка.
func DeleteTransaction(pool *pgxpool.Pool, id uuid.UUID) (int64, error) {
	query := `DELETE FROM transactions WHERE id = $1`
	result, err := pool.Exec(context.Background(), query, id)
	if err != nil {
		return 0, fmt.Errorf("ошибка удаления транзакции: %w", err)
	}
	return result.RowsAffected(), nil
}
