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

func GetAllAccounts(pool *pgxpool.Pool) ([]models.Account, error) {
	query := `SELECT id, name, account_type, balance, user_id FROM accounts`
	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении счетов: %w", err)
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		var account models.Account
		if err := rows.Scan(&account.ID, &account.Name, &account.AccountType, &account.Balance, &account.UserID); err != nil {
			return nil, err
		}
		accounts = append(accounts, account)
	}
	return accounts, rows.Err()
}

// GetAccountByID читает account_type как текст и разбирает его заново:
// enum-колонка на этом пути декодируется не напрямую, а через
// ParseAccountType. Возвращает (nil, nil), если счет не найден.
func GetAccountByID(pool *pgxpool.Pool, id uuid.UUID) (*models.Account, error) {
	query := `
		SELECT id, name, account_type::TEXT, balance, user_id
		FROM accounts
		WHERE id = $1`

	account := &models.Account{}
	var accountType string
	err := pool.QueryRow(context.Background(), query, id).Scan(
		&account.ID,
		&account.Name,
		&accountType,
		&account.Balance,
		&account.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении счета: %w", err)
	}

	if LenientEnumDecode {
		account.AccountType = models.AccountTypeOrDefault(accountType)
	} else {
		account.AccountType, err = models.ParseAccountType(accountType)
		if err != nil {
			return nil, fmt.Errorf("ошибка разбора типа счета: %w", err)
		}
	}
	return account, nil
}

func CreateAccount(pool *pgxpool.Pool, in *models.AccountInput) (*models.Account, error) {
	query := `
		INSERT INTO accounts (name, account_type, balance, user_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, account_type, balance, user_id`

	account := &models.Account{}
	err := pool.QueryRow(context.Background(), query,
		in.Name,
		in.AccountType,
		in.Balance,
		in.UserID).Scan(
		&account.ID,
		&account.Name,
		&account.AccountType,
		&account.Balance,
		&account.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка при добавлении счета: %w", err)
	}
	return account, nil
}

// UpdateAccount перезаписывает счет по id; user_id не меняется.
func UpdateAccount(pool *pgxpool.Pool, id uuid.UUID, in *models.AccountInput) (*models.Account, error) {
	query := `
		UPDATE accounts
		SET name = $1, account_type = $2, balance = $3
		WHERE id = $4
		RETURNING id, name, account_type, balance, user_id`

	account := &models.Account{}
	err := pool.QueryRow(context.Background(), query,
		in.Name,
		in.AccountType,
		in.Balance,
		id).Scan(
		&account.ID,
		&account.Name,
		&account.AccountType,
		&account.Balance,
		&account.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка обновления счета: %w", err)
	}
	return account, nil
}

func DeleteAccount(pool *pgxpool.Pool, id uuid.UUID) error {
	query := `DELETE FROM accounts WHERE id = $1`
	_, err := pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления счета: %w", err)
	}
	return nil
}
