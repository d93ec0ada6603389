package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func GetAllUsers(pool *pgxpool.Pool) ([]models.User, error) {
	query := `SELECT id, username, email, created_at, updated_at FROM users`
	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении пользователей: %w", err)
	}
	defer rows.Close()

	var users []models.User
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Username, &user.Email, &user.CreatedAt, &user.UpdatedAt); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, rows.Err()
}

// GetUserByID возвращает (nil, nil), если пользователь не найден.
func GetUserByID(pool *pgxpool.Pool, id uuid.UUID) (*models.User, error) {
	query := `SELECT id, username, email, created_at, updated_at FROM users WHERE id = $1`

	user := &models.User{}
	err := pool.QueryRow(context.Background(), query, id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка получения пользователя по id: %w", err)
	}
	return user, nil
}

func CreateUser(pool *pgxpool.Pool, in *models.UserInput) (*models.User, error) {
	query := `
		INSERT INTO users (username, email)
		VALUES ($1, $2)
		RETURNING id, username, email, created_at, updated_at`

	user := &models.User{}
	err := pool.QueryRow(context.Background(), query, in.Username, in.Email).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка при добавлении пользователя: %w", err)
	}
	return user, nil
}

// UpdateUser перезаписывает все поля пользователя; updated_at
// выставляется серверным временем.
func UpdateUser(pool *pgxpool.Pool, id uuid.UUID, in *models.UserInput) (*models.User, error) {
	query := `
		UPDATE users
		SET username = $1, email = $2, updated_at = $3
		WHERE id = $4
		RETURNING id, username, email, created_at, updated_at`

	user := &models.User{}
	err := pool.QueryRow(context.Background(), query, in.Username, in.Email, time.Now(), id).Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка обновления пользователя: %w", err)
	}
	return user, nil
}

// DeleteUser удаляет пользователя; удаление несуществующего id не ошибка.
func DeleteUser(pool *pgxpool.Pool, id uuid.UUID) error {
	query := `DELETE FROM users WHERE id = $1`
	_, err := pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления пользователя: %w", err)
	}
	return nil
}
