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

func GetAllCategories(pool *pgxpool.Pool) ([]models.Category, error) {
	query := `SELECT id, name, user_id FROM categories`
	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении категорий: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		if err := rows.Scan(&category.ID, &category.Name, &category.UserID); err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// GetCategoryByID возвращает (nil, nil), если категория не найдена.
func GetCategoryByID(pool *pgxpool.Pool, id uuid.UUID) (*models.Category, error) {
	query := `SELECT id, name, user_id FROM categories WHERE id = $1`

	category := &models.Category{}
	err := pool.QueryRow(context.Background(), query, id).Scan(
		&category.ID,
		&category.Name,
		&category.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении категории: %w", err)
	}
	return category, nil
}

func CreateCategory(pool *pgxpool.Pool, in *models.CategoryInput) (*models.Category, error) {
	query := `
		INSERT INTO categories (name, user_id)
		VALUES ($1, $2)
		RETURNING id, name, user_id`

	category := &models.Category{}
	err := pool.QueryRow(context.Background(), query, in.Name, in.UserID).Scan(
		&category.ID,
		&category.Name,
		&category.UserID,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка при добавлении категории: %w", err)
	}
	return category, nil
}

func UpdateCategory(pool *pgxpool.Pool, id uuid.UUID, in *models.CategoryInput) (*models.Category, error) {
	query := `
		UPDATE categories
		SET name = $1
		WHERE id = $2
		RETURNING id, name, user_id`

	category := &models.Category{}
	err := pool.QueryRow(context.Background(), query, in.Name, id).Scan(
		&category.ID,
		&category.Name,
		&category.UserID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка обновления категории: %w", err)
	}
	return category, nil
}

func DeleteCategory(pool *pgxpool.Pool, id uuid.UUID) error {
	query := `DELETE FROM categories WHERE id = $1`
	_, err := pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("ошибка при удалении категории: %w", err)
	}
	return nil
}
