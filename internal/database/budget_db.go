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

func GetAllBudgets(pool *pgxpool.Pool) ([]models.Budget, error) {
	query := `SELECT id, name, amount, start_date, end_date, user_id, category_id FROM budgets`
	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении бюджетов: %w", err)
	}
	defer rows.Close()

	var budgets []models.Budget
	for rows.Next() {
		var budget models.Budget
		if err := rows.Scan(&budget.ID, &budget.Name, &budget.Amount, &budget.StartDate, &budget.EndDate, &budget.UserID, &budget.CategoryID); err != nil {
			return nil, err
		}
		budgets = append(budgets, budget)
	}
	return budgets, rows.Err()
}

// GetBudgetByID возвращает (nil, nil), если бюджет не найден.
func GetBudgetByID(pool *pgxpool.Pool, id uuid.UUID) (*models.Budget, error) {
	query := `
		SELECT id, name, amount, start_date, end_date, user_id, category_id
		FROM budgets
		WHERE id = $1`

	budget := &models.Budget{}
	err := pool.QueryRow(context.Background(), query, id).Scan(
		&budget.ID,
		&budget.Name,
		&budget.Amount,
		&budget.StartDate,
		&budget.EndDate,
		&budget.UserID,
		&budget.CategoryID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении бюджета: %w", err)
	}
	return budget, nil
}

// CreateBudget вставляет бюджет; category_id может быть NULL.
func CreateBudget(pool *pgxpool.Pool, in *models.BudgetInput) (*models.Budget, error) {
	query := `
		INSERT INTO budgets (name, amount, start_date, end_date, user_id, category_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, name, amount, start_date, end_date, user_id, category_id`

	budget := &models.Budget{}
	err := pool.QueryRow(context.Background(), query,
		in.Name,
		in.Amount,
		in.StartDate,
		in.EndDate,
		in.UserID,
		in.CategoryID).Scan(
		&budget.ID,
		&budget.Name,
		&budget.Amount,
		&budget.StartDate,
		&budget.EndDate,
		&budget.UserID,
		&budget.CategoryID,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка при добавлении бюджета: %w", err)
	}
	return budget, nil
}

func UpdateBudget(pool *pgxpool.Pool, id uuid.UUID, in *models.BudgetInput) (*models.Budget, error) {
	query := `
		UPDATE budgets
		SET name = $1, amount = $2, start_date = $3, end_date = $4, user_id = $5, category_id = $6
		WHERE id = $7
		RETURNING id, name, amount, start_date, end_date, user_id, category_id`

	budget := &models.Budget{}
	err := pool.QueryRow(context.Background(), query,
		in.Name,
		in.Amount,
		in.StartDate,
		in.EndDate,
		in.UserID,
		in.CategoryID,
		id).Scan(
		&budget.ID,
		&budget.Name,
		&budget.Amount,
		&budget.StartDate,
		&budget.EndDate,
		&budget.UserID,
		&budget.CategoryID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка обновления бюджета: %w", err)
	}
	return budget, nil
}

func DeleteBudget(pool *pgxpool.Pool, id uuid.UUID) error {
	query := `DELETE FROM budgets WHERE id = $1`
	_, err := pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления бюджета: %w", err)
	}
	return nil
}
