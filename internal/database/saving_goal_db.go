package database

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func GetAllSavingGoals(pool *pgxpool.Pool) ([]models.SavingGoal, error) {
	query := `
		SELECT id, title, target_amount, current_amount, deadline, user_id, created_at, updated_at
		FROM saving_goals`
	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении целей: %w", err)
	}
	defer rows.Close()

	var goals []models.SavingGoal
	for rows.Next() {
		var goal models.SavingGoal
		if err := rows.Scan(&goal.ID, &goal.Title, &goal.TargetAmount, &goal.CurrentAmount, &goal.Deadline, &goal.UserID, &goal.CreatedAt, &goal.UpdatedAt); err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

// GetSavingGoalByID возвращает (nil, nil), если цель не найдена.
func GetSavingGoalByID(pool *pgxpool.Pool, id uuid.UUID) (*models.SavingGoal, error) {
	query := `
		SELECT id, title, target_amount, current_amount, deadline, user_id, created_at, updated_at
		FROM saving_goals
		WHERE id = $1`

	goal := &models.SavingGoal{}
	err := pool.QueryRow(context.Background(), query, id).Scan(
		&goal.ID,
		&goal.Title,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.Deadline,
		&goal.UserID,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении цели: %w", err)
	}
	return goal, nil
}

// CreateSavingGoal вставляет цель; created_at/updated_at выставляются
// серверным временем, а не данными клиента.
func CreateSavingGoal(pool *pgxpool.Pool, in *models.SavingGoalInput) (*models.SavingGoal, error) {
	query := `
		INSERT INTO saving_goals (title, target_amount, current_amount, deadline, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, title, target_amount, current_amount, deadline, user_id, created_at, updated_at`

	now := time.Now()
	goal := &models.SavingGoal{}
	err := pool.QueryRow(context.Background(), query,
		in.Title,
		in.TargetAmount,
		in.CurrentAmount,
		in.Deadline,
		in.UserID,
		now,
		now).Scan(
		&goal.ID,
		&goal.Title,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.Deadline,
		&goal.UserID,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка при добавлении цели: %w", err)
	}
	return goal, nil
}

func UpdateSavingGoal(pool *pgxpool.Pool, id uuid.UUID, in *models.SavingGoalInput) (*models.SavingGoal, error) {
	query := `
		UPDATE saving_goals
		SET title = $1, target_amount = $2, current_amount = $3, deadline = $4, user_id = $5, updated_at = $6
		WHERE id = $7
		RETURNING id, title, target_amount, current_amount, deadline, user_id, created_at, updated_at`

	goal := &models.SavingGoal{}
	err := pool.QueryRow(context.Background(), query,
		in.Title,
		in.TargetAmount,
		in.CurrentAmount,
		in.Deadline,
		in.UserID,
		time.Now(),
		id).Scan(
		&goal.ID,
		&goal.Title,
		&goal.TargetAmount,
		&goal.CurrentAmount,
		&goal.Deadline,
		&goal.UserID,
		&goal.CreatedAt,
		&goal.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка обновления цели: %w", err)
	}
	return goal, nil
}

func DeleteSavingGoal(pool *pgxpool.Pool, id uuid.UUID) error {
	query := `DELETE FROM saving_goals WHERE id = $1`
	_, err := pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления цели: %w", err)
	}
	return nil
}

// AddProgressToSavingGoal прибавляет сумму к накопленному; арифметика
// ведется через decimal, чтобы не накапливать погрешность сложения.
// При достижении цели записывается достижение (отдельным запросом,
// без общей транзакции).
func AddProgressToSavingGoal(pool *pgxpool.Pool, id uuid.UUID, progress float64) (*models.SavingGoal, error) {
	goal, err := GetSavingGoalByID(pool, id)
	if err != nil {
		return nil, err
	}
	if goal == nil {
		return nil, ErrNotFound
	}

	current := decimal.NewFromFloat(goal.CurrentAmount).Add(decimal.NewFromFloat(progress))

	query := `
		UPDATE saving_goals
		SET current_amount = $1, updated_at = $2
		WHERE id = $3
		RETURNING id, title, target_amount, current_amount, deadline, user_id, created_at, updated_at`

	updated := &models.SavingGoal{}
	err = pool.QueryRow(context.Background(), query, current.InexactFloat64(), time.Now(), id).Scan(
		&updated.ID,
		&updated.Title,
		&updated.TargetAmount,
		&updated.CurrentAmount,
		&updated.Deadline,
		&updated.UserID,
		&updated.CreatedAt,
		&updated.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка при добавлении прогресса к цели: %w", err)
	}

	if updated.CurrentAmount >= updated.TargetAmount {
		achievement := &models.AchievementInput{
			GoalID:       updated.ID,
			DateAchieved: time.Now(),
			AmountSaved:  updated.CurrentAmount,
		}
		if _, err := CreateAchievement(pool, achievement); err != nil {
			return nil, fmt.Errorf("не удалось записать достижение цели: %w", err)
		}
	}
	return updated, nil
}
