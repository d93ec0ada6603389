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

func GetAllAchievements(pool *pgxpool.Pool) ([]models.Achievement, error) {
	query := `SELECT id, goal_id, date_achieved, amount_saved FROM achievements`
	rows, err := pool.Query(context.Background(), query)
	if err != nil {
		return nil, fmt.Errorf("ошибка при получении достижений: %w", err)
	}
	defer rows.Close()

	var achievements []models.Achievement
	for rows.Next() {
		var achievement models.Achievement
		if err := rows.Scan(&achievement.ID, &achievement.GoalID, &achievement.DateAchieved, &achievement.AmountSaved); err != nil {
			return nil, err
		}
		achievements = append(achievements, achievement)
	}
	return achievements, rows.Err()
}

// GetAchievementByID возвращает (nil, nil), если достижение не найдено.
func GetAchievementByID(pool *pgxpool.Pool, id uuid.UUID) (*models.Achievement, error) {
	query := `SELECT id, goal_id, date_achieved, amount_saved FROM achievements WHERE id = $1`

	achievement := &models.Achievement{}
	err := pool.QueryRow(context.Background(), query, id).Scan(
		&achievement.ID,
		&achievement.GoalID,
		&achievement.DateAchieved,
		&achievement.AmountSaved,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("ошибка при получении достижения: %w", err)
	}
	return achievement, nil
}

func CreateAchievement(pool *pgxpool.Pool, in *models.AchievementInput) (*models.Achievement, error) {
	query := `
		INSERT INTO achievements (goal_id, date_achieved, amount_saved)
		VALUES ($1, $2, $3)
		RETURNING id, goal_id, date_achieved, amount_saved`

	achievement := &models.Achievement{}
	err := pool.QueryRow(context.Background(), query,
		in.GoalID,
		in.DateAchieved,
		in.AmountSaved).Scan(
		&achievement.ID,
		&achievement.GoalID,
		&achievement.DateAchieved,
		&achievement.AmountSaved,
	)
	if err != nil {
		return nil, fmt.Errorf("ошибка при добавлении достижения: %w", err)
	}
	return achievement, nil
}

func UpdateAchievement(pool *pgxpool.Pool, id uuid.UUID, in *models.AchievementInput) (*models.Achievement, error) {
	query := `
		UPDATE achievements
		SET goal_id = $1, date_achieved = $2, amount_saved = $3
		WHERE id = $4
		RETURNING id, goal_id, date_achieved, amount_saved`

	achievement := &models.Achievement{}
	err := pool.QueryRow(context.Background(), query,
		in.GoalID,
		in.DateAchieved,
		in.AmountSaved,
		id).Scan(
		&achievement.ID,
		&achievement.GoalID,
		&achievement.DateAchieved,
		&achievement.AmountSaved,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("ошибка обновления достижения: %w", err)
	}
	return achievement, nil
}

func DeleteAchievement(pool *pgxpool.Pool, id uuid.UUID) error {
	query := `DELETE FROM achievements WHERE id = $1`
	_, err := pool.Exec(context.Background(), query, id)
	if err != nil {
		return fmt.Errorf("ошибка удаления достижения: %w", err)
	}
	return nil
}
