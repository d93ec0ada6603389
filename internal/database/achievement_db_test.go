package database_test

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func createTestSavingGoal(t *testing.T, pool *pgxpool.Pool, user *models.User) *models.SavingGoal {
	t.Helper()
	goal, err := database.CreateSavingGoal(pool, &models.SavingGoalInput{
		Title:         "Vacation",
		TargetAmount:  2000.0,
		CurrentAmount: 100.0,
		Deadline:      models.NewDate(2024, time.December, 31),
		UserID:        user.ID,
	})
	if err != nil {
		t.Fatalf("ошибка создания цели: %v", err)
	}
	t.Cleanup(func() { database.DeleteSavingGoal(pool, goal.ID) })
	return goal
}

func TestAchievementLifecycle(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	goal := createTestSavingGoal(t, pool, user)

	achievement, err := database.CreateAchievement(pool, &models.AchievementInput{
		GoalID:       goal.ID,
		DateAchieved: time.Now(),
		AmountSaved:  1000.0,
	})
	if err != nil {
		t.Fatalf("ошибка создания достижения: %v", err)
	}

	found, err := database.GetAchievementByID(pool, achievement.ID)
	if err != nil {
		t.Fatalf("ошибка получения достижения по ID: %v", err)
	}
	if found == nil {
		t.Fatalf("достижение не найдено после создания")
	}
	if found.GoalID != goal.ID {
		t.Errorf("goal_id изменился: получили %s, хотели %s", found.GoalID, goal.ID)
	}
	if found.AmountSaved != 1000.0 {
		t.Errorf("amount_saved: получили %v, хотели 1000.0", found.AmountSaved)
	}

	updated, err := database.UpdateAchievement(pool, achievement.ID, &models.AchievementInput{
		GoalID:       goal.ID,
		DateAchieved: found.DateAchieved,
		AmountSaved:  1100.0,
	})
	if err != nil {
		t.Fatalf("ошибка обновления достижения: %v", err)
	}
	if updated.AmountSaved != 1100.0 {
		t.Errorf("amount_saved после обновления: получили %v, хотели 1100.0", updated.AmountSaved)
	}

	if err := database.DeleteAchievement(pool, achievement.ID); err != nil {
		t.Fatalf("ошибка удаления достижения: %v", err)
	}
	deleted, err := database.GetAchievementByID(pool, achievement.ID)
	if err != nil {
		t.Fatalf("ошибка получения достижения после удаления: %v", err)
	}
	if deleted != nil {
		t.Errorf("достижение все еще существует после удаления")
	}
}
