package database_test

import (
	"testing"
	"time"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// Бюджет без категории: category_id должен остаться NULL и вернуться
// отсутствующим значением, а не нулевым uuid.
func TestCreateBudgetWithoutCategory(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	budget, err := database.CreateBudget(pool, &models.BudgetInput{
		Name:      "Monthly",
		Amount:    500.0,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 1, 0),
		UserID:    user.ID,
	})
	if err != nil {
		t.Fatalf("ошибка создания бюджета: %v", err)
	}
	defer database.DeleteBudget(pool, budget.ID)

	if budget.CategoryID != nil {
		t.Errorf("category_id должен быть пустым, получили %v", budget.CategoryID)
	}

	createdBudget, err := database.GetBudgetByID(pool, budget.ID)
	if err != nil {
		t.Fatalf("ошибка получения бюджета по ID: %v", err)
	}
	if createdBudget == nil {
		t.Fatalf("бюджет не найден после создания")
	}
	if createdBudget.CategoryID != nil {
		t.Errorf("category_id после чтения должен быть пустым, получили %v", createdBudget.CategoryID)
	}
	if createdBudget.Amount != 500.0 || createdBudget.Name != "Monthly" {
		t.Errorf("данные бюджета не совпадают: получили %+v", createdBudget)
	}
}

func TestBudgetCategoryRoundTrip(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	category := createTestCategory(t, pool, user)
	defer database.DeleteCategory(pool, category.ID)

	budget, err := database.CreateBudget(pool, &models.BudgetInput{
		Name:       "Groceries budget",
		Amount:     300.0,
		StartDate:  time.Now(),
		EndDate:    time.Now().AddDate(0, 1, 0),
		UserID:     user.ID,
		CategoryID: &category.ID,
	})
	if err != nil {
		t.Fatalf("ошибка создания бюджета: %v", err)
	}
	defer database.DeleteBudget(pool, budget.ID)

	if budget.CategoryID == nil || *budget.CategoryID != category.ID {
		t.Errorf("category_id не совпадает: получили %v, хотели %s", budget.CategoryID, category.ID)
	}

	// Обновление со сбросом категории в NULL
	updated, err := database.UpdateBudget(pool, budget.ID, &models.BudgetInput{
		Name:      "Groceries budget",
		Amount:    350.0,
		StartDate: budget.StartDate,
		EndDate:   budget.EndDate,
		UserID:    user.ID,
	})
	if err != nil {
		t.Fatalf("ошибка обновления бюджета: %v", err)
	}
	if updated.CategoryID != nil {
		t.Errorf("category_id после сброса должен быть пустым, получили %v", updated.CategoryID)
	}
	if updated.Amount != 350.0 {
		t.Errorf("сумма не обновилась: получили %v", updated.Amount)
	}
}

func TestUpdateBudgetNotFound(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	budget, err := database.CreateBudget(pool, &models.BudgetInput{
		Name:      "Doomed",
		Amount:    100.0,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 1, 0),
		UserID:    user.ID,
	})
	if err != nil {
		t.Fatalf("ошибка создания бюджета: %v", err)
	}
	if err := database.DeleteBudget(pool, budget.ID); err != nil {
		t.Fatalf("ошибка удаления бюджета: %v", err)
	}

	_, err = database.UpdateBudget(pool, budget.ID, &models.BudgetInput{
		Name:      "Doomed",
		Amount:    100.0,
		StartDate: time.Now(),
		EndDate:   time.Now().AddDate(0, 1, 0),
		UserID:    user.ID,
	})
	if err != database.ErrNotFound {
		t.Errorf("обновление несуществующего бюджета: хотели ErrNotFound, получили %v", err)
	}
}
