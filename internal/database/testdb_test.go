package database_test

import (
	"os"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// testPool подключается к тестовой БД; без TEST_DATABASE_URL
// интеграционные тесты пропускаются.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	_ = godotenv.Load()
	if os.Getenv("TEST_DATABASE_URL") == "" {
		t.Skip("TEST_DATABASE_URL не задана, пропускаем интеграционный тест")
	}
	pool, err := database.ConnectTestDB()
	if err != nil {
		t.Fatalf("ошибка подключения к БД: %v", err)
	}
	t.Cleanup(pool.Close)
	return pool
}

func createTestUser(t *testing.T, pool *pgxpool.Pool) *models.User {
	t.Helper()
	user, err := database.CreateUser(pool, &models.UserInput{
		Username: gofakeit.Username(),
		Email:    gofakeit.Email(),
	})
	if err != nil {
		t.Fatalf("ошибка создания пользователя: %v", err)
	}
	t.Cleanup(func() {
		if err := database.DeleteUser(pool, user.ID); err != nil {
			t.Errorf("ошибка очистки пользователя: %v", err)
		}
	})
	return user
}

func createTestCategory(t *testing.T, pool *pgxpool.Pool, user *models.User) *models.Category {
	t.Helper()
	category, err := database.CreateCategory(pool, &models.CategoryInput{
		Name:   gofakeit.Word(),
		UserID: user.ID,
	})
	if err != nil {
		t.Fatalf("ошибка создания категории: %v", err)
	}
	return category
}

func createTestAccount(t *testing.T, pool *pgxpool.Pool, user *models.User) *models.Account {
	t.Helper()
	account, err := database.CreateAccount(pool, &models.AccountInput{
		Name:        "Test",
		AccountType: models.AccountTypeBank,
		Balance:     100.0,
		UserID:      user.ID,
	})
	if err != nil {
		t.Fatalf("ошибка создания счета: %v", err)
	}
	return account
}
