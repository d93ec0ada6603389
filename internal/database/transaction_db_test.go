package database_test

import (
	"testing"
	"time"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func TestTransactionLifecycle(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	category := createTestCategory(t, pool, user)
	defer database.DeleteCategory(pool, category.ID)
	account := createTestAccount(t, pool, user)
	defer database.DeleteAccount(pool, account.ID)

	tx, err := database.CreateTransaction(pool, &models.TransactionInput{
		Title:           "Salary",
		Amount:          1500.0,
		Date:            time.Now(),
		CategoryID:      category.ID,
		TransactionType: models.TransactionTypeIncome,
		UserID:          user.ID,
		AccountID:       account.ID,
	})
	if err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}

	// Чтение по id идет через текстовый разбор transaction_type
	found, err := database.GetTransactionByID(pool, tx.ID)
	if err != nil {
		t.Fatalf("ошибка получения транзакции по ID: %v", err)
	}
	if found == nil {
		t.Fatalf("транзакция не найдена после создания")
	}
	if found.Title != "Salary" || found.Amount != 1500.0 {
		t.Errorf("данные транзакции не совпадают: получили %+v", found)
	}
	if found.TransactionType != models.TransactionTypeIncome {
		t.Errorf("тип транзакции не пережил текстовый разбор: получили %q", found.TransactionType)
	}

	updated, err := database.UpdateTransaction(pool, tx.ID, &models.TransactionInput{
		Title:           "Salary (corrected)",
		Amount:          1600.0,
		Date:            found.Date,
		CategoryID:      category.ID,
		TransactionType: models.TransactionTypeExpense,
		UserID:          user.ID,
		AccountID:       account.ID,
	})
	if err != nil {
		t.Fatalf("ошибка обновления транзакции: %v", err)
	}
	if updated.Title != "Salary (corrected)" || updated.Amount != 1600.0 {
		t.Errorf("данные транзакции после обновления: получили %+v", updated)
	}
	if updated.TransactionType != models.TransactionTypeExpense {
		t.Errorf("тип транзакции не обновился: получили %q", updated.TransactionType)
	}

	deleted, err := database.DeleteTransaction(pool, tx.ID)
	if err != nil {
		t.Fatalf("ошибка удаления транзакции: %v", err)
	}
	if deleted != 1 {
		t.Errorf("число удаленных строк: получили %d, хотели 1", deleted)
	}

	// Повторное удаление: ноль строк, но не ошибка
	deleted, err = database.DeleteTransaction(pool, tx.ID)
	if err != nil {
		t.Fatalf("повторное удаление должно быть тихим успехом: %v", err)
	}
	if deleted != 0 {
		t.Errorf("число удаленных строк при повторном удалении: получили %d, хотели 0", deleted)
	}

	gone, err := database.GetTransactionByID(pool, tx.ID)
	if err != nil {
		t.Fatalf("ошибка получения транзакции после удаления: %v", err)
	}
	if gone != nil {
		t.Errorf("транзакция все еще существует после удаления")
	}
}

func TestGetAllTransactions(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)
	category := createTestCategory(t, pool, user)
	defer database.DeleteCategory(pool, category.ID)
	account := createTestAccount(t, pool, user)
	defer database.DeleteAccount(pool, account.ID)

	tx, err := database.CreateTransaction(pool, &models.TransactionInput{
		Title:           "Coffee",
		Amount:          4.5,
		Date:            time.Now(),
		CategoryID:      category.ID,
		TransactionType: models.TransactionTypeExpense,
		UserID:          user.ID,
		AccountID:       account.ID,
	})
	if err != nil {
		t.Fatalf("ошибка создания транзакции: %v", err)
	}
	defer database.DeleteTransaction(pool, tx.ID)

	transactions, err := database.GetAllTransactions(pool)
	if err != nil {
		t.Fatalf("ошибка получения транзакций: %v", err)
	}

	found := false
	for i := range transactions {
		if transactions[i].ID == tx.ID {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("созданная транзакция отсутствует в списке")
	}
}
