package database_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// Сценарий из жизни счета: создание, чтение по id через текстовый
// разбор enum-колонки, обновление баланса, удаление.
func TestAccountLifecycle(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	account, err := database.CreateAccount(pool, &models.AccountInput{
		Name:        "Test",
		AccountType: models.AccountTypeBank,
		Balance:     100.0,
		UserID:      user.ID,
	})
	if err != nil {
		t.Fatalf("ошибка создания счета: %v", err)
	}

	found, err := database.GetAccountByID(pool, account.ID)
	if err != nil {
		t.Fatalf("ошибка получения счета по ID: %v", err)
	}
	if found == nil {
		t.Fatalf("счет не найден после создания")
	}
	if found.Name != "Test" || found.Balance != 100.0 {
		t.Errorf("данные счета не совпадают: получили %+v", found)
	}
	if found.AccountType != models.AccountTypeBank {
		t.Errorf("тип счета не пережил текстовый разбор: получили %q", found.AccountType)
	}
	if found.UserID != user.ID {
		t.Errorf("user_id не совпадает: получили %s, хотели %s", found.UserID, user.ID)
	}

	updated, err := database.UpdateAccount(pool, account.ID, &models.AccountInput{
		Name:        "Test",
		AccountType: models.AccountTypeBank,
		Balance:     150.0,
		UserID:      user.ID,
	})
	if err != nil {
		t.Fatalf("ошибка обновления счета: %v", err)
	}
	if updated.Balance != 150.0 {
		t.Errorf("баланс не обновился: получили %v, хотели 150.0", updated.Balance)
	}

	refetched, err := database.GetAccountByID(pool, account.ID)
	if err != nil {
		t.Fatalf("ошибка получения счета после обновления: %v", err)
	}
	if refetched.Balance != 150.0 {
		t.Errorf("баланс после повторного чтения: получили %v, хотели 150.0", refetched.Balance)
	}

	if err := database.DeleteAccount(pool, account.ID); err != nil {
		t.Fatalf("ошибка удаления счета: %v", err)
	}
	deleted, err := database.GetAccountByID(pool, account.ID)
	if err != nil {
		t.Fatalf("ошибка получения счета после удаления: %v", err)
	}
	if deleted != nil {
		t.Errorf("счет все еще существует после удаления")
	}
}

func TestAccountEnumRoundTrip(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	for _, accountType := range []models.AccountType{
		models.AccountTypeBank,
		models.AccountTypeCash,
		models.AccountTypeCard,
	} {
		account, err := database.CreateAccount(pool, &models.AccountInput{
			Name:        "RoundTrip",
			AccountType: accountType,
			Balance:     10.0,
			UserID:      user.ID,
		})
		if err != nil {
			t.Fatalf("ошибка создания счета типа %s: %v", accountType, err)
		}

		found, err := database.GetAccountByID(pool, account.ID)
		if err != nil {
			t.Fatalf("ошибка получения счета по ID: %v", err)
		}
		if found.AccountType != accountType {
			t.Errorf("тип счета изменился при чтении: получили %q, хотели %q", found.AccountType, accountType)
		}

		if err := database.DeleteAccount(pool, account.ID); err != nil {
			t.Fatalf("ошибка удаления счета: %v", err)
		}
	}
}

// Текстовый разбор работает и в строгом режиме, пока значения корректны.
func TestAccountStrictEnumDecode(t *testing.T) {
	pool := testPool(t)
	user := createTestUser(t, pool)

	database.LenientEnumDecode = false
	defer func() { database.LenientEnumDecode = true }()

	account := createTestAccount(t, pool, user)
	defer database.DeleteAccount(pool, account.ID)

	found, err := database.GetAccountByID(pool, account.ID)
	if err != nil {
		t.Fatalf("строгий разбор корректного значения не должен падать: %v", err)
	}
	if found.AccountType != models.AccountTypeBank {
		t.Errorf("тип счета: получили %q, хотели Bank", found.AccountType)
	}
}

func TestGetAccountByIDAbsent(t *testing.T) {
	pool := testPool(t)

	account, err := database.GetAccountByID(pool, uuid.New())
	if err != nil {
		t.Fatalf("поиск несуществующего счета не должен быть ошибкой: %v", err)
	}
	if account != nil {
		t.Errorf("нашелся счет по случайному id: %+v", account)
	}
}
