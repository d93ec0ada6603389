package utils

import (
	"log"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

// GenerateTestUsers добавляет numUsers случайных пользователей и
// возвращает их идентификаторы.
func GenerateTestUsers(pool *pgxpool.Pool, numUsers int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		in := &models.UserInput{
			Username: gofakeit.Username(),
			Email:    gofakeit.Email(),
		}
		user, err := database.CreateUser(pool, in)
		if err != nil {
			log.Fatalf("ошибка при добавлении пользователя: %v", err)
		}
		ids = append(ids, user.ID)
	}
	return ids
}

// GenerateTestAccounts добавляет по одному счету каждого типа для
// каждого пользователя.
func GenerateTestAccounts(pool *pgxpool.Pool, userIDs []uuid.UUID) []uuid.UUID {
	types := []models.AccountType{models.AccountTypeBank, models.AccountTypeCash, models.AccountTypeCard}
	ids := make([]uuid.UUID, 0, len(userIDs)*len(types))
	for _, userID := range userIDs {
		for _, accountType := range types {
			in := &models.AccountInput{
				Name:        gofakeit.NounAbstract(),
				AccountType: accountType,
				Balance:     gofakeit.Price(0, 10000),
				UserID:      userID,
			}
			account, err := database.CreateAccount(pool, in)
			if err != nil {
				log.Fatalf("ошибка при добавлении счета: %v", err)
			}
			ids = append(ids, account.ID)
		}
	}
	return ids
}

// GenerateTestCategories добавляет numCategories случайных категорий
// для каждого пользователя.
func GenerateTestCategories(pool *pgxpool.Pool, userIDs []uuid.UUID, numCategories int) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(userIDs)*numCategories)
	for _, userID := range userIDs {
		for i := 0; i < numCategories; i++ {
			in := &models.CategoryInput{
				Name:   gofakeit.Word(),
				UserID: userID,
			}
			category, err := database.CreateCategory(pool, in)
			if err != nil {
				log.Fatalf("ошибка при добавлении категории: %v", err)
			}
			ids = append(ids, category.ID)
		}
	}
	return ids
}

// GenerateTestTransactions добавляет numTransactions случайных транзакций,
// распределяя их по переданным счетам и категориям.
func GenerateTestTransactions(pool *pgxpool.Pool, userID uuid.UUID, accountIDs, categoryIDs []uuid.UUID, numTransactions int) {
	for i := 0; i < numTransactions; i++ {
		txType := models.TransactionTypeExpense
		if rand.Intn(2) == 0 {
			txType = models.TransactionTypeIncome
		}
		in := &models.TransactionInput{
			Title:           gofakeit.ProductName(),
			Amount:          gofakeit.Price(1, 1000),
			Date:            gofakeit.DateRange(time.Now().AddDate(0, -6, 0), time.Now()),
			CategoryID:      categoryIDs[rand.Intn(len(categoryIDs))],
			TransactionType: txType,
			UserID:          userID,
			AccountID:       accountIDs[rand.Intn(len(accountIDs))],
		}
		if _, err := database.CreateTransaction(pool, in); err != nil {
			log.Fatalf("ошибка при добавлении транзакции: %v", err)
		}
	}
}
