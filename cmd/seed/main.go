package main

import (
	"flag"
	"log"

	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/utils"
)

// Наполняет базу случайными данными для ручной проверки API.
func main() {
	numUsers := flag.Int("users", 5, "количество пользователей")
	numCategories := flag.Int("categories", 4, "категорий на пользователя")
	numTransactions := flag.Int("transactions", 20, "транзакций на пользователя")
	flag.Parse()

	pool, err := database.ConnectDB()
	if err != nil {
		log.Fatalf("ошибка подключения к БД: %v", err)
	}
	defer pool.Close()

	userIDs := utils.GenerateTestUsers(pool, *numUsers)
	accountIDs := utils.GenerateTestAccounts(pool, userIDs)
	categoryIDs := utils.GenerateTestCategories(pool, userIDs, *numCategories)

	for _, userID := range userIDs {
		utils.GenerateTestTransactions(pool, userID, accountIDs, categoryIDs, *numTransactions)
	}

	log.Printf("создано: %d пользователей, %d счетов, %d категорий", len(userIDs), len(accountIDs), len(categoryIDs))
}
