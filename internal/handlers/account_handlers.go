package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/database"
	"github.com/valeriaulyamaeva/finance-tracker-api/models"
)

func GetAllAccountsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		accounts, err := database.GetAllAccounts(pool)
		if err != nil {
			logrus.Errorf("ошибка получения счетов: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить счета"})
			return
		}

		out := make([]models.AccountOutput, 0, len(accounts))
		for i := range accounts {
			out = append(out, accounts[i].ToOutput())
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetAccountHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID счета"})
			return
		}

		account, err := database.GetAccountByID(pool, id)
		if err != nil {
			logrus.Errorf("ошибка получения счета %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить счет"})
			return
		}
		if account == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Счет не найден"})
			return
		}
		c.JSON(http.StatusOK, account.ToOutput())
	}
}

func CreateAccountHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.AccountInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат ввода"})
			return
		}
		accountType, err := models.ParseAccountType(string(in.AccountType))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный тип счета"})
			return
		}
		in.AccountType = accountType

		account, err := database.CreateAccount(pool, &in)
		if err != nil {
			logrus.Errorf("ошибка создания счета: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать счет"})
			return
		}
		c.JSON(http.StatusCreated, account.ToOutput())
	}
}

func UpdateAccountHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID счета"})
			return
		}

		var in models.AccountInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат ввода"})
			return
		}
		accountType, err := models.ParseAccountType(string(in.AccountType))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный тип счета"})
			return
		}
		in.AccountType = accountType

		account, err := database.UpdateAccount(pool, id, &in)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Счет не найден"})
				return
			}
			logrus.Errorf("ошибка обновления счета %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить счет"})
			return
		}
		c.JSON(http.StatusOK, account.ToOutput())
	}
}

func DeleteAccountHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID счета"})
			return
		}

		if err := database.DeleteAccount(pool, id); err != nil {
			logrus.Errorf("ошибка удаления счета %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить счет"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
