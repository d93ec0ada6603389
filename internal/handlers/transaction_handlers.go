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

func GetAllTransactionsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		transactions, err := database.GetAllTransactions(pool)
		if err != nil {
			logrus.Errorf("ошибка получения транзакций: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить транзакции"})
			return
		}

		out := make([]models.TransactionOutput, 0, len(transactions))
		for i := range transactions {
			out = append(out, transactions[i].ToOutput())
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID транзакции"})
			return
		}

		tx, err := database.GetTransactionByID(pool, id)
		if err != nil {
			logrus.Errorf("ошибка получения транзакции %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить транзакцию"})
			return
		}
		if tx == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Транзакция не найдена"})
			return
		}
		c.JSON(http.StatusOK, tx.ToOutput())
	}
}

func CreateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.TransactionInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат ввода"})
			return
		}
		if _, err := models.ParseTransactionType(string(in.TransactionType)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный тип транзакции"})
			return
		}

		tx, err := database.CreateTransaction(pool, &in)
		if err != nil {
			logrus.Errorf("ошибка создания транзакции: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать транзакцию"})
			return
		}
		c.JSON(http.StatusCreated, tx.ToOutput())
	}
}

func UpdateTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID транзакции"})
			return
		}

		var in models.TransactionInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат ввода"})
			return
		}
		if _, err := models.ParseTransactionType(string(in.TransactionType)); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный тип транзакции"})
			return
		}

		tx, err := database.UpdateTransaction(pool, id, &in)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Транзакция не найдена"})
				return
			}
			logrus.Errorf("ошибка обновления транзакции %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить транзакцию"})
			return
		}
		c.JSON(http.StatusOK, tx.ToOutput())
	}
}

func DeleteTransactionHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID транзакции"})
			return
		}

		deleted, err := database.DeleteTransaction(pool, id)
		if err != nil {
			logrus.Errorf("ошибка удаления транзакции %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить транзакцию"})
			return
		}
		logrus.Debugf("удалено транзакций: %d", deleted)
		c.Status(http.StatusNoContent)
	}
}
