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

func GetAllBudgetsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		budgets, err := database.GetAllBudgets(pool)
		if err != nil {
			logrus.Errorf("ошибка получения бюджетов: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить бюджеты"})
			return
		}

		out := make([]models.BudgetOutput, 0, len(budgets))
		for i := range budgets {
			out = append(out, budgets[i].ToOutput())
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID бюджета"})
			return
		}

		budget, err := database.GetBudgetByID(pool, id)
		if err != nil {
			logrus.Errorf("ошибка получения бюджета %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить бюджет"})
			return
		}
		if budget == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Бюджет не найден"})
			return
		}
		c.JSON(http.StatusOK, budget.ToOutput())
	}
}

func CreateBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.BudgetInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат бюджета"})
			return
		}

		budget, err := database.CreateBudget(pool, &in)
		if err != nil {
			logrus.Errorf("ошибка создания бюджета: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать бюджет"})
			return
		}
		c.JSON(http.StatusCreated, budget.ToOutput())
	}
}

func UpdateBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID бюджета"})
			return
		}

		var in models.BudgetInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат бюджета"})
			return
		}

		budget, err := database.UpdateBudget(pool, id, &in)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Бюджет не найден"})
				return
			}
			logrus.Errorf("ошибка обновления бюджета %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить бюджет"})
			return
		}
		c.JSON(http.StatusOK, budget.ToOutput())
	}
}

func DeleteBudgetHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID бюджета"})
			return
		}

		if err := database.DeleteBudget(pool, id); err != nil {
			logrus.Errorf("ошибка удаления бюджета %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить бюджет"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
