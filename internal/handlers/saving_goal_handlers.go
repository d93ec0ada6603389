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

func GetAllSavingGoalsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		goals, err := database.GetAllSavingGoals(pool)
		if err != nil {
			logrus.Errorf("ошибка получения целей: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить цели"})
			return
		}

		out := make([]models.SavingGoalOutput, 0, len(goals))
		for i := range goals {
			out = append(out, goals[i].ToOutput())
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetSavingGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID цели"})
			return
		}

		goal, err := database.GetSavingGoalByID(pool, id)
		if err != nil {
			logrus.Errorf("ошибка получения цели %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить цель"})
			return
		}
		if goal == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Цель не найдена"})
			return
		}
		c.JSON(http.StatusOK, goal.ToOutput())
	}
}

func CreateSavingGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.SavingGoalInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат цели"})
			return
		}

		goal, err := database.CreateSavingGoal(pool, &in)
		if err != nil {
			logrus.Errorf("ошибка создания цели: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать цель"})
			return
		}
		c.JSON(http.StatusCreated, goal.ToOutput())
	}
}

func UpdateSavingGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID цели"})
			return
		}

		var in models.SavingGoalInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат цели"})
			return
		}

		goal, err := database.UpdateSavingGoal(pool, id, &in)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Цель не найдена"})
				return
			}
			logrus.Errorf("ошибка обновления цели %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить цель"})
			return
		}
		c.JSON(http.StatusOK, goal.ToOutput())
	}
}

func DeleteSavingGoalHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID цели"})
			return
		}

		if err := database.DeleteSavingGoal(pool, id); err != nil {
			logrus.Errorf("ошибка удаления цели %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить цель"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}

// AddSavingGoalProgressHandler прибавляет сумму к накопленному по цели.
func AddSavingGoalProgressHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID цели"})
			return
		}

		var progressData struct {
			Progress float64 `json:"progress" binding:"required,gt=0"`
		}
		if err := c.ShouldBindJSON(&progressData); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректные данные"})
			return
		}

		goal, err := database.AddProgressToSavingGoal(pool, id, progressData.Progress)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Цель не найдена"})
				return
			}
			logrus.Errorf("ошибка добавления прогресса к цели %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось добавить прогресс"})
			return
		}
		c.JSON(http.StatusOK, goal.ToOutput())
	}
}
