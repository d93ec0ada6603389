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

func GetAllAchievementsHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		achievements, err := database.GetAllAchievements(pool)
		if err != nil {
			logrus.Errorf("ошибка получения достижений: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить достижения"})
			return
		}

		out := make([]models.AchievementOutput, 0, len(achievements))
		for i := range achievements {
			out = append(out, achievements[i].ToOutput())
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetAchievementHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID достижения"})
			return
		}

		achievement, err := database.GetAchievementByID(pool, id)
		if err != nil {
			logrus.Errorf("ошибка получения достижения %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить достижение"})
			return
		}
		if achievement == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Достижение не найдено"})
			return
		}
		c.JSON(http.StatusOK, achievement.ToOutput())
	}
}

func CreateAchievementHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.AchievementInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат ввода"})
			return
		}

		achievement, err := database.CreateAchievement(pool, &in)
		if err != nil {
			logrus.Errorf("ошибка создания достижения: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать достижение"})
			return
		}
		c.JSON(http.StatusCreated, achievement.ToOutput())
	}
}

func UpdateAchievementHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID достижения"})
			return
		}

		var in models.AchievementInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат ввода"})
			return
		}

		achievement, err := database.UpdateAchievement(pool, id, &in)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Достижение не найдено"})
				return
			}
			logrus.Errorf("ошибка обновления достижения %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить достижение"})
			return
		}
		c.JSON(http.StatusOK, achievement.ToOutput())
	}
}

func DeleteAchievementHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID достижения"})
			return
		}

		if err := database.DeleteAchievement(pool, id); err != nil {
			logrus.Errorf("ошибка удаления достижения %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить достижение"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
