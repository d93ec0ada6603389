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

func GetAllCategoriesHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := database.GetAllCategories(pool)
		if err != nil {
			logrus.Errorf("ошибка получения категорий: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить категории"})
			return
		}

		out := make([]models.CategoryOutput, 0, len(categories))
		for i := range categories {
			out = append(out, categories[i].ToOutput())
		}
		c.JSON(http.StatusOK, out)
	}
}

func GetCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID категории"})
			return
		}

		category, err := database.GetCategoryByID(pool, id)
		if err != nil {
			logrus.Errorf("ошибка получения категории %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось получить категорию"})
			return
		}
		if category == nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Категория не найдена"})
			return
		}
		c.JSON(http.StatusOK, category.ToOutput())
	}
}

func CreateCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		var in models.CategoryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат категории"})
			return
		}

		category, err := database.CreateCategory(pool, &in)
		if err != nil {
			logrus.Errorf("ошибка создания категории: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось создать категорию"})
			return
		}
		c.JSON(http.StatusCreated, category.ToOutput())
	}
}

func UpdateCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID категории"})
			return
		}

		var in models.CategoryInput
		if err := c.ShouldBindJSON(&in); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный формат категории"})
			return
		}

		category, err := database.UpdateCategory(pool, id, &in)
		if err != nil {
			if errors.Is(err, database.ErrNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": "Категория не найдена"})
				return
			}
			logrus.Errorf("ошибка обновления категории %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось обновить категорию"})
			return
		}
		c.JSON(http.StatusOK, category.ToOutput())
	}
}

func DeleteCategoryHandler(pool *pgxpool.Pool) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Некорректный ID категории"})
			return
		}

		if err := database.DeleteCategory(pool, id); err != nil {
			logrus.Errorf("ошибка удаления категории %s: %v", id, err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Не удалось удалить категорию"})
			return
		}
		c.Status(http.StatusNoContent)
	}
}
