package routes

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/valeriaulyamaeva/finance-tracker-api/internal/handlers"
)

// SetupRouter регистрирует маршруты всех сущностей.
func SetupRouter(pool *pgxpool.Pool) *gin.Engine {
	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		if err := pool.Ping(context.Background()); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "db unavailable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/users", handlers.GetAllUsersHandler(pool))
	r.GET("/users/:id", handlers.GetUserHandler(pool))
	r.POST("/users", handlers.CreateUserHandler(pool))
	r.PATCH("/users/:id", handlers.UpdateUserHandler(pool))
	r.DELETE("/users/:id", handlers.DeleteUserHandler(pool))

	r.GET("/accounts", handlers.GetAllAccountsHandler(pool))
	r.GET("/accounts/:id", handlers.GetAccountHandler(pool))
	r.POST("/accounts", handlers.CreateAccountHandler(pool))
	r.PATCH("/accounts/:id", handlers.UpdateAccountHandler(pool))
	r.DELETE("/accounts/:id", handlers.DeleteAccountHandler(pool))

	r.GET("/categories", handlers.GetAllCategoriesHandler(pool))
	r.GET("/categories/:id", handlers.GetCategoryHandler(pool))
	r.POST("/categories", handlers.CreateCategoryHandler(pool))
	r.PATCH("/categories/:id", handlers.UpdateCategoryHandler(pool))
	r.DELETE("/categories/:id", handlers.DeleteCategoryHandler(pool))

	r.GET("/budgets", handlers.GetAllBudgetsHandler(pool))
	r.GET("/budgets/:id", handlers.GetBudgetHandler(pool))
	r.POST("/budgets", handlers.CreateBudgetHandler(pool))
	r.PATCH("/budgets/:id", handlers.UpdateBudgetHandler(pool))
	r.DELETE("/budgets/:id", handlers.DeleteBudgetHandler(pool))

	r.GET("/transactions", handlers.GetAllTransactionsHandler(pool))
	r.GET("/transactions/:id", handlers.GetTransactionHandler(pool))
	r.POST("/transactions", handlers.CreateTransactionHandler(pool))
	r.PATCH("/transactions/:id", handlers.UpdateTransactionHandler(pool))
	r.DELETE("/transactions/:id", handlers.DeleteTransactionHandler(pool))

	r.GET("/saving_goals", handlers.GetAllSavingGoalsHandler(pool))
	r.GET("/saving_goals/:id", handlers.GetSavingGoalHandler(pool))
	r.POST("/saving_goals", handlers.CreateSavingGoalHandler(pool))
	r.PATCH("/saving_goals/:id", handlers.UpdateSavingGoalHandler(pool))
	r.DELETE("/saving_goals/:id", handlers.DeleteSavingGoalHandler(pool))
	r.POST("/saving_goals/:id/progress", handlers.AddSavingGoalProgressHandler(pool))

	r.GET("/achievements", handlers.GetAllAchievementsHandler(pool))
	r.GET("/achievements/:id", handlers.GetAchievementHandler(pool))
	r.POST("/achievements", handlers.CreateAchievementHandler(pool))
	r.PATCH("/achievements/:id", handlers.UpdateAchievementHandler(pool))
	r.DELETE("/achievements/:id", handlers.DeleteAchievementHandler(pool))

	return r
}
