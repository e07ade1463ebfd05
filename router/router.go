package router

import (
	"budget-tracker/api"
	"budget-tracker/config"
	_ "budget-tracker/docs"
	"budget-tracker/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// SetupRouter wires all routes.
func SetupRouter(cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.Server.Mode)

	r := gin.Default()

	r.Use(CORSMiddleware())

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")
	{
		// authentication routes, no token required
		authHandler := api.NewAuthHandler(cfg)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// everything else requires a bearer token
		authorized := v1.Group("")
		authorized.Use(middleware.TokenAuth())
		{
			authorized.GET("/auth/profile", authHandler.GetProfile)

			categoryHandler := api.NewCategoryHandler()
			categories := authorized.Group("/categories")
			{
				categories.GET("", categoryHandler.List)
				categories.POST("", categoryHandler.Create)
			}

			incomeHandler := api.NewIncomeHandler()
			incomes := authorized.Group("/incomes")
			{
				incomes.GET("", incomeHandler.List)
				incomes.POST("", incomeHandler.Create)
			}

			expenseHandler := api.NewExpenseHandler()
			expenses := authorized.Group("/expenses")
			{
				expenses.GET("", expenseHandler.List)
				expenses.POST("", expenseHandler.Create)
			}

			budgetHandler := api.NewBudgetHandler()
			budgets := authorized.Group("/budgets")
			{
				budgets.GET("", budgetHandler.Get)
				budgets.POST("", budgetHandler.Set)
			}

			summaryHandler := api.NewSummaryHandler()
			authorized.GET("/budget-summary", summaryHandler.Summarize)

			transactionHandler := api.NewTransactionHandler()
			authorized.GET("/transactions", transactionHandler.List)

			exportHandler := api.NewExportHandler()
			export := authorized.Group("/export")
			{
				export.GET("/csv", exportHandler.ExportCSV)
				export.GET("/excel", exportHandler.ExportExcel)
			}
		}
	}

	// liveness
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	return r
}

// CORSMiddleware handles cross-origin requests.
func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE, PATCH")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
