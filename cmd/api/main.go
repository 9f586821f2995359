package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"payday/internal/config"
	"payday/internal/database"
	"payday/internal/handlers"
	"payday/internal/logger"
	"payday/internal/middleware"
	"payday/internal/services"
	"payday/internal/session"
	"payday/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Register custom validation tags before any request binding
	validator.Register()

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Staged imports live in memory until committed or expired
	importStore := session.NewMemoryStore(appConfig.ImportSessionTTL)

	// Initialize services
	db := dbManager.DB()
	billService := services.NewBillService(db)
	paycheckService := services.NewPaycheckService(db)
	payScheduleService := services.NewPayScheduleService(db)
	expenseService := services.NewExpenseService(db)
	importService := services.NewImportService(db, importStore)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	billHandler := handlers.NewBillHandler(billService)
	paycheckHandler := handlers.NewPaycheckHandler(paycheckService)
	payScheduleHandler := handlers.NewPayScheduleHandler(payScheduleService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	importHandler := handlers.NewImportHandler(importService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	categoryHandler := handlers.NewCategoryHandler()

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Bill routes
	bills := v1.Group("/bills")
	bills.POST("", billHandler.CreateBill)
	bills.GET("", billHandler.GetBills)
	bills.GET("/:id", billHandler.GetBillByID)
	bills.PUT("/:id", billHandler.UpdateBill)
	bills.DELETE("/:id", billHandler.DeleteBill)
	bills.POST("/:id/paid", billHandler.MarkPaid)
	bills.DELETE("/:id/paid", billHandler.MarkUnpaid)

	// Paycheck routes
	paychecks := v1.Group("/paychecks")
	paychecks.POST("", paycheckHandler.CreatePaycheck)
	paychecks.GET("", paycheckHandler.GetPaychecks)
	paychecks.GET("/:id", paycheckHandler.GetPaycheckByID)
	paychecks.PUT("/:id", paycheckHandler.UpdatePaycheck)
	paychecks.DELETE("/:id", paycheckHandler.DeletePaycheck)

	// Pay schedule routes
	paySchedule := v1.Group("/pay-schedule")
	paySchedule.PUT("", payScheduleHandler.SavePaySchedule)
	paySchedule.GET("", payScheduleHandler.GetPaySchedule)
	paySchedule.GET("/current-period", payScheduleHandler.GetCurrentPeriod)

	// Import routes carry the session cookie that scopes staged data
	imports := v1.Group("/imports/expenses")
	imports.Use(middleware.ImportSession())
	imports.POST("", importHandler.Stage)
	imports.GET("/preview", importHandler.Preview)
	imports.POST("/commit", importHandler.Commit)
	imports.DELETE("", importHandler.Discard)

	// Expense routes
	expenses := v1.Group("/expenses")
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.PUT("/:id/category", expenseHandler.UpdateCategory)
	expenses.PUT("/category", expenseHandler.BulkUpdateCategory)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	expenses.POST("/bulk-delete", expenseHandler.BulkDeleteExpenses)

	// Category routes
	v1.GET("/categories", categoryHandler.GetCategories)

	// Dashboard routes
	v1.GET("/dashboard", dashboardHandler.GetSummary)

	log.Infof("Starting payday backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
