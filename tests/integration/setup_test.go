package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"payday/internal/handlers"
	"payday/internal/logger"
	"payday/internal/middleware"
	"payday/internal/models"
	"payday/internal/services"
	"payday/internal/session"
	"payday/internal/validator"
)

// testApp holds the full application stack for integration tests.
type testApp struct {
	DB     *gorm.DB
	Router *gin.Engine
}

// dbCounter ensures each test gets a unique in-memory database.
var dbCounter atomic.Int64

func init() {
	gin.SetMode(gin.TestMode)
	logger.Init("test")
	validator.Register()
}

// setupIsolatedDB creates an isolated in-memory SQLite database for a single test.
func setupIsolatedDB(t *testing.T) *gorm.DB {
	t.Helper()

	n := dbCounter.Add(1)
	dsn := fmt.Sprintf("file:integrationdb%d?mode=memory&cache=shared", n)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	allModels := []interface{}{
		&models.Bill{},
		&models.Paycheck{},
		&models.PaySchedule{},
		&models.Expense{},
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

// setupApp creates a full application stack backed by an isolated in-memory SQLite.
func setupApp(t *testing.T) *testApp {
	t.Helper()

	db := setupIsolatedDB(t)
	importStore := session.NewMemoryStore(30 * time.Minute)

	// Services
	billService := services.NewBillService(db)
	paycheckService := services.NewPaycheckService(db)
	payScheduleService := services.NewPayScheduleService(db)
	expenseService := services.NewExpenseService(db)
	importService := services.NewImportService(db, importStore)
	dashboardService := services.NewDashboardService(db)

	// Handlers
	billHandler := handlers.NewBillHandler(billService)
	paycheckHandler := handlers.NewPaycheckHandler(paycheckService)
	payScheduleHandler := handlers.NewPayScheduleHandler(payScheduleService)
	expenseHandler := handlers.NewExpenseHandler(expenseService)
	importHandler := handlers.NewImportHandler(importService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)
	categoryHandler := handlers.NewCategoryHandler()

	// Router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.ErrorHandler())

	v1 := router.Group("/api/v1")

	bills := v1.Group("/bills")
	bills.POST("", billHandler.CreateBill)
	bills.GET("", billHandler.GetBills)
	bills.GET("/:id", billHandler.GetBillByID)
	bills.PUT("/:id", billHandler.UpdateBill)
	bills.DELETE("/:id", billHandler.DeleteBill)
	bills.POST("/:id/paid", billHandler.MarkPaid)
	bills.DELETE("/:id/paid", billHandler.MarkUnpaid)

	paychecks := v1.Group("/paychecks")
	paychecks.POST("", paycheckHandler.CreatePaycheck)
	paychecks.GET("", paycheckHandler.GetPaychecks)
	paychecks.GET("/:id", paycheckHandler.GetPaycheckByID)
	paychecks.PUT("/:id", paycheckHandler.UpdatePaycheck)
	paychecks.DELETE("/:id", paycheckHandler.DeletePaycheck)

	paySchedule := v1.Group("/pay-schedule")
	paySchedule.PUT("", payScheduleHandler.SavePaySchedule)
	paySchedule.GET("", payScheduleHandler.GetPaySchedule)
	paySchedule.GET("/current-period", payScheduleHandler.GetCurrentPeriod)

	imports := v1.Group("/imports/expenses")
	imports.Use(middleware.ImportSession())
	imports.POST("", importHandler.Stage)
	imports.GET("/preview", importHandler.Preview)
	imports.POST("/commit", importHandler.Commit)
	imports.DELETE("", importHandler.Discard)

	expenses := v1.Group("/expenses")
	expenses.GET("", expenseHandler.GetExpenses)
	expenses.GET("/:id", expenseHandler.GetExpenseByID)
	expenses.PUT("/:id/category", expenseHandler.UpdateCategory)
	expenses.PUT("/category", expenseHandler.BulkUpdateCategory)
	expenses.DELETE("/:id", expenseHandler.DeleteExpense)
	expenses.POST("/bulk-delete", expenseHandler.BulkDeleteExpenses)

	v1.GET("/categories", categoryHandler.GetCategories)
	v1.GET("/dashboard", dashboardHandler.GetSummary)

	return &testApp{DB: db, Router: router}
}

// request makes an HTTP request to the test router and returns the recorder.
// contentType defaults to JSON; cookie carries the import session when set.
func (app *testApp) request(method, path, body, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "payday_session", Value: cookie})
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// upload posts a raw CSV body to the staging endpoint.
func (app *testApp) upload(path, csv, cookie string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", path, strings.NewReader(csv))
	req.Header.Set("Content-Type", "text/csv")
	if cookie != "" {
		req.AddCookie(&http.Cookie{Name: "payday_session", Value: cookie})
	}
	rec := httptest.NewRecorder()
	app.Router.ServeHTTP(rec, req)
	return rec
}

// sessionCookie extracts the minted import session cookie from a response.
func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "payday_session" {
			return c.Value
		}
	}
	t.Fatal("expected a payday_session cookie in the response")
	return ""
}

// parseJSON parses the response body into a map.
func parseJSON(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON: %v\nbody: %s", err, rec.Body.String())
	}
	return result
}
