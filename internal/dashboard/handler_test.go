package dashboard

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"spy-garments-backend/internal/database"
	"spy-garments-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&models.Product{}, &models.Order{}, &models.LedgerTransaction{},
	))
	database.DB = db

	app := fiber.New()
	app.Get("/api/dashboard/summary", SummaryHandler())
	app.Get("/api/dashboard/charts", ChartsHandler())
	return app
}

func seedDashboardData(t *testing.T) {
	t.Helper()
	day := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	products := []models.Product{
		{Name: "Blue Distressed Slim", SKU: "DS-001", Category: "Slim Fit", Stock: 45, Price: 1200},
		{Name: "Acid Wash Tapered", SKU: "TP-004", Category: "Tapered Fit", Stock: 10, Price: 1650},
	}
	require.NoError(t, database.DB.Create(&products).Error)

	orders := []models.Order{
		{ProductID: 1, Quantity: 10, Total: 12000, Date: day,
			Status: models.OrderStatusCompleted, PaymentStatus: models.PaymentStatusPaid},
		{ProductID: 2, Quantity: 2, Total: 3300, Date: day,
			Status: models.OrderStatusPending, PaymentStatus: models.PaymentStatusUnpaid},
	}
	require.NoError(t, database.DB.Create(&orders).Error)

	txns := []models.LedgerTransaction{
		{Type: models.TransactionTypeIncome, Amount: 12000, Date: day},
		{Type: models.TransactionTypeExpense, Amount: 3000, Date: day},
		{Type: models.TransactionTypeWastage, Amount: 2400, Date: day},
	}
	require.NoError(t, database.DB.Create(&txns).Error)
}

func TestSummaryHandler(t *testing.T) {
	app := setupApp(t)
	seedDashboardData(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/summary", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out SummaryResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()

	assert.Equal(t, 55, out.Inventory.TotalBundles)
	assert.Equal(t, 1, out.Inventory.LowStockCount)
	assert.Equal(t, 3300.0, out.Inventory.Receivables)
	assert.Equal(t, 12000.0, out.Accounts.Revenue)
	assert.Equal(t, 6600.0, out.Accounts.Profit)
	require.Len(t, out.LowStock, 1)
	assert.Equal(t, "TP-004", out.LowStock[0].SKU)
}

func TestChartsHandler(t *testing.T) {
	app := setupApp(t)
	seedDashboardData(t)

	req := httptest.NewRequest(http.MethodGet, "/api/dashboard/charts", nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out ChartsResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()

	assert.Equal(t, models.ProductCategories, out.Categories.Labels)
	assert.Equal(t, 45, out.Categories.Values[0]) // Slim Fit
	assert.Equal(t, 10, out.Categories.Values[3]) // Tapered Fit
	assert.Equal(t, 1, out.OrderStatus.Pending)
	assert.Equal(t, 1, out.OrderStatus.Completed)
}
