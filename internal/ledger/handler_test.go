package ledger

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

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
	require.NoError(t, db.AutoMigrate(&models.LedgerTransaction{}))
	database.DB = db

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/api/ledger", ListTransactionsHandler())
	app.Post("/api/ledger", CreateTransactionHandler())
	app.Delete("/api/ledger/:id", DeleteTransactionHandler())
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestListAnnotatesRunningBalanceNewestFirst(t *testing.T) {
	app := setupApp(t)

	entries := []fiber.Map{
		{"type": "income", "category": "Order Payment", "amount": 100, "date": "2024-02-01"},
		{"type": "expense", "category": "Rent", "amount": 40, "date": "2024-02-02"},
		{"type": "wastage", "category": "Damaged", "amount": 10, "date": "2024-02-03"},
	}
	for _, e := range entries {
		resp := doJSON(t, app, http.MethodPost, "/api/ledger", e)
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/ledger", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var list []TransactionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Len(t, list, 3)
	assert.Equal(t, "2024-02-03", list[0].Date)
	assert.Equal(t, 50.0, list[0].Balance)
	assert.Equal(t, 60.0, list[1].Balance)
	assert.Equal(t, 100.0, list[2].Balance)
}

func TestCreateRejectsUnknownTypeAndBadAmount(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/ledger", fiber.Map{
		"type": "refund", "amount": 100,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp = doJSON(t, app, http.MethodPost, "/api/ledger", fiber.Map{
		"type": "income", "amount": 0,
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestDeleteTransaction(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/ledger", fiber.Map{
		"type": "expense", "category": "Raw Materials", "amount": 50000, "date": "2024-02-02",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp = doJSON(t, app, http.MethodDelete, "/api/ledger/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out map[string]bool
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	assert.True(t, out["success"])

	resp = doJSON(t, app, http.MethodDelete, "/api/ledger/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}
