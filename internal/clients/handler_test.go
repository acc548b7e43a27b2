package clients

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"spy-garments-backend/internal/database"
	"spy-garments-backend/internal/models"
	"spy-garments-backend/internal/views"

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
	require.NoError(t, db.AutoMigrate(&models.Client{}, &models.Order{}))
	database.DB = db

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{"error": e.Message})
			}
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		},
	})
	app.Get("/api/clients", ListClientsHandler())
	app.Get("/api/clients/stats", ClientStatsHandler())
	app.Post("/api/clients", CreateClientHandler())
	app.Put("/api/clients/:id", UpdateClientHandler())
	app.Delete("/api/clients/:id", DeleteClientHandler())
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

func TestClientCRUDListsByName(t *testing.T) {
	app := setupApp(t)

	for _, name := range []string{"Urban Fit", "Aman Garments", "Style Hub"} {
		resp := doJSON(t, app, http.MethodPost, "/api/clients", fiber.Map{
			"name":  name,
			"phone": "9876543210",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/clients", nil)
	var list []ClientResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	resp.Body.Close()
	require.Len(t, list, 3)
	assert.Equal(t, "Aman Garments", list[0].Name)
	assert.Equal(t, "Style Hub", list[1].Name)
	assert.Equal(t, "Urban Fit", list[2].Name)

	resp = doJSON(t, app, http.MethodPut, "/api/clients/1", fiber.Map{
		"name":    "Urban Fit",
		"phone":   "5432109876",
		"email":   "urbanfit@outlook.com",
		"address": "Mount Road, Chennai",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.Client
	require.NoError(t, database.DB.First(&stored, 1).Error)
	assert.Equal(t, "5432109876", stored.Phone)
}

func TestCreateClientRequiresName(t *testing.T) {
	app := setupApp(t)
	resp := doJSON(t, app, http.MethodPost, "/api/clients", fiber.Map{"phone": "123"})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

// Deleting a client must not cascade: its orders stay, with the client
// reference now dangling.
func TestDeleteClientLeavesOrdersIntact(t *testing.T) {
	app := setupApp(t)
	client := models.Client{Name: "Denim World"}
	require.NoError(t, database.DB.Create(&client).Error)
	order := models.Order{ClientID: &client.ID, ProductID: 1, Quantity: 5, Total: 5500,
		Status: models.OrderStatusPending, PaymentStatus: models.PaymentStatusUnpaid}
	require.NoError(t, database.DB.Create(&order).Error)

	resp := doJSON(t, app, http.MethodDelete, "/api/clients/1", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stored models.Order
	require.NoError(t, database.DB.First(&stored, order.ID).Error)
	require.NotNil(t, stored.ClientID)
	assert.Equal(t, client.ID, *stored.ClientID)

	var remaining []models.Client
	require.NoError(t, database.DB.Find(&remaining).Error)
	assert.Equal(t, views.UnknownClient, views.ClientName(remaining, stored.ClientID))
}

func TestClientStatsEndpoint(t *testing.T) {
	app := setupApp(t)
	client := models.Client{Name: "Aman Garments"}
	require.NoError(t, database.DB.Create(&client).Error)
	orders := []models.Order{
		{ClientID: &client.ID, ProductID: 1, Quantity: 10, Total: 12000,
			Status: models.OrderStatusCompleted, PaymentStatus: models.PaymentStatusPaid},
		{ClientID: &client.ID, ProductID: 2, Quantity: 5, Total: 7500,
			Status: models.OrderStatusPending, PaymentStatus: models.PaymentStatusUnpaid},
	}
	require.NoError(t, database.DB.Create(&orders).Error)

	resp := doJSON(t, app, http.MethodGet, "/api/clients/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var stats []views.ClientStat
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&stats))
	resp.Body.Close()
	require.Len(t, stats, 1)
	assert.Equal(t, 2, stats[0].OrderCount)
	assert.Equal(t, 19500.0, stats[0].TotalValue)
	assert.Equal(t, 7500.0, stats[0].Outstanding)
}
