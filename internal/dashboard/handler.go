package dashboard

import (
	"spy-garments-backend/internal/database"
	"spy-garments-backend/internal/models"
	"spy-garments-backend/internal/views"

	"github.com/gofiber/fiber/v2"
)

type SummaryResponse struct {
	Inventory views.InventorySummary `json:"inventory"`
	Accounts  views.AccountsSummary  `json:"accounts"`
	LowStock  []LowStockProduct      `json:"lowStock"`
}

type LowStockProduct struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	SKU   string `json:"sku"`
	Stock int    `json:"stock"`
}

// GET /api/dashboard/summary
func SummaryHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load products")
		}
		var orders []models.Order
		if err := database.DB.Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load orders")
		}
		var txns []models.LedgerTransaction
		if err := database.DB.Find(&txns).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load transactions")
		}

		resp := SummaryResponse{
			Inventory: views.Inventory(products, orders),
			Accounts:  views.Accounts(txns),
			LowStock:  []LowStockProduct{},
		}
		for _, p := range views.LowStock(products) {
			resp.LowStock = append(resp.LowStock, LowStockProduct{
				ID:    p.ID,
				Name:  p.Name,
				SKU:   p.SKU,
				Stock: p.Stock,
			})
		}

		return c.JSON(resp)
	}
}

type ChartsResponse struct {
	Categories  views.ChartData   `json:"categories"`
	OrderStatus OrderStatusCounts `json:"orderStatus"`
}

type OrderStatusCounts struct {
	Pending   int `json:"pending"`
	Completed int `json:"completed"`
}

// GET /api/dashboard/charts
// The stock-per-category and pending/completed figures the dashboard's two
// charts draw.
func ChartsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load products")
		}
		var orders []models.Order
		if err := database.DB.Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load orders")
		}

		pending, completed := views.OrderStatusCounts(orders)
		return c.JSON(ChartsResponse{
			Categories:  views.CategoryDistribution(products),
			OrderStatus: OrderStatusCounts{Pending: pending, Completed: completed},
		})
	}
}
