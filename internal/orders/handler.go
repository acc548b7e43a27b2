package orders

import (
	"fmt"
	"time"

	"spy-garments-backend/internal/database"
	"spy-garments-backend/internal/models"
	"spy-garments-backend/internal/views"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type CreateOrderRequest struct {
	Client    string `json:"client"`   // free-text client name, matched exactly
	ClientID  *uint  `json:"clientId"` // wins over Client when set
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	Date      string `json:"date"` // optional, defaults to today
}

type OrderResponse struct {
	ID            uint    `json:"id"`
	ClientID      *uint   `json:"clientId"`
	ClientName    string  `json:"clientName"`
	ProductID     uint    `json:"productId"`
	ProductName   string  `json:"productName"`
	Quantity      int     `json:"quantity"`
	Total         float64 `json:"total"`
	Date          string  `json:"date"`
	Status        string  `json:"status"`
	PaymentStatus string  `json:"paymentStatus"`
	PaymentMethod string  `json:"paymentMethod,omitempty"`
	PaymentRef    string  `json:"paymentRef,omitempty"`
	PaymentDate   string  `json:"paymentDate,omitempty"`
}

func toOrderResponse(o models.Order, clientName, productName string) OrderResponse {
	resp := OrderResponse{
		ID:            o.ID,
		ClientID:      o.ClientID,
		ClientName:    clientName,
		ProductID:     o.ProductID,
		ProductName:   productName,
		Quantity:      o.Quantity,
		Total:         o.Total,
		Date:          o.Date.Format("2006-01-02"),
		Status:        string(o.Status),
		PaymentStatus: string(o.PaymentStatus),
		PaymentMethod: o.PaymentMethod,
		PaymentRef:    o.PaymentRef,
	}
	if o.PaymentDate != nil {
		resp.PaymentDate = o.PaymentDate.Format("2006-01-02")
	}
	return resp
}

// the dashboard posts full RFC3339 timestamps, the forms post plain dates
func parseDate(s string) (time.Time, error) {
	if d, err := time.Parse("2006-01-02", s); err == nil {
		return d, nil
	}
	return time.Parse(time.RFC3339, s)
}

// GET /api/orders
func ListOrdersHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var list []models.Order
		if err := database.DB.Order("date DESC, id DESC").Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list orders")
		}

		var clientList []models.Client
		if err := database.DB.Find(&clientList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list clients")
		}
		var productList []models.Product
		if err := database.DB.Find(&productList).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list products")
		}

		resp := make([]OrderResponse, 0, len(list))
		for _, o := range list {
			resp = append(resp, toOrderResponse(o,
				views.ClientName(clientList, o.ClientID),
				views.ProductName(productList, o.ProductID)))
		}
		return c.JSON(resp)
	}
}

// POST /api/orders
// Creates the order and deducts the stock in one transaction. The total is
// always recomputed server-side from the product's current price; a client
// name that matches nothing leaves the order without a client reference.
func CreateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.ProductID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "productId is required")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity must be greater than 0")
		}

		date := time.Now().Truncate(24 * time.Hour)
		if body.Date != "" {
			d, err := parseDate(body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "date must be 'YYYY-MM-DD'")
			}
			date = d
		}

		var order models.Order
		var clientName, productName string
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var product models.Product
			if err := tx.First(&product, "id = ?", body.ProductID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Product not found")
			}
			if body.Quantity > product.Stock {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Not enough stock! Current stock: %d bundles.", product.Stock))
			}

			clientID := body.ClientID
			clientName = views.UnknownClient
			if clientID == nil && body.Client != "" {
				var client models.Client
				if err := tx.First(&client, "name = ?", body.Client).Error; err == nil {
					clientID = &client.ID
					clientName = client.Name
				}
			} else if clientID != nil {
				var client models.Client
				if err := tx.First(&client, "id = ?", *clientID).Error; err == nil {
					clientName = client.Name
				}
			}

			order = models.Order{
				ClientID:      clientID,
				ProductID:     product.ID,
				Quantity:      body.Quantity,
				Total:         float64(body.Quantity) * product.Price,
				Date:          date,
				Status:        models.OrderStatusPending,
				PaymentStatus: models.PaymentStatusUnpaid,
			}
			if err := tx.Create(&order).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not create order")
			}

			product.Stock -= body.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not update stock")
			}
			productName = product.Name
			return nil
		})
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(toOrderResponse(order, clientName, productName))
	}
}

type UpdateOrderRequest struct {
	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`
	PaymentMethod string `json:"paymentMethod"`
	PaymentRef    string `json:"paymentRef"`
	PaymentDate   string `json:"paymentDate"`
}

// PUT /api/orders/:id
// Partial update: only the fields present in the body are written. Marking
// an already-completed order Completed is a no-op, matching the original
// behavior. No stock or ledger effect; revenue is recorded by verification
// only.
func UpdateOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var order models.Order
		if err := database.DB.First(&order, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}

		var body UpdateOrderRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		updates := map[string]interface{}{}
		if body.Status != "" {
			updates["status"] = body.Status
		}
		if body.PaymentStatus != "" {
			updates["payment_status"] = body.PaymentStatus
		}
		if body.PaymentMethod != "" {
			updates["payment_method"] = body.PaymentMethod
		}
		if body.PaymentRef != "" {
			updates["payment_ref"] = body.PaymentRef
		}
		if body.PaymentDate != "" {
			d, err := parseDate(body.PaymentDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "paymentDate must be 'YYYY-MM-DD'")
			}
			updates["payment_date"] = d
		}

		if len(updates) == 0 {
			return c.JSON(fiber.Map{"message": "No fields to update"})
		}

		if err := database.DB.Model(&order).Updates(updates).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update order")
		}

		return c.JSON(fiber.Map{"message": "Order updated"})
	}
}

// DELETE /api/orders/:id
// Deleting an order does not restore stock or touch the ledger.
func DeleteOrderHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var order models.Order
		if err := database.DB.First(&order, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Order not found")
		}

		if err := database.DB.Delete(&order).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete order")
		}

		return c.JSON(fiber.Map{"success": true})
	}
}
