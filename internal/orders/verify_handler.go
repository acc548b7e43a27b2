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

type VerifyPaymentRequest struct {
	PaymentMethod string `json:"paymentMethod"` // Cash, Online...
	PaymentRef    string `json:"paymentRef"`
	PaymentDate   string `json:"paymentDate"` // "2006-01-02", defaults to today
}

// POST /api/orders/:id/verify
// The only place revenue is recorded: marks the order Paid and appends the
// matching income row to the ledger, in one transaction. An order that is
// already Paid cannot be verified again, so the income row is written
// exactly once per order.
func VerifyPaymentHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body VerifyPaymentRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.PaymentMethod == "" {
			return fiber.NewError(fiber.StatusBadRequest, "paymentMethod is required")
		}

		paymentDate := time.Now().Truncate(24 * time.Hour)
		if body.PaymentDate != "" {
			d, err := parseDate(body.PaymentDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "paymentDate must be 'YYYY-MM-DD'")
			}
			paymentDate = d
		}

		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var order models.Order
			if err := tx.First(&order, "id = ?", id).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Order not found")
			}
			if order.PaymentStatus == models.PaymentStatusPaid {
				return fiber.NewError(fiber.StatusConflict, "Payment already verified")
			}

			order.PaymentStatus = models.PaymentStatusPaid
			order.PaymentMethod = body.PaymentMethod
			order.PaymentRef = body.PaymentRef
			order.PaymentDate = &paymentDate
			if err := tx.Save(&order).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not update order")
			}

			clientName := views.UnknownClient
			if order.ClientID != nil {
				var client models.Client
				if err := tx.First(&client, "id = ?", *order.ClientID).Error; err == nil {
					clientName = client.Name
				}
			}
			productName := views.UnknownProduct
			var product models.Product
			if err := tx.First(&product, "id = ?", order.ProductID).Error; err == nil {
				productName = product.Name
			}

			orderID := order.ID
			txn := models.LedgerTransaction{
				Type:     models.TransactionTypeIncome,
				Category: "Order Payment",
				Amount:   order.Total,
				Description: fmt.Sprintf("Payment received for Order #%d - %s (%s) [%s: %s]",
					order.ID, clientName, productName, body.PaymentMethod, body.PaymentRef),
				Date:    paymentDate,
				OrderID: &orderID,
			}
			if err := tx.Create(&txn).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not record payment in ledger")
			}
			return nil
		})
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{
			"success": true,
			"message": "Payment verified and profit recorded.",
		})
	}
}
