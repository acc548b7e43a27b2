package inventory

import (
	"fmt"
	"time"

	"spy-garments-backend/internal/database"
	"spy-garments-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type RecordWastageRequest struct {
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	Reason    string `json:"reason"` // becomes the ledger category
	Notes     string `json:"notes"`
}

type RecordWastageResponse struct {
	TransactionID uint    `json:"transactionId"`
	ProductID     uint    `json:"productId"`
	Quantity      int     `json:"quantity"`
	Amount        float64 `json:"amount"`
	Description   string  `json:"description"`
	Stock         int     `json:"stock"` // remaining stock after deduction
}

// POST /api/wastage
// Writes the wastage ledger row and deducts the stock in one transaction.
// Cost is quantity × cost price, falling back to sale price when no cost
// price has been entered.
func RecordWastageHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body RecordWastageRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.ProductID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "productId is required")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity must be greater than 0")
		}
		if body.Reason == "" {
			return fiber.NewError(fiber.StatusBadRequest, "reason is required")
		}

		var resp RecordWastageResponse
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var product models.Product
			if err := tx.First(&product, "id = ?", body.ProductID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Product not found")
			}
			if body.Quantity > product.Stock {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Not enough stock! Current stock: %d bundles.", product.Stock))
			}

			unitCost := product.CostPrice
			if unitCost == 0 {
				unitCost = product.Price
			}

			description := fmt.Sprintf("%d bundles of %s - %s", body.Quantity, product.Name, body.Notes)
			if body.Notes == "" {
				description = fmt.Sprintf("%d bundles of %s - %s", body.Quantity, product.Name, body.Reason)
			}

			txn := models.LedgerTransaction{
				Type:        models.TransactionTypeWastage,
				Category:    body.Reason,
				Amount:      float64(body.Quantity) * unitCost,
				Description: description,
				Date:        time.Now().Truncate(24 * time.Hour),
			}
			if err := tx.Create(&txn).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not record wastage")
			}

			product.Stock -= body.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not update stock")
			}

			resp = RecordWastageResponse{
				TransactionID: txn.ID,
				ProductID:     product.ID,
				Quantity:      body.Quantity,
				Amount:        txn.Amount,
				Description:   txn.Description,
				Stock:         product.Stock,
			}
			return nil
		})
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(resp)
	}
}
