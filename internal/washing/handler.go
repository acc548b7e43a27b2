package washing

import (
	"fmt"
	"time"

	"spy-garments-backend/internal/database"
	"spy-garments-backend/internal/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type DispatchRequest struct {
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	SentDate  string `json:"sentDate"` // "2006-01-02", defaults to today
}

type BatchResponse struct {
	ID        uint   `json:"id"`
	ProductID uint   `json:"productId"`
	Quantity  int    `json:"quantity"`
	SentDate  string `json:"sentDate"`
	Status    string `json:"status"`
}

func toBatchResponse(b models.WashingBatch) BatchResponse {
	return BatchResponse{
		ID:        b.ID,
		ProductID: b.ProductID,
		Quantity:  b.Quantity,
		SentDate:  b.SentDate.Format("2006-01-02"),
		Status:    string(b.Status),
	}
}

// GET /api/washing
func ListBatchesHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var batches []models.WashingBatch
		if err := database.DB.Order("sent_date DESC, id DESC").Find(&batches).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list washing batches")
		}

		resp := make([]BatchResponse, 0, len(batches))
		for _, b := range batches {
			resp = append(resp, toBatchResponse(b))
		}
		return c.JSON(resp)
	}
}

// POST /api/washing
// Dispatch: the batch quantity leaves available stock until the batch comes
// back. Insert and stock deduction happen in one transaction.
func DispatchBatchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body DispatchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.ProductID == 0 {
			return fiber.NewError(fiber.StatusBadRequest, "productId is required")
		}
		if body.Quantity <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "quantity must be greater than 0")
		}

		sentDate := time.Now().Truncate(24 * time.Hour)
		if body.SentDate != "" {
			d, err := time.Parse("2006-01-02", body.SentDate)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "sentDate must be 'YYYY-MM-DD'")
			}
			sentDate = d
		}

		var batch models.WashingBatch
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			var product models.Product
			if err := tx.First(&product, "id = ?", body.ProductID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Product not found")
			}
			if body.Quantity > product.Stock {
				return fiber.NewError(fiber.StatusBadRequest,
					fmt.Sprintf("Not enough stock! Current stock: %d bundles.", product.Stock))
			}

			batch = models.WashingBatch{
				ProductID: body.ProductID,
				Quantity:  body.Quantity,
				SentDate:  sentDate,
				Status:    models.WashingStatusInWashing,
			}
			if err := tx.Create(&batch).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not create washing batch")
			}

			product.Stock -= body.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not update stock")
			}
			return nil
		})
		if err != nil {
			return err
		}

		return c.Status(fiber.StatusCreated).JSON(toBatchResponse(batch))
	}
}

type UpdateBatchRequest struct {
	Status string `json:"status"`
}

// PUT /api/washing/:id
// Marking a batch Delivered credits the original quantity back to the
// product, once. A batch that is already Delivered cannot be delivered
// again, so stock can never be double-credited.
func UpdateBatchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var body UpdateBatchRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}
		if body.Status != string(models.WashingStatusDelivered) {
			return fiber.NewError(fiber.StatusBadRequest, "status must be 'Delivered'")
		}

		var batch models.WashingBatch
		err := database.DB.Transaction(func(tx *gorm.DB) error {
			if err := tx.First(&batch, "id = ?", id).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Washing batch not found")
			}
			if batch.Status == models.WashingStatusDelivered {
				return fiber.NewError(fiber.StatusConflict, "Batch already delivered")
			}

			var product models.Product
			if err := tx.First(&product, "id = ?", batch.ProductID).Error; err != nil {
				return fiber.NewError(fiber.StatusNotFound, "Product not found")
			}

			product.Stock += batch.Quantity
			if err := tx.Save(&product).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not update stock")
			}

			batch.Status = models.WashingStatusDelivered
			if err := tx.Save(&batch).Error; err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not update washing batch")
			}
			return nil
		})
		if err != nil {
			return err
		}

		return c.JSON(fiber.Map{"message": "Washing status updated"})
	}
}

// DELETE /api/washing/:id
// Deleting a record does NOT return stock, matching the dashboard's warning.
func DeleteBatchHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var batch models.WashingBatch
		if err := database.DB.First(&batch, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Washing batch not found")
		}

		if err := database.DB.Delete(&batch).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete washing batch")
		}

		return c.JSON(fiber.Map{"success": true})
	}
}
