package ledger

import (
	"time"

	"spy-garments-backend/internal/database"
	"spy-garments-backend/internal/models"
	"spy-garments-backend/internal/views"

	"github.com/gofiber/fiber/v2"
)

type CreateTransactionRequest struct {
	Type        string  `json:"type"` // income | expense | wastage
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"` // "2006-01-02", defaults to today
}

type TransactionResponse struct {
	ID          uint    `json:"id"`
	Type        string  `json:"type"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	OrderID     *uint   `json:"orderId"`
	Balance     float64 `json:"balance"`
}

// GET /api/ledger
// Newest first, each row carrying the running balance. The balance is
// accumulated in chronological order and the annotated list reversed back,
// so it only reads monotonically along the timeline, not down the page.
func ListTransactionsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var txns []models.LedgerTransaction
		if err := database.DB.Find(&txns).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list transactions")
		}

		balanced := views.AnnotateBalances(txns)
		resp := make([]TransactionResponse, 0, len(balanced))
		for _, t := range balanced {
			resp = append(resp, TransactionResponse{
				ID:          t.ID,
				Type:        string(t.Type),
				Category:    t.Category,
				Amount:      t.Amount,
				Description: t.Description,
				Date:        t.Date.Format("2006-01-02"),
				OrderID:     t.OrderID,
				Balance:     t.Balance,
			})
		}
		return c.JSON(resp)
	}
}

// POST /api/ledger
// Manual income/expense entry. Wastage rows normally come from the wastage
// workflow, which also deducts stock; posting one here records the money
// only.
func CreateTransactionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body CreateTransactionRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		txnType := models.TransactionType(body.Type)
		switch txnType {
		case models.TransactionTypeIncome, models.TransactionTypeExpense, models.TransactionTypeWastage:
		default:
			return fiber.NewError(fiber.StatusBadRequest, "type must be income, expense or wastage")
		}
		if body.Amount <= 0 {
			return fiber.NewError(fiber.StatusBadRequest, "amount must be greater than 0")
		}

		date := time.Now().Truncate(24 * time.Hour)
		if body.Date != "" {
			d, err := time.Parse("2006-01-02", body.Date)
			if err != nil {
				return fiber.NewError(fiber.StatusBadRequest, "date must be 'YYYY-MM-DD'")
			}
			date = d
		}

		txn := models.LedgerTransaction{
			Type:        txnType,
			Category:    body.Category,
			Amount:      body.Amount,
			Description: body.Description,
			Date:        date,
		}
		if err := database.DB.Create(&txn).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create transaction")
		}

		return c.Status(fiber.StatusCreated).JSON(TransactionResponse{
			ID:          txn.ID,
			Type:        string(txn.Type),
			Category:    txn.Category,
			Amount:      txn.Amount,
			Description: txn.Description,
			Date:        txn.Date.Format("2006-01-02"),
			OrderID:     txn.OrderID,
		})
	}
}

// DELETE /api/ledger/:id
func DeleteTransactionHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var txn models.LedgerTransaction
		if err := database.DB.First(&txn, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Transaction not found")
		}

		if err := database.DB.Delete(&txn).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete transaction")
		}

		return c.JSON(fiber.Map{"success": true})
	}
}
