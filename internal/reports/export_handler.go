package reports

import (
	"fmt"

	"spy-garments-backend/internal/database"
	"spy-garments-backend/internal/models"
	"spy-garments-backend/internal/views"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

func setRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for col, v := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return err
		}
	}
	return nil
}

func sendWorkbook(c *fiber.Ctx, f *excelize.File, filename string) error {
	buf, err := f.WriteToBuffer()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Could not build workbook")
	}
	c.Set(fiber.HeaderContentType, xlsxContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}

// GET /api/reports/inventory.xlsx
func InventoryExportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("id ASC").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load products")
		}

		f := excelize.NewFile()
		defer f.Close()
		const sheet = "Inventory"
		f.SetSheetName("Sheet1", sheet)

		header := []interface{}{"Name", "SKU", "Category", "Fit", "Wash", "Sizes", "Stock", "Cost Price", "Price", "Stock Value"}
		if err := setRow(f, sheet, 1, header); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build workbook")
		}
		for i, p := range products {
			row := []interface{}{
				p.Name, p.SKU, p.Category, p.Fit, p.Wash, p.Sizes,
				p.Stock, p.CostPrice, p.Price, float64(p.Stock) * p.Price,
			}
			if err := setRow(f, sheet, i+2, row); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not build workbook")
			}
		}

		return sendWorkbook(c, f, "inventory.xlsx")
	}
}

// GET /api/reports/ledger.xlsx
// Same newest-first, balance-annotated ordering as the ledger view.
func LedgerExportHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var txns []models.LedgerTransaction
		if err := database.DB.Find(&txns).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not load transactions")
		}

		f := excelize.NewFile()
		defer f.Close()
		const sheet = "Ledger"
		f.SetSheetName("Sheet1", sheet)

		header := []interface{}{"Date", "Type", "Category", "Description", "Amount", "Balance"}
		if err := setRow(f, sheet, 1, header); err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not build workbook")
		}
		for i, t := range views.AnnotateBalances(txns) {
			row := []interface{}{
				t.Date.Format("2006-01-02"), string(t.Type), t.Category,
				t.Description, t.Amount, t.Balance,
			}
			if err := setRow(f, sheet, i+2, row); err != nil {
				return fiber.NewError(fiber.StatusInternalServerError, "Could not build workbook")
			}
		}

		return sendWorkbook(c, f, "ledger.xlsx")
	}
}
