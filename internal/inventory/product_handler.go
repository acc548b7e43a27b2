package inventory

import (
	"spy-garments-backend/internal/database"
	"spy-garments-backend/internal/models"

	"github.com/gofiber/fiber/v2"
)

type ProductRequest struct {
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Category  string  `json:"category"`
	Fit       string  `json:"fit"`
	Wash      string  `json:"wash"`
	Sizes     string  `json:"sizes"`
	Stock     int     `json:"stock"`
	CostPrice float64 `json:"costPrice"`
	Price     float64 `json:"price"`
}

type ProductResponse struct {
	ID        uint    `json:"id"`
	Name      string  `json:"name"`
	SKU       string  `json:"sku"`
	Category  string  `json:"category"`
	Fit       string  `json:"fit"`
	Wash      string  `json:"wash"`
	Sizes     string  `json:"sizes"`
	Stock     int     `json:"stock"`
	CostPrice float64 `json:"costPrice"`
	Price     float64 `json:"price"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		ID:        p.ID,
		Name:      p.Name,
		SKU:       p.SKU,
		Category:  p.Category,
		Fit:       p.Fit,
		Wash:      p.Wash,
		Sizes:     p.Sizes,
		Stock:     p.Stock,
		CostPrice: p.CostPrice,
		Price:     p.Price,
	}
}

// GET /api/products
func ListProductsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var products []models.Product
		if err := database.DB.Order("id DESC").Find(&products).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list products")
		}

		resp := make([]ProductResponse, 0, len(products))
		for _, p := range products {
			resp = append(resp, toProductResponse(p))
		}
		return c.JSON(resp)
	}
}

// POST /api/products
func CreateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name == "" || body.SKU == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name and sku are required")
		}

		product := models.Product{
			Name:      body.Name,
			SKU:       body.SKU,
			Category:  body.Category,
			Fit:       body.Fit,
			Wash:      body.Wash,
			Sizes:     body.Sizes,
			Stock:     body.Stock,
			CostPrice: body.CostPrice,
			Price:     body.Price,
		}

		if err := database.DB.Create(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create product (is the SKU unique?)")
		}

		return c.Status(fiber.StatusCreated).JSON(toProductResponse(product))
	}
}

// PUT /api/products/:id
func UpdateProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var product models.Product
		if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		var body ProductRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		product.Name = body.Name
		product.SKU = body.SKU
		product.Category = body.Category
		product.Fit = body.Fit
		product.Wash = body.Wash
		product.Sizes = body.Sizes
		product.Stock = body.Stock
		product.CostPrice = body.CostPrice
		product.Price = body.Price

		if err := database.DB.Save(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update product")
		}

		return c.JSON(fiber.Map{"message": "Product updated successfully"})
	}
}

// DELETE /api/products/:id
func DeleteProductHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var product models.Product
		if err := database.DB.First(&product, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Product not found")
		}

		if err := database.DB.Delete(&product).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete product")
		}

		return c.JSON(fiber.Map{"success": true})
	}
}
