package clients

import (
	"spy-garments-backend/internal/database"
	"spy-garments-backend/internal/models"
	"spy-garments-backend/internal/views"

	"github.com/gofiber/fiber/v2"
)

type ClientRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

type ClientResponse struct {
	ID      uint   `json:"id"`
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func toClientResponse(c models.Client) ClientResponse {
	return ClientResponse{
		ID:      c.ID,
		Name:    c.Name,
		Phone:   c.Phone,
		Email:   c.Email,
		Address: c.Address,
	}
}

// GET /api/clients
func ListClientsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var list []models.Client
		if err := database.DB.Order("name ASC").Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list clients")
		}

		resp := make([]ClientResponse, 0, len(list))
		for _, cl := range list {
			resp = append(resp, toClientResponse(cl))
		}
		return c.JSON(resp)
	}
}

// POST /api/clients
func CreateClientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var body ClientRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		if body.Name == "" {
			return fiber.NewError(fiber.StatusBadRequest, "name is required")
		}

		client := models.Client{
			Name:    body.Name,
			Phone:   body.Phone,
			Email:   body.Email,
			Address: body.Address,
		}

		if err := database.DB.Create(&client).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not create client (is the name unique?)")
		}

		return c.Status(fiber.StatusCreated).JSON(toClientResponse(client))
	}
}

// PUT /api/clients/:id
func UpdateClientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var client models.Client
		if err := database.DB.First(&client, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Client not found")
		}

		var body ClientRequest
		if err := c.BodyParser(&body); err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "Invalid request body")
		}

		client.Name = body.Name
		client.Phone = body.Phone
		client.Email = body.Email
		client.Address = body.Address

		if err := database.DB.Save(&client).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not update client")
		}

		return c.JSON(fiber.Map{"message": "Client updated successfully"})
	}
}

// DELETE /api/clients/:id
// Orders referencing the client are left untouched; they render as
// "Unknown Client" afterwards.
func DeleteClientHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Params("id")

		var client models.Client
		if err := database.DB.First(&client, "id = ?", id).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Client not found")
		}

		if err := database.DB.Delete(&client).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not delete client")
		}

		return c.JSON(fiber.Map{"success": true})
	}
}

// GET /api/clients/stats
func ClientStatsHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var list []models.Client
		if err := database.DB.Order("name ASC").Find(&list).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list clients")
		}
		var orders []models.Order
		if err := database.DB.Find(&orders).Error; err != nil {
			return fiber.NewError(fiber.StatusInternalServerError, "Could not list orders")
		}

		return c.JSON(views.ClientStats(list, orders))
	}
}
