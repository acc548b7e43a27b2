package main

import (
	"flag"
	"log"
	"strings"

	"spy-garments-backend/internal/auth"
	"spy-garments-backend/internal/clients"
	"spy-garments-backend/internal/config"
	"spy-garments-backend/internal/dashboard"
	"spy-garments-backend/internal/database"
	"spy-garments-backend/internal/inventory"
	"spy-garments-backend/internal/ledger"
	"spy-garments-backend/internal/orders"
	"spy-garments-backend/internal/reports"
	"spy-garments-backend/internal/washing"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
)

func main() {
	seed := flag.Bool("seed", false, "insert the demo dataset into an empty database")
	flag.Parse()

	cfg := config.Load()
	database.Init(cfg)

	if *seed {
		database.Seed()
	}

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			if e, ok := err.(*fiber.Error); ok {
				return c.Status(e.Code).JSON(fiber.Map{
					"error": e.Message,
				})
			}
			log.Println("Unexpected error:", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Unexpected server error",
			})
		},
	})

	corsOrigins := strings.Split(cfg.CORSOrigins, ",")
	for i := range corsOrigins {
		corsOrigins[i] = strings.TrimSpace(corsOrigins[i])
	}
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(corsOrigins, ","),
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api := app.Group("/api")

	// Public
	api.Post("/login", auth.LoginHandler(cfg))

	// Protected (token presence only, see auth.RequireToken)
	protected := api.Group("")
	protected.Use(auth.RequireToken())

	// Products
	protected.Get("/products", inventory.ListProductsHandler())
	protected.Post("/products", inventory.CreateProductHandler())
	protected.Put("/products/:id", inventory.UpdateProductHandler())
	protected.Delete("/products/:id", inventory.DeleteProductHandler())

	// Wastage
	protected.Post("/wastage", inventory.RecordWastageHandler())

	// Clients
	protected.Get("/clients", clients.ListClientsHandler())
	protected.Get("/clients/stats", clients.ClientStatsHandler())
	protected.Post("/clients", clients.CreateClientHandler())
	protected.Put("/clients/:id", clients.UpdateClientHandler())
	protected.Delete("/clients/:id", clients.DeleteClientHandler())

	// Orders
	protected.Get("/orders", orders.ListOrdersHandler())
	protected.Post("/orders", orders.CreateOrderHandler())
	protected.Put("/orders/:id", orders.UpdateOrderHandler())
	protected.Delete("/orders/:id", orders.DeleteOrderHandler())
	protected.Post("/orders/:id/verify", orders.VerifyPaymentHandler())

	// Washing
	protected.Get("/washing", washing.ListBatchesHandler())
	protected.Post("/washing", washing.DispatchBatchHandler())
	protected.Put("/washing/:id", washing.UpdateBatchHandler())
	protected.Delete("/washing/:id", washing.DeleteBatchHandler())

	// Ledger
	protected.Get("/ledger", ledger.ListTransactionsHandler())
	protected.Post("/ledger", ledger.CreateTransactionHandler())
	protected.Delete("/ledger/:id", ledger.DeleteTransactionHandler())

	// Dashboard
	protected.Get("/dashboard/summary", dashboard.SummaryHandler())
	protected.Get("/dashboard/charts", dashboard.ChartsHandler())

	// Reports
	protected.Get("/reports/inventory.xlsx", reports.InventoryExportHandler())
	protected.Get("/reports/ledger.xlsx", reports.LedgerExportHandler())

	log.Println("Spy Garments backend running on port:", cfg.HTTPPort)
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		log.Fatal(err)
	}
}
