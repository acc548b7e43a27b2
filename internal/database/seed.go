package database

import (
	"fmt"
	"log"
	"os"
	"time"

	"spy-garments-backend/internal/models"

	"github.com/olekukonko/tablewriter"
)

func day(s string) time.Time {
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		log.Fatalf("Bad seed date %q: %v", s, err)
	}
	return d
}

func uintPtr(v uint) *uint { return &v }

// Seed fills an empty database with the demo dataset and prints a row-count
// summary. Existing data is left alone.
func Seed() {
	var productCount int64
	DB.Model(&models.Product{}).Count(&productCount)
	if productCount > 0 {
		log.Println("Database already has products, skipping seed.")
		return
	}

	products := []models.Product{
		{Name: "Blue Distressed Slim", SKU: "DS-001", Category: "Slim Fit", Fit: "Slim", Wash: "Distressed Light", Sizes: "28,30,32,34", Stock: 45, CostPrice: 650, Price: 1200},
		{Name: "Jet Black Skinny", SKU: "SK-002", Category: "Skinny Fit", Fit: "Skinny", Wash: "Jet Black", Sizes: "30,32,34,36", Stock: 120, CostPrice: 700, Price: 1500},
		{Name: "Vintage Regular Denim", SKU: "RG-003", Category: "Regular Fit", Fit: "Regular", Wash: "Vintage Stone", Sizes: "32,34,36,38", Stock: 80, CostPrice: 550, Price: 1100},
		{Name: "Acid Wash Tapered", SKU: "TP-004", Category: "Tapered Fit", Fit: "Tapered", Wash: "Acid Wash", Sizes: "28,30,32", Stock: 30, CostPrice: 800, Price: 1650},
		{Name: "Raw Indigo Straight", SKU: "ST-005", Category: "Straight Fit", Fit: "Straight", Wash: "Raw Indigo", Sizes: "34,36,38,40", Stock: 60, CostPrice: 900, Price: 1800},
	}

	clients := []models.Client{
		{Name: "Aman Garments", Phone: "9876543210", Email: "aman@example.com", Address: "Gandhi Nagar, Delhi"},
		{Name: "Style Hub", Phone: "8765432109", Email: "info@stylehub.com", Address: "Linking Road, Mumbai"},
		{Name: "Denim World", Phone: "7654321098", Email: "contact@denimworld.in", Address: "Commercial Street, Bangalore"},
		{Name: "Quality Traders", Phone: "6543210987", Email: "qt@gmail.com", Address: "Burrabazar, Kolkata"},
		{Name: "Urban Fit", Phone: "5432109876", Email: "urbanfit@outlook.com", Address: "Mount Road, Chennai"},
	}

	orders := []models.Order{
		{ClientID: uintPtr(1), ProductID: 1, Quantity: 10, Total: 12000, Date: day("2024-02-01"), Status: models.OrderStatusCompleted, PaymentStatus: models.PaymentStatusUnpaid},
		{ClientID: uintPtr(2), ProductID: 2, Quantity: 25, Total: 37500, Date: day("2024-02-02"), Status: models.OrderStatusPending, PaymentStatus: models.PaymentStatusUnpaid},
		{ClientID: uintPtr(3), ProductID: 3, Quantity: 5, Total: 5500, Date: day("2024-02-03"), Status: models.OrderStatusCompleted, PaymentStatus: models.PaymentStatusUnpaid},
		{ClientID: uintPtr(4), ProductID: 4, Quantity: 15, Total: 24750, Date: day("2024-02-04"), Status: models.OrderStatusCompleted, PaymentStatus: models.PaymentStatusUnpaid},
		{ClientID: uintPtr(5), ProductID: 5, Quantity: 8, Total: 14400, Date: day("2024-02-04"), Status: models.OrderStatusPending, PaymentStatus: models.PaymentStatusUnpaid},
	}

	washing := []models.WashingBatch{
		{ProductID: 1, Quantity: 20, SentDate: day("2024-02-01"), Status: models.WashingStatusDelivered},
		{ProductID: 2, Quantity: 50, SentDate: day("2024-02-02"), Status: models.WashingStatusInWashing},
		{ProductID: 3, Quantity: 15, SentDate: day("2024-02-03"), Status: models.WashingStatusInWashing},
		{ProductID: 4, Quantity: 10, SentDate: day("2024-02-03"), Status: models.WashingStatusDelivered},
		{ProductID: 5, Quantity: 25, SentDate: day("2024-02-04"), Status: models.WashingStatusInWashing},
	}

	ledger := []models.LedgerTransaction{
		{Type: models.TransactionTypeIncome, Category: "Order Payment", Amount: 12000, Description: "Payment for Order #1", Date: day("2024-02-01")},
		{Type: models.TransactionTypeExpense, Category: "Raw Materials", Amount: 50000, Description: "Purchase of denim rolls", Date: day("2024-02-02")},
		{Type: models.TransactionTypeIncome, Category: "Order Payment", Amount: 5500, Description: "Payment for Order #3", Date: day("2024-02-03")},
		{Type: models.TransactionTypeExpense, Category: "Washing Charges", Amount: 3000, Description: "Batch #1 washing cost", Date: day("2024-02-03")},
		{Type: models.TransactionTypeWastage, Category: "Damaged", Amount: 2400, Description: "2 bundles of DS-001 found defective", Date: day("2024-02-04")},
	}

	if err := DB.Create(&products).Error; err != nil {
		log.Fatalf("Seeding products failed: %v", err)
	}
	if err := DB.Create(&clients).Error; err != nil {
		log.Fatalf("Seeding clients failed: %v", err)
	}
	if err := DB.Create(&orders).Error; err != nil {
		log.Fatalf("Seeding orders failed: %v", err)
	}
	if err := DB.Create(&washing).Error; err != nil {
		log.Fatalf("Seeding washing batches failed: %v", err)
	}
	if err := DB.Create(&ledger).Error; err != nil {
		log.Fatalf("Seeding ledger failed: %v", err)
	}

	table := tablewriter.NewTable(os.Stdout)
	table.Header("Table", "Seeded rows")
	table.Append([]string{"products", fmt.Sprint(len(products))})
	table.Append([]string{"clients", fmt.Sprint(len(clients))})
	table.Append([]string{"orders", fmt.Sprint(len(orders))})
	table.Append([]string{"washing_batches", fmt.Sprint(len(washing))})
	table.Append([]string{"ledger_transactions", fmt.Sprint(len(ledger))})
	table.Render()

	log.Println("Database seeded with demo data.")
}
