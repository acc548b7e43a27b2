package database

import (
	"log"

	"spy-garments-backend/internal/config"
	"spy-garments-backend/internal/models"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var DB *gorm.DB

func Init(cfg *config.Config) {
	var err error

	DB, err = gorm.Open(sqlite.Open(cfg.DatabasePath), &gorm.Config{})
	if err != nil {
		log.Fatalf("Could not open database %s: %v", cfg.DatabasePath, err)
	}

	err = DB.AutoMigrate(
		&models.Product{},
		&models.Client{},
		&models.Order{},
		&models.WashingBatch{},
		&models.LedgerTransaction{},
	)
	if err != nil {
		log.Fatalf("AutoMigrate failed: %v", err)
	}

	log.Printf("Connected to %s. Migration complete.", cfg.DatabasePath)
}
