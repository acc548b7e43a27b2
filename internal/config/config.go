package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort      string
	DatabasePath  string // sqlite file, the whole store lives in this one file
	TokenSecret   string
	CORSOrigins   string
	AdminUsername string
	AdminPassword string
}

func Load() *Config {
	// .env is optional; real env vars win over it
	_ = godotenv.Load()

	cfg := &Config{
		HTTPPort:      getEnv("HTTP_PORT", "3000"),
		DatabasePath:  getEnv("DATABASE_PATH", "spy_garments.db"),
		TokenSecret:   getEnv("TOKEN_SECRET", "spy-secret-token"),
		CORSOrigins:   getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),
	}

	if cfg.TokenSecret == "spy-secret-token" {
		log.Println("[WARN] TOKEN_SECRET is using the default value, set your own for production.")
	}
	if cfg.AdminPassword == "admin123" {
		log.Println("[WARN] ADMIN_PASSWORD is using the default value, set your own for production.")
	}

	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
