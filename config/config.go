package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

var (
	PORT    string
	APP_ENV string

	// API_KEYS is a comma-separated allow-list for the merchant API.
	// Empty is fatal behaviour in production; permissive in development.
	API_KEYS string

	// BASE_URL overrides the host used when building hosted checkout links.
	// When empty the link is derived from the incoming request host.
	BASE_URL string

	// DB_URL selects the postgres-backed store. Empty means in-memory.
	DB_URL string

	// WEBHOOK_SECRET, when set, signs outbound webhooks with HMAC-SHA256.
	WEBHOOK_SECRET string

	CORS_ORIGIN string
)

func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found. Using system environment variables.")
	}

	PORT = getEnv("PORT", "8080")
	APP_ENV = getEnv("APP_ENV", "development")
	API_KEYS = getEnv("API_KEYS", "")
	BASE_URL = getEnv("BASE_URL", "")
	DB_URL = getEnv("DB_URL", "")
	WEBHOOK_SECRET = getEnv("WEBHOOK_SECRET", "")
	CORS_ORIGIN = getEnv("CORS_ORIGIN", "*")
}

// IsProduction reports whether the app runs with production semantics.
// Anything other than "production" is treated as local development.
func IsProduction() bool {
	return APP_ENV == "production"
}

func getEnv(key string, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
