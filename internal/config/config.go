package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerAddress string

	// Store selects the repository backend: "firestore" (default) or
	// "memory" for local development without credentials.
	Store                   string
	FirebaseCredentialsPath string

	SessionSecret string

	GeminiApiKey string
	GeminiModel  string

	LogsDirectory string

	DefaultAdminName     string
	DefaultAdminEmail    string
	DefaultAdminPassword string
}

func LoadConfig() *Config {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}

	return &Config{
		ServerAddress:           getEnv("SERVER_ADDRESS", ":8080"),
		Store:                   getEnv("STORE", "firestore"),
		FirebaseCredentialsPath: os.Getenv("FIREBASE_CREDENTIALS_PATH"),
		SessionSecret:           os.Getenv("SESSION_SECRET"),
		GeminiApiKey:            os.Getenv("GEMINI_API_KEY"),
		GeminiModel:             os.Getenv("GEMINI_MODEL"),
		LogsDirectory:           getEnv("LOGS_DIRECTORY", "logs"),
		DefaultAdminName:        getEnv("DEFAULT_ADMIN_NAME", "Super Admin"),
		DefaultAdminEmail:       getEnv("DEFAULT_ADMIN_EMAIL", "admin@bbl.com"),
		DefaultAdminPassword:    os.Getenv("DEFAULT_ADMIN_PASSWORD"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return fallback
}
