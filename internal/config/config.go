package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	DataDir          string
	MongoURI         string
	MongoDatabase    string
	RabbitMQURI      string
	RabbitMQExchange string
	LLMBaseURL       string
	LLMAPIKey        string
	LLMModel         string
}

// Load reads .env (when present) and the environment. MongoURI and
// RabbitMQURI are optional; when unset the service falls back to the file
// store and skips event publishing.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}

	return &Config{
		Port:             getEnvOrDefault("PORT", "8080"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		DataDir:          getEnvOrDefault("DATA_DIR", "data"),
		MongoURI:         os.Getenv("MONGO_URI"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "study_service"),
		RabbitMQURI:      os.Getenv("RABBITMQ_URI"),
		RabbitMQExchange: getEnvOrDefault("RABBITMQ_EXCHANGE", "study.events"),
		LLMBaseURL:       getEnvOrDefault("BASE_URL", "https://api.openai.com/v1"),
		LLMAPIKey:        getEnvOrDefault("API_KEY", ""),
		LLMModel:         getEnvOrDefault("MODEL", "gpt-4o-mini"),
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
