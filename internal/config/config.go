package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	GinMode          string
	MongoURI         string
	MongoDatabase    string
	RabbitMQURI      string
	RabbitMQExchange string
	AIBaseURL        string
	AIAPIKey         string
	AIModel          string
	AllowOrigins     []string
}

// Load reads .env (if present) and the environment. Only MONGO_URI has no
// usable default in production, but the local default keeps dev setup trivial.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system env")
	}
	return &Config{
		Port:             getEnvOrDefault("PORT", "5000"),
		GinMode:          getEnvOrDefault("GIN_MODE", "debug"),
		MongoURI:         getEnvOrDefault("MONGO_URI", "mongodb://localhost:27017"),
		MongoDatabase:    getEnvOrDefault("MONGO_DATABASE", "quizapp"),
		RabbitMQURI:      os.Getenv("RABBITMQ_URI"),
		RabbitMQExchange: os.Getenv("RABBITMQ_EXCHANGE"),
		AIBaseURL:        getEnvOrDefault("AI_BASE_URL", "http://localhost:11434/v1"),
		AIAPIKey:         getEnvOrDefault("AI_API_KEY", ""),
		AIModel:          getEnvOrDefault("AI_MODEL", "gemini-2.0-flash-lite"),
		AllowOrigins: []string{
			getEnvOrDefault("FRONTEND_ORIGIN", "http://localhost:3000"),
		},
	}
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
