package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

func init() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using environment variables")
	}
}

// Config returns the value of an environment variable loaded from .env
func Config(key string) string {
	return os.Getenv(key)
}
