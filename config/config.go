package config

import (
	"log"
	"os"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
)

// LoadEnv loads .env into the process environment. A missing file is
// fine in deployed environments.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: Error loading .env file: %v", err)
	}
}

func GetEnv(key string) string {
	return os.Getenv(key)
}

// ConnectCloudinary builds the client used for ID proof scans and room
// photos.
func ConnectCloudinary() (*cloudinary.Cloudinary, error) {
	return cloudinary.NewFromParams(
		GetEnv("CLOUDINARY_CLOUD_NAME"),
		GetEnv("CLOUDINARY_API_KEY"),
		GetEnv("CLOUDINARY_API_SECRET"),
	)
}
