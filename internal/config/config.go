package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	DatabaseURL string
	RedisURL    string
	FrontendURL string // Storefront base URL (used for product QR codes)

	JWTSecret string // Secret key for JWT token signing, injected, never hardcoded
	JWTTTL    int    // JWT token expiration in hours; 0 issues tokens without expiry

	ImageKitPrivateKey string // Media uploader credential
	ImageKitUploadURL  string // Media uploader endpoint
	ImageKitFolder     string // Remote folder for uploaded product images
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		RedisURL:           getEnv("REDIS_URL", ""),
		FrontendURL:        getEnv("FRONTEND_URL", ""),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		JWTTTL:             getEnvInt("JWT_TTL_HOURS", 0),
		ImageKitPrivateKey: getEnv("IMAGEKIT_PRIVATE_KEY", ""),
		ImageKitUploadURL:  getEnv("IMAGEKIT_UPLOAD_URL", "https://upload.imagekit.io/api/v1/files/upload"),
		ImageKitFolder:     getEnv("IMAGEKIT_FOLDER", "/"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
