package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port                    string
	Env                     string
	StoreDriver             string
	MongoURI                string
	MongoDatabase           string
	PostgresURL             string
	CacheProvider           string
	RedisURL                string
	JWTSecret               string
	SessionTTL              time.Duration
	OwnerEmail              string
	FirebaseCredentialsPath string
	CloudinaryURL           string
	UploadDir               string
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, assuming environment variables are set.")
	}

	return &Config{
		Port:                    getEnv("PORT", "8080"),
		Env:                     getEnv("ENV", "development"),
		StoreDriver:             getEnv("STORE_DRIVER", "memory"),
		MongoURI:                getEnv("MONGO_URI", ""),
		MongoDatabase:           getEnv("MONGO_DATABASE", "creative_vault"),
		PostgresURL:             getEnv("POSTGRES_URL", ""),
		CacheProvider:           getEnv("CACHE_PROVIDER", "memory"),
		RedisURL:                getEnv("REDIS_URL", ""),
		JWTSecret:               getEnv("JWT_SECRET", "dev-secret-change-me"),
		SessionTTL:              getDurationEnv("SESSION_TTL", 24*time.Hour),
		OwnerEmail:              getEnv("OWNER_EMAIL", "sagar.sahu@example.com"),
		FirebaseCredentialsPath: getEnv("FIREBASE_CREDENTIALS_PATH", ""),
		CloudinaryURL:           getEnv("CLOUDINARY_URL", ""),
		UploadDir:               getEnv("UPLOAD_DIR", "uploads"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		log.Printf("Invalid duration for %s: %v, using default\n", key, err)
		return defaultValue
	}
	return d
}
