// internal/config/config.go
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config menampung seluruh konfigurasi proses, dibaca sekali saat boot.
type Config struct {
	Port        string
	DatabaseURL string
	RedisAddr   string
	AMQPURL     string

	JWTSecret string
	JWTTTL    time.Duration

	// Kredensial admin dari environment (hash bcrypt, bukan plaintext).
	AdminUsername     string
	AdminPasswordHash string
}

// Load membaca .env (jika ada) lalu environment variables.
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		log.Println("Konfigurasi .env dimuat")
	}

	return &Config{
		Port:              getEnv("PORT", "8080"),
		DatabaseURL:       os.Getenv("DATABASE_URL"),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		AMQPURL:           os.Getenv("RABBITMQ_URL"),
		JWTSecret:         getEnv("JWT_SECRET", ""),
		JWTTTL:            getDuration("JWT_TTL", 12*time.Hour),
		AdminUsername:     getEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
		log.Printf("Nilai %s tidak valid, memakai default %s", key, defaultValue)
	}
	return defaultValue
}
