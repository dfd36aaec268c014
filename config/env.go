package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv                 string
	Port                   string
	DBHost                 string
	DBPort                 string
	DBUser                 string
	DBPassword             string
	DBName                 string
	DBSSLMode              string
	ExternalAPIURL         string
	StartupMaxAttempts     int
	StartupRetryInterval   time.Duration
	ExternalHealthTimeout  time.Duration
	ExternalRequestTimeout time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: .env file not found, using system environment variables")
	}

	return &Config{
		AppEnv:                 getEnv("APP_ENV", "development"),
		Port:                   getEnv("APP_PORT", getEnv("PORT", "8000")),
		DBHost:                 getEnv("DB_HOST", "localhost"),
		DBPort:                 getEnv("DB_PORT", "5432"),
		DBUser:                 getEnv("DB_USER", "user"),
		DBPassword:             getEnv("DB_PASSWORD", "password"),
		DBName:                 getEnv("DB_NAME", "testdb"),
		DBSSLMode:              getEnv("DB_SSLMODE", "disable"),
		ExternalAPIURL:         getEnv("EXTERNAL_API_URL", "http://localhost:8001"),
		StartupMaxAttempts:     getEnvInt("DB_STARTUP_MAX_ATTEMPTS", 30),
		StartupRetryInterval:   getEnvDuration("DB_STARTUP_RETRY_INTERVAL", 2*time.Second),
		ExternalHealthTimeout:  getEnvDuration("EXTERNAL_HEALTH_TIMEOUT", 5*time.Second),
		ExternalRequestTimeout: getEnvDuration("EXTERNAL_REQUEST_TIMEOUT", 10*time.Second),
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
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}
