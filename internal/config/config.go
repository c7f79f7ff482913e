package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultBaseURL = "https://app.base44.com"

type Config struct {
	BaseURL     string
	AppID       string
	APIKey      string
	HTTPTimeout time.Duration
	AppEnv      string
}

func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	apiKey, exists := os.LookupEnv("BASE44_API_KEY")
	if !exists || apiKey == "" {
		return nil, fmt.Errorf("BASE44_API_KEY is required")
	}
	appID, exists := os.LookupEnv("BASE44_APP_ID")
	if !exists || appID == "" {
		return nil, fmt.Errorf("BASE44_APP_ID is required")
	}

	return &Config{
		BaseURL:     getEnv("BASE44_BASE_URL", defaultBaseURL),
		AppID:       appID,
		APIKey:      apiKey,
		HTTPTimeout: time.Duration(getEnvInt("HTTP_TIMEOUT_SECONDS", 15)) * time.Second,
		AppEnv:      normalizeEnv(getEnv("APP_ENV", "production")),
	}, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || parsed <= 0 {
		return fallback
	}
	return parsed
}

func normalizeEnv(value string) string {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dev", "develop", "development", "local":
		return "development"
	case "prod", "production":
		return "production"
	case "stage", "staging":
		return "staging"
	case "test", "testing":
		return "test"
	default:
		return strings.ToLower(strings.TrimSpace(value))
	}
}

func (c *Config) Development() bool {
	return c != nil && c.AppEnv == "development"
}
