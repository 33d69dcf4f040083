package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	AppEnv         string
	Port           string
	AllowedOrigins string

	RedisURL string

	GeminiAPIKey string

	MotivationCron string
	MotivationXP   int
}

func Load() (*Config, error) {
	// Don't fail if .env doesn't exist (might be prod env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AppEnv:         getEnv("APP_ENV", "development"),
		Port:           getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "http://localhost:3000"),

		RedisURL: os.Getenv("REDIS_URL"),

		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),

		MotivationCron: getEnv("MOTIVATION_CRON", "0 9 * * *"),
	}

	var err error
	cfg.MotivationXP, err = strconv.Atoi(getEnv("MOTIVATION_XP_REWARD", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid MOTIVATION_XP_REWARD: %w", err)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
