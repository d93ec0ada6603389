package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config — настройки приложения из переменных окружения.
type Config struct {
	DatabaseURL        string
	Port               string
	LogLevel           string
	PoolMaxConns       int32
	EnumDecodeFallback bool
}

// NewConfig загружает конфигурацию из окружения (.env, если есть).
func NewConfig() (*Config, error) {
	_ = godotenv.Load()

	maxConns, err := strconv.Atoi(getEnv("DB_POOL_MAX_CONNS", "10"))
	if err != nil || maxConns <= 0 {
		return nil, fmt.Errorf("некорректное значение DB_POOL_MAX_CONNS: %q", os.Getenv("DB_POOL_MAX_CONNS"))
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		Port:               getEnv("SERVER_PORT", "8000"),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
		PoolMaxConns:       int32(maxConns),
		EnumDecodeFallback: getEnv("ENUM_DECODE_FALLBACK", "true") == "true",
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("переменная DATABASE_URL не задана")
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
