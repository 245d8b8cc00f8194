package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	ServerPort   string
	DBHost       string
	DBPort       string
	DBUser       string
	DBPassword   string
	DBName       string
	RedisURL     string
	JWTSecret    string
	TokenTTL     time.Duration
	ImageDir     string
	StoreTimeout time.Duration
}

func Load() *Config {
	return &Config{
		ServerPort:   getEnv("SERVER_PORT", "8080"),
		DBHost:       getEnv("DB_HOST", "localhost"),
		DBPort:       getEnv("DB_PORT", "5432"),
		DBUser:       getEnv("DB_USER", "feedline"),
		DBPassword:   getEnv("DB_PASSWORD", "feedline_dev_password"),
		DBName:       getEnv("DB_NAME", "feedline"),
		RedisURL:     getEnv("REDIS_URL", "localhost:6379"),
		JWTSecret:    getEnv("JWT_SECRET", "dev-secret-change-me"),
		TokenTTL:     getSeconds("TOKEN_TTL_SECONDS", time.Hour),
		ImageDir:     getEnv("IMAGE_DIR", "images"),
		StoreTimeout: getSeconds("STORE_TIMEOUT_SECONDS", 5*time.Second),
	}
}

func getEnv(key, fallback string) string {
	val, exists := os.LookupEnv(key)

	if exists {
		return val
	}

	return fallback
}

func getSeconds(key string, fallback time.Duration) time.Duration {
	val, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}

	secs, err := strconv.Atoi(val)
	if err != nil || secs <= 0 {
		return fallback
	}

	return time.Duration(secs) * time.Second
}
