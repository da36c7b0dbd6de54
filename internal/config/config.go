package config

import (
	"os"
	"strconv"
	"time"
)

const (
	BannerStorageLocal = "local"
	BannerStorageMinIO = "minio"
)

type Config struct {
	Port        string
	Environment string

	DatabaseURL string

	RedisURL      string
	StatsCacheTTL time.Duration

	StaticDir     string
	BannerDir     string
	BannerStorage string
	MaxBannerSize int64

	MinIOEndpoint       string
	MinIOPublicEndpoint string
	MinIOAccessKey      string
	MinIOSecretKey      string
	MinIOBucket         string
	MinIOUseSSL         bool
	MinIOPublicUseSSL   bool

	CORSOrigins string
}

func Load() *Config {
	return &Config{
		Port:        getEnv("PORT", "8000"),
		Environment: getEnv("ENVIRONMENT", "development"),

		DatabaseURL: getEnv("DATABASE_URL", "sqlite:///./streamhub.db"),

		RedisURL:      getEnv("REDIS_URL", ""),
		StatsCacheTTL: getDurationEnv("STATS_CACHE_TTL", 5*time.Minute),

		StaticDir:     getEnv("STATIC_DIR", "static"),
		BannerDir:     getEnv("BANNER_DIR", "static/banners"),
		BannerStorage: getEnv("BANNER_STORAGE", BannerStorageLocal),
		MaxBannerSize: int64(getIntEnv("MAX_BANNER_SIZE_MB", 10)) * 1024 * 1024,

		MinIOEndpoint:       getEnv("MINIO_ENDPOINT", "localhost:9000"),
		MinIOPublicEndpoint: getEnv("MINIO_PUBLIC_ENDPOINT", getEnv("MINIO_ENDPOINT", "localhost:9000")),
		MinIOAccessKey:      getEnv("MINIO_ACCESS_KEY", "minioadmin"),
		MinIOSecretKey:      getEnv("MINIO_SECRET_KEY", "minioadmin"),
		MinIOBucket:         getEnv("MINIO_BUCKET", "streamhub-banners"),
		MinIOUseSSL:         getBoolEnv("MINIO_USE_SSL", false),
		MinIOPublicUseSSL:   getBoolEnv("MINIO_PUBLIC_USE_SSL", false),

		CORSOrigins: getEnv("CORS_ORIGINS", "*"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getBoolEnv(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.ParseBool(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		parsed, err := strconv.Atoi(value)
		if err == nil && parsed > 0 {
			return parsed
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		parsed, err := time.ParseDuration(value)
		if err == nil {
			return parsed
		}
	}
	return defaultValue
}
