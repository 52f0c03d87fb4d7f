package config

import (
	"os"
	"time"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	Port          string
	DBPath        string
	ModelDir      string
	UploadDir     string
	ImgDir        string
	SessionSecret string
	RedisURL      string
	ResultTTL     time.Duration
}

// Load builds Config from environment with sensible defaults.
func Load() *Config {
	return &Config{
		Port:          getEnv("PORT", "8080"),
		DBPath:        getEnv("DB_PATH", "users.db"),
		ModelDir:      getEnv("MODEL_DIR", "models"),
		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		ImgDir:        getEnv("IMG_DIR", "static/img"),
		SessionSecret: getEnv("SESSION_SECRET", "super-secret-key"),
		RedisURL:      os.Getenv("REDIS_URL"),
		ResultTTL:     getEnvDuration("RESULT_TTL", 30*time.Minute),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if parsed, err := time.ParseDuration(v); err == nil {
			return parsed
		}
	}
	return def
}
