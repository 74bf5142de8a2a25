package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Env                string
	HTTPAddr           string
	CorsAllowedOrigins []string
	MaxFileSizeBytes   int64

	DatasetPath     string
	ClosedHoursPath string
	ExcludedHours   string
	DefaultPageSize int

	ObjectStoreEndpoint        string
	ObjectStoreRegion          string
	ObjectStoreAccessKeyID     string
	ObjectStoreSecretAccessKey string
	ObjectStoreBucket          string
	ObjectStoreDatasetKey      string
}

func Load() Config {
	cfg := Config{
		Env:                getEnv("APP_ENV", "development"),
		HTTPAddr:           getEnv("HTTP_ADDR", ":8097"),
		CorsAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "")),
		MaxFileSizeBytes:   getEnvInt64("MAX_FILE_SIZE", 10*1024*1024),

		DatasetPath:     getEnv("DATASET_PATH", ""),
		ClosedHoursPath: getEnv("CLOSED_HOURS_PATH", "config/closed_hours.json"),
		// Hours hidden from chart and grid display. Business-rule driven
		// (currently the 2am-7am slots) and expected to change again.
		ExcludedHours:   getEnv("EXCLUDED_HOURS", "2,3,4,5,6"),
		DefaultPageSize: getEnvInt("DEFAULT_PAGE_SIZE", 25),

		// Object store (Cloudflare R2 / S3-compatible) holding the published
		// dataset JSON. Optional; the service also runs from DATASET_PATH or
		// uploads alone.
		ObjectStoreEndpoint:        getEnv("OBJECT_STORE_ENDPOINT", ""),
		ObjectStoreRegion:          getEnv("OBJECT_STORE_REGION", "auto"),
		ObjectStoreAccessKeyID:     getEnv("OBJECT_STORE_ACCESS_KEY_ID", ""),
		ObjectStoreSecretAccessKey: getEnv("OBJECT_STORE_SECRET_ACCESS_KEY", ""),
		ObjectStoreBucket:          getEnv("OBJECT_STORE_BUCKET", ""),
		ObjectStoreDatasetKey:      getEnv("OBJECT_STORE_DATASET_KEY", "datasets/sales.json"),
	}

	if cfg.MaxFileSizeBytes <= 0 {
		cfg.MaxFileSizeBytes = 10 * 1024 * 1024
	}
	if cfg.DefaultPageSize <= 0 {
		cfg.DefaultPageSize = 25
	}

	return cfg
}

// ObjectStoreConfigured reports whether enough object-store settings are
// present to attempt a dataset fetch.
func (c Config) ObjectStoreConfigured() bool {
	return c.ObjectStoreEndpoint != "" && c.ObjectStoreBucket != ""
}

func getEnv(key, fallback string) string {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) int {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt64(key string, fallback int64) int64 {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitCSV(value string) []string {
	if value == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
