package config

import "os"

// Config holds the process-level settings. Database settings are read by
// pkg/database directly so the DSN never lives in two places.
type Config struct {
	Port      string
	UploadDir string
	Env       string
}

func Load() Config {
	return Config{
		Port:      getenv("PORT", "3000"),
		UploadDir: getenv("UPLOAD_DIR", "uploads"),
		Env:       getenv("APP_ENV", "development"),
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
