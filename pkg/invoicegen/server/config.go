// Package server exposes the upload/dashboard HTTP API over the extraction
// pipeline.
package server

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the server's runtime settings.
type Config struct {
	Port           string
	StorePath      string
	OutputDir      string
	FontPath       string
	LogoPath       string
	MaxUploadBytes int64
}

// LoadConfig reads settings from the environment, loading a local .env
// file first when present.
func LoadConfig() Config {
	_ = godotenv.Load()

	cfg := Config{
		Port:           envOr("PORT", "8080"),
		StorePath:      envOr("STORE_PATH", "invoices_db.json"),
		OutputDir:      envOr("OUTPUT_DIR", "invoices"),
		FontPath:       os.Getenv("FONT_PATH"),
		LogoPath:       envOr("LOGO_PATH", "Picture1.png"),
		MaxUploadBytes: 20 * 1024 * 1024,
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			cfg.MaxUploadBytes = n
		}
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
