package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// DefaultSecretKey is the insecure fallback used when SECRET_KEY is unset.
// Sessions signed with it are forgeable; Load logs a warning when it is used.
const DefaultSecretKey = "8BYkEfBA6O6donzWlSihBXox7C0sKR6b"

// Config holds all process-wide settings. It is built once at startup and
// passed down explicitly; nothing reads the environment after Load returns.
type Config struct {
	// Addr is the HTTP listen address.
	Addr string
	// DBPath is the Badger database directory.
	DBPath string
	// SecretKey signs session cookies.
	SecretKey string
}

// Load builds a Config from the environment, reading a .env file first if
// one exists.
func Load() Config {
	// Missing .env is fine; real environment variables still apply.
	_ = godotenv.Load()

	cfg := Config{
		Addr:      envOr("ADDR", ":8080"),
		DBPath:    envOr("DB_PATH", "data/badger"),
		SecretKey: envOr("SECRET_KEY", DefaultSecretKey),
	}

	if cfg.SecretKey == DefaultSecretKey {
		slog.Warn("SECRET_KEY not set, using insecure built-in default; session cookies are forgeable")
	}

	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
