package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	DatabaseURL      string
	HTTPPort         string
	HoldingsPath     string
	RefreshInterval  time.Duration
	FXURL            string
	FXRetryMax       int
	FXRetryBaseDelay time.Duration
	FXFallbackRate   decimal.Decimal
	AdminAPIKey      string
	ExportPath       string
	SheetsID         string
	SheetsCredsJSON  string
	NoiseSeed        uint64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		DatabaseURL:      envOrDefault("DATABASE_URL", ""),
		HTTPPort:         envOrDefault("HTTP_PORT", "8080"),
		HoldingsPath:     envOrDefault("HOLDINGS_PATH", ""),
		RefreshInterval:  envOrDefaultDuration("REFRESH_INTERVAL", 5*time.Minute),
		FXURL:            envOrDefault("FX_URL", "https://api.frankfurter.dev/v1"),
		FXRetryMax:       envOrDefaultInt("FX_RETRY_MAX", 3),
		FXRetryBaseDelay: envOrDefaultDuration("FX_RETRY_BASE_DELAY", 2*time.Second),
		FXFallbackRate:   envOrDefaultDecimal("FX_FALLBACK_RATE", decimal.NewFromFloat(153.5)),
		AdminAPIKey:      envOrDefault("ADMIN_API_KEY", ""),
		ExportPath:       envOrDefault("EXPORT_PATH", ""),
		SheetsID:         envOrDefault("SHEETS_SPREADSHEET_ID", ""),
		SheetsCredsJSON:  envOrDefault("SHEETS_CREDENTIALS_JSON", ""),
		NoiseSeed:        envOrDefaultUint("NOISE_SEED", 0),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("invalid integer env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return n
	}
	return defaultVal
}

func envOrDefaultUint(key string, defaultVal uint64) uint64 {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			slog.Warn("invalid unsigned env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return n
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}

func envOrDefaultDecimal(key string, defaultVal decimal.Decimal) decimal.Decimal {
	if v := os.Getenv(key); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil || d.LessThanOrEqual(decimal.Zero) {
			slog.Warn("invalid decimal env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
