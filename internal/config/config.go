package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"golang.org/x/text/language"

	"github.com/mmynk/tipcalculator/internal/currency"
	"github.com/mmynk/tipcalculator/pkg/logging"
)

// Config holds settings for the tip calculator shell, loaded from the environment.
type Config struct {
	LogLevel slog.Level
	// LogFile receives logs when set. Otherwise one-shot runs log to stderr
	// and the interactive screen discards logs.
	LogFile string
	// Locale overrides the host locale for currency formatting.
	Locale string
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load()

	k := koanf.New(".")
	if err := k.Load(env.Provider("", ".", func(s string) string { return s }), nil); err != nil {
		return nil, fmt.Errorf("load env: %w", err)
	}

	cfg := &Config{
		LogLevel: logging.ParseLevel(k.String("LOG_LEVEL")),
		LogFile:  strings.TrimSpace(k.String("TIPCALC_LOG_FILE")),
		Locale:   strings.TrimSpace(k.String("TIPCALC_LOCALE")),
	}

	if cfg.Locale != "" {
		if _, ok := currency.ParseLocale(cfg.Locale); !ok {
			return nil, fmt.Errorf("TIPCALC_LOCALE %q is not a valid locale", cfg.Locale)
		}
	}

	return cfg, nil
}

// LocaleTag returns the configured locale, or the host locale when none is set.
func (c *Config) LocaleTag() language.Tag {
	if tag, ok := currency.ParseLocale(c.Locale); ok {
		return tag
	}
	return currency.HostLocale()
}
