package config

import (
	"fmt"
	"os"
	"strconv"

	"golang.org/x/text/language"
)

// Config holds all application configuration.
// Values come from environment variables with sensible defaults; a .env
// file is honored when the caller loads it before NewFromEnv.
//
// Environment Variables:
//
// DeepL Configuration:
// - DEEPL_API_KEY: API key for DeepL (optional here; may live in the settings store instead)
// - DEEPL_API_URL: API endpoint URL (default: https://api-free.deepl.com)
// - DEEPL_TIMEOUT: Request timeout in seconds (default: 60)
//
// Translate Configuration:
// - SOURCE_LANG: Source language code (default: empty, auto-detect)
// - TARGET_LANG: Target language code (default: empty, must be given per run)
// - QUOTA_LIMIT: Local character ceiling per document (default: 500000, the DeepL free tier)
//
// Store Configuration:
// - SETTINGS_DB: Path of the SQLite settings database (default: config/settings.db)
type Config struct {
	DeepL     DeepLConfig
	Translate TranslateConfig
	Store     StoreConfig
}

// DeepLConfig holds the provider connection settings.
type DeepLConfig struct {
	APIKey  string
	APIURL  string
	Timeout int
}

// TranslateConfig holds per-run translation defaults.
type TranslateConfig struct {
	SourceLang string
	TargetLang string
	QuotaLimit int
}

// StoreConfig holds the settings persistence location.
type StoreConfig struct {
	DBPath string
}

// Option is a function type for configuring Config
type Option func(*Config)

// NewFromEnv creates a new Config instance with values from environment
// variables and options.
func NewFromEnv(opts ...Option) (*Config, error) {
	config := &Config{
		DeepL: DeepLConfig{
			APIKey:  getEnvString("DEEPL_API_KEY", ""),
			APIURL:  getEnvString("DEEPL_API_URL", "https://api-free.deepl.com"),
			Timeout: getEnvInt("DEEPL_TIMEOUT", 60),
		},
		Translate: TranslateConfig{
			SourceLang: getEnvString("SOURCE_LANG", ""),
			TargetLang: getEnvString("TARGET_LANG", ""),
			QuotaLimit: getEnvInt("QUOTA_LIMIT", 500000),
		},
		Store: StoreConfig{
			DBPath: getEnvString("SETTINGS_DB", "config/settings.db"),
		},
	}

	for _, opt := range opts {
		opt(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// validate checks that the configuration is internally consistent. The
// API key is deliberately not required here: it may come from the
// settings store instead, and translate enforces its presence.
func (c *Config) validate() error {
	if c.Translate.QuotaLimit <= 0 {
		return fmt.Errorf("QUOTA_LIMIT must be positive, got %d", c.Translate.QuotaLimit)
	}
	if c.DeepL.Timeout <= 0 {
		return fmt.Errorf("DEEPL_TIMEOUT must be positive, got %d", c.DeepL.Timeout)
	}
	if c.Translate.TargetLang != "" {
		if _, err := language.Parse(c.Translate.TargetLang); err != nil {
			return fmt.Errorf("invalid TARGET_LANG %q: %w", c.Translate.TargetLang, err)
		}
	}
	if c.Translate.SourceLang != "" {
		if _, err := language.Parse(c.Translate.SourceLang); err != nil {
			return fmt.Errorf("invalid SOURCE_LANG %q: %w", c.Translate.SourceLang, err)
		}
	}
	return nil
}

// getEnvString gets a string value from environment variables with default
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer value from environment variables with default
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
