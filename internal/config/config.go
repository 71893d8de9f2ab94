// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package config handles application configuration loading from environment
// variables. It provides a centralized Config struct used across the application.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"globalplanner/internal/ai"
	"globalplanner/internal/models"
	"globalplanner/internal/notify"
)

// Storage backends accepted by STORE_BACKEND.
const (
	BackendFile     = "file"
	BackendMemory   = "memory"
	BackendPostgres = "postgres"
	BackendValkey   = "valkey"
	BackendS3       = "s3"
)

// AIProviders lists the provider names accepted by AI_PROVIDER.
var AIProviders = []string{"gemini", "openai", "claude", "mistral"}

// Config holds all application configuration values loaded from the environment.
type Config struct {
	// Server settings
	Host string
	Port string
	Env  string // "development", "production", "testing"

	// Storage
	StoreBackend string
	DataDir      string

	// PostgreSQL connection
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSSLMode  string

	// Valkey (Redis-compatible)
	ValkeyHost     string
	ValkeyPort     string
	ValkeyPassword string
	ValkeyDB       int
	ValkeyPrefix   string

	// S3-compatible object storage
	S3Endpoint  string
	S3Region    string
	S3AccessKey string
	S3SecretKey string
	S3Bucket    string
	S3Prefix    string

	// AI assistant
	AIProvider   string
	AIProviders  map[string]ai.ProviderConfig
	AITimeout    time.Duration
	AIRateLimit  int // generations per minute per client, 0 disables
	AIRateWindow time.Duration

	// Workspace
	NotificationTTL time.Duration
	DefaultLanguage models.Locale
	PrefersDarkMode bool
	SidebarOpen     bool
}

// Load reads configuration from environment variables, applying defaults
// for development where appropriate. Outside production a .env file in the
// working directory is loaded first; variables already set win. Returns an
// error for malformed values and for missing secrets in production.
func Load() (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		loadDotEnv(".env")
	}

	var errs []error
	cfg := &Config{
		Host: envOrDefault("APP_HOST", "0.0.0.0"),
		Port: envOrDefault("APP_PORT", "8080"),
		Env:  envOrDefault("APP_ENV", "development"),

		StoreBackend: strings.ToLower(envOrDefault("STORE_BACKEND", BackendFile)),
		DataDir:      envOrDefault("DATA_DIR", "data"),

		DBHost:     envOrDefault("POSTGRES_HOST", "localhost"),
		DBPort:     envOrDefault("POSTGRES_PORT", "5432"),
		DBUser:     envOrDefault("POSTGRES_USER", "globalplanner"),
		DBPassword: envOrDefault("POSTGRES_PASSWORD", "changeme"),
		DBName:     envOrDefault("POSTGRES_DB", "globalplanner"),
		DBSSLMode:  envOrDefault("POSTGRES_SSLMODE", "disable"),

		ValkeyHost:     envOrDefault("VALKEY_HOST", "localhost"),
		ValkeyPort:     envOrDefault("VALKEY_PORT", "6379"),
		ValkeyPassword: os.Getenv("VALKEY_PASSWORD"),
		ValkeyDB:       envInt("VALKEY_DB", 0, &errs),
		ValkeyPrefix:   envOrDefault("VALKEY_PREFIX", "globalplanner:"),

		S3Endpoint:  os.Getenv("S3_ENDPOINT"),
		S3Region:    envOrDefault("S3_REGION", "us-east-1"),
		S3AccessKey: os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey: os.Getenv("S3_SECRET_KEY"),
		S3Bucket:    os.Getenv("S3_BUCKET"),
		S3Prefix:    envOrDefault("S3_PREFIX", "globalplanner/"),

		AIProvider:   strings.ToLower(envOrDefault("AI_PROVIDER", "gemini")),
		AIProviders:  loadAIProviders(),
		AITimeout:    envDuration("AI_TIMEOUT", ai.DefaultTimeout, &errs),
		AIRateLimit:  envInt("AI_RATE_LIMIT", 10, &errs),
		AIRateWindow: time.Minute,

		NotificationTTL: envDuration("NOTIFICATION_TTL", notify.DefaultTTL, &errs),
		PrefersDarkMode: envBool("PREFERS_DARK_MODE", false, &errs),
		SidebarOpen:     envBool("SIDEBAR_OPEN", true, &errs),
	}

	lang := envOrDefault("DEFAULT_LANGUAGE", string(models.DefaultLocale))
	cfg.DefaultLanguage = models.Locale(strings.ToLower(lang))
	if !cfg.DefaultLanguage.Valid() {
		errs = append(errs, fmt.Errorf("DEFAULT_LANGUAGE: unsupported language %q", lang))
	}

	switch cfg.StoreBackend {
	case BackendFile, BackendMemory, BackendPostgres, BackendValkey:
	case BackendS3:
		if cfg.S3Endpoint == "" || cfg.S3Bucket == "" {
			errs = append(errs, errors.New("S3_ENDPOINT and S3_BUCKET are required for the s3 backend"))
		}
	default:
		errs = append(errs, fmt.Errorf("STORE_BACKEND: unknown backend %q", cfg.StoreBackend))
	}

	if !validProvider(cfg.AIProvider) {
		errs = append(errs, fmt.Errorf("AI_PROVIDER: unknown provider %q", cfg.AIProvider))
	}
	if cfg.AITimeout <= 0 {
		errs = append(errs, errors.New("AI_TIMEOUT must be positive"))
	}
	if cfg.NotificationTTL <= 0 {
		errs = append(errs, errors.New("NOTIFICATION_TTL must be positive"))
	}
	if cfg.AIRateLimit < 0 {
		errs = append(errs, errors.New("AI_RATE_LIMIT must not be negative"))
	}

	if cfg.Env == "production" && cfg.StoreBackend == BackendPostgres {
		if cfg.DBPassword == "changeme" {
			errs = append(errs, errors.New("POSTGRES_PASSWORD must be set in production"))
		}
	}

	if err := errors.Join(errs...); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

// loadAIProviders reads <NAME>_API_KEY, <NAME>_MODEL and <NAME>_BASE_URL
// for every provider. API_KEY is accepted as the Gemini key.
func loadAIProviders() map[string]ai.ProviderConfig {
	out := make(map[string]ai.ProviderConfig, len(AIProviders))
	for _, name := range AIProviders {
		prefix := strings.ToUpper(name) + "_"
		cfg := ai.ProviderConfig{
			APIKey:  os.Getenv(prefix + "API_KEY"),
			Model:   os.Getenv(prefix + "MODEL"),
			BaseURL: os.Getenv(prefix + "BASE_URL"),
		}
		if name == "gemini" && cfg.APIKey == "" {
			cfg.APIKey = os.Getenv("API_KEY")
		}
		out[name] = cfg
	}
	return out
}

func validProvider(name string) bool {
	for _, p := range AIProviders {
		if p == name {
			return true
		}
	}
	return false
}

// DSN returns the PostgreSQL connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode,
	)
}

// Addr returns the server listen address (host:port).
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// IsDev returns true if the application is running in development mode.
func (c *Config) IsDev() bool {
	return c.Env == "development"
}

// loadDotEnv loads path into the environment without overriding variables
// that are already set. A missing file is not an error.
func loadDotEnv(path string) {
	err := godotenv.Load(path)
	switch {
	case err == nil:
		slog.Debug("loaded environment file", "path", path)
	case errors.Is(err, fs.ErrNotExist):
	default:
		slog.Warn("could not read environment file", "path", path, "error", err)
	}
}

// envOrDefault reads an environment variable, returning a fallback if unset or empty.
func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int, errs *[]error) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid integer %q", key, v))
		return fallback
	}
	return n
}

func envBool(key string, fallback bool, errs *[]error) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid boolean %q", key, v))
		return fallback
	}
	return b
}

// envDuration accepts Go durations ("45s") and bare seconds ("45").
func envDuration(key string, fallback time.Duration, errs *[]error) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	if secs, err := strconv.Atoi(v); err == nil {
		return time.Duration(secs) * time.Second
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: invalid duration %q", key, v))
		return fallback
	}
	return d
}
