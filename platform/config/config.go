// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// DatabaseConfig provides database connection settings.
type DatabaseConfig interface {
	GetDatabaseURL() string
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetPublicRateLimit() float64
	GetPublicRateBurst() int
}

// RedisConfig provides settings for Redis (verification cache and task queue).
type RedisConfig interface {
	GetRedisAddr() string
	GetRedisPassword() string
	GetRedisDB() int
}

// VerifyConfig provides settings for external verification collaborators.
type VerifyConfig interface {
	GetPresenceAPIURL() string
	GetPresenceAPIKey() string
	GetCompanyAPIURL() string
	GetCompanyAPIKey() string
	GetLookupTimeout() time.Duration
	GetVerifyCacheTTL() time.Duration
}

// VisitorConfig provides settings for the visitor tracking module.
type VisitorConfig interface {
	GetGeoIPAPIURL() string
	GetLookupTimeout() time.Duration
}

// EmailConfig provides settings for notification email sending.
type EmailConfig interface {
	GetEmailEnabled() bool
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetNotifyAddress() string
}

// EmbedConfig provides settings for the embed snippet generator.
type EmbedConfig interface {
	GetAppBaseURL() string
}

// CatalogConfig provides the path of the form option catalog file.
type CatalogConfig interface {
	GetCatalogPath() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env              string
	HTTPAddr         string
	DatabaseURL      string
	CORSAllowAll     bool
	CORSOrigins      []string
	PublicRateLimit  float64
	PublicRateBurst  int
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	PresenceAPIURL   string
	PresenceAPIKey   string
	CompanyAPIURL    string
	CompanyAPIKey    string
	GeoIPAPIURL      string
	LookupTimeout    time.Duration
	VerifyCacheTTL   time.Duration
	EmailEnabled     bool
	SMTPHost         string
	SMTPPort         int
	SMTPUsername     string
	SMTPPassword     string
	EmailFromName    string
	EmailFromAddress string
	NotifyAddress    string
	AppBaseURL       string
	CatalogPath      string
}

// =============================================================================
// Interface Implementations
// =============================================================================

func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

func (c *Config) GetHTTPAddr() string         { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool       { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string    { return c.CORSOrigins }
func (c *Config) GetPublicRateLimit() float64 { return c.PublicRateLimit }
func (c *Config) GetPublicRateBurst() int     { return c.PublicRateBurst }

func (c *Config) GetRedisAddr() string     { return c.RedisAddr }
func (c *Config) GetRedisPassword() string { return c.RedisPassword }
func (c *Config) GetRedisDB() int          { return c.RedisDB }

func (c *Config) GetPresenceAPIURL() string        { return c.PresenceAPIURL }
func (c *Config) GetPresenceAPIKey() string        { return c.PresenceAPIKey }
func (c *Config) GetCompanyAPIURL() string         { return c.CompanyAPIURL }
func (c *Config) GetCompanyAPIKey() string         { return c.CompanyAPIKey }
func (c *Config) GetLookupTimeout() time.Duration  { return c.LookupTimeout }
func (c *Config) GetVerifyCacheTTL() time.Duration { return c.VerifyCacheTTL }

func (c *Config) GetGeoIPAPIURL() string { return c.GeoIPAPIURL }

func (c *Config) GetEmailEnabled() bool       { return c.EmailEnabled }
func (c *Config) GetSMTPHost() string         { return c.SMTPHost }
func (c *Config) GetSMTPPort() int            { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string     { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string     { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string    { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string { return c.EmailFromAddress }
func (c *Config) GetNotifyAddress() string    { return c.NotifyAddress }

func (c *Config) GetAppBaseURL() string  { return c.AppBaseURL }
func (c *Config) GetCatalogPath() string { return c.CatalogPath }

// =============================================================================
// Loading
// =============================================================================

// Load reads configuration from the environment, with .env support for
// local development. Missing required values produce an error.
func Load() (*Config, error) {
	// Best effort; the file only exists in local development.
	_ = godotenv.Load()

	cfg := &Config{
		Env:              getEnv("APP_ENV", "development"),
		HTTPAddr:         getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		CORSAllowAll:     getEnvBool("CORS_ALLOW_ALL", true),
		CORSOrigins:      splitList(os.Getenv("CORS_ORIGINS")),
		PublicRateLimit:  getEnvFloat("PUBLIC_RATE_LIMIT", 5),
		PublicRateBurst:  getEnvInt("PUBLIC_RATE_BURST", 10),
		RedisAddr:        getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:    os.Getenv("REDIS_PASSWORD"),
		RedisDB:          getEnvInt("REDIS_DB", 0),
		PresenceAPIURL:   os.Getenv("PRESENCE_API_URL"),
		PresenceAPIKey:   os.Getenv("PRESENCE_API_KEY"),
		CompanyAPIURL:    os.Getenv("COMPANY_API_URL"),
		CompanyAPIKey:    os.Getenv("COMPANY_API_KEY"),
		GeoIPAPIURL:      getEnv("GEOIP_API_URL", "https://ipapi.co"),
		LookupTimeout:    getEnvDuration("LOOKUP_TIMEOUT", 5*time.Second),
		VerifyCacheTTL:   getEnvDuration("VERIFY_CACHE_TTL", 24*time.Hour),
		EmailEnabled:     getEnvBool("EMAIL_ENABLED", false),
		SMTPHost:         os.Getenv("SMTP_HOST"),
		SMTPPort:         getEnvInt("SMTP_PORT", 587),
		SMTPUsername:     os.Getenv("SMTP_USERNAME"),
		SMTPPassword:     os.Getenv("SMTP_PASSWORD"),
		EmailFromName:    getEnv("EMAIL_FROM_NAME", "LeadTracker"),
		EmailFromAddress: getEnv("EMAIL_FROM_ADDRESS", "noreply@leadtracker.local"),
		NotifyAddress:    os.Getenv("NOTIFY_ADDRESS"),
		AppBaseURL:       getEnv("APP_BASE_URL", "http://localhost:8080"),
		CatalogPath:      getEnv("CATALOG_PATH", "config/catalog.yaml"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.EmailEnabled && cfg.SMTPHost == "" {
		return nil, fmt.Errorf("SMTP_HOST is required when EMAIL_ENABLED is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return parsed
}

func splitList(v string) []string {
	if strings.TrimSpace(v) == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
