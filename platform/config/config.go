// Package config provides application configuration loading.
// This is part of the platform layer and contains no business logic.
package config

import (
	"fmt"
	"os"
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

// RedisConfig provides settings for the funnel session store.
type RedisConfig interface {
	GetRedisURL() string
	GetSessionTTL() time.Duration
	IsRedisEnabled() bool
}

// JWTConfig provides JWT validation settings for middleware.
type JWTConfig interface {
	GetJWTAccessSecret() string
}

// AdminConfig provides settings needed by the admin auth service.
type AdminConfig interface {
	JWTConfig
	GetAdminEmail() string
	GetAdminPasswordHash() string
	GetAdminPassword() string
	GetAccessTokenTTL() time.Duration
}

// DiagnosticConfig provides settings for the AI diagnostic generator.
type DiagnosticConfig interface {
	GetDiagnosticProvider() string
	GetOpenAIAPIKey() string
	GetOpenAIBaseURL() string
	GetOpenAIModel() string
	GetGeminiAPIKey() string
	GetGeminiModel() string
	GetDiagnosticTimeout() time.Duration
	IsDiagnosticEnabled() bool
}

// SMTPConfig provides settings for lead notification email.
type SMTPConfig interface {
	GetSMTPHost() string
	GetSMTPPort() int
	GetSMTPUsername() string
	GetSMTPPassword() string
	GetEmailFromName() string
	GetEmailFromAddress() string
	GetLeadNotifyAddress() string
	IsEmailEnabled() bool
}

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetCORSAllowCreds() bool
}

// TrackingConfig provides settings for the tracking dispatcher sink.
type TrackingConfig interface {
	GetTrackingCollectorURL() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env                  string
	HTTPAddr             string
	DatabaseURL          string
	RedisURL             string
	SessionTTL           time.Duration
	JWTAccessSecret      string
	AccessTokenTTL       time.Duration
	AdminEmail           string
	AdminPasswordHash    string
	AdminPassword        string
	CORSAllowAll         bool
	CORSOrigins          []string
	CORSAllowCreds       bool
	DiagnosticProvider   string
	OpenAIAPIKey         string
	OpenAIBaseURL        string
	OpenAIModel          string
	GeminiAPIKey         string
	GeminiModel          string
	DiagnosticTimeout    time.Duration
	SMTPHost             string
	SMTPPort             int
	SMTPUsername         string
	SMTPPassword         string
	EmailFromName        string
	EmailFromAddress     string
	LeadNotifyAddress    string
	TrackingCollectorURL string
	WhatsAppGroupLink    string
}

// =============================================================================
// Interface Implementations
// =============================================================================

// DatabaseConfig implementation
func (c *Config) GetDatabaseURL() string { return c.DatabaseURL }

// RedisConfig implementation
func (c *Config) GetRedisURL() string           { return c.RedisURL }
func (c *Config) GetSessionTTL() time.Duration  { return c.SessionTTL }
func (c *Config) IsRedisEnabled() bool          { return c.RedisURL != "" }

// JWTConfig implementation
func (c *Config) GetJWTAccessSecret() string { return c.JWTAccessSecret }

// AdminConfig implementation
func (c *Config) GetAdminEmail() string            { return c.AdminEmail }
func (c *Config) GetAdminPasswordHash() string     { return c.AdminPasswordHash }
func (c *Config) GetAdminPassword() string         { return c.AdminPassword }
func (c *Config) GetAccessTokenTTL() time.Duration { return c.AccessTokenTTL }

// DiagnosticConfig implementation
func (c *Config) GetDiagnosticProvider() string       { return c.DiagnosticProvider }
func (c *Config) GetOpenAIAPIKey() string             { return c.OpenAIAPIKey }
func (c *Config) GetOpenAIBaseURL() string            { return c.OpenAIBaseURL }
func (c *Config) GetOpenAIModel() string              { return c.OpenAIModel }
func (c *Config) GetGeminiAPIKey() string             { return c.GeminiAPIKey }
func (c *Config) GetGeminiModel() string              { return c.GeminiModel }
func (c *Config) GetDiagnosticTimeout() time.Duration { return c.DiagnosticTimeout }
func (c *Config) IsDiagnosticEnabled() bool {
	switch c.DiagnosticProvider {
	case "gemini":
		return c.GeminiAPIKey != ""
	default:
		return c.OpenAIAPIKey != ""
	}
}

// SMTPConfig implementation
func (c *Config) GetSMTPHost() string          { return c.SMTPHost }
func (c *Config) GetSMTPPort() int             { return c.SMTPPort }
func (c *Config) GetSMTPUsername() string      { return c.SMTPUsername }
func (c *Config) GetSMTPPassword() string      { return c.SMTPPassword }
func (c *Config) GetEmailFromName() string     { return c.EmailFromName }
func (c *Config) GetEmailFromAddress() string  { return c.EmailFromAddress }
func (c *Config) GetLeadNotifyAddress() string { return c.LeadNotifyAddress }
func (c *Config) IsEmailEnabled() bool {
	return c.SMTPHost != "" && c.LeadNotifyAddress != ""
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetCORSAllowCreds() bool  { return c.CORSAllowCreds }

// TrackingConfig implementation
func (c *Config) GetTrackingCollectorURL() string { return c.TrackingCollectorURL }

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "http://localhost:5173"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	cfg := &Config{
		Env:                  getEnv("APP_ENV", "development"),
		HTTPAddr:             getEnv("HTTP_ADDR", ":8080"),
		DatabaseURL:          getEnv("DATABASE_URL", ""),
		RedisURL:             getEnv("REDIS_URL", ""),
		SessionTTL:           mustDuration(getEnv("FUNNEL_SESSION_TTL", "24h")),
		JWTAccessSecret:      getEnv("JWT_ACCESS_SECRET", ""),
		AccessTokenTTL:       mustDuration(getEnv("JWT_ACCESS_TTL", "12h")),
		AdminEmail:           getEnv("ADMIN_EMAIL", ""),
		AdminPasswordHash:    getEnv("ADMIN_PASSWORD_HASH", ""),
		AdminPassword:        getEnv("ADMIN_PASSWORD", ""),
		CORSAllowAll:         corsAllowAll,
		CORSOrigins:          corsOrigins,
		CORSAllowCreds:       strings.EqualFold(getEnv("CORS_ALLOW_CREDENTIALS", "true"), "true"),
		DiagnosticProvider:   getEnv("DIAGNOSTIC_PROVIDER", "openai"),
		OpenAIAPIKey:         getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:        getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:          getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:         getEnv("GEMINI_API_KEY", ""),
		GeminiModel:          getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		DiagnosticTimeout:    mustDuration(getEnv("DIAGNOSTIC_TIMEOUT", "20s")),
		SMTPHost:             getEnv("SMTP_HOST", ""),
		SMTPPort:             mustInt(getEnv("SMTP_PORT", "587")),
		SMTPUsername:         getEnv("SMTP_USERNAME", ""),
		SMTPPassword:         getEnv("SMTP_PASSWORD", ""),
		EmailFromName:        getEnv("EMAIL_FROM_NAME", "Advanx"),
		EmailFromAddress:     getEnv("EMAIL_FROM_ADDRESS", ""),
		LeadNotifyAddress:    getEnv("LEAD_NOTIFY_ADDRESS", ""),
		TrackingCollectorURL: getEnv("TRACKING_COLLECTOR_URL", ""),
		WhatsAppGroupLink:    getEnv("WHATSAPP_GROUP_LINK", "https://advanx.com.br/grupomdc"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.JWTAccessSecret == "" {
		return nil, fmt.Errorf("JWT_ACCESS_SECRET is required")
	}
	if cfg.AdminEmail == "" {
		return nil, fmt.Errorf("ADMIN_EMAIL is required")
	}
	if cfg.AdminPasswordHash == "" && cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_PASSWORD_HASH or ADMIN_PASSWORD is required")
	}
	if cfg.CORSAllowAll && cfg.CORSAllowCreds {
		return nil, fmt.Errorf("CORS_ALLOW_CREDENTIALS cannot be true when CORS_ALLOW_ALL is true")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func mustDuration(value string) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0
	}
	return d
}

func mustInt(value string) int {
	var result int
	if _, err := fmt.Sscanf(value, "%d", &result); err != nil {
		return 0
	}
	return result
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	results := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			results = append(results, trimmed)
		}
	}
	return results
}

func containsWildcard(values []string) bool {
	for _, value := range values {
		if value == "*" {
			return true
		}
	}
	return false
}
