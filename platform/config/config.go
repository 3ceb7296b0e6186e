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

// Generator providers understood by GENERATOR_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderGemini = "gemini"
)

// =============================================================================
// Module-Specific Config Interfaces (Principle of Least Privilege)
// =============================================================================

// HTTPConfig provides settings for the HTTP server.
type HTTPConfig interface {
	GetHTTPAddr() string
	GetCORSAllowAll() bool
	GetCORSOrigins() []string
	GetStaticDir() string
}

// GeneratorConfig provides settings for the external quote generator.
type GeneratorConfig interface {
	GetGeneratorProvider() string
	GetOpenAIAPIKey() string
	GetOpenAIBaseURL() string
	GetOpenAIModel() string
	GetGeminiAPIKey() string
	GetGeminiModel() string
	GetGenerationTimeout() time.Duration
	HasGeneratorCredential() bool
}

// StoreConfig provides settings for the quote store.
type StoreConfig interface {
	GetRedisURL() string
	GetQuoteTTL() time.Duration
	IsRedisEnabled() bool
}

// ShareConfig provides settings for building absolute share links.
type ShareConfig interface {
	GetAppBaseURL() string
}

// =============================================================================
// Main Config Struct
// =============================================================================

// Config holds all application configuration values.
type Config struct {
	Env               string
	HTTPAddr          string
	CORSAllowAll      bool
	CORSOrigins       []string
	AppBaseURL        string
	StaticDir         string
	GeneratorProvider string
	OpenAIAPIKey      string
	OpenAIBaseURL     string
	OpenAIModel       string
	GeminiAPIKey      string
	GeminiModel       string
	GenerationTimeout time.Duration
	RedisURL          string
	QuoteTTL          time.Duration
}

// HTTPConfig implementation
func (c *Config) GetHTTPAddr() string      { return c.HTTPAddr }
func (c *Config) GetCORSAllowAll() bool    { return c.CORSAllowAll }
func (c *Config) GetCORSOrigins() []string { return c.CORSOrigins }
func (c *Config) GetStaticDir() string     { return c.StaticDir }

// GeneratorConfig implementation
func (c *Config) GetGeneratorProvider() string         { return c.GeneratorProvider }
func (c *Config) GetOpenAIAPIKey() string              { return c.OpenAIAPIKey }
func (c *Config) GetOpenAIBaseURL() string             { return c.OpenAIBaseURL }
func (c *Config) GetOpenAIModel() string               { return c.OpenAIModel }
func (c *Config) GetGeminiAPIKey() string              { return c.GeminiAPIKey }
func (c *Config) GetGeminiModel() string               { return c.GeminiModel }
func (c *Config) GetGenerationTimeout() time.Duration { return c.GenerationTimeout }

// HasGeneratorCredential reports whether the selected provider has an API key.
func (c *Config) HasGeneratorCredential() bool {
	switch c.GeneratorProvider {
	case ProviderGemini:
		return c.GeminiAPIKey != ""
	default:
		return c.OpenAIAPIKey != ""
	}
}

// StoreConfig implementation
func (c *Config) GetRedisURL() string         { return c.RedisURL }
func (c *Config) GetQuoteTTL() time.Duration { return c.QuoteTTL }
func (c *Config) IsRedisEnabled() bool        { return c.RedisURL != "" }

// ShareConfig implementation
func (c *Config) GetAppBaseURL() string { return c.AppBaseURL }

// IsDevelopment reports whether APP_ENV is development.
func (c *Config) IsDevelopment() bool { return strings.EqualFold(c.Env, "development") }

// Load reads configuration from environment variables, after loading a .env file
// when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	corsOrigins := splitCSV(getEnv("CORS_ORIGINS", "*"))
	corsAllowAll := strings.EqualFold(getEnv("CORS_ALLOW_ALL", "false"), "true")
	if len(corsOrigins) == 0 || containsWildcard(corsOrigins) {
		corsAllowAll = true
	}

	timeout, err := parseDuration("GENERATION_TIMEOUT", getEnv("GENERATION_TIMEOUT", "20s"))
	if err != nil {
		return nil, err
	}
	quoteTTL, err := parseDuration("QUOTE_TTL", getEnv("QUOTE_TTL", "0"))
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Env:               getEnv("APP_ENV", "development"),
		HTTPAddr:          getEnv("HTTP_ADDR", ":3001"),
		CORSAllowAll:      corsAllowAll,
		CORSOrigins:       corsOrigins,
		AppBaseURL:        strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:3001"), "/"),
		StaticDir:         getEnv("STATIC_DIR", ""),
		GeneratorProvider: strings.ToLower(strings.TrimSpace(getEnv("GENERATOR_PROVIDER", ProviderOpenAI))),
		OpenAIAPIKey:      getEnv("OPENAI_API_KEY", ""),
		OpenAIBaseURL:     getEnv("OPENAI_BASE_URL", "https://api.openai.com/v1"),
		OpenAIModel:       getEnv("OPENAI_MODEL", "gpt-4o-mini"),
		GeminiAPIKey:      getEnv("GEMINI_API_KEY", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
		GenerationTimeout: timeout,
		RedisURL:          getEnv("REDIS_URL", ""),
		QuoteTTL:          quoteTTL,
	}

	switch cfg.GeneratorProvider {
	case ProviderOpenAI, ProviderGemini:
	default:
		return nil, fmt.Errorf("GENERATOR_PROVIDER must be %q or %q, got %q", ProviderOpenAI, ProviderGemini, cfg.GeneratorProvider)
	}
	if cfg.GenerationTimeout <= 0 {
		return nil, fmt.Errorf("GENERATION_TIMEOUT must be positive")
	}
	if cfg.QuoteTTL < 0 {
		return nil, fmt.Errorf("QUOTE_TTL cannot be negative")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}

func parseDuration(key, value string) (time.Duration, error) {
	if value == "" || value == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid duration %q: %w", key, value, err)
	}
	return d, nil
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
