package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	Env  string // "production" hides error details in responses
	// SMTP Configuration
	SMTPHost      string
	SMTPPort      string
	SMTPUsername  string
	SMTPPassword  string
	SMTPFromEmail string // sender address shared by all form types
	// Delivery targets
	ContactEmailTo       string // operator inbox receiving every submission
	FallbackContactEmail string // shown to users when delivery fails
	// CORS
	AllowedOrigins []string
	// Redis (optional backend for the submission rate limiter)
	RedisURL      string
	RedisPassword string
	// Rate Limiting
	RateLimitWindowSeconds int
	RateLimitMaxRequests   int
	// Upper bound on a single SMTP send
	SendTimeoutSeconds int
}

// IsProduction reports whether diagnostic details must be withheld from clients.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnv("PORT", "5000"),
		Env:  getEnv("APP_ENV", "development"),
		// SMTP Configuration
		SMTPHost:      getEnv("SMTP_HOST", "smtp.jetlabco.com"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUsername:  getEnv("SMTP_USERNAME", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail: getEnv("SMTP_FROM_EMAIL", "info@jetlabco.com"),
		// Delivery targets
		ContactEmailTo:       getEnv("CONTACT_EMAIL_TO", "info@jetlabco.com"),
		FallbackContactEmail: getEnv("FALLBACK_CONTACT_EMAIL", "info@jetlabco.com"),
		// CORS
		AllowedOrigins: splitOrigins(getEnv("ALLOWED_ORIGINS", "https://jetlabco.com,https://www.jetlabco.com")),
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting (5 submissions per IP per 15 minutes)
		RateLimitWindowSeconds: getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 900),
		RateLimitMaxRequests:   getEnvInt("RATE_LIMIT_MAX_REQUESTS", 5),
		// SMTP send bound
		SendTimeoutSeconds: getEnvInt("SEND_TIMEOUT_SECONDS", 30),
	}

	if cfg.SMTPUsername == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP credentials are missing. Form submissions will fail to deliver.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory counters.")
	}

	return cfg, nil
}

// splitOrigins parses a comma-separated origin list, trimming whitespace and
// trailing slashes so "https://example.com/" matches the Origin header.
func splitOrigins(raw string) []string {
	var origins []string
	for _, o := range strings.Split(raw, ",") {
		o = strings.TrimRight(strings.TrimSpace(o), "/")
		if o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
