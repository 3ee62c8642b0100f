package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	NotifyResend = "resend"
	NotifySMTP   = "smtp"
	NotifyNone   = "none"
)

type Config struct {
	Database DatabaseConfig
	Source   SourceConfig
	Notify   NotifyConfig
	APIPort  string
	LogLevel string
}

type DatabaseConfig struct {
	Host     string
	Port     int
	Name     string
	User     string
	Password string
	SSLMode  string
	MaxConns int
	MinConns int
}

// Enabled reports whether persistence is configured
func (c DatabaseConfig) Enabled() bool {
	return c.Host != ""
}

type SourceConfig struct {
	URL       string
	UserAgent string
	Timeout   time.Duration
	RateLimit float64
}

type NotifyConfig struct {
	Provider     string
	From         string
	To           []string
	ResendAPIKey string
	ResendAPIURL string
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string

	// SMTPAllowNoAuth lets the SMTP sender retry without credentials when the relay does not offer AUTH
	SMTPAllowNoAuth bool
}

// Load reads configuration from the environment, after loading a .env file if present
func Load() *Config {
	if err := godotenv.Load(); err == nil {
		slog.Debug("loaded .env file")
	}

	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", ""),
			Port:     getEnvInt("DB_PORT", 5432),
			Name:     getEnv("DB_NAME", "inventory"),
			User:     getEnv("DB_USER", "inventory"),
			Password: getEnv("DB_PASSWORD", ""),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
			MaxConns: getEnvInt("DB_MAX_CONNS", 10),
			MinConns: getEnvInt("DB_MIN_CONNS", 2),
		},
		Source: SourceConfig{
			URL:       getEnv("SOURCE_URL", "https://www.pedersentoyota.com/searchused.aspx"),
			UserAgent: getEnv("SOURCE_USER_AGENT", ""),
			Timeout:   getEnvDuration("FETCH_TIMEOUT", 30*time.Second),
			RateLimit: getEnvFloat("FETCH_RATE_LIMIT", 0),
		},
		Notify: NotifyConfig{
			Provider:        strings.ToLower(getEnv("NOTIFY_PROVIDER", NotifyResend)),
			From:            getEnv("NOTIFY_FROM", "Vehicle Inquiries <onboarding@resend.dev>"),
			To:              getEnvList("NOTIFY_TO", []string{"jlee@pedersentoyota.com"}),
			ResendAPIKey:    getEnv("RESEND_API_KEY", ""),
			ResendAPIURL:    getEnv("RESEND_API_URL", "https://api.resend.com"),
			SMTPHost:        getEnv("SMTP_HOST", ""),
			SMTPPort:        getEnvInt("SMTP_PORT", 587),
			SMTPUsername:    getEnv("SMTP_USERNAME", ""),
			SMTPPassword:    getEnv("SMTP_PASSWORD", ""),
			SMTPAllowNoAuth: getEnvBool("SMTP_ALLOW_NO_AUTH", false),
		},
		APIPort:  getEnv("API_PORT", "8080"),
		LogLevel: getEnv("LOG_LEVEL", "info"),
	}
}

// Validate checks settings that must be present at startup
func (c *Config) Validate() error {
	var errs []error

	if c.Source.URL == "" {
		errs = append(errs, errors.New("SOURCE_URL is required"))
	}

	switch c.Notify.Provider {
	case NotifyResend:
		if c.Notify.ResendAPIKey == "" {
			errs = append(errs, errors.New("RESEND_API_KEY is required when NOTIFY_PROVIDER=resend"))
		}
	case NotifySMTP:
		if c.Notify.SMTPHost == "" {
			errs = append(errs, errors.New("SMTP_HOST is required when NOTIFY_PROVIDER=smtp"))
		}
	case NotifyNone:
	default:
		errs = append(errs, fmt.Errorf("unknown NOTIFY_PROVIDER %q", c.Notify.Provider))
	}

	if c.Notify.Provider != NotifyNone && len(c.Notify.To) == 0 {
		errs = append(errs, errors.New("NOTIFY_TO is required"))
	}

	return errors.Join(errs...)
}

// SlogLevel maps LogLevel to a slog level, defaulting to info
func (c *Config) SlogLevel() slog.Level {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil {
			return f
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
