package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"taskflow.app/server/core/db"
)

type Config struct {
	Env       string
	Port      string
	OTel      OTelConfig
	DB        db.Config
	Redis     RedisConfig
	IMAP      IMAPConfig
	Slack     SlackConfig
	Bootstrap BootstrapConfig
	Ingest    IngestConfig
}

type OTelConfig struct {
	Endpoint       string
	Headers        string
	ServiceName    string
	ServiceVersion string
}

// RedisConfig drives the optional notification stream mirror.
type RedisConfig struct {
	URL    string
	Stream string
}

// IMAPConfig drives email ingestion. Addr is host:port for an implicit-TLS
// IMAP endpoint.
type IMAPConfig struct {
	Addr        string
	Username    string
	Password    string
	Mailbox     string
	WorkspaceID int64
}

type SlackConfig struct {
	Token       string
	ChannelID   string
	WorkspaceID int64
}

type BootstrapConfig struct {
	AdminUsername string
	AdminPassword string
}

type IngestConfig struct {
	Interval time.Duration
}

// Load loads configuration from environment variables. In development it
// reads .env first, so a local file can stand in for real env.
func Load() (Config, error) {
	if getEnv("TASKFLOW_ENV", "development") == "development" {
		_ = godotenv.Load(".env")
	}

	cfg := Config{
		Env:  getEnv("TASKFLOW_ENV", "development"),
		Port: getEnv("PORT", "8080"),
		OTel: OTelConfig{
			Endpoint:       getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
			Headers:        getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""),
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "taskflow-server"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "dev"),
		},
		DB: db.Config{
			DSN:      getEnv("DATABASE_URL", ""),
			MaxConns: getEnvInt32("DB_MAX_CONNS", 10),
			MinConns: getEnvInt32("DB_MIN_CONNS", 2),
		},
		Redis: RedisConfig{
			URL:    getEnv("REDIS_URL", ""),
			Stream: getEnv("REDIS_STREAM", "taskflow_notifications"),
		},
		IMAP: IMAPConfig{
			Addr:        getEnv("IMAP_ADDR", ""),
			Username:    getEnv("IMAP_USERNAME", ""),
			Password:    getEnv("IMAP_PASSWORD", ""),
			Mailbox:     getEnv("IMAP_MAILBOX", "INBOX"),
			WorkspaceID: getEnvInt64("IMAP_WORKSPACE_ID", 1),
		},
		Slack: SlackConfig{
			Token:       getEnv("SLACK_TOKEN", ""),
			ChannelID:   getEnv("SLACK_CHANNEL_ID", ""),
			WorkspaceID: getEnvInt64("SLACK_WORKSPACE_ID", 1),
		},
		Bootstrap: BootstrapConfig{
			AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		},
		Ingest: IngestConfig{
			Interval: getEnvDuration("INGEST_INTERVAL", 60*time.Second),
		},
	}

	if cfg.Env == "production" && cfg.Bootstrap.AdminPassword == "" {
		return Config{}, fmt.Errorf("ADMIN_PASSWORD is required in production")
	}

	return cfg, nil
}

func (c Config) IsProduction() bool {
	return c.Env == "production"
}

func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

func (c OTelConfig) Enabled() bool {
	return c.Endpoint != ""
}

// DatabaseEnabled reports whether a durable Postgres backend is configured.
// Without it the server runs on the in-memory store.
func (c Config) DatabaseEnabled() bool {
	return c.DB.DSN != ""
}

func (c RedisConfig) Enabled() bool {
	return c.URL != ""
}

func (c IMAPConfig) Enabled() bool {
	return c.Addr != "" && c.Username != ""
}

func (c SlackConfig) Enabled() bool {
	return c.Token != "" && c.ChannelID != ""
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt32(key string, fallback int32) int32 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(i)
		}
	}
	return fallback
}

func getEnvInt64(key string, fallback int64) int64 {
	if value, ok := os.LookupEnv(key); ok {
		if i, err := strconv.ParseInt(value, 10, 64); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
