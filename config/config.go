package config

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"simplehr.com/simplehr/core"
	"simplehr.com/simplehr/infrastructure/devops"
	"simplehr.com/simplehr/integrations/quickbooks"
)

const DevSecretKey = "dev-secret-key-change-me"

type Config struct {
	Addr             string
	SecretKey        string
	DSN              string
	DBMaxConnections int
	DBLogLevel       core.LogLevel
	CookieSecure     bool

	SeedAdminEmail    string
	SeedAdminPassword string

	QuickBooks quickbooks.Config

	ResumeBucket string
	ResumeDir    string

	SlackBotToken     string
	SlackInfoChannel  string
	SlackErrorChannel string

	MailFrom string

	SecretsParameter string
}

// Load reads the environment, after a .env file if one is present, and
// overlays secrets from SSM when SSM_SECRETS_PARAMETER is set.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg, err := FromEnv()
	if err != nil {
		return cfg, err
	}

	if cfg.SecretsParameter != "" {
		secrets, err := devops.LoadSecrets(context.Background(), cfg.SecretsParameter)
		if err != nil {
			return cfg, fmt.Errorf("load secrets %s: %w", cfg.SecretsParameter, err)
		}
		cfg.ApplySecrets(secrets)
	}

	if cfg.SecretKey == DevSecretKey {
		log.Println("WARNING: SECRET_KEY is not set, using the development key")
	}
	return cfg, nil
}

// FromEnv builds a Config from environment variables only.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:              getEnv("APP_ADDR", "0.0.0.0:8090"),
		SecretKey:         getEnv("SECRET_KEY", DevSecretKey),
		DSN:               getEnv("DSN", "sqlite:hr_app.db"),
		SeedAdminEmail:    getEnv("SEED_ADMIN_EMAIL", "admin@example.com"),
		SeedAdminPassword: getEnv("SEED_ADMIN_PASSWORD", "admin123"),
		QuickBooks: quickbooks.Config{
			ClientID:     os.Getenv("QB_CLIENT_ID"),
			ClientSecret: os.Getenv("QB_CLIENT_SECRET"),
			RedirectURI:  os.Getenv("QB_REDIRECT_URI"),
			Environment:  getEnv("QB_ENVIRONMENT", "sandbox"),
		},
		ResumeBucket:      os.Getenv("RESUME_BUCKET"),
		ResumeDir:         getEnv("RESUME_DIR", "uploads"),
		SlackBotToken:     os.Getenv("SLACK_BOT_TOKEN"),
		SlackInfoChannel:  os.Getenv("SLACK_INFO_CHANNEL"),
		SlackErrorChannel: os.Getenv("SLACK_ERROR_CHANNEL"),
		MailFrom:          os.Getenv("MAIL_FROM"),
		SecretsParameter:  os.Getenv("SSM_SECRETS_PARAMETER"),
	}

	var err error
	if cfg.DBMaxConnections, err = getEnvInt("DB_MAX_CONNECTIONS", 10); err != nil {
		return cfg, err
	}
	if cfg.CookieSecure, err = getEnvBool("COOKIE_SECURE", false); err != nil {
		return cfg, err
	}
	if cfg.DBLogLevel, err = core.ParseLogLevel(getEnv("DB_LOG_LEVEL", "warn")); err != nil {
		return cfg, fmt.Errorf("DB_LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

// ApplySecrets overrides settings with the non-empty values in s.
func (c *Config) ApplySecrets(s *devops.Secrets) {
	if s.SecretKey != "" {
		c.SecretKey = s.SecretKey
	}
	if s.DSN != "" {
		c.DSN = s.DSN
	}
	if s.QuickBooksSecret != "" {
		c.QuickBooks.ClientSecret = s.QuickBooksSecret
	}
	if s.SlackBotToken != "" {
		c.SlackBotToken = s.SlackBotToken
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	return value
}

func getEnvInt(key string, fallback int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: invalid integer %q", key, value)
	}
	return parsed, nil
}

func getEnvBool(key string, fallback bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%s: invalid boolean %q", key, value)
	}
	return parsed, nil
}
