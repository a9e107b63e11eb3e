package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port    string `yaml:"port" env:"SERVER_PORT"`
		Mode    string `yaml:"mode" env:"SERVER_MODE"`
		BaseURL string `yaml:"base_url" env:"SERVER_BASE_URL"`
	} `yaml:"server"`

	Database struct {
		Host            string `yaml:"host" env:"DB_HOST"`
		Port            string `yaml:"port" env:"DB_PORT"`
		User            string `yaml:"user" env:"DB_USER"`
		Password        string `yaml:"password" env:"DB_PASSWORD"`
		DBName          string `yaml:"dbname" env:"DB_NAME"`
		SSLMode         string `yaml:"sslmode" env:"DB_SSLMODE"`
		MaxIdleConns    int    `yaml:"max_idle_conns" env:"DB_MAX_IDLE_CONNS"`
		MaxOpenConns    int    `yaml:"max_open_conns" env:"DB_MAX_OPEN_CONNS"`
		ConnMaxLifetime string `yaml:"conn_max_lifetime" env:"DB_CONN_MAX_LIFETIME"`
	} `yaml:"database"`

	MongoDB struct {
		URI    string `yaml:"uri" env:"MONGODB_URI"`
		DBName string `yaml:"dbname" env:"MONGODB_DB_NAME"`
	} `yaml:"mongodb"`

	Redis struct {
		Addr     string `yaml:"addr" env:"REDIS_ADDR"`
		QueueKey string `yaml:"queue_key" env:"REDIS_QUEUE_KEY"`
	} `yaml:"redis"`

	Auth struct {
		SessionSecret   string `yaml:"session_secret" env:"SESSION_SECRET"`
		SessionTTL      string `yaml:"session_ttl" env:"SESSION_TTL"`
		ResetTokenTTL   string `yaml:"reset_token_ttl" env:"RESET_TOKEN_TTL"`
		Issuer          string `yaml:"issuer" env:"AUTH_ISSUER"`
		SeedAdminEmail  string `yaml:"seed_admin_email" env:"SEED_ADMIN_EMAIL"`
		SeedAdminSecret string `yaml:"seed_admin_secret" env:"SEED_ADMIN_SECRET"`
	} `yaml:"auth"`

	SMTP struct {
		Host      string `yaml:"host" env:"SMTP_HOST"`
		Port      int    `yaml:"port" env:"SMTP_PORT"`
		Username  string `yaml:"username" env:"SMTP_USERNAME"`
		Password  string `yaml:"password" env:"SMTP_PASSWORD"`
		FromName  string `yaml:"from_name" env:"SMTP_FROM_NAME"`
		FromEmail string `yaml:"from_email" env:"SMTP_FROM_EMAIL"`
		UseTLS    bool   `yaml:"use_tls" env:"SMTP_USE_TLS"`
	} `yaml:"smtp"`

	Mail struct {
		QueueBackend string `yaml:"queue_backend" env:"MAIL_QUEUE_BACKEND"`
		QueueSize    int    `yaml:"queue_size" env:"MAIL_QUEUE_SIZE"`
	} `yaml:"mail"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// Config file is optional; env vars alone can configure the app
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		if err := yaml.Unmarshal(file, config); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "8080"
	config.Server.Mode = "development"
	config.Server.BaseURL = "http://localhost:8080"

	config.Database.Host = "localhost"
	config.Database.Port = "5432"
	config.Database.User = "postgres"
	config.Database.Password = "postgres"
	config.Database.DBName = "uap"
	config.Database.SSLMode = "disable"
	config.Database.MaxIdleConns = 5
	config.Database.MaxOpenConns = 20
	config.Database.ConnMaxLifetime = "1h"

	config.MongoDB.URI = "mongodb://localhost:27017"
	config.MongoDB.DBName = "uap_db"

	config.Redis.Addr = "localhost:6379"
	config.Redis.QueueKey = "uap:mail"

	config.Auth.SessionTTL = "12h"
	config.Auth.ResetTokenTTL = "1h"
	config.Auth.Issuer = "uap.academy"

	config.SMTP.Host = "smtp.gmail.com"
	config.SMTP.Port = 587
	config.SMTP.FromName = "Unified Academic Platform"
	config.SMTP.UseTLS = false

	config.Mail.QueueBackend = "memory"
	config.Mail.QueueSize = 256

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// loadFromEnv overrides configuration with environment variables
func loadFromEnv(config *Config) error {
	return processStructFields(config)
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if config.MongoDB.URI == "" {
		return fmt.Errorf("mongodb uri is required")
	}

	if config.Auth.SessionSecret == "" {
		return fmt.Errorf("session secret is required")
	}

	if _, err := time.ParseDuration(config.Auth.SessionTTL); err != nil {
		return fmt.Errorf("invalid session TTL format: %w", err)
	}

	if _, err := time.ParseDuration(config.Auth.ResetTokenTTL); err != nil {
		return fmt.Errorf("invalid reset token TTL format: %w", err)
	}

	return nil
}

// GetPostgresConnectionString returns postgres connection string
func (c *Config) GetPostgresConnectionString() string {
	sslMode := c.Database.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}

	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.Database.User,
		c.Database.Password,
		c.Database.Host,
		c.Database.Port,
		c.Database.DBName,
		sslMode,
	)
}

// SessionTTL returns the parsed session lifetime.
func (c *Config) SessionTTL() time.Duration {
	d, err := time.ParseDuration(c.Auth.SessionTTL)
	if err != nil {
		return 12 * time.Hour
	}
	return d
}

// ResetTokenTTL returns the parsed password reset token lifetime.
func (c *Config) ResetTokenTTL() time.Duration {
	d, err := time.ParseDuration(c.Auth.ResetTokenTTL)
	if err != nil {
		return time.Hour
	}
	return d
}
