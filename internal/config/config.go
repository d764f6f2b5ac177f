package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Logger   LoggerConfig
	Auth     AuthConfig
	Cart     CartConfig
	CRM      CRMConfig
	Notify   NotifyConfig
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database-related configuration.
type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Database        string
	MaxConnections  int
	MinConnections  int
	MaxConnLifetime int // seconds
}

// LoggerConfig holds logger-related configuration.
type LoggerConfig struct {
	Level  string
	Format string // "json" or "console"
}

// AuthConfig holds authentication configuration. An empty API key
// disables authentication, for local development.
type AuthConfig struct {
	APIKey string
}

// CartConfig selects the cart persistence backend: "postgres" shares the
// database pool, "file" keeps a local JSON file.
type CartConfig struct {
	Backend  string
	Key      string // cart row key for the postgres backend
	FilePath string // cart file for the file backend
}

// CRMConfig holds the Service Fusion integration settings. An empty base
// URL disables the integration.
type CRMConfig struct {
	BaseURL      string
	ClientID     string
	ClientSecret string
	Timeout      time.Duration
}

// NotifyConfig holds the booking confirmation webhook settings. An empty
// webhook URL disables confirmations.
type NotifyConfig struct {
	WebhookURL string
	ToEmail    string
	Timeout    time.Duration
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:            getEnv("DB_HOST", "localhost"),
			Port:            getEnvAsInt("DB_PORT", 5432),
			User:            getEnv("DB_USER", "postgres"),
			Password:        getEnv("DB_PASSWORD", ""),
			Database:        getEnv("DB_NAME", "voltly"),
			MaxConnections:  getEnvAsInt("DB_MAX_CONNECTIONS", 25),
			MinConnections:  getEnvAsInt("DB_MIN_CONNECTIONS", 5),
			MaxConnLifetime: getEnvAsInt("DB_MAX_CONN_LIFETIME", 300),
		},
		Logger: LoggerConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Auth: AuthConfig{
			APIKey: getEnv("API_KEY", ""),
		},
		Cart: CartConfig{
			Backend:  getEnv("CART_BACKEND", "postgres"),
			Key:      getEnv("CART_KEY", "default"),
			FilePath: getEnv("CART_FILE", "data/cart.json"),
		},
		CRM: CRMConfig{
			BaseURL:      getEnv("CRM_BASE_URL", ""),
			ClientID:     getEnv("CRM_CLIENT_ID", ""),
			ClientSecret: getEnv("CRM_CLIENT_SECRET", ""),
			Timeout:      time.Duration(getEnvAsInt("CRM_TIMEOUT_SECONDS", 10)) * time.Second,
		},
		Notify: NotifyConfig{
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
			ToEmail:    getEnv("NOTIFY_TO_EMAIL", ""),
			Timeout:    time.Duration(getEnvAsInt("NOTIFY_TIMEOUT_SECONDS", 10)) * time.Second,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return cfg, nil
}

// Validate validates the configuration.
func (c *Config) Validate() error {
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}

	if c.Database.Host == "" {
		return fmt.Errorf("database host is required")
	}

	if c.Database.Port < 1 || c.Database.Port > 65535 {
		return fmt.Errorf("invalid database port: %d", c.Database.Port)
	}

	if c.Database.User == "" {
		return fmt.Errorf("database user is required")
	}

	if c.Database.Database == "" {
		return fmt.Errorf("database name is required")
	}

	if c.Database.MaxConnections < 1 {
		return fmt.Errorf("database max connections must be at least 1")
	}

	if c.Database.MinConnections < 1 {
		return fmt.Errorf("database min connections must be at least 1")
	}

	if c.Database.MinConnections > c.Database.MaxConnections {
		return fmt.Errorf("database min connections cannot exceed max connections")
	}

	if c.Cart.Backend != "postgres" && c.Cart.Backend != "file" {
		return fmt.Errorf("invalid cart backend: %s (must be postgres or file)", c.Cart.Backend)
	}

	if c.Cart.Backend == "postgres" && c.Cart.Key == "" {
		return fmt.Errorf("cart key is required for the postgres backend")
	}

	if c.Cart.Backend == "file" && c.Cart.FilePath == "" {
		return fmt.Errorf("cart file path is required for the file backend")
	}

	if c.CRM.BaseURL != "" {
		if c.CRM.ClientID == "" || c.CRM.ClientSecret == "" {
			return fmt.Errorf("CRM client ID and secret are required when a CRM base URL is set")
		}
	}

	if c.Notify.WebhookURL != "" && c.Notify.ToEmail == "" {
		return fmt.Errorf("notify recipient email is required when a webhook URL is set")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}

	if !validLogLevels[c.Logger.Level] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.Logger.Level)
	}

	if c.Logger.Format != "json" && c.Logger.Format != "console" {
		return fmt.Errorf("invalid log format: %s (must be json or console)", c.Logger.Format)
	}

	return nil
}

// ConnectionString returns the PostgreSQL connection string.
func (c *DatabaseConfig) ConnectionString() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.User,
		c.Password,
		c.Host,
		c.Port,
		c.Database,
	)
}

// Address returns the server address.
func (c *ServerConfig) Address() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value.
func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
