package config

import (
	"os"
	"strconv"
)

// Config holds application configuration
type Config struct {
	Database   DatabaseConfig
	Server     ServerConfig
	Auth       AuthConfig
	Escalation EscalationConfig
	Uploads    UploadConfig
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	DBName   string
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Port string
	Host string
}

// AuthConfig holds token signing and bootstrap account configuration
type AuthConfig struct {
	JWTSecret     string
	TokenHours    int    // session token lifetime in hours
	AdminEmail    string // ADMIN_EMAIL: bootstrap admin account (optional)
	AdminPassword string // ADMIN_PASSWORD: bootstrap admin password (optional)
}

// EscalationConfig holds the sweep schedule. Both values default to the
// production schedule; the overrides exist for staging and local testing.
type EscalationConfig struct {
	IntervalHours   int // ESCALATION_INTERVAL_HOURS: hours between sweeps (default 24)
	StaleAfterHours int // ESCALATION_STALE_AFTER_HOURS: age before a New complaint escalates (default 72)
}

// UploadConfig holds attachment storage configuration
type UploadConfig struct {
	BasePath string
}

// LoadConfig loads configuration from environment variables.
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: os.Getenv("DB_PASSWORD"),
			DBName:   getEnv("DB_NAME", "eduresolve"),
		},
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("PORT", getEnv("SERVER_PORT", "8080")),
		},
		Auth: AuthConfig{
			JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change-in-production"),
			TokenHours:    getEnvInt("JWT_TOKEN_HOURS", 24),
			AdminEmail:    os.Getenv("ADMIN_EMAIL"),
			AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		},
		Escalation: EscalationConfig{
			IntervalHours:   getEnvInt("ESCALATION_INTERVAL_HOURS", 24),
			StaleAfterHours: getEnvInt("ESCALATION_STALE_AFTER_HOURS", 72),
		},
		Uploads: UploadConfig{
			BasePath: getEnv("UPLOAD_BASE_PATH", "uploads"),
		},
	}
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt gets an integer environment variable or returns a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
