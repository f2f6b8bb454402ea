package config

import (
	"os"
	"strconv"
	"time"

	"underwrite/internal/errors"
)

// Config represents the complete application configuration
type Config struct {
	Database  DatabaseConfig
	Server    ServerConfig
	Audit     AuditConfig
	Export    ExportConfig
	Profiling ProfilingConfig
}

// DatabaseConfig holds database connection settings. URL may be empty, in
// which case the application falls back to the in-memory session store.
type DatabaseConfig struct {
	URL             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// ServerConfig holds API server settings
type ServerConfig struct {
	Port    string
	GinMode string
}

// AuditConfig holds audit console settings
type AuditConfig struct {
	Port    string
	Enabled bool
}

// ExportConfig holds report export settings
type ExportConfig struct {
	Dir string
}

// ProfilingConfig holds performance profiling settings
type ProfilingConfig struct {
	Port    string
	Enabled bool
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	config := &Config{
		Database:  loadDatabaseConfig(),
		Server:    loadServerConfig(),
		Audit:     loadAuditConfig(),
		Export:    loadExportConfig(),
		Profiling: loadProfilingConfig(),
	}

	if err := validateConfig(config); err != nil {
		return nil, errors.Wrap(err, "configuration validation failed")
	}

	return config, nil
}

func loadDatabaseConfig() DatabaseConfig {
	return DatabaseConfig{
		URL:             getEnvOrDefault("DATABASE_URL", ""),
		MaxOpenConns:    getEnvIntOrDefault("DB_MAX_OPEN_CONNS", 10),
		MaxIdleConns:    getEnvIntOrDefault("DB_MAX_IDLE_CONNS", 5),
		ConnMaxLifetime: getEnvDurationOrDefault("DB_CONN_MAX_LIFETIME", 30*time.Minute),
	}
}

func loadServerConfig() ServerConfig {
	return ServerConfig{
		Port:    getEnvOrDefault("PORT", "8080"),
		GinMode: getEnvOrDefault("GIN_MODE", "debug"),
	}
}

func loadAuditConfig() AuditConfig {
	return AuditConfig{
		Port:    getEnvOrDefault("AUDIT_PORT", "8081"),
		Enabled: getEnvBoolOrDefault("AUDIT_ENABLED", true),
	}
}

func loadExportConfig() ExportConfig {
	return ExportConfig{
		Dir: getEnvOrDefault("EXPORT_DIR", "./exports"),
	}
}

func loadProfilingConfig() ProfilingConfig {
	return ProfilingConfig{
		Port:    getEnvOrDefault("PPROF_PORT", "6060"),
		Enabled: getEnvBoolOrDefault("PPROF_ENABLED", false),
	}
}

func validateConfig(config *Config) error {
	if config.Server.Port == "" {
		return errors.ConfigInvalid("server port is required")
	}
	if config.Audit.Enabled && config.Audit.Port == "" {
		return errors.ConfigInvalid("audit port is required when the audit console is enabled")
	}
	if config.Audit.Enabled && config.Audit.Port == config.Server.Port {
		return errors.ConfigInvalid("audit port must differ from the server port")
	}
	return nil
}

// Helper functions for environment variable parsing
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
