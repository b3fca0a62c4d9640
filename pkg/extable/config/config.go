// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/ukaji3/extable-go/internal/logging"
)

// DefaultExcelFile is the workbook read when EXCEL_FILE is not set.
const DefaultExcelFile = "/Data/capbudg.xlsx"

// Config represents the complete application configuration
type Config struct {
	Data   DataConfig
	Server ServerConfig
	Log    LogConfig
}

// DataConfig holds the workbook source.
type DataConfig struct {
	ExcelFile string
	Sheets    []string
}

// ServerConfig holds web server settings
type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string
}

// LoadDotEnv reads the given .env files (default ".env") into the process
// environment. Missing files are not an error.
func LoadDotEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	var existing []string
	for _, f := range files {
		if _, err := os.Stat(f); err == nil {
			existing = append(existing, f)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	return godotenv.Load(existing...)
}

// Load reads configuration from environment variables and validates it
func Load() (*Config, error) {
	cfg := &Config{
		Data: DataConfig{
			ExcelFile: getEnvOrDefault("EXCEL_FILE", DefaultExcelFile),
			Sheets:    splitList(os.Getenv("EXCEL_SHEETS")),
		},
		Server: ServerConfig{
			Port:            getEnvOrDefault("PORT", "9090"),
			GinMode:         getEnvOrDefault("GIN_MODE", gin.ReleaseMode),
			ShutdownTimeout: getEnvDurationOrDefault("SHUTDOWN_TIMEOUT", 5*time.Second),
		},
		Log: LogConfig{
			Level: getEnvOrDefault("LOG_LEVEL", "INFO"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks field values.
func (c *Config) Validate() error {
	if c.Data.ExcelFile == "" {
		return fmt.Errorf("config: excel file is required")
	}
	if c.Server.Port == "" {
		return fmt.Errorf("config: port is required")
	}
	if _, err := strconv.ParseUint(c.Server.Port, 10, 16); err != nil {
		return fmt.Errorf("config: invalid port %q", c.Server.Port)
	}
	switch c.Server.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return fmt.Errorf("config: invalid gin mode %q", c.Server.GinMode)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("config: shutdown timeout must be positive")
	}
	if _, ok := logging.ParseLevel(c.Log.Level); !ok {
		return fmt.Errorf("config: invalid log level %q", c.Log.Level)
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Server.Port
}

// Logger builds a logger at the configured level writing to stderr.
func (c *Config) Logger() *logging.Logger {
	level, _ := logging.ParseLevel(c.Log.Level)
	return logging.New(os.Stderr, level)
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
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

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
