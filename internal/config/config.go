// Package config provides application configuration through environment variables.
package config

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/allisson/go-env"
	validation "github.com/jellydator/validation"
	"github.com/joho/godotenv"

	customValidation "github.com/allisson/luhn/internal/validation"
)

// Config holds all application configuration.
type Config struct {
	// LogLevel is the logging level (e.g., "debug", "info", "warn", "error").
	LogLevel string

	// RequireIssuer makes validation also require a matching issuer rule.
	RequireIssuer bool

	// RangeWorkers is the number of goroutines scanning a range concurrently.
	RangeWorkers int
	// RangeChunkSize is the number of integers each range worker scans per task.
	RangeChunkSize int

	// MetricsEnabled indicates whether metrics collection is enabled.
	MetricsEnabled bool
	// MetricsNamespace is the namespace for the application metrics.
	MetricsNamespace string
	// MetricsTextfile is the path the metrics are written to when a command ends.
	// Empty disables the export.
	MetricsTextfile string
}

// Load loads configuration from environment variables and .env file.
func Load() *Config {
	// Try to load .env file recursively
	loadDotEnv()

	return &Config{
		// Logging
		LogLevel: env.GetString("LOG_LEVEL", "info"),

		// Validation
		RequireIssuer: env.GetBool("LUHN_REQUIRE_ISSUER", false),

		// Range counting
		RangeWorkers:   env.GetInt("RANGE_WORKERS", runtime.NumCPU()),
		RangeChunkSize: env.GetInt("RANGE_CHUNK_SIZE", 65536),

		// Metrics
		MetricsEnabled:   env.GetBool("METRICS_ENABLED", false),
		MetricsNamespace: env.GetString("METRICS_NAMESPACE", "luhn"),
		MetricsTextfile:  env.GetString("METRICS_TEXTFILE", ""),
	}
}

// Validate checks that the configuration values are usable.
func (c *Config) Validate() error {
	err := validation.ValidateStruct(c,
		validation.Field(&c.LogLevel,
			validation.Required,
			validation.In("debug", "info", "warn", "error"),
		),
		validation.Field(&c.RangeWorkers, validation.Required, validation.Min(1)),
		validation.Field(&c.RangeChunkSize, validation.Required, validation.Min(1)),
		validation.Field(&c.MetricsNamespace,
			validation.When(c.MetricsEnabled, validation.Required, customValidation.MetricName),
		),
	)
	return customValidation.WrapValidationError(err)
}

// loadDotEnv searches for a .env file recursively from the current directory
// up to the root directory and loads it if found.
func loadDotEnv() {
	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	dir := cwd
	for {
		envPath := filepath.Join(dir, ".env")
		if _, err := os.Stat(envPath); err == nil {
			_ = godotenv.Load(envPath)
			return
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
}
