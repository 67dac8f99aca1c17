package config

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/allisson/luhn/internal/errors"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		envVars  map[string]string
		validate func(t *testing.T, cfg *Config)
	}{
		{
			name:    "load default configuration",
			envVars: map[string]string{},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "info", cfg.LogLevel)
				assert.False(t, cfg.RequireIssuer)
				assert.Equal(t, runtime.NumCPU(), cfg.RangeWorkers)
				assert.Equal(t, 65536, cfg.RangeChunkSize)
				assert.False(t, cfg.MetricsEnabled)
				assert.Equal(t, "luhn", cfg.MetricsNamespace)
				assert.Equal(t, "", cfg.MetricsTextfile)
			},
		},
		{
			name: "load issuer requirement",
			envVars: map[string]string{
				"LUHN_REQUIRE_ISSUER": "true",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.RequireIssuer)
			},
		},
		{
			name: "load custom range configuration",
			envVars: map[string]string{
				"RANGE_WORKERS":    "3",
				"RANGE_CHUNK_SIZE": "1024",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, 3, cfg.RangeWorkers)
				assert.Equal(t, 1024, cfg.RangeChunkSize)
			},
		},
		{
			name: "load custom metrics configuration",
			envVars: map[string]string{
				"METRICS_ENABLED":   "true",
				"METRICS_NAMESPACE": "cards",
				"METRICS_TEXTFILE":  "/var/lib/node_exporter/luhn.prom",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.True(t, cfg.MetricsEnabled)
				assert.Equal(t, "cards", cfg.MetricsNamespace)
				assert.Equal(t, "/var/lib/node_exporter/luhn.prom", cfg.MetricsTextfile)
			},
		},
		{
			name: "load custom log level",
			envVars: map[string]string{
				"LOG_LEVEL": "debug",
			},
			validate: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "debug", cfg.LogLevel)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Clear environment
			os.Clearenv()

			for key, value := range tt.envVars {
				t.Setenv(key, value)
			}

			cfg := Load()
			tt.validate(t, cfg)
		})
	}
}

func TestLoad_DotEnv(t *testing.T) {
	os.Clearenv()

	dir := t.TempDir()
	nested := filepath.Join(dir, "nested")
	require.NoError(t, os.Mkdir(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("RANGE_WORKERS=7\n"), 0o600))

	t.Chdir(nested)
	t.Cleanup(func() { _ = os.Unsetenv("RANGE_WORKERS") })

	cfg := Load()
	assert.Equal(t, 7, cfg.RangeWorkers)
}

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			LogLevel:         "info",
			RangeWorkers:     4,
			RangeChunkSize:   1024,
			MetricsNamespace: "luhn",
		}
	}

	tests := []struct {
		name      string
		mutate    func(cfg *Config)
		shouldErr bool
	}{
		{name: "valid configuration", mutate: func(cfg *Config) {}, shouldErr: false},
		{name: "unknown log level", mutate: func(cfg *Config) { cfg.LogLevel = "trace" }, shouldErr: true},
		{name: "zero workers", mutate: func(cfg *Config) { cfg.RangeWorkers = 0 }, shouldErr: true},
		{name: "negative chunk size", mutate: func(cfg *Config) { cfg.RangeChunkSize = -1 }, shouldErr: true},
		{
			name: "bad namespace with metrics enabled",
			mutate: func(cfg *Config) {
				cfg.MetricsEnabled = true
				cfg.MetricsNamespace = "luhn-cli"
			},
			shouldErr: true,
		},
		{
			name: "bad namespace with metrics disabled",
			mutate: func(cfg *Config) {
				cfg.MetricsNamespace = "luhn-cli"
			},
			shouldErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.shouldErr {
				assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
