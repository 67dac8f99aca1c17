// Package app provides dependency injection container for assembling application components.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"github.com/google/uuid"

	"github.com/allisson/luhn/internal/config"
	luhnService "github.com/allisson/luhn/internal/luhn/service"
	luhnUseCase "github.com/allisson/luhn/internal/luhn/usecase"
	"github.com/allisson/luhn/internal/metrics"
)

// Container holds all application dependencies and provides methods to access them.
// It follows the lazy initialization pattern - components are created on first access.
type Container struct {
	// Configuration
	config *config.Config

	// Infrastructure
	logger          *slog.Logger
	logOutput       io.Writer
	runID           string
	metricsProvider *metrics.Provider
	businessMetrics metrics.BusinessMetrics

	// Services
	validator    luhnService.Validator
	rangeCounter luhnService.RangeCounter
	generator    luhnService.NumberGenerator

	// Use Cases
	luhnUseCase luhnUseCase.LuhnUseCase

	// Initialization flags and mutex for thread-safety
	mu                  sync.Mutex
	loggerInit          sync.Once
	metricsProviderInit sync.Once
	businessMetricsInit sync.Once
	validatorInit       sync.Once
	rangeCounterInit    sync.Once
	generatorInit       sync.Once
	luhnUseCaseInit     sync.Once
	initErrors          map[string]error
}

// NewContainer creates a new dependency injection container with the provided configuration.
func NewContainer(cfg *config.Config) *Container {
	return &Container{
		config:     cfg,
		logOutput:  os.Stderr,
		initErrors: make(map[string]error),
	}
}

// WithLogOutput redirects the logger to w. It must be called before Logger.
func (c *Container) WithLogOutput(w io.Writer) *Container {
	c.logOutput = w
	return c
}

// Config returns the application configuration.
func (c *Container) Config() *config.Config {
	return c.config
}

// RunID returns the identifier attached to every log line of this run.
func (c *Container) RunID() string {
	c.Logger()
	return c.runID
}

// Logger returns the configured logger instance.
// It creates a new logger on first access based on the log level in configuration.
func (c *Container) Logger() *slog.Logger {
	c.loggerInit.Do(func() {
		c.logger = c.initLogger()
	})
	return c.logger
}

// MetricsProvider returns the metrics provider, or nil when metrics are disabled.
func (c *Container) MetricsProvider() (*metrics.Provider, error) {
	var err error
	c.metricsProviderInit.Do(func() {
		c.metricsProvider, err = c.initMetricsProvider()
		if err != nil {
			c.initErrors["metricsProvider"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["metricsProvider"]; exists {
		return nil, storedErr
	}
	return c.metricsProvider, nil
}

// BusinessMetrics returns the business metrics recorder, a no-op when metrics are disabled.
func (c *Container) BusinessMetrics() (metrics.BusinessMetrics, error) {
	var err error
	c.businessMetricsInit.Do(func() {
		c.businessMetrics, err = c.initBusinessMetrics()
		if err != nil {
			c.initErrors["businessMetrics"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["businessMetrics"]; exists {
		return nil, storedErr
	}
	return c.businessMetrics, nil
}

// Validator returns the card number validator.
func (c *Container) Validator() luhnService.Validator {
	c.validatorInit.Do(func() {
		c.validator = luhnService.NewValidator(c.config.RequireIssuer)
	})
	return c.validator
}

// RangeCounter returns the parallel range counter.
func (c *Container) RangeCounter() luhnService.RangeCounter {
	c.rangeCounterInit.Do(func() {
		c.rangeCounter = luhnService.NewRangeCounter(
			c.Validator(),
			c.config.RangeWorkers,
			uint64(max(c.config.RangeChunkSize, 1)),
		)
	})
	return c.rangeCounter
}

// NumberGenerator returns the test card number generator.
func (c *Container) NumberGenerator() luhnService.NumberGenerator {
	c.generatorInit.Do(func() {
		c.generator = luhnService.NewNumberGenerator()
	})
	return c.generator
}

// LuhnUseCase returns the luhn use case, decorated with metrics when enabled.
func (c *Container) LuhnUseCase() (luhnUseCase.LuhnUseCase, error) {
	var err error
	c.luhnUseCaseInit.Do(func() {
		c.luhnUseCase, err = c.initLuhnUseCase()
		if err != nil {
			c.initErrors["luhnUseCase"] = err
		}
	})
	if err != nil {
		return nil, err
	}
	if storedErr, exists := c.initErrors["luhnUseCase"]; exists {
		return nil, storedErr
	}
	return c.luhnUseCase, nil
}

// Shutdown performs cleanup of all initialized resources.
// When a metrics textfile is configured, the metrics are written before the
// provider is shut down.
func (c *Container) Shutdown(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	var shutdownErrors []error

	if c.metricsProvider != nil {
		if path := c.config.MetricsTextfile; path != "" {
			if err := c.metricsProvider.WriteTextfile(path); err != nil {
				shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics export: %w", err))
			}
		}
		if err := c.metricsProvider.Shutdown(ctx); err != nil {
			shutdownErrors = append(shutdownErrors, fmt.Errorf("metrics provider shutdown: %w", err))
		}
	}

	if len(shutdownErrors) > 0 {
		return fmt.Errorf("shutdown errors: %v", shutdownErrors)
	}

	return nil
}

// initLogger creates a JSON logger tagged with a fresh run identifier.
func (c *Container) initLogger() *slog.Logger {
	var logLevel slog.Level
	switch c.config.LogLevel {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(c.logOutput, &slog.HandlerOptions{
		Level: logLevel,
	})

	runID, err := uuid.NewV7()
	if err != nil {
		runID = uuid.New()
	}
	c.runID = runID.String()

	return slog.New(handler).With(slog.String("run_id", c.runID))
}

// initMetricsProvider creates the Prometheus-backed provider when metrics are enabled.
func (c *Container) initMetricsProvider() (*metrics.Provider, error) {
	if !c.config.MetricsEnabled {
		return nil, nil
	}

	provider, err := metrics.NewProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to create metrics provider: %w", err)
	}
	return provider, nil
}

// initBusinessMetrics creates the business metrics recorder.
func (c *Container) initBusinessMetrics() (metrics.BusinessMetrics, error) {
	provider, err := c.MetricsProvider()
	if err != nil {
		return nil, fmt.Errorf("failed to get metrics provider for business metrics: %w", err)
	}
	if provider == nil {
		return metrics.NewNoOpBusinessMetrics(), nil
	}

	return metrics.NewBusinessMetrics(provider.MeterProvider(), c.config.MetricsNamespace)
}

// initLuhnUseCase assembles the luhn use case from the services.
func (c *Container) initLuhnUseCase() (luhnUseCase.LuhnUseCase, error) {
	useCase := luhnUseCase.NewLuhnUseCase(
		c.Validator(),
		c.RangeCounter(),
		c.NumberGenerator(),
		c.Logger(),
	)

	if !c.config.MetricsEnabled {
		return useCase, nil
	}

	businessMetrics, err := c.BusinessMetrics()
	if err != nil {
		return nil, fmt.Errorf("failed to get business metrics for luhn use case: %w", err)
	}

	return luhnUseCase.NewLuhnUseCaseWithMetrics(useCase, businessMetrics), nil
}
