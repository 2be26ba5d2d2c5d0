package factory

import (
	"io"
	"log/slog"

	"github.com/mcoot/dategetter/internal/dateformat"
	"github.com/mcoot/dategetter/internal/dependencies/clock"
)

// App contains all wired application components
type App struct {
	// External dependencies
	Clock clock.Clock

	// Services
	Formatter *dateformat.Formatter

	Logger *slog.Logger
}

// Config holds configuration for the application factory
type Config struct {
	// Formatter selects the dialect and time zone (optional)
	// If zero value, defaults to dateformat.DefaultConfig()
	Formatter dateformat.Config
	// Clock supplies "now" (optional)
	// If nil, the system clock is used
	Clock clock.Clock
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
}

// New creates a new application with all dependencies wired
func New(cfg Config) *App {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	var clk clock.Clock = clock.New()
	if cfg.Clock != nil {
		clk = cfg.Clock
	}

	formatterCfg := cfg.Formatter
	if formatterCfg.Dialect == "" {
		formatterCfg.Dialect = dateformat.DefaultConfig().Dialect
	}

	return newWithDependencies(clk, formatterCfg, logger)
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(clk clock.Clock, formatterCfg dateformat.Config, logger *slog.Logger) *App {
	formatter := dateformat.New(clk, formatterCfg)

	logger.Debug("factory: formatter ready",
		slog.String("dialect", formatter.Dialect().String()),
		slog.String("timezone", formatter.Location().String()),
	)

	return &App{
		Clock:     clk,
		Formatter: formatter,
		Logger:    logger,
	}
}
