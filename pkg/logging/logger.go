// Package logging configures structured logging with zerolog.
//
// In TUI mode stderr belongs to the terminal renderer, so logs are written
// to a file (or discarded) instead.
package logging

import (
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogLevel represents the logging level.
type LogLevel string

const (
	// LevelDebug logs debug messages and above.
	LevelDebug LogLevel = "debug"

	// LevelInfo logs info messages and above.
	LevelInfo LogLevel = "info"

	// LevelWarn logs warning messages and above.
	LevelWarn LogLevel = "warn"

	// LevelError logs error messages only.
	LevelError LogLevel = "error"
)

// Config holds logger configuration.
type Config struct {
	// Level is the minimum log level to output.
	Level LogLevel

	// Pretty enables human-readable console output (default: false for JSON).
	Pretty bool

	// Output is the writer to output logs to (default: os.Stderr).
	Output io.Writer
}

// DefaultConfig returns a default logger configuration.
func DefaultConfig() Config {
	return Config{
		Level:  LevelInfo,
		Pretty: false,
		Output: os.Stderr,
	}
}

// Setup configures the global zerolog logger and returns it.
func Setup(cfg Config) zerolog.Logger {
	zerolog.SetGlobalLevel(parseLevel(cfg.Level))

	var output io.Writer = cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if cfg.Pretty {
		output = zerolog.ConsoleWriter{Out: output}
	}

	logger := zerolog.New(output).With().Timestamp().Logger()
	log.Logger = logger
	return logger
}

// SetupFile configures the global logger to write to the named file,
// creating it if necessary. An empty path discards all output, which is the
// default for interactive sessions.
func SetupFile(path string, level LogLevel) (zerolog.Logger, error) {
	if path == "" {
		return Setup(Config{Level: level, Output: io.Discard}), nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return zerolog.Nop(), err
	}
	return Setup(Config{Level: level, Output: f}), nil
}

// parseLevel converts LogLevel to zerolog.Level.
func parseLevel(level LogLevel) zerolog.Level {
	switch strings.ToLower(string(level)) {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

// NewLogger creates a logger tagged with the given component name.
func NewLogger(component string) zerolog.Logger {
	return log.With().Str("component", component).Logger()
}

// Log Level Guidelines:
//
// Debug: Detailed information for debugging
//   - Cache lookups (hit/miss, alias key)
//   - Batch fetch progress and per-key drops
//   - Query state transitions
//
// Info: Normal operation events
//   - Query submissions and page loads
//   - Startup/shutdown
//
// Warn: Conditions that don't prevent operation
//   - Per-identifier fetch failures inside a batch
//   - Non-success API responses
//
// Error: Conditions requiring attention
//   - Page-level load failures
//   - Startup failures (category filter unavailable)
//
// Context Fields:
//   - endpoint: logical API endpoint (listing, category, detail, categories)
//   - status: HTTP status code
//   - key: entity identifier as looked up
//   - mode: active query mode (list, category, search)
//   - gen: query generation id
