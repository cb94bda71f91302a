package logging

import (
	"io"
	"log/slog"
	"os"
)

// LogLevel is a thin enum for user friendly level configuration decoupled
// from slog.
type LogLevel int

const (
	// LogLevelDebug is the debug logging level.
	LogLevelDebug LogLevel = iota
	// LogLevelInfo is the informational logging level.
	LogLevelInfo
	// LogLevelWarn is the warning logging level.
	LogLevelWarn
	// LogLevelError is the error logging level.
	LogLevelError
)

// String returns the string representation of the log level.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func slogLevel(l LogLevel) slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger defines the minimal logging interface the pipeline depends on.
// Users provide their own implementation or use the built-in adapters.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter wraps *slog.Logger to implement the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// NewSlogAdapter creates a Logger from *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger creates a Logger using slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// Config configures construction of a MeshLogger.
type Config struct {
	Level     LogLevel
	Format    string // json or text
	Output    io.Writer
	AddSource bool
}

// DefaultConfig returns a baseline text info level configuration writing to
// stderr, suitable for command-line simulation drivers.
func DefaultConfig() *Config {
	return &Config{Level: LogLevelInfo, Format: "text", Output: os.Stderr}
}

// NewLogger builds a MeshLogger from a config (or defaults if nil).
func NewLogger(cfg *Config) *MeshLogger {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	opts := &slog.HandlerOptions{Level: slogLevel(cfg.Level), AddSource: cfg.AddSource}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(cfg.Output, opts)
	} else {
		handler = slog.NewTextHandler(cfg.Output, opts)
	}
	return &MeshLogger{logger: slog.New(handler)}
}

// NewSlogLogger creates a MeshLogger with the given level and format,
// keeping the common case a one-liner.
func NewSlogLogger(level LogLevel, format string) *MeshLogger {
	cfg := DefaultConfig()
	cfg.Level = level
	if format != "" {
		cfg.Format = format
	}
	return NewLogger(cfg)
}

// MeshLogger wraps slog.Logger adding contextual cloning helpers and domain
// convenience methods for the meshing pipeline. It is cheap to copy via
// With* methods.
type MeshLogger struct {
	logger *slog.Logger
}

// WithComponent returns a logger that attaches the logical component
// (builder, refiner, tagger, ...) to every entry.
func (l *MeshLogger) WithComponent(c string) *MeshLogger {
	return &MeshLogger{logger: l.logger.With(slog.String("component", c))}
}

// WithBuild returns a logger that attaches the pipeline build id to every
// entry.
func (l *MeshLogger) WithBuild(id string) *MeshLogger {
	return &MeshLogger{logger: l.logger.With(slog.String("build_id", id))}
}

// Debug logs at debug level.
func (l *MeshLogger) Debug(msg string, args ...any) { l.logger.Debug(msg, args...) }

// Info logs at info level.
func (l *MeshLogger) Info(msg string, args ...any) { l.logger.Info(msg, args...) }

// Warn logs at warn level.
func (l *MeshLogger) Warn(msg string, args ...any) { l.logger.Warn(msg, args...) }

// Error logs at error level.
func (l *MeshLogger) Error(msg string, args ...any) { l.logger.Error(msg, args...) }

// LogRefinementPass records one bisection pass of the refinement loop.
func (l *MeshLogger) LogRefinementPass(x float64, pass, bisected, cells int) {
	l.logger.Info("refinement pass completed",
		slog.Float64("x", x),
		slog.Int("pass", pass),
		slog.Int("bisected", bisected),
		slog.Int("cells", cells))
}

// LogMeshLoaded records a successful external mesh or marker load.
func (l *MeshLogger) LogMeshLoaded(file string, cells int) {
	l.logger.Info("loaded mesh", slog.String("file", file), slog.Int("cells", cells))
}

// LogTagSummary records the outcome of the tagging pass.
func (l *MeshLogger) LogTagSummary(materials, cells, facets int) {
	l.logger.Info("tagged mesh entities",
		slog.Int("materials", materials),
		slog.Int("cells", cells),
		slog.Int("facets", facets))
}

// NoOpLogger discards all log messages. Useful for testing or when logging
// is disabled.
type NoOpLogger struct{}

// Debug logs a debug message.
func (NoOpLogger) Debug(string, ...any) {}

// Info logs an informational message.
func (NoOpLogger) Info(string, ...any) {}

// Warn logs a warning message.
func (NoOpLogger) Warn(string, ...any) {}

// Error logs an error message.
func (NoOpLogger) Error(string, ...any) {}
