// Package logger provides structured logging using zerolog.
// It supports JSON and console output formats with configurable log levels,
// and carries a request-scoped logger through context.Context.
package logger

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds the logger configuration options.
type Config struct {
	// Level is the minimum log level (debug, info, warn, error)
	Level string

	// Format is the output format (json, console)
	Format string

	// ServiceName is attached to every entry as the "service" field
	ServiceName string
}

// DefaultServiceName is used when Config.ServiceName is empty.
const DefaultServiceName = "flightprint-api"

// Logger wraps zerolog.Logger with domain-specific context helpers.
type Logger struct {
	zerolog.Logger
}

// New creates a Logger writing to stdout.
func New(cfg Config) *Logger {
	return NewWithOutput(cfg, os.Stdout)
}

// NewWithOutput creates a Logger writing to output. Unknown levels fall back to info.
func NewWithOutput(cfg Config, output io.Writer) *Logger {
	level, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		level = zerolog.InfoLevel
	}

	writer := output
	if cfg.Format == "console" {
		writer = zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339}
	}

	service := cfg.ServiceName
	if service == "" {
		service = DefaultServiceName
	}

	return &Logger{
		Logger: zerolog.New(writer).
			Level(level).
			With().
			Timestamp().
			Str("service", service).
			Logger(),
	}
}

// WithRequestID returns a logger tagged with the request ID.
func (l *Logger) WithRequestID(requestID string) *Logger {
	return &Logger{Logger: l.With().Str("request_id", requestID).Logger()}
}

// WithProvider returns a logger tagged with the flight provider name.
func (l *Logger) WithProvider(provider string) *Logger {
	return &Logger{Logger: l.With().Str("provider", provider).Logger()}
}

// Nop returns a disabled logger.
func Nop() *Logger {
	return &Logger{Logger: zerolog.Nop()}
}

// IntoContext stores l in ctx so downstream code logs with the same fields.
func IntoContext(ctx context.Context, l zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}

// FromContext returns the logger stored in ctx, or fallback when none was stored.
func FromContext(ctx context.Context, fallback zerolog.Logger) zerolog.Logger {
	if l := zerolog.Ctx(ctx); l != nil && l.GetLevel() != zerolog.Disabled {
		return *l
	}
	return fallback
}
