package logging

import (
	"context"

	"github.com/rs/zerolog"
)

// contextKey is a custom type for context keys to avoid collisions.
type contextKey int

const (
	// loggerKey is the context key for the logger.
	loggerKey contextKey = iota
	// brandKey is the context key for the brand being reconciled.
	brandKey
)

// WithLogger adds a logger to the context.
func WithLogger(ctx context.Context, logger *zerolog.Logger) context.Context {
	if logger == nil {
		logger = Default()
	}
	return context.WithValue(ctx, loggerKey, logger)
}

// FromContext extracts the logger from context, or returns the default logger.
func FromContext(ctx context.Context) *zerolog.Logger {
	if ctx == nil {
		return Default()
	}

	if logger, ok := ctx.Value(loggerKey).(*zerolog.Logger); ok && logger != nil {
		return logger
	}

	return Default()
}

// Ctx returns a logger from the context or the default logger.
// This is a shorter alias for FromContext.
func Ctx(ctx context.Context) *zerolog.Logger {
	return FromContext(ctx)
}

// WithBrand adds a brand ID to the context and tags the context logger with it.
func WithBrand(ctx context.Context, brandID string) context.Context {
	ctx = context.WithValue(ctx, brandKey, brandID)

	logger := FromContext(ctx)
	newLogger := logger.With().Str("brand", brandID).Logger()
	return WithLogger(ctx, &newLogger)
}

// Brand extracts the brand ID from context.
func Brand(ctx context.Context) string {
	if id, ok := ctx.Value(brandKey).(string); ok {
		return id
	}
	return ""
}
