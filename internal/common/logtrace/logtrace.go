// Package logtrace provides logging initialization and request tracing
// helpers. It integrates with zerolog for structured logging and carries
// the per-request ID through the context.
package logtrace

import (
	"context"
	"os"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// requestIdContextKey is a custom type for the request ID context key.
type requestIdContextKey string

const requestIdKey = requestIdContextKey("requestId")

// InitLogger initializes the global logger with Unix millisecond timestamps
// writing to stderr.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnixMs
	log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
}

// WithRequestId returns a context carrying the given request ID.
func WithRequestId(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIdKey, requestID)
}

// RequestIdFromContext extracts the request ID from the context.
// Returns an empty string if the context is nil or carries no request ID.
func RequestIdFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	r, ok := ctx.Value(requestIdKey).(string)
	if !ok {
		return ""
	}
	return r
}
