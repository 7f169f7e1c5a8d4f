// Package middleware provides HTTP middleware for request logging, timeout
// handling, and panic recovery. It integrates with zerolog for structured
// logging and supports request tracing through unique request IDs.
package middleware

import (
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/meeplehaven/viewsrv/internal/common/logtrace"
	"github.com/rs/zerolog/log"
)

// RequestIDHeader is the response header carrying the request ID.
const RequestIDHeader = "X-Viewsrv-Request-ID"

// RequestLogger logs incoming requests and adds a unique request ID to both
// the request context and the response headers. Downstream handlers log
// through log.Ctx(ctx) and inherit the request_id field.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ctx := r.Context()

		requestID := newRequestId()
		ctx = logtrace.WithRequestId(ctx, requestID)
		ctx = log.With().Str("request_id", requestID).Logger().WithContext(ctx)

		w.Header().Set(RequestIDHeader, requestID)

		requestFields := map[string]any{
			"requestMethod": r.Method,
			"requestPath":   r.URL.Path,
			"remoteIP":      r.RemoteAddr,
			"proto":         r.Proto,
		}
		log.Ctx(ctx).Info().Fields(requestFields).Msg("incoming request")

		defer func() {
			log.Ctx(ctx).Info().
				Str("duration", fmt.Sprintf("%dms", time.Since(start).Milliseconds())).
				Msg("request completed")
		}()

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// newRequestId generates a unique request identifier. It attempts a UUIDv7
// first, falling back to a timestamp-based ID if generation fails.
func newRequestId() string {
	u, err := uuid.NewV7()
	if err == nil {
		return u.String()
	}
	return fmt.Sprintf("fallback-%d", time.Now().UnixNano())
}
