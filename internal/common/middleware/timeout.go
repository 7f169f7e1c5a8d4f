package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/meeplehaven/viewsrv/internal/common/httpx"
	"github.com/rs/zerolog/log"
)

// SetTimeout enforces a deadline on request handling. If the request exceeds
// the given duration, a timeout error response is returned. Handlers see the
// deadline through the request context, so upstream calls are cancelled too.
func SetTimeout(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx, cancel := context.WithTimeout(r.Context(), timeout)
			defer cancel()

			rw := httpx.NewResponseWriter(w)
			r = r.WithContext(ctx)

			done := make(chan struct{})
			go func() {
				defer func() {
					if p := recover(); p != nil {
						log.Ctx(ctx).Error().Msgf("panic in handler: %v", p)
					}
					close(done)
				}()
				next.ServeHTTP(rw, r)
			}()

			select {
			case <-done:
				return
			case <-ctx.Done():
				// Only write the error if headers haven't been sent yet
				if !rw.Written() {
					httpx.ErrRequestTimeout().Send(w)
				}
				log.Ctx(ctx).Error().Msgf("request timed out")
				return
			}
		})
	}
}
