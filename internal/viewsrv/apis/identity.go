package apis

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/meeplehaven/viewsrv/internal/common/httpclient"
	"github.com/meeplehaven/viewsrv/internal/common/httpx"
	"github.com/meeplehaven/viewsrv/internal/viewsrv/viewcommon"
)

// UserIdentityMiddleware extracts the caller identity from the X-User-ID
// header and stores it in the request context. Requests without an identity
// are rejected before any upstream call is made.
func UserIdentityMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userID := r.Header.Get(httpclient.UserIDHeader)
		if userID == "" {
			log.Ctx(r.Context()).Info().Msg("request rejected: missing user identity")
			httpx.ErrUnAuthorized("missing user identity").Send(w)
			return
		}
		ctx := viewcommon.WithUserID(r.Context(), userID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
