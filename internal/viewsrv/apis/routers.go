// Package apis implements the HTTP surface of the view service. Handlers
// are thin request entry points: they extract the caller identity, parse
// and validate input, invoke the collection pipelines, and serialize the
// result. All real decisions live in the collection package.
package apis

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meeplehaven/viewsrv/internal/common/httpx"
	"github.com/meeplehaven/viewsrv/internal/viewsrv/collection"
	"github.com/meeplehaven/viewsrv/internal/viewsrv/config"
)

// Handlers holds the collection manager the API routes dispatch to.
type Handlers struct {
	manager *collection.Manager
}

// NewHandlers creates the API handler set around the given manager.
func NewHandlers(manager *collection.Manager) *Handlers {
	return &Handlers{manager: manager}
}

type handlerParam struct {
	Method  string
	Path    string
	Handler httpx.RequestHandler
}

// Router registers the collection view routes on the given router.
// Every route requires a caller identity.
func Router(r chi.Router, h *Handlers) chi.Router {
	routes := []handlerParam{
		{
			Method:  http.MethodGet,
			Path:    "/collection",
			Handler: h.getCollection,
		},
		{
			Method:  http.MethodPost,
			Path:    "/collection/games",
			Handler: h.addGame,
		},
		{
			Method:  http.MethodDelete,
			Path:    "/collection/games/{gameID}",
			Handler: h.removeGame,
		},
		{
			Method:  http.MethodPost,
			Path:    "/reviews",
			Handler: h.createReview,
		},
	}

	r.Group(func(r chi.Router) {
		r.Use(UserIdentityMiddleware)
		r.Use(limitRequestBody)
		for _, route := range routes {
			r.Method(route.Method, route.Path, httpx.WrapHttpRsp(route.Handler))
		}
	})
	return r
}

// limitRequestBody caps the request body at the configured maximum.
func limitRequestBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if limit := config.Config().MaxRequestBodySize; limit > 0 && r.Body != nil {
			r.Body = http.MaxBytesReader(w, r.Body, limit)
		}
		next.ServeHTTP(w, r)
	})
}
