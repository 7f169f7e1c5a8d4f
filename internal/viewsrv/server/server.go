// Package server assembles the HTTP server for the collection view service.
// It wires middleware, the upstream service clients, and the API routes, and
// exposes version and readiness endpoints.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/meeplehaven/viewsrv/internal/common/httpx"
	"github.com/meeplehaven/viewsrv/internal/common/middleware"
	"github.com/meeplehaven/viewsrv/internal/viewsrv/apis"
	"github.com/meeplehaven/viewsrv/internal/viewsrv/clients/gamesvc"
	"github.com/meeplehaven/viewsrv/internal/viewsrv/clients/usersvc"
	"github.com/meeplehaven/viewsrv/internal/viewsrv/collection"
	"github.com/meeplehaven/viewsrv/internal/viewsrv/config"
	"github.com/meeplehaven/viewsrv/internal/viewsrv/viewcommon"
)

// ViewServer is the HTTP server for the collection view service.
type ViewServer struct {
	Router *chi.Mux // HTTP router for request handling
}

// CreateNewServer creates a new ViewServer instance.
func CreateNewServer() (*ViewServer, error) {
	s := &ViewServer{}
	s.Router = chi.NewRouter()
	return s, nil
}

// MountHandlers sets up all HTTP routes and middleware for the server.
// Configures logging, panic handling, request deadlines, CORS, and the
// collection view endpoints.
func (s *ViewServer) MountHandlers() {
	s.Router.Use(middleware.RequestLogger)
	s.Router.Use(middleware.PanicHandler)
	s.Router.Use(middleware.SetTimeout(config.Config().GetRequestTimeoutOrDefault()))
	if config.Config().HandleCORS {
		s.Router.Use(s.HandleCORS)
	}
	s.mountResourceHandlers(s.Router)
}

// mountResourceHandlers registers the API routes and system endpoints.
func (s *ViewServer) mountResourceHandlers(r chi.Router) {
	users := usersvc.NewClient(&config.Config().UserService)
	catalog := gamesvc.NewClient(&config.Config().GameDiscovery)
	handlers := apis.NewHandlers(collection.NewManager(users, catalog))

	r.Route("/api/"+viewcommon.ApiVersion, func(r chi.Router) {
		apis.Router(r, handlers)
	})
	r.Get("/version", s.getVersion)
	r.Get("/ready", s.getReadiness)
}

// GetVersionRsp represents the response for version information.
type GetVersionRsp struct {
	ServerVersion string `json:"serverVersion"` // server version string
	ApiVersion    string `json:"apiVersion"`    // API version string
}

func (s *ViewServer) getVersion(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("GetVersion")
	rsp := &GetVersionRsp{
		ServerVersion: "Meeple Haven View Server: " + viewcommon.ServerVersion,
		ApiVersion:    viewcommon.ApiVersion,
	}
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, rsp)
}

// getReadiness reports whether the server is able to take traffic. The
// service holds no state of its own, so being up is being ready.
func (s *ViewServer) getReadiness(w http.ResponseWriter, r *http.Request) {
	log.Ctx(r.Context()).Debug().Msg("Readiness check")
	httpx.SendJsonRsp(r.Context(), w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

// HandleCORS provides CORS middleware for cross-origin requests.
func (s *ViewServer) HandleCORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"}, // TODO: restrict to the frontend origins
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "Content-Length", "Accept-Encoding", "X-User-ID"},
		ExposedHeaders:   []string{"Link", "Location", middleware.RequestIDHeader},
		AllowCredentials: false,
		MaxAge:           300,
	})(next)
}
