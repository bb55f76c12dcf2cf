package handler

import (
	"net/http"

	md "github.com/KOFI-GYIMAH/uc-orb/internal/middleware"
	"github.com/gorilla/mux"
)

// * NewRouter wires the catalog routes under /api and the meta routes at the root
func NewRouter(h *RepositoryHandler) *mux.Router {
	router := mux.NewRouter()

	api := router.PathPrefix("/api").Subrouter()
	h.RegisterRoutes(api)
	h.RegisterRootRoutes(router)

	return router
}

// * NewServerHandler wraps the router from the outside so unmatched routes
// * and preflights are also logged and tagged with a request id
func NewServerHandler(h *RepositoryHandler, allowedOrigins []string) http.Handler {
	var next http.Handler = NewRouter(h)
	next = md.CORS(allowedOrigins)(next)
	next = md.LoggingMiddleware(next)
	return md.RequestIDMiddleware(next)
}
