package handlers

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"
)

// NewRouter mounts the GraphQL endpoint and the health check behind the
// shared middleware stack.
func NewRouter(allowedOrigins []string, graphqlHandler, healthHandler http.Handler) *chi.Mux {
	r := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	})

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(corsHandler.Handler)

	r.NotFound(NotFound)
	r.MethodNotAllowed(MethodNotAllowed)

	r.Method(http.MethodPost, "/graphql", graphqlHandler)
	r.Method(http.MethodGet, "/health", healthHandler)

	return r
}
