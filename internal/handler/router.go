package handler

import (
	"net/http"

	"exmora-backend/internal/config"

	"github.com/gorilla/mux"
	"github.com/rs/cors"
)

// NewRouter creates a new HTTP router with all routes configured
func NewRouter(container *config.Container) http.Handler {
	router := mux.NewRouter()

	chatHandler := NewChatHandler(
		container.SessionStore,
		container.TextExtractor,
		container.ChatService,
		container.Config.GetMaxFileSize(),
		container.Logger,
	)

	// Liveness probes
	router.HandleFunc("/", chatHandler.Root).Methods("GET")
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok","service":"exmora-backend"}`))
	}).Methods("GET")

	router.HandleFunc("/upload", chatHandler.Upload).Methods("POST")
	router.HandleFunc("/restart", chatHandler.Restart).Methods("POST")

	// Only the ask endpoint is rate limited; the gate runs before the
	// handler so a throttled request never touches session state.
	rateLimited := router.PathPrefix("").Subrouter()
	rateLimited.Use(RateLimitMiddleware(
		container.RateLimiter,
		container.Config.GetTrustProxyHeaders(),
		container.Logger,
	))
	rateLimited.HandleFunc("/ask", chatHandler.Ask).Methods("POST")

	router.Use(LoggingMiddleware(container.Logger))

	// Configure CORS. The frontend is a static page served from an
	// arbitrary local origin, so stay open like the original deployment.
	c := cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
		MaxAge:           300, // Maximum value not ignored by any of major browsers
	})

	return c.Handler(router)
}
