package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the browser client, which may be served from another origin, to
// call the API. An origin list containing "*" allows every origin.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", "Authorization", "X-Request-Id"},
		MaxAge:         600,
	})
}
