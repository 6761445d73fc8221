package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS applies CORS headers for the configured client origins. With no
// origins configured it returns nil, Chain skips it and browsers fall back
// to same-origin only.
func CORS(allowedOrigins []string) Middleware {
	if len(allowedOrigins) == 0 {
		return nil
	}

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", csrfHeader},
		ExposedHeaders:   []string{requestIDHeader, "Content-Disposition"},
		AllowCredentials: true,
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
