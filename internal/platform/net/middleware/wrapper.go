// Package middleware holds the HTTP middleware shared by every API route.
// chi's middleware is re-exported here so modules never import chi directly
package middleware

import (
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
	chicors "github.com/go-chi/cors"
)

// Middleware is the plain net/http middleware shape
type Middleware = func(http.Handler) http.Handler

// RequestID reuses an incoming X-Request-Id or mints one
func RequestID() Middleware { return chimw.RequestID }

// RealIP trusts X-Forwarded-For and X-Real-IP for RemoteAddr
func RealIP() Middleware { return chimw.RealIP }

// NoCache keeps analyses and history out of shared caches
func NoCache() Middleware { return chimw.NoCache }

// StripSlashes serves /api/history/ as /api/history
func StripSlashes() Middleware { return chimw.StripSlashes }

// Timeout cancels the request context after d and answers 504 if nothing was written
func Timeout(d time.Duration) Middleware { return chimw.Timeout(d) }

// Compress gzips JSON and HTML responses at level
func Compress(level int) Middleware {
	return chimw.NewCompressor(level, "application/json", "text/html", "text/plain").Handler
}

// CORSOptions is the part of go-chi/cors the API configures
type CORSOptions struct {
	AllowedOrigins []string
	MaxAge         int
}

// CORS lets a browser frontend on another origin call the JSON API.
// No origins means any origin
func CORS(o CORSOptions) Middleware {
	origins := o.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	return chicors.Handler(chicors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID", "Retry-After"},
		MaxAge:         o.MaxAge,
	})
}
