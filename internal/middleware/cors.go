package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors allows any origin: the service exposes read-only mathematical
// results, so there is nothing to protect from cross-site callers.
func Cors() Middleware {
	options := cors.Options{
		AllowOriginFunc: func(origin string) bool {
			return true
		},
		AllowedMethods: []string{
			http.MethodHead,
			http.MethodGet,
		},
		AllowedHeaders: []string{"*"},
	}
	return cors.New(options).Handler
}
