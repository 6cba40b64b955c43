package server

import (
	"net/http"
	"slices"
	"strings"

	"github.com/agbru/qdcalc/internal/config"
)

// SecurityConfig controls the security middleware and request limits.
type SecurityConfig struct {
	// EnableCORS adds CORS headers for allowed origins.
	EnableCORS bool
	// AllowedOrigins lists origins granted CORS access; "*" matches any.
	AllowedOrigins []string
	// AllowedMethods is advertised in Access-Control-Allow-Methods.
	AllowedMethods []string
	// MaxExprLength bounds the length of an expression in bytes.
	MaxExprLength int
	// MaxDigits bounds the digits query parameter.
	MaxDigits int
}

// DefaultSecurityConfig returns a read-only API configuration open to any
// origin.
func DefaultSecurityConfig() SecurityConfig {
	return SecurityConfig{
		EnableCORS:     true,
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		MaxExprLength:  4096,
		MaxDigits:      config.MaxDigits,
	}
}

// SecurityMiddleware sets security headers on every response, applies CORS
// for allowed origins and answers preflight requests with 204 without
// reaching next. Evaluation results are never cached by intermediaries.
func SecurityMiddleware(cfg SecurityConfig, next http.HandlerFunc) http.HandlerFunc {
	methods := strings.Join(cfg.AllowedMethods, ", ")
	return func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "no-referrer")
		h.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")
		h.Set("Cache-Control", "no-store")

		if cfg.EnableCORS {
			origin, ok := allowedOrigin(cfg.AllowedOrigins, r.Header.Get("Origin"))
			if ok {
				h.Set("Access-Control-Allow-Origin", origin)
				h.Set("Access-Control-Allow-Methods", methods)
				h.Set("Access-Control-Max-Age", "3600")
			}
			if origin != "*" {
				h.Add("Vary", "Origin")
			}
		}

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next(w, r)
	}
}

// allowedOrigin returns the value of Access-Control-Allow-Origin for a
// request from origin.
func allowedOrigin(allowed []string, origin string) (string, bool) {
	if slices.Contains(allowed, "*") {
		return "*", true
	}
	if origin != "" && slices.Contains(allowed, origin) {
		return origin, true
	}
	return "", false
}
