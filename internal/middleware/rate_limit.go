package middleware

import (
	"net/http"
	"time"

	"github.com/cybershield/backend/internal/config"
	pkghttp "github.com/cybershield/backend/pkg/http"
	"github.com/go-chi/httprate"
)

// RateLimiters bundles the per-IP limiters gating the public surface.
// Each limiter counts independently; a client blocked on one is
// unaffected on the others. httprate's windowed counters are safe under
// concurrent increments and reset at window boundaries.
type RateLimiters struct {
	General func(http.Handler) http.Handler
	Auth    func(http.Handler) http.Handler
	Contact func(http.Handler) http.Handler
	Audit   func(http.Handler) http.Handler
}

// NewRateLimiters builds the four limiters from configuration.
func NewRateLimiters(cfg config.RateLimitConfig) *RateLimiters {
	return &RateLimiters{
		General: rateLimitByIP(cfg.GeneralLimit, cfg.GeneralWindow,
			"Too many requests, please try again later."),
		Auth: rateLimitByIP(cfg.AuthLimit, cfg.AuthWindow,
			"Too many authentication attempts. Please try again later."),
		Contact: rateLimitByIP(cfg.ContactLimit, cfg.ContactWindow,
			"Too many messages sent. Please try again in an hour."),
		Audit: rateLimitByIP(cfg.AuditLimit, cfg.AuditWindow,
			"Audit request limit reached. Please try again tomorrow."),
	}
}

// rateLimitByIP creates a middleware that rate limits requests by client IP
func rateLimitByIP(limit int, window time.Duration, message string) func(next http.Handler) http.Handler {
	return httprate.Limit(
		limit,
		window,
		httprate.WithKeyByRealIP(),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			pkghttp.WriteTooManyRequests(w, message)
		}),
	)
}
