package routes

import (
	"github.com/cybershield/backend/internal/auth"
	"github.com/cybershield/backend/internal/handlers"
	"github.com/cybershield/backend/internal/middleware"
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers all API routes. Paths are part of the public
// contract with the deployed frontend and must not change.
func RegisterRoutes(
	router chi.Router,
	authHandler *handlers.AuthHandler,
	contactHandler *handlers.ContactHandler,
	auditHandler *handlers.AuditHandler,
	userHandler *handlers.UserHandler,
	tokenManager *auth.TokenManager,
	limiters *middleware.RateLimiters,
) {
	requireAuth := auth.Middleware(tokenManager)

	router.Route("/api", func(api chi.Router) {
		api.Route("/auth", func(r chi.Router) {
			r.With(limiters.Auth).Post("/register", authHandler.Register)
			r.With(limiters.Auth).Post("/login", authHandler.Login)
			r.With(requireAuth).Get("/me", authHandler.Me)
		})

		api.Route("/contact", func(r chi.Router) {
			r.With(limiters.Contact).Post("/", contactHandler.Submit)
			r.Get("/", contactHandler.List)
		})

		api.Route("/audit", func(r chi.Router) {
			r.With(limiters.Audit).Post("/request", auditHandler.Submit)
			r.With(requireAuth).Get("/requests", auditHandler.List)
			r.Get("/status/{id}", auditHandler.Status)
		})

		// Listing endpoints require a valid token. No role check is
		// enforced: any authenticated user qualifies.
		api.Route("/users", func(r chi.Router) {
			r.Use(requireAuth)
			r.Get("/", userHandler.List)
			r.Get("/stats", userHandler.Stats)
		})
	})
}
