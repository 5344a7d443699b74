package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cybershield/backend/internal/auth"
	"github.com/cybershield/backend/internal/config"
	"github.com/cybershield/backend/internal/database"
	"github.com/cybershield/backend/internal/handlers"
	middlewareCustom "github.com/cybershield/backend/internal/middleware"
	"github.com/cybershield/backend/internal/repositories"
	"github.com/cybershield/backend/internal/routes"
	"github.com/cybershield/backend/internal/services"
	pkghttp "github.com/cybershield/backend/pkg/http"
	pkglogger "github.com/cybershield/backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const version = "1.0.0"

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load configuration; refuses to start without secrets
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("configuration loaded", slog.String("env", cfg.Server.Env))

	// Initialize database
	db, err := database.NewConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	contactRepo := repositories.NewContactRepository(db)
	auditRepo := repositories.NewAuditRequestRepository(db)

	// Initialize token manager
	tokenManager := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.TokenExpiry)

	auditLogger := pkglogger.NewAuditLogger(logger)

	// Email transport; degrades to a no-op sender when unconfigured
	var emailSender services.EmailSender
	if cfg.Email.Enabled() {
		sender, err := services.NewAWSSESEmailSender(cfg.Email.AWSRegion, cfg.Email.FromAddress, logger)
		if err != nil {
			logger.Error("failed to initialize email sender", slog.Any("error", err))
			os.Exit(1)
		}
		emailSender = sender
	} else {
		emailSender = services.NewDisabledEmailSender(logger)
	}

	// Background notification dispatcher
	notifier := services.NewNotifier(emailSender, logger)
	notifier.Start()

	// Initialize services
	authService := services.NewAuthService(userRepo, tokenManager, notifier, logger, auditLogger)
	contactService := services.NewContactService(contactRepo, notifier, cfg.Email.AdminAddress, logger)
	auditService := services.NewAuditService(auditRepo, notifier, cfg.Email.AdminAddress, logger)
	userService := services.NewUserService(userRepo, logger)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	contactHandler := handlers.NewContactHandler(contactService)
	auditHandler := handlers.NewAuditHandler(auditService)
	userHandler := handlers.NewUserHandler(userService)

	// Rate limiters
	limiters := middlewareCustom.NewRateLimiters(cfg.RateLimit)

	// Setup CORS middleware
	corsConfig := middlewareCustom.DefaultCORSConfig()
	corsConfig.AllowedOrigins = cfg.Server.AllowedOrigins

	// Setup router
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middlewareCustom.SecurityHeaders(middlewareCustom.SecurityHeadersConfig{Env: cfg.Server.Env}))
	router.Use(middlewareCustom.CORS(corsConfig))
	router.Use(middlewareCustom.SecureLogger(logger))
	router.Use(middleware.Recoverer)
	router.Use(middleware.Timeout(60 * time.Second))
	router.Use(limiters.General)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		pkghttp.WriteNotFound(w, "Route not found")
	})

	// Register routes
	routes.RegisterRoutes(router, authHandler, contactHandler, auditHandler, userHandler, tokenManager, limiters)

	// Service banner
	router.Get("/", func(w http.ResponseWriter, r *http.Request) {
		pkghttp.WriteJSON(w, http.StatusOK, map[string]interface{}{
			"message": "CyberShield API - Protecting your digital world",
			"version": version,
			"endpoints": []string{
				"GET /health - Server status",
				"POST /api/contact - Contact form",
				"POST /api/auth/register - User registration",
				"POST /api/auth/login - User login",
				"POST /api/audit/request - Request an audit",
			},
		})
	})

	// Health check with database
	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		stats := db.Stats()
		logger.Debug("health check",
			slog.Int("total_conns", int(stats.TotalConns())),
			slog.Int("idle_conns", int(stats.IdleConns())))

		if err := db.HealthCheck(ctx); err != nil {
			pkghttp.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status":    "ERROR",
				"message":   "CyberShield backend degraded: database unreachable",
				"timestamp": time.Now().UTC().Format(time.RFC3339),
			})
			return
		}

		pkghttp.WriteJSON(w, http.StatusOK, map[string]string{
			"status":    "OK",
			"message":   "CyberShield backend running",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	// Create server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server
	go func() {
		logger.Info("starting server", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	// Graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	logger.Info("shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		os.Exit(1)
	}

	// Drain queued notifications before exit
	notifier.Stop(shutdownCtx)

	logger.Info("server stopped gracefully")
}
