package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/volunteerhub/volunteerhub-web/config"
	"github.com/volunteerhub/volunteerhub-web/internal/cache"
	"github.com/volunteerhub/volunteerhub-web/internal/handlers"
	"github.com/volunteerhub/volunteerhub-web/internal/middleware"
	"github.com/volunteerhub/volunteerhub-web/internal/services"
	"github.com/volunteerhub/volunteerhub-web/internal/session"
	"github.com/volunteerhub/volunteerhub-web/pkg/httpclient"
	"github.com/volunteerhub/volunteerhub-web/pkg/hubapi"
	"github.com/volunteerhub/volunteerhub-web/pkg/logger"
	"github.com/volunteerhub/volunteerhub-web/pkg/metrics"
	"github.com/volunteerhub/volunteerhub-web/pkg/profiling"
	"github.com/volunteerhub/volunteerhub-web/pkg/tracing"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

// registerRoutes wires all API routes onto the router
func registerRoutes(
	router *gin.Engine,
	cfg *config.Config,
	generalRateLimiter, authRateLimiter, mutationRateLimiter *middleware.RateLimiter,
	healthHandler *handlers.HealthHandler,
	authHandler *handlers.AuthHandler,
	needsHandler *handlers.NeedsHandler,
	volunteersHandler *handlers.VolunteersHandler,
	profileHandler *handlers.ProfileHandler,
	authService services.AuthServiceInterface,
) {
	tokenManager := authService.GetTokenManager()
	cookieDomain := authService.GetCookieDomain()
	cookieSecure := authService.GetCookieSecure()

	api := router.Group("/api")
	api.GET("/healthcheck", generalRateLimiter.Middleware(), healthHandler.Healthcheck)
	api.GET("/metrics", generalRateLimiter.Middleware(), gin.WrapH(promhttp.Handler()))

	// Session lifecycle (public)
	auth := router.Group("/api/v1/auth")
	auth.POST("/login", authRateLimiter.Middleware(), middleware.MaxBodySize(16*1024), authHandler.Login)
	auth.POST("/register", authRateLimiter.Middleware(), middleware.MaxBodySize(64*1024), authHandler.Register)
	auth.POST("/logout", authHandler.Logout)
	auth.GET("/session", middleware.LoadSession(tokenManager), authHandler.GetSession)

	// Public needs feed
	v1 := router.Group("/api/v1")
	v1.Use(generalRateLimiter.Middleware())
	v1.GET("/needs", needsHandler.Browse)
	v1.GET("/needs/:id", needsHandler.GetNeed)

	// Volunteer-scoped routes (session required)
	private := router.Group("/api/v1")
	private.Use(middleware.RequireSession(tokenManager, cookieDomain, cookieSecure))
	private.GET("/my/needs", generalRateLimiter.Middleware(), needsHandler.MyNeeds)
	private.GET("/my/profile", generalRateLimiter.Middleware(), profileHandler.GetProfile)
	private.PUT("/my/profile", mutationRateLimiter.Middleware(), middleware.MaxBodySize(64*1024), profileHandler.UpdateProfile)
	private.POST("/needs", mutationRateLimiter.Middleware(), middleware.MaxBodySize(64*1024), needsHandler.CreateNeed)
	private.PUT("/needs/:id", mutationRateLimiter.Middleware(), middleware.MaxBodySize(64*1024), needsHandler.UpdateNeed)
	private.DELETE("/needs/:id", mutationRateLimiter.Middleware(), needsHandler.DeleteNeed)

	// Manager-only roster. The role gate runs on the cached profile before
	// any backend traffic; the backend enforces the role again on each call.
	managers := router.Group("/api/v1/volunteers")
	managers.Use(middleware.RequireSession(tokenManager, cookieDomain, cookieSecure))
	managers.Use(middleware.RequireManager())
	managers.GET("", generalRateLimiter.Middleware(), volunteersHandler.ListVolunteers)
	managers.POST("", mutationRateLimiter.Middleware(), middleware.MaxBodySize(64*1024), volunteersHandler.CreateVolunteer)
	managers.GET("/:id", generalRateLimiter.Middleware(), volunteersHandler.GetVolunteer)
	managers.PUT("/:id", mutationRateLimiter.Middleware(), middleware.MaxBodySize(64*1024), volunteersHandler.UpdateVolunteer)
	managers.DELETE("/:id", mutationRateLimiter.Middleware(), volunteersHandler.DeleteVolunteer)
}

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	err = logger.Initialize(logger.Config{
		Level:       cfg.Logging.Level,
		LogDir:      cfg.Logging.Dir,
		Environment: cfg.Server.AppEnv,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Starting VolunteerHub web gateway",
		zap.String("version", cfg.Observability.ServiceVersion),
		zap.String("environment", cfg.Server.AppEnv),
		zap.String("upstream", cfg.Upstream.BaseURL),
	)

	// Initialize distributed tracing
	tracerShutdown, err := tracing.InitTracer(
		cfg.Observability.ServiceName,
		cfg.Observability.ServiceNamespace,
		cfg.Observability.ServiceVersion,
		cfg.Observability.ServiceInstanceID,
		cfg.Server.AppEnv,
		cfg.Observability.AlloyEndpoint,
	)
	if err != nil {
		logger.Fatal("Failed to initialize tracer", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if shutdownErr := tracerShutdown(ctx); shutdownErr != nil {
			logger.Error("Failed to shutdown tracer", zap.Error(shutdownErr))
		}
	}()

	// Start infrastructure metrics collection
	metrics.RecordInfrastructureMetrics()

	// Continuous profiling (optional)
	if cfg.Profiling.Enabled {
		stopProfiler, err := profiling.InitProfiler(
			cfg.Profiling,
			cfg.Observability.ServiceName,
			cfg.Observability.ServiceNamespace,
			cfg.Observability.ServiceVersion,
			cfg.Observability.ServiceInstanceID,
			cfg.Server.AppEnv,
		)
		if err != nil {
			logger.Error("Failed to initialize profiler", zap.Error(err))
		} else {
			defer stopProfiler()
		}
	}

	// Backend API client. The token source reads the per-request session
	// from the request context, so one client serves all users.
	httpClient := httpclient.NewStandardClientWithTimeout(
		time.Duration(cfg.Upstream.TimeoutSeconds) * time.Second)
	apiClient, err := hubapi.New(cfg.Upstream.BaseURL, httpClient, session.ContextTokenSource())
	if err != nil {
		logger.Fatal("Failed to initialize backend API client", zap.Error(err))
	}

	// Needs feed cache
	var needsFeed *cache.NeedsFeedCache
	if cfg.Cache.DisableNeedsCache {
		logger.Warn("Needs feed cache is DISABLED - reading from the backend on every request")
	} else {
		needsFeed = cache.NewNeedsFeedCache(cfg.Cache.NeedsFeedTTLSeconds)
	}

	// Initialize services
	authService := services.NewAuthService(apiClient.Auth, cfg)
	needsService := services.NewNeedsService(apiClient.Needs, needsFeed)
	volunteersService := services.NewVolunteersService(apiClient.Volunteers)
	profileService := services.NewProfileService(apiClient.Auth, apiClient.Volunteers, authService.GetTokenManager())

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	needsHandler := handlers.NewNeedsHandler(needsService, profileService, authService)
	volunteersHandler := handlers.NewVolunteersHandler(volunteersService)
	profileHandler := handlers.NewProfileHandler(profileService, authService)

	// Set up Gin router
	gin.SetMode(cfg.Server.GinMode)
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(otelgin.Middleware(cfg.Observability.ServiceName))
	router.Use(middleware.ObservabilityMiddleware())
	router.Use(middleware.SecurityHeaders())

	// CORS: only the configured frontend origins, with credentials for the
	// session cookie
	allowedOrigins := cfg.Server.AllowedOrigins
	if cfg.IsDevelopment() {
		allowedOrigins = append(allowedOrigins, "http://localhost:3000", "http://127.0.0.1:3000")
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "traceparent", "tracestate"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Rate limiters per endpoint class
	generalRateLimiter := middleware.NewRateLimiter(100, 200) // 100 req/sec, burst of 200
	authRateLimiter := middleware.NewRateLimiter(1, 5)        // 1 req/sec, burst of 5 (login abuse prevention)
	mutationRateLimiter := middleware.NewRateLimiter(10, 20)  // 10 req/sec, burst of 20

	registerRoutes(router, cfg,
		generalRateLimiter, authRateLimiter, mutationRateLimiter,
		healthHandler, authHandler, needsHandler, volunteersHandler, profileHandler,
		authService)

	srv := &http.Server{
		Addr:              "0.0.0.0:" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server started", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed to start", zap.Error(err))
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}

	logger.Info("Server exited")
}
