package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/Unsighted/Dashboard-backend/internal/config"
	"github.com/Unsighted/Dashboard-backend/internal/di"
	"github.com/Unsighted/Dashboard-backend/internal/domain"
	"github.com/Unsighted/Dashboard-backend/internal/middleware"
	"github.com/Unsighted/Dashboard-backend/internal/migrations"
	"github.com/Unsighted/Dashboard-backend/internal/token"
	"github.com/Unsighted/Dashboard-backend/pkg/database"
	"github.com/Unsighted/Dashboard-backend/pkg/logger"
	"github.com/Unsighted/Dashboard-backend/pkg/redis"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(&logger.Config{
		Level:       cfg.Log.Level,
		ServiceName: cfg.App.Name,
		Development: cfg.IsDevelopment(),
	}); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	appLog := logger.Get()
	appLog.Info("Starting dashboard backend...")

	ctx := context.Background()

	// Initialize database connection
	db, err := database.NewPostgres(ctx, &cfg.Database)
	if err != nil {
		appLog.Fatal(fmt.Sprintf("Database connection failed: %v", err))
	}
	defer db.Close()
	appLog.Info(fmt.Sprintf("Database connected (pool: min=%d, max=%d)",
		cfg.Database.MinConns, cfg.Database.MaxConns))

	// Apply schema migrations
	if err := migrations.Run(ctx, cfg.Database.DSN()); err != nil {
		appLog.Fatal(fmt.Sprintf("Migrations failed: %v", err))
	}
	appLog.Info("Migrations applied")

	// Initialize Redis (optional - caching is disabled if connection fails)
	redisClient, err := redis.NewClient(ctx, &cfg.Redis)
	if err != nil {
		appLog.Warn(fmt.Sprintf("Redis connection failed (caching disabled): %v", err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLog.Info(fmt.Sprintf("Redis connected (%s)", cfg.Redis.Addr()))
	}

	issuer := token.NewIssuer(token.Config{
		AccessSecret:  cfg.JWT.AccessSecret,
		RefreshSecret: cfg.JWT.RefreshSecret,
		AccessTTL:     cfg.JWT.AccessTokenTTL,
		RefreshTTL:    cfg.JWT.RefreshTokenTTL,
	})

	// Build dependency injection container
	container := di.NewContainer(&di.ContainerConfig{
		DB:     db,
		Redis:  redisClient,
		Issuer: issuer,
		Log:    appLog,
	})

	router := buildRouter(cfg, container, issuer, appLog)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		appLog.Info(fmt.Sprintf("HTTP server listening on %s", cfg.Server.Addr()))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLog.Fatal(fmt.Sprintf("Server failed: %v", err))
		}
	}()

	// Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLog.Info("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(ctx, cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLog.Error(fmt.Sprintf("Forced shutdown: %v", err))
	}

	appLog.Info("Server stopped")
}

// buildRouter assembles the gin engine with middleware and the route policy:
// auth and health are public, appointments and the catalog admit both roles,
// directories and account administration are admin only.
func buildRouter(cfg *config.Config, c *di.Container, issuer *token.Issuer, appLog *logger.Logger) *gin.Engine {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(appLog))
	router.Use(middleware.CORS())
	router.Use(gin.Recovery())

	router.GET("/health", c.HealthHandler.Health)
	router.GET("/ready", c.HealthHandler.Ready)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/login", c.AuthHandler.Login)
			auth.POST("/refresh", c.AuthHandler.Refresh)
			auth.POST("/logout", c.AuthHandler.Logout)
		}

		staff := api.Group("")
		staff.Use(middleware.Authenticate(issuer))
		staff.Use(middleware.RequireRoles(domain.RoleUser, domain.RoleAdmin))
		{
			appointments := staff.Group("/appointments")
			{
				appointments.POST("", c.AppointmentHandler.Create)
				appointments.GET("", c.AppointmentHandler.List)
				appointments.GET("/:id", c.AppointmentHandler.Get)
				appointments.PUT("/:id", c.AppointmentHandler.Update)
				appointments.PATCH("/:id/status", c.AppointmentHandler.UpdateStatus)
				appointments.DELETE("/:id", c.AppointmentHandler.Delete)
			}

			services := staff.Group("/services")
			{
				services.POST("", c.ServiceHandler.Create)
				services.GET("", c.ServiceHandler.List)
				services.GET("/:id", c.ServiceHandler.Get)
				services.PUT("/:id", c.ServiceHandler.Update)
				services.DELETE("/:id", c.ServiceHandler.Delete)
			}
		}

		admin := api.Group("")
		admin.Use(middleware.Authenticate(issuer))
		admin.Use(middleware.RequireRoles(domain.RoleAdmin))
		{
			clients := admin.Group("/clients")
			{
				clients.POST("", c.ClientHandler.Create)
				clients.GET("", c.ClientHandler.List)
				clients.GET("/:id", c.ClientHandler.Get)
				clients.PUT("/:id", c.ClientHandler.Update)
				clients.DELETE("/:id", c.ClientHandler.Delete)
			}

			suppliers := admin.Group("/suppliers")
			{
				suppliers.POST("", c.SupplierHandler.Create)
				suppliers.GET("", c.SupplierHandler.List)
				suppliers.GET("/:id", c.SupplierHandler.Get)
				suppliers.PUT("/:id", c.SupplierHandler.Update)
				suppliers.DELETE("/:id", c.SupplierHandler.Delete)
			}

			users := admin.Group("/users")
			{
				users.POST("", c.UserHandler.Create)
				users.GET("", c.UserHandler.List)
				users.GET("/:id", c.UserHandler.Get)
				users.PUT("/:id", c.UserHandler.Update)
				users.DELETE("/:id", c.UserHandler.Delete)
			}
		}
	}

	return router
}
