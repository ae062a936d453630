package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"homecatalog/internal/config"
	"homecatalog/internal/handler"
	"homecatalog/internal/logging"
	"homecatalog/internal/repository"
	"homecatalog/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("Home catalog server",
		zap.String("version", Version),
		zap.String("build_time", BuildTime),
		zap.String("git_commit", GitCommit))
	for _, w := range cfg.Warnings {
		logger.Warn("Configuration fallback", zap.String("detail", w))
	}

	// Set Gin mode
	gin.SetMode(cfg.Server.GinMode)

	loadCtx, cancelLoad := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := repository.Open(loadCtx, cfg, logger)
	cancelLoad()
	if err != nil {
		logger.Fatal("Failed to load catalog", zap.Error(err))
	}

	logger.Info("Catalog loaded",
		zap.String("source", cfg.Catalog.Source),
		zap.String("version", store.Version()),
		zap.Int("homes", len(store.All())),
		zap.Int("manufacturers", len(store.Manufacturers())))

	// Initialize services
	catalogService := service.NewCatalogService(store, logger)
	contactService := service.NewContactService(logger)

	// Initialize handlers
	catalogHandler := handler.NewCatalogHandler(catalogService)
	contactHandler := handler.NewContactHandler(contactService)

	// Setup Gin router
	router := gin.New()
	router.Use(handler.RequestLogger(logger), handler.Recovery(logger))

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = splitList(cfg.Server.AllowedOrigins)
	corsConfig.AllowMethods = splitList(cfg.Server.AllowedMethods)
	corsConfig.AllowHeaders = splitList(cfg.Server.AllowedHeaders)
	if len(corsConfig.AllowOrigins) == 1 && corsConfig.AllowOrigins[0] == "*" {
		corsConfig.AllowOrigins = nil
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":          "healthy",
			"service":         "home-catalog",
			"version":         Version,
			"catalog_version": store.Version(),
			"build_time":      BuildTime,
			"git_commit":      GitCommit,
		})
	})

	// Version endpoint
	router.GET("/version", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"version":    Version,
			"build_time": BuildTime,
			"git_commit": GitCommit,
		})
	})

	// API routes
	handler.RegisterRoutes(router, catalogHandler, contactHandler)

	// Serve static files (frontend)
	// This function is implemented in embed.go (production) or static_dev.go (development)
	setupStaticFiles(router, logger)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	logger.Info("Starting server", zap.String("addr", cfg.Addr()))

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", zap.Error(err))
	}
	logger.Info("Server stopped")
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
