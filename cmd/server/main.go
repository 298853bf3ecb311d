package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"towquote/internal/app"
	"towquote/internal/config"
	handlers "towquote/internal/handlers/shared"
	"towquote/internal/middleware"
	"towquote/internal/repositories/kv"
	"towquote/internal/services"
	"towquote/routes"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := app.NewLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine, store, err := app.NewPricingEngine(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("Failed to connect to Firestore")
	}
	defer store.Close()

	// Pricing failures are not fatal: the API answers with the phone number
	// until a later request loads the configuration.
	initCtx, cancel := context.WithTimeout(ctx, 15*time.Second)
	if err := engine.Initialize(initCtx); err != nil {
		logger.WithError(err).Error("Pricing configuration unavailable at startup")
	}
	cancel()

	cacheClient := app.NewCacheClient(cfg.Redis, logger)
	defer cacheClient.Close()
	cacheService := services.NewCacheService(cacheClient, logger, cfg.Redis.KeyPrefix, cfg.Pricing.QuoteHoldTTL)
	holds := kv.NewQuoteHoldRepository(cacheService, cfg.Pricing.QuoteHoldTTL)

	distance, err := app.NewDistanceProvider(cfg.Maps)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create maps provider")
	}
	if distance == nil {
		logger.Warn("Maps provider not configured, address quotes disabled")
	}

	payments, err := app.NewPaymentProvider(cfg.Payment)
	if err != nil {
		logger.WithError(err).Fatal("Failed to create payment provider")
	}
	if payments == nil {
		logger.Warn("Payment provider not configured, online checkout disabled")
	}

	quoteService := services.NewQuoteService(engine, holds, distance, payments, cfg.Payment, logger)

	// Initialize handlers
	quoteHandler := handlers.NewQuoteHandler(quoteService, logger)
	adminHandler := handlers.NewAdminHandler(quoteService, logger)
	healthHandler := handlers.NewHealthHandler(quoteService, cacheService, cfg.App.Version)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize Gin router
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.Security.TrustedProxies); err != nil {
		logger.WithError(err).Fatal("Invalid trusted proxies")
	}

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))

	router.GET("/health", healthHandler.Health)

	// API routes
	v1 := router.Group("/api/v1")
	v1.Use(middleware.RateLimitMiddleware(
		middleware.NewRateLimiter(cfg.Security.RateLimitPerMinute, cfg.Security.RateLimitBurst),
		logger,
	))
	{
		routes.SetupQuoteRoutes(v1, quoteHandler)
		routes.SetupAdminRoutes(v1, adminHandler, cfg.Security.AdminToken)
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Infof("Starting server on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("Server failed")
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shut down")
	}
}
