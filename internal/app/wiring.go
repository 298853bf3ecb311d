// Package app builds the long-lived dependencies shared by the HTTP server
// and the operator CLI from configuration.
package app

import (
	"context"
	"fmt"
	"time"

	"towquote/internal/config"
	"towquote/internal/pricing"
	"towquote/internal/utils"
	"towquote/pkg/cache"
	"towquote/pkg/docstore"
	"towquote/pkg/logger"
	"towquote/pkg/maps"
	"towquote/pkg/payment"
)

func NewLogger(cfg *config.Config) (*logger.Logger, error) {
	return logger.NewLogger(&logger.Config{
		Level:   logger.LogLevel(cfg.App.LogLevel),
		Format:  cfg.App.LogFormat,
		Output:  "stdout",
		Caller:  cfg.App.Debug,
		Colors:  cfg.App.Debug && cfg.App.LogFormat != "json",
		AppName: cfg.App.Name,
		Version: cfg.App.Version,
	})
}

// NewPricingEngine opens Firestore and builds an engine over it. The caller
// owns the returned store and must close it.
func NewPricingEngine(ctx context.Context, cfg *config.Config, log *logger.Logger) (*pricing.Engine, *docstore.FirestoreStore, error) {
	store, err := docstore.NewFirestoreStore(ctx, cfg.Firebase.ProjectID, cfg.Firebase.CredentialsFile)
	if err != nil {
		return nil, nil, err
	}

	engine, err := NewEngine(store, cfg, log)
	if err != nil {
		store.Close()
		return nil, nil, err
	}
	return engine, store, nil
}

// NewEngine applies every pricing setting from cfg to an engine over store.
func NewEngine(store docstore.Store, cfg *config.Config, log *logger.Logger) (*pricing.Engine, error) {
	loc, err := time.LoadLocation(cfg.App.Timezone)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %s: %w", cfg.App.Timezone, err)
	}

	return pricing.NewEngine(store,
		pricing.WithLogger(log.WithField("component", "pricing")),
		pricing.WithLocation(loc),
		pricing.WithCacheTTL(cfg.Pricing.CacheTTL),
		pricing.WithFallbackPhone(cfg.Pricing.FallbackPhone),
		pricing.WithRetry(cfg.Pricing.MaxRetries, cfg.Pricing.RetryStep),
		pricing.WithCollections(cfg.Firebase.ServicesCollection, cfg.Firebase.PolicyCollection),
		pricing.WithCurrencySymbol(utils.GetCurrencySymbol(cfg.App.Currency)),
	), nil
}

// NewCacheClient connects to redis when enabled and falls back to an
// in-process cache otherwise, or when redis cannot be reached.
func NewCacheClient(cfg *config.RedisConfig, log *logger.Logger) cache.Client {
	if !cfg.Enabled {
		log.Info("Redis disabled, holding quotes in memory")
		return cache.NewMemoryCache()
	}

	client, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Host,
		Port:         cfg.Port,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		DialTimeout:  cfg.DialTimeout,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	})
	if err != nil {
		log.WithError(err).Warn("Redis unavailable, holding quotes in memory")
		return cache.NewMemoryCache()
	}
	return client
}

// NewDistanceProvider returns nil when address quotes are not configured.
func NewDistanceProvider(cfg *config.MapsConfig) (maps.DistanceProvider, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	switch cfg.Provider {
	case "google":
		provider, err := maps.NewGoogleMapsProvider(cfg.GoogleMaps.APIKey)
		if err != nil {
			return nil, err
		}
		return provider, nil
	case "mapbox":
		return maps.NewMapboxProvider(cfg.Mapbox.AccessToken), nil
	}
	return nil, fmt.Errorf("unknown maps provider %q", cfg.Provider)
}

// NewPaymentProvider returns nil when online checkout is not configured.
func NewPaymentProvider(cfg *config.PaymentConfig) (payment.PaymentLinkProvider, error) {
	if !cfg.Enabled() {
		return nil, nil
	}

	switch cfg.DefaultProvider {
	case "stripe":
		return payment.NewStripeProvider(cfg.Stripe.SecretKey), nil
	case "razorpay":
		return payment.NewRazorpayProvider(cfg.Razorpay.KeyID, cfg.Razorpay.KeySecret), nil
	}
	return nil, fmt.Errorf("unknown payment provider %q", cfg.DefaultProvider)
}
