// Package pricing composes itemized towing and roadside quotes from the
// service catalog and pricing policy documents kept in Firestore.
package pricing

import (
	"context"
	"time"

	"towquote/internal/models"
	"towquote/pkg/docstore"
	"towquote/pkg/logger"
	"towquote/pkg/retry"
)

const (
	DefaultCompanyPhone       = "(555) 010-0199"
	DefaultOnlineDiscountRate = 0.15
	DefaultTravelRatePerMile  = 2.0
	DefaultCacheTTL           = time.Second
	DefaultMaxRetries         = 3
	DefaultRetryStep          = time.Second

	ServicesCollection = "services"
	PolicyCollection   = "pricing_config"

	TimeMultipliersDoc = "time_multipliers"
	FeaturesDoc        = "features"
	CompanyDoc         = "company"
)

// Engine is the quote engine. Construct one per process and share it; it
// owns the only copy of the cached pricing policy.
type Engine struct {
	store              docstore.Store
	cache              *policyCache
	retry              retry.Policy
	clock              Clock
	location           *time.Location
	servicesCollection string
	policyCollection   string
	fallbackPhone      string
	currencySymbol     string
	log                *logger.Logger
}

type Option func(*Engine)

func WithClock(clock Clock) Option {
	return func(e *Engine) { e.clock = clock }
}

func WithCacheTTL(ttl time.Duration) Option {
	return func(e *Engine) { e.cache = newPolicyCache(ttl) }
}

// WithFallbackPhone sets the number quoted in errors when no company
// document has been loaded. Empty keeps the default.
func WithFallbackPhone(phone string) Option {
	return func(e *Engine) {
		if phone != "" {
			e.fallbackPhone = phone
		}
	}
}

// WithLocation is the timezone used when the time multiplier rules name an
// unknown one.
func WithLocation(loc *time.Location) Option {
	return func(e *Engine) {
		if loc != nil {
			e.location = loc
		}
	}
}

func WithCollections(services, policy string) Option {
	return func(e *Engine) {
		if services != "" {
			e.servicesCollection = services
		}
		if policy != "" {
			e.policyCollection = policy
		}
	}
}

func WithLogger(log *logger.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithRetry changes how often access-denied reads are retried and the
// linear backoff step. The retry predicate itself is fixed.
func WithRetry(maxRetries int, step time.Duration) Option {
	return func(e *Engine) {
		e.retry.MaxRetries = maxRetries
		e.retry.Step = step
	}
}

func WithCurrencySymbol(symbol string) Option {
	return func(e *Engine) {
		if symbol != "" {
			e.currencySymbol = symbol
		}
	}
}

func NewEngine(store docstore.Store, opts ...Option) *Engine {
	e := &Engine{
		store:              store,
		cache:              newPolicyCache(DefaultCacheTTL),
		clock:              SystemClock{},
		location:           time.UTC,
		servicesCollection: ServicesCollection,
		policyCollection:   PolicyCollection,
		fallbackPhone:      DefaultCompanyPhone,
		currencySymbol:     "$",
		log:                logger.Discard(),
		retry: retry.Policy{
			MaxRetries: DefaultMaxRetries,
			Step:       DefaultRetryStep,
			Retryable:  docstore.IsAccessDenied,
		},
	}
	for _, opt := range opts {
		opt(e)
	}

	e.retry.OnRetry = func(n int, delay time.Duration, err error) {
		e.log.WithError(err).WithFields(map[string]interface{}{
			"retry":    n,
			"delay_ms": delay.Milliseconds(),
		}).Warn("Pricing document read denied, retrying")
	}

	return e
}

// Initialize warms the cache. Callers must not show prices until it succeeds.
func (e *Engine) Initialize(ctx context.Context) error {
	policy, err := e.FetchConfig(ctx)
	if err != nil {
		return err
	}
	e.log.WithField("services", len(policy.Catalog())).Info("Pricing configuration loaded")
	return nil
}

// Loaded reports whether a policy is available to the synchronous quote functions.
func (e *Engine) Loaded() bool {
	return e.cache.get() != nil
}

// Invalidate forgets the cached policy; the next FetchConfig reads the store.
func (e *Engine) Invalidate() {
	e.cache.clear()
}

// CompanyPhone is the support number from the company document, or the
// configured fallback.
func (e *Engine) CompanyPhone() string {
	return e.PhoneFor(e.cache.get())
}

// Company returns the loaded company document, if any.
func (e *Engine) Company() *models.CompanyInfo {
	if policy := e.cache.get(); policy != nil {
		return policy.Company
	}
	return nil
}
