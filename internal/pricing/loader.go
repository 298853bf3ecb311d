package pricing

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"towquote/internal/models"
	"towquote/pkg/docstore"
)

// FetchConfig returns the cached policy while it is fresh, and otherwise
// reloads the catalog and the three policy documents concurrently. Any
// failure clears the cache: callers never get stale or partial pricing.
func (e *Engine) FetchConfig(ctx context.Context) (*models.PricingPolicy, error) {
	if policy, ok := e.cache.fresh(e.clock.Now()); ok {
		return policy, nil
	}

	start := time.Now()
	policy, err := e.load(ctx)
	if err != nil {
		e.cache.clear()
		e.log.LogConfigFetch(0, time.Since(start), err)
		return nil, &ConfigurationError{Phone: e.fallbackPhone, Err: err}
	}

	now := e.clock.Now()
	policy.FetchedAt = now
	e.cache.set(policy, now)
	e.log.LogConfigFetch(len(policy.Catalog()), time.Since(start), nil)

	return policy, nil
}

// ConfigSync returns the last loaded policy without touching the store,
// even if it is past its TTL.
func (e *Engine) ConfigSync() (*models.PricingPolicy, error) {
	policy := e.cache.get()
	if policy == nil {
		return nil, &ConfigurationError{Phone: e.fallbackPhone, Err: ErrConfigNotLoaded}
	}
	return policy, nil
}

func (e *Engine) load(ctx context.Context) (*models.PricingPolicy, error) {
	var (
		services []*models.ServiceDefinition
		rules    *models.TimeMultiplierRules
		features *models.FeatureFlags
		company  *models.CompanyInfo
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		services, err = e.fetchServices(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		rules, err = fetchOptional[models.TimeMultiplierRules](gctx, e, TimeMultipliersDoc)
		return err
	})
	g.Go(func() error {
		var err error
		features, err = fetchOptional[models.FeatureFlags](gctx, e, FeaturesDoc)
		return err
	})
	g.Go(func() error {
		var err error
		company, err = fetchOptional[models.CompanyInfo](gctx, e, CompanyDoc)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	policy := models.NewPricingPolicy(services)
	policy.TimeMultipliers = rules
	policy.Features = features
	policy.Company = company
	return policy, nil
}

func (e *Engine) fetchServices(ctx context.Context) ([]*models.ServiceDefinition, error) {
	var snaps []docstore.Snapshot
	err := e.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		snaps, err = e.store.ListDocuments(ctx, e.servicesCollection)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch services: %w", err)
	}

	services := make([]*models.ServiceDefinition, 0, len(snaps))
	for _, snap := range snaps {
		var svc models.ServiceDefinition
		if err := snap.DataTo(&svc); err != nil {
			return nil, fmt.Errorf("failed to decode service %s: %w", snap.ID(), err)
		}
		if svc.Name == "" {
			svc.Name = snap.ID()
		}
		if !svc.Kind.IsValid() {
			e.log.WithService(svc.Name).WithField("kind", svc.Kind).Warn("Skipping service with unknown kind")
			continue
		}
		services = append(services, &svc)
	}

	if len(services) == 0 {
		return nil, ErrEmptyCatalog
	}
	return services, nil
}

// fetchOptional reads one policy document. A missing document is not an
// error and yields nil.
func fetchOptional[T any](ctx context.Context, e *Engine, id string) (*T, error) {
	var snap docstore.Snapshot
	err := e.retry.Do(ctx, func(ctx context.Context) error {
		var err error
		snap, err = e.store.GetDocument(ctx, e.policyCollection, id)
		return err
	})
	if docstore.IsNotFound(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", id, err)
	}

	var doc T
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", id, err)
	}
	return &doc, nil
}
