package kv

import (
	"context"
	"fmt"
	"time"

	"towquote/internal/models"
	"towquote/internal/repositories/interfaces"
	"towquote/internal/services"
)

const quoteHoldKeyPrefix = "quote:"

type quoteHoldRepository struct {
	cache services.CacheService
	ttl   time.Duration
}

func NewQuoteHoldRepository(cache services.CacheService, ttl time.Duration) interfaces.QuoteHoldRepository {
	return &quoteHoldRepository{
		cache: cache,
		ttl:   ttl,
	}
}

func (r *quoteHoldRepository) Save(ctx context.Context, hold *models.QuoteHold) error {
	if hold.ID == "" {
		return fmt.Errorf("quote hold has no id")
	}
	if err := r.cache.Set(ctx, quoteHoldKeyPrefix+hold.ID, hold, r.ttl); err != nil {
		return fmt.Errorf("failed to save quote hold: %w", err)
	}
	return nil
}

func (r *quoteHoldRepository) Get(ctx context.Context, id string) (*models.QuoteHold, error) {
	var hold models.QuoteHold
	if err := r.cache.Get(ctx, quoteHoldKeyPrefix+id, &hold); err != nil {
		if services.IsCacheMiss(err) {
			return nil, interfaces.ErrQuoteHoldNotFound
		}
		return nil, fmt.Errorf("failed to get quote hold: %w", err)
	}
	return &hold, nil
}

func (r *quoteHoldRepository) Delete(ctx context.Context, id string) error {
	return r.cache.Delete(ctx, quoteHoldKeyPrefix+id)
}
