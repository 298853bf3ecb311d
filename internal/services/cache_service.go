package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"towquote/pkg/cache"
	"towquote/pkg/logger"
)

type CacheService interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Delete(ctx context.Context, keys ...string) error
	Exists(ctx context.Context, key string) (bool, error)
	Ping(ctx context.Context) error
}

type cacheService struct {
	client     cache.Client
	logger     *logger.Logger
	defaultTTL time.Duration
	keyPrefix  string
}

func NewCacheService(client cache.Client, logger *logger.Logger, keyPrefix string, defaultTTL time.Duration) CacheService {
	return &cacheService{
		client:     client,
		logger:     logger,
		keyPrefix:  keyPrefix,
		defaultTTL: defaultTTL,
	}
}

func IsCacheMiss(err error) bool {
	return errors.Is(err, cache.ErrCacheMiss)
}

func (s *cacheService) Get(ctx context.Context, key string, dest interface{}) error {
	data, err := s.client.Get(ctx, s.buildKey(key))
	if err != nil {
		return fmt.Errorf("failed to get cache key %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(data), dest); err != nil {
		return fmt.Errorf("failed to unmarshal cache data: %w", err)
	}

	s.logger.WithField("cache_key", key).Debug("Cache hit")
	return nil
}

func (s *cacheService) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal cache data: %w", err)
	}

	if expiration == 0 {
		expiration = s.defaultTTL
	}

	if err := s.client.Set(ctx, s.buildKey(key), data, expiration); err != nil {
		return fmt.Errorf("failed to set cache key %s: %w", key, err)
	}

	s.logger.WithField("cache_key", key).
		WithField("expiration", expiration).
		Debug("Cache set")

	return nil
}

func (s *cacheService) Delete(ctx context.Context, keys ...string) error {
	fullKeys := make([]string, len(keys))
	for i, key := range keys {
		fullKeys[i] = s.buildKey(key)
	}

	if err := s.client.Del(ctx, fullKeys...); err != nil {
		return fmt.Errorf("failed to delete cache keys: %w", err)
	}

	s.logger.WithField("cache_keys", keys).Debug("Cache keys deleted")
	return nil
}

func (s *cacheService) Exists(ctx context.Context, key string) (bool, error) {
	exists, err := s.client.Exists(ctx, s.buildKey(key))
	if err != nil {
		return false, fmt.Errorf("failed to check cache key existence: %w", err)
	}
	return exists, nil
}

func (s *cacheService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *cacheService) buildKey(key string) string {
	if s.keyPrefix != "" {
		return s.keyPrefix + key
	}
	return key
}
