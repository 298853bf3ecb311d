package pricing

import (
	"sync"
	"time"

	"towquote/internal/models"
)

// policyCache holds the last successfully loaded policy. It is only ever
// replaced or cleared as a whole.
type policyCache struct {
	mu        sync.RWMutex
	ttl       time.Duration
	value     *models.PricingPolicy
	fetchedAt time.Time
}

func newPolicyCache(ttl time.Duration) *policyCache {
	return &policyCache{ttl: ttl}
}

// fresh returns the cached policy if it is younger than the TTL.
func (c *policyCache) fresh(now time.Time) (*models.PricingPolicy, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.value == nil || now.Sub(c.fetchedAt) >= c.ttl {
		return nil, false
	}
	return c.value, true
}

func (c *policyCache) get() *models.PricingPolicy {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.value
}

func (c *policyCache) set(policy *models.PricingPolicy, now time.Time) {
	c.mu.Lock()
	c.value = policy
	c.fetchedAt = now
	c.mu.Unlock()
}

func (c *policyCache) clear() {
	c.mu.Lock()
	c.value = nil
	c.fetchedAt = time.Time{}
	c.mu.Unlock()
}
