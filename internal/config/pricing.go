package config

import "time"

type PricingConfig struct {
	CacheTTL      time.Duration `yaml:"cache_ttl"`
	FallbackPhone string        `yaml:"fallback_phone"`
	MaxRetries    int           `yaml:"max_retries"`
	RetryStep     time.Duration `yaml:"retry_step"`
	QuoteHoldTTL  time.Duration `yaml:"quote_hold_ttl"`
}

func loadPricingConfig() *PricingConfig {
	return &PricingConfig{
		CacheTTL:      getEnvAsDuration("PRICING_CACHE_TTL", time.Second),
		FallbackPhone: getEnv("COMPANY_PHONE", ""),
		MaxRetries:    getEnvAsInt("PRICING_MAX_RETRIES", 3),
		RetryStep:     getEnvAsDuration("PRICING_RETRY_STEP", time.Second),
		QuoteHoldTTL:  getEnvAsDuration("QUOTE_HOLD_TTL", 30*time.Minute),
	}
}
