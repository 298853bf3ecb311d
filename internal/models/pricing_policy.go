package models

import "time"

type OnlineDiscount struct {
	Enabled bool    `json:"enabled" firestore:"enabled"`
	Rate    float64 `json:"rate" firestore:"rate"`
}

// FeatureFlags is the pricing_config/features document.
type FeatureFlags struct {
	AfterHoursPricing bool           `json:"after_hours_pricing" firestore:"afterHoursPricing"`
	OnlineDiscount    OnlineDiscount `json:"online_discount" firestore:"onlineDiscount"`
	TravelRatePerMile float64        `json:"travel_rate_per_mile,omitempty" firestore:"travelRatePerMile"`
}

// CompanyInfo is the pricing_config/company document.
type CompanyInfo struct {
	Name        string `json:"name" firestore:"name"`
	Phone       string `json:"phone" firestore:"phone"`
	Email       string `json:"email,omitempty" firestore:"email"`
	BaseAddress string `json:"base_address,omitempty" firestore:"baseAddress"`
}

// PricingPolicy is everything a quote needs, loaded as one unit.
// TimeMultipliers, Features and Company are nil when their document is missing.
type PricingPolicy struct {
	Services        map[string]*ServiceDefinition
	TimeMultipliers *TimeMultiplierRules
	Features        *FeatureFlags
	Company         *CompanyInfo
	FetchedAt       time.Time
}

func NewPricingPolicy(services []*ServiceDefinition) *PricingPolicy {
	p := &PricingPolicy{Services: make(map[string]*ServiceDefinition, len(services)*2)}
	for _, svc := range services {
		p.Services[svc.Name] = svc
		p.Services[NormalizeServiceName(svc.Name)] = svc
	}
	return p
}

// Service looks a name up exactly, then lowercased.
func (p *PricingPolicy) Service(name string) (*ServiceDefinition, bool) {
	if svc, ok := p.Services[name]; ok {
		return svc, true
	}
	svc, ok := p.Services[NormalizeServiceName(name)]
	return svc, ok
}

// Catalog returns each service once; the index holds two keys per service.
func (p *PricingPolicy) Catalog() []*ServiceDefinition {
	seen := make(map[*ServiceDefinition]struct{}, len(p.Services)/2)
	out := make([]*ServiceDefinition, 0, len(p.Services)/2)
	for _, svc := range p.Services {
		if _, ok := seen[svc]; ok {
			continue
		}
		seen[svc] = struct{}{}
		out = append(out, svc)
	}
	return out
}

func (p *PricingPolicy) AfterHoursEnabled() bool {
	return p.Features != nil && p.Features.AfterHoursPricing &&
		p.TimeMultipliers != nil && p.TimeMultipliers.Enabled
}
