package pricing

import (
	"context"
	"fmt"
	"math"

	"towquote/internal/models"
	"towquote/internal/utils"
)

// QuoteWithTravel prices a service including the drive out to the customer.
// Recovery and custom services never carry a travel charge.
func (e *Engine) QuoteWithTravel(serviceName string, towMiles, travelMiles float64) (models.QuoteBreakdown, error) {
	policy, err := e.ConfigSync()
	if err != nil {
		return models.QuoteBreakdown{}, err
	}
	return e.quote(policy, serviceName, towMiles, travelMiles, true)
}

func (e *Engine) FetchQuoteWithTravel(ctx context.Context, serviceName string, towMiles, travelMiles float64) (models.QuoteBreakdown, error) {
	policy, err := e.FetchConfig(ctx)
	if err != nil {
		return models.QuoteBreakdown{}, err
	}
	return e.quote(policy, serviceName, towMiles, travelMiles, true)
}

// FetchQuoteWithPolicy is FetchQuoteWithTravel that also returns the policy
// the price was computed from. Discount and phone derived from it stay
// consistent with the price even if the cache is replaced meanwhile.
func (e *Engine) FetchQuoteWithPolicy(ctx context.Context, serviceName string, towMiles, travelMiles float64) (models.QuoteBreakdown, *models.PricingPolicy, error) {
	policy, err := e.FetchConfig(ctx)
	if err != nil {
		return models.QuoteBreakdown{}, nil, err
	}
	b, err := e.quote(policy, serviceName, towMiles, travelMiles, true)
	if err != nil {
		return models.QuoteBreakdown{}, nil, err
	}
	return b, policy, nil
}

// AddTravel appends a travel line to an existing breakdown. Travel that is
// missing, not a number, or not positive once rounded up leaves b unchanged.
func (e *Engine) AddTravel(b models.QuoteBreakdown, travelMiles float64) models.QuoteBreakdown {
	return addTravel(b, travelMiles, travelRate(e.cache.get()), e.currencySymbol)
}

// TravelRate is the configured per-mile travel rate, or the built-in default.
func (e *Engine) TravelRate() float64 {
	return travelRate(e.cache.get())
}

func addTravel(b models.QuoteBreakdown, travelMiles, rate float64, symbol string) models.QuoteBreakdown {
	if math.IsNaN(travelMiles) || math.IsInf(travelMiles, 0) {
		return b
	}
	miles := math.Ceil(travelMiles)
	if miles <= 0 {
		return b
	}

	amount := miles * rate
	out := b.Clone()
	out.Items = append(out.Items, models.LineItem{
		Label:  fmt.Sprintf("%s mi travel × %s%s", utils.FormatAmount(miles), symbol, utils.FormatAmount(rate)),
		Amount: amount,
	})
	out.Base += amount
	out.TravelMiles = miles
	return out
}

func travelRate(policy *models.PricingPolicy) float64 {
	if policy != nil && policy.Features != nil && policy.Features.TravelRatePerMile > 0 {
		return policy.Features.TravelRatePerMile
	}
	return DefaultTravelRatePerMile
}
