package pricing

import (
	"context"
	"fmt"
	"math"

	"towquote/internal/models"
	"towquote/internal/utils"
)

const HookupLabel = "Hook-up"

// QuoteWithBreakdown prices a service from the cached policy. milesRounded is
// the already rounded-up towing distance; zero or less means none.
func (e *Engine) QuoteWithBreakdown(serviceName string, milesRounded float64) (models.QuoteBreakdown, error) {
	policy, err := e.ConfigSync()
	if err != nil {
		return models.QuoteBreakdown{}, err
	}
	return e.quote(policy, serviceName, milesRounded, 0, false)
}

// FetchQuoteWithBreakdown is QuoteWithBreakdown after making sure the
// policy is loaded.
func (e *Engine) FetchQuoteWithBreakdown(ctx context.Context, serviceName string, milesRounded float64) (models.QuoteBreakdown, error) {
	policy, err := e.FetchConfig(ctx)
	if err != nil {
		return models.QuoteBreakdown{}, err
	}
	return e.quote(policy, serviceName, milesRounded, 0, false)
}

// Service looks up a service in the cached policy.
func (e *Engine) Service(serviceName string) (*models.ServiceDefinition, error) {
	policy, err := e.ConfigSync()
	if err != nil {
		return nil, err
	}
	return e.LookupService(policy, serviceName)
}

// LookupService finds a service in the given policy snapshot.
func (e *Engine) LookupService(policy *models.PricingPolicy, serviceName string) (*models.ServiceDefinition, error) {
	svc, ok := policy.Service(serviceName)
	if !ok {
		return nil, &UnknownServiceError{Service: serviceName, Phone: e.PhoneFor(policy)}
	}
	return svc, nil
}

// quote is the one path every public quote function goes through: raw line
// items, then travel, then the time multiplier.
func (e *Engine) quote(policy *models.PricingPolicy, serviceName string, towMiles, travelMiles float64, withTravel bool) (models.QuoteBreakdown, error) {
	svc, err := e.LookupService(policy, serviceName)
	if err != nil {
		return models.QuoteBreakdown{}, err
	}

	b := composeBase(svc, towMiles, e.currencySymbol)
	if withTravel && svc.Kind.ChargesTravel() {
		b = addTravel(b, travelMiles, travelRate(policy), e.currencySymbol)
	}
	return applyMultiplier(b, svc, e.CurrentMultiplier(policy)), nil
}

func composeBase(svc *models.ServiceDefinition, miles float64, symbol string) models.QuoteBreakdown {
	label := svc.Label
	if label == "" {
		label = svc.Name
	}

	var b models.QuoteBreakdown
	switch svc.Kind {
	case models.ServiceKindOnsite, models.ServiceKindRecovery:
		// recovery hourly metadata is informational; the flat price stands
		b.Items = []models.LineItem{{Label: label, Amount: svc.BasePrice}}
	case models.ServiceKindTowing:
		b.Items = []models.LineItem{{Label: HookupLabel, Amount: svc.HookupFee}}
		if miles > 0 && !math.IsInf(miles, 0) {
			billed := math.Max(miles, svc.MinimumMiles)
			b.Items = append(b.Items, models.LineItem{
				Label:  fmt.Sprintf("%s mi × %s%s", utils.FormatAmount(billed), symbol, utils.FormatAmount(svc.PerMileRate)),
				Amount: svc.PerMileRate * billed,
			})
			b.MilesRounded = billed
		}
	default:
		// negotiated price: no numeric quote
		b.Items = []models.LineItem{}
	}

	b.Base = b.Sum()
	return b
}

// PhoneFor is the company phone in policy, or the fallback number.
func (e *Engine) PhoneFor(policy *models.PricingPolicy) string {
	if policy != nil && policy.Company != nil && policy.Company.Phone != "" {
		return policy.Company.Phone
	}
	return e.fallbackPhone
}
