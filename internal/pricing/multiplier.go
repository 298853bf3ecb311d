package pricing

import (
	"fmt"
	"time"

	"towquote/internal/models"
)

const StandardLabel = "Standard"

// CurrentMultiplier resolves the surcharge in effect now. It returns nil
// when after-hours pricing is switched off, and a 1.0 "Standard" multiplier
// when it is on but no period matches.
func (e *Engine) CurrentMultiplier(policy *models.PricingPolicy) *models.TimeMultiplier {
	if policy == nil || !policy.AfterHoursEnabled() {
		return nil
	}
	rules := policy.TimeMultipliers

	now := e.clock.Now().In(e.resolveLocation(rules.Timezone))
	minute := now.Hour()*60 + now.Minute()
	weekday := int(now.Weekday())

	// first match wins when periods overlap
	for i := range rules.Periods {
		period := &rules.Periods[i]
		if !period.Active || !period.HasDay(weekday) {
			continue
		}
		// surcharges only; a multiplier below 1 would discount
		if !(period.Multiplier >= 1) {
			e.log.WithField("period", period.ID).WithField("multiplier", period.Multiplier).Warn("Skipping time period with multiplier below 1")
			continue
		}
		match, err := periodContains(period, minute)
		if err != nil {
			e.log.WithError(err).WithField("period", period.ID).Warn("Skipping time period with invalid window")
			continue
		}
		if match {
			return &models.TimeMultiplier{Multiplier: period.Multiplier, Label: period.DisplayLabel()}
		}
	}

	return &models.TimeMultiplier{Multiplier: 1.0, Label: StandardLabel}
}

func (e *Engine) resolveLocation(name string) *time.Location {
	if name == "" {
		return e.location
	}
	loc, err := e.clock.Location(name)
	if err != nil {
		e.log.WithError(err).WithField("timezone", name).Warn("Unknown pricing timezone, using default")
		return e.location
	}
	return loc
}

// periodContains checks minute against [start, end). A window whose start is
// after its end runs past midnight.
func periodContains(period *models.TimePeriod, minute int) (bool, error) {
	start, err := models.ParseClock(period.StartTime)
	if err != nil {
		return false, err
	}
	end, err := models.ParseClock(period.EndTime)
	if err != nil {
		return false, err
	}
	if start > end {
		return minute >= start || minute < end, nil
	}
	return minute >= start && minute < end, nil
}

// applyMultiplier scales every line item of an eligible service and appends
// a zero-amount marker explaining the surcharge.
func applyMultiplier(b models.QuoteBreakdown, svc *models.ServiceDefinition, m *models.TimeMultiplier) models.QuoteBreakdown {
	if m == nil || m.Multiplier == 1.0 || !svc.AfterHoursEligible || len(b.Items) == 0 {
		return b
	}

	out := b.Clone()
	for i := range out.Items {
		out.Items[i].Amount *= m.Multiplier
	}
	out.Base = out.Sum()
	out.Items = append(out.Items, models.LineItem{Label: fmt.Sprintf("After-hours (%s)", m.Label)})
	out.TimeMultiplier = m.Multiplier
	out.TimeMultiplierLabel = m.Label
	return out
}
