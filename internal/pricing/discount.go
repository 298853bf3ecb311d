package pricing

import (
	"math"

	"github.com/shopspring/decimal"

	"towquote/internal/models"
	"towquote/internal/utils"
)

// OnlineDiscountRate is the configured pay-online discount. A disabled,
// missing or out-of-range setting falls back to DefaultOnlineDiscountRate.
func (e *Engine) OnlineDiscountRate() float64 {
	var features *models.FeatureFlags
	if policy := e.cache.get(); policy != nil {
		features = policy.Features
	}
	return DiscountRate(features)
}

// ApplyOnlineDiscount discounts amount at the configured rate.
func (e *Engine) ApplyOnlineDiscount(amount float64) int64 {
	return ApplyDiscount(amount, e.OnlineDiscountRate())
}

func DiscountRate(features *models.FeatureFlags) float64 {
	if features == nil || !features.OnlineDiscount.Enabled {
		return DefaultOnlineDiscountRate
	}
	rate := features.OnlineDiscount.Rate
	if math.IsNaN(rate) || rate <= 0 || rate >= 1 {
		return DefaultOnlineDiscountRate
	}
	return rate
}

// ApplyDiscount returns amount*(1-rate) rounded to the nearest whole
// currency unit. rate is clamped to [0, 1]. The result never exceeds the
// rounded amount, but can exceed a fractional amount: 114.6 at rate 0 is 115.
func ApplyDiscount(amount, rate float64) int64 {
	rate = math.Min(math.Max(rate, 0), 1)
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromFloat(rate))
	return utils.RoundWhole(decimal.NewFromFloat(amount).Mul(factor))
}
