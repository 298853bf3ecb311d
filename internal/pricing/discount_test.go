package pricing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"towquote/internal/models"
)

func TestApplyDiscount(t *testing.T) {
	tests := []struct {
		name   string
		amount float64
		rate   float64
		want   int64
	}{
		{"fifteen percent", 100, 0.15, 85},
		{"rounds down", 114.4, 0.15, 97},
		{"rounds half up", 10, 0.25, 8},
		{"no discount", 195, 0, 195},
		{"free", 195, 1, 0},
		{"negative rate is clamped", 100, -0.5, 100},
		{"rate above one is clamped", 100, 1.5, 0},
		{"zero amount", 0, 0.15, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ApplyDiscount(tt.amount, tt.rate))
		})
	}
}

// Both sides are compared in whole units: rounding to the nearest unit can
// lift a fractional amount, so the bound is the rounded amount.
func TestApplyDiscount_NeverExceedsRoundedAmount(t *testing.T) {
	for _, amount := range []float64{0.6, 1, 49.99, 88, 114.4, 114.6, 195, 1250} {
		for _, rate := range []float64{0.01, 0.1, 0.15, 0.5, 0.99, 1} {
			got := ApplyDiscount(amount, rate)
			assert.LessOrEqual(t, float64(got), math.Round(amount), "amount %v rate %v", amount, rate)
		}
		assert.Equal(t, int64(math.Round(amount)), ApplyDiscount(amount, 0))
	}
}

func TestApplyDiscount_RoundsFractionalAmountUp(t *testing.T) {
	assert.Equal(t, int64(1), ApplyDiscount(0.6, 0))
	assert.Equal(t, int64(115), ApplyDiscount(114.6, 0))
}

func TestApplyDiscount_WholeAmountsStayAtOrBelow(t *testing.T) {
	for _, amount := range []float64{1, 88, 195, 1250} {
		for _, rate := range []float64{0, 0.01, 0.15, 0.5, 1} {
			assert.LessOrEqual(t, float64(ApplyDiscount(amount, rate)), amount, "amount %v rate %v", amount, rate)
		}
	}
}

func TestDiscountRate(t *testing.T) {
	tests := []struct {
		name     string
		features *models.FeatureFlags
		want     float64
	}{
		{"missing document", nil, DefaultOnlineDiscountRate},
		{"disabled", &models.FeatureFlags{OnlineDiscount: models.OnlineDiscount{Enabled: false, Rate: 0.2}}, DefaultOnlineDiscountRate},
		{"enabled", &models.FeatureFlags{OnlineDiscount: models.OnlineDiscount{Enabled: true, Rate: 0.2}}, 0.2},
		{"zero rate", &models.FeatureFlags{OnlineDiscount: models.OnlineDiscount{Enabled: true}}, DefaultOnlineDiscountRate},
		{"whole price", &models.FeatureFlags{OnlineDiscount: models.OnlineDiscount{Enabled: true, Rate: 1}}, DefaultOnlineDiscountRate},
		{"negative", &models.FeatureFlags{OnlineDiscount: models.OnlineDiscount{Enabled: true, Rate: -0.1}}, DefaultOnlineDiscountRate},
		{"nan", &models.FeatureFlags{OnlineDiscount: models.OnlineDiscount{Enabled: true, Rate: math.NaN()}}, DefaultOnlineDiscountRate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountRate(tt.features))
		})
	}
}

func TestEngine_ApplyOnlineDiscount(t *testing.T) {
	engine := loadedEngine(t, storeDocs{
		services: []models.ServiceDefinition{jumpStart()},
		features: &models.FeatureFlags{OnlineDiscount: models.OnlineDiscount{Enabled: true, Rate: 0.2}},
	}, middayUTC)

	assert.Equal(t, 0.2, engine.OnlineDiscountRate())
	assert.Equal(t, int64(80), engine.ApplyOnlineDiscount(100))
}

func TestEngine_ApplyOnlineDiscountBeforeLoad(t *testing.T) {
	engine := NewEngine(nil)

	assert.Equal(t, DefaultOnlineDiscountRate, engine.OnlineDiscountRate())
	assert.Equal(t, int64(85), engine.ApplyOnlineDiscount(100))
}
