package models

type LineItem struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// QuoteBreakdown is an itemized price. Base is always the sum of Items.
type QuoteBreakdown struct {
	Base                float64    `json:"base"`
	Items               []LineItem `json:"items"`
	MilesRounded        float64    `json:"miles_rounded,omitempty"`
	TravelMiles         float64    `json:"travel_miles,omitempty"`
	TimeMultiplier      float64    `json:"time_multiplier,omitempty"`
	TimeMultiplierLabel string     `json:"time_multiplier_label,omitempty"`
}

// Clone copies the item slice so the result can be extended independently.
func (b QuoteBreakdown) Clone() QuoteBreakdown {
	items := make([]LineItem, len(b.Items))
	copy(items, b.Items)
	b.Items = items
	return b
}

func (b QuoteBreakdown) Sum() float64 {
	var total float64
	for _, item := range b.Items {
		total += item.Amount
	}
	return total
}

// IsCallForPricing is true for negotiated services that have no numeric quote.
func (b QuoteBreakdown) IsCallForPricing() bool {
	return len(b.Items) == 0 && b.Base == 0
}

type QuoteRequest struct {
	Service     string  `json:"service" validate:"required,service_name,max=100"`
	TowMiles    float64 `json:"tow_miles" validate:"miles,lte=1000"`
	TravelMiles float64 `json:"travel_miles" validate:"miles,lte=500"`
}

type AddressQuoteRequest struct {
	Service string `json:"service" validate:"required,service_name,max=100"`
	Pickup  string `json:"pickup" validate:"required,min=3,max=300"`
	Dropoff string `json:"dropoff" validate:"omitempty,min=3,max=300"`
}

type QuoteResponse struct {
	QuoteID        string         `json:"quote_id,omitempty"`
	Service        string         `json:"service"`
	Breakdown      QuoteBreakdown `json:"breakdown"`
	Total          float64        `json:"total"`
	DiscountRate   float64        `json:"discount_rate"`
	OnlinePrice    int64          `json:"online_price"`
	CallForPricing bool           `json:"call_for_pricing"`
	Phone          string         `json:"phone"`
}

type ServiceSummary struct {
	Name           string      `json:"name"`
	Kind           ServiceKind `json:"kind"`
	Label          string      `json:"label"`
	Description    string      `json:"description,omitempty"`
	StartingPrice  float64     `json:"starting_price"`
	OnlinePrice    int64       `json:"online_price"`
	PerMileRate    float64     `json:"per_mile_rate,omitempty"`
	CallForPricing bool        `json:"call_for_pricing"`
}
