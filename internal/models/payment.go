package models

import "time"

// QuoteHold is a quote kept for checkout so the customer pays what they saw.
type QuoteHold struct {
	ID          string         `json:"id"`
	Service     string         `json:"service"`
	Breakdown   QuoteBreakdown `json:"breakdown"`
	OnlinePrice int64          `json:"online_price"`
	CreatedAt   time.Time      `json:"created_at"`
}

type CheckoutRequest struct {
	QuoteID       string `json:"quote_id" validate:"required,uuid4"`
	CustomerName  string `json:"customer_name" validate:"omitempty,max=100"`
	CustomerEmail string `json:"customer_email" validate:"required,email"`
	CustomerPhone string `json:"customer_phone" validate:"omitempty,phone_number"`
}

type CheckoutResponse struct {
	QuoteID  string `json:"quote_id"`
	URL      string `json:"url"`
	Provider string `json:"provider"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}
