package payment

import (
	"context"
	"errors"
)

var ErrInvalidAmount = errors.New("payment amount must be positive")

// PaymentLinkProvider creates hosted checkout pages the customer is
// redirected to. Amounts are always in minor units (cents, paise).
type PaymentLinkProvider interface {
	Name() string
	CreatePaymentLink(ctx context.Context, request *PaymentLinkRequest) (*PaymentLink, error)
}

type PaymentLinkRequest struct {
	Reference   string            `json:"reference"`
	Description string            `json:"description"`
	Amount      int64             `json:"amount"`
	Currency    string            `json:"currency"`
	Customer    Customer          `json:"customer"`
	SuccessURL  string            `json:"success_url"`
	CancelURL   string            `json:"cancel_url"`
	Metadata    map[string]string `json:"metadata"`
}

type Customer struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

type PaymentLink struct {
	ID        string `json:"id"`
	URL       string `json:"url"`
	Status    string `json:"status"`
	Amount    int64  `json:"amount"`
	Currency  string `json:"currency"`
	CreatedAt int64  `json:"created_at"`
}

func (r *PaymentLinkRequest) validate() error {
	if r.Amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}
