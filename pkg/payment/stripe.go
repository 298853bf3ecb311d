package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

type StripeProvider struct {
	client *client.API
}

func NewStripeProvider(secretKey string) *StripeProvider {
	return NewStripeProviderWithBackends(secretKey, nil)
}

// NewStripeProviderWithBackends lets tests point the client at a fake API.
func NewStripeProviderWithBackends(secretKey string, backends *stripe.Backends) *StripeProvider {
	sc := &client.API{}
	sc.Init(secretKey, backends)

	return &StripeProvider{
		client: sc,
	}
}

func (s *StripeProvider) Name() string {
	return "stripe"
}

// CreatePaymentLink opens a one-off Checkout Session for a single line item.
func (s *StripeProvider) CreatePaymentLink(ctx context.Context, request *PaymentLinkRequest) (*PaymentLink, error) {
	if err := request.validate(); err != nil {
		return nil, err
	}

	params := &stripe.CheckoutSessionParams{
		Mode:              stripe.String(string(stripe.CheckoutSessionModePayment)),
		ClientReferenceID: stripe.String(request.Reference),
		SuccessURL:        stripe.String(request.SuccessURL),
		CancelURL:         stripe.String(request.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{{
			Quantity: stripe.Int64(1),
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:   stripe.String(strings.ToLower(request.Currency)),
				UnitAmount: stripe.Int64(request.Amount),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(request.Description),
				},
			},
		}},
	}
	params.Context = ctx
	if request.Customer.Email != "" {
		params.CustomerEmail = stripe.String(request.Customer.Email)
	}
	for key, value := range request.Metadata {
		params.AddMetadata(key, value)
	}

	session, err := s.client.CheckoutSessions.New(params)
	if err != nil {
		return nil, fmt.Errorf("failed to create checkout session: %w", err)
	}

	return &PaymentLink{
		ID:        session.ID,
		URL:       session.URL,
		Status:    string(session.Status),
		Amount:    session.AmountTotal,
		Currency:  strings.ToUpper(string(session.Currency)),
		CreatedAt: session.Created,
	}, nil
}
