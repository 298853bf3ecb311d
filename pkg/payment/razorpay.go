package payment

import (
	"context"
	"fmt"
	"strings"

	"github.com/razorpay/razorpay-go"
)

type RazorpayProvider struct {
	client *razorpay.Client
}

func NewRazorpayProvider(keyID, keySecret string) *RazorpayProvider {
	client := razorpay.NewClient(keyID, keySecret)

	return &RazorpayProvider{
		client: client,
	}
}

func (r *RazorpayProvider) Name() string {
	return "razorpay"
}

func (r *RazorpayProvider) CreatePaymentLink(ctx context.Context, request *PaymentLinkRequest) (*PaymentLink, error) {
	if err := request.validate(); err != nil {
		return nil, err
	}

	link, err := r.client.PaymentLink.Create(razorpayLinkData(request), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create payment link: %w", err)
	}

	return paymentLinkFromRazorpay(link)
}

func razorpayLinkData(request *PaymentLinkRequest) map[string]interface{} {
	customer := map[string]interface{}{}
	if request.Customer.Name != "" {
		customer["name"] = request.Customer.Name
	}
	if request.Customer.Email != "" {
		customer["email"] = request.Customer.Email
	}
	if request.Customer.Phone != "" {
		customer["contact"] = request.Customer.Phone
	}

	notes := make(map[string]interface{}, len(request.Metadata))
	for key, value := range request.Metadata {
		notes[key] = value
	}

	return map[string]interface{}{
		"amount":          request.Amount,
		"currency":        strings.ToUpper(request.Currency),
		"reference_id":    request.Reference,
		"description":     request.Description,
		"customer":        customer,
		"notes":           notes,
		"callback_url":    request.SuccessURL,
		"callback_method": "get",
	}
}

// paymentLinkFromRazorpay reads the decoded JSON body. Numbers arrive as float64.
func paymentLinkFromRazorpay(body map[string]interface{}) (*PaymentLink, error) {
	id, _ := body["id"].(string)
	url, _ := body["short_url"].(string)
	if id == "" || url == "" {
		return nil, fmt.Errorf("unexpected payment link response: missing id or short_url")
	}

	link := &PaymentLink{ID: id, URL: url}
	link.Status, _ = body["status"].(string)
	link.Currency, _ = body["currency"].(string)
	if amount, ok := body["amount"].(float64); ok {
		link.Amount = int64(amount)
	}
	if created, ok := body["created_at"].(float64); ok {
		link.CreatedAt = int64(created)
	}
	return link, nil
}
