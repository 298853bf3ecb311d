package config

type PaymentConfig struct {
	DefaultProvider string          `yaml:"default_provider"`
	Stripe          *StripeConfig   `yaml:"stripe"`
	Razorpay        *RazorpayConfig `yaml:"razorpay"`
	Currency        string          `yaml:"currency"`
	SuccessURL      string          `yaml:"success_url"`
	CancelURL       string          `yaml:"cancel_url"`
}

type StripeConfig struct {
	SecretKey string `yaml:"secret_key"`
}

type RazorpayConfig struct {
	KeyID     string `yaml:"key_id"`
	KeySecret string `yaml:"key_secret"`
}

// Enabled reports whether the selected gateway has credentials.
func (p *PaymentConfig) Enabled() bool {
	switch p.DefaultProvider {
	case "stripe":
		return p.Stripe != nil && p.Stripe.SecretKey != ""
	case "razorpay":
		return p.Razorpay != nil && p.Razorpay.KeyID != "" && p.Razorpay.KeySecret != ""
	}
	return false
}

func loadPaymentConfig() *PaymentConfig {
	return &PaymentConfig{
		DefaultProvider: getEnv("PAYMENT_DEFAULT_PROVIDER", "stripe"),
		Stripe: &StripeConfig{
			SecretKey: getEnv("STRIPE_SECRET_KEY", ""),
		},
		Razorpay: &RazorpayConfig{
			KeyID:     getEnv("RAZORPAY_KEY_ID", ""),
			KeySecret: getEnv("RAZORPAY_KEY_SECRET", ""),
		},
		Currency:   getEnv("PAYMENT_CURRENCY", "USD"),
		SuccessURL: getEnv("PAYMENT_SUCCESS_URL", "http://localhost:3000/booking/success"),
		CancelURL:  getEnv("PAYMENT_CANCEL_URL", "http://localhost:3000/booking"),
	}
}
