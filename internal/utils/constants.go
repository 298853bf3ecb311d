package utils

const (
	AppName    = "TowQuote"
	AppVersion = "1.0.0"

	DefaultCurrency    = "USD"
	DefaultCountryCode = "+1"

	// Response status
	StatusSuccess = "success"
	StatusError   = "error"

	// Context keys
	ContextKeyRequestID = "request_id"

	// Headers
	HeaderRequestID  = "X-Request-ID"
	HeaderAdminToken = "X-Admin-Token"
)

// Error codes
const (
	CodeValidation         = "VALIDATION_ERROR"
	CodeBadRequest         = "BAD_REQUEST"
	CodeUnknownService     = "UNKNOWN_SERVICE"
	CodePricingUnavailable = "PRICING_UNAVAILABLE"
	CodeCallForPricing     = "CALL_FOR_PRICING"
	CodeQuoteNotFound      = "QUOTE_NOT_FOUND"
	CodeAddressNotFound    = "ADDRESS_NOT_FOUND"
	CodeFeatureDisabled    = "FEATURE_DISABLED"
	CodePaymentFailed      = "PAYMENT_FAILED"
	CodeRateLimited        = "RATE_LIMITED"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeInternal           = "INTERNAL_ERROR"
)

// Error messages
const (
	ErrInternalServer   = "Internal server error"
	ErrUnauthorized     = "Unauthorized access"
	ErrValidationFailed = "Validation failed"
	ErrInvalidRequest   = "Invalid request format"
	ErrRateLimited      = "Rate limit exceeded. Try again later."
	ErrQuoteNotFound    = "Quote not found or expired"
)

// Success messages
const (
	MsgQuoteCreated     = "Quote created successfully"
	MsgServicesListed   = "Services retrieved successfully"
	MsgCompanyRetrieved = "Company information retrieved successfully"
	MsgCheckoutCreated  = "Checkout link created successfully"
	MsgPricingRefreshed = "Pricing configuration refreshed"
)
