package validators

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"

	"towquote/internal/utils"
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	// report json field names, not Go ones
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})

	// Register custom validation functions
	validate.RegisterValidation("phone_number", validatePhoneNumber)
	validate.RegisterValidation("currency_code", validateCurrencyCode)
	validate.RegisterValidation("miles", validateMiles)
	validate.RegisterValidation("service_name", validateServiceName)
}

var (
	ErrInvalidPhoneNumber = errors.New("invalid phone number format")
	ErrInvalidCurrency    = errors.New("invalid currency code")
	ErrInvalidMiles       = errors.New("invalid mileage")
	ErrSameAddress        = errors.New("pickup and dropoff are the same address")
)

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Tag     string `json:"tag"`
	Value   string `json:"value"`
	Message string `json:"message"`
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	var messages []string
	for _, err := range v {
		messages = append(messages, fmt.Sprintf("%s: %s", err.Field, err.Message))
	}
	return strings.Join(messages, "; ")
}

// Details flattens the errors into the field => message map the API returns.
func (v ValidationErrors) Details() map[string]string {
	details := make(map[string]string, len(v))
	for _, err := range v {
		if _, seen := details[err.Field]; !seen {
			details[err.Field] = err.Message
		}
	}
	return details
}

// ValidateStruct validates a struct and returns detailed errors
func ValidateStruct(s interface{}) ValidationErrors {
	var validationErrors ValidationErrors

	err := validate.Struct(s)
	if err != nil {
		var fieldErrors validator.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return ValidationErrors{{Field: "request", Tag: "struct", Message: err.Error()}}
		}
		for _, err := range fieldErrors {
			validationErrors = append(validationErrors, ValidationError{
				Field:   err.Field(),
				Tag:     err.Tag(),
				Value:   fmt.Sprintf("%v", err.Value()),
				Message: getErrorMessage(err),
			})
		}
	}

	return validationErrors
}

func getErrorMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", err.Field())
	case "email":
		return "Invalid email format"
	case "uuid4":
		return "Invalid quote ID"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", err.Field(), err.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", err.Field(), err.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", err.Field(), err.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", err.Field(), err.Param())
	case "phone_number":
		return "Invalid phone number format"
	case "currency_code":
		return "Invalid currency code"
	case "miles":
		return fmt.Sprintf("%s must be a non-negative number of miles", err.Field())
	case "service_name":
		return "Invalid service name"
	default:
		return fmt.Sprintf("Validation failed for %s", err.Field())
	}
}

func validatePhoneNumber(fl validator.FieldLevel) bool {
	phone := fl.Field().String()
	if phone == "" {
		return true
	}
	return utils.IsValidPhone(phone)
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return utils.ValidateCurrencyCode(fl.Field().String())
}

func validateMiles(fl validator.FieldLevel) bool {
	miles := fl.Field().Float()
	return !math.IsNaN(miles) && !math.IsInf(miles, 0) && miles >= 0
}

func validateServiceName(fl validator.FieldLevel) bool {
	name := fl.Field().String()
	if strings.TrimSpace(name) == "" {
		return false
	}
	for _, r := range name {
		if unicode.IsControl(r) {
			return false
		}
	}
	return true
}
