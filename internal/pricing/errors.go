package pricing

import (
	"errors"
	"fmt"
)

var (
	ErrConfigNotLoaded = errors.New("pricing configuration has not been loaded")
	ErrEmptyCatalog    = errors.New("service catalog is empty")
)

// ConfigurationError means no trustworthy pricing is available. It always
// carries a phone number the customer can call instead.
type ConfigurationError struct {
	Phone string
	Err   error
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("%s: %v", e.UserMessage(), e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// UserMessage is safe to show to a customer.
func (e *ConfigurationError) UserMessage() string {
	return fmt.Sprintf("Online pricing is unavailable right now. Please call %s for a quote.", e.Phone)
}

type UnknownServiceError struct {
	Service string
	Phone   string
}

func (e *UnknownServiceError) Error() string {
	return e.UserMessage()
}

func (e *UnknownServiceError) UserMessage() string {
	return fmt.Sprintf("We don't have online pricing for %q. Please call %s for a quote.", e.Service, e.Phone)
}

func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

func IsUnknownService(err error) bool {
	var svcErr *UnknownServiceError
	return errors.As(err, &svcErr)
}
