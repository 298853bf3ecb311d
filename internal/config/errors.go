package config

import (
	"errors"
	"fmt"
)

var ErrMissingProjectID = errors.New("FIREBASE_PROJECT_ID is required")

type InvalidSettingError struct {
	Key   string
	Value string
	Err   error
}

func (e *InvalidSettingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Key, e.Value, e.Err)
	}
	return fmt.Sprintf("invalid %s %q", e.Key, e.Value)
}

func (e *InvalidSettingError) Unwrap() error {
	return e.Err
}
