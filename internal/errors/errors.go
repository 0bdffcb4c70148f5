package errors

import (
	"errors"
	"fmt"
)

// Common error types for the compliance service and token exchange proxy
var (
	// Request errors
	ErrInvalidRequest   = errors.New("invalid request")
	ErrValidationFailed = errors.New("request failed compliance validation")

	// Provider errors
	ErrNotConfigured     = errors.New("identity provider not configured")
	ErrProviderDiscovery = errors.New("identity provider discovery failed")
	ErrTokenExchange     = errors.New("token exchange failed")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
