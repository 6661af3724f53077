package havona

import (
	"errors"
	"fmt"
)

// Kinder is implemented by every error in the taxonomy. The kind string is
// what tool callers see in the "type" field of an error envelope.
type Kinder interface {
	error
	Kind() string
}

// ConfigError reports missing or invalid environment configuration.
type ConfigError struct {
	Variable string
	Reason   string
}

func (e *ConfigError) Error() string {
	if e.Variable != "" {
		return fmt.Sprintf("%s environment variable is required", e.Variable)
	}
	return e.Reason
}

func (e *ConfigError) Kind() string { return "ConfigurationError" }

// AuthError reports a failed token exchange with the identity provider.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Err)
	}
	return e.Reason
}

func (e *AuthError) Kind() string  { return "AuthenticationError" }
func (e *AuthError) Unwrap() error { return e.Err }

// APIError reports a request the Havona API rejected or failed, including
// transport-level failures (timeout, connection refused).
type APIError struct {
	StatusCode int
	Message    string
	Err        error
}

func (e *APIError) Error() string {
	switch {
	case e.StatusCode != 0:
		return fmt.Sprintf("havona api error (status %d): %s", e.StatusCode, e.Message)
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	default:
		return e.Message
	}
}

func (e *APIError) Kind() string  { return "ApiError" }
func (e *APIError) Unwrap() error { return e.Err }

// InputError reports locally detected bad tool input. It never involves the
// network.
type InputError struct {
	Reason string
}

func (e *InputError) Error() string { return e.Reason }
func (e *InputError) Kind() string  { return "InputError" }

// ErrorKind extracts the taxonomy kind from err, walking wrapped errors.
// Errors from outside the taxonomy report as "Error".
func ErrorKind(err error) string {
	var k Kinder
	if errors.As(err, &k) {
		return k.Kind()
	}
	return "Error"
}
