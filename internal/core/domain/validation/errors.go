package validation

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownField   = errors.New("rule references unknown field")
	ErrMissingField   = errors.New("record is missing a known field")
	ErrDuplicateField = errors.New("field declared more than once")
	ErrNilRule        = errors.New("rule cannot be nil")
)

// ConfigurationError reports a programming defect in how a pipeline was
// assembled or called. It is never part of the per-record error surface.
type ConfigurationError struct {
	Rule  string
	Field string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Rule != "" {
		return fmt.Sprintf("validation configuration: rule %q, field %q: %v", e.Rule, e.Field, e.Err)
	}
	return fmt.Sprintf("validation configuration: field %q: %v", e.Field, e.Err)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

// IsConfigurationError reports whether err is, or wraps, a *ConfigurationError.
func IsConfigurationError(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}
