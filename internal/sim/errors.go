package sim

import "fmt"

// ConfigurationError reports an invalid simulation setup: a bad physics
// window, a zero-width paddle, an empty brick set. It is the only fatal
// error class; everything that can go wrong after construction is
// corrected in-tick and surfaced as diagnostic events.
type ConfigurationError struct {
	Field  string
	Reason string
}

// Error implements the error interface.
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("sim: invalid configuration: %s: %s", e.Field, e.Reason)
}

// configErr is a convenience constructor.
func configErr(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
