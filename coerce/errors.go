package coerce

import (
	"errors"
	"fmt"
)

// ConfigError marks a configuration mistake: a malformed type identifier, an
// invalid registration or installation, an unknown type or module, or a
// module that failed to load. Configuration errors surface to the caller
// rather than being recorded as resolution outcomes. A coercion that merely
// cannot produce a value is not a configuration error; it is reported as a
// miss.
type ConfigError struct {
	err error
}

func configf(format string, args ...any) error {
	return &ConfigError{err: fmt.Errorf(format, args...)}
}

func (e *ConfigError) Error() string { return e.err.Error() }

// Unwrap exposes the wrapped cause so errors.Is/As can walk the chain.
func (e *ConfigError) Unwrap() error { return e.err }

// IsConfigError reports whether err belongs to the configuration error
// class.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}
