package model

import (
	"errors"
	"fmt"
)

// ConfigError reports a malformed preset or rule catalog. It can only
// occur at startup while catalogs load, never per-request.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string {
	return "config: " + e.Msg
}

// NewConfigError builds a ConfigError with a formatted message
func NewConfigError(format string, args ...any) *ConfigError {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

// InputError reports unusable input content (empty, unfetchable, or
// unextractable). It is surfaced to the caller with a user-facing
// message and no partial report.
type InputError struct {
	Msg string
	Err error
}

func (e *InputError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("input: %s: %v", e.Msg, e.Err)
	}
	return "input: " + e.Msg
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// NewInputError wraps err as an InputError with a user-facing message
func NewInputError(msg string, err error) *InputError {
	return &InputError{Msg: msg, Err: err}
}

// IsInputError reports whether err is (or wraps) an InputError
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}
