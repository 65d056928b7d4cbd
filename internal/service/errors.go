package service

import (
	"errors"
	"fmt"
	"strings"
)

// The error taxonomy every operation surfaces through. Validation and
// config errors are raised before any side effect; backend and storage
// errors wrap the underlying cause.

// ValidationError rejects bad input before any network or disk write.
type ValidationError struct {
	File   string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.File != "" {
		return fmt.Sprintf("invalid input: file %q %s", e.File, e.Reason)
	}
	return "invalid input: " + e.Reason
}

// BackendError wraps a failed database read or write.
type BackendError struct {
	Op  string
	Err error
}

func (e *BackendError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *BackendError) Unwrap() error { return e.Err }

// StorageError wraps a failed object upload or delete.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *StorageError) Unwrap() error { return e.Err }

// ConfigError reports required configuration that is unset; raised before
// any network attempt.
type ConfigError struct {
	Missing []string
}

func (e *ConfigError) Error() string {
	return "missing configuration: " + strings.Join(e.Missing, ", ")
}

// DeliveryError wraps a relay rejection or send failure.
type DeliveryError struct {
	Err error
}

func (e *DeliveryError) Error() string { return "message delivery failed: " + e.Err.Error() }
func (e *DeliveryError) Unwrap() error { return e.Err }

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var target *ValidationError
	return errors.As(err, &target)
}
