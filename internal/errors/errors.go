// Package errors provides centralized error definitions for the page-context
// plugin. It defines the error kinds callers can observe at the bridge
// boundary, constructors with context wrapping, and classification helpers.
//
// # Error Kinds
//
//   - CapabilityError: the attached bridge handle lacks a required capability
//   - ContextError: a page context failed shape validation
//   - RetrievalError: the bridge's current-context fetch itself failed
//   - ErrNotConnected: an operation requiring a bridge ran while disconnected
//
// # Usage
//
// Checking errors:
//
//	if errors.Is(err, errors.ErrNotConnected) { ... }
//
//	var capErr *errors.CapabilityError
//	if errors.As(err, &capErr) {
//	    log.Warn("bridge incomplete", "capability", capErr.Capability)
//	}
//
// Every error kind also matches its sentinel via errors.Is, so callers can
// branch on kind without depending on the concrete type.
package errors

import (
	"errors"
	"fmt"
)

// Re-export standard library functions for convenience.
// This allows callers to import only this package for all error handling.
var (
	Is     = errors.Is
	As     = errors.As
	Unwrap = errors.Unwrap
	New    = errors.New
	Join   = errors.Join
)

// Severity represents the severity level of an error.
type Severity int

const (
	// SeverityWarning is for conditions that are expected during normal
	// operation (absent bridge, transient retrieval failures).
	SeverityWarning Severity = iota
	// SeverityError is for conditions that indicate a real problem, such as
	// a host handing over an incomplete bridge.
	SeverityError
)

// String returns the string representation of the severity level.
func (s Severity) String() string {
	switch s {
	case SeverityWarning:
		return "warning"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// -----------------------------------------------------------------------------
// Sentinel Errors
// -----------------------------------------------------------------------------

var (
	// ErrNotConnected indicates an operation that requires an attached bridge
	// was invoked while the client was disconnected.
	ErrNotConnected = New("client is not connected to a bridge")

	// ErrCapabilityMissing indicates the bridge handle lacks a required capability.
	ErrCapabilityMissing = New("bridge capability missing")

	// ErrInvalidContext indicates a page context value failed validation.
	ErrInvalidContext = New("invalid page context")

	// ErrRetrievalFailed indicates the bridge failed to report its current context.
	ErrRetrievalFailed = New("page context retrieval failed")
)

// -----------------------------------------------------------------------------
// CapabilityError
// -----------------------------------------------------------------------------

// CapabilityError reports that an attached bridge handle does not expose one
// of the required capabilities. Capability holds the name of the missing
// operation as the host contract spells it ("retrieveCurrent" or "subscribe").
//
// Example:
//
//	err := errors.NewCapabilityError("subscribe")
//	fmt.Println(err) // "bridge capability 'subscribe' missing"
type CapabilityError struct {
	Capability string
}

// NewCapabilityError creates a CapabilityError for the named capability.
func NewCapabilityError(capability string) *CapabilityError {
	return &CapabilityError{Capability: capability}
}

// Error returns the formatted error message.
func (e *CapabilityError) Error() string {
	return fmt.Sprintf("bridge capability '%s' missing", e.Capability)
}

// Is reports whether this error matches the target.
func (e *CapabilityError) Is(target error) bool {
	if _, ok := target.(*CapabilityError); ok {
		return true
	}
	return errors.Is(target, ErrCapabilityMissing)
}

// Severity returns the severity of the error. A host handing over an
// incomplete bridge is a wiring bug on the host side, not a transient state.
func (e *CapabilityError) Severity() Severity { return SeverityError }

// -----------------------------------------------------------------------------
// ContextError
// -----------------------------------------------------------------------------

// ContextError reports that a page context value failed the shape check.
// Field names the offending field in the host contract's spelling
// ("pageId", "pageName", "pageRoute").
//
// Example:
//
//	err := errors.NewContextError("pageId", "")
//	fmt.Println(err) // "invalid page context: field 'pageId' must be a non-empty string (got: "")"
type ContextError struct {
	Field string
	Value any
}

// NewContextError creates a ContextError for the named field.
func NewContextError(field string, value any) *ContextError {
	return &ContextError{Field: field, Value: value}
}

// Error returns the formatted error message.
func (e *ContextError) Error() string {
	return fmt.Sprintf("invalid page context: field '%s' must be a non-empty string (got: %q)", e.Field, fmt.Sprint(e.Value))
}

// Is reports whether this error matches the target.
func (e *ContextError) Is(target error) bool {
	if _, ok := target.(*ContextError); ok {
		return true
	}
	return errors.Is(target, ErrInvalidContext)
}

// Severity returns the severity of the error.
func (e *ContextError) Severity() Severity { return SeverityWarning }

// -----------------------------------------------------------------------------
// RetrievalError
// -----------------------------------------------------------------------------

// RetrievalError wraps a failure from the bridge's current-context fetch.
// Retrieval failures are transient from the client's point of view; the
// caller may retry the operation.
type RetrievalError struct {
	cause error
}

// NewRetrievalError wraps a bridge retrieval failure.
func NewRetrievalError(cause error) *RetrievalError {
	return &RetrievalError{cause: cause}
}

// Error returns the formatted error message.
func (e *RetrievalError) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("page context retrieval failed: %v", e.cause)
	}
	return "page context retrieval failed"
}

// Unwrap returns the underlying bridge error.
func (e *RetrievalError) Unwrap() error { return e.cause }

// Is reports whether this error matches the target.
func (e *RetrievalError) Is(target error) bool {
	if _, ok := target.(*RetrievalError); ok {
		return true
	}
	if errors.Is(target, ErrRetrievalFailed) {
		return true
	}
	if e.cause != nil {
		return errors.Is(e.cause, target)
	}
	return false
}

// Severity returns the severity of the error.
func (e *RetrievalError) Severity() Severity { return SeverityWarning }

// -----------------------------------------------------------------------------
// Classification Helpers
// -----------------------------------------------------------------------------

// IsRetryable returns true if the error represents a transient condition that
// may succeed on a later call. Only retrieval failures qualify: a missing
// capability or a disconnected client will not fix itself, and an invalid
// context will stay invalid.
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	return Is(err, ErrRetrievalFailed)
}

// GetSeverity returns the severity level of the error. Errors that do not
// carry their own severity default to SeverityError.
func GetSeverity(err error) Severity {
	if err == nil {
		return SeverityWarning
	}

	var classified interface{ Severity() Severity }
	if As(err, &classified) {
		return classified.Severity()
	}
	return SeverityError
}

// Wrap wraps an error with an additional context message.
//
// Example:
//
//	err := errors.Wrap(baseErr, "attach failed")
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}

// Wrapf wraps an error with a formatted context message.
func Wrapf(err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), err)
}
