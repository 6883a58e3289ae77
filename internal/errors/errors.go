// Package errors provides error classification and wrapping helpers shared by
// the tutor's packages. Recoverable user errors are classified invalid; anything
// that must stop the process before the window opens is classified fatal.
package errors

import (
	"errors"
	"fmt"
)

// ErrorClass represents the classification of errors for handling purposes
type ErrorClass int

const (
	// ErrorInvalid represents errors caused by user input or lookup misses.
	// They are reported at the point of interaction and never end the process.
	ErrorInvalid ErrorClass = iota
	// ErrorFatal represents startup faults that stop the process
	ErrorFatal
)

// String returns the string representation of ErrorClass
func (ec ErrorClass) String() string {
	switch ec {
	case ErrorInvalid:
		return "invalid"
	case ErrorFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// Standard error variables
var (
	// User interaction errors
	ErrMissingInput = errors.New("Please enter a symbol to search.")
	ErrNotFound     = errors.New("no data found")

	// Ontology errors
	ErrClassNotFound      = errors.New("class not found in ontology")
	ErrUnsupportedFormat  = errors.New("unsupported ontology format")
	ErrParsingFailed      = errors.New("parsing failed")
	ErrOntologyUnreadable = errors.New("ontology unreadable")

	// Configuration errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

// ClassifiedError wraps an error with its classification
type ClassifiedError struct {
	Class     ErrorClass
	Err       error
	Message   string
	Component string
	Operation string
}

// Error implements the error interface
func (ce *ClassifiedError) Error() string {
	if ce.Message != "" {
		return ce.Message
	}
	return ce.Err.Error()
}

// Unwrap returns the underlying error
func (ce *ClassifiedError) Unwrap() error {
	return ce.Err
}

// IsFatal reports whether err must stop the process
func IsFatal(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorFatal
	}

	return errors.Is(err, ErrClassNotFound) ||
		errors.Is(err, ErrInvalidConfig) ||
		errors.Is(err, ErrOntologyUnreadable) ||
		errors.Is(err, ErrParsingFailed) ||
		errors.Is(err, ErrUnsupportedFormat)
}

// IsInvalid reports whether err is a recoverable user-facing error
func IsInvalid(err error) bool {
	if err == nil {
		return false
	}

	var ce *ClassifiedError
	if errors.As(err, &ce) {
		return ce.Class == ErrorInvalid
	}

	return errors.Is(err, ErrMissingInput) ||
		errors.Is(err, ErrNotFound)
}

// Classify returns the error class for an error. Unknown errors are fatal:
// anything the interaction handlers do not expect is a programming or setup fault.
func Classify(err error) ErrorClass {
	if IsInvalid(err) {
		return ErrorInvalid
	}
	return ErrorFatal
}

// Is and As forward to the standard library so callers need only one errors import.
func Is(err, target error) bool { return errors.Is(err, target) }

func As(err error, target any) bool { return errors.As(err, target) }

// New forwards to errors.New
func New(text string) error { return errors.New(text) }

// Wrap creates a standardized error with context following the pattern:
// "component.method: action failed: %w"
func Wrap(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s.%s: %s failed: %w", component, method, action, err)
}

// WrapFatal wraps an error as fatal with context
func WrapFatal(err error, component, method, action string) error {
	if err == nil {
		return nil
	}
	wrapped := Wrap(err, component, method, action)
	return &ClassifiedError{
		Class:     ErrorFatal,
		Err:       wrapped,
		Message:   wrapped.Error(),
		Component: component,
		Operation: method,
	}
}

// Fatal classifies err as fatal but keeps message as the user-facing text.
// Used for startup diagnostics that are printed verbatim.
func Fatal(err error, component, method, message string) error {
	if err == nil {
		return nil
	}
	return &ClassifiedError{
		Class:     ErrorFatal,
		Err:       err,
		Message:   message,
		Component: component,
		Operation: method,
	}
}
