package errors

import stderrors "errors"

// Domain is the error domain for stats generator errors.
const Domain = "github.com/louisbranch/netobs-statsgen"

// MetadataField is the metadata key naming the offending message field.
const MetadataField = "field"

// Error is the domain error type with structured metadata.
type Error struct {
	Code     Code              // Machine-readable error code
	Message  string            // Internal message (for logs/telemetry)
	Metadata map[string]string // Additional diagnostic context
	Cause    error             // Wrapped underlying error
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap returns the underlying cause for error chain traversal.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error by code.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Code == t.Code
	}
	return false
}

// New creates a simple domain error with a code and message.
func New(code Code, message string) *Error {
	return &Error{
		Code:    code,
		Message: message,
	}
}

// WithMetadata creates a domain error with diagnostic metadata.
func WithMetadata(code Code, message string, metadata map[string]string) *Error {
	return &Error{
		Code:     code,
		Message:  message,
		Metadata: metadata,
	}
}

// Wrap creates a domain error that wraps an underlying cause.
func Wrap(code Code, message string, cause error) *Error {
	return &Error{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// CodeOf extracts the code of the first *Error in err's chain.
// Errors outside the taxonomy report CodeUnexpected; nil reports CodeUnknown.
func CodeOf(err error) Code {
	if err == nil {
		return CodeUnknown
	}
	var target *Error
	if stderrors.As(err, &target) {
		return target.Code
	}
	return CodeUnexpected
}

// MetadataValue returns a metadata entry from the first *Error in err's chain.
func MetadataValue(err error, key string) string {
	var target *Error
	if !stderrors.As(err, &target) || target.Metadata == nil {
		return ""
	}
	return target.Metadata[key]
}
