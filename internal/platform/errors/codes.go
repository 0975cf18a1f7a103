// Package errors provides the structured error taxonomy shared by the stats generator.
package errors

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Inbound message errors
	CodeNullContext  Code = "NULL_CONTEXT"
	CodeEmptyMessage Code = "EMPTY_MESSAGE"
	CodeMissingField Code = "MISSING_FIELD"

	// Database errors
	CodeConnection Code = "CONNECTION_ERROR"

	// CodeUnexpected covers every failure that is not classified above.
	CodeUnexpected Code = "UNEXPECTED_ERROR"
)

// IsValidation reports whether the code describes a rejected inbound message.
func (c Code) IsValidation() bool {
	switch c {
	case CodeNullContext, CodeEmptyMessage, CodeMissingField:
		return true
	default:
		return false
	}
}

// Outcome returns the lowercase label used for metrics and span attributes.
func (c Code) Outcome() string {
	switch c {
	case CodeNullContext:
		return "null_context"
	case CodeEmptyMessage:
		return "empty_message"
	case CodeMissingField:
		return "missing_field"
	case CodeConnection:
		return "connection_error"
	case CodeUnexpected:
		return "unexpected_error"
	default:
		return "unknown"
	}
}
