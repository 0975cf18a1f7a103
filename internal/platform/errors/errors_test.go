package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestErrorIsMatchesByCode(t *testing.T) {
	err := fmt.Errorf("consume: %w", New(CodeEmptyMessage, "message is empty"))

	if !stderrors.Is(err, &Error{Code: CodeEmptyMessage}) {
		t.Fatal("expected wrapped error to match by code")
	}
	if stderrors.Is(err, &Error{Code: CodeMissingField}) {
		t.Fatal("expected different code not to match")
	}
}

func TestWrapUnwrapsCause(t *testing.T) {
	cause := stderrors.New("dial tcp: refused")
	err := Wrap(CodeConnection, "open database connection", cause)

	if !stderrors.Is(err, cause) {
		t.Fatal("expected cause to be reachable through Unwrap")
	}
	if got, want := err.Error(), "open database connection: dial tcp: refused"; got != want {
		t.Fatalf("Error() = %q, want %q", got, want)
	}
}

func TestCodeOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Code
	}{
		{name: "nil", err: nil, want: CodeUnknown},
		{name: "plain", err: stderrors.New("boom"), want: CodeUnexpected},
		{name: "domain", err: New(CodeNullContext, "context is nil"), want: CodeNullContext},
		{name: "wrapped", err: fmt.Errorf("x: %w", Wrap(CodeConnection, "connect", stderrors.New("y"))), want: CodeConnection},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := CodeOf(tc.err); got != tc.want {
				t.Fatalf("CodeOf = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestMetadataValue(t *testing.T) {
	err := fmt.Errorf("validate: %w", WithMetadata(CodeMissingField, "field is required", map[string]string{
		MetadataField: "julianDay",
	}))
	if got := MetadataValue(err, MetadataField); got != "julianDay" {
		t.Fatalf("field = %q, want %q", got, "julianDay")
	}
	if got := MetadataValue(stderrors.New("plain"), MetadataField); got != "" {
		t.Fatalf("field = %q, want empty", got)
	}
}

func TestCodeClassification(t *testing.T) {
	for _, code := range []Code{CodeNullContext, CodeEmptyMessage, CodeMissingField} {
		if !code.IsValidation() {
			t.Fatalf("%s should be a validation code", code)
		}
	}
	for _, code := range []Code{CodeConnection, CodeUnexpected, CodeUnknown} {
		if code.IsValidation() {
			t.Fatalf("%s should not be a validation code", code)
		}
	}
	if got := CodeConnection.Outcome(); got != "connection_error" {
		t.Fatalf("outcome = %q, want connection_error", got)
	}
}
