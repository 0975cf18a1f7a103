package domain

import (
	"strings"

	apperrors "github.com/louisbranch/netobs-statsgen/internal/platform/errors"
)

// Validate checks that a delivery is structurally usable and returns its message.
// Failures are *apperrors.Error values with CodeNullContext, CodeEmptyMessage
// or CodeMissingField; the latter names the field in its metadata.
func Validate(cc *ConsumeContext) (*EventMetaDataMessage, error) {
	if cc == nil {
		return nil, apperrors.New(apperrors.CodeNullContext, "consume context is nil")
	}
	msg := cc.Message
	if msg == nil {
		return nil, apperrors.New(apperrors.CodeEmptyMessage, "the incoming message is empty")
	}
	if strings.TrimSpace(msg.JulianDay) == "" {
		return nil, missingField(FieldJulianDay)
	}
	if strings.TrimSpace(msg.IntervalInSeconds) == "" {
		return nil, missingField(FieldIntervalInSeconds)
	}
	return msg, nil
}

// MissingField returns the offending field name of a CodeMissingField error.
func MissingField(err error) string {
	if apperrors.CodeOf(err) != apperrors.CodeMissingField {
		return ""
	}
	return apperrors.MetadataValue(err, apperrors.MetadataField)
}

func missingField(name string) error {
	return apperrors.WithMetadata(
		apperrors.CodeMissingField,
		name+" is required",
		map[string]string{apperrors.MetadataField: name},
	)
}
