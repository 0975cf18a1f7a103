// Package domain defines the inbound event contract of the stats generator
// and the validation applied before any database work.
package domain

import (
	"log/slog"
	"time"
)

// Field names as they appear on the wire.
const (
	FieldJulianDay         = "julianDay"
	FieldIntervalInSeconds = "intervalInSeconds"
)

// EventMetaDataMessage signals that packet data for a julian day and
// interval is ready for reporting. All values arrive string encoded.
type EventMetaDataMessage struct {
	JulianDay         string `json:"julianDay"`
	IntervalInSeconds string `json:"intervalInSeconds"`
	Ready             string `json:"ready"`
	ReProcess         string `json:"reProcess"`
}

// LogValue renders the message as a slog group.
func (m *EventMetaDataMessage) LogValue() slog.Value {
	if m == nil {
		return slog.StringValue("<nil>")
	}
	return slog.GroupValue(
		slog.String(FieldJulianDay, m.JulianDay),
		slog.String(FieldIntervalInSeconds, m.IntervalInSeconds),
		slog.String("ready", m.Ready),
		slog.String("reProcess", m.ReProcess),
	)
}

// ConsumeContext is one delivery of an EventMetaDataMessage.
// A nil Message means the delivery carried no usable payload.
type ConsumeContext struct {
	MessageID          string
	CorrelationID      string
	DestinationAddress string
	SentTime           time.Time
	Message            *EventMetaDataMessage
}

// ID returns the delivery message id, or "" for a nil context.
func (c *ConsumeContext) ID() string {
	if c == nil {
		return ""
	}
	return c.MessageID
}
