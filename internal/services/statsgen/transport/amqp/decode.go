package amqp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	amqp091 "github.com/rabbitmq/amqp091-go"

	"github.com/louisbranch/netobs-statsgen/internal/services/statsgen/domain"
)

// envelope is the MassTransit JSON wrapper around a published message.
type envelope struct {
	MessageID          string          `json:"messageId"`
	CorrelationID      string          `json:"correlationId"`
	DestinationAddress string          `json:"destinationAddress"`
	SentTime           json.RawMessage `json:"sentTime"`
	Message            json.RawMessage `json:"message"`
}

// Decode builds a ConsumeContext from a delivery. The body may be a
// MassTransit envelope or a bare message object. Decode always returns a
// context; when the body cannot be decoded its Message is nil and the
// decode error is returned alongside.
func Decode(d amqp091.Delivery) (*domain.ConsumeContext, error) {
	cc := &domain.ConsumeContext{
		MessageID:          d.MessageId,
		CorrelationID:      d.CorrelationId,
		DestinationAddress: d.RoutingKey,
		SentTime:           d.Timestamp,
	}

	body := bytes.TrimSpace(d.Body)
	if len(body) == 0 || bytes.Equal(body, []byte("null")) {
		return cc, nil
	}

	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return cc, fmt.Errorf("decode delivery body: %w", err)
	}
	if env.MessageID != "" {
		cc.MessageID = env.MessageID
	}
	if env.CorrelationID != "" {
		cc.CorrelationID = env.CorrelationID
	}
	if env.DestinationAddress != "" {
		cc.DestinationAddress = env.DestinationAddress
	}
	if sent, ok := parseSentTime(env.SentTime); ok {
		cc.SentTime = sent
	}

	payload := body
	if env.Message != nil {
		payload = bytes.TrimSpace(env.Message)
		if bytes.Equal(payload, []byte("null")) {
			return cc, nil
		}
	}

	var msg domain.EventMetaDataMessage
	if err := json.Unmarshal(payload, &msg); err != nil {
		return cc, fmt.Errorf("decode event metadata message: %w", err)
	}
	cc.Message = &msg
	return cc, nil
}

// sentTimeLayouts are tried in order; MassTransit may omit the offset.
var sentTimeLayouts = []string{time.RFC3339Nano, "2006-01-02T15:04:05.999999999"}

// parseSentTime reads an envelope timestamp. Unparseable values are ignored
// so delivery metadata never blocks the message itself.
func parseSentTime(raw json.RawMessage) (time.Time, bool) {
	var s string
	if len(raw) == 0 || json.Unmarshal(raw, &s) != nil || s == "" {
		return time.Time{}, false
	}
	for _, layout := range sentTimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
