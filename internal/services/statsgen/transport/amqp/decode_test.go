package amqp

import (
	"testing"
	"time"

	amqp091 "github.com/rabbitmq/amqp091-go"
)

func TestDecodeMassTransitEnvelope(t *testing.T) {
	body := []byte(`{
		"messageId": "0b2a0000-5d1f-0015-e1c3-08dc7c6de4c9",
		"correlationId": "corr-1",
		"destinationAddress": "rabbitmq://rabbit/eventdata",
		"sentTime": "2026-05-25T10:00:00Z",
		"messageType": ["urn:message:EFR.NetworkObservability.RabbitMQ:EventMetaDataMessage"],
		"message": {"julianDay": "145", "intervalInSeconds": "300", "ready": "true", "reProcess": "false"}
	}`)

	cc, err := Decode(amqp091.Delivery{Body: body, MessageId: "ignored"})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cc.MessageID != "0b2a0000-5d1f-0015-e1c3-08dc7c6de4c9" {
		t.Fatalf("message id = %q", cc.MessageID)
	}
	if cc.CorrelationID != "corr-1" {
		t.Fatalf("correlation id = %q, want corr-1", cc.CorrelationID)
	}
	if cc.DestinationAddress != "rabbitmq://rabbit/eventdata" {
		t.Fatalf("destination = %q", cc.DestinationAddress)
	}
	if want := time.Date(2026, 5, 25, 10, 0, 0, 0, time.UTC); !cc.SentTime.Equal(want) {
		t.Fatalf("sent time = %v, want %v", cc.SentTime, want)
	}
	if cc.Message == nil {
		t.Fatal("expected message")
	}
	if cc.Message.JulianDay != "145" || cc.Message.IntervalInSeconds != "300" {
		t.Fatalf("message = %+v", cc.Message)
	}
	if cc.Message.Ready != "true" || cc.Message.ReProcess != "false" {
		t.Fatalf("message flags = %+v", cc.Message)
	}
}

func TestDecodeBareMessageUsesDeliveryProperties(t *testing.T) {
	sent := time.Date(2026, 5, 25, 11, 0, 0, 0, time.UTC)
	cc, err := Decode(amqp091.Delivery{
		Body:          []byte(`{"julianDay":"146","intervalInSeconds":"60","reprocess":"true"}`),
		MessageId:     "m-1",
		CorrelationId: "c-1",
		RoutingKey:    "eventdata",
		Timestamp:     sent,
	})
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if cc.MessageID != "m-1" || cc.CorrelationID != "c-1" || cc.DestinationAddress != "eventdata" {
		t.Fatalf("context = %+v", cc)
	}
	if !cc.SentTime.Equal(sent) {
		t.Fatalf("sent time = %v, want %v", cc.SentTime, sent)
	}
	if cc.Message == nil || cc.Message.JulianDay != "146" || cc.Message.ReProcess != "true" {
		t.Fatalf("message = %+v", cc.Message)
	}
}

func TestDecodeWithoutMessage(t *testing.T) {
	cases := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "empty body", body: ""},
		{name: "null body", body: " null "},
		{name: "null envelope message", body: `{"messageId":"m-2","message":null}`},
		{name: "invalid json", body: `{"julianDay":`, wantErr: true},
		{name: "wrong message shape", body: `{"message":"text"}`, wantErr: true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cc, err := Decode(amqp091.Delivery{Body: []byte(tc.body)})
			if (err != nil) != tc.wantErr {
				t.Fatalf("err = %v, wantErr %v", err, tc.wantErr)
			}
			if cc == nil {
				t.Fatal("expected a context")
			}
			if cc.Message != nil {
				t.Fatalf("message = %+v, want nil", cc.Message)
			}
		})
	}
}

func TestDecodeToleratesUnparseableSentTime(t *testing.T) {
	fallback := time.Date(2026, 5, 25, 12, 0, 0, 0, time.UTC)
	cases := []struct {
		name     string
		sentTime string
		want     time.Time
	}{
		{name: "not a timestamp", sentTime: `"yesterday"`, want: fallback},
		{name: "number", sentTime: `1716631200`, want: fallback},
		{name: "no offset", sentTime: `"2026-05-25T10:00:00.1234567"`, want: time.Date(2026, 5, 25, 10, 0, 0, 123456700, time.UTC)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			body := []byte(`{"messageId":"m-3","sentTime":` + tc.sentTime + `,"message":{"julianDay":"145","intervalInSeconds":"300"}}`)
			cc, err := Decode(amqp091.Delivery{Body: body, Timestamp: fallback})
			if err != nil {
				t.Fatalf("decode: %v", err)
			}
			if cc.Message == nil || cc.Message.JulianDay != "145" {
				t.Fatalf("message = %+v, want decoded payload", cc.Message)
			}
			if !cc.SentTime.Equal(tc.want) {
				t.Fatalf("sent time = %v, want %v", cc.SentTime, tc.want)
			}
		})
	}
}
