package mqtt

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/sweeney/traffic-light/internal/light"
)

func TestFormatPayload(t *testing.T) {
	ts := time.Date(2026, 3, 15, 10, 30, 0, 0, time.UTC)
	transition := light.Transition{
		Timestamp: ts,
		From:      light.Red,
		To:        light.Green,
		HoldMS:    3000,
	}

	data, err := FormatPayload(transition)
	if err != nil {
		t.Fatalf("FormatPayload: %v", err)
	}

	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	if payload.Light.Timestamp != "2026-03-15T10:30:00Z" {
		t.Errorf("timestamp: got %q, want 2026-03-15T10:30:00Z", payload.Light.Timestamp)
	}
	if payload.Light.Event != EventPhaseChange {
		t.Errorf("event: got %q, want %q", payload.Light.Event, EventPhaseChange)
	}
	if payload.Light.From != "RED" {
		t.Errorf("from: got %q, want RED", payload.Light.From)
	}
	if payload.Light.To != "GREEN" {
		t.Errorf("to: got %q, want GREEN", payload.Light.To)
	}
	if payload.Light.HoldMS != 3000 {
		t.Errorf("hold_ms: got %d, want 3000", payload.Light.HoldMS)
	}
}

func TestFormatPayloadTimestampIsUTC(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	transition := light.Transition{
		Timestamp: time.Date(2026, 3, 15, 11, 30, 0, 0, loc),
		From:      light.Green,
		To:        light.Yellow,
		HoldMS:    1000,
	}

	data, err := FormatPayload(transition)
	if err != nil {
		t.Fatalf("FormatPayload: %v", err)
	}

	var payload Payload
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if payload.Light.Timestamp != "2026-03-15T10:30:00Z" {
		t.Errorf("timestamp not converted to UTC: got %q", payload.Light.Timestamp)
	}
}

func TestFormatSystemPayload(t *testing.T) {
	event := SystemEvent{
		Timestamp: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Event:     "SHUTDOWN",
		Reason:    "SIGTERM",
	}

	data, err := FormatSystemPayload(event)
	if err != nil {
		t.Fatalf("FormatSystemPayload: %v", err)
	}

	var payload SystemPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}

	if payload.System.Event != "SHUTDOWN" {
		t.Errorf("event: got %q, want SHUTDOWN", payload.System.Event)
	}
	if payload.System.Reason != "SIGTERM" {
		t.Errorf("reason: got %q, want SIGTERM", payload.System.Reason)
	}
	if payload.System.Timestamp != "2026-03-15T10:00:00Z" {
		t.Errorf("timestamp: got %q", payload.System.Timestamp)
	}
}

func TestFormatSystemPayloadOmitsEmptyReason(t *testing.T) {
	event := SystemEvent{
		Timestamp: time.Date(2026, 3, 15, 10, 0, 0, 0, time.UTC),
		Event:     "HEARTBEAT",
	}

	data, err := FormatSystemPayload(event)
	if err != nil {
		t.Fatalf("FormatSystemPayload: %v", err)
	}

	var raw map[string]map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("unmarshal payload: %v", err)
	}
	if _, present := raw["system"]["reason"]; present {
		t.Error("empty reason should be omitted from JSON")
	}
}

func TestFormatSystemPayloadRawPassthrough(t *testing.T) {
	raw := []byte(`{"status":{"event":"STARTUP"}}`)
	event := SystemEvent{
		Timestamp:  time.Now(),
		Event:      "STARTUP",
		RawPayload: raw,
	}

	data, err := FormatSystemPayload(event)
	if err != nil {
		t.Fatalf("FormatSystemPayload: %v", err)
	}
	if string(data) != string(raw) {
		t.Errorf("raw payload not passed through: got %s", data)
	}
}

func TestFakePublisherRecords(t *testing.T) {
	f := NewFakePublisher()
	transition := light.Transition{
		Timestamp: time.Now(),
		From:      light.Yellow,
		To:        light.Red,
		HoldMS:    3000,
	}

	if err := f.Publish(transition); err != nil {
		t.Fatalf("Publish: %v", err)
	}
	if len(f.Transitions) != 1 || len(f.Payloads) != 1 {
		t.Fatalf("recorded %d transitions, %d payloads", len(f.Transitions), len(f.Payloads))
	}
	if f.Transitions[0].To != light.Red {
		t.Errorf("recorded transition to %s, want RED", f.Transitions[0].To)
	}
}
