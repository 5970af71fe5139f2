package pubsub

import (
	"testing"
	"time"
)

func TestEmbeddedNATSRoundTrip(t *testing.T) {
	if testing.Short() {
		t.Skip("starts an in-process NATS server")
	}

	ps, err := NewEmbeddedNATSPubSub(DefaultEmbeddedNATSOptions())
	if err != nil {
		t.Fatalf("NewEmbeddedNATSPubSub: %v", err)
	}
	defer ps.Close()

	if ps.GetServerURL() == "" {
		t.Fatal("embedded server has no client URL")
	}

	ch := ps.Subscribe()
	if ps.GetSubscriberCount() != 1 {
		t.Fatalf("subscriber count = %d, want 1", ps.GetSubscriberCount())
	}

	// Give the JetStream relay a moment to attach; it only sees new messages
	time.Sleep(time.Second)

	ps.Publish(Event{
		Type:    EventRunCompleted,
		Payload: map[string]interface{}{"season": float64(2025)},
	})

	select {
	case e := <-ch:
		if e.Type != EventRunCompleted {
			t.Errorf("event type = %q, want %q", e.Type, EventRunCompleted)
		}
		// Payloads round-trip through JSON, so numbers come back as float64
		if e.Payload["season"] != float64(2025) {
			t.Errorf("payload = %v", e.Payload)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("event never arrived from the embedded stream")
	}
}
