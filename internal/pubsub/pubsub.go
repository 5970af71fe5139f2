// Package pubsub distributes projection run events: per-player updates and
// end-of-run summaries. Local fan-out by default, with an optional NATS
// JetStream upstream so other services (draft room, leaderboards) see runs
// as they land.
package pubsub

import (
	"sync"

	"github.com/kpm34/college-football-fantasy-app-sub003/internal/logger"
)

// Event types published by the projection engine
const (
	EventProjectionUpdated = "projection.updated"
	EventRunCompleted      = "projection.run.completed"
)

// Event is one projection event
type Event struct {
	Type    string                 `json:"type"`
	Payload map[string]interface{} `json:"payload,omitempty"`
}

// Upstream is an upstream publisher (NATS, embedded NATS, or a mock)
type Upstream interface {
	Publish(Event)
	Subscribe() chan Event
	Unsubscribe(chan Event)
}

// PubSub fans events out to local subscribers. With an upstream configured,
// publishes go to the upstream and upstream events come back to local
// subscribers, so every process sees every run.
type PubSub struct {
	mu          sync.RWMutex
	subscribers []chan Event
	upstream    Upstream
}

// New creates a local-only PubSub
func New() *PubSub {
	return &PubSub{subscribers: []chan Event{}}
}

// NewWithUpstream creates a PubSub bridged to an upstream publisher
func NewWithUpstream(upstream Upstream) *PubSub {
	ps := &PubSub{
		subscribers: []chan Event{},
		upstream:    upstream,
	}

	go func() {
		ch := upstream.Subscribe()
		for event := range ch {
			ps.publishLocal(event)
		}
		logger.Debug("Upstream event channel closed")
	}()

	return ps
}

// Subscribe adds a subscriber and returns its event channel
func (ps *PubSub) Subscribe() chan Event {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	ch := make(chan Event, 10)
	ps.subscribers = append(ps.subscribers, ch)
	return ch
}

// Unsubscribe removes a subscriber and closes its channel
func (ps *PubSub) Unsubscribe(ch chan Event) {
	ps.mu.Lock()
	defer ps.mu.Unlock()

	for i, sub := range ps.subscribers {
		if sub == ch {
			close(ch)
			ps.subscribers = append(ps.subscribers[:i], ps.subscribers[i+1:]...)
			break
		}
	}
}

// Publish sends an event to the upstream if configured, otherwise to local
// subscribers. Upstream events come back via the bridge subscription.
func (ps *PubSub) Publish(event Event) {
	if ps.upstream != nil {
		ps.upstream.Publish(event)
		return
	}
	ps.publishLocal(event)
}

func (ps *PubSub) publishLocal(event Event) {
	ps.mu.RLock()
	subs := make([]chan Event, len(ps.subscribers))
	copy(subs, ps.subscribers)
	ps.mu.RUnlock()

	for _, ch := range subs {
		select {
		case ch <- event:
		default:
			// Slow subscriber, drop rather than block the run
		}
	}
}
