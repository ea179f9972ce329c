package eventbus

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
)

// Topic is a Kafka topic name.
type Topic struct {
	base string
}

func NewTopic(base string) Topic {
	return Topic{base: base}
}

func (t Topic) Base() string {
	return t.base
}

// Event is the payload of one Kafka message.
type Event struct {
	ID      string          `json:"id"`
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

// EventBus publishes events to a topic.
type EventBus interface {
	Publish(ctx context.Context, topic string, event Event) error
	Close()
}

// ErrClosed is returned by Publish after Close.
var ErrClosed = errors.New("event bus closed")

// Discard drops every event. It is used when no brokers are configured.
type Discard struct{}

func (Discard) Publish(context.Context, string, Event) error { return nil }
func (Discard) Close()                                       {}

// MemoryBus keeps published events in memory per topic.
type MemoryBus struct {
	mu     sync.Mutex
	topics map[string][]Event
	closed bool
}

func NewMemoryBus() *MemoryBus {
	return &MemoryBus{topics: make(map[string][]Event)}
}

func (m *MemoryBus) Publish(ctx context.Context, topic string, event Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.closed {
		return ErrClosed
	}
	m.topics[topic] = append(m.topics[topic], event)
	return nil
}

func (m *MemoryBus) Close() {
	m.mu.Lock()
	m.closed = true
	m.mu.Unlock()
}

// Events returns a copy of what was published to topic, oldest first.
func (m *MemoryBus) Events(topic string) []Event {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Event(nil), m.topics[topic]...)
}
