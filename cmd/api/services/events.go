package services

import (
	"context"
	"sync"
	"time"

	"portfolio-blog/cmd/api/trace"
	"portfolio-blog/internal/logger"
	"portfolio-blog/eventbus"
	"portfolio-blog/events"
)

// Emitter receives domain events after a write has succeeded.
type Emitter interface {
	Emit(ctx context.Context, evt events.Event)
}

const defaultPublishTimeout = 5 * time.Second

// EventEmitter publishes events to the bus in the background so a slow or
// unreachable broker never fails or delays the request that caused them.
type EventEmitter struct {
	bus     eventbus.EventBus
	topic   eventbus.Topic
	timeout time.Duration
	wg      sync.WaitGroup
}

func NewEventEmitter(bus eventbus.EventBus, topic eventbus.Topic, timeout time.Duration) *EventEmitter {
	if timeout <= 0 {
		timeout = defaultPublishTimeout
	}
	return &EventEmitter{bus: bus, topic: topic, timeout: timeout}
}

func (e *EventEmitter) Emit(ctx context.Context, evt events.Event) {
	fields := logger.Fields{
		"event_id":   evt.GetID(),
		"event_type": string(evt.GetType()),
		"topic":      e.topic.Base(),
		"request_id": trace.RequestIDFromContext(ctx),
	}
	msg, err := eventbus.NewJSONEvent(evt.GetID(), string(evt.GetType()), evt)
	if err != nil {
		fields["error"] = err.Error()
		logger.ErrorWithFields("event encode failed", fields)
		return
	}

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		// the request context is cancelled as soon as the response is written
		pubCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), e.timeout)
		defer cancel()
		if err := e.bus.Publish(pubCtx, e.topic.Base(), msg); err != nil {
			fields["error"] = err.Error()
			logger.ErrorWithFields("event publish failed", fields)
			return
		}
		logger.DebugWithFields("event published", fields)
	}()
}

// Wait blocks until every emitted event has been published or has failed.
func (e *EventEmitter) Wait() {
	e.wg.Wait()
}

func emit(ctx context.Context, e Emitter, evt events.Event) {
	if e == nil {
		return
	}
	e.Emit(ctx, evt)
}
