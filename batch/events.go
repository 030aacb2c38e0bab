package batch

import (
	"sync"
	"time"
)

// EventType represents the type of batch event.
type EventType string

const (
	EventBatchStarted   EventType = "batch_started"
	EventInputParsed    EventType = "input_parsed"
	EventInputFailed    EventType = "input_failed"
	EventBatchCompleted EventType = "batch_completed"
)

// Event represents an observable batch event with typed data.
type Event struct {
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// EventEmitter manages event listeners and dispatches events.
type EventEmitter struct {
	mu        sync.RWMutex
	listeners []func(Event)
}

// NewEventEmitter creates a new EventEmitter.
func NewEventEmitter() *EventEmitter {
	return &EventEmitter{
		listeners: make([]func(Event), 0),
	}
}

// On registers a listener function to receive events. Input events are
// emitted from worker goroutines, so listeners must be safe for concurrent
// use.
func (e *EventEmitter) On(listener func(Event)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

// Emit dispatches an event to all registered listeners in registration
// order. A nil emitter drops the event.
func (e *EventEmitter) Emit(event Event) {
	if e == nil {
		return
	}
	e.mu.RLock()
	listeners := make([]func(Event), len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// ListenerCount returns the number of registered listeners.
func (e *EventEmitter) ListenerCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners)
}

// BatchStartedEvent creates a batch_started event.
func BatchStartedEvent(id, parser string, inputCount int) Event {
	return Event{
		Type:      EventBatchStarted,
		Timestamp: time.Now(),
		Data: map[string]any{
			"id":          id,
			"parser":      parser,
			"input_count": inputCount,
		},
	}
}

// InputEvent creates an input_parsed or input_failed event for an outcome.
func InputEvent(o Outcome) Event {
	if o.OK {
		return Event{
			Type:      EventInputParsed,
			Timestamp: time.Now(),
			Data: map[string]any{
				"line":  o.Line,
				"value": o.Value,
			},
		}
	}
	return Event{
		Type:      EventInputFailed,
		Timestamp: time.Now(),
		Data: map[string]any{
			"line":  o.Line,
			"error": o.Error,
			"kind":  o.Kind,
		},
	}
}

// BatchCompletedEvent creates a batch_completed event.
func BatchCompletedEvent(passed, failed int, duration time.Duration) Event {
	return Event{
		Type:      EventBatchCompleted,
		Timestamp: time.Now(),
		Data: map[string]any{
			"passed":      passed,
			"failed":      failed,
			"duration_ms": duration.Milliseconds(),
		},
	}
}
