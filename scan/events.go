package scan

import (
	"sync"
	"time"
)

// EventType identifies a scan progress event.
type EventType string

const (
	EventScanStarted   EventType = "scan_started"
	EventFileParsed    EventType = "file_parsed"
	EventFileFailed    EventType = "file_failed"
	EventScanCompleted EventType = "scan_completed"
)

// Event is an observable scan event with typed data.
type Event struct {
	Type      EventType      `json:"type"`
	Timestamp time.Time      `json:"timestamp"`
	Data      map[string]any `json:"data"`
}

// Emitter manages event listeners and dispatches events. File events are
// emitted from worker goroutines, so listeners must be safe for concurrent
// use.
type Emitter struct {
	mu        sync.RWMutex
	listeners []func(Event)
}

// NewEmitter creates a new Emitter.
func NewEmitter() *Emitter {
	return &Emitter{
		listeners: make([]func(Event), 0),
	}
}

// On registers a listener function to receive events.
func (e *Emitter) On(listener func(Event)) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, listener)
}

// Emit dispatches an event to all registered listeners.
// Listeners are called synchronously in registration order.
func (e *Emitter) Emit(event Event) {
	e.mu.RLock()
	listeners := make([]func(Event), len(e.listeners))
	copy(listeners, e.listeners)
	e.mu.RUnlock()

	for _, listener := range listeners {
		listener(event)
	}
}

// ListenerCount returns the number of registered listeners.
func (e *Emitter) ListenerCount() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return len(e.listeners)
}

// ScanStartedEvent creates a scan_started event.
func ScanStartedEvent(root string, files int) Event {
	return Event{
		Type:      EventScanStarted,
		Timestamp: time.Now(),
		Data: map[string]any{
			"root":  root,
			"files": files,
		},
	}
}

// FileParsedEvent creates a file_parsed event.
func FileParsedEvent(path string, sections, blocks int, duration time.Duration) Event {
	return Event{
		Type:      EventFileParsed,
		Timestamp: time.Now(),
		Data: map[string]any{
			"path":        path,
			"sections":    sections,
			"blocks":      blocks,
			"duration_ms": duration.Milliseconds(),
		},
	}
}

// FileFailedEvent creates a file_failed event.
func FileFailedEvent(path, errMsg string, duration time.Duration) Event {
	return Event{
		Type:      EventFileFailed,
		Timestamp: time.Now(),
		Data: map[string]any{
			"path":        path,
			"error":       errMsg,
			"duration_ms": duration.Milliseconds(),
		},
	}
}

// ScanCompletedEvent creates a scan_completed event.
func ScanCompletedEvent(files, parsed, failed int, duration time.Duration) Event {
	return Event{
		Type:      EventScanCompleted,
		Timestamp: time.Now(),
		Data: map[string]any{
			"files":       files,
			"parsed":      parsed,
			"failed":      failed,
			"duration_ms": duration.Milliseconds(),
		},
	}
}
