package mocks

import (
	"context"
	"sync"

	"github.com/mcoot/monopoly-go/internal/model"
)

// RecordingNotifier keeps every event it is given
type RecordingNotifier struct {
	mu     sync.Mutex
	events []model.Event
}

// NewRecordingNotifier creates an empty RecordingNotifier
func NewRecordingNotifier() *RecordingNotifier {
	return &RecordingNotifier{}
}

func (n *RecordingNotifier) Notify(ctx context.Context, event model.Event) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = append(n.events, event)
}

// Events returns a copy of the recorded events
func (n *RecordingNotifier) Events() []model.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]model.Event(nil), n.events...)
}

// Types returns the type of each recorded event, in order
func (n *RecordingNotifier) Types() []model.EventType {
	n.mu.Lock()
	defer n.mu.Unlock()
	types := make([]model.EventType, len(n.events))
	for i, e := range n.events {
		types[i] = e.Type
	}
	return types
}

// OfType returns the recorded events of the given type
func (n *RecordingNotifier) OfType(t model.EventType) []model.Event {
	n.mu.Lock()
	defer n.mu.Unlock()
	var matched []model.Event
	for _, e := range n.events {
		if e.Type == t {
			matched = append(matched, e)
		}
	}
	return matched
}

// Has returns true if an event of the given type was recorded
func (n *RecordingNotifier) Has(t model.EventType) bool {
	return len(n.OfType(t)) > 0
}

// Reset discards all recorded events
func (n *RecordingNotifier) Reset() {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.events = nil
}
