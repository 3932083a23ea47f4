package patch

import (
	"github.com/eapache/queue"

	"github.com/go-drift/patchbay/pkg/errors"
)

// Action tells the host what kind of scene change an Event describes.
type Action int

const (
	// ActionGroupAdded: a group appeared. Value1 is the group id.
	ActionGroupAdded Action = iota
	// ActionGroupRemoved: a group left. Value1 is the group id.
	ActionGroupRemoved
	// ActionGroupRenamed: Value1 is the group id, ValueStr the new name.
	ActionGroupRenamed
	// ActionPortAdded: Value1 is the group id, Value2 the port id.
	ActionPortAdded
	// ActionPortRemoved: Value1 is the group id, Value2 the port id.
	ActionPortRemoved
	// ActionPortsConnected: Value1 is the connection id, ValueStr the
	// "groupOut:portOut:groupIn:portIn" endpoint string.
	ActionPortsConnected
	// ActionPortsDisconnected: Value1 is the connection id.
	ActionPortsDisconnected
)

func (a Action) String() string {
	switch a {
	case ActionGroupAdded:
		return "group-added"
	case ActionGroupRemoved:
		return "group-removed"
	case ActionGroupRenamed:
		return "group-renamed"
	case ActionPortAdded:
		return "port-added"
	case ActionPortRemoved:
		return "port-removed"
	case ActionPortsConnected:
		return "ports-connected"
	case ActionPortsDisconnected:
		return "ports-disconnected"
	default:
		return "unknown"
	}
}

// Event is one scene change awaiting delivery to the host.
type Event struct {
	Action   Action
	Value1   int
	Value2   int
	ValueStr string
}

// EventQueue is a FIFO of scene events. The scene enqueues as it
// mutates; the host drains at its own pace, typically once per frame.
type EventQueue struct {
	pending *queue.Queue
}

// NewEventQueue returns an empty queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{pending: queue.New()}
}

// Push appends an event.
func (q *EventQueue) Push(ev Event) {
	q.pending.Add(ev)
}

// Len returns the number of undelivered events.
func (q *EventQueue) Len() int {
	return q.pending.Length()
}

// Flush delivers every pending event to fn in order. Events pushed
// while flushing (by a handler mutating the scene) are delivered in
// the same pass. A panicking handler is reported and stops the flush;
// the remaining events stay queued.
func (q *EventQueue) Flush(fn func(Event)) {
	defer errors.Recover("patch.EventQueue.Flush")
	for q.pending.Length() > 0 {
		ev := q.pending.Remove().(Event)
		if fn != nil {
			fn(ev)
		}
	}
}

// Reset drops all pending events.
func (q *EventQueue) Reset() {
	for q.pending.Length() > 0 {
		q.pending.Remove()
	}
}
