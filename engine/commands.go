package engine

import "github.com/plus3/stacker/stacker"

// EventKind identifies what happened to the game during a frame.
type EventKind int

const (
	EventSpawn EventKind = iota
	EventBounce
	EventPlace
	EventReset
)

func (k EventKind) String() string {
	switch k {
	case EventSpawn:
		return "spawn"
	case EventBounce:
		return "bounce"
	case EventPlace:
		return "place"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event is a notification emitted by a system and delivered to listeners after the frame.
type Event struct {
	Kind  EventKind
	Level int
	// Placement is set for EventPlace.
	Placement *stacker.Placement
}

// Listener receives the events of a frame once every system has run.
type Listener interface {
	OnEvent(event Event)
}

// ListenerFunc adapts a function to the Listener interface.
type ListenerFunc func(Event)

func (f ListenerFunc) OnEvent(event Event) { f(event) }

// Commands buffers events and deferred work until the end of a frame, so listeners never
// observe a half-updated game.
type Commands struct {
	events []Event
	defers []func()
}

func newCommands() *Commands {
	return &Commands{}
}

// Emit queues an event for the frame's listeners.
func (c *Commands) Emit(event Event) {
	c.events = append(c.events, event)
}

// Defer queues a function to run after the events have been delivered.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Events returns the events queued so far.
func (c *Commands) Events() []Event {
	return c.events
}

// Flush delivers queued events in emission order, runs deferred functions and resets the buffer.
func (c *Commands) Flush(listeners []Listener) {
	for _, ev := range c.events {
		for _, l := range listeners {
			l.OnEvent(ev)
		}
	}

	for _, fn := range c.defers {
		fn()
	}

	c.events = c.events[:0]
	c.defers = c.defers[:0]
}
