package core

// Event is a notification emitted by a game during a tick.
// Observers receive events fire-and-forget; publishing never fails.
type Event interface {
	// Name identifies the event kind, e.g. "item-dropped".
	Name() string
}

// Publisher receives events from a simulation.
type Publisher interface {
	Publish(e Event)
}

// PublisherFunc adapts a function to the Publisher interface.
type PublisherFunc func(e Event)

// Publish implements Publisher.
func (f PublisherFunc) Publish(e Event) { f(e) }

// Discard is a Publisher that drops every event.
var Discard Publisher = PublisherFunc(func(Event) {})

// Recorder is a Publisher that buffers events until drained.
type Recorder struct {
	events []Event
}

// Publish implements Publisher.
func (r *Recorder) Publish(e Event) {
	r.events = append(r.events, e)
}

// Events returns the buffered events without clearing them.
func (r *Recorder) Events() []Event {
	return r.events
}

// Drain returns the buffered events and empties the buffer.
func (r *Recorder) Drain() []Event {
	if len(r.events) == 0 {
		return nil
	}
	out := r.events
	r.events = nil
	return out
}

// Fanout publishes every event to each of its publishers in order.
type Fanout []Publisher

// Publish implements Publisher.
func (f Fanout) Publish(e Event) {
	for _, p := range f {
		if p != nil {
			p.Publish(e)
		}
	}
}
