package camera

// ControlEvent is a notification raised by an orbit controller.
type ControlEvent int

const (
	// EventStart fires when a gesture begins.
	EventStart ControlEvent = iota
	// EventEnd fires when a gesture ends.
	EventEnd
	// EventChange fires when Update (or Reset) moved or re-zoomed the camera.
	EventChange
)

func (e ControlEvent) String() string {
	switch e {
	case EventStart:
		return "start"
	case EventEnd:
		return "end"
	case EventChange:
		return "change"
	default:
		return "unknown"
	}
}

type eventListener struct {
	id int
	fn func(ControlEvent)
}

// eventQueue collects events raised while the controller lock is held.
// The controller drains it after unlocking and calls listeners in registration order.
type eventQueue struct {
	nextID    int
	listeners []eventListener
	pending   []ControlEvent
}

func (q *eventQueue) add(fn func(ControlEvent)) int {
	q.nextID++
	q.listeners = append(q.listeners, eventListener{id: q.nextID, fn: fn})
	return q.nextID
}

func (q *eventQueue) remove(id int) {
	for i, l := range q.listeners {
		if l.id == id {
			q.listeners = append(q.listeners[:i], q.listeners[i+1:]...)
			return
		}
	}
}

func (q *eventQueue) emit(e ControlEvent) {
	q.pending = append(q.pending, e)
}

// drain hands back pending events with a snapshot of the listeners and resets the queue.
func (q *eventQueue) drain() ([]ControlEvent, []func(ControlEvent)) {
	if len(q.pending) == 0 {
		return nil, nil
	}
	events := q.pending
	q.pending = nil
	fns := make([]func(ControlEvent), len(q.listeners))
	for i, l := range q.listeners {
		fns[i] = l.fn
	}
	return events, fns
}

func dispatch(events []ControlEvent, listeners []func(ControlEvent)) {
	for _, e := range events {
		for _, fn := range listeners {
			fn(e)
		}
	}
}
