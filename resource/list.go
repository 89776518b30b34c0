package resource

type entryState uint8

const (
	stateHeld entryState = iota
	stateConsumed
	stateReleased
)

type entry struct {
	value any
	state entryState
}

// List tracks values acquired by a single resolution. Entries are appended
// in acquisition order; handles are stable for the lifetime of the list.
type List struct {
	entries   []entry
	observers []Observer
}

// NewList creates an empty acquisition list.
func NewList() *List {
	return &List{}
}

// Acquire records a value and returns its handle.
func (l *List) Acquire(value any) Handle {
	l.entries = append(l.entries, entry{value: value})
	h := Handle(len(l.entries))

	l.notify(Event{
		Type:   EventAcquired,
		Handle: h,
		Value:  value,
	})

	return h
}

// Get retrieves a held value by handle.
func (l *List) Get(h Handle) (any, bool) {
	e, ok := l.lookup(h)
	if !ok || e.state != stateHeld {
		return nil, false
	}
	return e.value, true
}

// Consume transfers ownership of a held value out of the list. The value
// will not be released by ReleaseAll.
func (l *List) Consume(h Handle) (any, bool) {
	e, ok := l.lookup(h)
	if !ok || e.state != stateHeld {
		return nil, false
	}
	e.state = stateConsumed

	l.notify(Event{
		Type:   EventConsumed,
		Handle: h,
		Value:  e.value,
	})

	return e.value, true
}

// ReleaseAll releases every value still held, in acquisition order. Values
// implementing Releaser get Release() called exactly once; consumed and
// already-released entries are skipped. Safe to call multiple times.
func (l *List) ReleaseAll() {
	for i := range l.entries {
		e := &l.entries[i]
		if e.state != stateHeld {
			continue
		}
		e.state = stateReleased

		if r, ok := e.value.(Releaser); ok {
			r.Release()
		}

		l.notify(Event{
			Type:   EventReleased,
			Handle: Handle(i + 1),
			Value:  e.value,
		})
	}
}

// Len returns the number of values still held.
func (l *List) Len() int {
	n := 0
	for i := range l.entries {
		if l.entries[i].state == stateHeld {
			n++
		}
	}
	return n
}

// Subscribe adds an observer for lifecycle events.
func (l *List) Subscribe(o Observer) {
	l.observers = append(l.observers, o)
}

func (l *List) lookup(h Handle) (*entry, bool) {
	if h == 0 || int(h) > len(l.entries) {
		return nil, false
	}
	return &l.entries[h-1], true
}

func (l *List) notify(e Event) {
	for _, o := range l.observers {
		o.OnResourceEvent(e)
	}
}
