package resource

// Handle is an opaque reference to an acquired value in a List.
// Handle 0 is reserved and always invalid.
type Handle uint32

// Releaser is implemented by acquired values that hold state requiring
// explicit cleanup. Release is called at most once.
type Releaser interface {
	Release()
}

// Event types for acquisition lifecycle notifications.
type EventType uint8

const (
	EventAcquired EventType = iota
	EventConsumed
	EventReleased
)

// Event represents an acquisition lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	Type   EventType
}

// Observer receives notifications about acquisition lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}
