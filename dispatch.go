package ufuncdispatch

// Operand is a single argument participating in dispatch: an input, an
// output, or the where-mask. Operands are borrowed for the duration of one
// resolution and never mutated by the engine.
type Operand interface {
	// TypeOf returns the operand's runtime type identity.
	TypeOf() TypeIdentity
}

// TypeIdentity identifies an operand's runtime type. Implementations must be
// comparable singletons (one value per type): candidate deduplication and
// precedence checks compare identities with ==.
type TypeIdentity interface {
	// Name returns the type name used in diagnostics.
	Name() string

	// SubtypeOf reports whether the receiver is a strict subtype of other.
	// A type is never a strict subtype of itself.
	SubtypeOf(other TypeIdentity) bool
}

// OverrideState is the tri-state answer to "does this operand's type supply
// a non-default override hook?".
type OverrideState uint8

const (
	// OverrideAbsent means the type uses default behavior. The operand is
	// skipped during discovery; this is not an error.
	OverrideAbsent OverrideState = iota

	// OverrideDisabled means the type explicitly opted out of ufunc
	// dispatch. Encountering such an operand fails the whole resolution.
	OverrideDisabled

	// OverridePresent means the type supplies a handler.
	OverridePresent
)

// Overrider is implemented by operands whose type customizes ufunc handling.
// Operands that do not implement it report OverrideAbsent.
type Overrider interface {
	Operand

	// UFuncOverride returns the type's override hook. The handler is only
	// meaningful when the state is OverridePresent.
	UFuncOverride() (Handler, OverrideState)
}

// Handler is a type's override hook. It receives the invocation frame for
// the original call plus the normalized options map. Returning the
// NotImplemented sentinel defers to the next candidate; any other value is
// the final result of the operation.
//
// The frame is owned by the handler. The kwargs map is shared across every
// attempt within one resolution and must not be mutated.
type Handler interface {
	ApplyUFunc(frame Frame, kwargs KWArgs) (any, error)
}

// HandlerFunc adapts a plain function to the Handler interface.
type HandlerFunc func(frame Frame, kwargs KWArgs) (any, error)

// ApplyUFunc calls f.
func (f HandlerFunc) ApplyUFunc(frame Frame, kwargs KWArgs) (any, error) {
	return f(frame, kwargs)
}

// Operation identifies the numeric operation being dispatched. Construction
// of operation objects is up to the caller; the engine only needs a name.
type Operation interface {
	Name() string
}

// KWArgs is the normalized options map: every non-positional piece of call
// information under its canonical name, identical regardless of how the
// caller originally supplied it.
type KWArgs map[string]any

// Frame is the canonical positional argument list passed to a handler:
// (receiver, operation, method, original inputs...). A fresh frame is built
// for every attempt; frames are never reused or mutated after construction.
//
// Receiver is nil only when the frame is handed to an ErrorFormatter after
// every candidate deferred.
type Frame struct {
	Receiver Operand
	Op       Operation
	Method   Method
	Inputs   []Operand
}

// ErrorFormatter renders the diagnostic raised when every discovered
// candidate defers. It receives the invocation frame with a nil receiver
// plus the normalized options map.
type ErrorFormatter func(frame Frame, kwargs KWArgs) string

// Sentinel is a singleton marker value distinct from any domain value,
// including nil.
type Sentinel struct {
	name string
}

// String returns the sentinel's display name.
func (s *Sentinel) String() string { return s.name }

var (
	// NotImplemented is returned by a handler to decline a call, passing
	// it to the next candidate in precedence order.
	NotImplemented = &Sentinel{name: "NotImplemented"}

	// NoValue marks an optional trailing argument the caller left
	// unspecified. It is distinct from nil, which is a real user value.
	NoValue = &Sentinel{name: "<no value>"}
)
