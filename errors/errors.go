package errors

import (
	"fmt"
	"strings"
)

// Phase indicates where in resolution the error occurred
type Phase string

const (
	PhaseDiscover  Phase = "discover"  // candidate discovery
	PhaseNormalize Phase = "normalize" // call normalization
	PhaseDispatch  Phase = "dispatch"  // invocation loop
)

// Kind categorizes the error
type Kind string

const (
	// KindArgumentAccess marks an internal-consistency failure reading an
	// expected input or output slot.
	KindArgumentAccess Kind = "argument_access"

	// KindUnsupportedOperand marks an operand whose override capability is
	// explicitly disabled.
	KindUnsupportedOperand Kind = "unsupported_operand"

	// KindNoApplicableOverride marks a resolution in which every candidate
	// deferred.
	KindNoApplicableOverride Kind = "no_applicable_override"

	// KindHandlerInvocation marks a failure inside a selected handler.
	KindHandlerInvocation Kind = "handler_invocation"

	// KindUnknownMethod marks an unrecognized method identity.
	KindUnknownMethod Kind = "unknown_method"
)

// Error is the structured error type used throughout the library
type Error struct {
	Cause   error
	Phase   Phase
	Kind    Kind
	Operand string // offending operand type name, if any
	Op      string // operation being dispatched, if known
	Method  string // method identity, if known
	Detail  string
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Phase))
	b.WriteString("] ")
	b.WriteString(string(e.Kind))

	if e.Op != "" || e.Method != "" {
		b.WriteString(" in ")
		b.WriteString(e.Op)
		if e.Method != "" {
			b.WriteByte('.')
			b.WriteString(e.Method)
		}
	}

	if e.Operand != "" {
		b.WriteString(": operand '")
		b.WriteString(e.Operand)
		b.WriteByte('\'')
	}

	if e.Detail != "" {
		if e.Operand != "" {
			b.WriteString(" - ")
		} else {
			b.WriteString(": ")
		}
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying error
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Phase == t.Phase && e.Kind == t.Kind
	}
	return false
}

// Builder provides structured error construction
type Builder struct {
	err Error
}

// New creates a new error builder
func New(phase Phase, kind Kind) *Builder {
	return &Builder{
		err: Error{
			Phase: phase,
			Kind:  kind,
		},
	}
}

// Operand sets the offending operand type name
func (b *Builder) Operand(typeName string) *Builder {
	b.err.Operand = typeName
	return b
}

// Op sets the operation name
func (b *Builder) Op(name string) *Builder {
	b.err.Op = name
	return b
}

// Method sets the method identity
func (b *Builder) Method(name string) *Builder {
	b.err.Method = name
	return b
}

// Cause sets the underlying error
func (b *Builder) Cause(err error) *Builder {
	b.err.Cause = err
	return b
}

// Detail sets the human-readable detail message
func (b *Builder) Detail(msg string, args ...any) *Builder {
	if len(args) > 0 {
		b.err.Detail = fmt.Sprintf(msg, args...)
	} else {
		b.err.Detail = msg
	}
	return b
}

// Build returns the constructed error
func (b *Builder) Build() *Error {
	return &b.err
}

// Convenience constructors for common error patterns

// ArgumentAccess creates an internal-consistency error for a missing
// argument slot. This indicates a caller contract violation, not user input.
func ArgumentAccess(phase Phase, index int) *Error {
	return &Error{
		Phase:  phase,
		Kind:   KindArgumentAccess,
		Detail: fmt.Sprintf("failed to retrieve argument %d from input or output tuples", index),
	}
}

// UnsupportedOperand creates an error for an operand whose type explicitly
// opted out of ufunc dispatch.
func UnsupportedOperand(phase Phase, typeName string) *Error {
	return &Error{
		Phase:   phase,
		Kind:    KindUnsupportedOperand,
		Operand: typeName,
		Detail:  "does not support ufuncs (override disabled)",
	}
}

// NoApplicableOverride creates an error carrying the formatted diagnostic
// produced when every candidate deferred.
func NoApplicableOverride(msg string) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindNoApplicableOverride,
		Detail: msg,
	}
}

// HandlerFailed wraps an error raised by a selected handler. The cause is
// preserved verbatim and the loop is aborted.
func HandlerFailed(op, method string, cause error) *Error {
	return &Error{
		Phase:  PhaseDispatch,
		Kind:   KindHandlerInvocation,
		Op:     op,
		Method: method,
		Cause:  cause,
	}
}

// UnknownMethod creates an error for an unrecognized method identity. This
// is a programming-contract violation in the surrounding system.
func UnknownMethod(method string) *Error {
	return &Error{
		Phase:  PhaseNormalize,
		Kind:   KindUnknownMethod,
		Detail: fmt.Sprintf("unknown ufunc method '%s'", method),
	}
}
