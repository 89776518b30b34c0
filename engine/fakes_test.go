package engine

import (
	ufuncdispatch "github.com/wippyai/ufunc-dispatch"
)

type fakeOp string

func (o fakeOp) Name() string { return string(o) }

// fakeHandler is a comparable Handler that records its invocations and can
// act as a Releaser.
type fakeHandler struct {
	fn       func(frame ufuncdispatch.Frame, kwargs ufuncdispatch.KWArgs) (any, error)
	calls    int
	released int
}

func (h *fakeHandler) ApplyUFunc(frame ufuncdispatch.Frame, kwargs ufuncdispatch.KWArgs) (any, error) {
	h.calls++
	return h.fn(frame, kwargs)
}

func (h *fakeHandler) Release() {
	h.released++
}

// fakeOperand implements Overrider with a scripted capability.
type fakeOperand struct {
	typ     ufuncdispatch.TypeIdentity
	handler *fakeHandler
	state   ufuncdispatch.OverrideState
}

func (o *fakeOperand) TypeOf() ufuncdispatch.TypeIdentity { return o.typ }

func (o *fakeOperand) UFuncOverride() (ufuncdispatch.Handler, ufuncdispatch.OverrideState) {
	return o.handler, o.state
}

// plainOperand does not implement Overrider; its type uses default behavior.
type plainOperand struct {
	typ ufuncdispatch.TypeIdentity
}

func (o *plainOperand) TypeOf() ufuncdispatch.TypeIdentity { return o.typ }

func overriding(typ ufuncdispatch.TypeIdentity,
	fn func(frame ufuncdispatch.Frame, kwargs ufuncdispatch.KWArgs) (any, error)) *fakeOperand {
	return &fakeOperand{
		typ:     typ,
		handler: &fakeHandler{fn: fn},
		state:   ufuncdispatch.OverridePresent,
	}
}

func deferring(typ ufuncdispatch.TypeIdentity) *fakeOperand {
	return overriding(typ, func(ufuncdispatch.Frame, ufuncdispatch.KWArgs) (any, error) {
		return ufuncdispatch.NotImplemented, nil
	})
}

func returning(typ ufuncdispatch.TypeIdentity, result any) *fakeOperand {
	return overriding(typ, func(ufuncdispatch.Frame, ufuncdispatch.KWArgs) (any, error) {
		return result, nil
	})
}

func optedOut(typ ufuncdispatch.TypeIdentity) *fakeOperand {
	return &fakeOperand{typ: typ, state: ufuncdispatch.OverrideDisabled}
}

func operands(objs ...ufuncdispatch.Operand) []ufuncdispatch.Operand {
	return objs
}
