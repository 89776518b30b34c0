package engine

import (
	ufuncdispatch "github.com/wippyai/ufunc-dispatch"
)

// newFrame builds the canonical positional frame for one attempt:
// (receiver, operation, method, original inputs...). The inputs are copied
// so the handler owns the frame it receives; frames are never reused across
// attempts.
func newFrame(recv ufuncdispatch.Operand, op ufuncdispatch.Operation,
	method ufuncdispatch.Method, in []ufuncdispatch.Operand) ufuncdispatch.Frame {

	inputs := make([]ufuncdispatch.Operand, len(in))
	copy(inputs, in)
	return ufuncdispatch.Frame{
		Receiver: recv,
		Op:       op,
		Method:   method,
		Inputs:   inputs,
	}
}
