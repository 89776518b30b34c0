// Package errors provides structured error types for the ufunc-dispatch
// library.
//
// Errors are categorized by Phase (where in resolution the error occurred)
// and Kind (error category). The Error type includes rich context: the
// offending operand type, the operation and method being dispatched, and a
// cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDispatch, errors.KindHandlerInvocation).
//		Op("add").
//		Method("reduce").
//		Cause(handlerErr).
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.UnsupportedOperand(errors.PhaseDiscover, "OptedOutArray")
//	err := errors.UnknownMethod("__matmul__")
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
