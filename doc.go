// Package ufuncdispatch provides a pluggable operator-override resolution
// engine for element-wise numeric ("ufunc") operations.
//
// When a ufunc-style operation is called, any argument whose type supplies an
// override hook may intercept the call and reimplement it. This library
// decides which argument gets to do so: it discovers override candidates
// among the call's arguments, normalizes the call into a canonical form, and
// invokes candidate handlers in subtype-before-supertype order until one
// produces a result or all decline.
//
// # Architecture Overview
//
// The library is organized into several packages with distinct
// responsibilities:
//
//	ufuncdispatch/       Root package with core interfaces and sentinels
//	├── runtime/         High-level Dispatcher API
//	├── engine/          Candidate discovery, normalization, invocation loop
//	├── errors/          Structured error types for debugging
//	├── resource/        Per-resolution ownership tracking
//	├── scenario/        YAML-described dispatch scenarios for replay
//	└── cmd/dispatch/    Scenario replay tool with interactive mode
//
// # Quick Start
//
// Give a type an override by implementing Overrider:
//
//	func (a *MaskedArray) TypeOf() ufuncdispatch.TypeIdentity { return maskedType }
//
//	func (a *MaskedArray) UFuncOverride() (ufuncdispatch.Handler, ufuncdispatch.OverrideState) {
//	    return ufuncdispatch.HandlerFunc(a.applyUFunc), ufuncdispatch.OverridePresent
//	}
//
// Then resolve calls through a Dispatcher:
//
//	d := runtime.New()
//	result, overridden, err := d.Call(addOp, inputs, nil, nil, kwargs)
//	if !overridden {
//	    // no argument wants the call; proceed with the default kernels
//	}
//
// # Dispatch Protocol
//
// Exactly one handler wins each attempt. Candidates are discovered across
// inputs, outputs and the optional where-mask, deduplicated by runtime type
// (first occurrence wins). The most specific remaining candidate is invoked
// first: a candidate is passed over while an unconsumed strict subtype of its
// type sits to its right. A handler that returns NotImplemented defers to the
// next candidate; a handler is never invoked twice within one resolution.
// When every candidate defers, resolution fails with a diagnostic naming the
// operand types.
//
// # Thread Safety
//
// A resolution runs synchronously on the calling goroutine and shares no
// state with other resolutions, so concurrent and reentrant use is safe.
// Handlers may themselves trigger nested resolutions.
package ufuncdispatch
