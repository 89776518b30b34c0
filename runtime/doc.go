// Package runtime provides the high-level API for override resolution.
//
// A Dispatcher wraps the engine with configuration and exposes one
// convenience method per calling convention:
//
//	d := runtime.New(runtime.WithLogger(logger))
//
//	result, overridden, err := d.Call(op, inputs, outputs, where, kwargs)
//	if err != nil {
//	    return err
//	}
//	if !overridden {
//	    // no argument intercepted the call; run the default kernels
//	}
//
// The convenience methods assemble the trailing-argument layout of each call
// shape; CheckOverride is the raw entry point for callers that already hold
// a parsed argument list.
//
// Most users should use this package. The engine package is for advanced use
// cases requiring direct control over the resolution stages.
package runtime
