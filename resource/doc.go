// Package resource tracks ownership of values acquired during a single
// override resolution.
//
// Discovery acquires one capability per candidate; each acquisition must be
// either consumed (ownership transferred to an invocation) or released
// exactly once when the resolution exits, on every exit path including
// mid-discovery failure.
//
// # Acquisition List
//
// The List maps integer handles to acquired values:
//
//	acquired := resource.NewList()
//	defer acquired.ReleaseAll()
//
//	// Track a value, get a handle
//	handle := acquired.Acquire(capability)
//
//	// Transfer ownership out of the list (no release will happen)
//	value, ok := acquired.Consume(handle)
//
// ReleaseAll releases every value still held, calling Release() on values
// implementing Releaser. Releasing is idempotent per entry: a value is never
// released twice, and consumed values are never released.
//
// # Observers
//
// Register observers to trace the lifecycle:
//
//	acquired.Subscribe(obs) // receives acquired/consumed/released events
//
// A List is owned by one resolution and is not safe for concurrent use.
package resource
