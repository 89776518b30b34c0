// Package engine implements override resolution for ufunc-style calls.
//
// Resolution runs in three stages, consumed leaf-first by Resolve:
//
//  1. Candidate discovery scans inputs, outputs and the optional where-mask,
//     queries each operand's override capability, deduplicates by runtime
//     type and rejects explicit opt-outs.
//  2. Call normalization folds trailing positional arguments and
//     caller-supplied named arguments into one canonical options map, with a
//     per-method positional remapping table.
//  3. The invocation loop repeatedly selects the most specific remaining
//     candidate, builds a fresh invocation frame, and calls its handler,
//     retrying on deferral until a result is produced or all candidates
//     decline.
//
// Discovery and normalization are independent of each other; the loop
// depends on both.
//
// # Selection Rule
//
// Candidates are scanned left to right in discovery order (inputs, then
// outputs, then the where-mask). A candidate is passed over while some
// not-yet-consumed candidate to its right has a runtime type that is a
// strict subtype of its own. Among unrelated types, leftmost wins. A
// selected candidate is consumed immediately, regardless of outcome, so no
// handler is ever invoked twice within one resolution.
//
// # Ownership
//
// Candidate capabilities acquired during discovery are tracked in a
// resource.List and released on every exit path. The normalized options map
// is built once per resolution and shared read-only across attempts.
// Invocation frames are freshly allocated per attempt and handed to the
// handler, never reused.
//
// # Reentrancy
//
// Resolve keeps no mutable state between calls; handlers may recursively
// trigger nested resolutions.
package engine
