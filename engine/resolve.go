package engine

import (
	"go.uber.org/zap"

	ufuncdispatch "github.com/wippyai/ufunc-dispatch"
	"github.com/wippyai/ufunc-dispatch/errors"
	"github.com/wippyai/ufunc-dispatch/resource"
)

// Resolve checks a ufunc-style call for argument overrides and, if any
// apply, invokes handlers in subtype-before-supertype order until one
// produces a result.
//
// in holds the original input operands, out the output operands (nil when
// the caller supplied none; present-but-empty is distinct from absent), and
// where the optional where-mask. trailing holds the call's remaining
// positional arguments and named its keyword-style arguments; both are
// folded into the normalized options map passed to every handler.
//
// Resolve returns (nil, false, nil) when no argument overrides the call and
// the caller should proceed with the default computation. It returns
// (result, true, nil) with the first non-deferred handler result otherwise.
func Resolve(op ufuncdispatch.Operation, method ufuncdispatch.Method,
	in, out []ufuncdispatch.Operand, where ufuncdispatch.Operand,
	trailing []any, named ufuncdispatch.KWArgs) (any, bool, error) {

	acquired := resource.NewList()
	defer acquired.ReleaseAll()

	cands, err := discoverCandidates(in, out, where, acquired)
	if err != nil {
		return nil, false, err
	}
	// No overrides, bail out.
	if len(cands) == 0 {
		return nil, false, nil
	}

	log := Logger()
	log.Debug("override candidates discovered",
		zap.String("op", op.Name()),
		zap.Stringer("method", method),
		zap.Int("count", len(cands)))

	kwargs, err := normalizeKWArgs(method, out, trailing, named)
	if err != nil {
		return nil, false, err
	}

	for {
		idx := selectCandidate(cands)
		if idx < 0 {
			// Every candidate deferred.
			frame := newFrame(nil, op, method, in)
			msg := Formatter()(frame, kwargs)
			return nil, false, errors.NoApplicableOverride(msg)
		}

		c := &cands[idx]
		// Consumed regardless of outcome; never invoked twice.
		c.consumed = true
		acquired.Consume(c.handle)

		frame := newFrame(c.operand, op, method, in)
		result, err := c.handler.ApplyUFunc(frame, kwargs)
		if err != nil {
			return nil, false, errors.HandlerFailed(op.Name(), method.String(), err)
		}
		if result == ufuncdispatch.NotImplemented {
			log.Debug("handler deferred",
				zap.String("op", op.Name()),
				zap.String("type", c.operand.TypeOf().Name()))
			continue
		}

		return result, true, nil
	}
}

// selectCandidate returns the index of the most specific unconsumed
// candidate, or -1 when none remain. A candidate is passed over while some
// unconsumed candidate to its right has a runtime type that is a strict
// subtype of its own; among unrelated types, leftmost wins.
func selectCandidate(cands []candidate) int {
	for i := range cands {
		if cands[i].consumed {
			continue
		}
		ti := cands[i].operand.TypeOf()

		shadowed := false
		for j := i + 1; j < len(cands); j++ {
			if cands[j].consumed {
				continue
			}
			tj := cands[j].operand.TypeOf()
			if tj != ti && tj.SubtypeOf(ti) {
				shadowed = true
				break
			}
		}
		if !shadowed {
			return i
		}
	}
	return -1
}
