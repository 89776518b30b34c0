package engine

import (
	ufuncdispatch "github.com/wippyai/ufunc-dispatch"
	"github.com/wippyai/ufunc-dispatch/errors"
	"github.com/wippyai/ufunc-dispatch/resource"
)

// candidate is one distinct-runtime-type argument that supplied a
// non-default, non-disabled override capability.
type candidate struct {
	operand  ufuncdispatch.Operand
	handler  ufuncdispatch.Handler
	handle   resource.Handle
	consumed bool
}

// queryOverride is the per-operand capability query. Operands that do not
// implement Overrider use default behavior and report OverrideAbsent.
func queryOverride(obj ufuncdispatch.Operand) (ufuncdispatch.Handler, ufuncdispatch.OverrideState) {
	o, ok := obj.(ufuncdispatch.Overrider)
	if !ok {
		return nil, ufuncdispatch.OverrideAbsent
	}
	return o.UFuncOverride()
}

// discoverCandidates scans inputs, outputs and the where-mask, in that fixed
// order, and collects at most one candidate per distinct runtime type. The
// first occurrence of a type wins; later operands of an already-seen type
// never get a second chance. Acquired capabilities are tracked in acquired;
// the caller owns their release.
//
// A zero-length result means no override applies and the caller should
// proceed with default computation.
func discoverCandidates(in, out []ufuncdispatch.Operand, where ufuncdispatch.Operand,
	acquired *resource.List) ([]candidate, error) {

	narg := len(in)
	nout := len(out)
	total := narg + nout
	if where != nil {
		total++
	}

	cands := make([]candidate, 0, total)

	for i := 0; i < total; i++ {
		var obj ufuncdispatch.Operand
		switch {
		case i < narg:
			obj = in[i]
		case i < narg+nout:
			obj = out[i-narg]
		default:
			obj = where
		}
		if obj == nil {
			return nil, errors.ArgumentAccess(errors.PhaseDiscover, i)
		}

		// Have we seen this type before? If so, ignore.
		seen := false
		for j := range cands {
			if cands[j].operand.TypeOf() == obj.TypeOf() {
				seen = true
				break
			}
		}
		if seen {
			continue
		}

		handler, state := queryOverride(obj)
		switch state {
		case ufuncdispatch.OverrideAbsent:
			continue
		case ufuncdispatch.OverrideDisabled:
			return nil, errors.UnsupportedOperand(errors.PhaseDiscover, obj.TypeOf().Name())
		}

		cands = append(cands, candidate{
			operand: obj,
			handler: handler,
			handle:  acquired.Acquire(handler),
		})
	}

	return cands, nil
}
