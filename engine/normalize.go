package engine

import (
	ufuncdispatch "github.com/wippyai/ufunc-dispatch"
	"github.com/wippyai/ufunc-dispatch/errors"
)

// Per-method positional remapping tables. An empty slot name marks a
// positional argument already handled as an input or output; it is not
// copied into the options map.
var (
	reduceSlots     = []string{"", "axis", "dtype", "", "keepdims", "initial", "where"}
	accumulateSlots = []string{"", "axis", "dtype", ""}
	reduceAtSlots   = []string{"", "", "axis", "dtype", ""}
)

// normalizeKWArgs builds the canonical options map for one resolution:
// caller-supplied named arguments copied verbatim, the out entry forced to
// the original output sequence (or removed when no outputs were supplied),
// and any leftover trailing positional arguments folded in under the
// method's slot names.
//
// out == nil means outputs are absent; a non-nil empty slice means present.
func normalizeKWArgs(method ufuncdispatch.Method, out []ufuncdispatch.Operand,
	trailing []any, named ufuncdispatch.KWArgs) (ufuncdispatch.KWArgs, error) {

	kw := make(ufuncdispatch.KWArgs, len(named)+len(trailing)+1)
	for k, v := range named {
		kw[k] = v
	}

	if out != nil {
		// Replace any positionally-smuggled out with the original outputs.
		kw["out"] = out
	} else {
		delete(kw, "out")
	}

	switch method {
	case ufuncdispatch.MethodCall, ufuncdispatch.MethodOuter:
		renameSignatureKey(kw)
	case ufuncdispatch.MethodReduce:
		copyPositionalArgs(reduceSlots, trailing, kw)
	case ufuncdispatch.MethodAccumulate:
		copyPositionalArgs(accumulateSlots, trailing, kw)
	case ufuncdispatch.MethodReduceAt:
		copyPositionalArgs(reduceAtSlots, trailing, kw)
	case ufuncdispatch.MethodAt:
		// at has no trailing remap
	default:
		return nil, errors.UnknownMethod(method.String())
	}

	return kw, nil
}

// copyPositionalArgs folds trailing positional arguments into the options
// map under the slot names of the method's table. The initial slot (reduce
// only) is skipped entirely when the caller passed the NoValue sentinel; any
// other value, including nil, is copied as-is.
func copyPositionalArgs(slots []string, trailing []any, kw ufuncdispatch.KWArgs) {
	for i, arg := range trailing {
		if i >= len(slots) {
			break
		}
		name := slots[i]
		if name == "" {
			// already handled as input or output
			continue
		}
		if name == "initial" && arg == ufuncdispatch.NoValue {
			continue
		}
		kw[name] = arg
	}
}

// renameSignatureKey renames a sig option to signature. Both are never
// present simultaneously; that is validated upstream.
func renameSignatureKey(kw ufuncdispatch.KWArgs) {
	if v, ok := kw["sig"]; ok {
		kw["signature"] = v
		delete(kw, "sig")
	}
}
