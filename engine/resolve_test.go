package engine

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	ufuncdispatch "github.com/wippyai/ufunc-dispatch"
	"github.com/wippyai/ufunc-dispatch/errors"
)

func TestResolve_NoCandidateFastPath(t *testing.T) {
	base := ufuncdispatch.NewType("ndarray", nil)
	in := operands(&plainOperand{typ: base}, &plainOperand{typ: base})

	result, overridden, err := Resolve(fakeOp("add"), ufuncdispatch.MethodCall, in, nil, nil, nil, nil)
	require.NoError(t, err)
	require.False(t, overridden)
	require.Nil(t, result)
}

func TestResolve_NoCandidateSkipsNormalization(t *testing.T) {
	// With zero candidates the engine bails out before normalization, so
	// even an unrecognized method identity is never seen.
	base := ufuncdispatch.NewType("ndarray", nil)
	in := operands(&plainOperand{typ: base})

	_, overridden, err := Resolve(fakeOp("add"), ufuncdispatch.Method(99), in, nil, nil, nil, nil)
	require.NoError(t, err)
	require.False(t, overridden)
}

func TestResolve_SingleHandlerResult(t *testing.T) {
	typ := ufuncdispatch.NewType("MaskedArray", nil)
	obj := returning(typ, 42)

	result, overridden, err := Resolve(fakeOp("add"), ufuncdispatch.MethodCall, operands(obj), nil, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, overridden)
	require.Equal(t, 42, result)
	require.Equal(t, 1, obj.handler.calls)
}

func TestResolve_SubtypePrecedence(t *testing.T) {
	base := ufuncdispatch.NewType("ndarray", nil)
	super := ufuncdispatch.NewType("MaskedArray", base)
	sub := ufuncdispatch.NewType("UnitMaskedArray", super)

	var order []string
	a := overriding(super, func(ufuncdispatch.Frame, ufuncdispatch.KWArgs) (any, error) {
		order = append(order, "super")
		return "from super", nil
	})
	b := overriding(sub, func(ufuncdispatch.Frame, ufuncdispatch.KWArgs) (any, error) {
		order = append(order, "sub")
		return ufuncdispatch.NotImplemented, nil
	})

	// Discovered in order [super, sub]; the subtype still goes first.
	result, overridden, err := Resolve(fakeOp("add"), ufuncdispatch.MethodCall, operands(a, b), nil, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, overridden)
	require.Equal(t, "from super", result)
	require.Equal(t, []string{"sub", "super"}, order)
}

func TestResolve_LeftmostAmongUnrelated(t *testing.T) {
	ta := ufuncdispatch.NewType("A", nil)
	tb := ufuncdispatch.NewType("B", nil)

	a := returning(ta, "from A")
	b := returning(tb, "from B")

	result, _, err := Resolve(fakeOp("add"), ufuncdispatch.MethodCall, operands(a, b), nil, nil, nil, nil)
	require.NoError(t, err)
	require.Equal(t, "from A", result)
	require.Equal(t, 0, b.handler.calls)
}

func TestResolve_ReceiverPerAttempt(t *testing.T) {
	base := ufuncdispatch.NewType("ndarray", nil)
	super := ufuncdispatch.NewType("MaskedArray", base)
	sub := ufuncdispatch.NewType("UnitMaskedArray", super)

	var receivers []ufuncdispatch.Operand
	record := func(frame ufuncdispatch.Frame, _ ufuncdispatch.KWArgs) (any, error) {
		receivers = append(receivers, frame.Receiver)
		return ufuncdispatch.NotImplemented, nil
	}
	a := overriding(super, record)
	b := overriding(sub, record)

	_, _, err := Resolve(fakeOp("add"), ufuncdispatch.MethodCall, operands(a, b), nil, nil, nil, nil)
	require.Error(t, err) // both deferred
	require.Len(t, receivers, 2)
	require.Same(t, b, receivers[0])
	require.Same(t, a, receivers[1])
}

func TestResolve_HandlerErrorAborts(t *testing.T) {
	ta := ufuncdispatch.NewType("A", nil)
	tb := ufuncdispatch.NewType("B", nil)

	boom := stderrors.New("kernel exploded")
	a := overriding(ta, func(ufuncdispatch.Frame, ufuncdispatch.KWArgs) (any, error) {
		return nil, boom
	})
	b := returning(tb, "never")

	_, overridden, err := Resolve(fakeOp("add"), ufuncdispatch.MethodCall, operands(a, b), nil, nil, nil, nil)
	require.False(t, overridden)
	require.Error(t, err)
	require.True(t, stderrors.Is(err, boom), "handler errors propagate verbatim")
	require.True(t, stderrors.Is(err, errors.HandlerFailed("", "", nil)))
	require.Equal(t, 0, b.handler.calls, "no further candidates after a failure")
}

func TestResolve_ExhaustionInvokesFormatterOnce(t *testing.T) {
	prev := Formatter()
	defer SetFormatter(prev)

	var calls int
	var gotFrame ufuncdispatch.Frame
	SetFormatter(func(frame ufuncdispatch.Frame, kwargs ufuncdispatch.KWArgs) string {
		calls++
		gotFrame = frame
		return "all deferred"
	})

	ta := ufuncdispatch.NewType("A", nil)
	tb := ufuncdispatch.NewType("B", nil)
	a := deferring(ta)
	b := deferring(tb)

	_, overridden, err := Resolve(fakeOp("add"), ufuncdispatch.MethodCall, operands(a, b), nil, nil, nil, nil)
	require.False(t, overridden)
	require.Error(t, err)
	require.True(t, stderrors.Is(err, errors.NoApplicableOverride("")))
	require.Contains(t, err.Error(), "all deferred")

	require.Equal(t, 1, calls, "formatter runs exactly once")
	require.Nil(t, gotFrame.Receiver, "formatter frame carries the null placeholder")
	require.Len(t, gotFrame.Inputs, 2)

	require.Equal(t, 1, a.handler.calls)
	require.Equal(t, 1, b.handler.calls)
}

func TestResolve_SingleInvocationPerCandidate(t *testing.T) {
	base := ufuncdispatch.NewType("ndarray", nil)
	super := ufuncdispatch.NewType("MaskedArray", base)
	sub := ufuncdispatch.NewType("UnitMaskedArray", super)
	other := ufuncdispatch.NewType("DiagonalArray", base)

	a := deferring(super)
	b := deferring(sub)
	c := deferring(other)

	_, _, err := Resolve(fakeOp("add"), ufuncdispatch.MethodCall, operands(a, b, c), nil, nil, nil, nil)
	require.Error(t, err)
	for _, obj := range []*fakeOperand{a, b, c} {
		require.Equal(t, 1, obj.handler.calls, "each candidate invoked exactly once")
	}
}

func TestResolve_KWArgsSharedAcrossAttempts(t *testing.T) {
	ta := ufuncdispatch.NewType("A", nil)
	tb := ufuncdispatch.NewType("B", nil)

	var ids []string
	record := func(_ ufuncdispatch.Frame, kwargs ufuncdispatch.KWArgs) (any, error) {
		ids = append(ids, fmt.Sprintf("%p", kwargs))
		return ufuncdispatch.NotImplemented, nil
	}
	a := overriding(ta, record)
	b := overriding(tb, record)

	_, _, err := Resolve(fakeOp("add"), ufuncdispatch.MethodCall, operands(a, b), nil, nil, nil,
		ufuncdispatch.KWArgs{"axis": 0})
	require.Error(t, err)
	require.Len(t, ids, 2)
	require.Equal(t, ids[0], ids[1], "the same normalized map is passed to every attempt")
}

func TestResolve_FrameFreshPerAttempt(t *testing.T) {
	ta := ufuncdispatch.NewType("A", nil)
	tb := ufuncdispatch.NewType("B", nil)

	var sawNil bool
	a := overriding(ta, func(frame ufuncdispatch.Frame, _ ufuncdispatch.KWArgs) (any, error) {
		frame.Inputs[0] = nil // handler owns its frame
		return ufuncdispatch.NotImplemented, nil
	})
	b := overriding(tb, func(frame ufuncdispatch.Frame, _ ufuncdispatch.KWArgs) (any, error) {
		sawNil = frame.Inputs[0] == nil
		return "done", nil
	})

	_, _, err := Resolve(fakeOp("add"), ufuncdispatch.MethodCall, operands(a, b), nil, nil, nil, nil)
	require.NoError(t, err)
	require.False(t, sawNil, "mutating one frame must not leak into the next attempt")
}

func TestResolve_OutInKWArgs(t *testing.T) {
	ta := ufuncdispatch.NewType("A", nil)
	tout := ufuncdispatch.NewType("ndarray", nil)
	out := operands(&plainOperand{typ: tout})

	var got any
	a := overriding(ta, func(_ ufuncdispatch.Frame, kwargs ufuncdispatch.KWArgs) (any, error) {
		got = kwargs["out"]
		return "done", nil
	})

	_, _, err := Resolve(fakeOp("add"), ufuncdispatch.MethodCall, operands(a), out, nil, nil, nil)
	require.NoError(t, err)
	outs, ok := got.([]ufuncdispatch.Operand)
	require.True(t, ok)
	require.Same(t, out[0], outs[0])
}

func TestResolve_WhereMaskParticipates(t *testing.T) {
	base := ufuncdispatch.NewType("ndarray", nil)
	tmask := ufuncdispatch.NewType("MaskedWhere", nil)

	in := operands(&plainOperand{typ: base})
	where := returning(tmask, "masked result")

	result, overridden, err := Resolve(fakeOp("add"), ufuncdispatch.MethodCall, in, nil, where, nil, nil)
	require.NoError(t, err)
	require.True(t, overridden)
	require.Equal(t, "masked result", result)
}

func TestResolve_OptOutReleasesAcquired(t *testing.T) {
	ta := ufuncdispatch.NewType("GoodArray", nil)
	tb := ufuncdispatch.NewType("OptedOutArray", nil)

	good := deferring(ta)
	bad := optedOut(tb)

	_, _, err := Resolve(fakeOp("add"), ufuncdispatch.MethodCall, operands(good, bad), nil, nil, nil, nil)
	require.Error(t, err)
	require.True(t, stderrors.Is(err, errors.UnsupportedOperand(errors.PhaseDiscover, "")))
	require.Equal(t, 1, good.handler.released, "capabilities acquired before the opt-out are released")
	require.Equal(t, 0, good.handler.calls)
}

func TestResolve_Reentrant(t *testing.T) {
	tinner := ufuncdispatch.NewType("Inner", nil)
	inner := returning(tinner, "inner result")

	touter := ufuncdispatch.NewType("Outer", nil)
	outer := overriding(touter, func(ufuncdispatch.Frame, ufuncdispatch.KWArgs) (any, error) {
		// A handler may itself trigger a nested resolution.
		res, _, err := Resolve(fakeOp("multiply"), ufuncdispatch.MethodCall, operands(inner), nil, nil, nil, nil)
		return res, err
	})

	result, overridden, err := Resolve(fakeOp("add"), ufuncdispatch.MethodCall, operands(outer), nil, nil, nil, nil)
	require.NoError(t, err)
	require.True(t, overridden)
	require.Equal(t, "inner result", result)
}

func TestDefaultFormatter(t *testing.T) {
	ta := ufuncdispatch.NewType("MaskedArray", nil)
	frame := newFrame(nil, fakeOp("add"), ufuncdispatch.MethodReduce,
		operands(&plainOperand{typ: ta}, &plainOperand{typ: ta}))

	msg := defaultFormatter(frame, nil)
	require.Contains(t, msg, "add")
	require.Contains(t, msg, "reduce")
	require.Contains(t, msg, "'MaskedArray'")
	require.Equal(t, 1, countOccurrences(msg, "'MaskedArray'"), "type names are deduplicated")
}

func countOccurrences(s, sub string) int {
	n := 0
	for i := 0; i+len(sub) <= len(s); i++ {
		if s[i:i+len(sub)] == sub {
			n++
		}
	}
	return n
}
