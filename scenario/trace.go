package scenario

import (
	"errors"
	"fmt"

	ufuncdispatch "github.com/wippyai/ufunc-dispatch"
)

// Attempt records one handler invocation during a replay.
type Attempt struct {
	Operand string // operand name
	Type    string // operand type name
	Outcome string // deferred, returned or failed
}

// Trace is the recorded outcome of replaying one call.
type Trace struct {
	Call       string
	Op         string
	Method     string
	Attempts   []Attempt
	Overridden bool
	Result     any
	Err        error
}

// scriptedOperand acts out its type's declared override behavior and
// records every invocation into the scenario's active trace.
type scriptedOperand struct {
	scenario *Scenario
	name     string
	typ      *ufuncdispatch.Type
	behavior TypeDef
}

func (o *scriptedOperand) TypeOf() ufuncdispatch.TypeIdentity { return o.typ }

func (o *scriptedOperand) UFuncOverride() (ufuncdispatch.Handler, ufuncdispatch.OverrideState) {
	switch o.behavior.Override {
	case "", "absent":
		return nil, ufuncdispatch.OverrideAbsent
	case "disabled":
		return nil, ufuncdispatch.OverrideDisabled
	}
	return ufuncdispatch.HandlerFunc(o.applyUFunc), ufuncdispatch.OverridePresent
}

func (o *scriptedOperand) applyUFunc(frame ufuncdispatch.Frame, kwargs ufuncdispatch.KWArgs) (any, error) {
	switch o.behavior.Override {
	case "defer":
		o.record("deferred")
		return ufuncdispatch.NotImplemented, nil
	case "error":
		o.record("failed")
		return nil, errors.New(o.behavior.Error)
	default: // result
		o.record("returned")
		return o.behavior.Result, nil
	}
}

func (o *scriptedOperand) record(outcome string) {
	trace := o.scenario.current
	if trace == nil {
		return
	}
	trace.Attempts = append(trace.Attempts, Attempt{
		Operand: o.name,
		Type:    o.typ.Name(),
		Outcome: outcome,
	})
}

// Summary renders a one-line outcome for display.
func (t *Trace) Summary() string {
	switch {
	case t.Err != nil:
		return fmt.Sprintf("error: %v", t.Err)
	case t.Overridden:
		return fmt.Sprintf("overridden: %v", t.Result)
	default:
		return "no override, default behavior applies"
	}
}
