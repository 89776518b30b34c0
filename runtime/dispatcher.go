package runtime

import (
	"go.uber.org/zap"

	ufuncdispatch "github.com/wippyai/ufunc-dispatch"
	"github.com/wippyai/ufunc-dispatch/engine"
)

// Dispatcher resolves ufunc-style calls against argument overrides.
// A Dispatcher is stateless between calls and safe for concurrent use.
type Dispatcher struct {
	logger *zap.Logger
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithLogger configures logging for the dispatcher and the engine.
// Must be applied before any resolutions run.
func WithLogger(l *zap.Logger) Option {
	return func(d *Dispatcher) {
		d.logger = l
		engine.SetLogger(l)
	}
}

// WithFormatter configures the diagnostic formatter used when every
// candidate defers. Must be applied before any resolutions run.
func WithFormatter(f ufuncdispatch.ErrorFormatter) Option {
	return func(d *Dispatcher) {
		engine.SetFormatter(f)
	}
}

// New creates a Dispatcher.
func New(opts ...Option) *Dispatcher {
	d := &Dispatcher{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// CheckOverride is the raw resolution entry point: it checks the given call
// for argument overrides and invokes handlers in precedence order. See
// engine.Resolve for the full contract.
func (d *Dispatcher) CheckOverride(op ufuncdispatch.Operation, method ufuncdispatch.Method,
	in, out []ufuncdispatch.Operand, where ufuncdispatch.Operand,
	trailing []any, named ufuncdispatch.KWArgs) (any, bool, error) {

	result, overridden, err := engine.Resolve(op, method, in, out, where, trailing, named)
	if err != nil {
		d.logger.Debug("override resolution failed",
			zap.String("op", op.Name()),
			zap.Stringer("method", method),
			zap.Error(err))
		return nil, false, err
	}
	if overridden {
		d.logger.Debug("call overridden",
			zap.String("op", op.Name()),
			zap.Stringer("method", method))
	}
	return result, overridden, nil
}

// Call dispatches the direct element-wise call shape. out may be nil when no
// outputs were supplied; where is the optional where-mask.
func (d *Dispatcher) Call(op ufuncdispatch.Operation, in, out []ufuncdispatch.Operand,
	where ufuncdispatch.Operand, named ufuncdispatch.KWArgs) (any, bool, error) {
	return d.CheckOverride(op, ufuncdispatch.MethodCall, in, out, where, nil, named)
}

// Outer dispatches the all-pairs call shape.
func (d *Dispatcher) Outer(op ufuncdispatch.Operation, in, out []ufuncdispatch.Operand,
	named ufuncdispatch.KWArgs) (any, bool, error) {
	return d.CheckOverride(op, ufuncdispatch.MethodOuter, in, out, nil, nil, named)
}

// Reduce dispatches the reduction call shape. trailing holds the reduce
// positional layout (a, axis, dtype, out, keepdims, initial, where); use
// ufuncdispatch.NoValue for an unspecified initial.
func (d *Dispatcher) Reduce(op ufuncdispatch.Operation, a ufuncdispatch.Operand,
	out []ufuncdispatch.Operand, trailing []any, named ufuncdispatch.KWArgs) (any, bool, error) {
	return d.CheckOverride(op, ufuncdispatch.MethodReduce,
		[]ufuncdispatch.Operand{a}, out, nil, trailing, named)
}

// Accumulate dispatches the accumulation call shape. trailing holds the
// positional layout (a, axis, dtype, out).
func (d *Dispatcher) Accumulate(op ufuncdispatch.Operation, a ufuncdispatch.Operand,
	out []ufuncdispatch.Operand, trailing []any, named ufuncdispatch.KWArgs) (any, bool, error) {
	return d.CheckOverride(op, ufuncdispatch.MethodAccumulate,
		[]ufuncdispatch.Operand{a}, out, nil, trailing, named)
}

// ReduceAt dispatches the reduce-at-offsets call shape. offsets is the index
// operand; trailing holds the positional layout (a, offsets, axis, dtype,
// out).
func (d *Dispatcher) ReduceAt(op ufuncdispatch.Operation, a, offsets ufuncdispatch.Operand,
	out []ufuncdispatch.Operand, trailing []any, named ufuncdispatch.KWArgs) (any, bool, error) {
	return d.CheckOverride(op, ufuncdispatch.MethodReduceAt,
		[]ufuncdispatch.Operand{a, offsets}, out, nil, trailing, named)
}

// At dispatches the in-place indexed call shape. b may be nil for unary
// operations.
func (d *Dispatcher) At(op ufuncdispatch.Operation, a, indices, b ufuncdispatch.Operand) (any, bool, error) {
	in := []ufuncdispatch.Operand{a, indices}
	if b != nil {
		in = append(in, b)
	}
	return d.CheckOverride(op, ufuncdispatch.MethodAt, in, nil, nil, nil, nil)
}
