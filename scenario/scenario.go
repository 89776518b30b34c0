package scenario

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	ufuncdispatch "github.com/wippyai/ufunc-dispatch"
	"github.com/wippyai/ufunc-dispatch/runtime"
)

// Document is the on-disk scenario format.
type Document struct {
	Name     string       `yaml:"name"`
	Types    []TypeDef    `yaml:"types"`
	Operands []OperandDef `yaml:"operands"`
	Calls    []CallDef    `yaml:"calls"`
}

// TypeDef declares one type in the scenario's lattice and how instances of
// it respond to dispatch.
type TypeDef struct {
	Name     string `yaml:"name"`
	Parent   string `yaml:"parent"`
	Override string `yaml:"override"` // absent (default), disabled, defer, result, error
	Result   any    `yaml:"result"`   // used when override is result
	Error    string `yaml:"error"`    // used when override is error
}

// OperandDef declares a named operand of a declared type.
type OperandDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// CallDef declares one call to replay. Outputs distinguishes absent (key
// missing) from present-but-empty.
type CallDef struct {
	Name     string         `yaml:"name"`
	Op       string         `yaml:"op"`
	Method   string         `yaml:"method"`
	Inputs   []string       `yaml:"inputs"`
	Outputs  *[]string      `yaml:"outputs"`
	Where    string         `yaml:"where"`
	Trailing []any          `yaml:"trailing"`
	KWArgs   map[string]any `yaml:"kwargs"`
}

// Scenario is a loaded, validated scenario ready to replay.
type Scenario struct {
	Name string

	doc        Document
	types      map[string]*ufuncdispatch.Type
	behaviors  map[string]TypeDef
	operands   map[string]*scriptedOperand
	calls      map[string]CallDef
	callOrder  []string
	dispatcher *runtime.Dispatcher

	current *Trace // trace being recorded by the active run
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}
	return Parse(data)
}

// Parse builds a scenario from YAML data.
func Parse(data []byte) (*Scenario, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse scenario: %w", err)
	}

	s := &Scenario{
		Name:       doc.Name,
		doc:        doc,
		types:      make(map[string]*ufuncdispatch.Type, len(doc.Types)),
		behaviors:  make(map[string]TypeDef, len(doc.Types)),
		operands:   make(map[string]*scriptedOperand, len(doc.Operands)),
		calls:      make(map[string]CallDef, len(doc.Calls)),
		dispatcher: runtime.New(),
	}

	// Types are declared parents-first.
	for _, td := range doc.Types {
		if td.Name == "" {
			return nil, errors.New("type with empty name")
		}
		if _, dup := s.types[td.Name]; dup {
			return nil, fmt.Errorf("duplicate type %q", td.Name)
		}
		var parent *ufuncdispatch.Type
		if td.Parent != "" {
			p, ok := s.types[td.Parent]
			if !ok {
				return nil, fmt.Errorf("type %q: unknown parent %q", td.Name, td.Parent)
			}
			parent = p
		}
		switch td.Override {
		case "", "absent", "disabled", "defer", "result", "error":
		default:
			return nil, fmt.Errorf("type %q: unknown override behavior %q", td.Name, td.Override)
		}
		s.types[td.Name] = ufuncdispatch.NewType(td.Name, parent)
		s.behaviors[td.Name] = td
	}

	for _, od := range doc.Operands {
		typ, ok := s.types[od.Type]
		if !ok {
			return nil, fmt.Errorf("operand %q: unknown type %q", od.Name, od.Type)
		}
		if _, dup := s.operands[od.Name]; dup {
			return nil, fmt.Errorf("duplicate operand %q", od.Name)
		}
		s.operands[od.Name] = &scriptedOperand{
			scenario: s,
			name:     od.Name,
			typ:      typ,
			behavior: s.behaviors[od.Type],
		}
	}

	for _, cd := range doc.Calls {
		if _, err := methodFromString(cd.Method); err != nil {
			return nil, fmt.Errorf("call %q: %w", cd.Name, err)
		}
		for _, ref := range cd.Inputs {
			if _, ok := s.operands[ref]; !ok {
				return nil, fmt.Errorf("call %q: unknown input %q", cd.Name, ref)
			}
		}
		if cd.Outputs != nil {
			for _, ref := range *cd.Outputs {
				if _, ok := s.operands[ref]; !ok {
					return nil, fmt.Errorf("call %q: unknown output %q", cd.Name, ref)
				}
			}
		}
		if cd.Where != "" {
			if _, ok := s.operands[cd.Where]; !ok {
				return nil, fmt.Errorf("call %q: unknown where operand %q", cd.Name, cd.Where)
			}
		}
		if _, dup := s.calls[cd.Name]; dup {
			return nil, fmt.Errorf("duplicate call %q", cd.Name)
		}
		s.calls[cd.Name] = cd
		s.callOrder = append(s.callOrder, cd.Name)
	}

	return s, nil
}

// Calls returns the call names in declaration order.
func (s *Scenario) Calls() []string {
	out := make([]string, len(s.callOrder))
	copy(out, s.callOrder)
	return out
}

// Run replays one call and returns its trace. Resolution failures are
// recorded in the trace, not returned; the error return covers unknown call
// names only.
func (s *Scenario) Run(callName string) (*Trace, error) {
	cd, ok := s.calls[callName]
	if !ok {
		return nil, fmt.Errorf("unknown call %q", callName)
	}

	method, err := methodFromString(cd.Method)
	if err != nil {
		return nil, err
	}

	in := make([]ufuncdispatch.Operand, len(cd.Inputs))
	for i, ref := range cd.Inputs {
		in[i] = s.operands[ref]
	}
	var out []ufuncdispatch.Operand
	if cd.Outputs != nil {
		out = make([]ufuncdispatch.Operand, 0, len(*cd.Outputs))
		for _, ref := range *cd.Outputs {
			out = append(out, s.operands[ref])
		}
	}
	var where ufuncdispatch.Operand
	if cd.Where != "" {
		where = s.operands[cd.Where]
	}

	trailing := make([]any, len(cd.Trailing))
	for i, v := range cd.Trailing {
		if v == "$novalue" {
			trailing[i] = ufuncdispatch.NoValue
			continue
		}
		trailing[i] = v
	}

	trace := &Trace{Call: cd.Name, Op: cd.Op, Method: cd.Method}
	s.current = trace
	defer func() { s.current = nil }()

	result, overridden, err := s.dispatcher.CheckOverride(
		opName(cd.Op), method, in, out, where, trailing, ufuncdispatch.KWArgs(cd.KWArgs))
	trace.Result = result
	trace.Overridden = overridden
	trace.Err = err

	return trace, nil
}

// RunAll replays every call in declaration order.
func (s *Scenario) RunAll() ([]*Trace, error) {
	traces := make([]*Trace, 0, len(s.callOrder))
	for _, name := range s.callOrder {
		trace, err := s.Run(name)
		if err != nil {
			return nil, err
		}
		traces = append(traces, trace)
	}
	return traces, nil
}

type opName string

func (o opName) Name() string { return string(o) }

func methodFromString(name string) (ufuncdispatch.Method, error) {
	switch name {
	case "__call__", "call":
		return ufuncdispatch.MethodCall, nil
	case "outer":
		return ufuncdispatch.MethodOuter, nil
	case "reduce":
		return ufuncdispatch.MethodReduce, nil
	case "accumulate":
		return ufuncdispatch.MethodAccumulate, nil
	case "reduceat":
		return ufuncdispatch.MethodReduceAt, nil
	case "at":
		return ufuncdispatch.MethodAt, nil
	default:
		return 0, fmt.Errorf("unknown method %q", name)
	}
}
