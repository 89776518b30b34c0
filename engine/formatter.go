package engine

import (
	"fmt"
	"strings"
	"sync"

	ufuncdispatch "github.com/wippyai/ufunc-dispatch"
)

var (
	formatter     ufuncdispatch.ErrorFormatter
	formatterOnce sync.Once
)

// Formatter returns the process-wide diagnostic formatter used when every
// candidate defers. It defaults to a formatter naming the operation, method
// and the distinct input types.
func Formatter() ufuncdispatch.ErrorFormatter {
	formatterOnce.Do(func() {
		if formatter == nil {
			formatter = defaultFormatter
		}
	})
	return formatter
}

// SetFormatter configures the process-wide diagnostic formatter.
// This must be called before any resolutions run.
func SetFormatter(f ufuncdispatch.ErrorFormatter) {
	formatter = f
}

func defaultFormatter(frame ufuncdispatch.Frame, kwargs ufuncdispatch.KWArgs) string {
	var names []string
	seen := map[ufuncdispatch.TypeIdentity]bool{}
	for _, in := range frame.Inputs {
		if in == nil {
			continue
		}
		t := in.TypeOf()
		if seen[t] {
			continue
		}
		seen[t] = true
		names = append(names, "'"+t.Name()+"'")
	}
	if outs, ok := kwargs["out"].([]ufuncdispatch.Operand); ok {
		for _, out := range outs {
			if out == nil {
				continue
			}
			t := out.TypeOf()
			if seen[t] {
				continue
			}
			seen[t] = true
			names = append(names, "'"+t.Name()+"'")
		}
	}

	op := "<operation>"
	if frame.Op != nil {
		op = frame.Op.Name()
	}
	return fmt.Sprintf(
		"operand type(s) all returned NotImplemented from override(%s, '%s'): %s",
		op, frame.Method, strings.Join(names, ", "))
}
