package ufuncdispatch

// Method identifies which calling convention of the operation is being
// dispatched. It selects the positional-to-named remapping applied during
// normalization and whether where-mask discovery applies.
type Method uint8

const (
	// MethodCall is the direct element-wise call.
	MethodCall Method = iota

	// MethodOuter applies the operation to all input pairs.
	MethodOuter

	// MethodReduce folds the operation along an axis.
	MethodReduce

	// MethodAccumulate keeps intermediate reduction results.
	MethodAccumulate

	// MethodReduceAt reduces at offsets given by an index operand.
	MethodReduceAt

	// MethodAt applies the operation in place at indexed positions.
	MethodAt
)

var methodNames = map[Method]string{
	MethodCall:       "__call__",
	MethodOuter:      "outer",
	MethodReduce:     "reduce",
	MethodAccumulate: "accumulate",
	MethodReduceAt:   "reduceat",
	MethodAt:         "at",
}

// String returns the method's wire name as seen by handlers.
func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return "unknown"
}

// Known reports whether m is one of the recognized method identities.
func (m Method) Known() bool {
	_, ok := methodNames[m]
	return ok
}
