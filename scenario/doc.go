// Package scenario loads YAML-described dispatch scenarios and replays them
// through a Dispatcher.
//
// A scenario declares a type lattice, operands with scripted override
// behavior, and a list of calls:
//
//	name: masked precedence
//	types:
//	  - name: ndarray
//	  - name: MaskedArray
//	    parent: ndarray
//	    override: defer
//	  - name: UnitMaskedArray
//	    parent: MaskedArray
//	    override: result
//	    result: "handled by UnitMaskedArray"
//	operands:
//	  - {name: a, type: MaskedArray}
//	  - {name: b, type: UnitMaskedArray}
//	calls:
//	  - name: add-call
//	    op: add
//	    method: __call__
//	    inputs: [a, b]
//
// Running a call yields a Trace recording every handler attempt in
// precedence order and the final outcome. Scenarios back the cmd/dispatch
// replay tool and serve as test fixtures.
//
// Override behaviors: absent (default), disabled, defer, result, error.
// In trailing argument lists the string "$novalue" denotes the unspecified
// sentinel.
package scenario
