// SPDX-License-Identifier: MIT
package factor

import "errors"

// Sentinel errors returned by the factor package.
var (
	// ErrVarSetMismatch indicates Sum or Difference was called on factors
	// with different VarSets; both require identical VarSets (spec §4.4).
	ErrVarSetMismatch = errors.New("factor: VarSets must be identical")

	// ErrNotSubset indicates Slice or Embed was given a VarSet that
	// violates its subset/superset precondition.
	ErrNotSubset = errors.New("factor: VarSet precondition violated")

	// ErrStateOutOfRange indicates Slice was given a joint state index
	// that exceeds the sliced VarSet's cardinality.
	ErrStateOutOfRange = errors.New("factor: slice state out of range")

	// ErrWrongArity indicates MutualInfo was called on a factor that does
	// not depend on exactly two variables.
	ErrWrongArity = errors.New("factor: requires exactly two variables")

	// ErrUnknownVariable indicates Strength was asked about a variable the
	// factor does not depend on.
	ErrUnknownVariable = errors.New("factor: unknown variable")
)
