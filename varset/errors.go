// SPDX-License-Identifier: MIT
package varset

import "errors"

// Sentinel errors returned by the varset package.
var (
	// ErrNotSubset indicates IndexFor was constructed with a subset that is
	// not actually contained in the given superset.
	ErrNotSubset = errors.New("varset: subset is not contained in superset")

	// ErrStateOutOfRange indicates an assignment index exceeded a variable's
	// state count.
	ErrStateOutOfRange = errors.New("varset: state index out of range")

	// ErrAssignmentLength indicates CalcState was given an assignment slice
	// whose length does not match the VarSet's cardinality.
	ErrAssignmentLength = errors.New("varset: assignment length mismatch")
)
