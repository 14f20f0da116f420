// SPDX-License-Identifier: MIT
package bp

import "errors"

// Sentinel errors returned by the bp package.
var (
	// ErrNotInitialized indicates Run, Belief, or Beliefs was called before
	// Init.
	ErrNotInitialized = errors.New("bp: not initialized, call Init first")

	// ErrUnknownVariable indicates Belief was asked about a Variable the
	// graph does not contain.
	ErrUnknownVariable = errors.New("bp: unknown variable")

	// ErrEmptyGraph indicates New was given a Graph with zero variables.
	ErrEmptyGraph = errors.New("bp: graph has no variables")

	// ErrInvalidTol indicates FromProperties found a non-positive "tol"
	// property. (WithTol panics on the same input instead.)
	ErrInvalidTol = errors.New("bp: tolerance must be positive")

	// ErrInvalidMaxIter indicates FromProperties found a non-positive
	// "maxiter" property. (WithMaxIter panics on the same input instead.)
	ErrInvalidMaxIter = errors.New("bp: maxIter must be positive")

	// ErrMissingProperty indicates a PropertyStore lacked a required
	// configuration key (§6's "missing required configuration key"
	// precondition-violation).
	ErrMissingProperty = errors.New("bp: missing required property")

	// ErrNoContainingFactor indicates BeliefSet found no factor whose
	// VarSet contains the requested set.
	ErrNoContainingFactor = errors.New("bp: no factor contains the requested VarSet")
)
