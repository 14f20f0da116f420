// SPDX-License-Identifier: MIT
package fgraph

import "errors"

// Sentinel errors returned by the fgraph package.
var (
	// ErrDuplicateLabel indicates AddVariable was called twice with the
	// same Variable label.
	ErrDuplicateLabel = errors.New("fgraph: duplicate variable label")

	// ErrUnknownVariable indicates AddFactor referenced a variable label
	// not previously registered via AddVariable.
	ErrUnknownVariable = errors.New("fgraph: factor references unknown variable")

	// ErrNoVariables indicates a builder was asked to construct a graph
	// with zero variables.
	ErrNoVariables = errors.New("fgraph: at least one variable is required")
)
