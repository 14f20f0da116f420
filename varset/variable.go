// SPDX-License-Identifier: MIT
package varset

import "fmt"

// Variable is an immutable descriptor for a single discrete variable: a
// stable integer Label and a state count States >= 1. Equality and total
// order are defined on Label alone, matching dai::Var.
type Variable struct {
	label  int
	states int
}

// NewVariable constructs a Variable with the given label and state count.
// States must be >= 1; callers that violate this get a Variable with
// States clamped to 1, mirroring the teacher's "never panic on construction,
// validate at use" convention for value types built from caller data.
func NewVariable(label, states int) Variable {
	if states < 1 {
		states = 1
	}

	return Variable{label: label, states: states}
}

// Label returns the variable's stable integer label.
func (v Variable) Label() int { return v.label }

// States returns the variable's state count (S >= 1).
func (v Variable) States() int { return v.states }

// Less reports whether v sorts before w, i.e. v.Label() < w.Label().
func (v Variable) Less(w Variable) bool { return v.label < w.label }

// Equal reports whether v and w denote the same variable (by label).
func (v Variable) Equal(w Variable) bool { return v.label == w.label }

// String renders "x<label>(S)" for diagnostics.
func (v Variable) String() string {
	return fmt.Sprintf("x%d(%d)", v.label, v.states)
}
