// SPDX-License-Identifier: MIT

// Package varset implements Variable, VarSet, and IndexFor: the mixed-radix
// index algebra that every other package in this module is built on.
//
// A Variable is an immutable (label, state-count) pair. A VarSet is an
// ordered, duplicate-free set of Variables sorted by ascending label; the
// variable with the smallest label is always the fastest-varying dimension
// of the joint state space it describes (see CalcState). IndexFor is a
// restartable cursor that projects a superset's linear indices onto a
// subset's linear indices in O(1) amortised per step after an O(|B|)
// construction.
package varset
