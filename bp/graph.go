// SPDX-License-Identifier: MIT
package bp

import (
	"github.com/katalvlaran/dinfer/factor"
	"github.com/katalvlaran/dinfer/varset"
)

// Neighbor is one endpoint of a variable/factor-graph edge as seen from
// the other endpoint: Iter is this neighbour's local ordinal (its
// position among the endpoint's own neighbours) and Dual is the mirror
// ordinal, this endpoint's position among the neighbour's neighbours.
// The core relies on this duality (spec §9) to look up the precomputed
// index table for the other side of an edge without a search.
type Neighbor struct {
	Index int // ordinal of the variable or factor this record refers to
	Iter  int // this neighbour's position among the owner's neighbours
	Dual  int // the owner's position among this neighbour's neighbours
}

// Graph is the variable/factor-graph container BP consumes. spec.md scopes
// this out as an external collaborator (§1, §6); package fgraph ships a
// concrete, thread-safe implementation.
type Graph interface {
	// NrVars returns the number of variables in the graph.
	NrVars() int
	// NrFactors returns the number of factors in the graph.
	NrFactors() int
	// NrEdges returns the number of variable/factor edges in the graph.
	NrEdges() int
	// Var returns the i'th variable.
	Var(i int) varset.Variable
	// FactorAt returns the I'th factor.
	FactorAt(capI int) factor.Factor
	// NbV returns variable i's neighbouring factors, ordered by Iter.
	NbV(i int) []Neighbor
	// NbF returns factor I's neighbouring variables, ordered by Iter.
	NbF(capI int) []Neighbor
	// FindVar returns the ordinal of the variable with the given label,
	// and whether it was found.
	FindVar(label int) (int, bool)
}
