// SPDX-License-Identifier: MIT
package fgraph

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/katalvlaran/dinfer/bp"
	"github.com/katalvlaran/dinfer/factor"
	"github.com/katalvlaran/dinfer/varset"
)

func fgraphErrorf(op string, err error) error {
	return fmt.Errorf("fgraph.%s: %w", op, err)
}

// Graph is a bipartite variable/factor graph: an edge connects variable i
// to every factor whose VarSet contains it. muVar guards the variable
// side (vars, varIndex); muFactor guards the factor side (factors, nbV,
// nbF, edgeIDs) since AddFactor touches both sides' neighbour lists.
type Graph struct {
	muVar    sync.RWMutex
	muFactor sync.RWMutex

	vars     []varset.Variable
	varIndex map[int]int // label -> ordinal

	factors []factor.Factor
	nbV     [][]bp.Neighbor // nbV[i] = i's neighbouring factors, Iter-ordered
	nbF     [][]bp.Neighbor // nbF[I] = I's neighbouring variables, Iter-ordered
	edgeIDs [][]uuid.UUID   // edgeIDs[i][iter] tags the edge at nbV[i][iter] for diagnostics
	nrEdges int
}

// New returns an empty Graph. Variables must be added with AddVariable
// before any factor referencing them is added with AddFactor.
func New() *Graph {
	return &Graph{varIndex: make(map[int]int)}
}

// AddVariable registers v and returns its ordinal. Fails with
// ErrDuplicateLabel if a variable with the same label was already added.
func (g *Graph) AddVariable(v varset.Variable) (int, error) {
	g.muVar.Lock()
	defer g.muVar.Unlock()

	if _, ok := g.varIndex[v.Label()]; ok {
		return -1, fgraphErrorf("AddVariable", ErrDuplicateLabel)
	}

	i := len(g.vars)
	g.vars = append(g.vars, v)
	g.varIndex[v.Label()] = i

	g.muFactor.Lock()
	g.nbV = append(g.nbV, nil)
	g.edgeIDs = append(g.edgeIDs, nil)
	g.muFactor.Unlock()

	return i, nil
}

// AddFactor registers f and returns its ordinal, wiring an edge to every
// variable in f.Vars(). Every variable in f.Vars() must already exist via
// AddVariable; otherwise ErrUnknownVariable.
func (g *Graph) AddFactor(f factor.Factor) (int, error) {
	g.muVar.RLock()
	members := make([]int, 0, f.Vars().Len())
	for _, v := range f.Vars().Vars() {
		i, ok := g.varIndex[v.Label()]
		if !ok {
			g.muVar.RUnlock()

			return -1, fgraphErrorf("AddFactor", ErrUnknownVariable)
		}
		members = append(members, i)
	}
	g.muVar.RUnlock()

	g.muFactor.Lock()
	defer g.muFactor.Unlock()

	capI := len(g.factors)
	g.factors = append(g.factors, f)
	g.nbF = append(g.nbF, nil)

	for _, i := range members {
		iterV := len(g.nbV[i])
		iterF := len(g.nbF[capI])
		g.nbV[i] = append(g.nbV[i], bp.Neighbor{Index: capI, Iter: iterV, Dual: iterF})
		g.nbF[capI] = append(g.nbF[capI], bp.Neighbor{Index: i, Iter: iterF, Dual: iterV})
		g.edgeIDs[i] = append(g.edgeIDs[i], uuid.New())
		g.nrEdges++
	}

	return capI, nil
}
