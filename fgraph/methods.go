// SPDX-License-Identifier: MIT
package fgraph

import (
	"github.com/google/uuid"

	"github.com/katalvlaran/dinfer/bp"
	"github.com/katalvlaran/dinfer/factor"
	"github.com/katalvlaran/dinfer/varset"
)

// NrVars returns the number of registered variables.
func (g *Graph) NrVars() int {
	g.muVar.RLock()
	defer g.muVar.RUnlock()

	return len(g.vars)
}

// NrFactors returns the number of registered factors.
func (g *Graph) NrFactors() int {
	g.muFactor.RLock()
	defer g.muFactor.RUnlock()

	return len(g.factors)
}

// NrEdges returns the number of variable/factor edges.
func (g *Graph) NrEdges() int {
	g.muFactor.RLock()
	defer g.muFactor.RUnlock()

	return g.nrEdges
}

// Var returns the i'th variable.
func (g *Graph) Var(i int) varset.Variable {
	g.muVar.RLock()
	defer g.muVar.RUnlock()

	return g.vars[i]
}

// FactorAt returns the capI'th factor.
func (g *Graph) FactorAt(capI int) factor.Factor {
	g.muFactor.RLock()
	defer g.muFactor.RUnlock()

	return g.factors[capI]
}

// NbV returns variable i's neighbouring factors, ordered by Iter.
func (g *Graph) NbV(i int) []bp.Neighbor {
	g.muFactor.RLock()
	defer g.muFactor.RUnlock()

	out := make([]bp.Neighbor, len(g.nbV[i]))
	copy(out, g.nbV[i])

	return out
}

// NbF returns factor capI's neighbouring variables, ordered by Iter.
func (g *Graph) NbF(capI int) []bp.Neighbor {
	g.muFactor.RLock()
	defer g.muFactor.RUnlock()

	out := make([]bp.Neighbor, len(g.nbF[capI]))
	copy(out, g.nbF[capI])

	return out
}

// FindVar returns the ordinal of the variable with the given label.
func (g *Graph) FindVar(label int) (int, bool) {
	g.muVar.RLock()
	defer g.muVar.RUnlock()

	i, ok := g.varIndex[label]

	return i, ok
}

// EdgeID returns the synthetic uuid tagging variable i's iter'th edge,
// which tells apart edges of graphs of identical shape in diagnostics.
func (g *Graph) EdgeID(i, iter int) uuid.UUID {
	g.muFactor.RLock()
	defer g.muFactor.RUnlock()

	return g.edgeIDs[i][iter]
}

// IsTree reports whether the graph's bipartite variable/factor structure
// is acyclic and connected — the precondition spec §8's tree testable
// property assumes. A bipartite graph with V+F nodes is a tree iff it is
// connected and has exactly V+F-1 edges.
func (g *Graph) IsTree() bool {
	nrVars := g.NrVars()
	nrFactors := g.NrFactors()
	nrNodes := nrVars + nrFactors
	if nrNodes == 0 {
		return true
	}
	if g.NrEdges() != nrNodes-1 {
		return false
	}

	return g.connected()
}

// connected runs a BFS over the bipartite node space (variables indexed
// [0,nrVars), factors indexed [nrVars,nrVars+nrFactors)) and reports
// whether every node was reached from node 0.
func (g *Graph) connected() bool {
	nrVars := g.NrVars()
	nrFactors := g.NrFactors()
	total := nrVars + nrFactors
	if total == 0 {
		return true
	}

	visited := make([]bool, total)
	queue := []int{0}
	visited[0] = true
	visitedCount := 1

	for len(queue) > 0 {
		node := queue[0]
		queue = queue[1:]

		if node < nrVars {
			for _, nb := range g.NbV(node) {
				target := nrVars + nb.Index
				if !visited[target] {
					visited[target] = true
					visitedCount++
					queue = append(queue, target)
				}
			}
		} else {
			for _, nb := range g.NbF(node - nrVars) {
				target := nb.Index
				if !visited[target] {
					visited[target] = true
					visitedCount++
					queue = append(queue, target)
				}
			}
		}
	}

	return visitedCount == total
}
