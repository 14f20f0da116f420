// SPDX-License-Identifier: MIT

// Canonical factor-graph constructors — Chain, Cycle, Star, Grid, and
// XORTriangle — adapted from builder/impl_*.go's Constructor pattern
// (deterministic vertex IDs, stable edge emission order, a caller-supplied
// generator for the varying part) generalized from plain-graph edges to
// pairwise factors over binary/discrete variables. These exist to supply
// the canonical topologies spec §8's testable properties and end-to-end
// scenarios are stated against — not as a general graph-construction
// feature.
package fgraph

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/dinfer/factor"
	"github.com/katalvlaran/dinfer/prob"
	"github.com/katalvlaran/dinfer/varset"
)

const (
	methodChain       = "Chain"
	methodCycle       = "Cycle"
	methodStar        = "Star"
	methodGrid        = "Grid"
	methodXORTriangle = "XORTriangle"
)

// FactorFn generates the values of a pairwise (or higher-arity) factor
// over vs, given a random source for stochastic generators. Mirrors the
// teacher's weightFn(cfg.rng) generator-injection pattern.
type FactorFn func(vs varset.VarSet, rng *rand.Rand) factor.Factor

// UniformFactorFn returns a FactorFn that fills every factor with 1,
// i.e. the uninformative (unit) coupling.
func UniformFactorFn() FactorFn {
	return func(vs varset.VarSet, _ *rand.Rand) factor.Factor {
		return factor.New(vs, 1)
	}
}

// RandomFactorFn returns a FactorFn that draws iid Uniform[0,1) entries,
// matching Prob.Randomize.
func RandomFactorFn() FactorFn {
	return func(vs varset.VarSet, rng *rand.Rand) factor.Factor {
		return factor.FromProb(vs, prob.New(vs.NrStates(), 0).Randomize(rng))
	}
}

func addSequentialVars(op string, g *Graph, n, states int) error {
	for i := 0; i < n; i++ {
		if _, err := g.AddVariable(varset.NewVariable(i, states)); err != nil {
			return fgraphErrorf(op, err)
		}
	}

	return nil
}

// Chain builds n variables of the given state count connected in a line
// by n-1 pairwise factors fn(i,i+1), i=0..n-2 — the tree topology spec
// §8's "on a tree factor graph, BP with PARALL converges" property is
// exercised against.
func Chain(n, states int, fn FactorFn, rng *rand.Rand) (*Graph, error) {
	if n < 1 {
		return nil, fgraphErrorf(methodChain, ErrNoVariables)
	}

	g := New()
	if err := addSequentialVars(methodChain, g, n, states); err != nil {
		return nil, err
	}

	for i := 0; i < n-1; i++ {
		vs := varset.New(g.Var(i), g.Var(i+1))
		if _, err := g.AddFactor(fn(vs, rng)); err != nil {
			return nil, fgraphErrorf(methodChain, err)
		}
	}

	return g, nil
}

// Cycle builds n variables connected in a ring by n pairwise factors
// fn(i,(i+1)%n) — a minimal loopy topology.
func Cycle(n, states int, fn FactorFn, rng *rand.Rand) (*Graph, error) {
	if n < 3 {
		return nil, fmt.Errorf("%s: n=%d < 3: %w", methodCycle, n, ErrNoVariables)
	}

	g := New()
	if err := addSequentialVars(methodCycle, g, n, states); err != nil {
		return nil, err
	}

	for i := 0; i < n; i++ {
		vs := varset.New(g.Var(i), g.Var((i+1)%n))
		if _, err := g.AddFactor(fn(vs, rng)); err != nil {
			return nil, fgraphErrorf(methodCycle, err)
		}
	}

	return g, nil
}

// Star builds one center variable (label 0) connected to n-1 leaves
// (labels 1..n-1) by pairwise factors fn(0,k) — another tree topology.
func Star(n, states int, fn FactorFn, rng *rand.Rand) (*Graph, error) {
	if n < 2 {
		return nil, fmt.Errorf("%s: n=%d < 2: %w", methodStar, n, ErrNoVariables)
	}

	g := New()
	if err := addSequentialVars(methodStar, g, n, states); err != nil {
		return nil, err
	}

	for k := 1; k < n; k++ {
		vs := varset.New(g.Var(0), g.Var(k))
		if _, err := g.AddFactor(fn(vs, rng)); err != nil {
			return nil, fgraphErrorf(methodStar, err)
		}
	}

	return g, nil
}

// Grid builds a rows*cols grid of variables, labelled row-major
// (label = r*cols+c), connected by pairwise factors along every
// horizontal and vertical adjacency.
func Grid(rows, cols, states int, fn FactorFn, rng *rand.Rand) (*Graph, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%s: rows=%d cols=%d: %w", methodGrid, rows, cols, ErrNoVariables)
	}

	g := New()
	n := rows * cols
	if err := addSequentialVars(methodGrid, g, n, states); err != nil {
		return nil, err
	}

	label := func(r, c int) int { return r*cols + c }

	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				vs := varset.New(g.Var(label(r, c)), g.Var(label(r, c+1)))
				if _, err := g.AddFactor(fn(vs, rng)); err != nil {
					return nil, fgraphErrorf(methodGrid, err)
				}
			}
			if r+1 < rows {
				vs := varset.New(g.Var(label(r, c)), g.Var(label(r+1, c)))
				if _, err := g.AddFactor(fn(vs, rng)); err != nil {
					return nil, fgraphErrorf(methodGrid, err)
				}
			}
		}
	}

	return g, nil
}

// XORTriangle builds the three-binary-variable XOR-triangle of spec §8
// scenario 3: a single ternary factor over {x0,x1,x2}, value 1 on
// even-parity assignments and 0 on odd-parity ones. With one factor the
// bipartite variable/factor graph is a tree (IsTree reports true).
func XORTriangle() (*Graph, error) {
	g := New()
	for i := 0; i < 3; i++ {
		if _, err := g.AddVariable(varset.NewVariable(i, 2)); err != nil {
			return nil, fgraphErrorf(methodXORTriangle, err)
		}
	}

	vs := varset.New(g.Var(0), g.Var(1), g.Var(2))
	values := prob.New(vs.NrStates(), 0)
	for state := 0; state < vs.NrStates(); state++ {
		bits := vs.Decode(state)
		parity := (bits[0] + bits[1] + bits[2]) % 2
		if parity == 0 {
			values[state] = 1
		}
	}

	if _, err := g.AddFactor(factor.FromProb(vs, values)); err != nil {
		return nil, fgraphErrorf(methodXORTriangle, err)
	}

	return g, nil
}
