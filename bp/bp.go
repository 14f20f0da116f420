// SPDX-License-Identifier: MIT

// Package bp's core type, BP, and its construction/initialisation. The
// message-update rule lives in messages.go, the four schedules in
// schedule.go, and belief/logZ queries in beliefs.go; this file owns the
// per-edge state layout (spec §3's "BP state") and the edge-indexing
// bookkeeping every other file in the package relies on.
package bp

import (
	"fmt"

	"github.com/katalvlaran/dinfer/prob"
	"github.com/katalvlaran/dinfer/varset"
)

func bpErrorf(op string, err error) error {
	return fmt.Errorf("bp.%s: %w", op, err)
}

// edge identifies one variable/factor edge by the ordinal pair (i, I).
// The duality spec §9 describes (an edge's iter on the variable side vs.
// its dual on the factor side) is carried by edgeOf/edgeOfF rather than
// on the edge itself: given any Neighbor record from either NbV or NbF,
// BP.edgeAtV/BP.edgeAtF resolve straight to the shared edge slot.
type edge struct {
	v, f       int   // variable ordinal, factor ordinal
	index      []int // index[i,I]: for each linear index of factor(I), the corresponding state of var(i)
	message    prob.Prob
	newMessage prob.Prob
	residual   float64
}

// BP is a loopy belief-propagation solver over a Graph. It owns all of
// its per-edge numeric state; a BP value must not outlive the Graph it
// was built from (spec §5).
type BP struct {
	g    Graph
	opts Options

	edges      []edge    // flat edge list, variable-major then neighbour-ordinal
	edgeOf     [][]int   // edgeOf[i][iter] = index into edges for var i's iter'th neighbour
	edgeOfF    [][]int   // edgeOfF[I][iter] = index into edges for factor I's iter'th neighbour
	diffs      *ringBuffer
	lastBelief []prob.Prob // beliefV(i) recorded after the previous sweep, for maxDiff bookkeeping
	maxDiff    float64
}

// New constructs a BP solver over g with the given options applied over
// the defaults. It does not allocate per-edge state; call Init before
// Run.
func New(g Graph, opts ...Option) (*BP, error) {
	if g.NrVars() == 0 {
		return nil, bpErrorf("New", ErrEmptyGraph)
	}

	return &BP{
		g:    g,
		opts: gatherOptions(opts...),
	}, nil
}

// identity returns the domain identity Prob of length n: all-ones in
// linear domain, all-zeros in log domain.
func (b *BP) identity(n int) prob.Prob {
	fill := 1.0
	if b.opts.logDomain {
		fill = 0.0
	}

	return prob.New(n, fill)
}

// Init performs a full reset: every edge's message and newMessage is set
// to the domain identity, residuals to 0, and the index[i,I] tables are
// (re)computed from scratch.
func (b *BP) Init() error {
	nrVars := b.g.NrVars()
	nrFactors := b.g.NrFactors()

	// A non-nil slice marks the solver as initialized even when the graph
	// has no edges.
	b.edges = make([]edge, 0, b.g.NrEdges())
	b.edgeOf = make([][]int, nrVars)
	b.edgeOfF = make([][]int, nrFactors)

	for i := 0; i < nrVars; i++ {
		nbs := b.g.NbV(i)
		b.edgeOf[i] = make([]int, len(nbs))
		for _, nb := range nbs {
			e, err := b.newEdge(i, nb)
			if err != nil {
				return bpErrorf("Init", err)
			}
			eid := len(b.edges)
			b.edges = append(b.edges, e)
			b.edgeOf[i][nb.Iter] = eid
		}
	}

	for capI := 0; capI < nrFactors; capI++ {
		nbs := b.g.NbF(capI)
		b.edgeOfF[capI] = make([]int, len(nbs))
		for _, nb := range nbs {
			// nb.Dual is this variable's position in its own neighbour
			// list, i.e. the edge already created above; recover it via
			// edgeOf[nb.Index][nb.Dual].
			b.edgeOfF[capI][nb.Iter] = b.edgeOf[nb.Index][nb.Dual]
		}
	}

	b.diffs = newRingBuffer(nrVars)
	b.lastBelief = make([]prob.Prob, nrVars)
	for i := 0; i < nrVars; i++ {
		b.lastBelief[i] = b.computeBeliefV(i).P()
	}
	b.maxDiff = 0

	return nil
}

// newEdge builds the per-edge state for variable i's nb'th neighbour
// factor, precomputing index[i,I] via IndexFor(var(i), factor(I).vars()).
func (b *BP) newEdge(i int, nb Neighbor) (edge, error) {
	capI := nb.Index
	vi := b.g.Var(i)
	fI := b.g.FactorAt(capI)

	idx, err := varset.NewIndexFor(varset.New(vi), fI.Vars())
	if err != nil {
		return edge{}, err
	}

	return edge{
		v:          i,
		f:          capI,
		index:      idx.Materialize(),
		message:    b.identity(vi.States()),
		newMessage: b.identity(vi.States()),
		residual:   0,
	}, nil
}

// edgeAtV resolves variable i's iter'th neighbour to its shared edge slot.
func (b *BP) edgeAtV(i, iter int) int { return b.edgeOf[i][iter] }

// edgeAtF resolves factor capI's iter'th neighbour to its shared edge slot.
func (b *BP) edgeAtF(capI, iter int) int { return b.edgeOfF[capI][iter] }

// InitVars performs a partial reset: every edge incident to a variable in
// vs has its message and newMessage reset to the domain identity and its
// residual zeroed; edges not incident to vs are left untouched.
func (b *BP) InitVars(vs varset.VarSet) error {
	if b.edges == nil {
		return bpErrorf("InitVars", ErrNotInitialized)
	}

	touch := make(map[int]bool, vs.Len())
	for _, v := range vs.Vars() {
		i, ok := b.g.FindVar(v.Label())
		if !ok {
			continue
		}
		touch[i] = true
	}

	for idx := range b.edges {
		e := &b.edges[idx]
		if !touch[e.v] {
			continue
		}
		n := len(e.message)
		e.message = b.identity(n)
		e.newMessage = b.identity(n)
		e.residual = 0
	}

	return nil
}

// MaxDiff returns the maximum belief change recorded over the ring
// buffer's window after the most recent sweep, i.e. the convergence
// statistic §4.5's outer loop tests against tol.
func (b *BP) MaxDiff() float64 { return b.maxDiff }

// Identify renders a short identification string combining the schedule,
// tolerance, and iteration cap, matching spec §6's "printable form for
// identification strings" for the BP object itself.
func (b *BP) Identify() string {
	return fmt.Sprintf("BP[updates=%s,tol=%g,maxiter=%d,logdomain=%t]",
		b.opts.updates, b.opts.tol, b.opts.maxIter, b.opts.logDomain)
}
