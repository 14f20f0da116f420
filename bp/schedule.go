// SPDX-License-Identifier: MIT

// The four message schedules and the outer convergence loop, grounded on
// bp.cpp's BP::run and its PARALL/SEQFIX/SEQRND/SEQMAX branches.
package bp

import "github.com/katalvlaran/dinfer/prob"

// Run drives sweeps under the configured schedule until iter reaches
// maxiter or the maximum of the last nrVars recorded belief changes is at
// most tol, and returns that final value (spec §4.5's "run() -> real").
// Run never errors on non-convergence; the caller inspects the returned
// value against its own tolerance, or calls MaxDiff later.
func (b *BP) Run() (float64, error) {
	if b.edges == nil {
		return 0, bpErrorf("Run", ErrNotInitialized)
	}

	b.logStart()

	if b.opts.updates == SEQMAX {
		b.primeSeqMax()
	}

	for iter := 0; iter < b.opts.maxIter; iter++ {
		switch b.opts.updates {
		case PARALL:
			b.sweepParall()
		case SEQFIX:
			b.sweepSeqFix()
		case SEQRND:
			b.sweepSeqRnd()
		case SEQMAX:
			b.sweepSeqMax()
		}

		b.recordBeliefDiffs()
		b.logSweep(iter)

		if b.maxDiff <= b.opts.tol {
			break
		}
	}

	b.logDone()

	return b.maxDiff, nil
}

// sweepParall computes every edge's newMessage from the current message
// set, then commits all of them — the synchronous update.
func (b *BP) sweepParall() {
	for _, e := range b.edges {
		b.calcNewMessage(e.v, e.f)
	}
	for eid := range b.edges {
		b.commit(eid)
	}
}

// sweepSeqFix visits edges in the fixed canonical order (variable index,
// then neighbour ordinal — the order b.edges was built in) and commits
// each immediately.
func (b *BP) sweepSeqFix() {
	for eid, e := range b.edges {
		b.calcNewMessage(e.v, e.f)
		b.commit(eid)
	}
}

// sweepSeqRnd is sweepSeqFix with the edge order shuffled uniformly at
// random each sweep.
func (b *BP) sweepSeqRnd() {
	order := b.opts.rnd.Perm(len(b.edges))
	for _, eid := range order {
		e := b.edges[eid]
		b.calcNewMessage(e.v, e.f)
		b.commit(eid)
	}
}

// primeSeqMax is SEQMAX's first sweep: compute every edge's newMessage
// and seed its residual, without committing anything.
func (b *BP) primeSeqMax() {
	for eid, e := range b.edges {
		b.calcNewMessage(e.v, e.f)
		b.edges[eid].residual = b.residualOf(eid)
	}
}

// sweepSeqMax performs one residual-BP sweep of length nrEdges: nrEdges
// times, commit the highest-residual edge and recompute the residuals of
// every edge whose message could have changed as a result.
func (b *BP) sweepSeqMax() {
	for step := 0; step < len(b.edges); step++ {
		eid := b.argmaxResidual()
		b.commit(eid)
		b.edges[eid].residual = 0

		i := b.edges[eid].v
		capI := b.edges[eid].f

		for _, nbV := range b.g.NbV(i) {
			capJ := nbV.Index
			if capJ == capI {
				continue
			}
			for _, nbF := range b.g.NbF(capJ) {
				j := nbF.Index
				if j == i {
					continue
				}
				eidJ := b.edgeAtV(j, nbF.Dual)
				b.calcNewMessage(j, capJ)
				b.edges[eidJ].residual = b.residualOf(eidJ)
			}
		}
	}
}

// argmaxResidual returns the index of the edge with the largest residual,
// scanning in canonical order so the first edge attaining the maximum
// wins ties (spec §5).
func (b *BP) argmaxResidual() int {
	best := 0
	for eid := 1; eid < len(b.edges); eid++ {
		if b.edges[eid].residual > b.edges[best].residual {
			best = eid
		}
	}

	return best
}

// recordBeliefDiffs computes each variable's current belief, pushes its
// DISTLINF distance from the previous sweep's belief into the ring
// buffer, and updates maxDiff to the buffer's running maximum.
func (b *BP) recordBeliefDiffs() {
	for i := 0; i < b.g.NrVars(); i++ {
		belief := b.computeBeliefV(i)
		d, err := prob.Dist(belief.P(), b.lastBelief[i], prob.DistLinf)
		if err != nil {
			d = 0
		}
		b.diffs.push(d)
		b.lastBelief[i] = belief.P()
	}
	b.maxDiff = b.diffs.max()
}
