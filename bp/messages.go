// SPDX-License-Identifier: MIT

// calcNewMessage, the single-edge update rule every schedule in
// schedule.go drives. Grounded on bp.cpp's BP::calcNewMessage.
package bp

import (
	"math"

	"github.com/katalvlaran/dinfer/prob"
)

// calcNewMessage computes the proposed message for edge (i, capI) per
// spec §4.5 and stores it into that edge's newMessage, returning the
// edge's index so callers (schedule.go) can read its residual or commit
// it without a second lookup.
func (b *BP) calcNewMessage(i, capI int) int {
	fI := b.g.FactorAt(capI)
	eid := b.edgeAtVByFactor(i, capI)

	prod := fI.P().Clone()
	if b.opts.logDomain {
		prod = prod.Log(true)
	}

	for _, nb := range b.g.NbF(capI) {
		j := nb.Index
		if j == i {
			continue
		}

		eJ := &b.edges[b.edgeAtV(j, nb.Dual)]
		prodJ := b.accumulateIncoming(j, capI)

		for r, si := range eJ.index {
			if b.opts.logDomain {
				prod[r] += prodJ[si]
			} else {
				prod[r] *= prodJ[si]
			}
		}
	}

	if b.opts.logDomain {
		mx := prod.Max()
		prod = prod.SubScalar(mx).Exp()
	}

	e := &b.edges[eid]
	vi := b.g.Var(i)
	marg := prob.New(vi.States(), 0)
	for r, si := range e.index {
		marg[si] += prod[r]
	}

	if _, err := marg.Normalize(prob.NormProb); err != nil {
		// A factor with an all-zero row at this edge is a malformed input
		// graph (spec §7's precondition violations are for the caller to
		// avoid); falling back to uniform keeps run() total, matching the
		// "run always returns" contract.
		marg = prob.New(vi.States(), 1.0/float64(vi.States()))
	}

	if b.opts.logDomain {
		marg = marg.Log(true)
	}
	e.newMessage = marg

	return eid
}

// accumulateIncoming computes prod_j, the product (sum in log domain) of
// all messages variable j receives from factors other than capI.
func (b *BP) accumulateIncoming(j, excludeFactor int) prob.Prob {
	vj := b.g.Var(j)
	acc := b.domainIdentity(vj.States())

	for _, nb := range b.g.NbV(j) {
		if nb.Index == excludeFactor {
			continue
		}
		b.accumulateInto(acc, b.edges[b.edgeAtV(j, nb.Iter)].message)
	}

	return acc
}

// edgeAtVByFactor resolves the edge for (i, capI) given the factor
// ordinal rather than variable i's neighbour-iteration ordinal, by
// scanning i's (short) neighbour list. nrVars graphs keep each variable's
// degree small relative to nrFactors, so this linear scan is cheap
// relative to the O(|factor(I)|) work calcNewMessage already performs per
// call.
func (b *BP) edgeAtVByFactor(i, capI int) int {
	for _, nb := range b.g.NbV(i) {
		if nb.Index == capI {
			return b.edgeAtV(i, nb.Iter)
		}
	}

	return -1
}

// residualOf returns DISTLINF(newMessage, message) for the edge at eid,
// the priority SEQMAX schedules by.
func (b *BP) residualOf(eid int) float64 {
	e := &b.edges[eid]
	d, err := prob.Dist(e.newMessage, e.message, prob.DistLinf)
	if err != nil {
		return math.Inf(1)
	}

	return d
}

// commit moves newMessage into message for the edge at eid.
func (b *BP) commit(eid int) {
	b.edges[eid].message = b.edges[eid].newMessage
}
