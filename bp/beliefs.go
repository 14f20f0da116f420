// SPDX-License-Identifier: MIT

// Belief and partition-function queries: BeliefV, BeliefF, Belief,
// Beliefs, LogZ. Grounded on bp.cpp's belief/beliefV/beliefF/logZ.
package bp

import (
	"github.com/katalvlaran/dinfer/factor"
	"github.com/katalvlaran/dinfer/prob"
	"github.com/katalvlaran/dinfer/varset"
)

// BeliefV returns the normalized belief marginal over variable i: the
// product (sum in log domain) of newMessage[i,I] across every
// neighbouring factor I, stabilized and normalized under NormProb.
func (b *BP) BeliefV(i int) (factor.Factor, error) {
	if b.edges == nil {
		return factor.Factor{}, bpErrorf("BeliefV", ErrNotInitialized)
	}

	return b.computeBeliefV(i), nil
}

func (b *BP) computeBeliefV(i int) factor.Factor {
	vi := b.g.Var(i)
	acc := b.domainIdentity(vi.States())

	for _, nb := range b.g.NbV(i) {
		m := b.edges[b.edgeAtV(i, nb.Iter)].newMessage
		b.accumulateInto(acc, m)
	}

	return factor.FromProb(varset.New(vi), b.stabilizeAndNormalize(acc))
}

// BeliefF returns the normalized belief over factor capI's full variable
// set: factor(capI).p folded with, for every neighbouring variable j,
// the product of j's newMessage from every factor other than capI
// (bp.cpp's BP::beliefF: `foreach (J, nbV(j)) if (J != I) ... newMessage`).
func (b *BP) BeliefF(capI int) (factor.Factor, error) {
	if b.edges == nil {
		return factor.Factor{}, bpErrorf("BeliefF", ErrNotInitialized)
	}

	return b.computeBeliefF(capI), nil
}

func (b *BP) computeBeliefF(capI int) factor.Factor {
	fI := b.g.FactorAt(capI)
	prod := fI.P().Clone()
	if b.opts.logDomain {
		prod = prod.Log(true)
	}

	for _, nb := range b.g.NbF(capI) {
		j := nb.Index
		eJ := &b.edges[b.edgeAtV(j, nb.Dual)]
		prodJ := b.accumulateOthers(j, capI)

		for r, sj := range eJ.index {
			if b.opts.logDomain {
				prod[r] += prodJ[sj]
			} else {
				prod[r] *= prodJ[sj]
			}
		}
	}

	return factor.FromProb(fI.Vars(), b.stabilizeAndNormalize(prod))
}

// accumulateOthers computes the product (sum in log domain) of
// newMessage[j,J] over every factor J incident to j other than capI —
// the "if (J != I)" exclusion half of BeliefF's definition.
func (b *BP) accumulateOthers(j, capI int) prob.Prob {
	vj := b.g.Var(j)
	acc := b.domainIdentity(vj.States())
	for _, nb := range b.g.NbV(j) {
		if nb.Index == capI {
			continue
		}
		b.accumulateInto(acc, b.edges[b.edgeAtV(j, nb.Iter)].newMessage)
	}

	return acc
}

// domainIdentity returns the accumulation identity of length n: 1 in
// linear domain, 0 in log domain.
func (b *BP) domainIdentity(n int) prob.Prob {
	fill := 1.0
	if b.opts.logDomain {
		fill = 0.0
	}

	return prob.New(n, fill)
}

// accumulateInto folds m into acc in place: product in linear domain, sum
// in log domain.
func (b *BP) accumulateInto(acc, m prob.Prob) {
	for k := range acc {
		if b.opts.logDomain {
			acc[k] += m[k]
		} else {
			acc[k] *= m[k]
		}
	}
}

// stabilizeAndNormalize subtracts the max and exponentiates when in log
// domain (spec §9's log-domain stabilisation), then normalizes under
// NormProb. A non-positive sum (a malformed input factor) falls back to
// uniform so belief queries remain total.
func (b *BP) stabilizeAndNormalize(p prob.Prob) prob.Prob {
	if b.opts.logDomain {
		mx := p.Max()
		p = p.SubScalar(mx).Exp()
	}
	if _, err := p.Normalize(prob.NormProb); err != nil {
		p = prob.New(len(p), 1.0/float64(len(p)))
	}

	return p
}

// Belief returns the belief over a single variable, identified by label.
func (b *BP) Belief(label int) (factor.Factor, error) {
	if b.edges == nil {
		return factor.Factor{}, bpErrorf("Belief", ErrNotInitialized)
	}

	i, ok := b.g.FindVar(label)
	if !ok {
		return factor.Factor{}, bpErrorf("Belief", ErrUnknownVariable)
	}

	return b.computeBeliefV(i), nil
}

// BeliefSet returns the belief over a joint VarSet: if |ns|==1, delegates
// to Belief; otherwise finds any factor whose VarSet contains ns and
// returns its BeliefF marginalised onto ns. Fails with
// ErrNoContainingFactor if no such factor exists.
func (b *BP) BeliefSet(ns varset.VarSet) (factor.Factor, error) {
	if b.edges == nil {
		return factor.Factor{}, bpErrorf("BeliefSet", ErrNotInitialized)
	}

	if ns.Len() == 1 {
		return b.Belief(ns.At(0).Label())
	}

	for capI := 0; capI < b.g.NrFactors(); capI++ {
		if b.g.FactorAt(capI).Vars().Superset(ns) {
			belief := b.computeBeliefF(capI)
			marg, err := belief.Marginal(ns, true)
			if err != nil {
				return factor.Factor{}, bpErrorf("BeliefSet", err)
			}

			return marg, nil
		}
	}

	return factor.Factor{}, bpErrorf("BeliefSet", ErrNoContainingFactor)
}

// Beliefs returns the concatenation of every BeliefV followed by every
// BeliefF, matching spec §4.5's beliefs().
func (b *BP) Beliefs() ([]factor.Factor, error) {
	if b.edges == nil {
		return nil, bpErrorf("Beliefs", ErrNotInitialized)
	}

	out := make([]factor.Factor, 0, b.g.NrVars()+b.g.NrFactors())
	for i := 0; i < b.g.NrVars(); i++ {
		out = append(out, b.computeBeliefV(i))
	}
	for capI := 0; capI < b.g.NrFactors(); capI++ {
		out = append(out, b.computeBeliefF(capI))
	}

	return out, nil
}

// LogZ returns the Bethe approximation of the log partition function,
// spec §4.5: Σ_i (1-|nb(i)|)·entropy(beliefV(i)) - Σ_I KL(beliefF(I) ||
// factor(I)). Widened to complex128 for API compatibility with the wider
// approximate-inference family this solver belongs to (spec §9); BP
// itself always returns a value with zero imaginary part.
func (b *BP) LogZ() (complex128, error) {
	if b.edges == nil {
		return 0, bpErrorf("LogZ", ErrNotInitialized)
	}

	var sum float64
	for i := 0; i < b.g.NrVars(); i++ {
		nbCount := len(b.g.NbV(i))
		belief := b.computeBeliefV(i)
		sum += float64(1-nbCount) * belief.Entropy()
	}

	for capI := 0; capI < b.g.NrFactors(); capI++ {
		belief := b.computeBeliefF(capI)
		kl, err := factor.KLDist(belief, b.g.FactorAt(capI))
		if err != nil {
			return 0, bpErrorf("LogZ", err)
		}
		sum -= kl
	}

	return complex(sum, 0), nil
}
