// SPDX-License-Identifier: MIT
package factor

import (
	"math"

	"github.com/katalvlaran/dinfer/prob"
	"github.com/katalvlaran/dinfer/varset"
)

// Strength computes the influence measure strength(i,j) defined in
// factor.h: with psi this factor and i, j two of its variables (f.Vars()
// may be a strict superset of {i,j}; any remaining variables survive as
// psi(a,b)'s own VarSet, exactly as factor.h's slice(ij,state) does not
// marginalise them away),
//
//	L = max_{i1!=i2, j1!=j2} | log( max_rest psi(i1,j1)*psi(i2,j2) / (psi(i1,j2)*psi(i2,j1)) ) |
//	strength(i,j) = tanh(L / 4)
//
// where each psi(a,b) above is f.Slice({i,j}, state(a,b)), a factor over
// f.Vars() \ {i,j}, and the ratio is divided pointwise over that
// remaining VarSet before taking the max — factor.h's
// slice(...).p().divide(slice(...).p()).maxVal(), not a ratio of the two
// slices' individual maxima. Quadruples whose peak ratio is not positive
// are skipped, and the tanh keeps the result in [0,1). This implementation
// re-derives the four joint states via VarSet.CalcState (the Open
// Question in spec §9 resolved in favour of re-derivation over
// hand-maintained strides) rather than the literal as/bs index
// arithmetic of the original.
func (f Factor) Strength(i, j varset.Variable) (float64, error) {
	if !f.vars.Contains(i) || !f.vars.Contains(j) {
		return 0, factorErrorf("Strength", ErrUnknownVariable)
	}

	ij := varset.New(i, j)
	si, sj := i.States(), j.States()
	state := make([]int, 2)

	at := func(iState, jState int) (Factor, error) {
		for k, v := range ij.Vars() {
			switch v.Label() {
			case i.Label():
				state[k] = iState
			case j.Label():
				state[k] = jState
			}
		}
		nsState, err := ij.CalcState(state)
		if err != nil {
			return Factor{}, err
		}

		return f.Slice(ij, nsState)
	}

	maxVal := 0.0
	for i1 := 0; i1 < si; i1++ {
		for i2 := 0; i2 < si; i2++ {
			if i1 == i2 {
				continue
			}
			for j1 := 0; j1 < sj; j1++ {
				for j2 := 0; j2 < sj; j2++ {
					if j1 == j2 {
						continue
					}

					a, err := at(i1, j1)
					if err != nil {
						return 0, factorErrorf("Strength", err)
					}
					b, err := at(i2, j2)
					if err != nil {
						return 0, factorErrorf("Strength", err)
					}
					c, err := at(i1, j2)
					if err != nil {
						return 0, factorErrorf("Strength", err)
					}
					d, err := at(i2, j1)
					if err != nil {
						return 0, factorErrorf("Strength", err)
					}

					num, err := a.Mul(b)
					if err != nil {
						return 0, factorErrorf("Strength", err)
					}
					den, err := c.Mul(d)
					if err != nil {
						return 0, factorErrorf("Strength", err)
					}
					ratio, err := num.Div(den)
					if err != nil {
						return 0, factorErrorf("Strength", err)
					}

					peak := ratio.MaxVal()
					if peak <= 0 {
						continue
					}
					val := math.Abs(math.Log(peak))
					if val > maxVal {
						maxVal = val
					}
				}
			}
		}
	}

	return math.Tanh(maxVal / 4), nil
}

// MutualInfo returns the mutual information between f's two variables,
// treating f as a joint distribution (normalizing it first if necessary).
func (f Factor) MutualInfo() (float64, error) {
	if f.vars.Len() != 2 {
		return 0, factorErrorf("MutualInfo", ErrWrongArity)
	}

	joint, err := f.Normalized(prob.NormProb)
	if err != nil {
		return 0, factorErrorf("MutualInfo", err)
	}

	vi := varset.New(f.vars.At(0))
	vj := varset.New(f.vars.At(1))

	margI, err := joint.Marginal(vi, false)
	if err != nil {
		return 0, factorErrorf("MutualInfo", err)
	}
	margJ, err := joint.Marginal(vj, false)
	if err != nil {
		return 0, factorErrorf("MutualInfo", err)
	}

	mi := 0.0
	for si := 0; si < margI.NrStates(); si++ {
		for sj := 0; sj < margJ.NrStates(); sj++ {
			state := []int{0, 0}
			for k, v := range joint.vars.Vars() {
				switch v.Label() {
				case f.vars.At(0).Label():
					state[k] = si
				case f.vars.At(1).Label():
					state[k] = sj
				}
			}
			idx, err := joint.vars.CalcState(state)
			if err != nil {
				return 0, factorErrorf("MutualInfo", err)
			}
			pij := joint.values[idx]
			if pij <= 0 {
				continue
			}
			pi := margI.values[si]
			pj := margJ.values[sj]
			if pi <= 0 || pj <= 0 {
				continue
			}
			mi += pij * math.Log(pij/(pi*pj))
		}
	}

	return mi, nil
}
