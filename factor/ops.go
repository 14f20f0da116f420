// SPDX-License-Identifier: MIT
package factor

import (
	"github.com/katalvlaran/dinfer/prob"
	"github.com/katalvlaran/dinfer/varset"
)

// combine implements the binary pointwise-op pattern of spec §4.4: when
// f.Vars() and g.Vars() are identical, it operates directly on the
// underlying Prob (the fast path); otherwise the result is taken over
// L|M and two IndexFor cursors project each operand's value onto it.
func combine(op string, f, g Factor, same func(a, b prob.Prob) (prob.Prob, error), elem func(a, b float64) float64) (Factor, error) {
	if f.vars.Equal(g.vars) {
		values, err := same(f.values, g.values)
		if err != nil {
			return Factor{}, factorErrorf(op, err)
		}

		return Factor{vars: f.vars, values: values}, nil
	}

	union := f.vars.Union(g.vars)
	iF, err := varset.NewIndexFor(f.vars, union)
	if err != nil {
		return Factor{}, factorErrorf(op, err)
	}
	iG, err := varset.NewIndexFor(g.vars, union)
	if err != nil {
		return Factor{}, factorErrorf(op, err)
	}

	n := union.NrStates()
	out := make(prob.Prob, n)
	if n > 0 {
		out[0] = elem(f.values[iF.Index()], g.values[iG.Index()])
		for r := 1; r < n; r++ {
			iF.Next()
			iG.Next()
			out[r] = elem(f.values[iF.Index()], g.values[iG.Index()])
		}
	}

	return Factor{vars: union, values: out}, nil
}

// Mul returns the product of f and g. The result's VarSet is f.Vars() |
// g.Vars(); f and g need not share a VarSet.
func (f Factor) Mul(g Factor) (Factor, error) {
	return combine("Mul", f, g,
		func(a, b prob.Prob) (prob.Prob, error) { return a.Mul(b) },
		func(a, b float64) float64 { return a * b },
	)
}

// Div returns the quotient f/g under the zero-is-zero policy (x/0 == 0),
// the convention the BP core relies on. The result's VarSet is f.Vars() |
// g.Vars().
func (f Factor) Div(g Factor) (Factor, error) {
	return combine("Div", f, g,
		func(a, b prob.Prob) (prob.Prob, error) { return a.Div(b) },
		func(a, b float64) float64 {
			if b == 0 {
				return 0
			}

			return a / b
		},
	)
}

// Add returns the sum of f and g. Both must share the same VarSet;
// ErrVarSetMismatch otherwise.
func (f Factor) Add(g Factor) (Factor, error) {
	if !f.vars.Equal(g.vars) {
		return Factor{}, factorErrorf("Add", ErrVarSetMismatch)
	}
	values, err := f.values.Add(g.values)
	if err != nil {
		return Factor{}, factorErrorf("Add", err)
	}

	return Factor{vars: f.vars, values: values}, nil
}

// Sub returns f minus g. Both must share the same VarSet;
// ErrVarSetMismatch otherwise.
func (f Factor) Sub(g Factor) (Factor, error) {
	if !f.vars.Equal(g.vars) {
		return Factor{}, factorErrorf("Sub", ErrVarSetMismatch)
	}
	values, err := f.values.Sub(g.values)
	if err != nil {
		return Factor{}, factorErrorf("Sub", err)
	}

	return Factor{vars: f.vars, values: values}, nil
}

// Max returns the pointwise maximum of f and g, which must share a VarSet.
func (f Factor) Max(g Factor) (Factor, error) {
	if !f.vars.Equal(g.vars) {
		return Factor{}, factorErrorf("Max", ErrVarSetMismatch)
	}
	out := make(prob.Prob, len(f.values))
	for i := range out {
		if f.values[i] >= g.values[i] {
			out[i] = f.values[i]
		} else {
			out[i] = g.values[i]
		}
	}

	return Factor{vars: f.vars, values: out}, nil
}

// Min returns the pointwise minimum of f and g, which must share a VarSet.
func (f Factor) Min(g Factor) (Factor, error) {
	if !f.vars.Equal(g.vars) {
		return Factor{}, factorErrorf("Min", ErrVarSetMismatch)
	}
	out := make(prob.Prob, len(f.values))
	for i := range out {
		if f.values[i] <= g.values[i] {
			out[i] = f.values[i]
		} else {
			out[i] = g.values[i]
		}
	}

	return Factor{vars: f.vars, values: out}, nil
}

// Marginal sums f out over every variable not in ns and returns the
// result over ns & f.Vars(). If normed, the result is normalized under
// NormProb.
func (f Factor) Marginal(ns varset.VarSet, normed bool) (Factor, error) {
	resVars := ns.Intersect(f.vars)
	out := make(prob.Prob, resVars.NrStates())

	idx, err := varset.NewIndexFor(resVars, f.vars)
	if err != nil {
		return Factor{}, factorErrorf("Marginal", err)
	}

	n := f.NrStates()
	if n > 0 {
		out[idx.Index()] += f.values[0]
		for i := 1; i < n; i++ {
			idx.Next()
			out[idx.Index()] += f.values[i]
		}
	}

	res := Factor{vars: resVars, values: out}
	if normed {
		if _, err := res.values.Normalize(prob.NormProb); err != nil {
			return Factor{}, factorErrorf("Marginal", err)
		}
	}

	return res, nil
}

// Slice returns the factor obtained by fixing the variables in ns to the
// joint state nsState, a linear index into ns.NrStates(). The result's
// VarSet is f.Vars() \ ns. Preconditions: ns <<= f.Vars() and
// nsState < ns.NrStates().
func (f Factor) Slice(ns varset.VarSet, nsState int) (Factor, error) {
	if !ns.Subset(f.vars) {
		return Factor{}, factorErrorf("Slice", ErrNotSubset)
	}
	if nsState < 0 || nsState >= ns.NrStates() {
		return Factor{}, factorErrorf("Slice", ErrStateOutOfRange)
	}

	rem := f.vars.Diff(ns)
	out := make(prob.Prob, rem.NrStates())

	iNs, err := varset.NewIndexFor(ns, f.vars)
	if err != nil {
		return Factor{}, factorErrorf("Slice", err)
	}
	iRem, err := varset.NewIndexFor(rem, f.vars)
	if err != nil {
		return Factor{}, factorErrorf("Slice", err)
	}

	n := f.NrStates()
	for i := 0; i < n; i++ {
		if i > 0 {
			iNs.Next()
			iRem.Next()
		}
		if iNs.Index() == nsState {
			out[iRem.Index()] = f.values[i]
		}
	}

	return Factor{vars: rem, values: out}, nil
}

// Embed lifts f into a larger VarSet ns. Precondition: f.Vars() <<= ns.
// If f already depends on exactly ns, Embed returns f unchanged.
func (f Factor) Embed(ns varset.VarSet) (Factor, error) {
	if !f.vars.Subset(ns) {
		return Factor{}, factorErrorf("Embed", ErrNotSubset)
	}
	if f.vars.Equal(ns) {
		return f, nil
	}

	extra := ns.Diff(f.vars)

	return f.Mul(New(extra, 1))
}

// Normalize divides f's values in place by the chosen norm and returns the
// pre-normalization norm value.
func (f Factor) Normalize(norm prob.NormType) (float64, error) {
	n, err := f.values.Normalize(norm)
	if err != nil {
		return 0, factorErrorf("Normalize", err)
	}

	return n, nil
}

// Normalized returns a normalized copy of f, leaving f unchanged.
func (f Factor) Normalized(norm prob.NormType) (Factor, error) {
	out := f.Clone()
	if _, err := out.Normalize(norm); err != nil {
		return Factor{}, err
	}

	return out, nil
}

// Log returns the pointwise natural logarithm of f's values.
func (f Factor) Log(zero bool) Factor { return Factor{vars: f.vars, values: f.values.Log(zero)} }

// Exp returns the pointwise exponential of f's values.
func (f Factor) Exp() Factor { return Factor{vars: f.vars, values: f.values.Exp()} }

// Abs returns the pointwise absolute value of f's values.
func (f Factor) Abs() Factor { return Factor{vars: f.vars, values: f.values.Abs()} }

// Inverse returns the pointwise reciprocal of f's values.
func (f Factor) Inverse(zero bool) Factor {
	return Factor{vars: f.vars, values: f.values.Inverse(zero)}
}

// MakeZero sets every entry with |x| < epsilon to 0, mutating f in place.
func (f Factor) MakeZero(epsilon float64) Factor { f.values.MakeZero(epsilon); return f }

// MakePositive sets every entry with 0 <= x < epsilon to epsilon, mutating
// f in place.
func (f Factor) MakePositive(epsilon float64) Factor { f.values.MakePositive(epsilon); return f }

// TotalSum returns the sum of f's values.
func (f Factor) TotalSum() float64 { return f.values.TotalSum() }

// MaxAbs returns the maximum absolute value among f's values.
func (f Factor) MaxAbs() float64 { return f.values.MaxAbs() }

// MaxVal returns the maximum value among f's values.
func (f Factor) MaxVal() float64 { return f.values.Max() }

// MinVal returns the minimum value among f's values.
func (f Factor) MinVal() float64 { return f.values.Min() }

// Entropy returns the entropy of f's values.
func (f Factor) Entropy() float64 { return f.values.Entropy() }

// HasNaNs reports whether any of f's values is NaN.
func (f Factor) HasNaNs() bool { return f.values.HasNaNs() }

// HasNegatives reports whether any of f's values is negative.
func (f Factor) HasNegatives() bool { return f.values.HasNegatives() }

// Dist returns the distance between f and g under dt. Both must share a
// VarSet.
func Dist(f, g Factor, dt prob.DistType) (float64, error) {
	if f.vars.Len() == 0 || g.vars.Len() == 0 {
		return -1, nil
	}
	if !f.vars.Equal(g.vars) {
		return 0, factorErrorf("Dist", ErrVarSetMismatch)
	}

	d, err := prob.Dist(f.values, g.values, dt)
	if err != nil {
		return 0, factorErrorf("Dist", err)
	}

	return d, nil
}

// KLDist returns KL(f || g), the Kullback-Leibler divergence.
func KLDist(f, g Factor) (float64, error) {
	return Dist(f, g, prob.DistKL)
}
