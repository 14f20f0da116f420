// SPDX-License-Identifier: MIT
package factor

import (
	"fmt"

	"github.com/katalvlaran/dinfer/prob"
	"github.com/katalvlaran/dinfer/varset"
)

// Factor is a nonnegative real-valued function over a joint assignment of
// the variables in Vars, stored as a flat Prob indexed by the mixed-radix
// code of varset.VarSet.CalcState. len(f.P()) always equals f.Vars().NrStates().
type Factor struct {
	vars   varset.VarSet
	values prob.Prob
}

func factorErrorf(op string, err error) error {
	return fmt.Errorf("factor.%s: %w", op, err)
}

// New builds a Factor over vs with every entry set to fill.
func New(vs varset.VarSet, fill float64) Factor {
	return Factor{vars: vs, values: prob.New(vs.NrStates(), fill)}
}

// FromProb builds a Factor over vs using values directly (no copy).
// Precondition: len(values) == vs.NrStates(); violating it is a
// precondition-violation per spec §7 and is the caller's responsibility to
// avoid — this constructor does not defensively re-validate on every call
// because it sits on Factor's hot construction path (one per BP edge).
func FromProb(vs varset.VarSet, values prob.Prob) Factor {
	return Factor{vars: vs, values: values}
}

// Unit returns the factor over no variables with value 1, the identity of
// factor product.
func Unit() Factor {
	return Factor{values: prob.Prob{1}}
}

// Vars returns the factor's VarSet.
func (f Factor) Vars() varset.VarSet { return f.vars }

// P returns the factor's underlying value vector. The returned Prob
// aliases f's storage; mutating it mutates f.
func (f Factor) P() prob.Prob { return f.values }

// NrStates returns the number of joint states, i.e. len(f.P()).
func (f Factor) NrStates() int { return len(f.values) }

// Clone returns a deep copy of f.
func (f Factor) Clone() Factor {
	return Factor{vars: f.vars, values: f.values.Clone()}
}

// Fill sets every entry of f to v, mutating f.P() in place.
func (f Factor) Fill(v float64) Factor {
	f.values.Fill(v)

	return f
}

// Scalar operations broadcast t and mutate in place, mirroring Prob's
// in-place convention and TFactor<T>::operator*= et al.

// MulScalar multiplies every entry of f by t.
func (f Factor) MulScalar(t float64) Factor { f.values.MulScalar(t); return f }

// DivScalar divides every entry of f by t.
func (f Factor) DivScalar(t float64) Factor { f.values.DivScalar(t); return f }

// AddScalar adds t to every entry of f.
func (f Factor) AddScalar(t float64) Factor { f.values.AddScalar(t); return f }

// SubScalar subtracts t from every entry of f.
func (f Factor) SubScalar(t float64) Factor { f.values.SubScalar(t); return f }

// PowScalar raises every entry of f to the power a.
func (f Factor) PowScalar(a float64) Factor { f.values.PowScalar(a); return f }
