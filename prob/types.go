// SPDX-License-Identifier: MIT
package prob

import (
	"fmt"
	"math/rand"
)

// Prob is a finite sequence of real values p[0..n), n >= 1. It is the
// storage backing a factor's values or a belief-propagation message.
// Elementwise operations are defined only between Probs of equal length;
// scalar operations broadcast across every entry.
type Prob []float64

func probErrorf(tag string, err error) error {
	return fmt.Errorf("prob.%s: %w", tag, err)
}

// New allocates a Prob of length n, every entry set to v.
func New(n int, v float64) Prob {
	p := make(Prob, n)
	for i := range p {
		p[i] = v
	}

	return p
}

// Clone returns a deep copy of p, independent of the original.
func (p Prob) Clone() Prob {
	out := make(Prob, len(p))
	copy(out, p)

	return out
}

// Fill sets every entry of p to v, mutating in place.
func (p Prob) Fill(v float64) Prob {
	for i := range p {
		p[i] = v
	}

	return p
}

// Randomize draws every entry of p i.i.d. from a uniform distribution on
// [0,1), using rnd as the random source. Seeding rnd is the caller's
// concern; prob holds no global random state.
func (p Prob) Randomize(rnd *rand.Rand) Prob {
	for i := range p {
		p[i] = rnd.Float64()
	}

	return p
}

// sameLength validates that p and q have equal length, returning a wrapped
// ErrLengthMismatch tagged with op otherwise.
func sameLength(op string, p, q Prob) error {
	if len(p) != len(q) {
		return probErrorf(op, ErrLengthMismatch)
	}

	return nil
}
