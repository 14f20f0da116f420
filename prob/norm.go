// SPDX-License-Identifier: MIT
package prob

import "math"

// NormType selects the normalization and distance conventions used across
// the package, mirroring dai::Prob::NormType / DistType.
type NormType int

const (
	// NormProb divides every entry by the sum of all entries.
	NormProb NormType = iota
	// NormLinf divides every entry by the maximum absolute value.
	NormLinf
)

// DistType selects a distance measure between two equal-length Probs.
type DistType int

const (
	// DistL1 is the sum of absolute differences.
	DistL1 DistType = iota
	// DistLinf is the maximum absolute difference.
	DistLinf
	// DistTV is total-variation distance, half of DistL1.
	DistTV
	// DistKL is the Kullback-Leibler divergence KL(p || q).
	DistKL
)

// Normalize divides every entry of p by its norm in place (NormProb: sum,
// NormLinf: max absolute value) and returns the pre-normalization value of
// that norm. It fails with ErrEmptyNormalization under NormProb if the sum
// is not strictly positive; package bp, which normalizes messages and
// beliefs with it, falls back to a uniform vector when that happens.
func (p Prob) Normalize(norm NormType) (float64, error) {
	switch norm {
	case NormProb:
		sum := p.TotalSum()
		if sum <= 0 {
			return 0, probErrorf("Normalize", ErrEmptyNormalization)
		}
		p.DivScalar(sum)

		return sum, nil
	case NormLinf:
		if len(p) == 0 {
			return 0, probErrorf("Normalize", ErrEmptyProb)
		}
		m := p.MaxAbs()
		if m > 0 {
			p.DivScalar(m)
		}

		return m, nil
	default:
		return 0, probErrorf("Normalize", ErrEmptyNormalization)
	}
}

// Normalized returns a normalized copy of p, leaving p untouched.
func (p Prob) Normalized(norm NormType) (Prob, float64, error) {
	out := p.Clone()
	n, err := out.Normalize(norm)

	return out, n, err
}

// Dist returns the distance between p and q under dt. p and q must have
// equal length.
func Dist(p, q Prob, dt DistType) (float64, error) {
	if err := sameLength("Dist", p, q); err != nil {
		return 0, err
	}

	switch dt {
	case DistL1:
		var s float64
		for i := range p {
			s += math.Abs(p[i] - q[i])
		}

		return s, nil
	case DistLinf:
		var m float64
		for i := range p {
			if d := math.Abs(p[i] - q[i]); d > m {
				m = d
			}
		}

		return m, nil
	case DistTV:
		var s float64
		for i := range p {
			s += math.Abs(p[i] - q[i])
		}

		return s / 2, nil
	case DistKL:
		var s float64
		for i := range p {
			if p[i] == 0 {
				continue
			}
			s += p[i] * math.Log(p[i]/q[i])
		}

		return s, nil
	default:
		return 0, probErrorf("Dist", ErrLengthMismatch)
	}
}
