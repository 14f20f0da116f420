// SPDX-License-Identifier: MIT
package prob

import "math"

func powf(x, a float64) float64 { return math.Pow(x, a) }
func posInf() float64           { return math.Inf(1) }

// Log returns the pointwise natural logarithm of p. If zero is true,
// log(0) is mapped to 0; otherwise log(0) is mapped to -Inf. Matches
// TFactor<T>::log's zero-policy parameter.
func (p Prob) Log(zero bool) Prob {
	out := make(Prob, len(p))
	for i, v := range p {
		if v == 0 {
			if zero {
				out[i] = 0
			} else {
				out[i] = math.Inf(-1)
			}
			continue
		}
		out[i] = math.Log(v)
	}

	return out
}

// TakeLog replaces every entry of p by its natural logarithm in place,
// using the zero==true convention (log(0) -> 0): the in-place counterpart
// of Log(true).
func (p Prob) TakeLog() Prob {
	for i, v := range p {
		if v == 0 {
			p[i] = 0
			continue
		}
		p[i] = math.Log(v)
	}

	return p
}

// Exp returns the pointwise exponential of p.
func (p Prob) Exp() Prob {
	out := make(Prob, len(p))
	for i, v := range p {
		out[i] = math.Exp(v)
	}

	return out
}

// TakeExp replaces every entry of p by its exponential in place.
func (p Prob) TakeExp() Prob {
	for i, v := range p {
		p[i] = math.Exp(v)
	}

	return p
}

// Abs returns the pointwise absolute value of p.
func (p Prob) Abs() Prob {
	out := make(Prob, len(p))
	for i, v := range p {
		out[i] = math.Abs(v)
	}

	return out
}

// Inverse returns the pointwise reciprocal of p. If zero is true, 0 maps
// to 0; otherwise 0 maps to +Inf.
func (p Prob) Inverse(zero bool) Prob {
	out := make(Prob, len(p))
	for i, v := range p {
		if v == 0 {
			if zero {
				out[i] = 0
			} else {
				out[i] = math.Inf(1)
			}
			continue
		}
		out[i] = 1 / v
	}

	return out
}

// MakeZero sets every entry with |x| < epsilon to 0, in place.
func (p Prob) MakeZero(epsilon float64) Prob {
	for i, v := range p {
		if math.Abs(v) < epsilon {
			p[i] = 0
		}
	}

	return p
}

// MakePositive sets every entry with 0 <= x < epsilon to epsilon, in place.
func (p Prob) MakePositive(epsilon float64) Prob {
	for i, v := range p {
		if v >= 0 && v < epsilon {
			p[i] = epsilon
		}
	}

	return p
}
