// SPDX-License-Identifier: MIT
package prob

// Scalar operations broadcast t across every entry and mutate p in place,
// returning p for chaining (mirrors the teacher's Dense in-place kernels).

// AddScalar adds t to every entry of p.
func (p Prob) AddScalar(t float64) Prob {
	for i := range p {
		p[i] += t
	}

	return p
}

// SubScalar subtracts t from every entry of p.
func (p Prob) SubScalar(t float64) Prob {
	for i := range p {
		p[i] -= t
	}

	return p
}

// MulScalar multiplies every entry of p by t.
func (p Prob) MulScalar(t float64) Prob {
	for i := range p {
		p[i] *= t
	}

	return p
}

// DivScalar divides every entry of p by t.
func (p Prob) DivScalar(t float64) Prob {
	for i := range p {
		p[i] /= t
	}

	return p
}

// PowScalar raises every entry of p to the power a.
func (p Prob) PowScalar(a float64) Prob {
	for i := range p {
		p[i] = powf(p[i], a)
	}

	return p
}

// Add returns p+q elementwise. p and q must have equal length.
func (p Prob) Add(q Prob) (Prob, error) {
	if err := sameLength("Add", p, q); err != nil {
		return nil, err
	}
	out := make(Prob, len(p))
	for i := range p {
		out[i] = p[i] + q[i]
	}

	return out, nil
}

// Sub returns p-q elementwise. p and q must have equal length.
func (p Prob) Sub(q Prob) (Prob, error) {
	if err := sameLength("Sub", p, q); err != nil {
		return nil, err
	}
	out := make(Prob, len(p))
	for i := range p {
		out[i] = p[i] - q[i]
	}

	return out, nil
}

// Mul returns p*q elementwise. p and q must have equal length.
func (p Prob) Mul(q Prob) (Prob, error) {
	if err := sameLength("Mul", p, q); err != nil {
		return nil, err
	}
	out := make(Prob, len(p))
	for i := range p {
		out[i] = p[i] * q[i]
	}

	return out, nil
}

// Div returns p/q elementwise under the zero-is-zero policy: q[i]==0 maps
// the quotient to 0 rather than +Inf. p and q must have equal length. This
// is the policy the BP core relies on (spec §4.4).
func (p Prob) Div(q Prob) (Prob, error) {
	return p.DivPolicy(q, true)
}

// DivPolicy returns p/q elementwise. When zero is true, a zero denominator
// maps the quotient to 0; when false, it maps to +Inf (matching
// Prob.Inverse's zero-policy convention). p and q must have equal length.
func (p Prob) DivPolicy(q Prob, zero bool) (Prob, error) {
	if err := sameLength("Div", p, q); err != nil {
		return nil, err
	}
	out := make(Prob, len(p))
	for i := range p {
		if q[i] == 0 {
			if zero {
				out[i] = 0
			} else {
				out[i] = posInf()
			}
			continue
		}
		out[i] = p[i] / q[i]
	}

	return out, nil
}

// AddInPlace adds q into p in place. p and q must have equal length.
func (p Prob) AddInPlace(q Prob) error {
	if err := sameLength("AddInPlace", p, q); err != nil {
		return err
	}
	for i := range p {
		p[i] += q[i]
	}

	return nil
}

// MulInPlace multiplies p by q in place. p and q must have equal length.
func (p Prob) MulInPlace(q Prob) error {
	if err := sameLength("MulInPlace", p, q); err != nil {
		return err
	}
	for i := range p {
		p[i] *= q[i]
	}

	return nil
}
