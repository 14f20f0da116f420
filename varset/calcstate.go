// SPDX-License-Identifier: MIT
package varset

// CalcState computes the linear (mixed-radix) index of the joint
// assignment given by state[k] for the k'th variable of s in
// ascending-label order: index = sum_k state[k] * prod_{j<k} S_j. The
// variable with the smallest label is the fastest-varying dimension; this
// ordering is the contract between VarSet, IndexFor, Factor, and the
// partition-function computation (spec §3). len(state) must equal s.Len().
func (s VarSet) CalcState(state []int) (int, error) {
	if len(state) != len(s.vars) {
		return 0, ErrAssignmentLength
	}

	idx := 0
	stride := 1
	for k, v := range s.vars {
		if state[k] < 0 || state[k] >= v.States() {
			return 0, ErrStateOutOfRange
		}
		idx += state[k] * stride
		stride *= v.States()
	}

	return idx, nil
}

// Decode is the inverse of CalcState: given a linear index into s's joint
// state space, it returns the per-variable state assignment in
// ascending-label order.
func (s VarSet) Decode(index int) []int {
	state := make([]int, len(s.vars))
	for k, v := range s.vars {
		state[k] = index % v.States()
		index /= v.States()
	}

	return state
}
