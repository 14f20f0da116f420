// SPDX-License-Identifier: MIT
package varset

// IndexFor is a restartable cursor over a superset B's linear indices that
// yields, at each step, the linear index of the corresponding joint state
// projected onto a subset A. Construction is O(|B|); each Next() is O(1)
// amortised via a per-variable carry, even though a single step can in the
// worst case touch every dimension of B (a full carry chain).
//
// IndexFor holds only a read-only view of A and B (their state-count
// shapes); it must not outlive them, matching the concurrency contract in
// spec §5.
type IndexFor struct {
	stateCounts []int // S_b for each dimension of B, ascending label order
	strideInA   []int // stride contributed to the A-index by this B-dimension, 0 if absent from A
	state       []int // current digit per B-dimension
	cur         int   // current linear index into A
	bIdx        int   // current linear index into B
	total       int   // B.NrStates(); bIdx ranges over [0, total)
}

// NewIndexFor constructs an IndexFor projecting B's joint indices onto A's.
// Requires A <<= B (A is a subset of B); returns ErrNotSubset otherwise.
func NewIndexFor(a, b VarSet) (*IndexFor, error) {
	if !a.Subset(b) {
		return nil, ErrNotSubset
	}

	n := b.Len()
	cur := &IndexFor{
		stateCounts: make([]int, n),
		strideInA:   make([]int, n),
		state:       make([]int, n),
		total:       b.NrStates(),
	}

	// strideA[v] is the stride variable v contributes within A's own linear
	// index space, computed once over A in ascending-label order.
	strideA := make(map[int]int, a.Len())
	stride := 1
	for _, v := range a.Vars() {
		strideA[v.Label()] = stride
		stride *= v.States()
	}

	for k, v := range b.Vars() {
		cur.stateCounts[k] = v.States()
		if s, ok := strideA[v.Label()]; ok {
			cur.strideInA[k] = s
		}
	}

	return cur, nil
}

// Index returns the current linear index into A.
func (c *IndexFor) Index() int { return c.cur }

// BIndex returns the current linear index into B.
func (c *IndexFor) BIndex() int { return c.bIdx }

// Done reports whether the cursor has exhausted every joint index of B.
func (c *IndexFor) Done() bool { return c.bIdx >= c.total }

// Reset rewinds the cursor to B's first joint index (all digits zero).
func (c *IndexFor) Reset() {
	for k := range c.state {
		c.state[k] = 0
	}
	c.cur = 0
	c.bIdx = 0
}

// Next advances the cursor to B's next joint index, updating Index()
// accordingly, and reports whether a next index existed (false once the
// cursor has been advanced past B.NrStates()-1 entries).
func (c *IndexFor) Next() bool {
	if c.bIdx+1 >= c.total {
		c.bIdx++

		return false
	}

	for k := range c.state {
		c.state[k]++
		c.cur += c.strideInA[k]
		if c.state[k] < c.stateCounts[k] {
			break
		}
		c.cur -= c.strideInA[k] * c.stateCounts[k]
		c.state[k] = 0
	}
	c.bIdx++

	return true
}

// Materialize resets the cursor, runs it to completion from B's first
// joint index, and returns the full table of A-indices, one per joint
// index of B in ascending order. This is the "precompute
// once, read-only during the hot loop" table spec §9 calls for.
func (c *IndexFor) Materialize() []int {
	c.Reset()
	out := make([]int, c.total)
	if c.total == 0 {
		return out
	}
	out[0] = c.cur
	for i := 1; i < c.total; i++ {
		c.Next()
		out[i] = c.cur
	}

	return out
}
