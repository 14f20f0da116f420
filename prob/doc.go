// SPDX-License-Identifier: MIT

// Package prob implements Prob, a dense vector of nonnegative reals with
// elementwise arithmetic, norms, and distance measures. It is the leaf
// numeric type the rest of the inference engine builds on: a factor is a
// VarSet paired with a Prob of matching length, and a belief-propagation
// message is a Prob indexed by a single variable's states.
//
// Prob deliberately has no notion of variables or shape beyond its own
// length; all indexing semantics live in package varset and factor.
package prob
