// SPDX-License-Identifier: MIT

// Package factor implements Factor, a (VarSet, Prob) pair representing a
// nonnegative real-valued function over the joint assignment of a set of
// discrete variables. Factor arithmetic (product, quotient, sum,
// marginalisation, slicing, embedding) is the algebra the belief-propagation
// solver in package bp is built on; see spec §4.4.
package factor
