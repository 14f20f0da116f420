// SPDX-License-Identifier: MIT

// Package bp implements loopy belief propagation (the sum-product
// algorithm) over a discrete factor graph: BP.Run passes Prob-valued
// messages along the edges of a bipartite variable/factor graph (the
// Graph interface, satisfied by package fgraph's concrete Graph) under one
// of four update schedules until the beliefs converge or a maximum
// iteration count is reached. See spec §5-§8.
package bp
