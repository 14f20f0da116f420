// SPDX-License-Identifier: MIT

// Package fgraph implements the variable/factor-graph container spec.md
// scopes out as an external collaborator (bipartite membership queries,
// ordered neighbour lists with iter/dual duality, findVar). Graph is
// thread-safe (separate sync.RWMutex locks for the variable and factor
// sides, adapted from the teacher's core.Graph) and satisfies package
// bp's Graph interface. builder.go supplies the canonical topologies
// (chain, cycle, star, grid, XOR-triangle) spec §8's testable properties
// and end-to-end scenarios are stated against.
package fgraph
