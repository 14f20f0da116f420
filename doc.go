// Package dinfer is a discrete probabilistic-inference engine: factor
// algebra over finite-state variables (package factor, built on package
// varset and package prob) and a loopy belief-propagation solver over a
// variable/factor graph (package bp, run against package fgraph's
// concrete graph container).
//
// Subpackages:
//
//	varset/       — Variable and VarSet: labelled discrete variables, mixed-radix
//	                joint-state indexing, and the IndexFor subset/superset cursor
//	prob/         — Prob: arithmetic, normalization, distances, and entropy over
//	                a flat probability-table slice
//	factor/       — Factor: a VarSet paired with a Prob, with product/quotient/
//	                marginal/slice/embed and the pairwise strength measures
//	bp/           — BP: the message-passing solver (PARALL/SEQFIX/SEQRND/SEQMAX
//	                schedules, belief and log-partition-function queries)
//	fgraph/       — Graph: the thread-safe bipartite variable/factor container
//	                bp.Graph is defined against, plus canonical topology builders
//	internal/config — a typed property bag implementing bp.PropertyStore
//	internal/xlog   — verbosity-to-zap-level logger construction
//	cmd/bpsolve     — a CLI driving a canonical topology through bp.BP
package dinfer
