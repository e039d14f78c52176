// Package mwpf implements the core of a hypergraph Minimum-Weight Parity
// Factor (MWPF) decoder used in quantum-error-correction decoding: given a
// weighted decoding hypergraph and a syndrome (a subset of "defect"
// vertices), it computes a subset of hyperedges (the "subgraph") whose
// symmetric difference of incidences equals the syndrome, minimizing total
// edge weight, together with a certified lower/upper weight bound.
//
// The algorithm is a cluster-growing primal-dual method, an extension of
// the blossom algorithm from matchings on graphs to parity factors on
// hypergraphs. It is organized as five cooperating packages:
//
//	graph/    — the decoding-graph store: vertices, hyperedges, weights,
//	            defect flags, and per-solve mutable state (grown amount).
//	dual/     — the dual module: dual variables y_S, their growth rates
//	            and hairs, and the next-obstacle priority scan.
//	matrix/   — the per-cluster GF(2) parity-check tableau: satisfiability,
//	            minimum-weight subgraph extraction, and relaxer proposals.
//	primal/   — the primal module: cluster union-find, the main obstacle
//	            dispatch loop, relaxer application, and final assembly.
//	solver/   — the external-interface façade: Initializer, Solver,
//	            solve/subgraph/subgraph_range/clear, and a snapshot tap.
//
// Two supplemental packages round out the external-interface surface:
// hgformat (a plain-text hypergraph loader) and snapshot (the persistent
// JSON schema for inspecting dual/graph state).
//
//	go get github.com/katalvlaran/mwpf
package mwpf
