// Package graph implements the decoding-graph store (§4.1): immutable
// hypergraph topology plus the mutable per-solve state layered on top of it
// (defect flags, per-edge grown amounts, per-solve weight overrides).
//
// Grounded on lvlath's core package: a dense vertex/edge catalog behind a
// pair of sync.RWMutex (split by concern, never held together), functional
// construction, and an O(V+E) Stats() snapshot. Edge is generalized from a
// binary (From, To) pair to an ordered, non-empty hyperedge
// (Vertices []idx.Vertex), and weight becomes the pluggable weight.W algebra
// instead of int64.
package graph
