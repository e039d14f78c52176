// File: types.go
// Role: Store, EdgeSpec, WeightOverride and sentinel errors.
package graph

import (
	"errors"
	"sync"

	"github.com/katalvlaran/mwpf/idx"
	"github.com/katalvlaran/mwpf/weight"
)

// Sentinel errors for the decoding-graph store.
var (
	// ErrInvalidTopology indicates a malformed Initializer: an out-of-range
	// vertex index, a negative weight, or an empty edge.
	ErrInvalidTopology = errors.New("graph: invalid topology")

	// ErrInvalidSyndrome indicates a malformed Syndrome: an out-of-range
	// vertex or edge index in ApplySyndrome.
	ErrInvalidSyndrome = errors.New("graph: invalid syndrome")
)

// EdgeSpec describes one hyperedge as supplied to NewStore: an ordered,
// non-empty set of vertex indices and a non-negative base weight. |e| >= 1
// (hyperedges of arity 1 are legal — see spec §3 Edge).
type EdgeSpec struct {
	Vertices []int
	Weight   weight.W
}

// WeightOverride replaces an edge's weight for the duration of one solve
// (Syndrome.EdgeWeightOverrides, §6).
type WeightOverride struct {
	Edge   int
	Weight weight.W
}

// edgeTopology is the immutable, construction-time shape of one hyperedge.
type edgeTopology struct {
	vertices   []idx.Vertex
	baseWeight weight.W
}

// Store is the decoding-graph store: read-only topology plus the mutable
// per-solve state layered on top of it (§4.1).
//
// muTopology guards fields fixed at NewStore and never mutated afterward
// (vertexNum, edges, adjacency); muSolve guards the per-solve mutable state
// (defect, currentWeight, grown). The two are never held at once, mirroring
// lvlath core.Graph's muVert/muEdgeAdj split — here the split is between
// "what solve are we on" and "what does the hypergraph look like", which
// matters once an external partitioner runs independent solves over shared,
// read-only topology (§5 "Shared-resource policy").
type Store struct {
	muTopology sync.RWMutex
	muSolve    sync.RWMutex

	vertexNum int
	edges     []edgeTopology
	adjacency [][]idx.Edge // vertex -> incident edge indices, ascending

	defect        []bool
	currentWeight []weight.W
	grown         []weight.W
}
