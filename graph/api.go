// File: api.go
// Role: Construction (NewStore) and the Reset operation (§4.1).
package graph

import (
	"sort"

	"github.com/katalvlaran/mwpf/idx"
	"github.com/katalvlaran/mwpf/weight"
)

// NewStore builds a Store over vertexNum vertices and the given hyperedges.
//
// Validates every edge: Vertices must be non-empty and every index must lie
// in [0, vertexNum); Weight must be non-negative. Fails fast with
// ErrInvalidTopology on the first violation found, scanning edges in order.
//
// Complexity: O(V + E*avg_arity) for adjacency construction.
func NewStore(vertexNum int, edges []EdgeSpec) (*Store, error) {
	if vertexNum < 0 {
		return nil, ErrInvalidTopology
	}

	topo := make([]edgeTopology, 0, len(edges))
	for _, spec := range edges {
		if len(spec.Vertices) == 0 {
			return nil, ErrInvalidTopology
		}
		if spec.Weight == nil || spec.Weight.Sign() < 0 {
			return nil, ErrInvalidTopology
		}

		vs := make([]idx.Vertex, len(spec.Vertices))
		for i, v := range spec.Vertices {
			if v < 0 || v >= vertexNum {
				return nil, ErrInvalidTopology
			}
			vs[i] = idx.Vertex(v)
		}

		topo = append(topo, edgeTopology{vertices: vs, baseWeight: spec.Weight})
	}

	adjacency := make([][]idx.Edge, vertexNum)
	for eid, e := range topo {
		for _, v := range e.vertices {
			adjacency[v] = append(adjacency[v], idx.Edge(eid))
		}
	}
	for v := range adjacency {
		sort.Slice(adjacency[v], func(i, j int) bool { return adjacency[v][i] < adjacency[v][j] })
	}

	s := &Store{
		vertexNum: vertexNum,
		edges:     topo,
		adjacency: adjacency,
	}
	s.resetLocked()

	return s, nil
}

// Reset zeroes every per-solve field: g_e := 0 for all edges, defect flags
// cleared, and weight overrides reverted to each edge's base weight.
// Topology is untouched. §4.1 invariant: after Reset, g_e = 0 for all edges.
func (s *Store) Reset() {
	s.muSolve.Lock()
	defer s.muSolve.Unlock()
	s.resetLocked()
}

// resetLocked performs the Reset body; callers must hold muSolve (or call it
// from NewStore before s is published to any other goroutine).
func (s *Store) resetLocked() {
	n := len(s.edges)
	s.defect = make([]bool, s.vertexNum)
	s.currentWeight = make([]weight.W, n)
	s.grown = make([]weight.W, n)
	for i, e := range s.edges {
		s.currentWeight[i] = e.baseWeight
		s.grown[i] = e.baseWeight.Zero()
	}
}
