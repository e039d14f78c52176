// File: view.go
// Role: read-only summaries (Stats) and deep Clone (§4.1 supplemental ops,
// SPEC_FULL.md §4.1), mirroring lvlath core.Graph.Stats()/Clone().
package graph

import (
	"github.com/katalvlaran/mwpf/idx"
	"github.com/katalvlaran/mwpf/weight"
)

// Stats is an O(V+E) read-only summary of a Store's size and edge-arity
// distribution. Degree1/Degree2/DegreeHyper bucket edges by |e| (useful for
// logging cluster growth without pulling in an observability dependency).
type Stats struct {
	VertexNum   int
	EdgeNum     int
	Degree1     int // |e| == 1
	Degree2     int // |e| == 2 (ordinary graph edges)
	DegreeHyper int // |e| >= 3
	DefectNum   int
}

// Stats computes a Stats snapshot. Complexity: O(V+E).
func (s *Store) Stats() *Stats {
	s.muTopology.RLock()
	st := &Stats{VertexNum: s.vertexNum, EdgeNum: len(s.edges)}
	for _, e := range s.edges {
		switch {
		case len(e.vertices) == 1:
			st.Degree1++
		case len(e.vertices) == 2:
			st.Degree2++
		default:
			st.DegreeHyper++
		}
	}
	s.muTopology.RUnlock()

	s.muSolve.RLock()
	for _, d := range s.defect {
		if d {
			st.DefectNum++
		}
	}
	s.muSolve.RUnlock()

	return st
}

// Clone returns a deep copy of s, topology and current per-solve state
// alike, so a caller can inspect that state without racing the live store.
// The solver's snapshot tap does not call it; it reads the live store under
// the Solver's own mutex.
func (s *Store) Clone() *Store {
	s.muTopology.RLock()
	edges := make([]edgeTopology, len(s.edges))
	for i, e := range s.edges {
		vs := make([]idx.Vertex, len(e.vertices))
		copy(vs, e.vertices)
		edges[i] = edgeTopology{vertices: vs, baseWeight: e.baseWeight}
	}
	adjacency := make([][]idx.Edge, len(s.adjacency))
	for i, es := range s.adjacency {
		cp := make([]idx.Edge, len(es))
		copy(cp, es)
		adjacency[i] = cp
	}
	vertexNum := s.vertexNum
	s.muTopology.RUnlock()

	s.muSolve.RLock()
	defect := make([]bool, len(s.defect))
	copy(defect, s.defect)
	currentWeight := make([]weight.W, len(s.currentWeight))
	copy(currentWeight, s.currentWeight)
	grown := make([]weight.W, len(s.grown))
	copy(grown, s.grown)
	s.muSolve.RUnlock()

	return &Store{
		vertexNum:     vertexNum,
		edges:         edges,
		adjacency:     adjacency,
		defect:        defect,
		currentWeight: currentWeight,
		grown:         grown,
	}
}
