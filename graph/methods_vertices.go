// File: methods_vertices.go
// Role: Vertex read accessors and ApplySyndrome (§4.1).
package graph

import (
	"github.com/katalvlaran/mwpf/idx"
)

// VertexNum returns the number of vertices in the topology.
func (s *Store) VertexNum() int {
	s.muTopology.RLock()
	defer s.muTopology.RUnlock()

	return s.vertexNum
}

// IncidentEdges returns the (copy of the) ascending-sorted incident edge
// list of vertex v.
func (s *Store) IncidentEdges(v idx.Vertex) []idx.Edge {
	s.muTopology.RLock()
	defer s.muTopology.RUnlock()

	es := s.adjacency[v]
	out := make([]idx.Edge, len(es))
	copy(out, es)

	return out
}

// VertexDegree returns len(IncidentEdges(v)).
func (s *Store) VertexDegree(v idx.Vertex) int {
	s.muTopology.RLock()
	defer s.muTopology.RUnlock()

	return len(s.adjacency[v])
}

// IsDefect reports whether v currently carries a defect flag.
func (s *Store) IsDefect(v idx.Vertex) bool {
	s.muSolve.RLock()
	defer s.muSolve.RUnlock()

	return s.defect[v]
}

// ApplySyndrome sets defect flags on defects, overrides the weight of each
// listed edge (validated non-negative), and forces the weight of every
// heralded edge to zero (§4.1, §6 Syndrome). All indices are validated
// in-range before any mutation takes effect; on ErrInvalidSyndrome the store
// is left unmodified.
//
// apply_syndrome never increases g_e (§4.1 invariant): it only touches
// defect flags and currentWeight, never grown.
func (s *Store) ApplySyndrome(defects []int, overrides []WeightOverride, heralded []int) error {
	s.muTopology.RLock()
	vertexNum := s.vertexNum
	edgeNum := len(s.edges)
	s.muTopology.RUnlock()

	for _, v := range defects {
		if v < 0 || v >= vertexNum {
			return ErrInvalidSyndrome
		}
	}
	for _, o := range overrides {
		if o.Edge < 0 || o.Edge >= edgeNum || o.Weight == nil || o.Weight.Sign() < 0 {
			return ErrInvalidSyndrome
		}
	}
	for _, e := range heralded {
		if e < 0 || e >= edgeNum {
			return ErrInvalidSyndrome
		}
	}

	s.muSolve.Lock()
	defer s.muSolve.Unlock()

	for _, v := range defects {
		s.defect[v] = true
	}
	for _, o := range overrides {
		s.currentWeight[o.Edge] = o.Weight
	}
	for _, e := range heralded {
		s.currentWeight[e] = s.currentWeight[e].Zero()
	}

	return nil
}
