// File: methods_edges.go
// Role: Edge read accessors and per-solve edge mutation (weight, grown).
package graph

import (
	"github.com/katalvlaran/mwpf/idx"
	"github.com/katalvlaran/mwpf/mwperr"
	"github.com/katalvlaran/mwpf/weight"
)

// EdgeNum returns the number of hyperedges in the topology.
func (s *Store) EdgeNum() int {
	s.muTopology.RLock()
	defer s.muTopology.RUnlock()

	return len(s.edges)
}

// VerticesOf returns the (copy of the) ordered vertex set of edge e.
func (s *Store) VerticesOf(e idx.Edge) []idx.Vertex {
	s.muTopology.RLock()
	defer s.muTopology.RUnlock()

	vs := s.edges[e].vertices
	out := make([]idx.Vertex, len(vs))
	copy(out, vs)

	return out
}

// EdgeArity returns |e|, the number of (not necessarily distinct) vertex
// slots of edge e.
func (s *Store) EdgeArity(e idx.Edge) int {
	s.muTopology.RLock()
	defer s.muTopology.RUnlock()

	return len(s.edges[e].vertices)
}

// BaseWeight returns edge e's construction-time weight w_e, ignoring any
// per-solve override.
func (s *Store) BaseWeight(e idx.Edge) weight.W {
	s.muTopology.RLock()
	defer s.muTopology.RUnlock()

	return s.edges[e].baseWeight
}

// Weight returns edge e's current weight: the per-solve override if one was
// applied (including the forced-0 weight of a heralded edge), else w_e.
func (s *Store) Weight(e idx.Edge) weight.W {
	s.muSolve.RLock()
	defer s.muSolve.RUnlock()

	return s.currentWeight[e]
}

// Grown returns g_e, the edge's current grown amount.
func (s *Store) Grown(e idx.Edge) weight.W {
	s.muSolve.RLock()
	defer s.muSolve.RUnlock()

	return s.grown[e]
}

// Untight reports whether g_e < w_e for edge e, read under a single lock so
// the two quantities are observed consistently.
func (s *Store) Untight(e idx.Edge) bool {
	s.muSolve.RLock()
	defer s.muSolve.RUnlock()

	return s.grown[e].Cmp(s.currentWeight[e]) < 0
}

// SetGrown sets g_e directly (used by dual.Module.Advance and by the primal
// loop when an edge becomes tight, §4.3 step 3: "advance(Δt), set g_e =
// w_e"). Returns an *mwperr.InvariantError if the new value would violate
// 0 <= g_e <= w_e.
func (s *Store) SetGrown(e idx.Edge, g weight.W) error {
	s.muSolve.Lock()
	defer s.muSolve.Unlock()

	if g.Sign() < 0 || g.Cmp(s.currentWeight[e]) > 0 {
		return mwperr.New("graph.SetGrown", ErrInvalidTopology).
			WithObstacle("g_e out of [0, w_e]")
	}
	s.grown[e] = g

	return nil
}
