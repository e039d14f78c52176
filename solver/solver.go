package solver

import (
	"context"
	"sync"

	"github.com/katalvlaran/mwpf/dual"
	"github.com/katalvlaran/mwpf/graph"
	"github.com/katalvlaran/mwpf/idx"
	"github.com/katalvlaran/mwpf/primal"
	"github.com/katalvlaran/mwpf/snapshot"
	"github.com/katalvlaran/mwpf/weight"
)

// Solver is the §6 external-interface façade: one decoding-graph Store
// (built once by NewSolver from an Initializer) plus a primal.Config,
// exposing solve/subgraph/subgraph_range/clear/snapshot. A single mutex
// serializes solves, matching §4.2's "Concurrency: single-threaded per
// solve" — two solves over the same Solver never interleave, though
// distinct Solvers over a shared, read-only Initializer topology may run
// concurrently (§5 "Shared-resource policy") since graph.Store's own
// muTopology/muSolve split already makes the read-only half safe to share.
type Solver struct {
	mu sync.Mutex

	store *graph.Store
	zero  weight.W
	cfg   primal.Config

	lastDM       *dual.Module
	lastSubgraph []idx.Edge
	lastRange    WeightRange
}

// NewSolver builds a Solver over init's topology. zero is the additive
// identity of the weight backend this Solver uses for every solve
// (weight.RationalZero() or weight.Float64(0)); opts configure the primal
// drive loop, defaulting to primal.DefaultConfig().
func NewSolver(init Initializer, zero weight.W, opts ...Option) (*Solver, error) {
	store, err := graph.NewStore(init.VertexNum, init.Edges)
	if err != nil {
		return nil, err
	}

	return &Solver{
		store: store,
		zero:  zero,
		cfg:   primal.New(opts...),
	}, nil
}

// Solve runs one full primal-dual solve for syn (§4.3), resetting all
// per-solve state first so no partial state leaks across solves (§5
// "Cancellation semantics"). On ErrInvalidSyndrome none of the syndrome is
// applied, but the store's per-solve state has already been Reset; the
// Solver's last-known result is untouched.
func (s *Solver) Solve(ctx context.Context, syn Syndrome) (Result, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Reset()
	if err := s.store.ApplySyndrome(syn.DefectVertices, syn.EdgeWeightOverrides, syn.HeraldedEdges); err != nil {
		return Result{}, err
	}

	dm := dual.NewModule(s.store, s.zero)
	pm := primal.NewModule(s.store, dm, s.zero, s.cfg)

	defects := make([]idx.Vertex, len(syn.DefectVertices))
	for i, v := range syn.DefectVertices {
		defects[i] = idx.Vertex(v)
	}

	subgraph, lower, upper, err := pm.Solve(ctx, defects)
	if err != nil {
		return Result{}, err
	}

	s.lastDM = dm
	s.lastSubgraph = subgraph
	s.lastRange = WeightRange{Lower: lower, Upper: upper}

	return Result{Subgraph: subgraph, Range: s.lastRange}, nil
}

// Subgraph returns the last solve's chosen edges, ascending (§6
// "subgraph() -> list<edge_index>, sorted ascending").
func (s *Solver) Subgraph() []idx.Edge {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]idx.Edge(nil), s.lastSubgraph...)
}

// SubgraphRange returns the last solve's subgraph and weight bound (§6
// "subgraph_range() -> (subgraph, WeightRange{lower, upper})").
func (s *Solver) SubgraphRange() ([]idx.Edge, WeightRange) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]idx.Edge(nil), s.lastSubgraph...), s.lastRange
}

// Clear resets the Solver to its post-NewSolver state: no defects, no
// weight overrides, no recorded result (§6 "clear()").
func (s *Solver) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.store.Reset()
	s.lastDM = nil
	s.lastSubgraph = nil
	s.lastRange = WeightRange{}
}

// Snapshot renders the §6 persistent-format JSON document reflecting the
// last-completed solve. Under this Solver's single-threaded-per-solve
// cooperative model there is no mid-solve snapshot to tap: a caller calling
// Snapshot while a Solve is in flight simply blocks on mu until it finishes,
// then sees that completed solve's final state, not an intermediate one.
func (s *Solver) Snapshot() snapshot.Document {
	s.mu.Lock()
	defer s.mu.Unlock()

	dm := s.lastDM
	if dm == nil {
		dm = dual.NewModule(s.store, s.zero)
	}

	snap := snapshot.BuildSnapshot(s.store, dm, s.lastSubgraph, s.lastRange.Lower, s.lastRange.Upper)

	return snapshot.BuildDocument("mwpf-snapshot", 1, nil, snapshot.NamedSnapshot{Name: "last", Snapshot: snap})
}
