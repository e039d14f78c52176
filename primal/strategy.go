package primal

import (
	"sort"

	"github.com/katalvlaran/mwpf/dual"
	"github.com/katalvlaran/mwpf/graph"
	"github.com/katalvlaran/mwpf/idx"
	"github.com/katalvlaran/mwpf/matrix"
)

// GrowthStrategy decides which newly-seeded clusters start growing
// immediately (§4.3 "growing_strategy").
type GrowthStrategy interface {
	// SeedRate returns the initial rate a cluster seeded at the given
	// 0-based sequential defect index should start at.
	SeedRate(defectIndex int) int

	// Sequential reports whether resolving a cluster should activate the
	// next still-idle cluster (true for SingleCluster, false for
	// MultipleClusters, which activates everyone up front).
	Sequential() bool
}

// MultipleClustersStrategy grows every seeded cluster concurrently at rate
// +1 from the start.
type MultipleClustersStrategy struct{}

func (MultipleClustersStrategy) SeedRate(int) int { return 1 }
func (MultipleClustersStrategy) Sequential() bool { return false }

// SingleClusterStrategy processes defects one at a time: only the first
// seeded cluster grows; the rest wait at rate 0 until an earlier cluster
// resolves, yielding the best average-time at low error density (§4.3).
type SingleClusterStrategy struct{}

func (SingleClusterStrategy) SeedRate(defectIndex int) int {
	if defectIndex == 0 {
		return 1
	}

	return 0
}
func (SingleClusterStrategy) Sequential() bool { return true }

// RelaxerStrategy turns a stuck cluster's matrix.Relaxer (candidate V_{S'})
// into the data needed for a new or extended dual node (§4.4 step 2).
type RelaxerStrategy interface {
	// Propose returns the vertex/internal/hair triple for the new dual
	// node, or (if replace is valid) the triple that should replace an
	// existing idle node's contents in place via dual.Module.UpdateNode.
	// ok is false only if the tableau turns out to already be
	// satisfiable (defensive; the caller is expected to have checked).
	Propose(store *graph.Store, dm *dual.Module, tableau *matrix.Tableau, cluster *Cluster) (vertices []idx.Vertex, internal, hair []idx.Edge, replace idx.Node, ok bool)
}

// hairOf returns the incident edges of vertices that are not already
// tableau columns (i.e. not already tight-and-accounted-for), deduplicated
// and sorted.
func hairOf(store *graph.Store, tableau *matrix.Tableau, vertices []idx.Vertex) []idx.Edge {
	known := make(map[idx.Edge]bool)
	for _, e := range tableau.ColEdges() {
		known[e] = true
	}

	seen := make(map[idx.Edge]bool)
	var hair []idx.Edge
	for _, v := range vertices {
		for _, e := range store.IncidentEdges(v) {
			if known[e] || seen[e] {
				continue
			}
			seen[e] = true
			hair = append(hair, e)
		}
	}
	sort.Slice(hair, func(i, j int) bool { return hair[i] < hair[j] })

	return hair
}

// cheapestUntight returns the single minimum-weight edge of hair (by
// current store weight), or hair unchanged if it has at most one element.
func cheapestUntight(store *graph.Store, hair []idx.Edge) []idx.Edge {
	if len(hair) <= 1 {
		return hair
	}

	best := hair[0]
	bestW := store.Weight(best)
	for _, e := range hair[1:] {
		if w := store.Weight(e); w.Cmp(bestW) < 0 {
			best, bestW = e, w
		}
	}

	return []idx.Edge{best}
}

// UnionFindVariant always mints a brand-new dual node covering exactly the
// relaxer's candidate vertex set and all of its loose hair, named after the
// union-find-style minimal-vertex-set the matrix solver's contradiction row
// already computes.
type UnionFindVariant struct{}

func (UnionFindVariant) Propose(store *graph.Store, _ *dual.Module, tableau *matrix.Tableau, _ *Cluster) ([]idx.Vertex, []idx.Edge, []idx.Edge, idx.Node, bool) {
	relaxer, ok := tableau.ProposeRelaxer()
	if !ok {
		return nil, nil, nil, idx.Invalid, false
	}

	return relaxer.Vertices, nil, hairOf(store, tableau, relaxer.Vertices), idx.Invalid, true
}

// SingleHairVariant mints a new node but restricts it to growing a single
// cheapest untight hair edge at a time, trading node churn for a narrower,
// more conservative growth step per relaxer application.
type SingleHairVariant struct{}

func (SingleHairVariant) Propose(store *graph.Store, _ *dual.Module, tableau *matrix.Tableau, _ *Cluster) ([]idx.Vertex, []idx.Edge, []idx.Edge, idx.Node, bool) {
	relaxer, ok := tableau.ProposeRelaxer()
	if !ok {
		return nil, nil, nil, idx.Invalid, false
	}

	hair := cheapestUntight(store, hairOf(store, tableau, relaxer.Vertices))

	return relaxer.Vertices, nil, hair, idx.Invalid, true
}

// JointSingleHairVariant behaves like SingleHairVariant but, when an
// existing idle (rate-0) node of the same cluster already covers a vertex
// in the new relaxer's candidate set, grows that node in place instead of
// minting another one — avoiding the dual-node-count blowup that repeated
// contradictions in the same region would otherwise cause.
type JointSingleHairVariant struct{}

func (JointSingleHairVariant) Propose(store *graph.Store, dm *dual.Module, tableau *matrix.Tableau, cluster *Cluster) ([]idx.Vertex, []idx.Edge, []idx.Edge, idx.Node, bool) {
	relaxer, ok := tableau.ProposeRelaxer()
	if !ok {
		return nil, nil, nil, idx.Invalid, false
	}

	wanted := make(map[idx.Vertex]bool, len(relaxer.Vertices))
	for _, v := range relaxer.Vertices {
		wanted[v] = true
	}

	for _, id := range cluster.Nodes {
		n := dm.Node(id)
		if n.Rate != 0 {
			continue
		}
		overlaps := false
		for _, v := range n.Vertices {
			if wanted[v] {
				overlaps = true

				break
			}
		}
		if !overlaps {
			continue
		}

		merged := mergeVertices(n.Vertices, relaxer.Vertices)
		hair := cheapestUntight(store, hairOf(store, tableau, merged))

		return merged, n.Internal, hair, id, true
	}

	hair := cheapestUntight(store, hairOf(store, tableau, relaxer.Vertices))

	return relaxer.Vertices, nil, hair, idx.Invalid, true
}

func mergeVertices(a, b []idx.Vertex) []idx.Vertex {
	seen := make(map[idx.Vertex]bool, len(a)+len(b))
	var out []idx.Vertex
	for _, v := range a {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	for _, v := range b {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
