package primal

import (
	"context"
	"sort"
	"time"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/mwpf/dual"
	"github.com/katalvlaran/mwpf/graph"
	"github.com/katalvlaran/mwpf/idx"
	"github.com/katalvlaran/mwpf/matrix"
	"github.com/katalvlaran/mwpf/weight"
)

// Module drives the primal-dual loop (§4.3): owns clusters, dispatches
// dual obstacles, merges clusters on tight edges, requests relaxers from
// stuck clusters, and assembles the final subgraph and bound.
type Module struct {
	store *graph.Store
	dm    *dual.Module
	zero  weight.W
	cfg   Config

	clusters  []*Cluster
	elementOf []*disjoint.Element
}

// NewModule builds an empty primal module over store and dm. zero seeds
// every tableau created during the solve.
func NewModule(store *graph.Store, dm *dual.Module, zero weight.W, cfg Config) *Module {
	return &Module{
		store:     store,
		dm:        dm,
		zero:      zero,
		cfg:       cfg,
		elementOf: make([]*disjoint.Element, store.VertexNum()),
	}
}

// clusterAt returns the current representative cluster containing v,
// lazily minting a passive singleton placeholder the first time v is
// touched (§4.3: "isolated clusters of a single non-defect vertex are not
// created" at initialization — but are created on demand as growth
// absorbs previously-unclaimed vertices).
func (m *Module) clusterAt(v idx.Vertex) *Cluster {
	if el := m.elementOf[v]; el != nil {
		return el.Find().Val.(*Cluster)
	}

	c := &Cluster{ID: idx.Cluster(len(m.clusters)), Status: Growing, Tableau: matrix.NewTableau(m.zero)}
	c.Tableau.AddVertexRow(v, m.store.IsDefect(v))
	el := disjoint.NewElement()
	el.Val = c
	c.Element = el
	m.elementOf[v] = el
	m.clusters = append(m.clusters, c)

	return c
}

func isRepresentative(c *Cluster) bool { return c.Element.Find().Val.(*Cluster) == c }

// absorb merges from's tableau and dual nodes into into, leaving from as a
// dead husk (its Tableau/Nodes cleared so it is never mistaken for a live
// cluster by the representative-only scans below).
func (m *Module) absorb(into, from *Cluster) {
	if into == from {
		return
	}
	into.Tableau.Merge(from.Tableau)
	into.Nodes = append(into.Nodes, from.Nodes...)
	into.Status = Growing
	// A merged cluster is Waiting only if every constituent was: one actively
	// growing constituent is enough to make the whole merge active.
	into.Waiting = into.Waiting && from.Waiting
	from.Tableau = nil
	from.Nodes = nil
}

// rebuildBoundaryNode replaces c's dual-node set with a single fresh node
// that takes over growth on c's behalf: every node c already owns is
// stopped dead (its Rate zeroed, its accumulated Value left standing as the
// dual bound it has already earned), and the new node's Vertices/Hair are
// recomputed from the cluster's tableau so growth resumes only against
// edges still genuinely loose — including the hair of vertices the cluster
// absorbed without ever owning a dual node of their own (a non-defect
// vertex pulled in only as a tight hyperedge's third endpoint, say).
// Without this, a node absorbed into a larger cluster keeps charging its
// own pre-merge hair after the edge that triggered the merge freezes,
// which can grow y_S past the very capacity that merge already spent
// (breaking dual feasibility and the lower<=upper bound).
func (m *Module) rebuildBoundaryNode(c *Cluster) {
	growing := false
	for _, id := range c.Nodes {
		if m.dm.Node(id).Rate != 0 {
			growing = true
		}
		_ = m.dm.SetRate(id, 0)
	}

	vertices := c.Tableau.Vertices()
	hair := hairOf(m.store, c.Tableau, vertices)
	id := m.dm.CreateNode(vertices, c.Tableau.ColEdges(), hair)
	c.Nodes = append(c.Nodes, id)

	if growing && !c.Waiting {
		_ = m.dm.SetRate(id, 1)
	}
}

// mergeClusters folds every cluster in distinct into one surviving
// representative, absorbing the rest, and returns it.
func (m *Module) mergeClusters(distinct []*Cluster) *Cluster {
	survivor := distinct[0]
	for _, c := range distinct[1:] {
		if find(c) == find(survivor) {
			continue
		}
		merged := union(survivor, c)
		dead := survivor
		if merged == survivor {
			dead = c
		}
		m.absorb(merged, dead)
		survivor = merged
	}

	return survivor
}

// finishCluster marks c Resolved (zeroing every one of its dual nodes'
// rates) and, under a Sequential growing strategy, activates the
// lowest-ID still-Waiting cluster so it starts growing in c's place
// (§4.3 "growing_strategy: SingleCluster ... others wait at rate 0").
func (m *Module) finishCluster(c *Cluster, forced bool) {
	for _, id := range c.Nodes {
		_ = m.dm.SetRate(id, 0)
	}
	c.Status = Resolved
	c.ForceResolved = forced

	if !m.cfg.GrowingStrategy.Sequential() {
		return
	}
	for _, next := range m.clusters {
		if !isRepresentative(next) || !next.Waiting {
			continue
		}
		next.Waiting = false
		for _, id := range next.Nodes {
			_ = m.dm.SetRate(id, 1)
		}

		return
	}
}

// forceResolve marks c Resolved without regard to satisfiability, used on
// timeout/node-limit exhaustion or when a relaxer policy has no loose hair
// left to grow into (§4.3 Config.Timeout/ClusterNodeLimit).
func (m *Module) forceResolve(c *Cluster) { m.finishCluster(c, true) }

// resolveSatisfied marks c Resolved because its tableau became satisfiable
// (§4.3 step 3: "stop its growth ... and mark Resolved").
func (m *Module) resolveSatisfied(c *Cluster) { m.finishCluster(c, false) }

// applyRelaxerOrResolve handles the §4.3 step-2 "NoObstacle, cluster
// Unresolved" branch for one stuck cluster: grow it via a relaxer, or give
// up and force-resolve it.
func (m *Module) applyRelaxerOrResolve(c *Cluster) {
	if m.cfg.Timeout > 0 && !c.Started.IsZero() && time.Since(c.Started) >= m.cfg.Timeout {
		m.forceResolve(c)

		return
	}
	if m.cfg.ClusterNodeLimit > 0 && len(c.Nodes) >= m.cfg.ClusterNodeLimit {
		m.forceResolve(c)

		return
	}

	vertices, internal, hair, replace, ok := m.cfg.RelaxerStrategy.Propose(m.store, m.dm, c.Tableau, c)
	if !ok {
		m.resolveSatisfied(c)

		return
	}
	if len(hair) == 0 {
		m.forceResolve(c)

		return
	}

	if replace.Valid() {
		m.dm.UpdateNode(replace, vertices, internal, hair)
		_ = m.dm.SetRate(replace, 1)

		return
	}

	id := m.dm.CreateNode(vertices, internal, hair)
	_ = m.dm.SetRate(id, 1)
	c.Nodes = append(c.Nodes, id)
}

func (m *Module) allResolved() bool {
	for _, c := range m.clusters {
		if !isRepresentative(c) {
			continue
		}
		if c.Status != Resolved {
			return false
		}
	}

	return true
}

// firstStuck returns the lowest-ID representative cluster that is neither
// Resolved nor Waiting, or nil if there is none. Called only from the
// NoObstacle branch, where no edge has a positive net rate, so any such
// representative qualifies as stuck.
func (m *Module) firstStuck() *Cluster {
	for _, c := range m.clusters {
		if !isRepresentative(c) {
			continue
		}
		if c.Status != Resolved && !c.Waiting {
			return c
		}
	}

	return nil
}

// Solve runs the primal-dual loop to termination for the given defect
// vertices, returning the assembled subgraph and its (lower, upper) bound
// certificate (§4.3 "Bound computation"). ctx is checked once per
// iteration; a cancellation or deadline propagates out as the returned
// error, the one genuinely cancellable point in the solve.
func (m *Module) Solve(ctx context.Context, defects []idx.Vertex) ([]idx.Edge, weight.W, weight.W, error) {
	now := time.Now()
	for i, v := range defects {
		c := &Cluster{ID: idx.Cluster(len(m.clusters)), Status: Growing, Tableau: matrix.NewTableau(m.zero), Started: now}
		el := disjoint.NewElement()
		el.Val = c
		c.Element = el
		m.elementOf[v] = el
		m.clusters = append(m.clusters, c)

		id, err := m.dm.SeedDefect(v)
		if err != nil {
			return nil, m.zero, m.zero, err
		}
		c.Tableau.AddVertexRow(v, true)
		c.Nodes = []idx.Node{id}

		rate := m.cfg.GrowingStrategy.SeedRate(i)
		if err := m.dm.SetRate(id, rate); err != nil {
			return nil, m.zero, m.zero, err
		}
		if rate == 0 {
			c.Waiting = true
		}
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, m.zero, m.zero, err
		}

		obstacle := m.dm.ComputeNextObstacle()
		switch obstacle.Kind {
		case dual.NoObstacle:
			if m.allResolved() {
				return m.assemble()
			}
			stuck := m.firstStuck()
			if stuck == nil {
				return m.assemble()
			}
			m.applyRelaxerOrResolve(stuck)

		case dual.EdgeBecomesTight:
			if err := m.dm.Advance(obstacle.Delta); err != nil {
				return nil, m.zero, m.zero, err
			}

			// Advancing by obstacle.Delta may bring more than one edge to
			// g_e = w_e simultaneously (a tie); process every one of them,
			// not just the edge that happened to determine the step size,
			// in deterministic increasing-index order.
			var tight []idx.Edge
			for _, e := range m.dm.ActiveEdges() {
				if !m.store.Untight(e) {
					tight = append(tight, e)
				}
			}

			for _, e := range tight {
				if err := m.dm.SetGrownTight(e); err != nil {
					return nil, m.zero, m.zero, err
				}
				m.dm.Freeze(e)

				vs := m.store.VerticesOf(e)
				seen := make(map[*Cluster]bool, len(vs))
				var distinct []*Cluster
				for _, v := range vs {
					rep := m.clusterAt(v)
					if !seen[rep] {
						seen[rep] = true
						distinct = append(distinct, rep)
					}
				}

				target := distinct[0]
				merged := len(distinct) > 1
				if merged {
					target = m.mergeClusters(distinct)
				}

				if err := target.Tableau.AddTightEdge(e, vs, m.store.Weight(e)); err != nil {
					return nil, m.zero, m.zero, err
				}

				if target.Tableau.IsSatisfiable() {
					m.resolveSatisfied(target)
				} else if m.cfg.Timeout > 0 && !target.Started.IsZero() && time.Since(target.Started) >= m.cfg.Timeout {
					m.forceResolve(target)
				} else {
					target.Status = Growing
					m.rebuildBoundaryNode(target)
				}
			}

		case dual.DualBecomesZero:
			if err := m.dm.Advance(obstacle.Delta); err != nil {
				return nil, m.zero, m.zero, err
			}
			m.dm.ZeroOut(obstacle.Node)
		}
	}
}

// assemble computes the final subgraph (union of per-cluster subgraphs)
// and the (lower, upper) bound certificate (§4.3 "Bound computation",
// "Final subgraph assembly"). A cluster force-resolved without reaching
// satisfiability contributes nothing to upper/subgraph, which is exactly
// what makes lower < upper the sub-optimality signal in that case.
func (m *Module) assemble() ([]idx.Edge, weight.W, weight.W, error) {
	upper := m.zero
	seen := make(map[idx.Edge]bool)
	var subgraph []idx.Edge

	for _, c := range m.clusters {
		if !isRepresentative(c) || c.Tableau == nil {
			continue
		}
		edges, err := c.Tableau.ExtractSubgraph(m.cfg.MaxKernelEnumeration)
		if err != nil {
			continue
		}
		for _, e := range edges {
			if !seen[e] {
				seen[e] = true
				subgraph = append(subgraph, e)
				upper = upper.Add(m.store.Weight(e))
			}
		}
	}
	sort.Slice(subgraph, func(i, j int) bool { return subgraph[i] < subgraph[j] })

	lower := m.dm.Snapshot().Total

	return subgraph, lower, upper, nil
}
