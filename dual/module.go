package dual

import (
	"sort"

	"github.com/katalvlaran/mwpf/graph"
	"github.com/katalvlaran/mwpf/idx"
	"github.com/katalvlaran/mwpf/mwperr"
	"github.com/katalvlaran/mwpf/weight"
)

// Module owns every dual node for one solve and the incremental bookkeeping
// needed to answer ComputeNextObstacle in time proportional to the number
// of currently-active rates, not the number of nodes or edges.
type Module struct {
	store *graph.Store
	zero  weight.W

	nodes []Node

	// edgeRate[e] is the net hair rate ρ_e; entries are present only while
	// nonzero (deleted on returning to zero).
	edgeRate map[idx.Edge]int

	// frozen holds edges that have already become tight and been promoted
	// out of every node's hair into internal bookkeeping (§4.2 "promotion
	// is the relaxer's job"): once an edge is frozen it is permanently
	// excluded from edgeRate, even if a stale node still lists it in
	// Hair, so Advance never tries to grow g_e past w_e a second time.
	frozen map[idx.Edge]bool

	// negativeNodes is the set of node indices with Rate < 0.
	negativeNodes map[idx.Node]struct{}
}

// NewModule creates an empty dual module over store. zero is the additive
// identity of the weight backend in use (weight.RationalZero() or
// weight.Float64(0)), used to initialize fresh y_S values.
func NewModule(store *graph.Store, zero weight.W) *Module {
	return &Module{
		store:         store,
		zero:          zero,
		edgeRate:      make(map[idx.Edge]int),
		frozen:        make(map[idx.Edge]bool),
		negativeNodes: make(map[idx.Node]struct{}),
	}
}

// SeedDefect creates a singleton dual node around v: V_S = {v}, E_S = ∅,
// δ(S) = incident_edges(v), y_S = 0, r_S = +1.
func (m *Module) SeedDefect(v idx.Vertex) (idx.Node, error) {
	if int(v) < 0 || int(v) >= m.store.VertexNum() {
		return idx.Invalid, graph.ErrInvalidTopology
	}

	hair := append([]idx.Edge(nil), m.store.IncidentEdges(v)...)
	n := Node{
		Vertices:       []idx.Vertex{v},
		Hair:           hair,
		Value:          m.zero,
		Rate:           1,
		SeededByDefect: true,
	}
	id := idx.Node(len(m.nodes))
	m.nodes = append(m.nodes, n)
	m.applyRateDelta(id, 0, n.Rate)

	return id, nil
}

// CreateNode creates a new dual node with y_S = 0, r_S = 0, used by the
// primal module when applying a relaxer.
func (m *Module) CreateNode(vertices []idx.Vertex, internal, hair []idx.Edge) idx.Node {
	n := Node{
		Vertices: append([]idx.Vertex(nil), vertices...),
		Internal: append([]idx.Edge(nil), internal...),
		Hair:     append([]idx.Edge(nil), hair...),
		Value:    m.zero,
		Rate:     0,
	}
	id := idx.Node(len(m.nodes))
	m.nodes = append(m.nodes, n)

	return id
}

// Node returns a copy of the node at id for read-only inspection.
func (m *Module) Node(id idx.Node) Node { return m.nodes[id] }

// NodeNum returns the number of dual nodes created so far.
func (m *Module) NodeNum() int { return len(m.nodes) }

// SetRate sets r_S for node id and updates the edgeRate/negativeNodes
// active sets to match. rate must be one of {-1, 0, +1}.
func (m *Module) SetRate(id idx.Node, rate int) error {
	if rate < -1 || rate > 1 {
		return ErrInvalidRate
	}

	old := m.nodes[id].Rate
	m.nodes[id].Rate = rate
	m.applyRateDelta(id, old, rate)

	if rate < 0 {
		m.negativeNodes[id] = struct{}{}
	} else {
		delete(m.negativeNodes, id)
	}

	return nil
}

// applyRateDelta folds (newRate - oldRate) into edgeRate for every edge in
// node id's hair, pruning entries that return to zero.
func (m *Module) applyRateDelta(id idx.Node, oldRate, newRate int) {
	m.applyRateDeltaForHair(m.nodes[id].Hair, oldRate, newRate)
}

// applyRateDeltaForHair is the hair-keyed core of applyRateDelta, reused by
// UpdateNode to move a rate's contribution from an old hair set to a new
// one without touching the node's Rate field itself.
func (m *Module) applyRateDeltaForHair(hair []idx.Edge, oldRate, newRate int) {
	delta := newRate - oldRate
	if delta == 0 {
		return
	}
	for _, e := range hair {
		if m.frozen[e] {
			continue
		}
		next := m.edgeRate[e] + delta
		if next == 0 {
			delete(m.edgeRate, e)
		} else {
			m.edgeRate[e] = next
		}
	}
}

// UpdateNode replaces node id's vertex/internal/hair sets in place,
// preserving its current Value and Rate. Used by the relaxer policies that
// grow an existing idle node into a larger vertex set instead of always
// minting a new one (§4.4's JointSingleHairVariant).
func (m *Module) UpdateNode(id idx.Node, vertices []idx.Vertex, internal, hair []idx.Edge) {
	rate := m.nodes[id].Rate
	m.applyRateDeltaForHair(m.nodes[id].Hair, rate, 0)
	m.nodes[id].Vertices = append([]idx.Vertex(nil), vertices...)
	m.nodes[id].Internal = append([]idx.Edge(nil), internal...)
	m.nodes[id].Hair = append([]idx.Edge(nil), hair...)
	m.applyRateDeltaForHair(m.nodes[id].Hair, 0, rate)
}

// ComputeNextObstacle returns the earliest-time event: the minimum
// (w_e − g_e)/ρ_e over edges with ρ_e > 0, or the minimum y_S/(−r_S) over
// nodes with r_S < 0, whichever is smaller. Ties are broken in favor of
// EdgeBecomesTight, then by lowest index within a kind. An edge that is
// already tight without having been frozen (a zero-weight edge, e.g. a
// heralded one) is reported with a zero delta.
func (m *Module) ComputeNextObstacle() Obstacle {
	best := Obstacle{Kind: NoObstacle}
	haveBest := false

	var bestEdge idx.Edge
	haveEdge := false
	for e, rate := range m.edgeRate {
		if rate <= 0 {
			continue
		}
		remaining := m.store.Weight(e).Sub(m.store.Grown(e))
		delta := remaining.Quo(remaining.FromInt64(int64(rate)))
		if !haveEdge || delta.Cmp(best.Delta) < 0 || (delta.Cmp(best.Delta) == 0 && e < bestEdge) {
			best = Obstacle{Kind: EdgeBecomesTight, Edge: e, Delta: delta}
			bestEdge = e
			haveEdge = true
			haveBest = true
		}
	}

	var bestNode idx.Node
	haveNode := false
	for id := range m.negativeNodes {
		rate := m.nodes[id].Rate
		if rate >= 0 {
			continue
		}
		delta := m.nodes[id].Value.Quo(m.nodes[id].Value.FromInt64(int64(-rate)))
		if !haveBest {
			best = Obstacle{Kind: DualBecomesZero, Node: id, Delta: delta}
			haveBest = true
			haveNode = true
			bestNode = id

			continue
		}
		if best.Kind == EdgeBecomesTight {
			// EdgeBecomesTight wins strict ties; it only yields to a
			// strictly smaller DualBecomesZero delta.
			if delta.Cmp(best.Delta) < 0 {
				best = Obstacle{Kind: DualBecomesZero, Node: id, Delta: delta}
				haveNode = true
				bestNode = id
			}

			continue
		}
		if delta.Cmp(best.Delta) < 0 || (delta.Cmp(best.Delta) == 0 && (!haveNode || id < bestNode)) {
			best = Obstacle{Kind: DualBecomesZero, Node: id, Delta: delta}
			haveNode = true
			bestNode = id
		}
	}

	return best
}

// Advance moves time forward by delta: every node with nonzero rate gets
// y_S += r_S·delta, and every edge with nonzero net rate gets
// g_e += ρ_e·delta. Returns an *mwperr.InvariantError if any y_S would go
// negative or any g_e would leave [0, w_e].
func (m *Module) Advance(delta weight.W) error {
	for id := range m.nodes {
		rate := m.nodes[id].Rate
		if rate == 0 {
			continue
		}
		step := delta
		if rate < 0 {
			step = delta.Neg()
		}
		next := m.nodes[id].Value.Add(step)
		if next.Sign() < 0 {
			return mwperr.New("dual.Advance", nil).WithObstacle("y_S would go negative")
		}
		m.nodes[id].Value = next
	}

	for e, rate := range m.edgeRate {
		step := delta.Mul(delta.FromInt64(int64(rate)))
		next := m.store.Grown(e).Add(step)
		if err := m.store.SetGrown(e, next); err != nil {
			return err
		}
	}

	return nil
}

// ZeroOut forces y_S = 0 and r_S = 0 for node id, used when
// DualBecomesZero fires. The node itself remains for bookkeeping.
func (m *Module) ZeroOut(id idx.Node) {
	m.nodes[id].Value = m.zero
	if m.nodes[id].Rate != 0 {
		m.applyRateDelta(id, m.nodes[id].Rate, 0)
		m.nodes[id].Rate = 0
	}
	delete(m.negativeNodes, id)
}

// SetGrownTight sets g_e = w_e directly, used when EdgeBecomesTight fires.
func (m *Module) SetGrownTight(e idx.Edge) error {
	return m.store.SetGrown(e, m.store.Weight(e))
}

// ActiveEdges returns a sorted copy of edges currently carrying nonzero net
// hair rate. Used by the primal module after Advance to find every edge
// that reached tightness in the same step (simultaneous ties), not just the
// single obstacle.Edge that happened to determine the step size.
func (m *Module) ActiveEdges() []idx.Edge {
	out := make([]idx.Edge, 0, len(m.edgeRate))
	for e := range m.edgeRate {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}

// Freeze permanently excludes e from further growth consideration: once an
// edge becomes tight it is promoted out of every node's hair into internal
// bookkeeping (§4.2), so no later rate change may reintroduce its
// contribution to ρ_e, and ComputeNextObstacle/Advance never revisit it.
func (m *Module) Freeze(e idx.Edge) {
	m.frozen[e] = true
	delete(m.edgeRate, e)
}

// Snapshot enumerates all dual nodes and Σ y_S.
func (m *Module) Snapshot() *Snapshot {
	total := m.zero
	nodes := make([]Node, len(m.nodes))
	for i, n := range m.nodes {
		nodes[i] = n
		total = total.Add(n.Value)
	}

	return &Snapshot{Nodes: nodes, Total: total}
}
