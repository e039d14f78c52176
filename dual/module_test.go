package dual_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mwpf/dual"
	"github.com/katalvlaran/mwpf/graph"
	"github.com/katalvlaran/mwpf/idx"
	"github.com/katalvlaran/mwpf/weight"
)

func w(n int64) weight.W { return weight.Float64(n) }

// chainStore mirrors graph package's own fixture (spec §8 Scenario A
// topology): 4 vertices, edges e0=(0,1)w100, e1=(1,2)w100, e2=(2,3)w100,
// e3=(0)w100, e4=(0,1,2)w60.
func chainStore(t *testing.T) *graph.Store {
	t.Helper()
	s, err := graph.NewStore(4, []graph.EdgeSpec{
		{Vertices: []int{0, 1}, Weight: w(100)},
		{Vertices: []int{1, 2}, Weight: w(100)},
		{Vertices: []int{2, 3}, Weight: w(100)},
		{Vertices: []int{0}, Weight: w(100)},
		{Vertices: []int{0, 1, 2}, Weight: w(60)},
	})
	assert.NoError(t, err)

	return s
}

func TestModule_SeedDefectCreatesSingletonWithPositiveRate(t *testing.T) {
	m := dual.NewModule(chainStore(t), w(0))
	id, err := m.SeedDefect(0)
	assert.NoError(t, err)

	n := m.Node(id)
	assert.Equal(t, []idx.Vertex{0}, n.Vertices)
	assert.Equal(t, []idx.Edge{0, 3, 4}, n.Hair)
	assert.Equal(t, 1, n.Rate)
	assert.True(t, n.SeededByDefect)
	assert.Equal(t, w(0), n.Value)
}

func TestModule_SeedDefectRejectsOutOfRangeVertex(t *testing.T) {
	m := dual.NewModule(chainStore(t), w(0))
	_, err := m.SeedDefect(99)
	assert.ErrorIs(t, err, graph.ErrInvalidTopology)
}

func TestModule_SetRateRejectsOutOfRange(t *testing.T) {
	m := dual.NewModule(chainStore(t), w(0))
	id, _ := m.SeedDefect(0)
	assert.ErrorIs(t, m.SetRate(id, 2), dual.ErrInvalidRate)
}

func TestModule_ComputeNextObstacle_EdgeBecomesTight(t *testing.T) {
	m := dual.NewModule(chainStore(t), w(0))
	_, err := m.SeedDefect(0)
	assert.NoError(t, err)
	_, err = m.SeedDefect(1)
	assert.NoError(t, err)

	// Hair(0)={e0,e3,e4}, Hair(1)={e0,e1,e4}: e0 and e4 both carry net rate
	// 2, e1 and e3 carry net rate 1. Remaining weights are e0:100 e1:100
	// e3:100 e4:60, so the tightest ratio is e4 at 60/2=30.
	obs := m.ComputeNextObstacle()
	assert.Equal(t, dual.EdgeBecomesTight, obs.Kind)
	assert.Equal(t, idx.Edge(4), obs.Edge)
	assert.Equal(t, w(30), obs.Delta)
}

func TestModule_Advance_GrowsValuesAndGrown(t *testing.T) {
	store := chainStore(t)
	m := dual.NewModule(store, w(0))
	id0, _ := m.SeedDefect(0)
	id1, _ := m.SeedDefect(1)

	assert.NoError(t, m.Advance(w(30)))

	assert.Equal(t, w(30), m.Node(id0).Value)
	assert.Equal(t, w(30), m.Node(id1).Value)
	assert.Equal(t, w(60), store.Grown(0)) // e0: rate 2 * 30
	assert.Equal(t, w(30), store.Grown(1)) // e1: rate 1 * 30
	assert.Equal(t, w(30), store.Grown(3)) // e3: rate 1 * 30
	assert.Equal(t, w(60), store.Grown(4)) // e4: rate 2 * 30, now tight

	assert.NoError(t, m.SetGrownTight(4))
	assert.False(t, store.Untight(4))
}

func TestModule_Advance_RejectsOvershootPastEdgeWeight(t *testing.T) {
	store := chainStore(t)
	m := dual.NewModule(store, w(0))
	_, _ = m.SeedDefect(0)
	_, _ = m.SeedDefect(1)

	err := m.Advance(w(100))
	assert.Error(t, err)
}

func TestModule_DualBecomesZero(t *testing.T) {
	s, err := graph.NewStore(1, nil)
	assert.NoError(t, err)

	m := dual.NewModule(s, w(0))
	id, err := m.SeedDefect(0)
	assert.NoError(t, err)

	assert.NoError(t, m.Advance(w(10)))
	assert.NoError(t, m.SetRate(id, -1))

	obs := m.ComputeNextObstacle()
	assert.Equal(t, dual.DualBecomesZero, obs.Kind)
	assert.Equal(t, id, obs.Node)
	assert.Equal(t, w(10), obs.Delta)

	assert.NoError(t, m.Advance(w(10)))
	m.ZeroOut(id)
	assert.Equal(t, w(0), m.Node(id).Value)
	assert.Equal(t, 0, m.Node(id).Rate)

	obs = m.ComputeNextObstacle()
	assert.Equal(t, dual.NoObstacle, obs.Kind)
}

func TestModule_SnapshotTotalsYValues(t *testing.T) {
	m := dual.NewModule(chainStore(t), w(0))
	_, _ = m.SeedDefect(0)
	_, _ = m.SeedDefect(1)
	assert.NoError(t, m.Advance(w(30)))

	snap := m.Snapshot()
	assert.Len(t, snap.Nodes, 2)
	assert.Equal(t, w(60), snap.Total)
}

func TestModule_UpdateNodePreservesRateAndMovesHairContribution(t *testing.T) {
	m := dual.NewModule(chainStore(t), w(0))
	id, _ := m.SeedDefect(0) // hair = {0,3,4}, rate +1

	m.UpdateNode(id, []idx.Vertex{0, 1}, nil, []idx.Edge{1})

	n := m.Node(id)
	assert.Equal(t, []idx.Edge{1}, n.Hair)
	assert.Equal(t, 1, n.Rate)

	obs := m.ComputeNextObstacle()
	assert.Equal(t, dual.EdgeBecomesTight, obs.Kind)
	assert.Equal(t, idx.Edge(1), obs.Edge)
	assert.Equal(t, w(100), obs.Delta)
}

func TestModule_FreezeExcludesEdgeFromFurtherObstaclesAndRateChanges(t *testing.T) {
	store := chainStore(t)
	m := dual.NewModule(store, w(0))
	id0, _ := m.SeedDefect(0)
	_, _ = m.SeedDefect(1)

	assert.NoError(t, m.Advance(w(30)))
	assert.NoError(t, m.SetGrownTight(4))
	m.Freeze(4)

	// Both seed nodes still list e4 in their stale Hair slice, but Freeze
	// must have already zeroed out its contribution to ρ_e4.
	obs := m.ComputeNextObstacle()
	assert.NotEqual(t, idx.Edge(4), obs.Edge)

	// Changing id0's rate must not resurrect e4's rate contribution even
	// though e4 is still physically present in id0.Hair.
	assert.NoError(t, m.SetRate(id0, 0))
	assert.NoError(t, m.SetRate(id0, 1))
	obs = m.ComputeNextObstacle()
	assert.NotEqual(t, idx.Edge(4), obs.Edge)

	assert.Equal(t, idx.Edge(0), obs.Edge)
	assert.Equal(t, w(20), obs.Delta)
	assert.NoError(t, m.Advance(obs.Delta))
	assert.Equal(t, w(100), store.Grown(0))
	assert.False(t, store.Untight(4))
}

func TestModule_ActiveEdges_FindsSimultaneousTies(t *testing.T) {
	s, err := graph.NewStore(4, []graph.EdgeSpec{
		{Vertices: []int{0, 1}, Weight: w(50)},
		{Vertices: []int{2, 3}, Weight: w(50)},
	})
	assert.NoError(t, err)

	m := dual.NewModule(s, w(0))
	_, err = m.SeedDefect(0)
	assert.NoError(t, err)
	_, err = m.SeedDefect(2)
	assert.NoError(t, err)

	obs := m.ComputeNextObstacle()
	assert.Equal(t, dual.EdgeBecomesTight, obs.Kind)
	assert.Equal(t, idx.Edge(0), obs.Edge) // tie broken by lowest index
	assert.Equal(t, w(50), obs.Delta)

	assert.NoError(t, m.Advance(obs.Delta))

	var tight []idx.Edge
	for _, e := range m.ActiveEdges() {
		if !s.Untight(e) {
			tight = append(tight, e)
		}
	}
	assert.Equal(t, []idx.Edge{0, 1}, tight)
}

func TestModule_CreateNodeStartsAtZeroRate(t *testing.T) {
	m := dual.NewModule(chainStore(t), w(0))
	id := m.CreateNode([]idx.Vertex{0, 1}, []idx.Edge{0}, []idx.Edge{3, 4})

	n := m.Node(id)
	assert.Equal(t, 0, n.Rate)
	assert.Equal(t, w(0), n.Value)
	assert.Equal(t, []idx.Edge{3, 4}, n.Hair)

	obs := m.ComputeNextObstacle()
	assert.Equal(t, dual.NoObstacle, obs.Kind)
}
