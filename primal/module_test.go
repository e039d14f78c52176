package primal_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mwpf/dual"
	"github.com/katalvlaran/mwpf/graph"
	"github.com/katalvlaran/mwpf/idx"
	"github.com/katalvlaran/mwpf/primal"
	"github.com/katalvlaran/mwpf/weight"
)

func rw(n int64) weight.W { return weight.RationalFromInt64(n, 1) }

// parityOK reports whether the XOR of subgraph's incidences over store
// equals the defect indicator (§8 invariant 3).
func parityOK(store *graph.Store, subgraph []idx.Edge, vertexNum int) bool {
	parity := make([]bool, vertexNum)
	for _, e := range subgraph {
		for _, v := range store.VerticesOf(e) {
			parity[v] = !parity[v]
		}
	}
	for v := 0; v < vertexNum; v++ {
		if parity[v] != store.IsDefect(idx.Vertex(v)) {
			return false
		}
	}

	return true
}

func newChainStore(t *testing.T) *graph.Store {
	t.Helper()
	store, err := graph.NewStore(4, []graph.EdgeSpec{
		{Vertices: []int{0, 1}, Weight: rw(100)},
		{Vertices: []int{1, 2}, Weight: rw(100)},
		{Vertices: []int{2, 3}, Weight: rw(100)},
		{Vertices: []int{0}, Weight: rw(100)},
		{Vertices: []int{0, 1, 2}, Weight: rw(60)},
	})
	require.NoError(t, err)

	return store
}

func solveDefects(t *testing.T, store *graph.Store, defects []int, cfg primal.Config) ([]idx.Edge, weight.W, weight.W) {
	t.Helper()
	require.NoError(t, store.ApplySyndrome(defects, nil, nil))

	dm := dual.NewModule(store, weight.RationalZero())
	pm := primal.NewModule(store, dm, weight.RationalZero(), cfg)

	vs := make([]idx.Vertex, len(defects))
	for i, v := range defects {
		vs[i] = idx.Vertex(v)
	}

	subgraph, lower, upper, err := pm.Solve(context.Background(), vs)
	require.NoError(t, err)

	return subgraph, lower, upper
}

func TestModule_Solve_ChainWithHyperedge_DefaultConfig(t *testing.T) {
	store := newChainStore(t)
	subgraph, lower, upper := solveDefects(t, store, []int{0, 1, 3}, primal.DefaultConfig())

	assert.True(t, parityOK(store, subgraph, 4))
	assert.Equal(t, 0, lower.Cmp(upper), "lower=%s upper=%s", lower, upper)
	assert.Equal(t, "160", upper.String())
}

func TestModule_Solve_MultipleClustersStrategy(t *testing.T) {
	store := newChainStore(t)
	cfg := primal.New(primal.WithGrowingStrategy(primal.MultipleClustersStrategy{}))
	subgraph, lower, upper := solveDefects(t, store, []int{0, 1, 3}, cfg)

	assert.True(t, parityOK(store, subgraph, 4))
	assert.Equal(t, 0, lower.Cmp(upper), "lower=%s upper=%s", lower, upper)
	assert.Equal(t, "160", upper.String())
}

func TestModule_Solve_EmptySyndrome(t *testing.T) {
	store := newChainStore(t)
	subgraph, lower, upper := solveDefects(t, store, nil, primal.DefaultConfig())

	assert.Empty(t, subgraph)
	assert.True(t, lower.IsZero())
	assert.True(t, upper.IsZero())
}

func TestModule_Solve_DegenerateClusterNodeLimit(t *testing.T) {
	store := newChainStore(t)
	cfg := primal.New(primal.WithClusterNodeLimit(1))
	subgraph, lower, upper := solveDefects(t, store, []int{0, 1, 3}, cfg)

	assert.True(t, parityOK(store, subgraph, 4))
	assert.True(t, lower.Cmp(upper) <= 0, "lower=%s upper=%s", lower, upper)
}

func TestModule_Solve_HeraldedEdge(t *testing.T) {
	store, err := graph.NewStore(2, []graph.EdgeSpec{{Vertices: []int{0, 1}, Weight: rw(100)}})
	require.NoError(t, err)
	require.NoError(t, store.ApplySyndrome([]int{0, 1}, nil, []int{0}))

	dm := dual.NewModule(store, weight.RationalZero())
	pm := primal.NewModule(store, dm, weight.RationalZero(), primal.DefaultConfig())

	subgraph, _, upper, err := pm.Solve(context.Background(), []idx.Vertex{0, 1})
	require.NoError(t, err)

	require.Len(t, subgraph, 1)
	assert.Equal(t, 0, int(subgraph[0]))
	assert.True(t, upper.IsZero())
}
