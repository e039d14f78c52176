package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mwpf/idx"
	"github.com/katalvlaran/mwpf/matrix"
	"github.com/katalvlaran/mwpf/weight"
)

func w(n int64) weight.W { return weight.Float64(n) }

// chainTableau builds the cluster tableau for Scenario A (spec §8): defects
// {0,1,3}, tight edges e0=(0,1,w100), e1=(1,2,w100), e2=(2,3,w100),
// e3=(0,w100), e4=(0,1,2,w60).
func chainTableau(t *testing.T) *matrix.Tableau {
	t.Helper()
	tb := matrix.NewTableau(w(0))
	for v, defect := range map[idx.Vertex]bool{0: true, 1: true, 2: false, 3: true} {
		tb.AddVertexRow(v, defect)
	}
	assert.NoError(t, tb.AddTightEdge(0, []idx.Vertex{0, 1}, w(100)))
	assert.NoError(t, tb.AddTightEdge(1, []idx.Vertex{1, 2}, w(100)))
	assert.NoError(t, tb.AddTightEdge(2, []idx.Vertex{2, 3}, w(100)))
	assert.NoError(t, tb.AddTightEdge(3, []idx.Vertex{0}, w(100)))
	assert.NoError(t, tb.AddTightEdge(4, []idx.Vertex{0, 1, 2}, w(60)))

	return tb
}

func TestTableau_SatisfiableAndMinWeight(t *testing.T) {
	tb := chainTableau(t)
	assert.True(t, tb.IsSatisfiable())

	edges, err := tb.ExtractSubgraph(0)
	assert.NoError(t, err)
	assert.Equal(t, []idx.Edge{2, 4}, edges)
}

func TestTableau_UnknownVertexRejected(t *testing.T) {
	tb := matrix.NewTableau(w(0))
	tb.AddVertexRow(0, true)
	err := tb.AddTightEdge(0, []idx.Vertex{0, 1}, w(1))
	assert.ErrorIs(t, err, matrix.ErrUnknownVertex)
}

func TestTableau_UnsatisfiableBeforeAnyCoveringEdge(t *testing.T) {
	tb := matrix.NewTableau(w(0))
	tb.AddVertexRow(0, true)
	tb.AddVertexRow(1, false)
	assert.NoError(t, tb.AddTightEdge(0, []idx.Vertex{0, 1}, w(10)))
	// Defect only at 0; edge(0,1) alone cannot satisfy it (it would also flip 1).
	assert.False(t, tb.IsSatisfiable())

	_, err := tb.ExtractSubgraph(0)
	assert.ErrorIs(t, err, matrix.ErrUnsatisfiable)
}

func TestTableau_ProposeRelaxerNamesParticipatingVertices(t *testing.T) {
	tb := matrix.NewTableau(w(0))
	tb.AddVertexRow(0, true)
	tb.AddVertexRow(1, false)
	assert.NoError(t, tb.AddTightEdge(0, []idx.Vertex{0, 1}, w(10)))

	relaxer, unsat := tb.ProposeRelaxer()
	assert.True(t, unsat)
	assert.NotEmpty(t, relaxer.Vertices)
}

func TestTableau_ProposeRelaxerAbsentWhenSatisfiable(t *testing.T) {
	tb := chainTableau(t)
	_, unsat := tb.ProposeRelaxer()
	assert.False(t, unsat)
}

func TestTableau_EmptySyndromeIsSatisfiableWithEmptySubgraph(t *testing.T) {
	tb := matrix.NewTableau(w(0))
	tb.AddVertexRow(0, false)
	edges, err := tb.ExtractSubgraph(0)
	assert.NoError(t, err)
	assert.Empty(t, edges)
}

func TestTableau_MergeCombinesRowsAndColumns(t *testing.T) {
	a := matrix.NewTableau(w(0))
	a.AddVertexRow(0, true)
	assert.NoError(t, a.AddTightEdge(10, []idx.Vertex{0}, w(5)))

	b := matrix.NewTableau(w(0))
	b.AddVertexRow(1, true)
	assert.NoError(t, b.AddTightEdge(11, []idx.Vertex{1}, w(7)))

	a.Merge(b)
	assert.Equal(t, 2, a.Rows())
	assert.Equal(t, 2, a.Cols())
	assert.True(t, a.IsSatisfiable())

	edges, err := a.ExtractSubgraph(0)
	assert.NoError(t, err)
	assert.Equal(t, []idx.Edge{10, 11}, edges)
}

func TestTableau_DuplicateAddsAreIdempotent(t *testing.T) {
	tb := matrix.NewTableau(w(0))
	tb.AddVertexRow(0, true)
	tb.AddVertexRow(0, true)
	assert.NoError(t, tb.AddTightEdge(0, []idx.Vertex{0}, w(1)))
	assert.NoError(t, tb.AddTightEdge(0, []idx.Vertex{0}, w(1)))
	assert.Equal(t, 1, tb.Rows())
	assert.Equal(t, 1, tb.Cols())
}
