package hgformat_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mwpf/hgformat"
	"github.com/katalvlaran/mwpf/weight"
)

const chainText = `
e0 (0,1) 60
e1 (1,2) 70
e2 (0,1,2) 50
`

func TestParse_RationalBackend(t *testing.T) {
	doc, err := hgformat.Parse(strings.NewReader(chainText), weight.RationalZero())
	require.NoError(t, err)

	assert.Equal(t, 3, len(doc.VertexNames))
	assert.Equal(t, []string{"e0", "e1", "e2"}, doc.EdgeNames)
	assert.Equal(t, 3, doc.Store.EdgeNum())
	assert.Equal(t, "60", doc.Store.BaseWeight(0).String())
	assert.Equal(t, 3, doc.Store.EdgeArity(2))
}

func TestParse_Float64Backend(t *testing.T) {
	doc, err := hgformat.Parse(strings.NewReader("a (x,y) 1.5"), weight.Float64(0))
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, doc.VertexNames)
	assert.Equal(t, weight.Float64(1.5), doc.Store.BaseWeight(0))
}

func TestParse_FractionLiteral(t *testing.T) {
	doc, err := hgformat.Parse(strings.NewReader("e0 (0,1) 3/2"), weight.RationalZero())
	require.NoError(t, err)
	assert.Equal(t, "3/2", doc.Store.BaseWeight(0).String())
}

func TestParse_DuplicateEdgeName(t *testing.T) {
	_, err := hgformat.Parse(strings.NewReader("e0 (0,1) 1\ne0 (1,2) 2"), weight.RationalZero())
	assert.ErrorIs(t, err, hgformat.ErrDuplicateEdgeName)
}

func TestParse_SyntaxError(t *testing.T) {
	_, err := hgformat.Parse(strings.NewReader("e0 (0,1"), weight.RationalZero())
	assert.ErrorIs(t, err, hgformat.ErrSyntax)
}

func TestParse_UnknownBackend(t *testing.T) {
	_, err := hgformat.Parse(strings.NewReader("e0 (0,1) 1"), unsupportedBackend{})
	assert.ErrorIs(t, err, hgformat.ErrUnknownBackend)
}

// unsupportedBackend is a minimal weight.W implementation hgformat has no
// literal-parsing rule for, used only to exercise ErrUnknownBackend.
type unsupportedBackend struct{ weight.W }

func (unsupportedBackend) String() string { return "unsupported" }
