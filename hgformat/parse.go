package hgformat

import (
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/mwpf/graph"
	"github.com/katalvlaran/mwpf/weight"
)

// Document is the result of parsing one hgformat text: the constructed
// Store plus the original vertex/edge labels, in first-seen/declaration
// order, for callers that want to report results back in the input's own
// vocabulary rather than dense indices.
type Document struct {
	Store       *graph.Store
	VertexNames []string
	EdgeNames   []string
}

// Parse reads one hgformat document: zero or more lines of the form
//
//	name (v0,v1,...) weight
//
// e.g. "e0 (0,1) 60" or "e2 (a,b,c) 3/2". Vertex labels are assigned dense
// zero-based indices in first-seen order (mirroring lnz-BalancedGo/lib/
// parser.go's encode/m map[string]int); weight literals are parsed against
// zero's concrete backend, so the caller picks Rational or Float64 by
// supplying a zero value of that backend.
func Parse(r io.Reader, zero weight.W) (*Document, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	tree := &hypergraphToken{}
	if err := parser.ParseString(string(raw), tree); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
	}

	vertexIndex := make(map[string]int)
	var vertexNames []string
	edgeNames := make([]string, 0, len(tree.Edges))
	seenNames := make(map[string]bool, len(tree.Edges))
	specs := make([]graph.EdgeSpec, 0, len(tree.Edges))

	for _, et := range tree.Edges {
		if seenNames[et.Name] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateEdgeName, et.Name)
		}
		seenNames[et.Name] = true
		edgeNames = append(edgeNames, et.Name)

		vs := make([]int, len(et.Vertices))
		for i, label := range et.Vertices {
			vi, ok := vertexIndex[label]
			if !ok {
				vi = len(vertexNames)
				vertexIndex[label] = vi
				vertexNames = append(vertexNames, label)
			}
			vs[i] = vi
		}

		w, err := parseWeight(et.Weight, zero)
		if err != nil {
			return nil, err
		}

		specs = append(specs, graph.EdgeSpec{Vertices: vs, Weight: w})
	}

	store, err := graph.NewStore(len(vertexNames), specs)
	if err != nil {
		return nil, err
	}

	return &Document{Store: store, VertexNames: vertexNames, EdgeNames: edgeNames}, nil
}

// parseWeight parses lit against zero's concrete backend. Supports the two
// backends this module ships (weight.Rational, weight.Float64); any other W
// implementation has no known textual grammar here.
func parseWeight(lit string, zero weight.W) (weight.W, error) {
	switch zero.(type) {
	case weight.Rational:
		w, err := weight.RationalFromString(lit)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}

		return w, nil
	case weight.Float64:
		f, err := strconv.ParseFloat(lit, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSyntax, err)
		}

		return weight.Float64(f), nil
	default:
		return nil, ErrUnknownBackend
	}
}
