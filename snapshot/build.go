package snapshot

import (
	"github.com/katalvlaran/mwpf/dual"
	"github.com/katalvlaran/mwpf/graph"
	"github.com/katalvlaran/mwpf/idx"
	"github.com/katalvlaran/mwpf/weight"
)

// BuildSnapshot renders the current state of g and d (plus, once known, the
// chosen subgraph and weight bound) into one §6 Snapshot. subgraph and
// bounds may be nil/zero-valued when a solve is still in progress; the
// corresponding JSON fields are then omitted.
func BuildSnapshot(g *graph.Store, d *dual.Module, subgraph []idx.Edge, lower, upper weight.W) Snapshot {
	dsnap := d.Snapshot()

	dualNodes := make([]DualNode, len(dsnap.Nodes))
	for i, n := range dsnap.Nodes {
		dualNodes[i] = DualNode{
			Vertices: vertexInts(n.Vertices),
			Value:    NewNumber(n.Value.String()),
			Rate:     n.Rate,
		}
	}

	edges := make([]EdgeState, g.EdgeNum())
	for e := 0; e < g.EdgeNum(); e++ {
		edges[e] = EdgeState{
			Grown: NewNumber(g.Grown(idx.Edge(e)).String()),
			Tight: !g.Untight(idx.Edge(e)),
		}
	}

	vertices := make([]VertexState, g.VertexNum())
	for v := 0; v < g.VertexNum(); v++ {
		vertices[v] = VertexState{IsDefect: g.IsDefect(idx.Vertex(v))}
	}

	snap := Snapshot{
		DualNodes: dualNodes,
		Edges:     edges,
		SumDual:   NewNumber(dsnap.Total.String()),
		Vertices:  vertices,
	}

	if subgraph != nil {
		ints := make([]int, len(subgraph))
		for i, e := range subgraph {
			ints[i] = int(e)
		}
		snap.Subgraph = ints
	}

	if lower != nil && upper != nil {
		snap.WeightRange = &WeightRangeJSON{
			Lower: NewNumber(lower.String()),
			Upper: NewNumber(upper.String()),
		}
	}

	return snap
}

func vertexInts(vs []idx.Vertex) []int {
	out := make([]int, len(vs))
	for i, v := range vs {
		out[i] = int(v)
	}

	return out
}

// BuildDocument wraps one or more named snapshots into the §6 top-level
// document shape. positions may be nil; it is carried through unmodified.
func BuildDocument(format string, version int, positions []Position, named ...NamedSnapshot) Document {
	return Document{
		Format:    format,
		Version:   version,
		Positions: positions,
		Snapshots: named,
	}
}

// Marshal encodes doc as §6 persistent-format JSON.
func Marshal(doc Document) ([]byte, error) {
	return jsoniterConfig.Marshal(doc)
}

// Unmarshal decodes §6 persistent-format JSON into a Document.
func Unmarshal(data []byte) (Document, error) {
	var doc Document
	err := jsoniterConfig.Unmarshal(data, &doc)

	return doc, err
}
