package solver

import (
	"github.com/katalvlaran/mwpf/graph"
	"github.com/katalvlaran/mwpf/idx"
	"github.com/katalvlaran/mwpf/primal"
	"github.com/katalvlaran/mwpf/weight"
)

// Initializer is the §6 "Initializer(vertex_num, edges)" external interface:
// the static, construction-time hypergraph topology.
type Initializer struct {
	VertexNum int
	Edges     []graph.EdgeSpec
}

// Syndrome is the §6 "solve(syndrome)" input: defect vertices plus the
// optional per-solve weight overrides and heralded edges.
type Syndrome struct {
	DefectVertices      []int
	EdgeWeightOverrides []graph.WeightOverride
	HeraldedEdges       []int
}

// WeightRange is the §6 "WeightRange{lower, upper}" bound certificate.
type WeightRange struct {
	Lower weight.W
	Upper weight.W
}

// Proven reports whether lower == upper, i.e. the subgraph is certified
// optimal (§4.3 "If lower == upper, the returned subgraph is proven
// optimal").
func (r WeightRange) Proven() bool { return r.Lower != nil && r.Upper != nil && r.Lower.Cmp(r.Upper) == 0 }

// Result is one solve's output: the chosen subgraph (ascending edge
// indices) and its weight bound.
type Result struct {
	Subgraph []idx.Edge
	Range    WeightRange
}

// Config re-exports primal.Config: the solver's tunable behavior is entirely
// the primal drive loop's configuration surface (§4.3/§6 "Configuration
// options").
type Config = primal.Config

// Option re-exports primal.Option.
type Option = primal.Option

// DefaultConfig re-exports primal.DefaultConfig.
func DefaultConfig() Config { return primal.DefaultConfig() }
