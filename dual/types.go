package dual

import "github.com/katalvlaran/mwpf/idx"
import "github.com/katalvlaran/mwpf/weight"

// Node is a dual variable y_S together with the data needed to grow it and
// to recompute obstacle times: its vertex set, its internal (already-chosen)
// edges, its hair (boundary edges not yet chosen), its current value, and
// its signed growth rate.
type Node struct {
	Vertices       []idx.Vertex
	Internal       []idx.Edge
	Hair           []idx.Edge
	Value          weight.W
	Rate           int
	SeededByDefect bool
}

// ObstacleKind distinguishes the two event families the dual module can
// report; NoObstacle means no edge has a positive net rate and no node has
// a negative rate.
type ObstacleKind int

const (
	NoObstacle ObstacleKind = iota
	EdgeBecomesTight
	DualBecomesZero
)

// Obstacle is the earliest-time event the primal drive loop must react to.
// Only the fields relevant to Kind are meaningful: Edge for
// EdgeBecomesTight, Node for DualBecomesZero.
type Obstacle struct {
	Kind  ObstacleKind
	Edge  idx.Edge
	Node  idx.Node
	Delta weight.W
}

// Snapshot is a read-only enumeration of the current dual state (§6).
type Snapshot struct {
	Nodes []Node
	Total weight.W
}
