package snapshot

import (
	jsoniter "github.com/json-iterator/go"
)

// jsoniterConfig is the shared codec: standard-library-compatible field
// naming and number handling, per SPEC_FULL's DOMAIN STACK grounding.
var jsoniterConfig = jsoniter.ConfigCompatibleWithStandardLibrary

// Document is the §6 persistent/snapshot JSON format's top-level shape.
type Document struct {
	Format    string          `json:"format"`
	Version   int             `json:"version"`
	Positions []Position      `json:"positions"`
	Snapshots []NamedSnapshot `json:"snapshots"`
}

// Position is one {t,i,j} triple: the document's own coordinate scheme for
// correlating a snapshot to a logical time step and a (row, column) of
// whatever the caller is plotting the snapshot sequence against.
type Position struct {
	T int `json:"t"`
	I int `json:"i"`
	J int `json:"j"`
}

// NamedSnapshot is one entry of the "snapshots" list: §6 specifies each
// entry as a 2-element JSON array [name, Snapshot], not a {"name":...,
// "snapshot":...} object, so Marshal/Unmarshal are hand-written.
type NamedSnapshot struct {
	Name     string
	Snapshot Snapshot
}

// MarshalJSON implements json.Marshaler as the §6 [name, Snapshot] pair.
func (n NamedSnapshot) MarshalJSON() ([]byte, error) {
	return jsoniterConfig.Marshal([2]interface{}{n.Name, n.Snapshot})
}

// UnmarshalJSON implements json.Unmarshaler, reading the §6 [name, Snapshot]
// pair.
func (n *NamedSnapshot) UnmarshalJSON(data []byte) error {
	var pair [2]jsoniter.RawMessage
	if err := jsoniterConfig.Unmarshal(data, &pair); err != nil {
		return err
	}
	if err := jsoniterConfig.Unmarshal(pair[0], &n.Name); err != nil {
		return err
	}

	return jsoniterConfig.Unmarshal(pair[1], &n.Snapshot)
}

// Snapshot is one point-in-time rendering of dual/graph state (§6).
type Snapshot struct {
	DualNodes   []DualNode       `json:"dual_nodes"`
	Edges       []EdgeState      `json:"edges"`
	SumDual     Number           `json:"sum_dual"`
	Vertices    []VertexState    `json:"vertices"`
	Subgraph    []int            `json:"subgraph,omitempty"`
	WeightRange *WeightRangeJSON `json:"weight_range,omitempty"`
}

// DualNode is one dual variable y_S as rendered for a snapshot: its support
// (vertex indices), current value, and growth rate.
type DualNode struct {
	Vertices []int  `json:"vertices"`
	Value    Number `json:"value"`
	Rate     int    `json:"rate"`
}

// EdgeState is one hyperedge's current grown weight and tightness.
type EdgeState struct {
	Grown Number `json:"grown"`
	Tight bool   `json:"tight"`
}

// VertexState carries §6's "s" field: whether the vertex is currently a
// defect.
type VertexState struct {
	IsDefect bool `json:"s"`
}

// WeightRangeJSON is the §6 "weight_range{lower,upper}" optional field.
type WeightRangeJSON struct {
	Lower Number `json:"lower"`
	Upper Number `json:"upper"`
}
