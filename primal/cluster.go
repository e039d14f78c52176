package primal

import (
	"time"

	"github.com/spakin/disjoint"

	"github.com/katalvlaran/mwpf/idx"
	"github.com/katalvlaran/mwpf/matrix"
)

// Status is a cluster's lifecycle state.
type Status int

const (
	// Growing means at least one of the cluster's dual nodes has a
	// nonzero rate, or it is eligible to be activated.
	Growing Status = iota
	// Resolved means the cluster's tableau is satisfiable (or it was
	// force-resolved by timeout/node-limit) and it no longer grows.
	Resolved
)

// Cluster is one connected component of tight edges plus its dual nodes
// and its GF(2) parity tableau. Clusters are vertex-disjoint by
// construction (§4.3 "clusters are vertex-disjoint").
type Cluster struct {
	ID      idx.Cluster
	Status  Status
	Nodes   []idx.Node
	Tableau *matrix.Tableau
	Element *disjoint.Element

	// Started is when this cluster first began growing, used to enforce
	// Config.Timeout.
	Started time.Time

	// ForceResolved records whether this cluster hit Config.Timeout or
	// Config.ClusterNodeLimit rather than reaching satisfiability.
	ForceResolved bool

	// Waiting marks a cluster seeded at rate 0 under SingleClusterStrategy:
	// intentionally idle until an earlier cluster resolves, not stuck.
	Waiting bool
}

// find returns the representative *Cluster of the union-find set c's
// Element belongs to.
func find(c *Cluster) *Cluster {
	return c.Element.Find().Val.(*Cluster)
}

// union merges b into a's set (or vice versa; disjoint.Union is symmetric
// in which representative survives) and returns the surviving
// representative. Callers must then treat the non-surviving *Cluster as
// dead and operate only through the returned one.
func union(a, b *Cluster) *Cluster {
	disjoint.Union(a.Element, b.Element)

	return find(a)
}
