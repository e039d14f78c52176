// Package idx defines the dense, arena-style index types shared by every
// other package: vertices, edges, dual nodes, and clusters are all plain
// zero-based integers so that graph/dual/primal/matrix can store per-entity
// state in flat slices instead of pointer-chasing maps.
package idx

// Vertex is a dense, zero-based vertex index into a graph.Store.
type Vertex int

// Edge is a dense, zero-based edge index into a graph.Store.
type Edge int

// Node is a dense, zero-based index of a dual variable y_S owned by dual.Module.
type Node int

// Cluster is a dense, zero-based index of a primal cluster.
type Cluster int

// Invalid is returned by lookups that found nothing; all index types use the
// same sentinel so callers can compare against it regardless of kind.
const Invalid = -1

// Valid reports whether v was produced by a real allocation (v >= 0).
func (v Vertex) Valid() bool { return v >= 0 }

// Valid reports whether e was produced by a real allocation (e >= 0).
func (e Edge) Valid() bool { return e >= 0 }

// Valid reports whether n was produced by a real allocation (n >= 0).
func (n Node) Valid() bool { return n >= 0 }

// Valid reports whether c was produced by a real allocation (c >= 0).
func (c Cluster) Valid() bool { return c >= 0 }
