// File: errors.go
// Role: sentinel error set (unified, consistent) for the matrix package.
// Every algorithm MUST return these sentinels; tests check via errors.Is.
package matrix

import "errors"

var (
	// ErrUnknownVertex indicates AddTightEdge referenced a vertex that has
	// no row in this tableau yet (it must be added via AddVertexRow, or the
	// two clusters must be Merge'd, before the edge can be added).
	ErrUnknownVertex = errors.New("matrix: unknown vertex")

	// ErrUnsatisfiable indicates ExtractSubgraph was called while the
	// tableau's current tight-edge set cannot express the syndrome.
	ErrUnsatisfiable = errors.New("matrix: unsatisfiable")
)
