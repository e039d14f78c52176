// Package mwperr defines InvariantError, the one error kind shared across
// graph/dual/primal/matrix that needs to carry postmortem context (§7):
// "surfaced with enough context (cluster id, last obstacle, dual snapshot
// hash) for postmortem". The other three kinds of spec §7's taxonomy
// (InvalidTopology, InvalidSyndrome, ResourceExhausted) are plain
// package-scoped sentinel errors, declared next to the code that raises
// them, exactly as lvlath's core/matrix packages do — they carry no extra
// context and don't need a shared type.
package mwperr

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mwpf/idx"
)

// ErrInvariantViolation is the sentinel every InvariantError wraps, so
// callers can test with errors.Is(err, mwperr.ErrInvariantViolation)
// without depending on the concrete *InvariantError type.
var ErrInvariantViolation = errors.New("mwperr: internal invariant violation")

// InvariantError is a fatal §4.2/§4.3/§4.4 invariant breach: a requested
// dual advance would drive a y_S or g_e outside its legal range, a tableau
// ended up in an inconsistent echelon state, or similar. Per §7 it aborts
// the solve and is surfaced to the caller, never swallowed.
type InvariantError struct {
	// Op names the operation that detected the breach, e.g. "dual.Advance".
	Op string

	// Cluster is the cluster involved, or idx.Invalid if none.
	Cluster idx.Cluster

	// Obstacle describes the last dispatched obstacle, for postmortem.
	Obstacle string

	// SnapshotHash is a short hash of the dual snapshot at breach time.
	SnapshotHash string

	// Err is the underlying detail (may be nil).
	Err error
}

// Error implements error.
func (e *InvariantError) Error() string {
	msg := fmt.Sprintf("mwperr: invariant violation in %s", e.Op)
	if e.Cluster.Valid() {
		msg += fmt.Sprintf(" cluster=%d", e.Cluster)
	}
	if e.Obstacle != "" {
		msg += fmt.Sprintf(" last_obstacle=%q", e.Obstacle)
	}
	if e.SnapshotHash != "" {
		msg += fmt.Sprintf(" snapshot=%s", e.SnapshotHash)
	}
	if e.Err != nil {
		msg += fmt.Sprintf(": %v", e.Err)
	}

	return msg
}

// Unwrap exposes both the wrapped detail error and ErrInvariantViolation so
// errors.Is(err, mwperr.ErrInvariantViolation) succeeds regardless of detail.
func (e *InvariantError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrInvariantViolation, e.Err}
	}

	return []error{ErrInvariantViolation}
}

// New builds an InvariantError with cluster unset (idx.Invalid).
func New(op string, err error) *InvariantError {
	return &InvariantError{Op: op, Cluster: idx.Cluster(idx.Invalid), Err: err}
}

// WithCluster attaches a cluster id and returns e for chaining.
func (e *InvariantError) WithCluster(c idx.Cluster) *InvariantError {
	e.Cluster = c

	return e
}

// WithObstacle attaches a description of the last obstacle and returns e.
func (e *InvariantError) WithObstacle(s string) *InvariantError {
	e.Obstacle = s

	return e
}

// WithSnapshotHash attaches a snapshot hash and returns e.
func (e *InvariantError) WithSnapshotHash(s string) *InvariantError {
	e.SnapshotHash = s

	return e
}
