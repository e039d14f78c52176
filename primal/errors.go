package primal

import "errors"

// ErrResourceExhausted names the resource-exhaustion error kind. Module.Solve
// does not return it: a cluster force-Resolved by primal.timeout or
// primal.cluster_node_limit is reported only through Cluster.ForceResolved
// and the returned bound, which may then show lower < upper (§4.3).
var ErrResourceExhausted = errors.New("primal: cluster resource exhausted")
