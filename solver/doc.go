// Package solver is the §6 external-interface façade: Initializer builds a
// decoding-graph store once; Solver wraps it with a primal.Config and runs
// repeated, independent solves over the shared, read-only topology (§5
// "Shared-resource policy"). Grounded on lvlath's top-level package
// convention of a thin, locking façade in front of an internal engine.
package solver
