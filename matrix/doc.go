// Package matrix implements the per-cluster parity/matrix solver (§4.4):
// an echelon-form GF(2) tableau over a cluster's vertices (rows, one parity
// check per vertex) and tight edges (columns, one per edge currently known
// to the cluster), plus the augmentation (syndrome) vector.
//
// Grounded on lvlath's matrix package for the surrounding shape (a sentinel
// error set in errors.go, dimension/shape read accessors, a small Options-
// free constructor) but the actual body of that package — dense float64
// adjacency/incidence/eigen code — has no GF(2) analogue and is replaced
// wholesale with a row-echelon bit-vector tableau (bitset.go, tableau.go).
//
// Satisfiability, minimum-weight extraction, and relaxer proposal (§4.4) are
// all derived from one reduced row-echelon computation (tableau.go reduce):
// a contradiction row (all-zero columns, rhs=1) means unsatisfiable, and its
// combo vector (which original vertex rows XOR together to produce it) is
// exactly the V_{S'} the relaxer policy asks for (§4.4 step 2).
package matrix
