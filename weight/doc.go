// Package weight hides the dual-program's numeric backend behind the W
// interface (§3, §9 "Rational vs floating-point backend"): exact rational
// arithmetic (Rational, backed by math/big.Rat) for bit-exact bounds, and a
// float64 backend (Float64) for throughput-sensitive callers who accept
// rounding. Every dual value, edge weight, and bound computed by dual/,
// primal/, and solver/ flows through this interface; none of those packages
// import math/big or assume a concrete representation.
//
// Grounded on: no repository in the retrieved pack ships an arbitrary-
// precision rational type (see SPEC_FULL.md "Standard-library choice requiring
// justification"), so the backend itself is stdlib math/big; the small-
// interface, functional shape mirrors lvlath's own preference for minimal,
// explicit contracts (matrix.Option, core.GraphOption) over broad base
// classes.
package weight
