// Package dual implements the Dual Module (§4.2): the set of dual nodes
// `S`, each carrying a vertex set `V_S`, an internal-edge set `E_S`, a hair
// set `δ(S)`, a dual value `y_S`, and a growth rate `r_S`.
//
// Grounded on lvlath's flow package for its surrounding shape — a small
// sentinel-error set, an Options-free numeric core driven by a single
// owning struct — but the max-flow body (Dinic / Edmonds-Karp / Ford-
// Fulkerson augmenting-path search) has no analogue here and is replaced
// with the obstacle bookkeeping described below.
//
// The "priority queue over obstacle times" is realized as two maintained
// active sets rather than a container/heap: edgeRate holds, for every edge
// with a currently nonzero net hair rate ρ_e = Σ{r_S : e ∈ δ(S)}, that net
// rate (entries are deleted the instant ρ_e returns to zero), and
// negativeNodes holds the indices of every node with r_S < 0. Both sets
// are updated incrementally in SetRate; ComputeNextObstacle only ever
// scans these two sets, never the full node/edge population.
package dual
