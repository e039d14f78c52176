// Package primal implements the Primal Module (§4.3): the drive loop that
// owns clusters, dispatches dual obstacles, merges clusters on tight edges,
// requests relaxers from stuck clusters, and assembles the final subgraph
// and its lower/upper bound certificate.
//
// Grounded on lvlath's prim_kruskal package for its configuration shape —
// a functional-options struct (MSTOptions/Option/With.../DefaultOptions)
// selecting between named algorithm variants via a string/interface
// switch — generalized here to GrowthStrategy and RelaxerStrategy
// (strategy.go). The actual MST bodies (Kruskal's sort-and-union-find,
// Prim's min-heap frontier) have no analogue in a primal-dual hypergraph
// solver and are replaced wholesale by the obstacle-dispatch loop
// (module.go) built around github.com/spakin/disjoint union-find
// (cluster.go), reusing only the "union by rank, path-compressed" idea
// Kruskal's own union-find expressed by hand.
package primal
