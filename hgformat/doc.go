// Package hgformat is a supplemental plain-text hypergraph loader: an
// alternate Initializer source alongside the programmatic graph.NewStore
// API. Grounded on lnz-BalancedGo/lib/parser.go's participle grammar for
// "(v1,v2,...)"-style edge lists, extended with a trailing weight literal.
package hgformat
