package hgformat

import "github.com/alecthomas/participle"

// edgeToken is one "name (v0,v1,...) weight" line: a hyperedge name, its
// ordered vertex-label list, and a trailing numeric weight literal (an
// integer, a decimal, or an integer fraction like "3/2" for the Rational
// backend). Grounded on lnz-BalancedGo/lib/parser.go's ParseEdge, extended
// with the trailing weight capture this format needs that BalancedGo's own
// edge-list-only grammar has no use for. Captures into the same string
// field concatenate, so "3" "/" "2" collects into the literal "3/2" that
// weight.RationalFromString already knows how to parse.
type edgeToken struct {
	Name     string   `@Ident`
	Vertices []string `"(" ( @(Ident|Int) ","? )* ")"`
	Weight   string   `@(Int|Float) (@"/" @Int)?`
}

// hypergraphToken is a whole document: a comma- or newline-separated list of
// edgeTokens (participle's default lexer treats both as insignificant
// whitespace/punctuation, same as BalancedGo's ParseGraph).
type hypergraphToken struct {
	Edges []edgeToken `( @@ ","? )*`
}

var parser = participle.MustBuild(&hypergraphToken{}, participle.UseLookahead(1))
