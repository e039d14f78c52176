package hgformat

import "errors"

// ErrSyntax wraps any participle parse failure (unexpected token, unclosed
// paren, missing weight literal): the input is not well-formed hgformat text.
var ErrSyntax = errors.New("hgformat: syntax error")

// ErrDuplicateEdgeName is returned when two lines declare the same edge name;
// names exist only for human readability and must be unique within a document.
var ErrDuplicateEdgeName = errors.New("hgformat: duplicate edge name")

// ErrUnknownBackend is returned when zero is neither a weight.Rational nor a
// weight.Float64 — Parse has no literal-parsing rule for any other backend.
var ErrUnknownBackend = errors.New("hgformat: unsupported weight backend")
