package weight

import "errors"

// ErrInvalidLiteral is returned by RationalFromString when the input does
// not parse as a decimal or fraction literal.
var ErrInvalidLiteral = errors.New("weight: invalid numeric literal")
