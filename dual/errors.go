package dual

import "errors"

// ErrInvalidRate is returned by SetRate when asked for a rate outside
// {-1, 0, +1}; a malformed caller request, not an internal invariant
// breach, so it is a plain sentinel rather than an mwperr.InvariantError.
var ErrInvalidRate = errors.New("dual: rate must be one of {-1, 0, 1}")
