package orbitpart

import "errors"

// ErrOutOfRange names a point outside 0..n-1. It is declared; Find and
// Union return no error and no function in this package currently
// returns it.
var ErrOutOfRange = errors.New("orbitpart: point out of range")
