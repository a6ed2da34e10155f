package partstack

import "errors"

// ErrNotDiscrete is declared; no function in this package currently
// returns it. Invalid inputs are treated as caller misuse rather than a
// checked error.
var ErrNotDiscrete = errors.New("partstack: partition is not discrete")

// ErrDepthMismatch is declared; no function in this package currently
// returns it. Equivalent reports false for stacks of different universe
// sizes, and GetPermFrom does not check the sizes.
var ErrDepthMismatch = errors.New("partstack: mismatched universe size")
