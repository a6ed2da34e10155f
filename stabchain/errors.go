package stabchain

import "errors"

// ErrOutOfMemory is returned by InsertBasePoint when extending the base
// cannot be allocated — the only fatal condition besides the engine's
// own workspace allocation.
var ErrOutOfMemory = errors.New("stabchain: out of memory extending base")

// ErrNotInGroup is a convenience sentinel for callers that want an error
// rather than a bare false from Contains.
var ErrNotInGroup = errors.New("stabchain: permutation not in group")

// ErrChainTypeMismatch is returned when InsertBasePoint is given a
// destination chain built by a different constructor. CopyInto has no
// error result and panics on such a destination.
var ErrChainTypeMismatch = errors.New("stabchain: destination chain has a different concrete type")
