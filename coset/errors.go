package coset

import "errors"

// ErrOutOfMemory is the sole fatal condition: workspace or
// stabilizer-chain base-point-insertion allocation failed. The bool
// return value is meaningless when this error is non-nil.
var ErrOutOfMemory = errors.New("coset: out of memory allocating search workspace")

// ErrInvalidOrdering names the case where ordering2 is supplied but is
// not a permutation of 0..n-1. It is declared; no function in this
// package currently returns it, and a malformed ordering gets undefined
// results.
var ErrInvalidOrdering = errors.New("coset: ordering2 is not a permutation of 0..n-1")

// ErrDimensionMismatch names the case where a caller-supplied buffer
// (isomOut, a pre-built Workspace) does not match n. It is declared; no
// function in this package currently returns it.
var ErrDimensionMismatch = errors.New("coset: buffer size does not match n")
