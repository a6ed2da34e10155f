// Package refine implements the Refinement Driver: a thin wrapper
// around the client-supplied refinement callback that, when a subgroup
// rather than the full symmetric group is in play, further splits every
// cell by that subgroup's orbits at the current level.
//
// The full-symmetric case is a direct passthrough to the client
// RefineFunc; there is nothing here for it to do. The subgroup case
// composes the chain's generators through the per-depth permStack row
// before folding their orbits into the partition via
// partstack.SplitPointAndRefineByOrbits.
package refine
