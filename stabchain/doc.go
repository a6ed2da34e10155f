// Package stabchain defines the Stabilizer Chain contract: the external
// collaborator the search engine consults for group membership,
// base-point insertion, and generator orbits. Construction of a real
// stabilizer chain (coset enumeration, base change) is assumed to live
// in a library outside this module's scope; this package supplies only:
//
//   - the Chain interface the engine programs against,
//   - Full(n), the sentinel "full symmetric group" collaborator used
//     when no input group is supplied,
//   - NewSchreier(n, gens), a minimal reference Schreier–Sims-style
//     implementation (orbit/transversal per base level, built by BFS)
//     sufficient to drive this module's own tests and worked examples —
//     not a general-purpose computational-group-theory library.
package stabchain
