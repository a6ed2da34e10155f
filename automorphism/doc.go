// Package automorphism implements an automorphism pruner: a bounded
// ring of (fixed-point, minimal-cycle-representative)
// bitset pairs recorded from automorphisms discovered during search,
// used to shrink the candidate set for the next point to individualize.
//
// Recording a generator costs O(n) via the cycle-walk in Record; pruning
// a candidate set costs O(n·L) worst case, L the ring capacity.
package automorphism
