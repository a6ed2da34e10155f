// Package bitset provides a small fixed-width bitset over 0..n-1, the
// packed representation the search core uses for cell membership,
// candidate-split sets, and the automorphism pruner's fixed-point/mcr
// tables.
//
// Sets are fixed-size at construction and never grow; every operation is
// O(words) = O(n/64).
package bitset
