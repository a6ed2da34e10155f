// Package orbitpart implements a union-find partition over 0..n-1 that
// additionally tracks, per class, the minimal-cell-representative (mcr)
// — the least element of the class.
//
// The disjoint-set mechanics (path compression, union by rank) follow an
// inline DSU's shape adapted from map[string]string-keyed vertex IDs to
// dense []int-indexed points, since every point set in this domain is
// exactly 0..n-1.
package orbitpart
