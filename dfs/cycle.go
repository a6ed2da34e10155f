// Package dfs implements cycle detection over this module's undirected
// point-set domain. DetectCycles reports one simple cycle per back edge
// of a depth-first search with three-color marking (cycles not closed by
// a single back edge are not listed),
// correctly handling self-loops and trivial 2-cycles, and produces
// canonical minimal rotations of each cycle via Booth's algorithm in
// O(L) time. The final cycle list is sorted for deterministic output.
//
// Complexity:
//
//   - Time:   O(V + E + C·L)   (V=#points, E=#edges, C=#cycles, L=avg cycle length)
//   - Memory: O(V + L_max)     (recursion stack + state map + cycle storage)
package dfs

import "sort"

// DetectCycles inspects the graph described by n points and neighbors for
// the cycles closed by its DFS back edges, one cycle per back edge; not
// every simple cycle of the graph is listed. Returns (true, cycles, nil) if
// any cycles are found;
// if no cycles, returns (false, nil, nil). Returns ErrNeighborsNil if
// neighbors is nil.
func DetectCycles(n int, neighbors NeighborFunc) (bool, [][]int, error) {
	if neighbors == nil {
		return false, nil, ErrNeighborsNil
	}

	state := make([]int, n)           // White=0, Gray=1, Black=2
	path := make([]int, 0, n)         // current DFS path stack
	seen := make(map[string]struct{}) // dedup set for cycle signatures
	var cycles [][]int

	for p := 0; p < n; p++ {
		if state[p] == White {
			dfsVisitCycle(neighbors, p, -1, state, &path, seen, &cycles)
		}
	}

	sort.Slice(cycles, func(i, j int) bool {
		return JoinSig(cycles[i]) < JoinSig(cycles[j])
	})

	if len(cycles) == 0 {
		return false, nil, nil
	}

	return true, cycles, nil
}

// dfsVisitCycle performs recursive DFS from point p, tracking parent to
// skip the trivial undirected backtrack edge. It records any back-edge
// Gray→Gray cycles it encounters.
func dfsVisitCycle(
	neighbors NeighborFunc,
	p, parent int,
	state []int,
	path *[]int,
	seen map[string]struct{},
	cycles *[][]int,
) {
	state[p] = Gray
	*path = append(*path, p)

	for _, nbr := range neighbors(p) {
		if nbr == p {
			// self-loop: always a cycle of length 1
			recordCycle([]int{p}, seen, cycles)
			continue
		}
		if nbr == parent {
			// trivial backtrack along the undirected edge we arrived on
			parent = -1 // only the first occurrence of parent is the backtrack
			continue
		}

		switch state[nbr] {
		case White:
			dfsVisitCycle(neighbors, nbr, p, state, path, seen, cycles)
		case Gray:
			idx := IndexOf(*path, nbr)
			recordCycle(append([]int(nil), (*path)[idx:]...), seen, cycles)
		}
	}

	*path = (*path)[:len(*path)-1]
	state[p] = Black
}

// recordCycle canonicalizes seq (a cycle given as its distinct points in
// visit order) and, if its signature has not been seen before, appends the
// closed canonical form to cycles.
func recordCycle(seq []int, seen map[string]struct{}, cycles *[][]int) {
	sig, canon := canonical(seq)
	if _, exists := seen[sig]; !exists {
		seen[sig] = struct{}{}
		*cycles = append(*cycles, canon)
	}
}

// canonical computes the lexicographically minimal rotation of cycle
// (a sequence of distinct points, not yet closed) and its reversal, then
// closes it by repeating the first point at the end.
func canonical(cycle []int) (string, []int) {
	if len(cycle) == 1 {
		closed := []int{cycle[0], cycle[0]}
		return JoinSig(closed), closed
	}

	rotF := MinimalRotation(cycle)
	rotB := MinimalRotation(Reverse(cycle))

	picker := rotF
	if Compare(rotB, rotF) < 0 {
		picker = rotB
	}

	closed := append(append([]int(nil), picker...), picker[0])
	sig := JoinSig(closed)

	return sig, closed
}
