package automorphism

import (
	"testing"

	"github.com/katalvlaran/dcoset/bitset"
	"github.com/stretchr/testify/require"
)

func TestRecordFixedPointsAndMCR(t *testing.T) {
	p := New(5)
	// (0)(1 2)(3 4): 0 fixed; cycle {1,2} min 1; cycle {3,4} min 3.
	perm := []int{0, 2, 1, 4, 3}
	p.Record(perm)
	require.Equal(t, 1, p.Len())

	e := p.entries[0]
	require.True(t, e.fp.Test(0))
	require.False(t, e.fp.Test(1))
	require.True(t, e.mcr.Test(0))
	require.True(t, e.mcr.Test(1))
	require.False(t, e.mcr.Test(2))
	require.True(t, e.mcr.Test(3))
	require.False(t, e.mcr.Test(4))
}

func TestReduceIntersectsWhenFixedPointsCovered(t *testing.T) {
	p := New(5)
	p.Record([]int{0, 2, 1, 4, 3}) // fixes only 0

	fixedSoFar := bitset.New(5)
	fixedSoFar.Set(0)

	candidates := bitset.New(5)
	for i := 0; i < 5; i++ {
		candidates.Set(i)
	}
	p.Reduce(candidates, fixedSoFar)

	require.True(t, candidates.Test(0))
	require.True(t, candidates.Test(1))
	require.False(t, candidates.Test(2))
	require.True(t, candidates.Test(3))
	require.False(t, candidates.Test(4))
}

func TestReduceSkipsGeneratorNotCoveringFixedSoFar(t *testing.T) {
	p := New(4)
	p.Record([]int{1, 0, 2, 3}) // fixes 2,3 only, not 0

	fixedSoFar := bitset.New(4)
	fixedSoFar.Set(0)

	candidates := bitset.New(4)
	for i := 0; i < 4; i++ {
		candidates.Set(i)
	}
	p.Reduce(candidates, fixedSoFar)

	for i := 0; i < 4; i++ {
		require.True(t, candidates.Test(i), "bit %d should be untouched", i)
	}
}

func TestRecordStopsAtCapacity(t *testing.T) {
	p := New(3)
	for i := 0; i < Capacity+5; i++ {
		p.Record([]int{0, 1, 2})
	}
	require.Equal(t, Capacity, p.Len())
}

func TestResetEmptiesRing(t *testing.T) {
	p := New(3)
	p.Record([]int{0, 2, 1})
	require.Equal(t, 1, p.Len())
	p.Reset()
	require.Equal(t, 0, p.Len())
}
