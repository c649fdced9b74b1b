package splitter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func leaves(n int) []*Entity {
	out := make([]*Entity, n)
	for i := range out {
		out[i] = &Entity{HasToken: true, Token: KindOther, Head: string(rune('a' + i))}
	}
	return out
}

func countLeaves(e *Entity) int {
	if len(e.Children) == 0 {
		return 1
	}
	n := 0
	for _, c := range e.Children {
		n += countLeaves(c)
	}
	return n
}

func TestBisectLeavesSmallListsUntouched(t *testing.T) {
	for n := 0; n <= clusterBin; n++ {
		in := leaves(n)
		out := bisect(append([]*Entity{}, in...))
		assert.Equal(t, in, out)
	}
}

func TestBisectNeverExceedsBinSize(t *testing.T) {
	for n := clusterBin + 1; n <= 9; n++ {
		in := leaves(n)
		out := bisect(in)
		assert.LessOrEqualf(t, len(out), clusterBin, "n=%d", n)

		total := 0
		for _, e := range out {
			total += countLeaves(e)
		}
		assert.Equalf(t, n, total, "n=%d lost or duplicated leaves", n)
	}
}

func TestBisectOddRemainderLeavesALoneSingleUngrouped(t *testing.T) {
	// n=3 with B=2: one full bin of 2, remainder of 1 is left ungrouped
	// since spec.md §4.6 only wraps a remainder when it has more than one
	// item.
	out := bisect(leaves(3))
	require.Len(t, out, 2)
	assert.Len(t, out[0].Children, 2)
	assert.Empty(t, out[1].Children) // lone leftover, never wrapped
}

func TestOptimizeRecursesIntoChildren(t *testing.T) {
	inner := &Entity{Children: leaves(5)}
	root := &Entity{Children: []*Entity{inner}}
	Optimize(root)

	assert.LessOrEqual(t, len(inner.Children), clusterBin)
	assert.Equal(t, 5, countLeaves(inner))
}
