package main

import (
	"fmt"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func selKey(s Selection) string {
	return fmt.Sprint([]bool(s))
}

func TestSubsetsCountAndUniqueness(t *testing.T) {
	for n := 0; n <= 10; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			seen := map[string]bool{}
			count := 0
			for s := range Subsets(n) {
				require.Len(t, s, n)
				key := selKey(s)
				require.False(t, seen[key], "duplicate subset %v", s)
				seen[key] = true
				count++
			}
			assert.Equal(t, 1<<n, count)
		})
	}
}

func TestSubsetsOrder(t *testing.T) {
	var got [][]int
	for s := range Subsets(3) {
		got = append(got, s.Indices())
	}
	want := [][]int{
		{1}, {2}, {1, 2}, {3}, {1, 3}, {2, 3}, {1, 2, 3},
		nil,
	}
	assert.Equal(t, want, got)
}

func TestSubsetsZeroParts(t *testing.T) {
	var got []Selection
	for s := range Subsets(0) {
		got = append(got, s)
	}
	require.Len(t, got, 1)
	assert.Empty(t, got[0])
}

func TestSubsetsRestartable(t *testing.T) {
	seq := Subsets(4)
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
}

func TestSubsetsEarlyBreak(t *testing.T) {
	count := 0
	for range Subsets(5) {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}

func TestSubsetsYieldFreshSlices(t *testing.T) {
	all := slices.Collect(Subsets(2))
	require.Len(t, all, 4)
	all[0][1] = true
	assert.Equal(t, []int{2}, all[1].Indices())
}

func TestNextSubsetCarry(t *testing.T) {
	tests := []struct {
		in, want Selection
	}{
		{Selection{true, false, false}, Selection{false, true, false}},
		{Selection{true, true, false}, Selection{false, false, true}},
		{Selection{false, true, true}, Selection{true, true, true}},
		{Selection{true, true, true}, Selection{false, false, false}},
		{Selection{}, Selection{}},
	}
	for _, tc := range tests {
		prev := tc.in.clone()
		got := nextSubset(tc.in)
		assert.Equal(t, tc.want, got, "next of %v", tc.in)
		assert.Equal(t, prev, tc.in, "input modified")
	}
}
