package sequence

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestIterator_CollectAndCount(t *testing.T) {
	it := From([]int{1, 2, 3})
	require.Equal(t, []int{1, 2, 3}, it.Collect())
	require.Equal(t, 3, it.Count())

	require.Equal(t, 3, FromMap(map[string]int{"a": 1, "b": 2, "c": 3}).Count())
}

func TestIterator_Filter(t *testing.T) {
	even := From([]int{1, 2, 3, 4, 5, 6}).
		Filter(func(v int) bool { return v%2 == 0 }).
		Collect()
	require.Equal(t, []int{2, 4, 6}, even)
}

func TestIterator_FindAnyAll(t *testing.T) {
	it := From([]int{3, 7, 11})

	v, ok := it.Find(func(v int) bool { return v > 5 })
	require.True(t, ok)
	require.Equal(t, 7, v)

	_, ok = it.Find(func(v int) bool { return v > 100 })
	require.False(t, ok)

	require.True(t, it.Any(func(v int) bool { return v == 11 }))
	require.True(t, it.All(func(v int) bool { return v%2 == 1 }))
	require.False(t, it.All(func(v int) bool { return v > 3 }))
}

func TestIterator_Sorted(t *testing.T) {
	sorted := From([]int{3, 1, 2}).
		Sorted(func(a, b int) bool { return a < b }).
		Collect()
	require.Equal(t, []int{1, 2, 3}, sorted)
}

func TestIterator_Pull(t *testing.T) {
	next, stop := From([]string{"x", "y"}).Pull()
	defer stop()

	v, ok := next()
	require.True(t, ok)
	require.Equal(t, "x", v)
	v, ok = next()
	require.True(t, ok)
	require.Equal(t, "y", v)
	_, ok = next()
	require.False(t, ok)
}
