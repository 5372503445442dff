package collection

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapFilterReduce(t *testing.T) {
	ns := []int{1, 2, 3, 4, 5}

	doubled := Map(ns, func(n int) int { return n * 2 })
	assert.Equal(t, []int{2, 4, 6, 8, 10}, doubled)

	even := Filter(ns, func(n int) bool { return n%2 == 0 })
	assert.Equal(t, []int{2, 4}, even)

	sum := Reduce(ns, 0, func(acc, n int) int { return acc + n })
	assert.Equal(t, 15, sum)
}

func TestGroupBy(t *testing.T) {
	words := []string{"apple", "avocado", "banana", "blueberry", "cherry"}
	groups := GroupBy(words, func(w string) byte { return w[0] })

	assert.Len(t, groups['a'], 2)
	assert.Len(t, groups['b'], 2)
	assert.Len(t, groups['c'], 1)
}

func TestSortByDescAndTake(t *testing.T) {
	type item struct {
		Name string
		Qty  int
	}
	items := []item{{"a", 3}, {"b", 9}, {"c", 1}, {"d", 7}}

	top := Take(SortByDesc(items, func(i item) int { return i.Qty }), 2)
	assert.Equal(t, []item{{"b", 9}, {"d", 7}}, top)

	// original slice untouched
	assert.Equal(t, item{"a", 3}, items[0])
}

func TestContains(t *testing.T) {
	assert.True(t, Contains([]string{"x", "y"}, "y"))
	assert.False(t, Contains([]string{"x", "y"}, "z"))
}
