package collection

import (
	"slices"
	"testing"

	"github.com/dball/intervals/pkg/iterator"
	"github.com/stretchr/testify/assert"
)

func TestCompare(t *testing.T) {
	assert.True(t, Less(1, 2))
	assert.False(t, Less(2, 2))
	assert.Equal(t, -1, Compare("a", "b"))
	assert.Equal(t, 0, Compare(1.5, 1.5))
	assert.Equal(t, 1, Compare(3, 2))
	assert.True(t, Reverse[int](Less[int])(2, 1))
}

func TestSet(t *testing.T) {
	set := NewSet(3, 1, 2, 3, 1)
	assert.Equal(t, 3, set.Len())
	assert.True(t, set.Contains(1))
	assert.False(t, set.Contains(4))

	values := set.ToSlice()
	slices.Sort(values)
	assert.Equal(t, []int{1, 2, 3}, values)

	more := set.With(4)
	assert.True(t, more.Contains(4))
	assert.False(t, set.Contains(4))
	assert.Same(t, set, set.With(1))

	fewer := more.Without(1)
	assert.False(t, fewer.Contains(1))
	assert.True(t, more.Contains(1))
	assert.Same(t, fewer, fewer.Without(1))

	assert.True(t, set.Equal(NewSet(1, 2, 3)))
	assert.False(t, set.Equal(NewSet(1, 2, 4)))
	assert.False(t, set.Equal(more))
}

func TestSetEarlyTermination(t *testing.T) {
	set := NewSet("a", "b", "c")
	seen := 0
	for range set.All() {
		seen++
		break
	}
	assert.Equal(t, 1, seen)
}

func TestBag(t *testing.T) {
	bag := NewBag("a", "b", "a", "c", "a")
	assert.Equal(t, 5, bag.Len())
	assert.Equal(t, 3, bag.DistinctLen())
	assert.Equal(t, 3, bag.Occurrences("a"))
	assert.Equal(t, 0, bag.Occurrences("z"))
	assert.True(t, bag.Contains("c"))
	assert.False(t, bag.Contains("z"))

	all := iterator.BuildIterator[string](bag).Drain()
	slices.Sort(all)
	assert.Equal(t, []string{"a", "a", "a", "b", "c"}, all)

	more := bag.With("b")
	assert.Equal(t, 2, more.Occurrences("b"))
	assert.Equal(t, 1, bag.Occurrences("b"))
	assert.Equal(t, 6, more.Len())

	assert.True(t, bag.Equal(NewBag("c", "a", "a", "b", "a")))
	assert.False(t, bag.Equal(NewBag("a", "b", "c", "c", "a")))
	assert.False(t, bag.Equal(more))
}

func TestSortedSet(t *testing.T) {
	set := SortedSetOf[int](iterator.Slice[int]{5, 1, 4, 1, 3}, Less[int])
	assert.Equal(t, 4, set.Len())
	assert.Equal(t, []int{1, 3, 4, 5}, set.ToSlice())
	assert.Equal(t, []int{5, 4, 3, 1}, slices.Collect(set.Descending()))
	assert.Equal(t, []int{3, 4}, slices.Collect(set.Range(2, 5)))

	lo, ok := set.Min()
	assert.True(t, ok)
	assert.Equal(t, 1, lo)
	hi, ok := set.Max()
	assert.True(t, ok)
	assert.Equal(t, 5, hi)

	assert.True(t, set.Insert(3))
	assert.False(t, set.Insert(2))
	clone := set.Clone()
	assert.True(t, set.Delete(2))
	assert.False(t, set.Delete(2))
	assert.False(t, set.Contains(2))
	assert.True(t, clone.Contains(2))
}

func TestSortedSetReversed(t *testing.T) {
	set := SortedSetOf[string](iterator.Slice[string]{"b", "c", "a"}, Reverse[string](Less[string]))
	assert.Equal(t, []string{"c", "b", "a"}, slices.Collect(set.All()))
}

func TestSortedSetEmpty(t *testing.T) {
	set := NewSortedSet[float64](0, Less[float64])
	_, ok := set.Min()
	assert.False(t, ok)
	assert.Equal(t, []float64{}, set.ToSlice())
}
