package lazy

import (
	"errors"
	"iter"
	"math"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/dball/intervals/pkg/collection"
	"github.com/dball/intervals/pkg/iterator"
	"github.com/dball/intervals/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type counted struct {
	SliceSource[int]
	runs *int
}

func (c counted) Each(accept iterator.Accept[int]) {
	*c.runs++
	c.SliceSource.Each(accept)
}

func TestCompositionIsLazy(t *testing.T) {
	calls := 0
	seq := Of(1, 2, 3, 4).
		Tap(func(int) { calls++ }).
		Select(func(v int) bool { calls++; return v%2 == 0 })
	doubled := Collect(seq, func(v int) int { calls++; return v * 2 })
	_ = FlatCollect(doubled, func(v int) iter.Seq[int] { calls++; return Of(v).All() })
	_ = Distinct(doubled).Take(1).Drop(0)
	assert.Equal(t, 0, calls)
	assert.Equal(t, []int{4, 8}, doubled.ToSlice())
	assert.Equal(t, 4+4+2, calls)
}

func TestRestartable(t *testing.T) {
	seq := Distinct(Of(3, 1, 3, 2, 1)).Drop(1).Take(1)
	assert.Equal(t, []int{1}, seq.ToSlice())
	assert.Equal(t, []int{1}, seq.ToSlice())
	gen := Generate(func(i int) int { return i * i }).Take(4)
	assert.Equal(t, []int{0, 1, 4, 9}, gen.ToSlice())
	assert.Equal(t, []int{0, 1, 4, 9}, gen.ToSlice())
}

func TestTakeStopsSource(t *testing.T) {
	pulled := 0
	seq := Generate(func(i int) int { pulled++; return i }).Select(func(v int) bool { return v%3 == 0 })
	assert.Equal(t, []int{0, 3, 6}, seq.Take(3).ToSlice())
	assert.Equal(t, 7, pulled)

	pulled = 0
	assert.Equal(t, []int{}, seq.Take(0).ToSlice())
	assert.Equal(t, 0, pulled)

	pulled = 0
	assert.Equal(t, []int{2}, Generate(func(i int) int { pulled++; return i }).Take(3).Drop(2).ToSlice())
	assert.Equal(t, 3, pulled)
}

func TestTakeDrop(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for i := 0; i < 200; i++ {
		values := make([]int, r.IntN(20))
		for j := range values {
			values[j] = r.IntN(100)
		}
		k := r.IntN(len(values) + 3)
		// Window sources take the arithmetic path; generic sources count.
		for _, seq := range []*Seq[int]{FromSlice(values), FromSeq(slices.Values(values))} {
			assert.Equal(t, values[:min(k, len(values))], seq.Take(k).ToSlice())
			assert.Equal(t, values[min(k, len(values)):], seq.Drop(k).ToSlice())
			assert.Equal(t, min(k, len(values)), seq.Take(k).Count())
		}
	}
}

func TestNegativeCounts(t *testing.T) {
	for _, fn := range []func(){
		func() { Of(1).Take(-1) },
		func() { Of(1).Drop(-1) },
		func() { Of(1).Select(func(int) bool { return true }).Take(-1) },
	} {
		func() {
			defer func() {
				err, ok := recover().(error)
				require.True(t, ok)
				assert.True(t, errors.Is(err, types.ErrInvalidArgument))
			}()
			fn()
		}()
	}
}

func TestReverseEquivalence(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 1))
	for i := 0; i < 100; i++ {
		values := make([]float64, r.IntN(30))
		for j := range values {
			values[j] = r.NormFloat64() * math.Pow(10, float64(r.IntN(12)))
		}
		reversed := slices.Clone(values)
		slices.Reverse(reversed)
		view := AsReversed[float64](SliceSource[float64](values))
		assert.Equal(t, reversed, view.ToSlice())
		assert.Equal(t, values, AsReversed[float64](Reverse[float64](SliceSource[float64](values))).ToSlice())
		assert.InDelta(t, SumFloat(FromSlice(values)), SumFloat(view), 1e-3)
		if len(values) > 0 {
			k := r.IntN(len(values))
			assert.Equal(t, reversed[:k], view.Take(k).ToSlice())
			assert.Equal(t, reversed[k:], view.Drop(k).ToSlice())
			lo, _ := Min(view)
			assert.Equal(t, slices.Min(values), lo)
			hi, _ := Max(view)
			assert.Equal(t, slices.Max(values), hi)
		}
	}
}

func TestReversedIndexing(t *testing.T) {
	r := Reverse[string](SliceSource[string]{"a", "b", "c"})
	assert.Equal(t, 3, r.Len())
	assert.Equal(t, "c", r.At(0))
	assert.Equal(t, "a", r.At(2))
	w := r.Window(1, 3)
	assert.Equal(t, 2, w.Len())
	assert.Equal(t, "b", w.At(0))
	assert.Equal(t, []string{"a"}, FromSource[string](w.Window(1, 2)).ToSlice())
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, []int{3, 1, 2}, Distinct(Of(3, 1, 3, 2, 1, 2)).ToSlice())
	assert.Equal(t, []int{}, Distinct(Empty[int]()).ToSlice())

	runs := 0
	src := counted{SliceSource: SliceSource[int]{1, 1}, runs: &runs}
	assert.Equal(t, []int{1}, Distinct(FromSource[int](src)).ToSlice())
	assert.Equal(t, 1, runs)
}

type distinctSource struct {
	SliceSource[int]
}

func (distinctSource) DistinctByConstruction() bool { return true }

func TestDistinctByConstruction(t *testing.T) {
	seq := FromSource[int](distinctSource{SliceSource[int]{1, 2, 3}})
	assert.Same(t, seq, Distinct(seq))
	reversed := AsReversed[int](distinctSource{SliceSource[int]{1, 2, 3}})
	assert.Same(t, reversed, Distinct(reversed))
	filtered := seq.Select(func(int) bool { return true })
	assert.NotSame(t, filtered, Distinct(filtered))

	// Windows onto a distinct source stay distinct.
	taken := reversed.Take(2)
	assert.Same(t, taken, Distinct(taken))
	dropped := reversed.Drop(1)
	assert.Same(t, dropped, Distinct(dropped))
	fwd := FromSource[int](forward[int]{src: distinctSource{SliceSource[int]{1, 2, 3}}}).Take(2)
	assert.Same(t, fwd, Distinct(fwd))
	assert.Equal(t, []int{1, 2}, Distinct(fwd).ToSlice())
}

// live is an indexed sequence that may grow between enumerations.
type live struct {
	values *[]int
}

func (l live) Len() int {
	return len(*l.values)
}

func (l live) At(index int) int {
	return (*l.values)[index]
}

func TestWindowBoundsFixedAtComposition(t *testing.T) {
	values := []int{1, 2, 3}
	view := AsReversed[int](live{values: &values})
	head := view.Take(5)
	rest := view.Drop(1)
	values = append(values, 4)
	assert.Equal(t, []int{4, 3, 2, 1}, view.ToSlice())
	assert.Equal(t, 3, head.Count())
	assert.Equal(t, []int{4, 3, 2}, head.ToSlice())
	assert.Equal(t, []int{3, 2}, rest.ToSlice())
}

func TestCollect(t *testing.T) {
	words := Collect(Of(1, 2, 3), func(v int) string { return string(rune('a' + v - 1)) })
	assert.Equal(t, []string{"a", "b", "c"}, words.ToSlice())
	flat := FlatCollect(Of(1, 2, 3), func(v int) iter.Seq[int] {
		return Repeat(v).Take(v).All()
	})
	assert.Equal(t, []int{1, 2, 2, 3, 3, 3}, flat.ToSlice())
	assert.Equal(t, []int{1, 2, 2}, flat.Take(3).ToSlice())
}

func TestConcat(t *testing.T) {
	seq := Of(1, 2).Concat(Of(3)).Concat(Empty[int]())
	assert.Equal(t, []int{1, 2, 3}, seq.ToSlice())
	assert.Equal(t, []int{1, 2}, seq.Take(2).ToSlice())
}

func TestTerminals(t *testing.T) {
	seq := Of(5, 3, 8, 1)
	first, ok := seq.First()
	assert.True(t, ok)
	assert.Equal(t, 5, first)
	_, ok = Empty[int]().First()
	assert.False(t, ok)
	assert.True(t, Empty[int]().IsEmpty())
	assert.False(t, seq.IsEmpty())

	found, ok := seq.Detect(func(v int) bool { return v > 6 })
	assert.True(t, ok)
	assert.Equal(t, 8, found)
	assert.True(t, seq.AnySatisfy(func(v int) bool { return v == 1 }))
	assert.True(t, seq.AllSatisfy(func(v int) bool { return v > 0 }))
	assert.True(t, seq.NoneSatisfy(func(v int) bool { return v > 8 }))
	assert.True(t, Empty[int]().AllSatisfy(func(int) bool { return false }))

	assert.Equal(t, "<5|3|8|1>", seq.MakeString("<", "|", ">"))
	assert.Equal(t, "[5, 3, 8, 1]", seq.String())
	assert.Equal(t, "[]", Empty[int]().String())
	assert.Equal(t, "5381", InjectInto(seq, "", func(acc string, v int) string { return acc + string(rune('0'+v)) }))
	assert.Equal(t, 4, seq.Count())
	assert.Equal(t, 2, seq.Select(func(v int) bool { return v > 4 }).Count())

	assert.Equal(t, int64(17), Sum(seq))
	avg, err := Average(seq)
	require.NoError(t, err)
	assert.Equal(t, 4.25, avg)
	_, err = Average(Empty[int]())
	assert.True(t, errors.Is(err, types.ErrInvalidState))

	lo, ok := Min(seq)
	assert.True(t, ok)
	assert.Equal(t, 1, lo)
	hi, _ := Max(seq)
	assert.Equal(t, 8, hi)
	_, ok = Max(Empty[int]())
	assert.False(t, ok)

	values := []int{}
	for v := range seq.All() {
		values = append(values, v)
	}
	assert.Equal(t, []int{5, 3, 8, 1}, values)
	it := seq.Iterator()
	assert.True(t, it.Next())
	assert.Equal(t, 5, it.Value())
	it.Stop()
}

func TestMaterialize(t *testing.T) {
	seq := Of(2, 1, 2, 3)
	list := seq.ToList()
	assert.Equal(t, 4, list.Len())
	assert.Equal(t, 3, list.Get(3))
	assert.True(t, ToSet(seq).Equal(collection.NewSet(1, 2, 3)))
	assert.Equal(t, 2, ToBag(seq).Occurrences(2))
	assert.Equal(t, []int{1, 2, 3}, seq.ToSortedSet(collection.Less[int]).ToSlice())
}

func TestSumFloatCompensated(t *testing.T) {
	values := []float64{1, 1e100, 1, -1e100}
	assert.Equal(t, 2.0, SumFloat(FromSlice(values)))
	assert.Equal(t, 2.0, SumFloat(AsReversed[float64](SliceSource[float64](values))))
	assert.Equal(t, 6.0, SumFloat(Of[int8](1, 2, 3)))
}

func TestEqualAndHash(t *testing.T) {
	assert.True(t, Equal[int](Of(1, 2, 3), SliceSource[int]{1, 2, 3}))
	assert.False(t, Equal[int](Of(1, 2, 3), Of(1, 2)))
	assert.False(t, Equal[int](Of(1, 2), Of(1, 2, 3)))
	assert.False(t, Equal[int](SliceSource[int]{1, 2}, SliceSource[int]{1, 3}))
	assert.True(t, Equal[int](Empty[int](), SliceSource[int]{}))

	assert.Equal(t, HashInts[int](Of(1, 2, 3)), HashInts[int](SliceSource[int]{1, 2, 3}))
	assert.Equal(t, HashInts[int](Of(1, -2)), HashInts[int8](Of[int8](1, -2)))
	assert.NotEqual(t, HashInts[int](Of(1, 2)), HashInts[int](Of(2, 1)))
}
