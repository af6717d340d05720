package queue

import (
	"errors"
	"fmt"
	"slices"
	"testing"

	"gotest.tools/v3/assert"
	is "gotest.tools/v3/assert/cmp"
)

func mustWindow[TYPE any](t *testing.T, capacity int) *SlidingWindow[TYPE] {
	t.Helper()
	sw, err := NewSlidingWindow[TYPE](capacity)
	assert.NilError(t, err)
	return sw
}

func TestNewSlidingWindowRejectsBadCapacity(t *testing.T) {
	for _, capacity := range []int{0, -1} {
		sw, err := NewSlidingWindow[int](capacity)
		assert.Assert(t, sw == nil)
		assert.Assert(t, errors.Is(err, ErrInvalidCapacity), "capacity %d: %v", capacity, err)
	}
}

func TestCapacityInvariant(t *testing.T) {
	const capacity = 5
	sw := mustWindow[int](t, capacity)
	assert.Equal(t, sw.Capacity(), capacity)
	assert.Equal(t, sw.Len(), 0)
	assert.Assert(t, !sw.IsFull())

	for i := 0; i < 3*capacity; i++ {
		sw.Push(i)
		assert.Assert(t, sw.Len() <= sw.Capacity())
		assert.Equal(t, sw.Capacity(), capacity)
		assert.Equal(t, sw.IsFull(), i+1 >= capacity, "after %d pushes", i+1)
	}
}

func TestGetBeforeAndAfterFull(t *testing.T) {
	sw := mustWindow[byte](t, 3)
	for _, b := range []byte{1, 2, 3} {
		sw.Push(b)
	}
	assert.Assert(t, sw.IsFull())
	for i, want := range []byte{1, 2, 3} {
		got, ok := sw.Get(i)
		assert.Assert(t, ok)
		assert.Equal(t, got, want)
	}

	sw.Push(4)
	for i, want := range []byte{2, 3, 4} {
		got, ok := sw.Get(i)
		assert.Assert(t, ok)
		assert.Equal(t, got, want)
	}
}

func TestGetOutOfRange(t *testing.T) {
	sw := mustWindow[int](t, 4)
	_, ok := sw.Get(0)
	assert.Assert(t, !ok, "empty window")

	sw.Push(7)
	sw.Push(8)
	_, ok = sw.Get(2)
	assert.Assert(t, !ok, "unfilled slot must not be exposed")
	_, ok = sw.Get(-1)
	assert.Assert(t, !ok)

	for i := 0; i < 10; i++ {
		sw.Push(i)
		_, ok = sw.Get(sw.Capacity())
		assert.Assert(t, !ok)
		_, ok = sw.Get(sw.Capacity() + i)
		assert.Assert(t, !ok)
	}
}

func TestPushDiscardsOldest(t *testing.T) {
	const capacity = 4
	sw := mustWindow[int](t, capacity)
	for i := 0; i < capacity; i++ {
		sw.Push(i)
	}
	for next := capacity; next < 3*capacity; next++ {
		before := sw.Slice()
		sw.Push(next)
		after := sw.Slice()

		newest, _ := sw.Get(capacity - 1)
		assert.Equal(t, newest, next)
		assert.Check(t, !slices.Contains(after, before[0]))
		assert.DeepEqual(t, after[:capacity-1], before[1:])
	}
}

func TestAllMatchesGet(t *testing.T) {
	sw := mustWindow[string](t, 3)
	for _, s := range []string{"a", "b", "c", "d", "e"} {
		sw.Push(s)
		var want []string
		for i := 0; i < sw.Len(); i++ {
			item, ok := sw.Get(i)
			assert.Assert(t, ok)
			want = append(want, item)
		}
		assert.DeepEqual(t, slices.Collect(sw.All()), want)
	}
	assert.DeepEqual(t, slices.Collect(sw.All()), []string{"c", "d", "e"})
}

func TestAllStopsEarly(t *testing.T) {
	sw := mustWindow[int](t, 5)
	for i := 0; i < 5; i++ {
		sw.Push(i)
	}
	var seen []int
	for v := range sw.All() {
		if v == 2 {
			break
		}
		seen = append(seen, v)
	}
	assert.DeepEqual(t, seen, []int{0, 1})
}

func TestItemsBackingOrder(t *testing.T) {
	sw := mustWindow[int](t, 3)
	sw.Push(1)
	sw.Push(2)
	assert.DeepEqual(t, sw.Items(), []int{1, 2})

	sw.Push(3)
	sw.Push(4)
	assert.DeepEqual(t, sw.Items(), []int{4, 2, 3})
	assert.DeepEqual(t, sw.Slice(), []int{2, 3, 4})
}

func TestCapacityOne(t *testing.T) {
	sw := mustWindow[rune](t, 1)
	sw.Push('x')
	assert.Assert(t, sw.IsFull())
	sw.Push('y')
	got, ok := sw.Get(0)
	assert.Assert(t, ok)
	assert.Equal(t, got, 'y')
	assert.Check(t, is.Len(sw.Items(), 1))
}

func ExampleSlidingWindow() {
	sw, _ := NewSlidingWindow[int](3)
	for _, v := range []int{10, 11, 12, 13} {
		sw.Push(v)
	}
	fmt.Println(sw.Slice())
	// Output:
	// [11 12 13]
}

func BenchmarkPush(b *testing.B) {
	sw, _ := NewSlidingWindow[int](1024)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sw.Push(i)
	}
}
