package queue

import (
	"iter"

	"github.com/pkg/errors"
)

var ErrInvalidCapacity = errors.New("sliding window capacity must be at least 1")

// SlidingWindow keeps the most recent capacity items in insertion order.
// Once it is full the next push replaces the oldest item.
type SlidingWindow[TYPE any] struct {
	list        []TYPE
	insertIndex int
}

func NewSlidingWindow[TYPE any](capacity int) (*SlidingWindow[TYPE], error) {
	if capacity < 1 {
		return nil, errors.Wrapf(ErrInvalidCapacity, "got %d", capacity)
	}
	return &SlidingWindow[TYPE]{
		list:        make([]TYPE, 0, capacity),
		insertIndex: 0,
	}, nil
}

func (sw *SlidingWindow[TYPE]) Capacity() int {
	return cap(sw.list)
}

func (sw *SlidingWindow[TYPE]) Len() int {
	return len(sw.list)
}

func (sw *SlidingWindow[TYPE]) IsFull() bool {
	return sw.Len() == sw.Capacity()
}

// Push appends value as the newest item, evicting the oldest when full.
func (sw *SlidingWindow[TYPE]) Push(value TYPE) {
	if len(sw.list) < cap(sw.list) {
		sw.list = append(sw.list, value)
		return
	}
	sw.list[sw.insertIndex] = value
	sw.insertIndex = (sw.insertIndex + 1) % cap(sw.list)
}

// Get returns the item at index by order of insertion, 0 being the oldest.
func (sw *SlidingWindow[TYPE]) Get(index int) (TYPE, bool) {
	if index < 0 || index >= sw.Capacity() || index >= sw.Len() {
		var zero TYPE
		return zero, false
	}
	// insertIndex stays 0 until the window is full
	return sw.list[(sw.insertIndex+index)%sw.Capacity()], true
}

// Items returns the held items in backing store order, not insertion order.
// The slice aliases the window and is only valid until the next Push.
func (sw *SlidingWindow[TYPE]) Items() []TYPE {
	return sw.list
}

// All iterates over the items oldest first.
func (sw *SlidingWindow[TYPE]) All() iter.Seq[TYPE] {
	return func(yield func(TYPE) bool) {
		for i := 0; i < sw.Len(); i++ {
			item, _ := sw.Get(i)
			if !yield(item) {
				return
			}
		}
	}
}

// Slice copies the items in insertion order.
func (sw *SlidingWindow[TYPE]) Slice() []TYPE {
	out := make([]TYPE, 0, sw.Len())
	out = append(out, sw.list[sw.insertIndex:]...)
	return append(out, sw.list[:sw.insertIndex]...)
}
