package linkage

import "iter"

// Active is a list of contiguous non-negative integers that supports
// removal and iteration in time proportional to the number of elements
// remaining in the list.
//
// It is implemented as a doubly-linked index set over 0..len using two
// parallel arrays (prev and next), with the convention that next[i] == 0
// marks i as inactive. Element 0 can never be an inactive sentinel's
// "next" target because it is always the lowest possible active element,
// which is what makes 0 safe to reuse as the inactive marker.
type Active struct {
	start int
	prev  []int
	next  []int
}

// NewActive creates a new active list with elements 0 through len-1,
// inclusive.
func NewActive(length int) *Active {
	a := &Active{}
	a.Reset(length)
	return a
}

// Reset clears this list and reinitializes it to elements 0 through
// length-1, reusing the existing allocation where possible.
func (a *Active) Reset(length int) {
	a.start = 0
	if cap(a.prev) < length {
		a.prev = make([]int, length)
		a.next = make([]int, length)
	} else {
		a.prev = a.prev[:length]
		a.next = a.next[:length]
	}
	for i := 0; i < length; i++ {
		a.prev[i] = i
		a.next[i] = i + 1
	}
}

// Contains returns true if i is still active.
func (a *Active) Contains(i int) bool {
	return a.next[i] > 0
}

// Remove removes i from this list. Removing an already-removed element is
// a no-op.
func (a *Active) Remove(i int) {
	if !a.Contains(i) {
		return
	}
	if i == a.start {
		a.start = a.next[i]
	} else {
		if i <= a.start {
			panic("linkage: active list invariant violated")
		}
		a.prev[a.next[i]-1] = a.prev[i-1]
		a.next[a.prev[i-1]] = a.next[i]
	}
	// The first element can never be the "next" of anything, so it is
	// safe to reuse as the inactive sentinel.
	a.next[i] = 0
}

// All returns an iterator over every element currently in the list, in
// ascending order.
func (a *Active) All() iter.Seq[int] {
	return a.Range(0, len(a.next))
}

// Range returns an iterator over every active element in [lo, hi).
//
// If lo and hi correspond to elements in this list, the iterator runs in
// time proportional to the number of active elements in the range.
// Otherwise, it is bounded by the total number of elements that have ever
// been in the list.
func (a *Active) Range(lo, hi int) iter.Seq[int] {
	start := lo
	end := hi
	if start > len(a.next) || end > len(a.next) {
		panic("linkage: active list range out of bounds")
	}
	if start < a.start {
		start = a.start
	}
	for start < len(a.next) && !a.Contains(start) {
		start++
	}
	return func(yield func(int) bool) {
		cur := start
		for cur < end && cur < len(a.next) {
			if !yield(cur) {
				return
			}
			cur = a.next[cur]
		}
	}
}
