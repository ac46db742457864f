package linkage

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func isSortedAsc(xs []float64) bool {
	for i := 1; i < len(xs); i++ {
		if xs[i-1] > xs[i] {
			return false
		}
	}
	return true
}

func popAll(h *LinkageHeap[float64]) []float64 {
	var out []float64
	for {
		o, ok := h.Peek()
		if !ok {
			break
		}
		out = append(out, h.Priority(o))
		h.Pop()
	}
	return out
}

func newHeap(priorities []float64) *LinkageHeap[float64] {
	h := NewLinkageHeap[float64](len(priorities))
	for i, p := range priorities {
		h.SetPriority(i, p)
	}
	return h
}

func heapifyHeap(priorities []float64) *LinkageHeap[float64] {
	h := NewLinkageHeap[float64](len(priorities))
	h.Heapify(func(ps []float64) {
		copy(ps, priorities)
	})
	return h
}

func TestLinkageHeapSimple(t *testing.T) {
	want := []float64{1.0, 2.0, 4.0, 4.5, 5.0, 10.0}

	h := newHeap([]float64{2.0, 1.0, 10.0, 5.0, 4.0, 4.5})
	assert.Equal(t, want, popAll(h))

	h = heapifyHeap([]float64{2.0, 1.0, 10.0, 5.0, 4.0, 4.5})
	assert.Equal(t, want, popAll(h))
}

func TestLinkageHeapEmpty(t *testing.T) {
	h := newHeap(nil)
	assert.Empty(t, popAll(h))

	h = heapifyHeap(nil)
	assert.Empty(t, popAll(h))
}

func TestLinkageHeapOne(t *testing.T) {
	h := newHeap([]float64{1.0})
	assert.Equal(t, []float64{1.0}, popAll(h))

	h = heapifyHeap([]float64{1.0})
	assert.Equal(t, []float64{1.0}, popAll(h))
}

func TestLinkageHeapTwo(t *testing.T) {
	h := newHeap([]float64{2.0, 1.0})
	assert.Equal(t, []float64{1.0, 2.0}, popAll(h))

	h = heapifyHeap([]float64{2.0, 1.0})
	assert.Equal(t, []float64{1.0, 2.0}, popAll(h))
}

// TestLinkageHeapRandomInvariant exercises SetPriority-based construction
// and Heapify over random inputs, checking that Pop always produces
// priorities in ascending order, regardless of how the priorities were
// loaded into the heap.
func TestLinkageHeapRandomInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 50; trial++ {
		n := rng.Intn(40)
		xs := make([]float64, n)
		for i := range xs {
			xs[i] = rng.Float64()*200 - 100
		}

		h := newHeap(xs)
		assert.True(t, isSortedAsc(popAll(h)))

		h = heapifyHeap(xs)
		assert.True(t, isSortedAsc(popAll(h)))
	}
}
