package linkage

// Primitive performs hierarchical clustering using the "primitive"
// algorithm described in Müllner's paper: on every merge, it scans every
// active pair for the global minimum dissimilarity.
//
// This is the naive O(N^3) implementation and is correspondingly slow; it
// exists primarily as a reference oracle that every other algorithm's
// output can be checked against. Prefer Linkage for production use.
func Primitive[T Float](dis []T, observations int, method Method) *Dendrogram[T] {
	state := NewLinkageState[T]()
	steps := NewDendrogram[T](observations)
	PrimitiveWith(state, dis, observations, method, steps)
	return steps
}

// PrimitiveWith is like Primitive, but amortizes allocation. See
// LinkageWith for details.
func PrimitiveWith[T Float](state *LinkageState[T], dis []T, observations int, method Method, steps *Dendrogram[T]) {
	squareMatrix(method, dis)
	matrix := NewCondensedMatrix(dis, observations)

	steps.Reset(matrix.Observations())
	if matrix.Observations() == 0 {
		return
	}
	state.reset(matrix.Observations())

	for i := 0; i < matrix.Observations()-1; i++ {
		a, b, dist, ok := argmin(&matrix, state.active)
		if !ok {
			panic("linkage: no active pair remains")
		}
		sizeA, sizeB := state.sizes[a], state.sizes[b]

		switch method {
		case MethodSingle:
			for x := range state.active.Range(0, a) {
				v := matrix.Get(x, b)
				updateSingle(matrix.Get(x, a), &v)
				matrix.Set(x, b, v)
			}
			skip1(state.active, a, b, func(x int) {
				v := matrix.Get(x, b)
				updateSingle(matrix.Get(a, x), &v)
				matrix.Set(x, b, v)
			})
			skip1(state.active, b, observations, func(x int) {
				v := matrix.Get(b, x)
				updateSingle(matrix.Get(a, x), &v)
				matrix.Set(b, x, v)
			})
		case MethodComplete:
			for x := range state.active.Range(0, a) {
				v := matrix.Get(x, b)
				updateComplete(matrix.Get(x, a), &v)
				matrix.Set(x, b, v)
			}
			skip1(state.active, a, b, func(x int) {
				v := matrix.Get(x, b)
				updateComplete(matrix.Get(a, x), &v)
				matrix.Set(x, b, v)
			})
			skip1(state.active, b, observations, func(x int) {
				v := matrix.Get(b, x)
				updateComplete(matrix.Get(a, x), &v)
				matrix.Set(b, x, v)
			})
		case MethodAverage:
			for x := range state.active.Range(0, a) {
				v := matrix.Get(x, b)
				updateAverage(matrix.Get(x, a), &v, sizeA, sizeB)
				matrix.Set(x, b, v)
			}
			skip1(state.active, a, b, func(x int) {
				v := matrix.Get(x, b)
				updateAverage(matrix.Get(a, x), &v, sizeA, sizeB)
				matrix.Set(x, b, v)
			})
			skip1(state.active, b, observations, func(x int) {
				v := matrix.Get(b, x)
				updateAverage(matrix.Get(a, x), &v, sizeA, sizeB)
				matrix.Set(b, x, v)
			})
		case MethodWeighted:
			for x := range state.active.Range(0, a) {
				v := matrix.Get(x, b)
				updateWeighted(matrix.Get(x, a), &v)
				matrix.Set(x, b, v)
			}
			skip1(state.active, a, b, func(x int) {
				v := matrix.Get(x, b)
				updateWeighted(matrix.Get(a, x), &v)
				matrix.Set(x, b, v)
			})
			skip1(state.active, b, observations, func(x int) {
				v := matrix.Get(b, x)
				updateWeighted(matrix.Get(a, x), &v)
				matrix.Set(b, x, v)
			})
		case MethodWard:
			for x := range state.active.Range(0, a) {
				v := matrix.Get(x, b)
				updateWard(matrix.Get(x, a), &v, dist, sizeA, sizeB, state.sizes[x])
				matrix.Set(x, b, v)
			}
			skip1(state.active, a, b, func(x int) {
				v := matrix.Get(x, b)
				updateWard(matrix.Get(a, x), &v, dist, sizeA, sizeB, state.sizes[x])
				matrix.Set(x, b, v)
			})
			skip1(state.active, b, observations, func(x int) {
				v := matrix.Get(b, x)
				updateWard(matrix.Get(a, x), &v, dist, sizeA, sizeB, state.sizes[x])
				matrix.Set(b, x, v)
			})
		case MethodCentroid:
			for x := range state.active.Range(0, a) {
				v := matrix.Get(x, b)
				updateCentroid(matrix.Get(x, a), &v, dist, sizeA, sizeB)
				matrix.Set(x, b, v)
			}
			skip1(state.active, a, b, func(x int) {
				v := matrix.Get(x, b)
				updateCentroid(matrix.Get(a, x), &v, dist, sizeA, sizeB)
				matrix.Set(x, b, v)
			})
			skip1(state.active, b, observations, func(x int) {
				v := matrix.Get(b, x)
				updateCentroid(matrix.Get(a, x), &v, dist, sizeA, sizeB)
				matrix.Set(b, x, v)
			})
		case MethodMedian:
			for x := range state.active.Range(0, a) {
				v := matrix.Get(x, b)
				updateMedian(matrix.Get(x, a), &v, dist)
				matrix.Set(x, b, v)
			}
			skip1(state.active, a, b, func(x int) {
				v := matrix.Get(x, b)
				updateMedian(matrix.Get(a, x), &v, dist)
				matrix.Set(x, b, v)
			})
			skip1(state.active, b, observations, func(x int) {
				v := matrix.Get(b, x)
				updateMedian(matrix.Get(a, x), &v, dist)
				matrix.Set(b, x, v)
			})
		}
		state.merge(steps, a, b, dist)
	}
	Relabel(state.set, steps, method)
	sqrtSteps(method, steps)
}

// argmin scans every active pair in matrix for the minimum dissimilarity.
// ok is false if fewer than two observations are active.
func argmin[T Float](matrix *CondensedMatrix[T], active *Active) (row, col int, min T, ok bool) {
	first, hasFirst := nextActive(active)
	if !hasFirst {
		return 0, 0, min, false
	}
	second := nthActiveFrom(active, first, 1)
	if second < 0 {
		return 0, 0, min, false
	}
	row, col, min = first, second, matrix.Get(first, second)

	for r := range active.All() {
		skip1(active, r, matrix.Observations(), func(c int) {
			v := matrix.Get(r, c)
			if v < min {
				row, col, min = r, c, v
			}
		})
	}
	return row, col, min, true
}

// nthActiveFrom returns the n'th active observation at or after lo
// (0-indexed, counting lo itself as index 0 if active), or -1 if there is
// no such observation.
func nthActiveFrom(active *Active, lo, n int) int {
	i := 0
	for x := range active.Range(lo, len(active.next)) {
		if i == n {
			return x
		}
		i++
	}
	return -1
}
