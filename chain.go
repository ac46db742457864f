package linkage

// NNChain performs hierarchical clustering using the nearest-neighbor
// -chain algorithm, as described in Müllner's paper. It supports every
// MethodChain (the five monotone linkage criteria).
//
// In general, prefer Linkage, which picks the fastest algorithm for the
// requested Method.
func NNChain[T Float](dis []T, observations int, method MethodChain) *Dendrogram[T] {
	state := NewLinkageState[T]()
	steps := NewDendrogram[T](observations)
	NNChainWith(state, dis, observations, method, steps)
	return steps
}

// NNChainWith is like NNChain, but amortizes allocation. See LinkageWith
// for details.
func NNChainWith[T Float](state *LinkageState[T], dis []T, observations int, method MethodChain, steps *Dendrogram[T]) {
	squareMatrix(method.AsMethod(), dis)
	matrix := NewCondensedMatrix(dis, observations)

	steps.Reset(matrix.Observations())
	if matrix.Observations() == 0 {
		return
	}
	state.reset(matrix.Observations())
	state.chain = state.chain[:0]

	var a, b int
	var min T

	for iter := 0; iter < matrix.Observations()-1; iter++ {
		if len(state.chain) < 4 {
			a, _ = nextActive(state.active)
			state.chain = state.chain[:0]
			state.chain = append(state.chain, a)

			b = nthActive(state.active, 1)
			min = matrix.Get(a, b)
			first := true
			for i := range state.active.Range(b, observations) {
				if first {
					first = false
					continue
				}
				if matrix.Get(a, i) < min {
					min = matrix.Get(a, i)
					b = i
				}
			}
		} else {
			state.chain = state.chain[:len(state.chain)-2]
			b = state.chain[len(state.chain)-1]
			state.chain = state.chain[:len(state.chain)-1]
			a = state.chain[len(state.chain)-1]

			if a < b {
				min = matrix.Get(a, b)
			} else {
				min = matrix.Get(b, a)
			}
		}
		for {
			state.chain = append(state.chain, b)
			for x := range state.active.Range(0, b) {
				if matrix.Get(x, b) < min {
					min = matrix.Get(x, b)
					a = x
				}
			}
			first := true
			for x := range state.active.Range(b, observations) {
				if first {
					first = false
					continue
				}
				if matrix.Get(b, x) < min {
					min = matrix.Get(b, x)
					a = x
				}
			}
			b = a
			a = state.chain[len(state.chain)-1]
			if b == state.chain[len(state.chain)-2] {
				break
			}
		}
		if a > b {
			a, b = b, a
		}
		switch method {
		case MethodChainSingle:
			chainSingle(state, &matrix, a, b, observations)
		case MethodChainComplete:
			chainComplete(state, &matrix, a, b, observations)
		case MethodChainAverage:
			chainAverage(state, &matrix, a, b, observations)
		case MethodChainWeighted:
			chainWeighted(state, &matrix, a, b, observations)
		case MethodChainWard:
			chainWard(state, &matrix, a, b, observations)
		}
		state.merge(steps, a, b, min)
	}
	Relabel(state.set, steps, method.AsMethod())
	sqrtSteps(method.AsMethod(), steps)
}

// nthActive returns the n'th active observation in a (0-indexed).
func nthActive(a *Active, n int) int {
	i := 0
	for x := range a.All() {
		if i == n {
			return x
		}
		i++
	}
	panic("linkage: active list has fewer than n+1 elements")
}

// skip1 runs f over every active observation in [lo, hi) except the first
// one encountered (lo itself, when active).
func skip1(a *Active, lo, hi int, f func(x int)) {
	first := true
	for x := range a.Range(lo, hi) {
		if first {
			first = false
			continue
		}
		f(x)
	}
}

func chainSingle[T Float](state *LinkageState[T], dis *CondensedMatrix[T], a, b, n int) {
	for x := range state.active.Range(0, a) {
		v := dis.Get(x, b)
		updateSingle(dis.Get(x, a), &v)
		dis.Set(x, b, v)
	}
	skip1(state.active, a, b, func(x int) {
		v := dis.Get(x, b)
		updateSingle(dis.Get(a, x), &v)
		dis.Set(x, b, v)
	})
	skip1(state.active, b, n, func(x int) {
		v := dis.Get(b, x)
		updateSingle(dis.Get(a, x), &v)
		dis.Set(b, x, v)
	})
}

func chainComplete[T Float](state *LinkageState[T], dis *CondensedMatrix[T], a, b, n int) {
	for x := range state.active.Range(0, a) {
		v := dis.Get(x, b)
		updateComplete(dis.Get(x, a), &v)
		dis.Set(x, b, v)
	}
	skip1(state.active, a, b, func(x int) {
		v := dis.Get(x, b)
		updateComplete(dis.Get(a, x), &v)
		dis.Set(x, b, v)
	})
	skip1(state.active, b, n, func(x int) {
		v := dis.Get(b, x)
		updateComplete(dis.Get(a, x), &v)
		dis.Set(b, x, v)
	})
}

func chainAverage[T Float](state *LinkageState[T], dis *CondensedMatrix[T], a, b, n int) {
	sizeA, sizeB := state.sizes[a], state.sizes[b]
	for x := range state.active.Range(0, a) {
		v := dis.Get(x, b)
		updateAverage(dis.Get(x, a), &v, sizeA, sizeB)
		dis.Set(x, b, v)
	}
	skip1(state.active, a, b, func(x int) {
		v := dis.Get(x, b)
		updateAverage(dis.Get(a, x), &v, sizeA, sizeB)
		dis.Set(x, b, v)
	})
	skip1(state.active, b, n, func(x int) {
		v := dis.Get(b, x)
		updateAverage(dis.Get(a, x), &v, sizeA, sizeB)
		dis.Set(b, x, v)
	})
}

func chainWeighted[T Float](state *LinkageState[T], dis *CondensedMatrix[T], a, b, n int) {
	for x := range state.active.Range(0, a) {
		v := dis.Get(x, b)
		updateWeighted(dis.Get(x, a), &v)
		dis.Set(x, b, v)
	}
	skip1(state.active, a, b, func(x int) {
		v := dis.Get(x, b)
		updateWeighted(dis.Get(a, x), &v)
		dis.Set(x, b, v)
	})
	skip1(state.active, b, n, func(x int) {
		v := dis.Get(b, x)
		updateWeighted(dis.Get(a, x), &v)
		dis.Set(b, x, v)
	})
}

func chainWard[T Float](state *LinkageState[T], dis *CondensedMatrix[T], a, b, n int) {
	dist := dis.Get(a, b)
	sizeA, sizeB := state.sizes[a], state.sizes[b]
	for x := range state.active.Range(0, a) {
		v := dis.Get(x, b)
		updateWard(dis.Get(x, a), &v, dist, sizeA, sizeB, state.sizes[x])
		dis.Set(x, b, v)
	}
	skip1(state.active, a, b, func(x int) {
		v := dis.Get(x, b)
		updateWard(dis.Get(a, x), &v, dist, sizeA, sizeB, state.sizes[x])
		dis.Set(x, b, v)
	})
	skip1(state.active, b, n, func(x int) {
		v := dis.Get(b, x)
		updateWard(dis.Get(a, x), &v, dist, sizeA, sizeB, state.sizes[x])
		dis.Set(b, x, v)
	})
}
