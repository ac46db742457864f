package linkage

// Generic performs hierarchical clustering using Müllner's "generic"
// algorithm. Apart from the Primitive reference oracle, it is the only
// algorithm here that supports every Method, including centroid and
// median linkage, which may produce non-monotone dendrograms.
//
// In general, prefer Linkage, which picks the fastest algorithm for the
// requested Method.
func Generic[T Float](dis []T, observations int, method Method) *Dendrogram[T] {
	state := NewLinkageState[T]()
	steps := NewDendrogram[T](observations)
	GenericWith(state, dis, observations, method, steps)
	return steps
}

// GenericWith is like Generic, but amortizes allocation. See LinkageWith
// for details.
func GenericWith[T Float](state *LinkageState[T], dis []T, observations int, method Method, steps *Dendrogram[T]) {
	squareMatrix(method, dis)
	matrix := NewCondensedMatrix(dis, observations)

	steps.Reset(matrix.Observations())
	if matrix.Observations() == 0 {
		return
	}
	state.reset(matrix.Observations())

	// For each observation row, find its nearest neighbor and record it
	// in the heap.
	state.queue.Heapify(func(dists []T) {
		for row := 0; row < matrix.Observations()-1; row++ {
			minCol, minDist := row+1, matrix.Get(row, row+1)
			for col := row + 2; col < matrix.Observations(); col++ {
				if matrix.Get(row, col) < minDist {
					minCol = col
					minDist = matrix.Get(row, col)
				}
			}
			dists[row] = minDist
			state.nearest[row] = minCol
		}
	})

	for i := 0; i < matrix.Observations()-1; i++ {
		for {
			// a is our candidate observation. Ideally state.nearest[a]
			// already names its nearest neighbor, but it could be stale:
			// that happens precisely when a's priority is less than
			// dis[a, nearest[a]] because a's true nearest neighbor was
			// folded into another cluster since the priority was set. In
			// that case, rescan to find a's actual nearest neighbor.
			a, _ := state.queue.Peek()
			if matrix.Get(a, state.nearest[a]) == state.queue.Priority(a) {
				break
			}

			min := maxValue[T]()
			skip1(state.active, a, observations, func(x int) {
				if matrix.Get(a, x) < min {
					min = matrix.Get(a, x)
					state.nearest[a] = x
				}
			})
			state.queue.SetPriority(a, min)
		}

		a, _ := state.queue.Pop()
		b := state.nearest[a]
		dist := matrix.Get(a, b)
		switch method {
		case MethodSingle:
			genericSingle(state, &matrix, a, b, observations)
		case MethodComplete:
			genericComplete(state, &matrix, a, b, observations)
		case MethodAverage:
			genericAverage(state, &matrix, a, b, observations)
		case MethodWeighted:
			genericWeighted(state, &matrix, a, b, observations)
		case MethodWard:
			genericWard(state, &matrix, a, b, observations)
		case MethodCentroid:
			genericCentroid(state, &matrix, a, b, observations)
		case MethodMedian:
			genericMedian(state, &matrix, a, b, observations)
		}
		state.merge(steps, a, b, dist)
	}
	Relabel(state.set, steps, method)
	sqrtSteps(method, steps)
}

func genericSingle[T Float](state *LinkageState[T], dis *CondensedMatrix[T], a, b, n int) {
	ab := b

	for x := range state.active.Range(0, a) {
		v := dis.Get(x, b)
		updateSingle(dis.Get(x, a), &v)
		dis.Set(x, b, v)
		if state.nearest[x] == a {
			state.nearest[x] = ab
		}
	}
	skip1(state.active, a, b, func(x int) {
		v := dis.Get(x, b)
		updateSingle(dis.Get(a, x), &v)
		dis.Set(x, b, v)
		if dis.Get(x, ab) < state.queue.Priority(x) {
			state.queue.SetPriority(x, dis.Get(x, ab))
			state.nearest[x] = ab
		}
	})
	min := state.queue.Priority(b)
	skip1(state.active, b, n, func(x int) {
		v := dis.Get(b, x)
		updateSingle(dis.Get(a, x), &v)
		dis.Set(b, x, v)
		if dis.Get(ab, x) < min {
			state.queue.SetPriority(b, dis.Get(ab, x))
			state.nearest[b] = x
			min = dis.Get(ab, x)
		}
	})
}

func genericComplete[T Float](state *LinkageState[T], dis *CondensedMatrix[T], a, b, n int) {
	ab := b

	for x := range state.active.Range(0, a) {
		v := dis.Get(x, b)
		updateComplete(dis.Get(x, a), &v)
		dis.Set(x, b, v)
		if state.nearest[x] == a {
			state.nearest[x] = ab
		}
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

func genericAverage[T Float](state *LinkageState[T], dis *CondensedMatrix[T], a, b, n int) {
	ab := b
	sizeA, sizeB := state.sizes[a], state.sizes[b]

	for x := range state.active.Range(0, a) {
		v := dis.Get(x, b)
		updateAverage(dis.Get(x, a), &v, sizeA, sizeB)
		dis.Set(x, b, v)
		if state.nearest[x] == a {
			state.nearest[x] = ab
		}
	}
	skip1(state.active, a, b, func(x int) {
		v := dis.Get(x, b)
		updateAverage(dis.Get(a, x), &v, sizeA, sizeB)
		dis.Set(x, b, v)
		if dis.Get(x, ab) < state.queue.Priority(x) {
			state.queue.SetPriority(x, dis.Get(x, ab))
			state.nearest[x] = ab
		}
	})
	min := state.queue.Priority(b)
	skip1(state.active, b, n, func(x int) {
		v := dis.Get(b, x)
		updateAverage(dis.Get(a, x), &v, sizeA, sizeB)
		dis.Set(b, x, v)
		if dis.Get(ab, x) < min {
			state.queue.SetPriority(b, dis.Get(ab, x))
			state.nearest[b] = x
			min = dis.Get(ab, x)
		}
	})
}

func genericWeighted[T Float](state *LinkageState[T], dis *CondensedMatrix[T], a, b, n int) {
	ab := b

	for x := range state.active.Range(0, a) {
		v := dis.Get(x, b)
		updateWeighted(dis.Get(x, a), &v)
		dis.Set(x, b, v)
		if state.nearest[x] == a {
			state.nearest[x] = ab
		}
	}
	skip1(state.active, a, b, func(x int) {
		v := dis.Get(x, b)
		updateWeighted(dis.Get(a, x), &v)
		dis.Set(x, b, v)
		if dis.Get(x, ab) < state.queue.Priority(x) {
			state.queue.SetPriority(x, dis.Get(x, ab))
			state.nearest[x] = ab
		}
	})
	min := state.queue.Priority(b)
	skip1(state.active, b, n, func(x int) {
		v := dis.Get(b, x)
		updateWeighted(dis.Get(a, x), &v)
		dis.Set(b, x, v)
		if dis.Get(ab, x) < min {
			state.queue.SetPriority(b, dis.Get(ab, x))
			state.nearest[b] = x
			min = dis.Get(ab, x)
		}
	})
}

func genericWard[T Float](state *LinkageState[T], dis *CondensedMatrix[T], a, b, n int) {
	ab := b
	sizeA, sizeB := state.sizes[a], state.sizes[b]
	dist := dis.Get(a, b)

	for x := range state.active.Range(0, a) {
		v := dis.Get(x, b)
		updateWard(dis.Get(x, a), &v, dist, sizeA, sizeB, state.sizes[x])
		dis.Set(x, b, v)
		if state.nearest[x] == a {
			state.nearest[x] = ab
		}
	}
	skip1(state.active, a, b, func(x int) {
		v := dis.Get(x, b)
		updateWard(dis.Get(a, x), &v, dist, sizeA, sizeB, state.sizes[x])
		dis.Set(x, b, v)
		if dis.Get(x, ab) < state.queue.Priority(x) {
			state.queue.SetPriority(x, dis.Get(x, ab))
			state.nearest[x] = ab
		}
	})
	min := state.queue.Priority(b)
	skip1(state.active, b, n, func(x int) {
		v := dis.Get(b, x)
		updateWard(dis.Get(a, x), &v, dist, sizeA, sizeB, state.sizes[x])
		dis.Set(b, x, v)
		if dis.Get(ab, x) < min {
			state.queue.SetPriority(b, dis.Get(ab, x))
			state.nearest[b] = x
			min = dis.Get(ab, x)
		}
	})
}

// genericCentroid and genericMedian differ from the other five in the
// [0, a) range: instead of only redirecting a stale nearest pointer to
// ab, they first check whether x's dissimilarity to b has itself become
// x's new minimum (since centroid/median distances can shrink in ways
// that create dendrogram inversions), and only fall back to the
// redirect-on-match check otherwise.

func genericCentroid[T Float](state *LinkageState[T], dis *CondensedMatrix[T], a, b, n int) {
	ab := b
	sizeA, sizeB := state.sizes[a], state.sizes[b]
	dist := dis.Get(a, b)

	for x := range state.active.Range(0, a) {
		v := dis.Get(x, b)
		updateCentroid(dis.Get(x, a), &v, dist, sizeA, sizeB)
		dis.Set(x, b, v)
		if dis.Get(x, b) < state.queue.Priority(x) {
			state.queue.SetPriority(x, dis.Get(x, b))
			state.nearest[x] = ab
		} else if state.nearest[x] == a {
			state.nearest[x] = ab
		}
	}
	skip1(state.active, a, b, func(x int) {
		v := dis.Get(x, b)
		updateCentroid(dis.Get(a, x), &v, dist, sizeA, sizeB)
		dis.Set(x, b, v)
		if dis.Get(x, ab) < state.queue.Priority(x) {
			state.queue.SetPriority(x, dis.Get(x, ab))
			state.nearest[x] = ab
		}
	})
	min := state.queue.Priority(b)
	skip1(state.active, b, n, func(x int) {
		v := dis.Get(b, x)
		updateCentroid(dis.Get(a, x), &v, dist, sizeA, sizeB)
		dis.Set(b, x, v)
		if dis.Get(ab, x) < min {
			state.queue.SetPriority(b, dis.Get(ab, x))
			state.nearest[b] = x
			min = dis.Get(ab, x)
		}
	})
}

func genericMedian[T Float](state *LinkageState[T], dis *CondensedMatrix[T], a, b, n int) {
	ab := b
	dist := dis.Get(a, b)

	for x := range state.active.Range(0, a) {
		v := dis.Get(x, b)
		updateMedian(dis.Get(x, a), &v, dist)
		dis.Set(x, b, v)
		if dis.Get(x, b) < state.queue.Priority(x) {
			state.queue.SetPriority(x, dis.Get(x, b))
			state.nearest[x] = ab
		} else if state.nearest[x] == a {
			state.nearest[x] = ab
		}
	}
	skip1(state.active, a, b, func(x int) {
		v := dis.Get(x, b)
		updateMedian(dis.Get(a, x), &v, dist)
		dis.Set(x, b, v)
		if dis.Get(x, ab) < state.queue.Priority(x) {
			state.queue.SetPriority(x, dis.Get(x, ab))
			state.nearest[x] = ab
		}
	})
	min := state.queue.Priority(b)
	skip1(state.active, b, n, func(x int) {
		v := dis.Get(b, x)
		updateMedian(dis.Get(a, x), &v, dist)
		dis.Set(b, x, v)
		if dis.Get(ab, x) < min {
			state.queue.SetPriority(b, dis.Get(ab, x))
			state.nearest[b] = x
			min = dis.Get(ab, x)
		}
	})
}
