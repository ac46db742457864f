package linkage

// MST performs hierarchical clustering using a Prim-like minimum-spanning
// -tree algorithm, as described in Müllner's paper. It only supports
// single linkage.
//
// In general, prefer Linkage, which picks the fastest algorithm for the
// requested Method.
func MST[T Float](dis []T, observations int) *Dendrogram[T] {
	state := NewLinkageState[T]()
	steps := NewDendrogram[T](observations)
	MSTWith(state, dis, observations, steps)
	return steps
}

// MSTWith is like MST, but amortizes allocation. See LinkageWith for
// details.
func MSTWith[T Float](state *LinkageState[T], dis []T, observations int, steps *Dendrogram[T]) {
	matrix := NewCondensedMatrix(dis, observations)

	steps.Reset(matrix.Observations())
	if matrix.Observations() == 0 {
		return
	}
	state.reset(matrix.Observations())

	cluster := 0
	state.active.Remove(cluster)

	for i := 0; i < matrix.Observations()-1; i++ {
		minObs, ok := nextActive(state.active)
		if !ok {
			panic("linkage: expected at least one active observation")
		}
		minDist := state.minDists[minObs]

		for x := range state.active.Range(0, cluster) {
			slot := &state.minDists[x]
			updateSingle(matrix.Get(x, cluster), slot)
			if *slot < minDist {
				minObs = x
				minDist = *slot
			}
		}
		for x := range state.active.Range(cluster, observations) {
			slot := &state.minDists[x]
			updateSingle(matrix.Get(cluster, x), slot)
			if *slot < minDist {
				minObs = x
				minDist = *slot
			}
		}
		state.merge(steps, minObs, cluster, minDist)
		cluster = minObs
	}
	Relabel(state.set, steps, MethodSingle)
}

// nextActive returns the first active observation in a, if any.
func nextActive(a *Active) (int, bool) {
	for x := range a.All() {
		return x, true
	}
	return 0, false
}
