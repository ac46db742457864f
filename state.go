package linkage

// LinkageState is mutable scratch space shared by the clustering
// algorithms.
//
// It is an opaque accumulator for callers who wish to amortize allocation
// using the *With variants of the clustering functions (LinkageWith,
// MSTWith, NNChainWith, GenericWith, PrimitiveWith) across repeated calls,
// e.g. when clustering many small matrices in a tight loop. Memory used is
// proportional to the number of observations being clustered.
type LinkageState[T Float] struct {
	// sizes maps a cluster index to the size of that cluster. As
	// clustering progresses, if clusters a and b with a < b merge, a is
	// no longer a valid cluster index and b represents the merged
	// cluster.
	sizes []int
	// active holds every observation not yet folded into a later merge.
	active *Active
	// minDists maps an observation to the minimal edge connecting it to
	// an observation not yet in the minimum spanning tree. Used only by
	// MST.
	minDists []T
	// set assigns final cluster labels to the dendrogram.
	set *LinkageUnionFind
	// chain is a nearest-neighbor chain. Used only by NNChain.
	chain []int
	// queue holds nearest-neighbor dissimilarities. Used only by Generic.
	queue *LinkageHeap[T]
	// nearest is a nearest-neighbor candidate for each cluster. Used only
	// by Generic.
	nearest []int
}

// NewLinkageState creates empty scratch space. Clustering functions
// resize it automatically based on the number of observations being
// clustered.
func NewLinkageState[T Float]() *LinkageState[T] {
	return &LinkageState[T]{
		active: NewActive(0),
		set:    NewLinkageUnionFind(0),
		queue:  NewLinkageHeap[T](0),
	}
}

// reset clears the scratch space and allocates room for size
// observations.
func (s *LinkageState[T]) reset(size int) {
	s.sizes = growInts(s.sizes, size)
	for i := range s.sizes {
		s.sizes[i] = 1
	}

	s.active.Reset(size)

	s.minDists = growFloats[T](s.minDists, size)
	inf := infinity[T]()
	for i := range s.minDists {
		s.minDists[i] = inf
	}

	s.set.Reset(size)

	s.chain = growInts(s.chain, size)
	for i := range s.chain {
		s.chain[i] = 0
	}

	s.queue.Reset(size)

	s.nearest = growInts(s.nearest, size)
	for i := range s.nearest {
		s.nearest[i] = 0
	}
}

// merge folds cluster1 into cluster2 with the given dissimilarity,
// pushing the corresponding step onto dend.
func (s *LinkageState[T]) merge(dend *Dendrogram[T], cluster1, cluster2 int, dissimilarity T) {
	s.sizes[cluster2] = s.sizes[cluster1] + s.sizes[cluster2]
	s.active.Remove(cluster1)
	dend.Push(NewStep(cluster1, cluster2, dissimilarity, s.sizes[cluster2]))
}
