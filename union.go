package linkage

import "sort"

// LinkageUnionFind is a specialized union-find implementation for
// assigning final cluster labels to a dendrogram.
//
// Unlike a textbook union-find (which unions by rank or size and keeps
// one of the two original labels as root), every union here assigns a
// *fresh* label to the merged set. With N observations there are
// N + (N-1) possible cluster labels; this discipline is what produces
// the monotonically increasing dendrogram labels described on
// Dendrogram.
type LinkageUnionFind struct {
	// parents[c] is c's cluster's parent. A cluster mapped to itself is a
	// root.
	parents []int
	// nextParent is the label to assign to the next union.
	nextParent int
}

// NewLinkageUnionFind creates a set that can merge clusters for exactly
// length observations.
func NewLinkageUnionFind(length int) *LinkageUnionFind {
	u := &LinkageUnionFind{}
	u.Reset(length)
	return u
}

// Reset clears this set and resizes it to support length observations,
// reusing its existing allocation.
func (u *LinkageUnionFind) Reset(length int) {
	size := 0
	if length > 0 {
		size = 2*length - 1
	}
	u.nextParent = length
	if cap(u.parents) < size {
		u.parents = make([]int, size)
	} else {
		u.parents = u.parents[:size]
	}
	for i := range u.parents {
		u.parents[i] = i
	}
}

// Union merges the two clusters represented by cluster1 and cluster2. If
// they are already in the same set, this is a no-op.
func (u *LinkageUnionFind) Union(cluster1, cluster2 int) {
	root1, root2 := u.Find(cluster1), u.Find(cluster2)
	if root1 == root2 {
		return
	}
	if u.nextParent >= len(u.parents) {
		panic("linkage: union-find has no more labels to assign")
	}
	u.parents[root1] = u.nextParent
	u.parents[root2] = u.nextParent
	u.nextParent++
}

// Find returns the root cluster label containing cluster, compressing
// the path along the way.
func (u *LinkageUnionFind) Find(cluster int) int {
	parent := cluster
	for {
		p, ok := u.parent(parent)
		if !ok {
			break
		}
		parent = p
	}
	for {
		p, ok := u.parent(cluster)
		if !ok {
			break
		}
		u.parents[cluster] = parent
		cluster = p
	}
	return parent
}

// parent returns the parent of cluster, if it is not a root.
func (u *LinkageUnionFind) parent(cluster int) (int, bool) {
	p := u.parents[cluster]
	if p == cluster {
		return 0, false
	}
	return p, true
}

// Relabel assigns final cluster labels to every step of dendrogram,
// resetting this set first.
//
// If method requires sorting, the dendrogram's steps are sorted by
// dissimilarity first; methods that may produce non-monotone dendrograms
// (centroid, median) preserve their causal merge order instead.
func Relabel[T Float](u *LinkageUnionFind, dendrogram *Dendrogram[T], method Method) {
	u.Reset(dendrogram.Observations())
	if method.requiresSorting() {
		steps := dendrogram.Steps()
		for _, step := range steps {
			d := step.Dissimilarity
			if d != d {
				panic("linkage: NaN dissimilarity in dendrogram")
			}
		}
		sort.SliceStable(steps, func(i, j int) bool {
			return steps[i].Dissimilarity < steps[j].Dissimilarity
		})
	}
	for i := 0; i < dendrogram.Len(); i++ {
		step := dendrogram.At(i)
		newCluster1 := u.Find(step.Cluster1)
		newCluster2 := u.Find(step.Cluster2)
		u.Union(newCluster1, newCluster2)

		size1 := dendrogram.ClusterSize(newCluster1)
		size2 := dendrogram.ClusterSize(newCluster2)
		step.setClusters(newCluster1, newCluster2)
		step.Size = size1 + size2
		dendrogram.Set(i, step)
	}
}
