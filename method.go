package linkage

// Method selects the formula used to compute dissimilarities between
// clusters during hierarchical clustering.
//
// When clusters A and B merge into a new cluster AB, the dissimilarity
// between AB and every other cluster X is recomputed using the chosen
// method's formula.
type Method int

const (
	// MethodSingle assigns the minimum dissimilarity between all pairs of
	// observations: min(d[ab, x] for ab in AB for x in X).
	MethodSingle Method = iota
	// MethodComplete assigns the maximum dissimilarity between all pairs
	// of observations: max(d[ab, x] for ab in AB for x in X).
	MethodComplete
	// MethodAverage assigns the size-weighted average dissimilarity:
	// sum(d[ab, x]) / (|AB| * |X|).
	MethodAverage
	// MethodWeighted assigns 0.5 * (d(A, X) + d(B, X)), where A and B are
	// the clusters merged to form AB.
	MethodWeighted
	// MethodWard assigns the Ward dissimilarity, minimizing the increase
	// in total within-cluster variance.
	MethodWard
	// MethodCentroid assigns the dissimilarity between cluster centroids.
	// May produce a non-monotone dendrogram.
	MethodCentroid
	// MethodMedian assigns the weighted centroid ("median") dissimilarity.
	// May produce a non-monotone dendrogram.
	MethodMedian
)

// String returns the method's canonical name, as accepted by
// ParseMethod.
func (m Method) String() string {
	switch m {
	case MethodSingle:
		return "single"
	case MethodComplete:
		return "complete"
	case MethodAverage:
		return "average"
	case MethodWeighted:
		return "weighted"
	case MethodWard:
		return "ward"
	case MethodCentroid:
		return "centroid"
	case MethodMedian:
		return "median"
	default:
		return "unknown"
	}
}

// ParseMethod parses a method name, as used throughout this package's
// configuration surface. Recognized names are "single", "complete",
// "average", "weighted", "ward", "centroid" and "median".
func ParseMethod(name string) (Method, error) {
	switch name {
	case "single":
		return MethodSingle, nil
	case "complete":
		return MethodComplete, nil
	case "average":
		return MethodAverage, nil
	case "weighted":
		return MethodWeighted, nil
	case "ward":
		return MethodWard, nil
	case "centroid":
		return MethodCentroid, nil
	case "median":
		return MethodMedian, nil
	default:
		return 0, &ParseError{Name: name}
	}
}

// AsChain converts this method into the corresponding MethodChain, for
// methods the NN-chain algorithm supports. The second return value is
// false for MethodCentroid and MethodMedian, which NN-chain cannot
// compute.
func (m Method) AsChain() (MethodChain, bool) {
	switch m {
	case MethodSingle:
		return MethodChainSingle, true
	case MethodComplete:
		return MethodChainComplete, true
	case MethodAverage:
		return MethodChainAverage, true
	case MethodWeighted:
		return MethodChainWeighted, true
	case MethodWard:
		return MethodChainWard, true
	default:
		return 0, false
	}
}

// requiresSorting reports whether a dendrogram built with this method
// must be sorted by dissimilarity before cluster labels are assigned.
// Centroid and median linkage may produce non-monotone dendrograms, so
// their steps must keep their causal merge order instead.
func (m Method) requiresSorting() bool {
	return m != MethodCentroid && m != MethodMedian
}

// onSquares reports whether this method computes dissimilarities on the
// square of the input dissimilarities, taking the square root again only
// at the end.
func (m Method) onSquares() bool {
	return m == MethodWard || m == MethodCentroid || m == MethodMedian
}

// sqrtSteps takes the square root of every step's dissimilarity in dend,
// if this method computed on squared dissimilarities.
func sqrtSteps[T Float](m Method, dend *Dendrogram[T]) {
	if !m.onSquares() {
		return
	}
	steps := dend.Steps()
	for i := range steps {
		steps[i].Dissimilarity = fsqrt(steps[i].Dissimilarity)
	}
}

// squareMatrix squares every entry of matrix in place, if this method
// requires computing on squared dissimilarities.
func squareMatrix[T Float](m Method, matrix []T) {
	if !m.onSquares() {
		return
	}
	for i, v := range matrix {
		matrix[i] = v * v
	}
}

// MethodChain is the subset of Method values the NN-chain algorithm can
// compute: the methods that never produce inversions (non-monotone
// dendrograms). Centroid and median linkage are excluded.
type MethodChain int

const (
	// MethodChainSingle mirrors MethodSingle.
	MethodChainSingle MethodChain = iota
	// MethodChainComplete mirrors MethodComplete.
	MethodChainComplete
	// MethodChainAverage mirrors MethodAverage.
	MethodChainAverage
	// MethodChainWeighted mirrors MethodWeighted.
	MethodChainWeighted
	// MethodChainWard mirrors MethodWard.
	MethodChainWard
)

// String returns the method's canonical name, as accepted by
// ParseMethodChain.
func (m MethodChain) String() string {
	return m.AsMethod().String()
}

// ParseMethodChain parses a method name into a MethodChain. Recognized
// names are "single", "complete", "average", "weighted" and "ward".
func ParseMethodChain(name string) (MethodChain, error) {
	switch name {
	case "single":
		return MethodChainSingle, nil
	case "complete":
		return MethodChainComplete, nil
	case "average":
		return MethodChainAverage, nil
	case "weighted":
		return MethodChainWeighted, nil
	case "ward":
		return MethodChainWard, nil
	default:
		return 0, &ParseError{Name: name}
	}
}

// AsMethod converts this chain method into the corresponding general
// purpose Method.
func (m MethodChain) AsMethod() Method {
	switch m {
	case MethodChainSingle:
		return MethodSingle
	case MethodChainComplete:
		return MethodComplete
	case MethodChainAverage:
		return MethodAverage
	case MethodChainWeighted:
		return MethodWeighted
	case MethodChainWard:
		return MethodWard
	default:
		return MethodSingle
	}
}

func (m MethodChain) onSquares() bool {
	return m.AsMethod().onSquares()
}

// --- linkage-update formulas ---
//
// Each formula mutates b in place given a, the dissimilarity between the
// other merged cluster and cluster x, and (where needed) cluster sizes and
// the dissimilarity between the two clusters that were just merged.

// updateSingle assigns b the minimum of a and b.
func updateSingle[T Float](a T, b *T) {
	if a < *b {
		*b = a
	}
}

// updateComplete assigns b the maximum of a and b.
func updateComplete[T Float](a T, b *T) {
	if a > *b {
		*b = a
	}
}

// updateAverage assigns b the size-weighted average of a and b.
func updateAverage[T Float](a T, b *T, sizeA, sizeB int) {
	fa, fb := fromInt[T](sizeA), fromInt[T](sizeB)
	*b = (fa*a + fb**b) / (fa + fb)
}

// updateWeighted assigns b the unweighted average of a and b.
func updateWeighted[T Float](a T, b *T) {
	half := fromInt[T](1) / fromInt[T](2)
	*b = half * (a + *b)
}

// updateWard assigns b the Ward dissimilarity. mergedDist is the
// dissimilarity between the two clusters that were just merged; sizeA and
// sizeB are their sizes, and sizeX is the size of the cluster being
// updated.
func updateWard[T Float](a T, b *T, mergedDist T, sizeA, sizeB, sizeX int) {
	fa, fb, fx := fromInt[T](sizeA), fromInt[T](sizeB), fromInt[T](sizeX)
	numerator := (fx+fa)*a + (fx+fb)**b - fx*mergedDist
	denom := fa + fb + fx
	*b = numerator / denom
}

// updateCentroid assigns b the centroid dissimilarity.
func updateCentroid[T Float](a T, b *T, mergedDist T, sizeA, sizeB int) {
	fa, fb := fromInt[T](sizeA), fromInt[T](sizeB)
	sizeAB := fa + fb
	*b = ((fa*a)+(fb**b))/sizeAB - (fa * fb * mergedDist / (sizeAB * sizeAB))
}

// updateMedian assigns b the median dissimilarity.
func updateMedian[T Float](a T, b *T, mergedDist T) {
	half := fromInt[T](1) / fromInt[T](2)
	quarter := fromInt[T](1) / fromInt[T](4)
	*b = half*(a+*b) - mergedDist*quarter
}
