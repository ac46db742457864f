// Package distinct generates random condensed pairwise dissimilarity
// matrices whose entries are pairwise distinct, for use in cross-algorithm
// equivalence tests.
//
// Distinct dissimilarities sidestep a real but deliberately untested
// ambiguity: none of the clustering algorithms specify how ties are broken
// when the same dissimilarity value occurs for two distinct pairs of
// observations, so comparing their outputs on matrices with duplicate
// values is not meaningful.
package distinct

import (
	"math/rand"
)

// Matrix is a condensed pairwise dissimilarity matrix with every entry
// distinct.
type Matrix struct {
	data         []float64
	observations int
}

// New builds a Matrix with the given number of observations, drawing
// dissimilarities from rng in [-0.5, 0.5) and bumping any duplicate above
// the running maximum so that every value is unique.
func New(rng *rand.Rand, observations int) Matrix {
	if observations < 0 {
		observations = 0
	}
	size := 0
	if observations >= 2 {
		size = observations * (observations - 1) / 2
	}
	data := make([]float64, size)
	for i := range data {
		data[i] = rng.Float64() - 0.5
	}
	makeDistinct(data)
	return Matrix{data: data, observations: observations}
}

// Data returns a copy of the condensed pairwise dissimilarity matrix.
func (m Matrix) Data() []float64 {
	out := make([]float64, len(m.data))
	copy(out, m.data)
	return out
}

// Observations returns the number of observations in this matrix.
func (m Matrix) Observations() int {
	return m.observations
}

// makeDistinct mutates xs in place so every element is unique, without
// changing its length.
func makeDistinct(xs []float64) {
	if len(xs) == 0 {
		return
	}
	maxV := xs[0]
	for _, v := range xs {
		if v > maxV {
			maxV = v
		}
	}
	next := maxV + 1.0

	seen := make(map[float64]bool, len(xs))
	for i, x := range xs {
		if !seen[x] {
			seen[x] = true
			continue
		}
		xs[i] = next
		seen[next] = true
		next++
	}
}
