// Package linkage is your engine for agglomerative hierarchical clustering
// in Go.
//
// 🌳 What is lvlath/linkage?
//
//	A focused, single-purpose library that turns a condensed pairwise
//	dissimilarity matrix into a stepwise dendrogram:
//
//	  • Seven linkage criteria: single, complete, average, weighted, ward,
//	    centroid, median
//	  • Four algorithms: MST, NN-chain and generic, picked automatically
//	    by Linkage, plus a primitive reference implementation
//	  • Reusable scratch space (LinkageState) for amortizing allocation
//	    across repeated calls
//
// The ideas and formulas here come from Daniel Müllner's 2011 paper "Modern
// hierarchical, agglomerative clustering algorithms" and his fastcluster
// library, the same lineage that underpins SciPy's
// scipy.cluster.hierarchy.linkage.
//
// ✨ Why choose it?
//
//   - Single-threaded and predictable — no goroutines, no locks, callers
//     own all concurrency decisions
//   - Zero third-party dependencies in the production path — only testify
//     for tests
//   - Generic over float32/float64 via the Float constraint
//
// Everything lives in one package, mirroring how the underlying scratch
// state (LinkageState) is shared privately across every algorithm:
//
//	condensed.go   — condensed pairwise matrix view
//	active.go      — active observation list
//	queue.go       — indexed min-heap
//	union.go       — union-find cluster relabeller
//	method.go      — Method/MethodChain, parsing, update formulas
//	dendrogram.go  — Dendrogram, Step
//	state.go       — LinkageState scratch space
//	mst.go         — MST algorithm (single linkage)
//	chain.go       — NN-chain algorithm
//	generic.go     — generic algorithm
//	primitive.go   — primitive O(N^3) reference algorithm
//	linkage.go     — dispatcher and one-shot API
//
// This package computes linkage over an already-built dissimilarity
// matrix; it does not compute pairwise dissimilarities from raw features,
// extract flat clusters from a dendrogram, or tolerate NaN, infinite, or
// negative dissimilarities.
//
//	go get github.com/lvlath/linkage
package linkage
