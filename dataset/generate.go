// SPDX-License-Identifier: MIT
// Package: natbreaks/dataset
//
// generate.go - deterministic sample generators.
//
// Contract:
//   - Every generator returns a freshly allocated, ascending slice.
//   - n <= 0 (or no centers) yields an empty, non-nil slice.
//   - Pure helpers (no global state).

package dataset

import "golang.org/x/exp/slices"

// Uniform returns n values drawn uniformly from [lo, hi), sorted ascending.
// If hi < lo the bounds are swapped.
//
// Complexity: O(n log n).
func Uniform(n int, lo, hi float64, seed int64) []float64 {
	if n <= 0 {
		return []float64{}
	}
	if hi < lo {
		lo, hi = hi, lo
	}
	r := rngFromSeed(seed)
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + r.Float64()*(hi-lo)
	}
	slices.Sort(out)

	return out
}

// Clusters returns perCluster Gaussian samples around each center with
// standard deviation sigma, merged and sorted ascending. Well separated
// centers give data whose natural breaks are known in advance.
// A negative sigma is treated as zero.
//
// Complexity: O(m log m), m = len(centers)·perCluster.
func Clusters(centers []float64, perCluster int, sigma float64, seed int64) []float64 {
	if perCluster <= 0 || len(centers) == 0 {
		return []float64{}
	}
	if sigma < 0 {
		sigma = 0
	}
	r := rngFromSeed(seed)
	out := make([]float64, 0, len(centers)*perCluster)
	for _, c := range centers {
		for i := 0; i < perCluster; i++ {
			out = append(out, c+sigma*r.NormFloat64())
		}
	}
	slices.Sort(out)

	return out
}

// Sorted returns an ascending copy of data; data itself is not modified.
// This is the caller-side sort step the solver expects to have happened.
//
// Complexity: O(n log n).
func Sorted(data []float64) []float64 {
	out := make([]float64, len(data))
	copy(out, data)
	slices.Sort(out)

	return out
}
