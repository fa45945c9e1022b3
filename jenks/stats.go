// SPDX-License-Identifier: MIT
// Package jenks - reference statistics over classes.
//
// These helpers evaluate partitions independently of the DP: SSD uses a
// two-pass mean/deviation computation rather than running sums, so tests
// and callers can score any break list and compare it with Solve.

package jenks

import (
	"math"
	"sort"
)

// SSD returns the sum of squared deviations of block from its mean.
// Returns 0 for an empty block.
//
// Complexity: O(len(block)).
func SSD(block []float64) float64 {
	if len(block) == 0 {
		return 0
	}
	var sum float64
	for _, x := range block {
		sum += x
	}
	mean := sum / float64(len(block))

	var ssd float64
	for _, x := range block {
		d := x - mean
		ssd += d * d
	}

	return ssd
}

// PartitionCost returns the total within-class SSD of data split at breaks.
// breaks uses the Result.Breaks convention (1-based ends, last == len(data)).
//
// Errors: ErrEmptyInput, ErrBadBreaks.
//
// Complexity: O(n).
func PartitionCost(data []float64, breaks []int) (float64, error) {
	if len(data) == 0 {
		return 0, ErrEmptyInput
	}
	if err := validateBreaks(len(data), breaks); err != nil {
		return 0, err
	}

	var total float64
	start := 0
	for _, end := range breaks {
		total += SSD(data[start:end])
		start = end
	}

	return total, nil
}

// Classify returns the 0-based class of v given class bounds as produced by
// Result.Values: class c holds values in (bounds[c], bounds[c+1]], the first
// class also holds bounds[0]. Values below the minimum fall into class 0,
// values above the maximum into the last class.
// Returns -1 when bounds has fewer than two entries or v is NaN.
//
// Complexity: O(log k).
func Classify(bounds []float64, v float64) int {
	if len(bounds) < 2 || math.IsNaN(v) {
		return -1
	}
	uppers := bounds[1:]
	c := sort.SearchFloat64s(uppers, v)
	if c == len(uppers) {
		return len(uppers) - 1
	}

	return c
}
