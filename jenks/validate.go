// SPDX-License-Identifier: MIT
// Package jenks - input validation shared by Solve and the result helpers.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input - only sentinels from errors.go.
//   - O(n) worst-case; no allocations.
package jenks

import (
	"fmt"
	"math"

	"golang.org/x/exp/slices"
)

// validateAll verifies Options + class count + observations.
//
// Error priority: options -> empty -> k<1 -> k>n -> non-finite -> unsorted -> spread.
//
// Complexity: O(n).
func validateAll(data []float64, k int, opts Options) error {
	// Stage 1: Options-only sanity.
	if err := validateOptions(opts); err != nil {
		return err
	}

	// Stage 2: shape (n, k).
	if err := validateShape(len(data), k); err != nil {
		return err
	}

	// Stage 3: values.
	return validateObservations(data)
}

// validateOptions checks internal consistency of Options.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.Workers < 0 {
		return fmt.Errorf("workers=%d: %w", opts.Workers, ErrBadOptions)
	}
	switch opts.MemoryMode {
	case FullTable, TwoColumns:
		// ok
	default:
		return fmt.Errorf("memory mode %d: %w", opts.MemoryMode, ErrBadOptions)
	}
	if opts.ReturnBreaks && opts.MemoryMode != FullTable {
		return fmt.Errorf("breaks need FullTable: %w", ErrBadOptions)
	}

	return nil
}

// validateShape enforces n >= 1 and 1 <= k <= n.
//
// Complexity: O(1).
func validateShape(n, k int) error {
	if n == 0 {
		return ErrEmptyInput
	}
	if k < 1 {
		return fmt.Errorf("k=%d: %w", k, ErrBadClassCount)
	}
	if k > n {
		return fmt.Errorf("k=%d n=%d: %w", k, n, ErrTooManyClasses)
	}

	return nil
}

// maxSpread bounds n·(max−min): with it, |S1| ≤ maxSpread and
// S2 ≤ n·spread² stay finite, and so does every total cost.
var maxSpread = math.Sqrt(math.MaxFloat64)

// validateObservations rejects NaN/±Inf, then any descending adjacent pair,
// then a spread whose squared deviations would overflow.
// The finite check runs first so NaN never reaches the order comparison.
//
// Complexity: O(n).
func validateObservations(data []float64) error {
	for i, x := range data {
		if math.IsNaN(x) || math.IsInf(x, 0) {
			return fmt.Errorf("position %d: %w", i, ErrNonFinite)
		}
	}
	if !slices.IsSorted(data) {
		// Slow path only to report where the order breaks.
		for i := 1; i < len(data); i++ {
			if data[i] < data[i-1] {
				return fmt.Errorf("position %d: %w", i, ErrUnsorted)
			}
		}

		return ErrUnsorted
	}

	n := len(data)
	spread := data[n-1] - data[0]
	if math.IsInf(spread, 0) || spread > maxSpread/float64(n) {
		return fmt.Errorf("spread %g over %d observations: %w", spread, n, ErrSpreadTooLarge)
	}

	return nil
}

// validateBreaks checks that breaks describe a partition of n observations:
// non-empty, strictly increasing, first >= 1, last == n.
//
// Complexity: O(len(breaks)).
func validateBreaks(n int, breaks []int) error {
	if len(breaks) == 0 || len(breaks) > n {
		return fmt.Errorf("len=%d n=%d: %w", len(breaks), n, ErrBadBreaks)
	}
	prev := 0
	for c, b := range breaks {
		if b <= prev {
			return fmt.Errorf("class %d ends at %d after %d: %w", c, b, prev, ErrBadBreaks)
		}
		prev = b
	}
	if prev != n {
		return fmt.Errorf("last break %d != n=%d: %w", prev, n, ErrBadBreaks)
	}

	return nil
}
