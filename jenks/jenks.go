// SPDX-License-Identifier: MIT

package jenks

import (
	"fmt"
	"math"
)

// Solve computes the Fisher–Jenks optimal partition of data into k classes.
// Returns Result{Breaks, Cost}.
//
// data must be sorted ascending and finite; 1 <= k <= len(data).
// Breaks is filled only when opts.ReturnBreaks is true, which in turn
// requires opts.MemoryMode == FullTable.
//
// Stages:
//  1. Validate options, shape and values (ErrInvalidArgument family).
//  2. Build the DP tables (or only two cost columns).
//  3. Extract breaks from the backtrack table.
//
// Complexity: O(n²·k) time; O(n·k) memory (FullTable) or O(n) (TwoColumns).
//
// Example:
//
//	res, err := jenks.Solve([]float64{1, 2, 4, 7, 8, 9}, 3, jenks.DefaultOptions())
//	// res.Breaks == [2 3 6], res.Cost == 2.5
func Solve(data []float64, k int, opts Options) (Result, error) {
	if err := validateAll(data, k, opts); err != nil {
		return Result{}, err
	}

	if opts.MemoryMode == TwoColumns {
		cost, err := buildCost(data, k, opts.Workers)
		if err != nil {
			return Result{}, err
		}
		if err = checkCost(cost); err != nil {
			return Result{}, err
		}

		return Result{Cost: cost}, nil
	}

	t, err := buildTables(data, k, opts.Workers)
	if err != nil {
		return Result{}, err
	}
	res := Result{Cost: t.cost[k*(t.n+1)+t.n]}
	if err = checkCost(res.Cost); err != nil {
		return Result{}, err
	}
	if !opts.ReturnBreaks {
		return res, nil
	}
	if res.Breaks, err = extractBreaks(t); err != nil {
		return Result{}, err
	}

	return res, nil
}

// checkCost rejects a non-finite optimum. Validated input always yields a
// finite cost, so anything else is a builder defect.
func checkCost(cost float64) error {
	if math.IsNaN(cost) || math.IsInf(cost, 0) {
		return fmt.Errorf("cost(n,k)=%g: %w", cost, ErrInternalInconsistency)
	}

	return nil
}

// Breaks returns the k 1-based class-end positions for sorted data,
// using DefaultOptions.
func Breaks(data []float64, k int) ([]int, error) {
	res, err := Solve(data, k, DefaultOptions())
	if err != nil {
		return nil, err
	}

	return res.Breaks, nil
}

// Cost returns only the optimal total within-class SSD, in O(n) memory.
func Cost(data []float64, k int) (float64, error) {
	res, err := Solve(data, k, Options{Workers: DefaultWorkers, MemoryMode: TwoColumns})
	if err != nil {
		return 0, err
	}

	return res.Cost, nil
}

// LowerBounds converts class-end positions into the k−1 zero-based indices
// at which classes 2..k start. Indexing sorted data with them yields the
// first value of each class after the first.
//
//	LowerBounds([]int{2, 3, 6}) == []int{2, 3}
func LowerBounds(breaks []int) []int {
	if len(breaks) <= 1 {
		return []int{}
	}
	out := make([]int, len(breaks)-1)
	copy(out, breaks[:len(breaks)-1])

	return out
}
