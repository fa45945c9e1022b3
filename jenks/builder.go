// SPDX-License-Identifier: MIT

package jenks

import (
	"math"

	"golang.org/x/sync/errgroup"
)

// Builder — cost/backtrack DP
//
// Algorithm Outline:
//  1. Let n = len(data). Column 0: cost(0,0)=0, cost(i,0)=+∞ for i>0.
//  2. For j = 1..k, for i = j..n:
//     S1, S2 = 0
//     for m = i down to j:
//     S1 += x[m]−x[i], S2 += (x[m]−x[i])²
//     c = cost(m-1, j-1) + S2 − S1²/(i−m+1)
//     keep the minimal c; on ties keep the smaller m
//  3. Rows i < j stay +∞ (j non-empty classes need at least j observations).
//
// The running sums make each (i, j) scan O(i) with no inner re-summation,
// so the whole build is O(n²·k) time.
//
// Column j reads only column j−1. Rows of one column are independent, which
// is what fillColumn parallelizes; errgroup.Wait is the barrier between columns.

// buildTables fills the full cost and backtrack grids.
//
// Complexity: O(n²·k) time, O(n·k) memory.
func buildTables(data []float64, k, workers int) (*tables, error) {
	t := newTables(len(data), k)
	for j := 1; j <= k; j++ {
		if err := fillColumn(data, t.costCol(j-1), t.costCol(j), t.backCol(j), j, workers); err != nil {
			return nil, err
		}
	}

	return t, nil
}

// buildCost computes cost(n, k) keeping only two cost columns.
//
// Complexity: O(n²·k) time, O(n) memory.
func buildCost(data []float64, k, workers int) (float64, error) {
	n := len(data)
	inf := math.Inf(1)
	prev := make([]float64, n+1)
	curr := make([]float64, n+1)
	for i := 1; i <= n; i++ {
		prev[i] = inf
	}

	for j := 1; j <= k; j++ {
		// curr still holds column j-2; rows below j must read as infeasible.
		for i := 0; i < j; i++ {
			curr[i] = inf
		}
		if err := fillColumn(data, prev, curr, nil, j, workers); err != nil {
			return 0, err
		}
		prev, curr = curr, prev
	}

	return prev[n], nil
}

// fillColumn computes rows j..n of column j from column j−1 (prev).
// back may be nil when pointers are not needed.
//
// With workers > 1 the rows are dealt round-robin to goroutines: row i costs
// O(i−j) so striding keeps shards balanced, and every goroutine writes a
// disjoint set of cells.
func fillColumn(data, prev, curr []float64, back []int, j, workers int) error {
	n := len(data)
	rows := n - j + 1
	w := min(workers, rows/minRowsPerWorker)
	if w <= 1 {
		fillRows(data, prev, curr, back, j, j, 1)

		return nil
	}

	var g errgroup.Group
	for s := 0; s < w; s++ {
		first := j + s
		g.Go(func() error {
			fillRows(data, prev, curr, back, j, first, w)

			return nil
		})
	}

	return g.Wait()
}

// fillRows evaluates the recurrence for rows first, first+step, … ≤ n of column j.
func fillRows(data, prev, curr []float64, back []int, j, first, step int) {
	n := len(data)
	for i := first; i <= n; i += step {
		best := math.Inf(1)
		arg := 0
		s1, s2 := 0.0, 0.0
		// SSD is shift-invariant; summing x−x[i] keeps S2 and S1² small
		// when the observations share a large offset.
		pivot := data[i-1]
		for m := i; m >= j; m-- {
			x := data[m-1] - pivot
			s1 += x
			s2 += x * x
			ssd := s2 - s1*s1/float64(i-m+1)
			if ssd < 0 {
				ssd = 0 // rounding
			}
			// Descending scan: "<=" lets the smallest m win ties.
			if c := prev[m-1] + ssd; c <= best {
				best = c
				arg = m
			}
		}
		curr[i] = best
		if back != nil {
			back[i] = arg
		}
	}
}
