// SPDX-License-Identifier: MIT

package jenks

import (
	"fmt"
	"math"
)

// tables holds the cost and backtrack grids for one Solve call.
//
// Storage is column-major: cell (i, j) lives at offset j*(n+1) + i, so the
// column for class count j is the contiguous slice [j*(n+1), (j+1)*(n+1)).
// The builder fills one column at a time and workers write disjoint rows of
// the same slice.
type tables struct {
	n, k int       // observations and classes
	cost []float64 // (k+1) columns of n+1 rows
	back []int     // same layout; 1-based start of the last class
}

// newTables allocates both grids with the boundary conditions applied:
// cost(0,0)=0, every other cell +Inf until the builder reaches it.
//
// Complexity: O(n·k) time and memory.
func newTables(n, k int) *tables {
	size := (n + 1) * (k + 1)
	t := &tables{
		n:    n,
		k:    k,
		cost: make([]float64, size),
		back: make([]int, size),
	}
	inf := math.Inf(1)
	for idx := 1; idx < size; idx++ {
		t.cost[idx] = inf
	}

	return t
}

// costCol returns the cost column for class count j (rows 0..n).
func (t *tables) costCol(j int) []float64 {
	return t.cost[j*(t.n+1) : (j+1)*(t.n+1)]
}

// backCol returns the backtrack column for class count j (rows 0..n).
func (t *tables) backCol(j int) []int {
	return t.back[j*(t.n+1) : (j+1)*(t.n+1)]
}

// pointer reads backtrack(i, j) with bounds checks on the cell itself.
// Validation of the pointed-to row is the extractor's job.
func (t *tables) pointer(i, j int) (int, error) {
	if i < 0 || i > t.n || j < 0 || j > t.k {
		return 0, fmt.Errorf("cell (%d,%d) outside %dx%d: %w", i, j, t.n+1, t.k+1, ErrInternalInconsistency)
	}

	return t.back[j*(t.n+1)+i], nil
}
