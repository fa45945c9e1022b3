// SPDX-License-Identifier: MIT

package jenks

import "fmt"

// extractBreaks walks backtrack from (n, k) to column 0 and returns the
// class-end positions in ascending order.
//
// Each pointer m read at (i, j) must satisfy j <= m <= i: the last class
// [m..i] is non-empty and leaves at least j−1 observations for the other
// j−1 classes. Anything else is a builder defect and yields
// ErrInternalInconsistency instead of a silently wrong partition.
//
// Complexity: O(k).
func extractBreaks(t *tables) ([]int, error) {
	breaks := make([]int, t.k)
	i := t.n
	for j := t.k; j > 0; j-- {
		breaks[j-1] = i
		m, err := t.pointer(i, j)
		if err != nil {
			return nil, err
		}
		if m < j || m > i {
			return nil, fmt.Errorf("backtrack(%d,%d)=%d: %w", i, j, m, ErrInternalInconsistency)
		}
		i = m - 1
	}
	if i != 0 {
		return nil, fmt.Errorf("walk ended at row %d: %w", i, ErrInternalInconsistency)
	}

	return breaks, nil
}
