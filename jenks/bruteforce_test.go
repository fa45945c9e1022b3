package jenks_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/natbreaks/dataset"
	"github.com/katalvlaran/natbreaks/jenks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// bruteForce enumerates every placement of k−1 cuts over n observations and
// returns the minimal total SSD, scored with the two-pass jenks.SSD.
// Cost grows as C(n−1, k−1)·n; keep n ≤ 50 and k ≤ 5.
func bruteForce(data []float64, k int) (float64, []int) {
	n := len(data)
	best := math.Inf(1)
	var bestBreaks []int
	breaks := make([]int, k)
	breaks[k-1] = n

	var rec func(c, start int, acc float64)
	rec = func(c, start int, acc float64) {
		if acc >= best {
			return
		}
		if c == k-1 {
			total := acc + jenks.SSD(data[start:n])
			if total < best {
				best = total
				bestBreaks = append(bestBreaks[:0], breaks...)
			}

			return
		}
		// Class c ends at end; leave at least one observation per remaining class.
		for end := start + 1; end <= n-(k-1-c); end++ {
			breaks[c] = end
			rec(c+1, end, acc+jenks.SSD(data[start:end]))
		}
	}
	rec(0, 0, 0)

	return best, bestBreaks
}

// TestSolve_MatchesBruteForce cross-checks the DP optimum against exhaustive
// enumeration on small random inputs.
func TestSolve_MatchesBruteForce(t *testing.T) {
	for _, n := range []int{1, 2, 5, 10, 20, 50} {
		for _, k := range []int{1, 2, 3, 5} {
			if k > n {
				continue
			}
			data := dataset.Uniform(n, 0, 1, int64(31*n+k))

			res, err := jenks.Solve(data, k, jenks.DefaultOptions())
			require.NoError(t, err, "n=%d k=%d", n, k)

			want, wantBreaks := bruteForce(data, k)
			tol := 1e-9 * math.Max(1, want)
			assert.InDelta(t, want, res.Cost, tol, "n=%d k=%d brute=%v dp=%v", n, k, wantBreaks, res.Breaks)

			got, err := jenks.PartitionCost(data, res.Breaks)
			require.NoError(t, err)
			assert.InDelta(t, want, got, tol, "dp breaks must score optimally, n=%d k=%d", n, k)
		}
	}
}

// TestSolve_MatchesBruteForceClustered repeats the cross-check on data with
// pronounced gaps, where the optimum is unique and breaks must agree exactly.
func TestSolve_MatchesBruteForceClustered(t *testing.T) {
	data := dataset.Clusters([]float64{-20, 0, 15, 40}, 6, 0.5, 77)

	res, err := jenks.Solve(data, 4, jenks.DefaultOptions())
	require.NoError(t, err)

	want, wantBreaks := bruteForce(data, 4)
	assert.Equal(t, wantBreaks, res.Breaks)
	assert.InDelta(t, want, res.Cost, 1e-9*math.Max(1, want))
}

// TestSolve_MatchesBruteForceOffset adds a large common offset to uniform
// data. The optimum must match enumeration over the unshifted values, which
// differ from the shifted ones by an exact subtraction.
func TestSolve_MatchesBruteForceOffset(t *testing.T) {
	const offset = 1e8
	base := dataset.Uniform(40, 0, 1, 4040)
	data := make([]float64, len(base))
	for i, x := range base {
		data[i] = x + offset
	}
	for i := range base {
		base[i] = data[i] - offset
	}
	want, wantBreaks := bruteForce(base, 4)
	tol := 1e-9 * math.Max(1, want)

	res, err := jenks.Solve(data, 4, jenks.DefaultOptions())
	require.NoError(t, err)
	assert.InDelta(t, want, res.Cost, tol, "brute=%v dp=%v", wantBreaks, res.Breaks)

	got, err := jenks.PartitionCost(base, res.Breaks)
	require.NoError(t, err)
	assert.InDelta(t, want, got, tol, "dp breaks must score optimally")

	cost, err := jenks.Cost(data, 4)
	require.NoError(t, err)
	assert.InDelta(t, want, cost, tol)
}
