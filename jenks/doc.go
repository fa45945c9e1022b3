// Package jenks computes Fisher–Jenks natural breaks: the optimal split of a
// sorted numeric sequence into k contiguous classes with minimal total
// within-class sum of squared deviations (SSD).
//
// 🚀 What are natural breaks?
//
//	Given sorted observations x₁ ≤ … ≤ xₙ and a class count k, pick k−1 cut
//	points so that values inside a class are as close to their class mean as
//	possible. Widely used in:
//	  • Choropleth map classification
//	  • Histogram / legend binning
//	  • 1-D clustering and segmentation
//
// ✨ Key features:
//   - exact optimum via O(n²·k) dynamic programming with running sums
//   - full-table mode: cost + breaks, O(n·k) memory
//   - two-column mode: cost only, O(n) memory (choose via MemoryMode)
//   - optional parallel column fill (Workers > 1), bit-identical results
//   - deterministic tie-break: the earliest class start wins
//   - sentinel errors; every input error matches ErrInvalidArgument
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/natbreaks/jenks"
//
//	breaks, err := jenks.Breaks(sorted, 5)
//	// breaks are 1-based class ends: class c is sorted[breaks[c-1]:breaks[c]]
//
//	res, err := jenks.Solve(sorted, 5, jenks.DefaultOptions())
//	bounds, _ := res.Values(sorted) // [min, upper1, …, upper5]
//
// Performance:
//
//   - Time:   O(n²·k)
//   - Memory: O(n·k) (FullTable) or O(n) (TwoColumns)
//
// The input must already be sorted; unsorted input is rejected with
// ErrUnsorted rather than sorted in place. See dataset.Sorted.
package jenks
