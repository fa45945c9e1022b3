// SPDX-License-Identifier: MIT

package jenks

// MemoryMode controls how the solver stores its DP tables.
//
//   - FullTable  — keep the whole (n+1)x(k+1) cost and backtrack tables.
//     Allows cost + breaks recovery. Memory: O(n·k).
//
//   - TwoColumns — keep only the previous and current cost columns.
//     Memory drops to O(n), but breaks cannot be recovered.
//     Use when you only need the optimal cost.
type MemoryMode int

const (
	// FullTable mode: store all columns, support breaks recovery, uses O(n·k) memory.
	FullTable MemoryMode = iota

	// TwoColumns mode: keep only two cost columns, no breaks recovery, uses O(n) memory.
	TwoColumns
)

// Defaults returned by DefaultOptions.
const (
	// DefaultWorkers runs the builder sequentially.
	DefaultWorkers = 1

	// DefaultMemoryMode keeps both tables so breaks can be extracted.
	DefaultMemoryMode = FullTable

	// DefaultReturnBreaks asks Solve to walk the backtrack table.
	DefaultReturnBreaks = true
)

// minRowsPerWorker is the smallest row shard handed to a worker goroutine.
// Columns shorter than Workers*minRowsPerWorker use fewer workers.
const minRowsPerWorker = 64

// Options configures Solve.
//
// Fields:
//   - Workers      — number of goroutines filling one DP column.
//     0 or 1 runs sequentially. Results are identical for any value.
//   - MemoryMode   — FullTable or TwoColumns storage.
//   - ReturnBreaks — if true, Solve extracts Result.Breaks.
//     Requires MemoryMode=FullTable.
//
// Example:
//
//	opts := jenks.DefaultOptions()
//	opts.Workers = runtime.GOMAXPROCS(0)
//
//	res, err := jenks.Solve(sorted, 5, opts)
//	if err != nil {
//	  // errors.Is(err, jenks.ErrInvalidArgument) for bad input
//	}
//	fmt.Println("breaks:", res.Breaks, "cost:", res.Cost)
type Options struct {
	Workers      int
	MemoryMode   MemoryMode
	ReturnBreaks bool
}

// DefaultOptions returns the sequential, full-table configuration.
func DefaultOptions() Options {
	return Options{
		Workers:      DefaultWorkers,
		MemoryMode:   DefaultMemoryMode,
		ReturnBreaks: DefaultReturnBreaks,
	}
}

// Result holds the outcome of Solve.
type Result struct {
	// Breaks are the 1-based class-end positions, strictly increasing.
	// len(Breaks) == k and Breaks[k-1] == n. Class c covers
	// data[Breaks[c-1]:Breaks[c]] with Breaks[-1] read as 0.
	// Nil when breaks were not requested.
	Breaks []int

	// Cost is the minimal total within-class sum of squared deviations.
	Cost float64
}

// Class summarizes one contiguous class of a partition.
// Start and End are 0-based, End exclusive.
type Class struct {
	Start, End int
	Count      int
	Min, Max   float64
	Mean       float64
	SSD        float64
}
