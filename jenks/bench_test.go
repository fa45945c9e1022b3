package jenks_test

import (
	"runtime"
	"testing"

	"github.com/katalvlaran/natbreaks/dataset"
	"github.com/katalvlaran/natbreaks/jenks"
)

// benchmarkSolve is a helper that runs Solve on n uniform sorted values with k classes.
// It resets the timer before entering the loop and fails on unexpected errors.
func benchmarkSolve(b *testing.B, n, k int, opts jenks.Options) {
	data := dataset.Uniform(n, 0, 1, int64(n))

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := jenks.Solve(data, k, opts); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_N10 benchmarks the tiny case.
func BenchmarkSolve_N10(b *testing.B) {
	benchmarkSolve(b, 10, 5, jenks.DefaultOptions())
}

// BenchmarkSolve_N1000 benchmarks a typical choropleth-sized input.
func BenchmarkSolve_N1000(b *testing.B) {
	benchmarkSolve(b, 1000, 5, jenks.DefaultOptions())
}

// BenchmarkSolve_N10000 benchmarks the large sequential case.
func BenchmarkSolve_N10000(b *testing.B) {
	benchmarkSolve(b, 10000, 5, jenks.DefaultOptions())
}

// BenchmarkSolve_N10000Parallel shards columns across GOMAXPROCS workers.
func BenchmarkSolve_N10000Parallel(b *testing.B) {
	opts := jenks.DefaultOptions()
	opts.Workers = runtime.GOMAXPROCS(0)
	benchmarkSolve(b, 10000, 5, opts)
}

// BenchmarkSolve_N10000TwoColumns benchmarks the cost-only O(n) memory mode.
func BenchmarkSolve_N10000TwoColumns(b *testing.B) {
	benchmarkSolve(b, 10000, 5, jenks.Options{Workers: 1, MemoryMode: jenks.TwoColumns})
}
