// Package natbreaks is your toolkit for Fisher–Jenks natural breaks:
// optimal 1-D classification of sorted numeric data into k classes.
//
// 🚀 What is natbreaks?
//
//	A small, pure-Go library plus CLI that brings together:
//		• Exact optimal breaks via O(n²·k) dynamic programming
//		• Cost-only mode in O(n) memory
//		• Optional parallel column fill with identical results
//		• Class summaries, break values, GVF, value classification
//		• Seeded sample generators and JSON/YAML loaders
//
// Under the hood, everything is organized under these subpackages:
//
//	jenks/         — the solver: validation, DP build, breaks extraction, result helpers
//	dataset/       — sample generators, file loading/saving, caller-side sort
//	operations/    — CLI commands (breaks, generate, bench)
//	cmd/natbreaks/ — the natbreaks binary
//
// Quick ASCII example (k = 3):
//
//	1 2 | 4 | 7 8 9      breaks = [2 3 6], cost = 0.5 + 0 + 2 = 2.5
//
//	go get github.com/katalvlaran/natbreaks
package natbreaks
