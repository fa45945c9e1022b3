// Package dataset provides sample observations for natural-breaks
// classification: deterministic generators (Uniform, Clusters), JSON/YAML
// file loading (Load, LoadAll, Parse), JSON saving (Save) and the
// caller-side sort step (Sorted) that jenks.Solve expects to have run.
//
// Generators are seeded explicitly; seed 0 maps to a fixed default so that
// zero-value configs are still reproducible.
package dataset
