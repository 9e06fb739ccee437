// Package metrics computes classification-quality metrics (accuracy,
// precision, confusion matrix) over label sequences too large to hold on
// one node.
//
// # Reading Guide
//
// Start with these three files to understand the reduction engine:
//   - coordinator.go: the Coordinator, round sequencing, and partition zipping
//   - local.go: the pure partition-local statistic computers
//   - labels.go: LabelSpace and the distributed distinct-label resolution
//
// Derived metrics live in accuracy.go, precision.go, and confusion.go.
//
// # Protocol
//
// Every metric follows the same shape: compute a fixed-shape local
// statistic on each partition (where that partition's data lives), ship
// only the statistic to the coordinator, and sum the partials element-wise
// into one globally-correct result. Because the reduction is commutative
// and associative, partials may complete in any order.
//
// Label-space resolution is itself a smaller instance of the pattern and
// always runs first: later rounds size their accumulators from the class
// count it fixes.
//
// # Policies
//
// A class that received no positive predictions contributes an all-zero
// TP/FP row; rows whose label falls outside the resolved space are dropped
// from confusion-matrix contributions. Both are deliberate data-shape
// handling, not error recovery. All 0/0 divisions normalize to 0, never
// NaN or Inf. Genuine failures (a partition's computation erroring,
// mismatched sequence shapes, degenerate label spaces) abort the whole
// operation; no partial metric is ever returned.
package metrics
