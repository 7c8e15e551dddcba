// Package roman implements Roman domination labelings and the pure
// transformations used by the evolutionary search: verification, repair,
// weight reduction and chromosome decoding.
//
// A Roman domination function f: V → {0,1,2} requires every vertex labeled 0
// to have at least one neighbor labeled 2; the Perfect variant requires
// exactly one. The objective is the weight Σ f(v).
//
// Dominance counts:
//
//	count[v] = [f(v) ≥ 1] + |{ u ∈ N(v) : f(u) = 2 }|
//
// Counts are recomputed from the labeling at the start of every repair and
// reduction pass; they are never carried across passes.
//
// Pipeline:
//
//	keys ──Policy.Assign──► feasible labeling ──ReduceWeight──► Decoded{Labels, Cost, Keys}
//	labels ──Repair (fix label-0 vertices)──► feasible labeling ──ReduceWeight──► Labeling
//
// Two decoding policies implement Policy:
//
//   - ThresholdPolicy (default): keys are binned into labels, then repaired.
//   - OrderPolicy: vertices are processed in decreasing key order by a greedy
//     dominator placement (the random-key decoder).
//
// Every exported function is pure: inputs are never mutated and all scratch
// memory is allocated per call, so a single *graph.Graph may be decoded
// against from many goroutines at once.
//
// Errors:
//
//	ErrNilGraph        – graph argument is nil
//	ErrLengthMismatch  – labeling/chromosome length differs from graph order
//	ErrInvalidLabel    – label value outside {0,1,2}
//	ErrKeyOutOfRange   – chromosome key is NaN or outside [0,1)
//	ErrInfeasible      – Verify found a label-0 vertex without a valid protector
package roman
