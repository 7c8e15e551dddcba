// Package ga is the evolutionary driver of romandom: a generational genetic
// algorithm that searches for light Roman domination labelings by repeatedly
// decoding or repairing candidate encodings with package roman.
//
// State machine:
//
//	INIT → (SELECT → CROSSOVER → MUTATE → DECODE/REPAIR → REPLACE)* → TERMINATED
//
// INIT seeds the population with any warm-start labelings, one greedy
// solution, ⌊P/2⌋ repaired single-dominator solutions on distinct random
// vertices, and random individuals for the rest. Each generation draws ⌈P/2⌉
// tournament pairs, recombines them with a one-point crossover, mutates every
// child gene-wise and keeps the best elite of the parents plus the best
// P−elite children. Termination is checked once per generation boundary.
//
// Encodings:
//
//   - EncodingKeys: chromosomes are random keys in [0,1) decoded by a
//     roman.Decoder; the stored keys are the decoder's canonical keys.
//   - EncodingLabels: genes are labels; children are repaired (FitnessRepair)
//     or scored with a penalty without repair (FitnessPenalty).
//
// Determinism:
//
// A run draws every random number from one *rand.Rand seeded by
// Options.Seed (0 ⇒ a fixed default), in a fixed order: initialization,
// then per generation selection shuffles, crossover cuts and mutation draws.
// Equal seeds and options give equal results. RunTrials derives an
// independent seed per trial, so results do not depend on the worker count.
//
// Concurrency:
//
// A single Run is sequential. RunTrials runs independent trials on a bounded
// goroutine pool; they share the graph read-only. Options.OnGeneration may be
// invoked from several goroutines under RunTrials.
//
// Errors:
//
//	ErrNilGraph        – graph argument is nil
//	ErrInvalidOptions  – an Options field is outside its domain (wrapped with the field)
package ga
