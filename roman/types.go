package roman

import (
	"errors"
	"strconv"
	"strings"
)

// Sentinel errors for labeling operations.
var (
	// ErrNilGraph indicates a nil *graph.Graph argument.
	ErrNilGraph = errors.New("roman: nil graph")

	// ErrLengthMismatch indicates a labeling or chromosome whose length differs from the graph order.
	ErrLengthMismatch = errors.New("roman: length does not match graph order")

	// ErrInvalidLabel indicates a label outside {0,1,2}.
	ErrInvalidLabel = errors.New("roman: invalid label")

	// ErrKeyOutOfRange indicates a chromosome key that is NaN or outside [0,1).
	ErrKeyOutOfRange = errors.New("roman: key out of range")

	// ErrInfeasible indicates a labeling violating the domination condition.
	ErrInfeasible = errors.New("roman: infeasible labeling")
)

// Label is the value f(v) ∈ {0,1,2} assigned to a vertex.
type Label uint8

// Label values.
const (
	Zero Label = 0
	One  Label = 1
	Two  Label = 2
)

// Labeling assigns one Label per vertex, indexed by vertex id.
type Labeling []Label

// Cost returns Σ f(v).
func (f Labeling) Cost() int {
	var c int
	for _, l := range f {
		c += int(l)
	}

	return c
}

// Clone returns an independent copy of f.
func (f Labeling) Clone() Labeling {
	out := make(Labeling, len(f))
	copy(out, f)

	return out
}

// Ints returns f as plain ints, for serialization.
func (f Labeling) Ints() []int {
	out := make([]int, len(f))
	for i, l := range f {
		out[i] = int(l)
	}

	return out
}

// String renders f as space-separated digits, e.g. "0 2 0 1".
func (f Labeling) String() string {
	var sb strings.Builder
	for i, l := range f {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(strconv.Itoa(int(l)))
	}

	return sb.String()
}

// FromInts converts plain ints into a Labeling, rejecting values outside {0,1,2}.
func FromInts(xs []int) (Labeling, error) {
	out := make(Labeling, len(xs))
	for i, x := range xs {
		if x < 0 || x > int(Two) {
			return nil, ErrInvalidLabel
		}
		out[i] = Label(x)
	}

	return out, nil
}

// Variant selects the domination condition imposed on label-0 vertices.
type Variant int

const (
	// Perfect requires exactly one label-2 neighbor for every label-0 vertex.
	Perfect Variant = iota
	// Standard requires at least one label-2 neighbor.
	Standard
)

// String returns "perfect" or "standard".
func (v Variant) String() string {
	if v == Standard {
		return "standard"
	}

	return "perfect"
}

// accepts reports whether a label-0 vertex with dominance count c satisfies the variant.
func (v Variant) accepts(c int) bool {
	if v == Standard {
		return c >= 1
	}

	return c == 1
}

// dropsSelfProtector reports whether a label-1 vertex with count c may become 0 (Rule Z).
func (v Variant) dropsSelfProtector(c int) bool {
	if v == Standard {
		return c >= 2
	}

	return c == 2
}

// SweepMode selects how many reduction sweeps ReduceWeight performs.
type SweepMode int

const (
	// SingleSweep runs one Rule D pass followed by one Rule Z pass.
	SingleSweep SweepMode = iota
	// FixedPoint repeats D/Z sweeps until a sweep changes nothing.
	FixedPoint
)

// String returns "single" or "fixed".
func (m SweepMode) String() string {
	if m == FixedPoint {
		return "fixed"
	}

	return "single"
}
