package roman

// Threshold bins: [0, LowerOne) → 0, [LowerOne, LowerTwo) → 1, [LowerTwo, 1) → 2.
const (
	LowerOne = 0.33
	LowerTwo = 0.66
)

// Canonical keys written back for each label; each lies inside its bin.
const (
	CanonicalZero = 0.16
	CanonicalOne  = 0.49
	CanonicalTwo  = 0.82
)

// ThresholdPolicy labels every vertex directly from its key bin and then
// repairs the label-0 vertices whose count violates the variant.
type ThresholdPolicy struct{}

// Name returns "threshold".
func (ThresholdPolicy) Name() string { return "threshold" }

// Assign bins the keys and runs the label-0 repair.
func (ThresholdPolicy) Assign(adj [][]int, keys []float64, v Variant, f Labeling, count []int) {
	for u, k := range keys {
		f[u] = LabelForKey(k)
	}
	repairLabels(adj, f, count, v)
}

// Canonicalize writes CanonicalZero/One/Two according to f.
func (ThresholdPolicy) Canonicalize(f Labeling, _ []float64) []float64 {
	return CanonicalKeys(f)
}

// LabelForKey returns the threshold bin of k.
func LabelForKey(k float64) Label {
	switch {
	case k >= LowerTwo:
		return Two
	case k >= LowerOne:
		return One
	default:
		return Zero
	}
}

// CanonicalKeys returns the bin-representative chromosome of f.
func CanonicalKeys(f Labeling) []float64 {
	out := make([]float64, len(f))
	for u, l := range f {
		switch l {
		case Two:
			out[u] = CanonicalTwo
		case One:
			out[u] = CanonicalOne
		default:
			out[u] = CanonicalZero
		}
	}

	return out
}
