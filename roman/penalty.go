package roman

import "github.com/katalvlaran/romandom/graph"

// PenaltyFactor scales the infeasibility penalty: one infeasible labeling
// costs PenaltyFactor·n more than its weight, which exceeds the weight of any
// labeling of the same graph.
const PenaltyFactor = 5

// PenaltyCost scores f without repairing it: Σf, plus PenaltyFactor·n when f
// violates variant v. The boolean reports feasibility.
func PenaltyCost(g *graph.Graph, f Labeling, v Variant) (int, bool, error) {
	if err := validate(g, f); err != nil {
		return 0, false, err
	}
	cost := f.Cost()
	if Verify(g, f, v) != nil {
		return cost + PenaltyFactor*len(f), false, nil
	}

	return cost, true, nil
}
