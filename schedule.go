package mda

import "math"

// decayRatio is the geometric ratio r splitting the per-node risk budget
// across successive hypotheses. Section III.B of the 2009 MDA paper finds
// 0.9 to be a reasonable value.
const decayRatio = 0.9

// NodeConfidence derives the failure-probability share each individual
// branching decision receives so that the compound probability of a
// correct decision across up to maxBranch branching points meets the
// graph-wide budget (equation (10) of the 2009 MDA paper):
//
//	1 − (1 − graphConfidence)^(1/maxBranch)
//
// Callers must ensure graphConfidence lies in (0,1) and maxBranch ≥ 1;
// New validates both before delegating here.
func NodeConfidence(graphConfidence float64, maxBranch int) float64 {
	return 1 - math.Pow(1-graphConfidence, 1/float64(maxBranch))
}

// buildSignificanceTable precomputes the per-hypothesis significance
// levels a_k following equations (8) and (9) of the 2009 MDA paper:
// hypothesis 2 receives the share (1−r)·nodeConfidence of the risk budget
// and each later hypothesis a geometrically smaller one, since earlier
// hypotheses are reached first and most often. Indices 0 and 1 are the
// impossible-hypothesis sentinels and stay zero.
//
// The table is cheap to derive, so growth recomputes it over the full new
// range rather than extending it in place.
func buildSignificanceTable(nodeConfidence float64, maxHypothesis int) []Probability {
	table := make([]Probability, maxHypothesis+1)
	if maxHypothesis < hypothesisStart {
		return table
	}
	first := (1 - decayRatio) * nodeConfidence
	table[hypothesisStart] = first
	for i := hypothesisStart + 1; i <= maxHypothesis; i++ {
		table[i] = first * math.Pow(decayRatio, float64(i-hypothesisStart))
	}

	return table
}
