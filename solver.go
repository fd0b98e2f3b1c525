package mda

// hypothesisStart is the first hypothesis with algorithmic content;
// hypotheses 0 and 1 (no load balancing possible) are sentinel entries.
const hypothesisStart = 2

// probes translates lattice position (i, j) — diagonal i, interface-count
// level j — into the total number of probes sent on reaching it.
func probes(i, j int) int { return i + j - 1 }

// solveFrom runs the stopping-point recurrence for every hypothesis from
// first through the current maximum, recording the minimum probe count
// into stopping and the residual mass at that point into failure. Lower
// hypotheses are never revisited, so the pruning below always reads
// finalized entries.
//
// For each hypothesis h the lattice is swept one diagonal per probe.
// Level j gains mass from level j of the previous diagonal (another probe
// hit a known interface) and from level j−1 of the current one (a probe
// exposed a new interface). A level whose probe count reaches the
// stopping point already recorded for hypothesis j+1 is dead: had only
// j+1 interfaces existed, probing would have concluded there, so its mass
// is forced to zero and jstart rises past it. Once only level h−1 remains
// live, the sweep halts as soon as that level's mass drops to the
// hypothesis's significance level.
//
// jstart begins at 2 and is pinned to 1 after the first sweep: diagonal 1
// is fed entirely by the (1,1) bootstrap cell, and level 1 itself only
// becomes reachable from diagonal 2 onward.
//
// Complexity: O(n_h · h) per hypothesis, O(h) memory via the rolling
// lattice.
func (b *Bound) solveFrom(first int) {
	for h := first; h <= b.maxHypothesis; h++ {
		b.state.reset()
		mass := Probability(1)
		jstart := hypothesisStart

		var i, j int
		for i = 1; !b.stopped(jstart, h, mass); i++ {
			for j = jstart; j < h; j++ {
				mass = b.state.cell(h, j)
				if probes(i, j) == b.stopping[j+1] {
					jstart = j + 1
					b.state.cur[j] = 0
					b.state.prev[j] = 0
				} else {
					b.state.cur[j] = mass
				}
			}
			if i == 1 {
				jstart = 1
			}
			b.state.swap()
		}

		// i and j have each moved one past the stopping state.
		b.stopping[h] = probes(i, j) - 2
	}
}

// stopped reports whether the sweep for hypothesis h may halt: only the
// topmost unresolved level is still live and the mass just computed there
// is at or below the hypothesis's significance level. The mass is then
// recorded as the realized failure probability at the stopping point.
func (b *Bound) stopped(jstart, h int, mass Probability) bool {
	if jstart == h-1 && mass <= b.significance[h] {
		b.failure[h] = mass

		return true
	}

	return false
}
