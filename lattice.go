package mda

// lattice holds the two rolling diagonals of the probe-count ×
// interface-count probability mass function for the hypothesis currently
// being solved. prev is the completed previous diagonal; cur is the one
// being filled. Entry 0 of each vector represents the unreachable "zero
// interfaces seen" state and stays zero outside the bootstrap.
type lattice struct {
	prev []Probability
	cur  []Probability
}

func newLattice(maxHypothesis int) lattice {
	return lattice{
		prev: make([]Probability, maxHypothesis),
		cur:  make([]Probability, maxHypothesis),
	}
}

// reset prepares the buffers for a fresh hypothesis: the previous diagonal
// is zeroed and the current one encodes the degenerate start distribution —
// before any probe is sent the process is certainly at state (1,1), one
// interface confirmed reachable and none pending. Levels above 1 of cur
// are rewritten by the first sweep before they are ever read.
func (s *lattice) reset() {
	for j := range s.prev {
		s.prev[j] = 0
	}
	s.cur[0] = 0
	s.cur[1] = 1
}

// cell computes the probability mass entering level j of the diagonal
// being filled for a hop with h assumed interfaces: the horizontal
// contribution (one more probe landed on an already seen interface) plus
// the vertical one (a probe exposed a new interface). These are the
// classical balls-into-bins transition probabilities for h equally likely
// bins. The two-term sum is evaluated left to right to stay bit-compatible
// with the reference tables.
func (s *lattice) cell(h, j int) Probability {
	return s.prev[j]*(Probability(j)/Probability(h)) +
		s.cur[j-1]*(Probability(h-j+1)/Probability(h))
}

// swap exchanges the diagonal roles once a sweep completes.
func (s *lattice) swap() {
	s.prev, s.cur = s.cur, s.prev
}

// grow replaces both buffers with freshly sized storage, carrying forward
// existing contents. Both allocations complete before either buffer is
// swapped in, so a partially grown lattice is never observable.
func (s *lattice) grow(maxHypothesis int) {
	prev := make([]Probability, maxHypothesis)
	cur := make([]Probability, maxHypothesis)
	copy(prev, s.prev)
	copy(cur, s.cur)
	s.prev, s.cur = prev, cur
}
