package mda

import "go.uber.org/zap"

// Bound owns the per-hypothesis result tables of the MDA error-bounding
// precomputation: significance levels a_k, stopping points n_k, and the
// residual failure probability realized at each stopping point, all
// indexed 0..maxHypothesis with indices 0 and 1 as sentinels.
//
// A Bound is an explicit, caller-owned value with no hidden global state.
// It is not safe for concurrent use: callers must serialize Build against
// queries. Storage is reclaimed by the garbage collector when the value
// is dropped.
type Bound struct {
	// confidence is the per-branching-point failure budget derived once
	// at construction; growth reuses it to recompute the schedule.
	confidence float64

	// maxHypothesis is the upper bound of all tables. It grows
	// monotonically via Build and never shrinks.
	maxHypothesis int

	significance []Probability // a_k per hypothesis, indices 0 and 1 zero
	stopping     []int         // n_k, minimum probe count per hypothesis
	failure      []Probability // residual mass at the recorded stopping point

	// state is the transient working lattice, reset at the start of each
	// hypothesis pass; its contents are meaningless between passes.
	state lattice

	log *zap.Logger
}

// New constructs a bound table: it derives the per-branching-point
// confidence, allocates every table sized to opts.MaxInterfaces, builds
// the significance schedule, and solves the stopping point for each
// hypothesis from 2 through opts.MaxInterfaces.
//
// Errors: ErrConfidenceRange, ErrMaxInterfaces, ErrMaxBranch.
func New(opts Options) (*Bound, error) {
	if opts.GraphConfidence <= 0 || opts.GraphConfidence >= 1 {
		return nil, ErrConfidenceRange
	}
	if opts.MaxInterfaces < hypothesisStart {
		return nil, ErrMaxInterfaces
	}
	if opts.MaxBranch < 1 {
		return nil, ErrMaxBranch
	}
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	b := &Bound{
		confidence:    NodeConfidence(opts.GraphConfidence, opts.MaxBranch),
		maxHypothesis: opts.MaxInterfaces,
		stopping:      make([]int, opts.MaxInterfaces+1),
		failure:       make([]Probability, opts.MaxInterfaces+1),
		state:         newLattice(opts.MaxInterfaces),
		log:           log,
	}
	b.significance = buildSignificanceTable(b.confidence, b.maxHypothesis)
	b.solveFrom(hypothesisStart)

	b.log.Debug("bound table built",
		zap.Float64("node_confidence", b.confidence),
		zap.Int("max_hypothesis", b.maxHypothesis))

	return b, nil
}

// Build extends the tables to cover hypotheses up to end, solving only
// the newly added range; finalized entries are never recomputed. A
// non-increasing end is a no-op, so repeated calls are idempotent.
//
// Errors: ErrNilBound on a nil or incompletely initialized receiver.
func (b *Bound) Build(end int) error {
	if b == nil {
		return ErrNilBound
	}
	if b.stopping == nil || b.state.cur == nil {
		b.logger().Warn("build requested on incompletely initialized bound table")

		return ErrNilBound
	}
	if end <= b.maxHypothesis {
		return nil
	}

	prev := b.maxHypothesis
	b.grow(end)
	b.solveFrom(prev + 1)

	b.logger().Debug("bound table extended",
		zap.Int("from", prev), zap.Int("to", end))

	return nil
}

// grow resizes the lattice and all three result tables in lock step:
// fresh storage is allocated and populated for every table before any of
// them is swapped into place, so a failed grow cannot leave the tables
// half-resized. The significance schedule is recomputed over the full new
// range from its closed form rather than copied forward.
func (b *Bound) grow(end int) {
	stopping := make([]int, end+1)
	failure := make([]Probability, end+1)
	significance := buildSignificanceTable(b.confidence, end)
	copy(stopping, b.stopping)
	copy(failure, b.failure)
	b.state.grow(end)

	b.stopping = stopping
	b.failure = failure
	b.significance = significance
	b.maxHypothesis = end
}

func (b *Bound) logger() *zap.Logger {
	if b.log == nil {
		return zap.NewNop()
	}

	return b.log
}
