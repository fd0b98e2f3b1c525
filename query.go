package mda

import (
	"fmt"
	"strings"
)

// PointEntry pairs a hypothesis with its computed stopping point.
type PointEntry struct {
	Hypothesis int
	Probes     int
}

// FailureEntry pairs a hypothesis with the residual failure probability
// realized at its recorded stopping point.
type FailureEntry struct {
	Hypothesis  int
	Probability Probability
}

// StoppingPoint returns the minimum probe count needed to reject
// hypothesis k, or 0 when k is out of the computed range or the table is
// nil. It never fails: "not computed" is signalled by the 0 sentinel.
func (b *Bound) StoppingPoint(k int) int {
	if b == nil || b.stopping == nil || k < 0 || k > b.maxHypothesis {
		return 0
	}

	return b.stopping[k]
}

// FailureProbability returns the residual failure probability at the
// stopping point of hypothesis k, with the same 0 sentinel semantics as
// StoppingPoint.
func (b *Bound) FailureProbability(k int) Probability {
	if b == nil || b.failure == nil || k < 0 || k > b.maxHypothesis {
		return 0
	}

	return b.failure[k]
}

// SignificanceLevel returns the significance threshold a_k applied to
// hypothesis k, with the same 0 sentinel semantics as StoppingPoint.
func (b *Bound) SignificanceLevel(k int) Probability {
	if b == nil || b.significance == nil || k < 0 || k > b.maxHypothesis {
		return 0
	}

	return b.significance[k]
}

// MaxHypothesis returns the largest hypothesis the tables currently
// cover, or 0 for a nil table.
func (b *Bound) MaxHypothesis() int {
	if b == nil {
		return 0
	}

	return b.maxHypothesis
}

// Confidence returns the per-branching-point failure budget derived at
// construction.
func (b *Bound) Confidence() float64 {
	if b == nil {
		return 0
	}

	return b.confidence
}

// StoppingPoints dumps the full stopping-point table in ascending
// hypothesis order. Pure read; returns nil for a nil table.
func (b *Bound) StoppingPoints() []PointEntry {
	if b == nil || b.stopping == nil {
		return nil
	}
	entries := make([]PointEntry, len(b.stopping))
	for k, n := range b.stopping {
		entries[k] = PointEntry{Hypothesis: k, Probes: n}
	}

	return entries
}

// FailureProbabilities dumps the full residual-failure table in ascending
// hypothesis order. Pure read; returns nil for a nil table.
func (b *Bound) FailureProbabilities() []FailureEntry {
	if b == nil || b.failure == nil {
		return nil
	}
	entries := make([]FailureEntry, len(b.failure))
	for k, p := range b.failure {
		entries[k] = FailureEntry{Hypothesis: k, Probability: p}
	}

	return entries
}

// String renders both tables as a diagnostic report, one hypothesis per
// line.
func (b *Bound) String() string {
	if b == nil || b.stopping == nil {
		return ""
	}
	var sb strings.Builder
	sb.WriteString("hypothesis  probes  failure\n")
	for k := 0; k <= b.maxHypothesis; k++ {
		fmt.Fprintf(&sb, "%10d  %6d  %.9f\n", k, b.stopping[k], b.failure[k])
	}

	return sb.String()
}
