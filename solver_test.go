package mda_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mda"
)

// TestStoppingPoints_Monotone verifies that assuming more interfaces
// never requires fewer probes under a common schedule.
func TestStoppingPoints_Monotone(t *testing.T) {
	bound, err := mda.New(mda.DefaultOptions())
	require.NoError(t, err)

	require.Positive(t, bound.StoppingPoint(2))
	for k := 3; k <= bound.MaxHypothesis(); k++ {
		require.GreaterOrEqual(t, bound.StoppingPoint(k), bound.StoppingPoint(k-1), "k=%d", k)
	}
}

// TestFailure_WithinSignificance verifies the stopping rule by
// construction: at every recorded stopping point the residual mass is
// positive and no larger than the hypothesis's significance level.
func TestFailure_WithinSignificance(t *testing.T) {
	opts := mda.DefaultOptions()
	opts.MaxInterfaces = 32
	bound, err := mda.New(opts)
	require.NoError(t, err)

	for k := 2; k <= bound.MaxHypothesis(); k++ {
		failure := bound.FailureProbability(k)
		require.Positive(t, failure, "k=%d", k)
		require.LessOrEqual(t, failure, bound.SignificanceLevel(k), "k=%d", k)
	}
}

// TestHypothesisTwo_ClosedForm cross-checks the recurrence against the
// closed form it degenerates to at k=2: with two interfaces the only live
// state halves with every probe, so the stopping point is the minimal n
// with (1/2)^(n-1) ≤ a_2 and the residual mass is exactly that power of
// two.
func TestHypothesisTwo_ClosedForm(t *testing.T) {
	for _, confidence := range []float64{0.01, 0.05, 0.2} {
		opts := mda.DefaultOptions()
		opts.GraphConfidence = confidence
		bound, err := mda.New(opts)
		require.NoError(t, err)

		n := bound.StoppingPoint(2)
		require.Greater(t, n, 1, "confidence=%g", confidence)

		mass := 1.0
		for i := 1; i < n; i++ {
			mass *= 0.5
		}
		require.Equal(t, mass, bound.FailureProbability(2), "confidence=%g", confidence)
		require.LessOrEqual(t, mass, bound.SignificanceLevel(2), "confidence=%g", confidence)
		// Minimality: one probe fewer would still exceed the threshold.
		require.Greater(t, mass*2, bound.SignificanceLevel(2), "confidence=%g", confidence)
	}
}

// TestSolver_PropertiesHoldAfterGrowth re-checks the core invariants over
// a table that was extended twice, so the pruning path that consults
// previously finalized stopping points is exercised across growth
// boundaries.
func TestSolver_PropertiesHoldAfterGrowth(t *testing.T) {
	opts := mda.DefaultOptions()
	opts.MaxInterfaces = 4
	bound, err := mda.New(opts)
	require.NoError(t, err)
	require.NoError(t, bound.Build(12))
	require.NoError(t, bound.Build(20))

	for k := 3; k <= bound.MaxHypothesis(); k++ {
		require.GreaterOrEqual(t, bound.StoppingPoint(k), bound.StoppingPoint(k-1), "k=%d", k)
	}
	for k := 2; k <= bound.MaxHypothesis(); k++ {
		require.Positive(t, bound.FailureProbability(k), "k=%d", k)
		require.LessOrEqual(t, bound.FailureProbability(k), bound.SignificanceLevel(k), "k=%d", k)
	}
}
