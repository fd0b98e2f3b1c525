// Package mda computes probe-count bounds for Multipath Detection
// Algorithm (MDA) route tracing, following the error bounding described
// in the May 2007 Paris Traceroute workshop and April 2009 Infocom
// papers (www.paris-traceroute.net/publications).
//
// 🚀 What does it answer?
//
//	When a traceroute-style prober enumerates the load-balanced
//	interfaces at a hop, how many probes must it send before asserting,
//	with a prescribed statistical confidence, that all interfaces have
//	been seen? The engine precomputes, for every hypothesis k (an
//	assumed interface count from 2 up to a configured maximum):
//	  • n_k — the minimum total probe count before hypothesis k may be
//	    rejected, and
//	  • the residual failure probability actually realized at n_k.
//
// ✨ Key features:
//   - closed-form significance schedule: one graph-wide confidence is
//     split per branching point, then geometrically across hypotheses
//   - rolling two-diagonal probability lattice — O(k) memory per
//     hypothesis, no full state-space matrix
//   - incremental growth: Build extends the tables to a larger maximum
//     hypothesis without recomputing finalized entries
//   - pure computation: no network I/O, no probing strategy, no global
//     state; optional zap logger for diagnostics
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mda"
//
//	opts := mda.DefaultOptions() // confidence 0.05, 16 interfaces
//	bound, err := mda.New(opts)
//	if err != nil {
//	  // handle ErrConfidenceRange, ErrMaxInterfaces, ErrMaxBranch
//	}
//	n2 := bound.StoppingPoint(2)   // probes needed to reject k=2
//	_ = bound.Build(64)            // extend tables to k ≤ 64
//
// Performance:
//
//   - Time:   O(Σ_k n_k · k) — each hypothesis walks one diagonal per probe
//   - Memory: O(maxHypothesis) for the lattice plus the three result tables
//
// A Bound is not safe for concurrent use; serialize Build against queries.
package mda
