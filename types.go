package mda

import (
	"errors"

	"go.uber.org/zap"
)

// Probability is the numeric type carried through the lattice and the
// result tables: the widest native floating type available.
type Probability = float64

var (
	// ErrNilBound indicates a nil or incompletely initialized bound table
	// was passed where a constructed one is required.
	ErrNilBound = errors.New("mda: nil or incompletely initialized bound table")

	// ErrConfidenceRange indicates the graph-wide confidence lies outside (0,1).
	ErrConfidenceRange = errors.New("mda: graph confidence must lie strictly between 0 and 1")

	// ErrMaxInterfaces indicates the requested interface maximum is below 2,
	// the first hypothesis that admits a stopping point.
	ErrMaxInterfaces = errors.New("mda: max interfaces must be at least 2")

	// ErrMaxBranch indicates a non-positive branching-point bound.
	ErrMaxBranch = errors.New("mda: max branch count must be at least 1")
)

// Options configures bound-table construction.
//
// Fields:
//   - GraphConfidence — the graph-wide failure-probability budget α, in (0,1).
//     The engine derives the per-branching-point share from it.
//   - MaxInterfaces   — largest hypothesis (assumed interface count) the
//     initial tables cover; must be ≥ 2. Build can raise it later.
//   - MaxBranch       — upper bound on the number of load-balancing
//     branching points in the probed graph; must be ≥ 1.
//   - Logger          — destination for diagnostics; nil means no logging.
//
// Example:
//
//	opts := mda.DefaultOptions()
//	opts.MaxInterfaces = 32
//	bound, err := mda.New(opts)
type Options struct {
	GraphConfidence float64
	MaxInterfaces   int
	MaxBranch       int
	Logger          *zap.Logger
}

// DefaultOptions returns the configuration used throughout the MDA
// literature: a 0.05 failure budget over 16 interfaces with a single
// assumed branching point.
func DefaultOptions() Options {
	return Options{
		GraphConfidence: 0.05,
		MaxInterfaces:   16,
		MaxBranch:       1,
	}
}
