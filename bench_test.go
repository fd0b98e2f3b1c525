package mda_test

import (
	"testing"

	"github.com/katalvlaran/mda"
)

// benchmarkNew builds a full bound table for the given interface maximum.
// It resets the timer before the loop and fails on unexpected errors.
func benchmarkNew(b *testing.B, maxInterfaces int) {
	opts := mda.DefaultOptions()
	opts.MaxInterfaces = maxInterfaces

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := mda.New(opts); err != nil {
			b.Fatalf("New failed: %v", err)
		}
	}
}

// BenchmarkNew_16 measures the canonical 16-interface table build.
func BenchmarkNew_16(b *testing.B) {
	benchmarkNew(b, 16)
}

// BenchmarkNew_64 measures a large table build.
func BenchmarkNew_64(b *testing.B) {
	benchmarkNew(b, 64)
}

// BenchmarkBuild_Extend measures extending an existing 16-interface table
// to 32, including the construction of the table being extended.
func BenchmarkBuild_Extend(b *testing.B) {
	opts := mda.DefaultOptions()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		bound, err := mda.New(opts)
		if err != nil {
			b.Fatalf("New failed: %v", err)
		}
		if err = bound.Build(32); err != nil {
			b.Fatalf("Build failed: %v", err)
		}
	}
}
