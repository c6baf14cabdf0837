package distribute_test

import (
	"testing"

	"github.com/katalvlaran/gridcols/distribute"
)

// benchmarkCompute runs Compute for s and n, failing on unexpected errors.
func benchmarkCompute(b *testing.B, s distribute.Strategy, n int) {
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := distribute.Compute(s, n); err != nil {
			b.Fatalf("Compute(%v,%d) failed: %v", s, n, err)
		}
	}
}

// BenchmarkCenter12 benchmarks the largest default theme value for center.
func BenchmarkCenter12(b *testing.B) { benchmarkCompute(b, distribute.Center, 12) }

// BenchmarkBetween12 benchmarks between, dominated by lcm(1..11).
func BenchmarkBetween12(b *testing.B) { benchmarkCompute(b, distribute.Between, 12) }

// BenchmarkEvenly12 benchmarks evenly, dominated by fraction reduction.
func BenchmarkEvenly12(b *testing.B) { benchmarkCompute(b, distribute.Evenly, 12) }

// BenchmarkCenter128 benchmarks a large center rule (8128 selectors).
func BenchmarkCenter128(b *testing.B) { benchmarkCompute(b, distribute.Center, 128) }
