package bench

import "testing"

// Benchmark one churn step: retire the oldest request, allocate a fresh one.
// This is the benchmark's core loop, dominated by the payload reservation.
func BenchmarkChurnStep(b *testing.B) {
	r := NewRunner(Config{NumIterations: 0, BufferSize: 64})
	r.Fill()

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		r.churnStep(i)
	}
}

// Benchmark the warm-up fill on its own.
func BenchmarkFill(b *testing.B) {
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		r := NewRunner(Config{NumIterations: 0, BufferSize: 64})
		r.Fill()
	}
}
