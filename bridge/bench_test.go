package bridge_test

import (
	"testing"

	"github.com/katalvlaran/katas/bridge"
)

// BenchmarkMinTime_Search8 benchmarks Dijkstra on eight people (512 states).
func BenchmarkMinTime_Search8(b *testing.B) {
	times := []int{1, 2, 5, 10, 17, 23, 40, 99}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bridge.MinTime(times); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkMinTime_Greedy1k benchmarks the closed form on a thousand people.
func BenchmarkMinTime_Greedy1k(b *testing.B) {
	times := make([]int, 1000)
	for i := range times {
		times[i] = 1 + (i*31)%100
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := bridge.MinTime(times, bridge.WithMethod(bridge.Greedy)); err != nil {
			b.Fatal(err)
		}
	}
}
