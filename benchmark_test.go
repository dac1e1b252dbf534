package microagg1d

import (
	"math/rand"
	"sort"
	"testing"
)

func generateBenchData(n int) []float64 {
	rng := rand.New(rand.NewSource(42))
	data := make([]float64, n)
	for i := range data {
		data[i] = rng.Float64() * 100
	}
	return data
}

func generateSortedBenchData(n int) []float64 {
	data := generateBenchData(n)
	sort.Float64s(data)
	return data
}

// --- Cost calculators ---

func benchCalculatorBuild(b *testing.B, n int, stable bool) {
	b.Helper()
	v := generateSortedBenchData(n)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if stable {
			NewStableCumsumCalculator(v, 10)
		} else {
			NewCumsumCalculator(v)
		}
	}
}

func BenchmarkCumsumBuild_100000(b *testing.B)       { benchCalculatorBuild(b, 100000, false) }
func BenchmarkStableCumsumBuild_100000(b *testing.B) { benchCalculatorBuild(b, 100000, true) }

// --- Dynamic programs ---

func benchSimple(b *testing.B, n, k int) {
	b.Helper()
	v := generateSortedBenchData(n)
	calc := NewStableCumsumCalculator(v, k)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		SimpleDynamicProgram(v, k, calc)
	}
}

func BenchmarkSimple_10000_k5(b *testing.B)   { benchSimple(b, 10000, 5) }
func BenchmarkSimple_10000_k21(b *testing.B)  { benchSimple(b, 10000, 21) }
func BenchmarkSimple_10000_k100(b *testing.B) { benchSimple(b, 10000, 100) }

func benchWilber(b *testing.B, n, k int) {
	b.Helper()
	v := generateSortedBenchData(n)
	calc := NewStableCumsumCalculator(v, k)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		WilberDynamicProgram(v, k, calc)
	}
}

func BenchmarkWilber_10000_k5(b *testing.B)   { benchWilber(b, 10000, 5) }
func BenchmarkWilber_10000_k21(b *testing.B)  { benchWilber(b, 10000, 21) }
func BenchmarkWilber_10000_k100(b *testing.B) { benchWilber(b, 10000, 100) }

// --- Full pipeline ---

func benchCluster(b *testing.B, n, k int) {
	b.Helper()
	data := generateBenchData(n)
	cfg := DefaultConfig()
	cfg.K = k
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Cluster(data, cfg); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkCluster_1000_k3(b *testing.B)    { benchCluster(b, 1000, 3) }
func BenchmarkCluster_100000_k3(b *testing.B)  { benchCluster(b, 100000, 3) }
func BenchmarkCluster_100000_k50(b *testing.B) { benchCluster(b, 100000, 50) }
