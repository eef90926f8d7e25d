// SPDX-License-Identifier: MIT
package geodesic_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/photon/geodesic"
)

// benchmarkSolve runs Solve for one ray configuration; setup is excluded.
func benchmarkSolve(b *testing.B, delta0, stop float64, samples int) {
	s := geodesic.NewSolver()
	ray := geodesic.RayState{R0: 6, Theta0: 1.2217, Delta0: delta0}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Solve(ray, stop, samples); err != nil {
			b.Fatalf("Solve failed: %v", err)
		}
	}
}

// BenchmarkSolve_Subcritical500 benchmarks a captured ray, 500 samples.
func BenchmarkSolve_Subcritical500(b *testing.B) {
	benchmarkSolve(b, -43*math.Pi/180, 9, 500)
}

// BenchmarkSolve_SupercriticalExcursion500 benchmarks the stitched
// periastron excursion, 500 samples.
func BenchmarkSolve_SupercriticalExcursion500(b *testing.B) {
	benchmarkSolve(b, -47*math.Pi/180+math.Pi, -9, 500)
}

// BenchmarkSolve_Critical500 benchmarks the asymptotic spiral, 500 samples.
func BenchmarkSolve_Critical500(b *testing.B) {
	benchmarkSolve(b, -45*math.Pi/180+math.Pi, 2, 500)
}

// BenchmarkSolve_Parallel checks Solve scales across goroutines on a shared
// Solver.
func BenchmarkSolve_Parallel(b *testing.B) {
	s := geodesic.NewSolver()
	ray := geodesic.RayState{R0: 6, Theta0: 1.2217, Delta0: -47 * math.Pi / 180}
	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := s.Solve(ray, 9, 500); err != nil {
				b.Errorf("Solve failed: %v", err)

				return
			}
		}
	})
}
