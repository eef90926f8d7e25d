// Package photon traces light around a non-rotating black hole: closed-form
// null geodesics of the Schwarzschild metric, sampled as (r, θ) paths.
//
// What is photon?
//
//	A small, dependency-light toolkit organized in layers:
//		• cubic/    – turning points: the real roots of 2u³ − u² + 1/D² = 0
//		• elliptic/ – incomplete elliptic integral F(φ|m) for any real amplitude
//		• geodesic/ – regime classification and the three path generators
//		              (captured, critical, scattered) behind one Solve call
//		• raytrace/ – stored ray records, YAML request files, concurrent
//		              batches, structured logs and Prometheus metrics
//		• cmd/raytrace – command-line front end (solve, batch)
//
// Units: G = c = M = 1. The horizon is r = 2, the photon sphere r = 3 and the
// critical impact parameter D_crit = √27.
//
// Quick start:
//
//	path, err := geodesic.Solve(6, 70*math.Pi/180, -43*math.Pi/180, 9, 500)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(path[len(path)-1]) // {9 0.8748...}
//
// Every path is exact up to floating point: no step-wise integration is
// involved, so the sample count only controls resolution.
//
// See examples/schwarzschild_rays.go for the six demonstration rays.
package photon
