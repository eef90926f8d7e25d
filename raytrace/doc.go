// SPDX-License-Identifier: MIT

// Package raytrace is the boundary around package geodesic: stored ray
// records, request files, validation, and concurrent batch tracing.
//
// What:
//
//   - Request is the persisted record of one ray: a Cartesian start (X, Y),
//     an emission angle Delta0, the stop target and a sample count. Requests
//     carry a UUID so results can be matched back to their inputs.
//   - Position is the stored emitter orientation; its Delta is added to every
//     request of a file, 0 by default.
//   - LoadRequests / ReadRequests parse YAML request files (gopkg.in/yaml.v3).
//   - Tracer runs many requests on a shared geodesic.Solver, fanning rays out
//     over a bounded errgroup. Failures of individual rays are reported per
//     result and never abort the batch; context cancellation does.
//   - Metrics exposes Prometheus counters and a duration histogram per regime
//     and can be flushed to a node-exporter textfile.
//
// Why:
//
//   - The geodesic core is pure and silent. Logging, metrics, IDs and I/O
//     live here so callers that only need paths never pay for them.
//
// Example:
//
//	reqs, pos, err := raytrace.LoadRequests("rays.yaml")
//	if err != nil { ... }
//	tr := raytrace.NewTracer(geodesic.NewSolver(), raytrace.WithWorkers(8))
//	results, err := tr.Batch(ctx, pos.Apply(reqs))
package raytrace
