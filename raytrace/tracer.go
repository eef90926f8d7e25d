// SPDX-License-Identifier: MIT

package raytrace

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/photon/geodesic"
)

const panicWorkersInvalid = "raytrace: WithWorkers: n must be >= 1"

// Result is the outcome of one Request. Exactly one of Trajectory and Err
// is meaningful.
type Result struct {
	ID         uuid.UUID           `json:"id"`
	Request    Request             `json:"request"`
	Trajectory geodesic.Trajectory `json:"trajectory"`
	Err        error               `json:"-"`
	Error      string              `json:"error,omitempty"`
	Elapsed    time.Duration       `json:"elapsed_ns"`
}

// Tracer traces Requests on a shared Solver. It is safe for concurrent use.
type Tracer struct {
	solver  *geodesic.Solver
	workers int
	logger  *slog.Logger
	metrics *Metrics
}

// TracerOption configures a Tracer.
type TracerOption func(*Tracer)

// WithWorkers bounds the number of rays traced at once. Panics if n < 1.
func WithWorkers(n int) TracerOption {
	if n < 1 {
		panic(panicWorkersInvalid)
	}

	return func(t *Tracer) { t.workers = n }
}

// WithLogger sets the structured logger; nil keeps slog.Default().
func WithLogger(l *slog.Logger) TracerOption {
	return func(t *Tracer) {
		if l != nil {
			t.logger = l
		}
	}
}

// WithMetrics records every traced ray in m.
func WithMetrics(m *Metrics) TracerOption {
	return func(t *Tracer) { t.metrics = m }
}

// NewTracer builds a Tracer around solver. Defaults: GOMAXPROCS workers,
// slog.Default(), no metrics.
func NewTracer(solver *geodesic.Solver, opts ...TracerOption) *Tracer {
	t := &Tracer{
		solver:  solver,
		workers: runtime.GOMAXPROCS(0),
		logger:  slog.Default(),
	}
	for _, set := range opts {
		if set != nil {
			set(t)
		}
	}

	return t
}

// Workers returns the concurrency bound.
func (t *Tracer) Workers() int { return t.workers }

// Trace validates req and solves it. Solver failures are returned in
// Result.Err; the only error Trace itself returns is ctx's.
func (t *Tracer) Trace(ctx context.Context, req Request) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	res := Result{ID: req.ID, Request: req}
	start := time.Now()

	valid := req.Validate()
	err := valid
	if err == nil {
		res.Trajectory, err = t.solver.Solve(req.RayState(), req.Stop, req.Samples)
	}
	res.Elapsed = time.Since(start)

	regime := res.Trajectory.Regime
	if t.metrics != nil {
		if err != nil && valid == nil {
			regime = t.failedRegime(req)
		}
		t.metrics.observe(regime, req.Samples, res.Elapsed, err)
	}
	if err != nil {
		res.Err = err
		res.Error = err.Error()
		t.logger.Warn("ray rejected",
			slog.String("id", req.ID.String()),
			slog.String("error", err.Error()))

		return res, nil
	}

	t.logger.Debug("ray traced",
		slog.String("id", req.ID.String()),
		slog.String("regime", regime.String()),
		slog.Float64("impact", res.Trajectory.Impact),
		slog.Int("samples", len(res.Trajectory.Path)),
		slog.Duration("elapsed", res.Elapsed))

	return res, nil
}

// failedRegime labels a ray Solve rejected: the regime it was classified
// into, or zero when classification itself failed.
func (t *Tracer) failedRegime(req Request) geodesic.Regime {
	cls, err := t.solver.Classify(req.RayState())
	if err != nil {
		return 0
	}

	return cls.Regime
}

// Batch traces reqs with at most Workers rays in flight. results[i]
// belongs to reqs[i]. Per-ray failures never stop the batch; a cancelled
// ctx does, and its error is returned with the partial results.
func (t *Tracer) Batch(ctx context.Context, reqs []Request) ([]Result, error) {
	if len(reqs) == 0 {
		return nil, ErrEmptyBatch
	}

	results := make([]Result, len(reqs))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(t.workers)

	t.logger.Info("batch started",
		slog.Int("rays", len(reqs)),
		slog.Int("workers", t.workers))
	start := time.Now()

	for i := range reqs {
		if gctx.Err() != nil {
			break
		}
		i := i
		g.Go(func() error {
			if t.metrics != nil {
				t.metrics.inflight.Inc()
				defer t.metrics.inflight.Dec()
			}
			res, err := t.Trace(gctx, reqs[i])
			if err != nil {
				return err
			}
			results[i] = res

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("raytrace: batch interrupted: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return results, fmt.Errorf("raytrace: batch interrupted: %w", err)
	}

	failed := 0
	for i := range results {
		if results[i].Err != nil {
			failed++
		}
	}
	t.logger.Info("batch finished",
		slog.Int("rays", len(reqs)),
		slog.Int("failed", failed),
		slog.Duration("elapsed", time.Since(start)))

	return results, nil
}
