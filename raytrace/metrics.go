// SPDX-License-Identifier: MIT

package raytrace

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/photon/geodesic"
)

const (
	metricsNamespace = "photon"
	metricsSubsystem = "raytrace"

	statusOK    = "ok"
	statusError = "error"

	// regimeNone labels rays rejected before a regime was chosen.
	regimeNone = "none"
)

// Metrics holds the Prometheus collectors of a Tracer.
type Metrics struct {
	registry *prometheus.Registry

	rays     *prometheus.CounterVec
	duration *prometheus.HistogramVec
	samples  prometheus.Counter
	inflight prometheus.Gauge
}

// NewMetrics creates the collectors on a private registry.
//
// Labels: regime (subcritical, critical, supercritical, none), status
// (ok, error).
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		rays: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "rays_total",
			Help:      "Rays traced by regime and status",
		}, []string{"regime", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "solve_duration_seconds",
			Help:      "Time to trace one ray in seconds",
			Buckets:   []float64{1e-6, 1e-5, 5e-5, 1e-4, 5e-4, 1e-3, 5e-3, 1e-2, 0.1},
		}, []string{"regime"}),
		samples: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "samples_total",
			Help:      "Path samples produced by successful rays",
		}),
		inflight: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: metricsNamespace,
			Subsystem: metricsSubsystem,
			Name:      "inflight_rays",
			Help:      "Rays currently being traced",
		}),
	}
	m.registry.MustRegister(m.rays, m.duration, m.samples, m.inflight)

	return m
}

// Registry exposes the private registry, e.g. for promhttp or testutil.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// observe records one finished ray. A zero regime means classification
// failed.
func (m *Metrics) observe(regime geodesic.Regime, samples int, elapsed time.Duration, err error) {
	label := regimeNone
	if regime != 0 {
		label = regime.String()
	}
	status := statusOK
	if err != nil {
		status = statusError
	} else {
		m.samples.Add(float64(samples))
	}
	m.rays.WithLabelValues(label, status).Inc()
	m.duration.WithLabelValues(label).Observe(elapsed.Seconds())
}

// WriteTextfile writes the current values in the node-exporter textfile
// format.
func (m *Metrics) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("raytrace: write metrics %s: %w", path, err)
	}

	return nil
}
