// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tab

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// outcomes of one sweep point
const (
	OutcomeKept              = "kept"
	OutcomePhysicallyInvalid = "physically_invalid"
	OutcomeOutOfRange        = "out_of_range"
)

// Metrics bundles sweep metrics
type Metrics struct {
	Points   *prometheus.CounterVec   // evaluated points by sweep kind and outcome
	Duration *prometheus.HistogramVec // sweep duration by sweep kind
}

// NewMetrics constructs metrics and registers them with reg
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		Points: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "gosteam_sweep_points_total",
				Help: "Total sweep points by kind and outcome",
			},
			[]string{"kind", "outcome"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "gosteam_sweep_duration_seconds",
				Help:    "Sweep duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"kind"},
		),
	}
	reg.MustRegister(m.Points, m.Duration)
	return m
}

// point records the outcome of one point
func (o *Metrics) point(kind, outcome string) {
	if o == nil {
		return
	}
	o.Points.WithLabelValues(kind, outcome).Inc()
}

// sweep records the duration of one sweep
func (o *Metrics) sweep(kind string, start time.Time) {
	if o == nil {
		return
	}
	o.Duration.WithLabelValues(kind).Observe(time.Since(start).Seconds())
}
