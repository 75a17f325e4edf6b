// SPDX-License-Identifier: ISC
// Copyright (c) 2018-2020 Tidechain Developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package server

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// observability events for processed requests
type metrics struct {
	requests prometheus.Counter
	duration prometheus.Histogram
	size     prometheus.Histogram
}

func newMetrics(registry prometheus.Registerer) *metrics {
	m := &metrics{
		requests: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "tidechaind",
			Subsystem: "rpc",
			Name:      "requests_total",
			Help:      "processed JSON-RPC requests",
		}),
		duration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tidechaind",
			Subsystem: "rpc",
			Name:      "request_duration_seconds",
			Help:      "wall time of JSON-RPC request processing",
			Buckets:   prometheus.DefBuckets,
		}),
		size: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tidechaind",
			Subsystem: "rpc",
			Name:      "response_bytes",
			Help:      "size of JSON-RPC response payloads",
			Buckets:   prometheus.ExponentialBuckets(64, 4, 8),
		}),
	}
	registry.MustRegister(m.requests, m.duration, m.size)
	return m
}

func (m *metrics) observe(elapsed time.Duration, responseSize int) {
	m.requests.Inc()
	m.duration.Observe(elapsed.Seconds())
	m.size.Observe(float64(responseSize))
}
